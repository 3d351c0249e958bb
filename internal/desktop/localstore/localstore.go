// Package localstore is the device-local key/value storage of the desktop: document
// content, window geometry and the auth token. Values are strings, like browser localStorage.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

const (
	KeyDocumentContent = "documentContent"
	KeyAuthToken       = "authToken"
)

var (
	ErrInvalidPath = errors.New("invalid state file path")
	ErrCorrupted   = errors.New("state file is corrupted")
)

func WindowPositionKey(windowID string) string { return "window:" + windowID + ":position" }
func WindowSizeKey(windowID string) string     { return "window:" + windowID + ":size" }

type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// GetJSON decodes the value stored under key. ok is false when the key is absent or the
// value does not decode.
func GetJSON(s Store, key string, v any) bool {
	raw, ok := s.Get(key)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(raw), v) == nil
}

func SetJSON(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return s.Set(key, string(data))
}

// MemoryStore держит все в памяти, для тестов и режима без файла.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// FileStore keeps the whole state as one JSON object and rewrites the file on every change.
type FileStore struct {
	mu   sync.RWMutex
	path string
	data map[string]string
	log  zerolog.Logger
}

// OpenFileStore loads path, creating the parent directory if needed. A missing or empty
// file is an empty store.
func OpenFileStore(path string, log zerolog.Logger) (*FileStore, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	fs := &FileStore{
		path: absPath,
		data: make(map[string]string),
		log:  log,
	}

	raw, err := os.ReadFile(absPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Info().Str("path", absPath).Msg("State file not found, starting empty")
		return fs, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read state file: %w", err)
	case len(raw) == 0:
		return fs, nil
	}

	if err := json.Unmarshal(raw, &fs.data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	if fs.data == nil {
		fs.data = make(map[string]string)
	}

	log.Debug().Str("path", absPath).Int("keys", len(fs.data)).Msg("State loaded")
	return fs, nil
}

func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Get(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.data[key]
	return v, ok
}

func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.data[key]
	if had && prev == value {
		return nil
	}
	f.data[key] = value

	if err := f.flushLocked(); err != nil {
		if had {
			f.data[key] = prev
		} else {
			delete(f.data, key)
		}
		return err
	}
	return nil
}

func (f *FileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.data[key]
	if !had {
		return nil
	}
	delete(f.data, key)

	if err := f.flushLocked(); err != nil {
		f.data[key] = prev
		return err
	}
	return nil
}

// Keys returns the stored keys in lexical order.
func (f *FileStore) Keys() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	keys := make([]string, 0, len(f.data))
	for k := range f.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// flushLocked пишет во временный файл и переименовывает, чтобы не оставить половину JSON
func (f *FileStore) flushLocked() error {
	data, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp state file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		f.log.Error().Err(err).Str("path", f.path).Msg("failed to replace state file")
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
