package inmemory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"webdesktop/internal/domain/models"
)

const initLastID = 0

// InmemoryStorage keeps users and shortcuts in maps. Used for tests and the "memory" DSN.
type InmemoryStorage struct {
	mu             sync.RWMutex
	users          map[int64]models.User
	usernames      map[string]int64
	shortcuts      map[int64]models.Shortcut
	lastUserID     int64
	lastShortcutID int64
}

func NewStorage() *InmemoryStorage {
	return &InmemoryStorage{
		users:          make(map[int64]models.User),
		usernames:      make(map[string]int64),
		shortcuts:      make(map[int64]models.Shortcut),
		lastUserID:     initLastID,
		lastShortcutID: initLastID,
	}
}

func (m *InmemoryStorage) UserCreate(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	if user.Username == "" || user.PasswordHash == "" {
		return models.User{}, models.ErrInvalidData
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.usernames[user.Username]; exists {
		return models.User{}, fmt.Errorf("%w: username %q", models.ErrConflict, user.Username)
	}

	m.lastUserID++
	user.ID = m.lastUserID
	m.users[user.ID] = user
	m.usernames[user.Username] = user.ID
	return user, nil
}

func (m *InmemoryStorage) UserGetByUsername(ctx context.Context, username string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	id, exists := m.usernames[username]
	if !exists {
		return models.User{}, models.ErrUnfound
	}
	return m.users[id], nil
}

func (m *InmemoryStorage) UserGetByID(ctx context.Context, id int64) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return models.User{}, models.ErrUnfound
	}
	return user, nil
}

func (m *InmemoryStorage) ShortcutCreate(ctx context.Context, s models.Shortcut) (models.Shortcut, error) {
	if err := ctx.Err(); err != nil {
		return models.Shortcut{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[s.UserID]; !exists {
		return models.Shortcut{}, fmt.Errorf("%w: unknown user %d", models.ErrInvalidData, s.UserID)
	}

	m.lastShortcutID++
	s.ID = m.lastShortcutID
	s.ActionParams = cloneBytes(s.ActionParams)
	m.shortcuts[s.ID] = s
	return s, nil
}

func (m *InmemoryStorage) ShortcutListByUser(ctx context.Context, userID int64) ([]models.Shortcut, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]models.Shortcut, 0)
	for _, s := range m.shortcuts {
		if s.UserID == userID {
			s.ActionParams = cloneBytes(s.ActionParams)
			result = append(result, s)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *InmemoryStorage) ShortcutUpdate(ctx context.Context, s models.Shortcut) (models.Shortcut, error) {
	if err := ctx.Err(); err != nil {
		return models.Shortcut{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, exists := m.shortcuts[s.ID]
	if !exists || existing.UserID != s.UserID {
		return models.Shortcut{}, models.ErrUnfound
	}

	existing.Name = s.Name
	existing.Icon = s.Icon
	existing.Action = s.Action
	existing.ActionParams = cloneBytes(s.ActionParams)
	existing.PositionX = s.PositionX
	existing.PositionY = s.PositionY
	existing.UpdatedAt = s.UpdatedAt
	m.shortcuts[s.ID] = existing
	return existing, nil
}

func (m *InmemoryStorage) ShortcutDelete(ctx context.Context, userID, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, exists := m.shortcuts[id]
	if !exists || existing.UserID != userID {
		return models.ErrUnfound
	}
	delete(m.shortcuts, id)
	return nil
}

func (m *InmemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *InmemoryStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = make(map[int64]models.User)
	m.usernames = make(map[string]int64)
	m.shortcuts = make(map[int64]models.Shortcut)
	m.lastUserID = initLastID
	m.lastShortcutID = initLastID
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
