// Package shortcuts manages desktop icons: the built-in set plus the user's own
// shortcuts kept on the backend. Position changes are saved debounced per shortcut.
package shortcuts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"webdesktop/internal/desktop/debounce"
	"webdesktop/internal/domain/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultSaveDelay = 500 * time.Millisecond

	defaultSaveTimeout = 10 * time.Second
)

// новые ярлыки появляются здесь
var createdPosition = Point{X: 100, Y: 100}

//go:generate mockgen -source=manager.go -destination=mocks/mocks.go -package=mocks
type Backend interface {
	ListShortcuts(ctx context.Context) ([]models.Shortcut, error)
	CreateShortcut(ctx context.Context, sc models.Shortcut) (int64, error)
	UpdateShortcut(ctx context.Context, sc models.Shortcut) error
	DeleteShortcut(ctx context.Context, id int64) error
}

type WindowOpener interface {
	Open(id string) bool
}

type Navigator interface {
	Navigate(url string)
}

type Notifier interface {
	Notify(message string)
}

type Point struct {
	X int
	Y int
}

// Shortcut is a rendered desktop icon. Key is local and stable; ID is the server id
// (zero for built-in icons).
type Shortcut struct {
	Key      string
	ID       int64
	Name     string
	Icon     string
	Action   Action
	Position Point
	Default  bool
}

type Config struct {
	// Icons is the catalogue of valid icon references; empty accepts any non-empty value.
	Icons       []string
	SaveDelay   time.Duration
	SaveTimeout time.Duration
	Scheduler   debounce.Scheduler
	// OnSaveError receives failures of debounced position saves.
	OnSaveError func(key string, err error)
}

type Manager struct {
	mu    sync.Mutex
	items []*Shortcut // сначала встроенные, потом пользовательские

	backend   Backend
	windows   WindowOpener
	navigator Navigator
	notifier  Notifier
	log       zerolog.Logger

	icons       map[string]struct{}
	saves       *debounce.Keyed[string]
	saveTimeout time.Duration
	onSaveError func(key string, err error)
}

func NewManager(cfg Config, backend Backend, windows WindowOpener, navigator Navigator, notifier Notifier, log *zerolog.Logger) *Manager {
	delay := cfg.SaveDelay
	if delay <= 0 {
		delay = DefaultSaveDelay
	}
	timeout := cfg.SaveTimeout
	if timeout <= 0 {
		timeout = defaultSaveTimeout
	}
	l := zerolog.Nop()
	if log != nil {
		l = *log
	}

	m := &Manager{
		backend:     backend,
		windows:     windows,
		navigator:   navigator,
		notifier:    notifier,
		log:         l,
		saves:       debounce.NewKeyed[string](delay, cfg.Scheduler),
		saveTimeout: timeout,
		onSaveError: cfg.OnSaveError,
	}

	if len(cfg.Icons) > 0 {
		m.icons = make(map[string]struct{}, len(cfg.Icons))
		for _, icon := range cfg.Icons {
			m.icons[icon] = struct{}{}
		}
	}

	for i, d := range defaultShortcuts {
		m.items = append(m.items, &Shortcut{
			Key:      d.key,
			Name:     d.name,
			Icon:     d.icon,
			Action:   OpenWindow{WindowID: d.window},
			Position: Point{X: defaultColumnX, Y: defaultRowY + i*defaultRowStep},
			Default:  true,
		})
	}
	return m
}

// Shortcuts returns the rendered icons in display order.
func (m *Manager) Shortcuts() []Shortcut {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := make([]Shortcut, len(m.items))
	for i, it := range m.items {
		list[i] = *it
	}
	return list
}

func (m *Manager) Shortcut(key string) (Shortcut, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	it := m.findLocked(key)
	if it == nil {
		return Shortcut{}, false
	}
	return *it, true
}

func (m *Manager) findLocked(key string) *Shortcut {
	for _, it := range m.items {
		if it.Key == key {
			return it
		}
	}
	return nil
}

func (m *Manager) indexLocked(key string) int {
	for i, it := range m.items {
		if it.Key == key {
			return i
		}
	}
	return -1
}

// List fetches the user's shortcuts from the backend. Errors are returned as is.
func (m *Manager) List(ctx context.Context) ([]Shortcut, error) {
	remote, err := m.backend.ListShortcuts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shortcuts: %w", err)
	}

	list := make([]Shortcut, len(remote))
	for i, sc := range remote {
		list[i] = fromModel(sc)
	}
	return list, nil
}

// Hydrate replaces the rendered user shortcuts with the backend's list. Built-in icons
// stay; shortcuts already rendered keep their local keys, and a position still waiting
// to be saved wins over the server's copy.
func (m *Manager) Hydrate(ctx context.Context) error {
	list, err := m.List(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	known := make(map[int64]*Shortcut)
	items := make([]*Shortcut, 0, len(m.items)+len(list))
	for _, it := range m.items {
		if it.Default {
			items = append(items, it)
		} else {
			known[it.ID] = it
		}
	}

	for i := range list {
		sc := list[i]
		if prev, ok := known[sc.ID]; ok {
			sc.Key = prev.Key
			if m.saves.Scheduled(prev.Key) {
				sc.Position = prev.Position
			}
			delete(known, sc.ID)
		} else {
			sc.Key = uuid.NewString()
		}
		items = append(items, &sc)
	}

	for _, prev := range known {
		m.saves.Cancel(prev.Key)
	}
	m.items = items

	m.log.Debug().Int("count", len(list)).Msg("shortcuts hydrated")
	return nil
}

// Create validates locally, creates the shortcut on the backend and renders it at the
// default spot.
func (m *Manager) Create(ctx context.Context, name, icon string, action Action) (Shortcut, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Shortcut{}, fmt.Errorf("%w: name is required", models.ErrInvalidData)
	}
	if action == nil {
		action = None{}
	}
	if err := validateAction(action); err != nil {
		return Shortcut{}, err
	}
	if icon == "" {
		icon = DefaultIcon
	}
	if err := m.validateIcon(icon); err != nil {
		return Shortcut{}, err
	}

	sc := Shortcut{Name: name, Icon: icon, Action: action, Position: createdPosition}
	req, err := toModel(sc)
	if err != nil {
		return Shortcut{}, err
	}

	id, err := m.backend.CreateShortcut(ctx, req)
	if err != nil {
		return Shortcut{}, fmt.Errorf("failed to create shortcut: %w", err)
	}

	sc.ID = id
	sc.Key = uuid.NewString()

	m.mu.Lock()
	m.items = append(m.items, &sc)
	m.mu.Unlock()

	return sc, nil
}

// Rename sends every field with the new name; the label changes once the backend agrees.
func (m *Manager) Rename(ctx context.Context, key, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", models.ErrInvalidData)
	}
	return m.update(ctx, key, func(sc *Shortcut) { sc.Name = name })
}

func (m *Manager) ChangeIcon(ctx context.Context, key, icon string) error {
	if err := m.validateIcon(icon); err != nil {
		return err
	}
	return m.update(ctx, key, func(sc *Shortcut) { sc.Icon = icon })
}

func (m *Manager) validateIcon(icon string) error {
	if strings.TrimSpace(icon) == "" {
		return fmt.Errorf("%w: icon is required", models.ErrInvalidData)
	}
	if m.icons == nil {
		return nil
	}
	if _, ok := m.icons[icon]; !ok {
		return fmt.Errorf("%w: unknown icon %q", models.ErrInvalidData, icon)
	}
	return nil
}

func (m *Manager) update(ctx context.Context, key string, change func(*Shortcut)) error {
	m.mu.Lock()
	it := m.findLocked(key)
	if it == nil {
		m.mu.Unlock()
		return fmt.Errorf("%w: shortcut %s", models.ErrUnfound, key)
	}
	if it.Default {
		m.mu.Unlock()
		return fmt.Errorf("%w: built-in shortcuts cannot be changed", models.ErrInvalidData)
	}
	next := *it
	m.mu.Unlock()

	change(&next)
	req, err := toModel(next)
	if err != nil {
		return err
	}
	if err := m.backend.UpdateShortcut(ctx, req); err != nil {
		return fmt.Errorf("failed to update shortcut: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if it := m.findLocked(key); it != nil {
		it.Name = next.Name
		it.Icon = next.Icon
	}
	return nil
}

// Move renders the new position at once; the save to the backend waits until the
// shortcut has not moved for the save delay and carries only the last position.
func (m *Manager) Move(key string, pos Point) error {
	m.mu.Lock()
	it := m.findLocked(key)
	if it == nil {
		m.mu.Unlock()
		return fmt.Errorf("%w: shortcut %s", models.ErrUnfound, key)
	}
	it.Position = pos
	persist := !it.Default && it.ID > 0
	m.mu.Unlock()

	if persist {
		m.saves.Trigger(key, func() { m.savePosition(key) })
	}
	return nil
}

func (m *Manager) savePosition(key string) {
	m.mu.Lock()
	it := m.findLocked(key)
	if it == nil {
		m.mu.Unlock()
		return
	}
	snapshot := *it
	m.mu.Unlock()

	req, err := toModel(snapshot)
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), m.saveTimeout)
		err = m.backend.UpdateShortcut(ctx, req)
		cancel()
	}
	if err != nil {
		m.log.Warn().Err(err).Str("shortcut", key).Int64("id", snapshot.ID).Msg("failed to save shortcut position")
		if m.onSaveError != nil {
			m.onSaveError(key, err)
		}
		return
	}
	m.log.Debug().Str("shortcut", key).Int("x", snapshot.Position.X).Int("y", snapshot.Position.Y).Msg("shortcut position saved")
}

// Remove deletes the shortcut on the backend and only then from the desktop.
func (m *Manager) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	it := m.findLocked(key)
	if it == nil {
		m.mu.Unlock()
		return fmt.Errorf("%w: shortcut %s", models.ErrUnfound, key)
	}
	if it.Default {
		m.mu.Unlock()
		return fmt.Errorf("%w: built-in shortcuts cannot be removed", models.ErrInvalidData)
	}
	id := it.ID
	m.mu.Unlock()

	if err := m.backend.DeleteShortcut(ctx, id); err != nil {
		return fmt.Errorf("failed to delete shortcut: %w", err)
	}

	m.saves.Cancel(key)

	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.indexLocked(key); i >= 0 {
		m.items = append(m.items[:i], m.items[i+1:]...)
	}
	return nil
}

// Activate runs the shortcut's action.
func (m *Manager) Activate(key string) error {
	m.mu.Lock()
	it := m.findLocked(key)
	if it == nil {
		m.mu.Unlock()
		return fmt.Errorf("%w: shortcut %s", models.ErrUnfound, key)
	}
	sc := *it
	m.mu.Unlock()

	switch a := sc.Action.(type) {
	case OpenWindow:
		if !m.windows.Open(a.WindowID) {
			m.notify(fmt.Sprintf("%s: window %q is not available", sc.Name, a.WindowID))
		}
	case OpenURL:
		m.navigator.Navigate(a.URL)
	case OpenApp:
		m.notify(fmt.Sprintf("%s: launching applications is not supported here (%s)", sc.Name, a.Path))
	case None, nil:
		m.windows.Open(FileBrowserWindow)
	default:
		return errors.New("unsupported shortcut action")
	}
	return nil
}

func (m *Manager) notify(msg string) {
	if m.notifier != nil {
		m.notifier.Notify(msg)
	}
}

// ClearUserShortcuts drops every rendered icon whose name is not a built-in name. The
// backend is not touched; pending position saves of dropped icons are cancelled.
func (m *Manager) ClearUserShortcuts() {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.items[:0]
	for _, it := range m.items {
		if it.Default || IsDefaultName(it.Name) {
			kept = append(kept, it)
			continue
		}
		m.saves.Cancel(it.Key)
	}
	// хвост обнуляем, чтобы не держать ссылки
	for i := len(kept); i < len(m.items); i++ {
		m.items[i] = nil
	}
	m.items = kept
}

// Flush sends pending position saves right away.
func (m *Manager) Flush() {
	m.saves.Flush()
}

func (m *Manager) PendingSaves() int {
	return m.saves.Pending()
}

func toModel(sc Shortcut) (models.Shortcut, error) {
	tag, params, err := EncodeAction(sc.Action)
	if err != nil {
		return models.Shortcut{}, err
	}
	return models.Shortcut{
		ID:           sc.ID,
		Name:         sc.Name,
		Icon:         sc.Icon,
		Action:       tag,
		ActionParams: params,
		PositionX:    sc.Position.X,
		PositionY:    sc.Position.Y,
	}, nil
}

func fromModel(sc models.Shortcut) Shortcut {
	return Shortcut{
		ID:       sc.ID,
		Name:     sc.Name,
		Icon:     sc.Icon,
		Action:   DecodeAction(sc.Action, sc.ActionParams),
		Position: Point{X: sc.PositionX, Y: sc.PositionY},
	}
}
