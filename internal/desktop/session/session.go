// Package session tracks who is logged into the desktop. The bearer token is kept in
// device storage so a restart can resume the session while the token is still valid.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"webdesktop/internal/desktop/localstore"
	"webdesktop/internal/domain/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
)

type State int

const (
	LoggedOut State = iota
	Authenticating
	LoggedIn
)

func (s State) String() string {
	switch s {
	case LoggedOut:
		return "logged out"
	case Authenticating:
		return "authenticating"
	case LoggedIn:
		return "logged in"
	default:
		return "unknown"
	}
}

type Identity struct {
	ID       int64
	Username string
}

//go:generate mockgen -source=session.go -destination=mocks/mocks.go -package=mocks
type Backend interface {
	Register(ctx context.Context, username, password string) (int64, error)
	Login(ctx context.Context, username, password string) (string, error)
	ValidateToken(ctx context.Context) error
	SetToken(token string)
}

type Shortcuts interface {
	Hydrate(ctx context.Context) error
	ClearUserShortcuts()
}

type Manager struct {
	mu        sync.Mutex
	state     State
	identity  Identity
	token     string
	observers []func(State, Identity)

	backend   Backend
	shortcuts Shortcuts
	store     localstore.Store
	log       zerolog.Logger
}

func NewManager(backend Backend, shortcuts Shortcuts, store localstore.Store, log *zerolog.Logger) *Manager {
	if store == nil {
		store = localstore.NewMemoryStore()
	}
	l := zerolog.Nop()
	if log != nil {
		l = *log
	}
	return &Manager{
		state:     LoggedOut,
		backend:   backend,
		shortcuts: shortcuts,
		store:     store,
		log:       l,
	}
}

// OnChange registers fn to be called after every state change.
func (m *Manager) OnChange(fn func(State, Identity)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, fn)
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Identity returns the logged-in user.
func (m *Manager) Identity() (Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != LoggedIn {
		return Identity{}, false
	}
	return m.identity, true
}

func (m *Manager) setState(state State, identity Identity, token string) {
	m.mu.Lock()
	m.state = state
	m.identity = identity
	m.token = token
	observers := append([]func(State, Identity){}, m.observers...)
	m.mu.Unlock()

	for _, fn := range observers {
		fn(state, identity)
	}
}

// RestoreSession resumes the session from the token in device storage. No token means
// LoggedOut without error; a token the backend rejects is discarded.
func (m *Manager) RestoreSession(ctx context.Context) error {
	token, ok := m.store.Get(localstore.KeyAuthToken)
	if !ok || strings.TrimSpace(token) == "" {
		m.setState(LoggedOut, Identity{}, "")
		return nil
	}

	m.setState(Authenticating, Identity{}, "")
	m.backend.SetToken(token)

	identity, err := identityFromToken(token)
	if err == nil {
		err = m.backend.ValidateToken(ctx)
	}
	if err != nil {
		m.log.Info().Err(err).Msg("stored session is not valid, logging out")
		m.discard()
		return fmt.Errorf("failed to restore session: %w", err)
	}

	m.setState(LoggedIn, identity, token)
	m.log.Info().Str("username", identity.Username).Msg("session restored")
	return m.hydrate(ctx)
}

// Login authenticates against the backend. On failure the backend's message is returned
// unchanged. A previous session is ended first, so a failed attempt leaves nothing of it.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", models.ErrInvalidData)
	}

	if m.hasSession() {
		m.Logout()
	}

	m.setState(Authenticating, Identity{}, "")

	token, err := m.backend.Login(ctx, username, password)
	if err != nil {
		m.setState(LoggedOut, Identity{}, "")
		return err
	}

	identity, err := identityFromToken(token)
	if err != nil {
		m.setState(LoggedOut, Identity{}, "")
		return err
	}

	m.backend.SetToken(token)
	if err := m.store.Set(localstore.KeyAuthToken, token); err != nil {
		// сессия работает и без сохраненного токена, просто не переживет перезапуск
		m.log.Warn().Err(err).Msg("failed to persist auth token")
	}

	m.setState(LoggedIn, identity, token)
	m.log.Info().Str("username", identity.Username).Msg("logged in")
	return m.hydrate(ctx)
}

// Register creates an account. It does not log in.
func (m *Manager) Register(ctx context.Context, username, password string) (int64, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, fmt.Errorf("%w: username is required", models.ErrInvalidData)
	}
	if len(password) < models.MinPasswordLength {
		return 0, fmt.Errorf("%w: password must be at least %d characters", models.ErrInvalidData, models.MinPasswordLength)
	}
	return m.backend.Register(ctx, username, password)
}

// Logout clears the identity, the stored token and the user's icons. It cannot fail.
func (m *Manager) Logout() {
	m.discard()
	m.shortcuts.ClearUserShortcuts()
	m.log.Info().Msg("logged out")
}

func (m *Manager) hasSession() bool {
	if m.State() == LoggedIn {
		return true
	}
	token, ok := m.store.Get(localstore.KeyAuthToken)
	return ok && token != ""
}

func (m *Manager) discard() {
	m.backend.SetToken("")
	if err := m.store.Delete(localstore.KeyAuthToken); err != nil {
		m.log.Warn().Err(err).Msg("failed to remove stored auth token")
	}
	m.setState(LoggedOut, Identity{}, "")
}

// HandleError forces a logout when err is an authentication failure. Reports whether it did.
func (m *Manager) HandleError(err error) bool {
	if !errors.Is(err, models.ErrUnauthorized) {
		return false
	}
	if m.State() == LoggedOut {
		return false
	}
	m.log.Warn().Err(err).Msg("authentication lost, forcing logout")
	m.Logout()
	return true
}

func (m *Manager) hydrate(ctx context.Context) error {
	if err := m.shortcuts.Hydrate(ctx); err != nil {
		m.HandleError(err)
		return err
	}
	return nil
}

// identityFromToken reads the claims without checking the signature: the backend has
// already verified the token it issued or accepted.
func identityFromToken(token string) (Identity, error) {
	claims := &models.TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Identity{}, fmt.Errorf("%w: malformed token: %v", models.ErrUnauthorized, err)
	}
	if claims.UserID <= 0 || claims.Username == "" {
		return Identity{}, fmt.Errorf("%w: token carries no identity", models.ErrUnauthorized)
	}
	return Identity{ID: claims.UserID, Username: claims.Username}, nil
}
