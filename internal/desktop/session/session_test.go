package session

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"
	"webdesktop/internal/config"
	"webdesktop/internal/desktop/client"
	"webdesktop/internal/desktop/localstore"
	"webdesktop/internal/desktop/session/mocks"
	"webdesktop/internal/domain/models"
	"webdesktop/internal/http/server"
	"webdesktop/internal/repository/inmemory"
	"webdesktop/internal/services/auth"
	"webdesktop/internal/services/shortcuts"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func signToken(t *testing.T, id int64, username string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           id,
		Username:         username,
	}).SignedString([]byte("whatever"))
	require.NoError(t, err)
	return token
}

type testEnv struct {
	backend   *mocks.MockBackend
	shortcuts *mocks.MockShortcuts
	store     *localstore.MemoryStore
	manager   *Manager
	states    []State
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	env := &testEnv{
		backend:   mocks.NewMockBackend(ctrl),
		shortcuts: mocks.NewMockShortcuts(ctrl),
		store:     localstore.NewMemoryStore(),
	}
	env.manager = NewManager(env.backend, env.shortcuts, env.store, nil)
	env.manager.OnChange(func(s State, _ Identity) {
		env.states = append(env.states, s)
	})
	return env
}

func TestManager_Register(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		password  string
		mockSetup func(*mocks.MockBackend)
		wantID    int64
		wantErr   error
	}{
		{
			name:      "Короткий пароль отклоняется без обращения к серверу",
			username:  "ab",
			password:  "12345",
			mockSetup: func(m *mocks.MockBackend) {},
			wantErr:   models.ErrInvalidData,
		},
		{
			name:      "Пустое имя",
			username:  "  ",
			password:  "123456",
			mockSetup: func(m *mocks.MockBackend) {},
			wantErr:   models.ErrInvalidData,
		},
		{
			name:     "Успешная регистрация",
			username: "ab",
			password: "123456",
			mockSetup: func(m *mocks.MockBackend) {
				m.EXPECT().Register(gomock.Any(), "ab", "123456").Return(int64(3), nil)
			},
			wantID: 3,
		},
		{
			name:     "Имя занято",
			username: "ab",
			password: "123456",
			mockSetup: func(m *mocks.MockBackend) {
				m.EXPECT().Register(gomock.Any(), "ab", "123456").
					Return(int64(0), &models.APIError{Status: 409, Message: "username already exists", Kind: models.ErrConflict})
			},
			wantErr: models.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			tt.mockSetup(env.backend)

			id, err := env.manager.Register(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, LoggedOut, env.manager.State())
		})
	}
}

func TestManager_Login(t *testing.T) {
	token := signToken(t, 5, "ab")

	t.Run("успешный вход", func(t *testing.T) {
		env := newTestEnv(t)
		gomock.InOrder(
			env.backend.EXPECT().Login(gomock.Any(), "ab", "123456").Return(token, nil),
			env.backend.EXPECT().SetToken(token),
			env.shortcuts.EXPECT().Hydrate(gomock.Any()).Return(nil),
		)

		require.NoError(t, env.manager.Login(context.Background(), " ab ", "123456"))

		identity, ok := env.manager.Identity()
		require.True(t, ok)
		assert.Equal(t, Identity{ID: 5, Username: "ab"}, identity)
		assert.Equal(t, []State{Authenticating, LoggedIn}, env.states)

		stored, ok := env.store.Get(localstore.KeyAuthToken)
		assert.True(t, ok)
		assert.Equal(t, token, stored)
	})

	t.Run("сообщение сервера возвращается как есть", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.EXPECT().Login(gomock.Any(), "ab", "bad").
			Return("", &models.APIError{Status: 401, Message: "invalid username or password", Kind: models.ErrUnauthorized})

		err := env.manager.Login(context.Background(), "ab", "bad")
		require.Error(t, err)
		assert.Equal(t, "invalid username or password", err.Error())
		assert.Equal(t, LoggedOut, env.manager.State())
		assert.Equal(t, []State{Authenticating, LoggedOut}, env.states)
	})

	t.Run("пустые поля", func(t *testing.T) {
		env := newTestEnv(t)
		assert.ErrorIs(t, env.manager.Login(context.Background(), "", "123456"), models.ErrInvalidData)
		assert.Empty(t, env.states)
	})

	t.Run("токен без личности", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.EXPECT().Login(gomock.Any(), "ab", "123456").Return("garbage", nil)

		err := env.manager.Login(context.Background(), "ab", "123456")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
		assert.Equal(t, LoggedOut, env.manager.State())
	})

	t.Run("ошибка загрузки ярлыков не отменяет вход", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.EXPECT().Login(gomock.Any(), "ab", "123456").Return(token, nil)
		env.backend.EXPECT().SetToken(token)
		env.shortcuts.EXPECT().Hydrate(gomock.Any()).Return(models.ErrNetwork)

		err := env.manager.Login(context.Background(), "ab", "123456")
		assert.ErrorIs(t, err, models.ErrNetwork)
		assert.Equal(t, LoggedIn, env.manager.State())
	})
}

func TestManager_LoginReplacesPreviousSession(t *testing.T) {
	tokenAB := signToken(t, 5, "ab")
	tokenCD := signToken(t, 6, "cd")

	login := func(env *testEnv) {
		env.backend.EXPECT().Login(gomock.Any(), "ab", "123456").Return(tokenAB, nil)
		env.backend.EXPECT().SetToken(tokenAB)
		env.shortcuts.EXPECT().Hydrate(gomock.Any()).Return(nil)
		require.NoError(t, env.manager.Login(context.Background(), "ab", "123456"))
	}

	t.Run("неудачный вход убирает прежнюю сессию", func(t *testing.T) {
		env := newTestEnv(t)
		login(env)

		gomock.InOrder(
			env.backend.EXPECT().SetToken(""),
			env.shortcuts.EXPECT().ClearUserShortcuts(),
			env.backend.EXPECT().Login(gomock.Any(), "cd", "bad").
				Return("", &models.APIError{Status: 403, Message: "wrong password", Kind: models.ErrUnauthorized}),
		)

		err := env.manager.Login(context.Background(), "cd", "bad")
		require.Error(t, err)
		assert.Equal(t, "wrong password", err.Error())

		assert.Equal(t, LoggedOut, env.manager.State())
		_, ok := env.manager.Identity()
		assert.False(t, ok)
		_, ok = env.store.Get(localstore.KeyAuthToken)
		assert.False(t, ok, "токен прежнего пользователя не должен остаться")
	})

	t.Run("вход другим пользователем", func(t *testing.T) {
		env := newTestEnv(t)
		login(env)

		gomock.InOrder(
			env.backend.EXPECT().SetToken(""),
			env.shortcuts.EXPECT().ClearUserShortcuts(),
			env.backend.EXPECT().Login(gomock.Any(), "cd", "123456").Return(tokenCD, nil),
			env.backend.EXPECT().SetToken(tokenCD),
			env.shortcuts.EXPECT().Hydrate(gomock.Any()).Return(nil),
		)

		require.NoError(t, env.manager.Login(context.Background(), "cd", "123456"))
		identity, ok := env.manager.Identity()
		require.True(t, ok)
		assert.Equal(t, Identity{ID: 6, Username: "cd"}, identity)
		stored, _ := env.store.Get(localstore.KeyAuthToken)
		assert.Equal(t, tokenCD, stored)
	})
}

func TestManager_RestoreSession(t *testing.T) {
	token := signToken(t, 5, "ab")

	t.Run("без токена", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.manager.RestoreSession(context.Background()))
		assert.Equal(t, LoggedOut, env.manager.State())
	})

	t.Run("действующий токен", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.store.Set(localstore.KeyAuthToken, token))
		gomock.InOrder(
			env.backend.EXPECT().SetToken(token),
			env.backend.EXPECT().ValidateToken(gomock.Any()).Return(nil),
			env.shortcuts.EXPECT().Hydrate(gomock.Any()).Return(nil),
		)

		require.NoError(t, env.manager.RestoreSession(context.Background()))
		identity, ok := env.manager.Identity()
		require.True(t, ok)
		assert.Equal(t, "ab", identity.Username)
	})

	t.Run("отклоненный токен удаляется", func(t *testing.T) {
		env := newTestEnv(t)
		require.NoError(t, env.store.Set(localstore.KeyAuthToken, token))
		env.backend.EXPECT().SetToken(token)
		env.backend.EXPECT().ValidateToken(gomock.Any()).
			Return(&models.APIError{Status: 403, Message: "invalid or expired token", Kind: models.ErrUnauthorized})
		env.backend.EXPECT().SetToken("")

		err := env.manager.RestoreSession(context.Background())
		assert.ErrorIs(t, err, models.ErrUnauthorized)
		assert.Equal(t, LoggedOut, env.manager.State())
		_, ok := env.store.Get(localstore.KeyAuthToken)
		assert.False(t, ok)
	})
}

func TestManager_LogoutAndHandleError(t *testing.T) {
	token := signToken(t, 5, "ab")

	env := newTestEnv(t)
	env.backend.EXPECT().Login(gomock.Any(), "ab", "123456").Return(token, nil)
	env.backend.EXPECT().SetToken(token)
	env.shortcuts.EXPECT().Hydrate(gomock.Any()).Return(nil)
	require.NoError(t, env.manager.Login(context.Background(), "ab", "123456"))

	assert.False(t, env.manager.HandleError(models.ErrNetwork))
	assert.False(t, env.manager.HandleError(nil))
	assert.Equal(t, LoggedIn, env.manager.State())

	env.backend.EXPECT().SetToken("")
	env.shortcuts.EXPECT().ClearUserShortcuts()
	assert.True(t, env.manager.HandleError(fmt.Errorf("save: %w", models.ErrUnauthorized)))

	assert.Equal(t, LoggedOut, env.manager.State())
	_, ok := env.manager.Identity()
	assert.False(t, ok)
	_, ok = env.store.Get(localstore.KeyAuthToken)
	assert.False(t, ok)

	// повторная ошибка после выхода ничего не делает
	assert.False(t, env.manager.HandleError(models.ErrUnauthorized))
}

type noShortcuts struct{}

func (noShortcuts) Hydrate(context.Context) error { return nil }
func (noShortcuts) ClearUserShortcuts()           {}

func TestManager_AgainstServer(t *testing.T) {
	storage := inmemory.NewStorage()
	secret := base64.StdEncoding.EncodeToString([]byte("session-test-secret-32-bytes-lng"))
	authService, err := auth.NewAuthentication(storage, secret, time.Hour)
	require.NoError(t, err)

	log := zerolog.Nop()
	srv, err := server.NewServer(&log, config.Config{ServerAddress: "localhost:0"}, authService, shortcuts.NewService(storage))
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	store := localstore.NewMemoryStore()
	ctx := context.Background()

	m := NewManager(client.NewClient(ts.Client(), ts.URL, &log), noShortcuts{}, store, &log)

	_, err = m.Register(ctx, "ab", "12345")
	assert.ErrorIs(t, err, models.ErrInvalidData)

	_, err = m.Register(ctx, "ab", "123456")
	require.NoError(t, err)

	err = m.Login(ctx, "ab", "wrong-password")
	require.Error(t, err)
	assert.True(t, client.IsAuth(err))

	require.NoError(t, m.Login(ctx, "ab", "123456"))
	identity, ok := m.Identity()
	require.True(t, ok)
	assert.Equal(t, "ab", identity.Username)

	// новый экземпляр поднимает сессию из сохраненного токена
	restored := NewManager(client.NewClient(ts.Client(), ts.URL, &log), noShortcuts{}, store, &log)
	require.NoError(t, restored.RestoreSession(ctx))
	assert.Equal(t, LoggedIn, restored.State())

	m.Logout()
	assert.Equal(t, LoggedOut, m.State())

	fresh := NewManager(client.NewClient(ts.Client(), ts.URL, &log), noShortcuts{}, store, &log)
	require.NoError(t, fresh.RestoreSession(ctx))
	assert.Equal(t, LoggedOut, fresh.State())
}
