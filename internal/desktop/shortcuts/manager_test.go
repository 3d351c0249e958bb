package shortcuts

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
	"webdesktop/internal/desktop/debounce"
	"webdesktop/internal/desktop/shortcuts/mocks"
	"webdesktop/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	m        *Manager
	backend  *mocks.MockBackend
	windows  *mocks.MockWindowOpener
	nav      *mocks.MockNavigator
	notifier *mocks.MockNotifier
	clock    *debounce.FakeClock
	saveErrs []error
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		backend:  mocks.NewMockBackend(ctrl),
		windows:  mocks.NewMockWindowOpener(ctrl),
		nav:      mocks.NewMockNavigator(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		clock:    debounce.NewFakeClock(),
	}
	env.m = NewManager(Config{
		Icons:       []string{DefaultIcon, "img/pasta.png", "img/chrome.png"},
		SaveDelay:   DefaultSaveDelay,
		Scheduler:   env.clock.Schedule,
		OnSaveError: func(_ string, err error) { env.saveErrs = append(env.saveErrs, err) },
	}, env.backend, env.windows, env.nav, env.notifier, nil)
	return env
}

// hydrate renders the given server shortcuts and returns their local keys by id.
func (e *testEnv) hydrate(t *testing.T, remote ...models.Shortcut) map[int64]string {
	t.Helper()
	e.backend.EXPECT().ListShortcuts(gomock.Any()).Return(remote, nil)
	require.NoError(t, e.m.Hydrate(context.Background()))

	keys := make(map[int64]string)
	for _, sc := range e.m.Shortcuts() {
		if !sc.Default {
			keys[sc.ID] = sc.Key
		}
	}
	return keys
}

func userShortcuts(m *Manager) []Shortcut {
	var out []Shortcut
	for _, sc := range m.Shortcuts() {
		if !sc.Default {
			out = append(out, sc)
		}
	}
	return out
}

func TestManager_Defaults(t *testing.T) {
	env := newTestEnv(t)

	list := env.m.Shortcuts()
	require.Len(t, list, len(defaultShortcuts))

	names := make([]string, 0, len(list))
	for _, sc := range list {
		assert.True(t, sc.Default)
		assert.Zero(t, sc.ID)
		names = append(names, sc.Name)
	}
	assert.Equal(t, []string{"Documents", "This Computer", "Chrome", "VS Code", "Spotify", "Trash", "Folder"}, names)
}

func TestManager_HydrateKeepsDefaultsAndKeys(t *testing.T) {
	env := newTestEnv(t)

	keys := env.hydrate(t,
		models.Shortcut{ID: 1, Name: "Notes", Icon: DefaultIcon, Action: "open-url", ActionParams: []byte(`{"url":"https://x.com"}`), PositionX: 5, PositionY: 6},
		models.Shortcut{ID: 2, Name: "Broken", Icon: DefaultIcon, Action: "open-url", ActionParams: []byte(`{`)},
	)
	require.Len(t, keys, 2)

	users := userShortcuts(env.m)
	require.Len(t, users, 2)
	assert.Equal(t, OpenURL{URL: "https://x.com"}, users[0].Action)
	assert.Equal(t, Point{X: 5, Y: 6}, users[0].Position)
	assert.Equal(t, None{}, users[1].Action, "битые параметры действия дают None")

	// повторная гидратация сохраняет локальные ключи и убирает исчезнувшие
	again := env.hydrate(t, models.Shortcut{ID: 1, Name: "Notes", Icon: DefaultIcon})
	assert.Equal(t, keys[1], again[1])
	assert.Len(t, userShortcuts(env.m), 1)
	assert.Len(t, env.m.Shortcuts(), len(defaultShortcuts)+1)
}

func TestManager_HydrateKeepsPendingPosition(t *testing.T) {
	env := newTestEnv(t)
	remote := models.Shortcut{ID: 7, Name: "Notes", Icon: DefaultIcon, PositionX: 10, PositionY: 10}

	keys := env.hydrate(t, remote)
	key := keys[7]
	require.NoError(t, env.m.Move(key, Point{X: 400, Y: 300}))

	// сервер еще не знает о перетаскивании
	env.hydrate(t, remote)
	sc, ok := env.m.Shortcut(key)
	require.True(t, ok)
	assert.Equal(t, Point{X: 400, Y: 300}, sc.Position)

	env.backend.EXPECT().UpdateShortcut(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got models.Shortcut) error {
			assert.Equal(t, int64(7), got.ID)
			assert.Equal(t, 400, got.PositionX)
			assert.Equal(t, 300, got.PositionY)
			return nil
		})
	env.clock.Advance(DefaultSaveDelay)
	assert.Empty(t, env.saveErrs)

	// без отложенного сохранения побеждает сервер
	remote.PositionX, remote.PositionY = 50, 60
	env.hydrate(t, remote)
	sc, _ = env.m.Shortcut(key)
	assert.Equal(t, Point{X: 50, Y: 60}, sc.Position)
}

func TestManager_ListPropagatesErrors(t *testing.T) {
	env := newTestEnv(t)
	env.backend.EXPECT().ListShortcuts(gomock.Any()).Return(nil, models.ErrUnauthorized)

	err := env.m.Hydrate(context.Background())
	assert.ErrorIs(t, err, models.ErrUnauthorized)
	assert.Len(t, env.m.Shortcuts(), len(defaultShortcuts))
}

func TestManager_Create(t *testing.T) {
	tests := []struct {
		name    string
		scName  string
		icon    string
		action  Action
		setup   func(*mocks.MockBackend)
		wantErr error
	}{
		{
			name:   "успешное создание",
			scName: "Test",
			icon:   "img/pasta.png",
			action: OpenURL{URL: "https://x.com"},
			setup: func(b *mocks.MockBackend) {
				b.EXPECT().CreateShortcut(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sc models.Shortcut) (int64, error) {
						assert.Equal(t, "Test", sc.Name)
						assert.Equal(t, "open-url", sc.Action)
						assert.JSONEq(t, `{"url":"https://x.com"}`, string(sc.ActionParams))
						assert.Equal(t, 100, sc.PositionX)
						assert.Equal(t, 100, sc.PositionY)
						return 42, nil
					})
			},
		},
		{name: "пустое имя", scName: "  ", action: None{}, setup: func(*mocks.MockBackend) {}, wantErr: models.ErrInvalidData},
		{name: "пустой url", scName: "Link", action: OpenURL{}, setup: func(*mocks.MockBackend) {}, wantErr: models.ErrInvalidData},
		{name: "пустой путь приложения", scName: "App", action: OpenApp{Path: ""}, setup: func(*mocks.MockBackend) {}, wantErr: models.ErrInvalidData},
		{name: "неизвестная иконка", scName: "X", icon: "img/unknown.png", setup: func(*mocks.MockBackend) {}, wantErr: models.ErrInvalidData},
		{
			name:   "ошибка сети",
			scName: "Test",
			setup: func(b *mocks.MockBackend) {
				b.EXPECT().CreateShortcut(gomock.Any(), gomock.Any()).Return(int64(0), models.ErrNetwork)
			},
			wantErr: models.ErrNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			tt.setup(env.backend)

			sc, err := env.m.Create(context.Background(), tt.scName, tt.icon, tt.action)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, userShortcuts(env.m))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(42), sc.ID)
			assert.NotEmpty(t, sc.Key)
			assert.Equal(t, Point{X: 100, Y: 100}, sc.Position)

			users := userShortcuts(env.m)
			require.Len(t, users, 1)
			assert.Equal(t, sc, users[0])
		})
	}
}

func TestManager_Rename(t *testing.T) {
	env := newTestEnv(t)
	keys := env.hydrate(t, models.Shortcut{ID: 1, Name: "Notes", Icon: DefaultIcon, PositionX: 3, PositionY: 4})
	key := keys[1]

	t.Run("пустое имя не отправляется", func(t *testing.T) {
		err := env.m.Rename(context.Background(), key, "")
		assert.ErrorIs(t, err, models.ErrInvalidData)
		sc, _ := env.m.Shortcut(key)
		assert.Equal(t, "Notes", sc.Name)
	})

	t.Run("ошибка сервера оставляет старое имя", func(t *testing.T) {
		env.backend.EXPECT().UpdateShortcut(gomock.Any(), gomock.Any()).Return(models.ErrNetwork)
		err := env.m.Rename(context.Background(), key, "Other")
		assert.ErrorIs(t, err, models.ErrNetwork)
		sc, _ := env.m.Shortcut(key)
		assert.Equal(t, "Notes", sc.Name)
	})

	t.Run("успех", func(t *testing.T) {
		env.backend.EXPECT().UpdateShortcut(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sc models.Shortcut) error {
				assert.Equal(t, models.Shortcut{ID: 1, Name: "Diary", Icon: DefaultIcon, PositionX: 3, PositionY: 4}, sc)
				return nil
			})
		require.NoError(t, env.m.Rename(context.Background(), key, "Diary"))
		sc, _ := env.m.Shortcut(key)
		assert.Equal(t, "Diary", sc.Name)
	})

	t.Run("встроенный ярлык", func(t *testing.T) {
		err := env.m.Rename(context.Background(), "default-chrome", "Firefox")
		assert.ErrorIs(t, err, models.ErrInvalidData)
	})

	t.Run("неизвестный ключ", func(t *testing.T) {
		err := env.m.Rename(context.Background(), "nope", "Name")
		assert.ErrorIs(t, err, models.ErrUnfound)
	})
}

func TestManager_ChangeIcon(t *testing.T) {
	env := newTestEnv(t)
	key := env.hydrate(t, models.Shortcut{ID: 1, Name: "Notes", Icon: DefaultIcon})[1]

	assert.ErrorIs(t, env.m.ChangeIcon(context.Background(), key, "img/nope.png"), models.ErrInvalidData)
	assert.ErrorIs(t, env.m.ChangeIcon(context.Background(), key, ""), models.ErrInvalidData)

	env.backend.EXPECT().UpdateShortcut(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, env.m.ChangeIcon(context.Background(), key, "img/chrome.png"))

	sc, _ := env.m.Shortcut(key)
	assert.Equal(t, "img/chrome.png", sc.Icon)
}

func TestManager_MoveDebouncesPerShortcut(t *testing.T) {
	env := newTestEnv(t)
	keys := env.hydrate(t,
		models.Shortcut{ID: 1, Name: "A", Icon: DefaultIcon},
		models.Shortcut{ID: 2, Name: "B", Icon: DefaultIcon},
	)

	var saved []models.Shortcut
	env.backend.EXPECT().UpdateShortcut(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sc models.Shortcut) error {
			saved = append(saved, sc)
			return nil
		}).Times(2)

	for i := 1; i <= 10; i++ {
		require.NoError(t, env.m.Move(keys[1], Point{X: i * 10, Y: i}))
		sc, _ := env.m.Shortcut(keys[1])
		assert.Equal(t, Point{X: i * 10, Y: i}, sc.Position, "отрисовка обновляется сразу")
		env.clock.Advance(40 * time.Millisecond)
	}
	require.NoError(t, env.m.Move(keys[2], Point{X: 7, Y: 7}))

	assert.Empty(t, saved)
	assert.Equal(t, 2, env.m.PendingSaves())

	env.clock.Advance(DefaultSaveDelay)

	require.Len(t, saved, 2)
	byID := map[int64]models.Shortcut{saved[0].ID: saved[0], saved[1].ID: saved[1]}
	assert.Equal(t, 100, byID[1].PositionX)
	assert.Equal(t, 10, byID[1].PositionY)
	assert.Equal(t, 7, byID[2].PositionX)
	assert.Zero(t, env.m.PendingSaves())
}

func TestManager_MoveDefaultIsLocalOnly(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.m.Move("default-trash", Point{X: 500, Y: 500}))
	env.clock.Advance(DefaultSaveDelay)

	sc, _ := env.m.Shortcut("default-trash")
	assert.Equal(t, Point{X: 500, Y: 500}, sc.Position)
	assert.Zero(t, env.m.PendingSaves())

	assert.ErrorIs(t, env.m.Move("nope", Point{}), models.ErrUnfound)
}

func TestManager_MoveSaveErrorIsReported(t *testing.T) {
	env := newTestEnv(t)
	key := env.hydrate(t, models.Shortcut{ID: 1, Name: "A", Icon: DefaultIcon})[1]

	env.backend.EXPECT().UpdateShortcut(gomock.Any(), gomock.Any()).Return(models.ErrUnauthorized)

	require.NoError(t, env.m.Move(key, Point{X: 1, Y: 1}))
	env.clock.Advance(DefaultSaveDelay)

	require.Len(t, env.saveErrs, 1)
	assert.ErrorIs(t, env.saveErrs[0], models.ErrUnauthorized)
}

func TestManager_Flush(t *testing.T) {
	env := newTestEnv(t)
	key := env.hydrate(t, models.Shortcut{ID: 1, Name: "A", Icon: DefaultIcon})[1]

	env.backend.EXPECT().UpdateShortcut(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sc models.Shortcut) error {
			assert.Equal(t, 33, sc.PositionX)
			return nil
		})

	require.NoError(t, env.m.Move(key, Point{X: 33, Y: 0}))
	env.m.Flush()
	assert.Zero(t, env.m.PendingSaves())

	// таймер после Flush ничего не отправляет повторно
	env.clock.Advance(DefaultSaveDelay)
}

func TestManager_Remove(t *testing.T) {
	env := newTestEnv(t)
	key := env.hydrate(t, models.Shortcut{ID: 9, Name: "Gone", Icon: DefaultIcon})[9]

	t.Run("не найден на сервере", func(t *testing.T) {
		env.backend.EXPECT().DeleteShortcut(gomock.Any(), int64(9)).
			Return(&models.APIError{Status: 404, Message: "shortcut not found", Kind: models.ErrUnfound})

		err := env.m.Remove(context.Background(), key)
		assert.ErrorIs(t, err, models.ErrUnfound)

		_, stillThere := env.m.Shortcut(key)
		assert.True(t, stillThere, "иконка остается до подтверждения сервера")
	})

	t.Run("встроенный ярлык", func(t *testing.T) {
		assert.ErrorIs(t, env.m.Remove(context.Background(), "default-folder"), models.ErrInvalidData)
	})

	t.Run("успех отменяет отложенное сохранение", func(t *testing.T) {
		require.NoError(t, env.m.Move(key, Point{X: 1, Y: 1}))
		env.backend.EXPECT().DeleteShortcut(gomock.Any(), int64(9)).Return(nil)

		require.NoError(t, env.m.Remove(context.Background(), key))
		_, stillThere := env.m.Shortcut(key)
		assert.False(t, stillThere)
		assert.Zero(t, env.m.PendingSaves())

		env.clock.Advance(DefaultSaveDelay)
	})
}

func TestManager_Activate(t *testing.T) {
	env := newTestEnv(t)
	keys := env.hydrate(t,
		models.Shortcut{ID: 1, Name: "Site", Action: "open-url", ActionParams: []byte(`{"url":"https://x.com"}`)},
		models.Shortcut{ID: 2, Name: "App", Action: "open-app", ActionParams: []byte(`{"path":"/usr/bin/app"}`)},
		models.Shortcut{ID: 3, Name: "Plain"},
		models.Shortcut{ID: 4, Name: "Music", Action: "open-window", ActionParams: []byte(`{"window_id":"spotify-window"}`)},
		models.Shortcut{ID: 5, Name: "Ghost", Action: "open-window", ActionParams: []byte(`{"window_id":"ghost-window"}`)},
	)

	gomock.InOrder(
		env.windows.EXPECT().Open("word-window").Return(true),
		env.nav.EXPECT().Navigate("https://x.com"),
		env.notifier.EXPECT().Notify(gomock.Any()),
		env.windows.EXPECT().Open(FileBrowserWindow).Return(true),
		env.windows.EXPECT().Open("spotify-window").Return(true),
		env.windows.EXPECT().Open("ghost-window").Return(false),
		env.notifier.EXPECT().Notify(gomock.Any()),
	)

	require.NoError(t, env.m.Activate("default-documents"))
	require.NoError(t, env.m.Activate(keys[1]))
	require.NoError(t, env.m.Activate(keys[2]))
	require.NoError(t, env.m.Activate(keys[3]))
	require.NoError(t, env.m.Activate(keys[4]))
	require.NoError(t, env.m.Activate(keys[5]))

	assert.ErrorIs(t, env.m.Activate("nope"), models.ErrUnfound)
}

func TestManager_ClearUserShortcuts(t *testing.T) {
	env := newTestEnv(t)
	keys := env.hydrate(t,
		models.Shortcut{ID: 1, Name: "Notes", Icon: DefaultIcon},
		models.Shortcut{ID: 2, Name: "Chrome", Icon: DefaultIcon},
	)

	require.NoError(t, env.m.Move(keys[1], Point{X: 1, Y: 1}))
	env.m.ClearUserShortcuts()

	_, ok := env.m.Shortcut(keys[1])
	assert.False(t, ok)
	assert.Zero(t, env.m.PendingSaves())

	// пользовательский ярлык с именем встроенного неотличим от него по имени
	_, ok = env.m.Shortcut(keys[2])
	assert.True(t, ok)

	for _, sc := range env.m.Shortcuts() {
		assert.True(t, IsDefaultName(sc.Name), sc.Name)
	}

	env.clock.Advance(DefaultSaveDelay)
}

func TestActionCodec(t *testing.T) {
	actions := []Action{
		OpenWindow{WindowID: "word-window"},
		OpenURL{URL: "https://x.com"},
		OpenApp{Path: "/opt/app"},
		None{},
	}

	for _, a := range actions {
		t.Run(fmt.Sprint(a), func(t *testing.T) {
			tag, params, err := EncodeAction(a)
			require.NoError(t, err)
			assert.Equal(t, a, DecodeAction(tag, params))
		})
	}

	assert.Equal(t, None{}, DecodeAction("open-url", nil))
	assert.Equal(t, None{}, DecodeAction("teleport", []byte(`{"url":"x"}`)))
	assert.Equal(t, None{}, DecodeAction("open-window", []byte(`{}`)))
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("url", "https://x.com")
	require.NoError(t, err)
	assert.Equal(t, OpenURL{URL: "https://x.com"}, a)

	a, err = ParseAction("", "")
	require.NoError(t, err)
	assert.Equal(t, None{}, a)

	_, err = ParseAction("teleport", "")
	assert.True(t, errors.Is(err, models.ErrInvalidData))
}
