package windows

import (
	"math/rand"
	"testing"
	"webdesktop/internal/desktop/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIDs = []string{"word-window", "explorer-window", "chrome-window", "vscode-window", "spotify-window"}

func newTestManager(t *testing.T, store localstore.Store) *Manager {
	t.Helper()
	decls := make([]Decl, 0, len(testIDs))
	for _, id := range testIDs {
		decls = append(decls, Decl{ID: id, Title: id, Size: Size{Width: 400, Height: 300}})
	}
	return NewManager(Config{Windows: decls, Viewport: Size{Width: 1200, Height: 900}}, store, nil)
}

func mustWindow(t *testing.T, m *Manager, id string) Window {
	t.Helper()
	w, ok := m.Window(id)
	require.True(t, ok, "window %s", id)
	return w
}

func TestTaskbarID(t *testing.T) {
	assert.Equal(t, "word-taskbar-icon", TaskbarID("word-window"))
	assert.Equal(t, "vscode-taskbar-icon", TaskbarID("vscode-window"))
	assert.Equal(t, "solo-taskbar-icon", TaskbarID("solo"))
}

func TestManager_OpenCentersAndStacks(t *testing.T) {
	m := newTestManager(t, nil)

	require.True(t, m.Open("word-window"))
	w := mustWindow(t, m, "word-window")
	assert.True(t, w.Visible)
	assert.Equal(t, int64(DefaultZBase+1), w.Z)
	assert.Equal(t, Point{X: (1200 - 400) / 2, Y: (900 - 300) / 3}, w.Position)

	require.True(t, m.Open("chrome-window"))
	front, ok := m.Front()
	require.True(t, ok)
	assert.Equal(t, "chrome-window", front.ID)

	items := m.Taskbar()
	require.Len(t, items, 2)
	assert.Equal(t, "word-taskbar-icon", items[0].ID)
	assert.Equal(t, "chrome-taskbar-icon", items[1].ID)
	assert.True(t, items[1].Active)
	assert.False(t, items[0].Active)
}

func TestManager_UnknownIDsAreNoOps(t *testing.T) {
	m := newTestManager(t, nil)

	assert.False(t, m.Open("nope"))
	assert.False(t, m.Close("nope"))
	assert.False(t, m.Focus("nope"))
	assert.False(t, m.Minimize("nope"))
	assert.False(t, m.Restore("nope"))
	assert.False(t, m.ToggleMaximize("nope"))
	assert.False(t, m.BeginDrag("nope", Point{}))
	assert.False(t, m.DragTo(Point{X: 5}))
	assert.NoError(t, m.EndDrag())

	_, ok := m.Front()
	assert.False(t, ok)
}

func TestManager_CloseKeepsPositionAndReopenRaises(t *testing.T) {
	m := newTestManager(t, nil)

	m.Open("word-window")
	require.True(t, m.BeginDrag("word-window", Point{X: 10, Y: 10}))
	m.DragTo(Point{X: 60, Y: 30})
	require.NoError(t, m.EndDrag())
	before := mustWindow(t, m, "word-window")

	m.Open("explorer-window")
	require.True(t, m.Close("word-window"))

	closed := mustWindow(t, m, "word-window")
	assert.False(t, closed.Visible)
	assert.Equal(t, before.Position, closed.Position)
	assert.Equal(t, before.Z, closed.Z)
	assert.Len(t, m.Taskbar(), 1)

	m.Open("word-window")
	reopened := mustWindow(t, m, "word-window")
	assert.Equal(t, before.Position, reopened.Position)
	assert.Greater(t, reopened.Z, mustWindow(t, m, "explorer-window").Z)
}

func TestManager_ZOrderProperty(t *testing.T) {
	m := newTestManager(t, nil)
	rnd := rand.New(rand.NewSource(42))

	var last string
	for i := 0; i < 500; i++ {
		id := testIDs[rnd.Intn(len(testIDs))]
		switch rnd.Intn(3) {
		case 0:
			m.Open(id)
			last = id
		case 1:
			m.Focus(id)
			last = id
		case 2:
			m.Close(id)
		}

		if last == "" {
			continue
		}
		top := mustWindow(t, m, last)
		for _, w := range m.Windows() {
			if w.ID != last {
				require.Less(t, w.Z, top.Z, "step %d: %s must be strictly on top", i, last)
			}
		}
	}
}

func TestManager_MinimizeRestore(t *testing.T) {
	m := newTestManager(t, nil)

	assert.False(t, m.Minimize("word-window"), "закрытое окно не сворачивается")

	m.Open("word-window")
	m.Open("chrome-window")
	require.True(t, m.Minimize("chrome-window"))

	front, ok := m.Front()
	require.True(t, ok)
	assert.Equal(t, "word-window", front.ID)

	items := m.Taskbar()
	require.Len(t, items, 2)
	assert.True(t, items[1].Minimized)

	require.True(t, m.Restore("chrome-window"))
	front, _ = m.Front()
	assert.Equal(t, "chrome-window", front.ID)
	assert.False(t, mustWindow(t, m, "chrome-window").Minimized)

	// закрытое окно restore не открывает
	assert.False(t, m.Restore("spotify-window"))
	assert.False(t, mustWindow(t, m, "spotify-window").Visible)
	front, _ = m.Front()
	assert.Equal(t, "chrome-window", front.ID)
}

func TestManager_ToggleMaximize(t *testing.T) {
	m := newTestManager(t, nil)
	m.Open("vscode-window")
	normal := mustWindow(t, m, "vscode-window")

	require.True(t, m.ToggleMaximize("vscode-window"))
	maxed := mustWindow(t, m, "vscode-window")
	assert.True(t, maxed.Maximized)
	assert.Equal(t, Point{}, maxed.Position)
	assert.Equal(t, Size{Width: 1200, Height: 900}, maxed.Size)

	assert.False(t, m.BeginDrag("vscode-window", Point{}), "развернутое окно не таскается")

	m.SetViewport(1600, 1000)
	assert.Equal(t, Size{Width: 1600, Height: 1000}, mustWindow(t, m, "vscode-window").Size)

	require.True(t, m.ToggleMaximize("vscode-window"))
	restored := mustWindow(t, m, "vscode-window")
	assert.False(t, restored.Maximized)
	assert.Equal(t, normal.Position, restored.Position)
	assert.Equal(t, normal.Size, restored.Size)
}

func TestManager_DragPersistsOnRelease(t *testing.T) {
	store := localstore.NewMemoryStore()
	m := newTestManager(t, store)
	m.Open("word-window")
	start := mustWindow(t, m, "word-window").Position

	require.True(t, m.BeginDrag("word-window", Point{X: 100, Y: 100}))
	id, ok := m.Dragging()
	require.True(t, ok)
	assert.Equal(t, "word-window", id)

	for i := 1; i <= 10; i++ {
		require.True(t, m.DragTo(Point{X: 100 + i*5, Y: 100 + i*2}))
		assert.Equal(t, Point{X: start.X + i*5, Y: start.Y + i*2}, mustWindow(t, m, "word-window").Position)
		_, stored := store.Get(localstore.WindowPositionKey("word-window"))
		assert.False(t, stored, "во время перетаскивания ничего не сохраняется")
	}

	require.NoError(t, m.EndDrag())
	_, ok = m.Dragging()
	assert.False(t, ok)

	var saved Point
	require.True(t, localstore.GetJSON(store, localstore.WindowPositionKey("word-window"), &saved))
	assert.Equal(t, Point{X: start.X + 50, Y: start.Y + 20}, saved)

	// новое окно-менеджер поднимает позицию из хранилища
	fresh := newTestManager(t, store)
	fresh.Open("word-window")
	assert.Equal(t, saved, mustWindow(t, fresh, "word-window").Position)
}

func TestManager_ResizeClampsAndPersists(t *testing.T) {
	store := localstore.NewMemoryStore()
	m := newTestManager(t, store)
	m.Open("explorer-window")

	require.True(t, m.BeginResize("explorer-window", Point{X: 0, Y: 0}))
	assert.False(t, m.DragTo(Point{X: 10}), "активен resize, а не drag")

	require.True(t, m.ResizeTo(Point{X: 100, Y: 50}))
	assert.Equal(t, Size{Width: 500, Height: 350}, mustWindow(t, m, "explorer-window").Size)

	require.True(t, m.ResizeTo(Point{X: -1000, Y: -1000}))
	assert.Equal(t, Size{Width: MinWidth, Height: MinHeight}, mustWindow(t, m, "explorer-window").Size)

	require.NoError(t, m.EndResize())

	var saved Size
	require.True(t, localstore.GetJSON(store, localstore.WindowSizeKey("explorer-window"), &saved))
	assert.Equal(t, Size{Width: MinWidth, Height: MinHeight}, saved)

	fresh := newTestManager(t, store)
	fresh.Open("explorer-window")
	assert.Equal(t, saved, mustWindow(t, fresh, "explorer-window").Size)
}

func TestManager_NormalizeZ(t *testing.T) {
	m := newTestManager(t, nil)
	for i := 0; i < 50; i++ {
		m.Focus(testIDs[i%len(testIDs)])
	}
	m.Open("word-window")

	before := m.Windows()
	m.NormalizeZ(DefaultZBase)
	after := m.Windows()

	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID, "порядок сохраняется")
		assert.Equal(t, int64(DefaultZBase+i+1), after[i].Z)
	}

	m.Focus("spotify-window")
	front := m.Windows()[len(after)-1]
	assert.Equal(t, "spotify-window", front.ID)
	assert.Equal(t, int64(DefaultZBase+len(after)+1), front.Z)
}
