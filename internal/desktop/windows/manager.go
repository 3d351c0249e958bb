// Package windows is the window manager of the desktop: visibility, stacking order,
// minimize/maximize and drag/resize gestures of the declared application windows.
// Unknown window ids are ignored by every operation.
package windows

import (
	"sort"
	"sync"
	"webdesktop/internal/desktop/localstore"

	"github.com/rs/zerolog"
)

const (
	DefaultZBase = 100

	MinWidth  = 120
	MinHeight = 80
)

type Decl struct {
	ID    string
	Title string
	Size  Size
}

type Config struct {
	Windows  []Decl
	Viewport Size
	ZBase    int64
}

type gestureKind int

const (
	gestureDrag gestureKind = iota + 1
	gestureResize
)

type gesture struct {
	kind     gestureKind
	windowID string
	start    Point
	frame    Frame
}

type Manager struct {
	mu       sync.Mutex
	windows  map[string]*window
	order    []string // порядок объявления, для панели задач
	zCounter int64
	viewport Size
	active   *gesture
	store    localstore.Store
	log      zerolog.Logger
}

func NewManager(cfg Config, store localstore.Store, log *zerolog.Logger) *Manager {
	zBase := cfg.ZBase
	if zBase <= 0 {
		zBase = DefaultZBase
	}
	if store == nil {
		store = localstore.NewMemoryStore()
	}
	l := zerolog.Nop()
	if log != nil {
		l = *log
	}

	m := &Manager{
		windows:  make(map[string]*window, len(cfg.Windows)),
		order:    make([]string, 0, len(cfg.Windows)),
		zCounter: zBase,
		viewport: cfg.Viewport,
		store:    store,
		log:      l,
	}
	for _, d := range cfg.Windows {
		if _, dup := m.windows[d.ID]; dup || d.ID == "" {
			continue
		}
		m.windows[d.ID] = &window{Window: Window{ID: d.ID, Title: d.Title, Size: d.Size}}
		m.order = append(m.order, d.ID)
	}
	return m
}

func (m *Manager) nextZ() int64 {
	m.zCounter++
	return m.zCounter
}

// Open shows the window on top of all others. The first open restores the geometry kept
// in device storage or centres the window horizontally and at a third of the height.
func (m *Manager) Open(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[id]
	if !ok {
		m.log.Debug().Str("window", id).Msg("open: unknown window")
		return false
	}

	m.loadGeometry(w)
	if !w.placed {
		w.Position = Point{
			X: (m.viewport.Width - w.Size.Width) / 2,
			Y: (m.viewport.Height - w.Size.Height) / 3,
		}
		w.placed = true
	}

	w.Visible = true
	w.Minimized = false
	w.Z = m.nextZ()
	return true
}

func (m *Manager) loadGeometry(w *window) {
	if w.loaded {
		return
	}
	w.loaded = true

	var size Size
	if localstore.GetJSON(m.store, localstore.WindowSizeKey(w.ID), &size) && size.Width > 0 && size.Height > 0 {
		w.Size = size
	}
	var pos Point
	if localstore.GetJSON(m.store, localstore.WindowPositionKey(w.ID), &pos) {
		w.Position = pos
		w.placed = true
	}
}

// Close hides the window; its position and Z are kept for the next Open.
func (m *Manager) Close(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[id]
	if !ok {
		return false
	}
	w.Visible = false
	w.Minimized = false
	if m.active != nil && m.active.windowID == id {
		m.active = nil
	}
	return true
}

// Focus brings the window to the front without changing its visibility.
func (m *Manager) Focus(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[id]
	if !ok {
		return false
	}
	w.Z = m.nextZ()
	return true
}

func (m *Manager) Minimize(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[id]
	if !ok || !w.Visible {
		return false
	}
	w.Minimized = true
	if m.active != nil && m.active.windowID == id {
		m.active = nil
	}
	return true
}

// Restore un-minimizes the window and focuses it. A closed window stays closed.
func (m *Manager) Restore(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[id]
	if !ok || !w.Visible {
		return false
	}

	w.Minimized = false
	w.Z = m.nextZ()
	return true
}

// ToggleMaximize switches between the window's own frame and the whole viewport.
func (m *Manager) ToggleMaximize(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[id]
	if !ok || !w.Visible {
		return false
	}

	if w.Maximized {
		w.setFrame(w.normal)
		w.Maximized = false
	} else {
		w.normal = w.frame()
		w.setFrame(Frame{Size: m.viewport})
		w.Maximized = true
	}
	w.Minimized = false
	w.Z = m.nextZ()
	return true
}

// BeginDrag starts moving the window with the pointer at p. Pointer-down also focuses it.
func (m *Manager) BeginDrag(id string, p Point) bool {
	return m.begin(gestureDrag, id, p)
}

func (m *Manager) BeginResize(id string, p Point) bool {
	return m.begin(gestureResize, id, p)
}

func (m *Manager) begin(kind gestureKind, id string, p Point) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[id]
	if !ok || !w.Shown() || w.Maximized {
		return false
	}

	w.Z = m.nextZ()
	m.active = &gesture{kind: kind, windowID: id, start: p, frame: w.frame()}
	return true
}

// DragTo moves the dragged window so the grab offset is preserved.
func (m *Manager) DragTo(p Point) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, w := m.gestureWindow(gestureDrag)
	if w == nil {
		return false
	}
	w.Position = Point{
		X: g.frame.Position.X + p.X - g.start.X,
		Y: g.frame.Position.Y + p.Y - g.start.Y,
	}
	return true
}

func (m *Manager) ResizeTo(p Point) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, w := m.gestureWindow(gestureResize)
	if w == nil {
		return false
	}
	w.Size = Size{
		Width:  max(MinWidth, g.frame.Size.Width+p.X-g.start.X),
		Height: max(MinHeight, g.frame.Size.Height+p.Y-g.start.Y),
	}
	return true
}

func (m *Manager) gestureWindow(kind gestureKind) (*gesture, *window) {
	if m.active == nil || m.active.kind != kind {
		return nil, nil
	}
	w, ok := m.windows[m.active.windowID]
	if !ok {
		m.active = nil
		return nil, nil
	}
	return m.active, w
}

// EndDrag finishes the drag and writes the final position to device storage.
func (m *Manager) EndDrag() error {
	return m.end(gestureDrag)
}

// EndResize finishes the resize and writes the final size to device storage.
func (m *Manager) EndResize() error {
	return m.end(gestureResize)
}

func (m *Manager) end(kind gestureKind) error {
	m.mu.Lock()
	g, w := m.gestureWindow(kind)
	if w == nil {
		m.mu.Unlock()
		return nil
	}
	m.active = nil
	id, pos, size := w.ID, w.Position, w.Size
	m.mu.Unlock()

	var err error
	switch kind {
	case gestureDrag:
		err = localstore.SetJSON(m.store, localstore.WindowPositionKey(id), pos)
	case gestureResize:
		err = localstore.SetJSON(m.store, localstore.WindowSizeKey(id), size)
	}
	if err != nil {
		m.log.Error().Err(err).Str("window", g.windowID).Msg("failed to persist window geometry")
		return err
	}
	return nil
}

// Dragging reports the id of the window under an active gesture.
func (m *Manager) Dragging() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return "", false
	}
	return m.active.windowID, true
}

func (m *Manager) Window(id string) (Window, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[id]
	if !ok {
		return Window{}, false
	}
	return w.Window, true
}

// Windows returns every declared window, bottom of the stack first.
func (m *Manager) Windows() []Window {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedLocked()
}

func (m *Manager) sortedLocked() []Window {
	list := make([]Window, 0, len(m.windows))
	for _, id := range m.order {
		list = append(list, m.windows[id].Window)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Z < list[j].Z
	})
	return list
}

// Front returns the top-most shown window.
func (m *Manager) Front() (Window, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frontLocked()
}

func (m *Manager) frontLocked() (Window, bool) {
	var (
		front Window
		found bool
	)
	for _, w := range m.windows {
		if w.Shown() && (!found || w.Z > front.Z) {
			front = w.Window
			found = true
		}
	}
	return front, found
}

// Taskbar lists the indicators of open windows in declaration order.
func (m *Manager) Taskbar() []TaskbarItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	front, hasFront := m.frontLocked()
	items := make([]TaskbarItem, 0, len(m.order))
	for _, id := range m.order {
		w := m.windows[id]
		if !w.Visible {
			continue
		}
		items = append(items, TaskbarItem{
			ID:        w.TaskbarID(),
			WindowID:  w.ID,
			Title:     w.Title,
			Minimized: w.Minimized,
			Active:    hasFront && front.ID == w.ID,
		})
	}
	return items
}

func (m *Manager) SetViewport(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.viewport = Size{Width: width, Height: height}
	for _, w := range m.windows {
		if w.Maximized {
			w.Size = m.viewport
		}
	}
}

func (m *Manager) Viewport() Size {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.viewport
}

// NormalizeZ renumbers the stack from the base so the counter does not grow without bound.
// Relative order is preserved.
func (m *Manager) NormalizeZ(base int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.sortedLocked()
	z := base
	for _, w := range list {
		z++
		m.windows[w.ID].Z = z
	}
	m.zCounter = z
}
