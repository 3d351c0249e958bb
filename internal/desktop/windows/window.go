package windows

import (
	"strings"
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Frame is the position and dimensions of a window.
type Frame struct {
	Position Point
	Size     Size
}

// Window is a snapshot of one application panel.
type Window struct {
	ID        string
	Title     string
	Visible   bool
	Minimized bool
	Maximized bool
	Position  Point
	Size      Size
	Z         int64
}

// Shown reports whether the window is on screen: open and not minimized.
func (w Window) Shown() bool {
	return w.Visible && !w.Minimized
}

func (w Window) TaskbarID() string {
	return TaskbarID(w.ID)
}

// TaskbarID returns the taskbar indicator id of a window: "word-window" -> "word-taskbar-icon".
func TaskbarID(windowID string) string {
	prefix, _, _ := strings.Cut(windowID, "-")
	return prefix + "-taskbar-icon"
}

type TaskbarItem struct {
	ID        string
	WindowID  string
	Title     string
	Minimized bool
	Active    bool
}

type window struct {
	Window
	normal Frame // кадр до разворачивания
	// geometry was taken from device storage or computed on first open
	placed bool
	loaded bool
}

func (w *window) frame() Frame {
	return Frame{Position: w.Position, Size: w.Size}
}

func (w *window) setFrame(f Frame) {
	w.Position = f.Position
	w.Size = f.Size
}
