// Package workspace implements one virtual desktop: an ordered list of
// windows with an optional focus cursor.
package workspace

import "github.com/BurntSushi/xgb/xproto"

// Workspace holds its windows in insertion order. focus is -1 when no
// window is focused; otherwise it is a valid index into windows.
type Workspace struct {
	windows []xproto.Window
	focus   int
}

// New returns an empty, unfocused Workspace.
func New() *Workspace {
	return &Workspace{focus: -1}
}

// Len returns the number of windows.
func (w *Workspace) Len() int { return len(w.windows) }

// Push appends win. If nothing was focused, win becomes the focus.
func (w *Workspace) Push(win xproto.Window) {
	w.windows = append(w.windows, win)
	if w.focus == -1 {
		w.focus = len(w.windows) - 1
	}
}

// RemoveAt removes the window at index i, shifting the tail down, and
// re-clamps focus. Reports false if i is out of range.
func (w *Workspace) RemoveAt(i int) (xproto.Window, bool) {
	if i < 0 || i >= len(w.windows) {
		return 0, false
	}
	win := w.windows[i]
	w.windows = append(w.windows[:i], w.windows[i+1:]...)
	w.clampFocus()
	return win, true
}

// RemoveFocused removes the currently focused window, if any.
func (w *Workspace) RemoveFocused() (xproto.Window, bool) {
	if w.focus == -1 {
		return 0, false
	}
	return w.RemoveAt(w.focus)
}

func (w *Workspace) clampFocus() {
	if len(w.windows) == 0 {
		w.focus = -1
		return
	}
	if w.focus >= len(w.windows) {
		w.focus = len(w.windows) - 1
	}
}

// SetFocus moves the focus cursor to i. Reports false if i is out of
// range, leaving focus unchanged.
func (w *Workspace) SetFocus(i int) bool {
	if i < 0 || i >= len(w.windows) {
		return false
	}
	w.focus = i
	return true
}

// Focus returns the current focus index, if any.
func (w *Workspace) Focus() (int, bool) {
	if w.focus == -1 {
		return 0, false
	}
	return w.focus, true
}

// FocusedWindow returns the currently focused window, if any.
func (w *Workspace) FocusedWindow() (xproto.Window, bool) {
	if w.focus == -1 {
		return 0, false
	}
	return w.windows[w.focus], true
}

// WindowAt returns the window at index i.
func (w *Workspace) WindowAt(i int) (xproto.Window, bool) {
	if i < 0 || i >= len(w.windows) {
		return 0, false
	}
	return w.windows[i], true
}

// IndexOf returns the index of win, if present.
func (w *Workspace) IndexOf(win xproto.Window) (int, bool) {
	for i, x := range w.windows {
		if x == win {
			return i, true
		}
	}
	return 0, false
}

// Windows returns a copy of the window list in order.
func (w *Workspace) Windows() []xproto.Window {
	out := make([]xproto.Window, len(w.windows))
	copy(out, w.windows)
	return out
}

// Swap exchanges the windows at indices i and j. Out-of-range indices
// are a no-op.
func (w *Workspace) Swap(i, j int) {
	if i == j || i < 0 || i >= len(w.windows) || j < 0 || j >= len(w.windows) {
		return
	}
	w.windows[i], w.windows[j] = w.windows[j], w.windows[i]
}

// Retain keeps only the windows for which keep returns true,
// re-clamping focus afterward.
func (w *Workspace) Retain(keep func(xproto.Window) bool) {
	kept := w.windows[:0]
	for _, win := range w.windows {
		if keep(win) {
			kept = append(kept, win)
		}
	}
	w.windows = kept
	w.clampFocus()
}
