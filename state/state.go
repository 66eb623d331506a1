// Package state holds the window-state engine: the per-workspace
// client model, focus, fullscreen overrides, and the event-to-effect
// reducers. Every method here is pure over the in-memory model — no
// I/O, no blocking, nothing that can fail. The adapter applies the
// Effects this package produces and deals with the world's mess.
package state

import (
	"sort"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/kestrelwm/kestrel/action"
	"github.com/kestrelwm/kestrel/effect"
	"github.com/kestrelwm/kestrel/layout"
	"github.com/kestrelwm/kestrel/workspace"
)

// NumWorkspaces is the compile-time workspace count.
const NumWorkspaces = 10

// WindowType classifies a window at MapRequest time.
type WindowType int

const (
	Managed WindowType = iota
	Unmanaged
	Dock
)

// ScreenConfig describes the single screen this WM manages. Immutable
// after construction.
type ScreenConfig struct {
	Width, Height                        uint32
	FocusedBorderPixel, NormalBorderPixel uint32
}

// State is the full window-manager model.
type State struct {
	screen ScreenConfig

	workspaces       [NumWorkspaces]*workspace.Workspace
	currentWorkspace int

	docks      map[xproto.Window]struct{}
	fullscreen map[xproto.Window]struct{}
	weights    map[xproto.Window]uint32

	// clientList tracks managed windows in creation order, independent
	// of which workspace currently holds them — this is what
	// _NET_CLIENT_LIST publishes.
	clientList []xproto.Window

	borderWidth uint32
	windowGap   uint32
	dockHeight  uint32

	layouts *layout.Manager
}

// New constructs a State with N empty workspaces, starting on
// workspace 0.
func New(screen ScreenConfig, borderWidth, windowGap, dockHeight uint32, layouts *layout.Manager) *State {
	s := &State{
		screen:      screen,
		borderWidth: borderWidth,
		windowGap:   windowGap,
		dockHeight:  dockHeight,
		layouts:     layouts,
		docks:       make(map[xproto.Window]struct{}),
		fullscreen:  make(map[xproto.Window]struct{}),
		weights:     make(map[xproto.Window]uint32),
	}
	for i := range s.workspaces {
		s.workspaces[i] = workspace.New()
	}
	return s
}

// Screen returns the immutable screen configuration.
func (s *State) Screen() ScreenConfig { return s.screen }

// CurrentWorkspaceID returns the index of the current workspace.
func (s *State) CurrentWorkspaceID() int { return s.currentWorkspace }

// FocusedWindow returns the focused window on the current workspace.
func (s *State) FocusedWindow() (xproto.Window, bool) {
	return s.workspaces[s.currentWorkspace].FocusedWindow()
}

// WindowWorkspace reports which workspace currently holds w.
func (s *State) WindowWorkspace(w xproto.Window) (int, bool) {
	wsIdx, _, ok := s.locate(w)
	return wsIdx, ok
}

// IsWindowFullscreen reports whether w is in the fullscreen set.
func (s *State) IsWindowFullscreen(w xproto.Window) bool {
	_, ok := s.fullscreen[w]
	return ok
}

// ClientListWindows returns all managed windows in creation order.
func (s *State) ClientListWindows() []xproto.Window {
	out := make([]xproto.Window, len(s.clientList))
	copy(out, s.clientList)
	return out
}

// ManagedWindowsSorted returns all managed windows sorted by ID, a
// stable iteration order for per-window EWMH property sync.
func (s *State) ManagedWindowsSorted() []xproto.Window {
	out := append([]xproto.Window(nil), s.clientList...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// UsableScreenHeight returns the screen height minus any active dock
// reservation.
func (s *State) UsableScreenHeight() uint32 {
	return s.screen.Height - s.reservedDockHeight()
}

func (s *State) reservedDockHeight() uint32 {
	if len(s.docks) == 0 {
		return 0
	}
	return s.dockHeight
}

func (s *State) weightOf(w xproto.Window) uint32 {
	if v, ok := s.weights[w]; ok {
		return v
	}
	return 1
}

// locate scans every workspace for w.
func (s *State) locate(w xproto.Window) (wsIdx, winIdx int, ok bool) {
	for i, ws := range s.workspaces {
		if idx, found := ws.IndexOf(w); found {
			return i, idx, true
		}
	}
	return 0, 0, false
}

func (s *State) removeFromClientList(w xproto.Window) {
	for i, win := range s.clientList {
		if win == w {
			s.clientList = append(s.clientList[:i], s.clientList[i+1:]...)
			return
		}
	}
}

// relayoutCurrent recomputes Configure/SetBorder effects for every
// window on the current workspace, honoring the dock reservation and
// any fullscreen overrides.
func (s *State) relayoutCurrent() []effect.Effect {
	ws := s.workspaces[s.currentWorkspace]
	windows := ws.Windows()

	var effects []effect.Effect
	if len(windows) == 0 {
		return effects
	}

	area := layout.Rect{
		X: 0,
		Y: int32(s.reservedDockHeight()),
		W: s.screen.Width,
		H: s.UsableScreenHeight(),
	}
	weights := make([]uint32, len(windows))
	for i, w := range windows {
		weights[i] = s.weightOf(w)
	}
	rects := s.layouts.Current().Generate(area, weights, s.borderWidth, s.windowGap)

	focusedIdx, hasFocus := ws.Focus()
	for i, w := range windows {
		switch {
		case s.IsWindowFullscreen(w):
			effects = append(effects, effect.ConfigurePositionSize(w, 0, 0, s.screen.Width, s.screen.Height))
		case i < len(rects):
			r := rects[i]
			effects = append(effects, effect.Configure(w, r.X, r.Y, r.W, r.H, s.borderWidth))
		}

		pixel := s.screen.NormalBorderPixel
		if hasFocus && i == focusedIdx {
			pixel = s.screen.FocusedBorderPixel
		}
		effects = append(effects, effect.SetBorder(w, pixel, s.borderWidth))
	}
	return effects
}
