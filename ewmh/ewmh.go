// Package ewmh turns window-manager state into the EWMH/ICCCM
// properties clients and panels read. The publishing methods are pure:
// they take state/atoms/window IDs by value and return effect.Effect
// values, the same contract the state package follows. The X11
// adapter is the only thing that actually writes properties; the two
// Get* methods read properties back through it.
package ewmh

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/kestrelwm/kestrel/effect"
	"github.com/kestrelwm/kestrel/state"
	"github.com/kestrelwm/kestrel/x11"
)

// NumWorkspaces mirrors state.NumWorkspaces for the hints that are a
// function of the desktop count alone.
const NumWorkspaces = state.NumWorkspaces

// Manager publishes and reads back EWMH/ICCCM hints against a fixed
// atom set, root window, and supporting check window.
type Manager struct {
	atoms *x11.Atoms
	root  xproto.Window
	check xproto.Window
}

// New builds a Manager bound to the given atoms, root window, and
// supporting check window.
func New(atoms *x11.Atoms, root, check xproto.Window) *Manager {
	return &Manager{atoms: atoms, root: root, check: check}
}

// PublishHints returns the one-time, startup-only EWMH advertisement:
// the _NET_SUPPORTED list, the check window's own identity and name,
// and the static desktop count.
func (m *Manager) PublishHints() []effect.Effect {
	a := m.atoms
	supported := []uint32{
		uint32(a.NumberOfDesktops), uint32(a.CurrentDesktop), uint32(a.Supported),
		uint32(a.SupportingWmCheck), uint32(a.WmWindowType), uint32(a.WmWindowTypeDock),
		uint32(a.WmName), uint32(a.WmDesktop), uint32(a.WmState), uint32(a.WmStateFullscreen),
		uint32(a.ClientList), uint32(a.ActiveWindow), uint32(a.Workarea),
		uint32(a.DesktopGeometry), uint32(a.CloseWindow),
	}

	return []effect.Effect{
		effect.SetAtomList(m.root, a.Supported, supported),
		effect.SetWindowProperty(m.root, a.SupportingWmCheck, []uint32{uint32(m.check)}),
		effect.SetWindowProperty(m.check, a.SupportingWmCheck, []uint32{uint32(m.check)}),
		effect.SetUtf8String(m.check, a.WmName, "kestrel"),
		effect.SetCardinal32(m.root, a.NumberOfDesktops, uint32(NumWorkspaces)),
	}
}

// DesktopGeometryEffect reports the (fixed, single-screen) desktop
// geometry. Separate from Sync because it only needs to run once the
// screen size is known, not on every state change.
func (m *Manager) DesktopGeometryEffect(width, height uint32) effect.Effect {
	return effect.SetCardinal32List(m.root, m.atoms.DesktopGeometry, []uint32{width, height})
}

// Sync recomputes every hint that can change at runtime: the client
// list, current desktop, active window, workarea, and per-window
// desktop/fullscreen state. Called after every state-mutating event.
func (m *Manager) Sync(s *state.State) []effect.Effect {
	a := m.atoms
	screen := s.Screen()

	clientList := s.ClientListWindows()
	managed := s.ManagedWindowsSorted()

	var effects []effect.Effect
	effects = append(effects, m.clientListEffects(clientList)...)
	effects = append(effects, m.currentDesktopEffect(s.CurrentWorkspaceID()))
	effects = append(effects, m.activeWindowEffect(s.FocusedWindow))
	effects = append(effects, m.workareaEffect(0, 0, screen.Width, s.UsableScreenHeight()))

	for _, w := range managed {
		if ws, ok := s.WindowWorkspace(w); ok {
			effects = append(effects, m.windowDesktopEffect(w, uint32(ws)))
		}
		effects = append(effects, m.windowFullscreenStateEffect(w, s.IsWindowFullscreen(w)))
	}
	return effects
}

func (m *Manager) clientListEffects(clientList []xproto.Window) []effect.Effect {
	var values []uint32
	for _, w := range clientList {
		values = append(values, uint32(w))
	}
	return []effect.Effect{effect.SetWindowProperty(m.root, m.atoms.ClientList, values)}
}

func (m *Manager) currentDesktopEffect(current int) effect.Effect {
	return effect.SetCardinal32(m.root, m.atoms.CurrentDesktop, uint32(current))
}

func (m *Manager) activeWindowEffect(focused func() (xproto.Window, bool)) effect.Effect {
	var values []uint32
	if w, ok := focused(); ok {
		values = []uint32{uint32(w)}
	}
	return effect.SetWindowProperty(m.root, m.atoms.ActiveWindow, values)
}

func (m *Manager) workareaEffect(x, y, width, height uint32) effect.Effect {
	row := []uint32{x, y, width, height}
	values := make([]uint32, 0, 4*NumWorkspaces)
	for i := 0; i < NumWorkspaces; i++ {
		values = append(values, row...)
	}
	return effect.SetCardinal32List(m.root, m.atoms.Workarea, values)
}

func (m *Manager) windowDesktopEffect(w xproto.Window, desktop uint32) effect.Effect {
	return effect.SetCardinal32(w, m.atoms.WmDesktop, desktop)
}

func (m *Manager) windowFullscreenStateEffect(w xproto.Window, fullscreen bool) effect.Effect {
	var values []uint32
	if fullscreen {
		values = []uint32{uint32(m.atoms.WmStateFullscreen)}
	}
	return effect.SetAtomList(w, m.atoms.WmState, values)
}

// GetCurrentDesktop reads back _NET_CURRENT_DESKTOP from the root
// window, used at startup to resume a previous session's workspace.
func (m *Manager) GetCurrentDesktop(x *x11.X11) (int, bool) {
	v, ok := x.GetCardinal32(m.root, m.atoms.CurrentDesktop)
	return int(v), ok
}

// GetWindowDesktop reads back _NET_WM_DESKTOP from w, used at startup
// to restore a managed window to the workspace it last occupied.
func (m *Manager) GetWindowDesktop(x *x11.X11, w xproto.Window) (int, bool) {
	v, ok := x.GetCardinal32(w, m.atoms.WmDesktop)
	return int(v), ok
}
