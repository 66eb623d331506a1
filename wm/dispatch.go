package wm

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/sirupsen/logrus"

	"github.com/kestrelwm/kestrel/action"
	"github.com/kestrelwm/kestrel/effect"
	"github.com/kestrelwm/kestrel/state"
)

// dispatch translates one raw X event into the effects it produces,
// syncing EWMH hints after any state-mutating branch.
func (wm *WindowManager) dispatch(xev xgb.Event) []effect.Effect {
	switch e := xev.(type) {
	case xproto.KeyPressEvent:
		return wm.handleKeyPress(e)

	case xproto.MapRequestEvent:
		wt, err := wm.x.ClassifyWindow(e.Window)
		if err != nil {
			logrus.WithError(err).Warn("failed to classify window, treating as managed")
			wt = state.Managed
		}
		effects := wm.state.OnMapRequest(e.Window, wt)
		return append(effects, wm.ewmh.Sync(wm.state)...)

	case xproto.DestroyNotifyEvent:
		effects := wm.state.OnDestroy(e.Window)
		return append(effects, wm.ewmh.Sync(wm.state)...)

	case xproto.UnmapNotifyEvent:
		effects := wm.state.OnUnmap(e.Window)
		return append(effects, wm.ewmh.Sync(wm.state)...)

	case xproto.ClientMessageEvent:
		return wm.handleClientMessage(e)

	case xproto.ButtonPressEvent:
		if err := wm.x.AllowEvents(xproto.AllowReplayPointer); err != nil {
			logrus.WithError(err).Warn("failed to replay pointer")
		}
		effects := wm.state.SetFocus(e.Event)
		return append(effects, wm.ewmh.Sync(wm.state)...)

	case xproto.EnterNotifyEvent:
		if !wm.cfg.FocusFollowsMouse {
			return nil
		}
		effects := wm.state.SetFocus(e.Event)
		return append(effects, wm.ewmh.Sync(wm.state)...)

	default:
		return nil
	}
}

func (wm *WindowManager) handleKeyPress(e xproto.KeyPressEvent) []effect.Effect {
	a, ok := wm.bindings[chord{keycode: e.Detail, modifiers: e.State}]
	if !ok {
		logrus.WithFields(logrus.Fields{"keycode": e.Detail, "modifiers": e.State}).
			Debug("no binding for key press")
		return nil
	}

	switch a.Kind {
	case action.Spawn:
		spawn(a.Cmd)
		return nil
	case action.Kill:
		w, ok := wm.state.FocusedWindow()
		if !ok {
			return nil
		}
		return wm.closeWindow(w)
	default:
		effects := wm.state.ApplyAction(a)
		return append(effects, wm.ewmh.Sync(wm.state)...)
	}
}

func (wm *WindowManager) handleClientMessage(e xproto.ClientMessageEvent) []effect.Effect {
	atoms := wm.x.Atoms()
	data := e.Data.Data32

	switch e.Type {
	case atoms.CurrentDesktop:
		effects := wm.state.GoToWorkspace(int(data[0]))
		return append(effects, wm.ewmh.Sync(wm.state)...)

	case atoms.ActiveWindow:
		var hint *int
		if d, ok := wm.ewmh.GetWindowDesktop(wm.x, e.Window); ok {
			hint = &d
		}
		effects := wm.state.FocusWindow(e.Window, hint)
		return append(effects, wm.ewmh.Sync(wm.state)...)

	case atoms.CloseWindow:
		return wm.closeWindow(e.Window)

	default:
		return nil
	}
}

// closeWindow asks a client to close itself via WM_DELETE_WINDOW if it
// advertises support, otherwise force-kills the connection.
func (wm *WindowManager) closeWindow(w xproto.Window) []effect.Effect {
	if wm.x.SupportsWmDelete(w) {
		return []effect.Effect{effect.SendWmDelete(w)}
	}
	return []effect.Effect{effect.KillClient(w)}
}

// grabWindows performs the startup scan: classify every existing root
// child, track docks and managed windows (restoring each managed
// window's last-known desktop from _NET_WM_DESKTOP when present), then
// finalize on the desktop _NET_CURRENT_DESKTOP names.
func (wm *WindowManager) grabWindows() []effect.Effect {
	children, err := wm.x.GetRootWindowChildren()
	if err != nil {
		logrus.WithError(err).Error("failed to query root window children at startup")
		children = nil
	}

	for _, w := range children {
		wt, err := wm.x.ClassifyWindow(w)
		if err != nil {
			continue
		}
		switch wt {
		case state.Dock:
			wm.state.TrackStartupDock(w)
		case state.Managed:
			desktop := 0
			if d, ok := wm.ewmh.GetWindowDesktop(wm.x, w); ok {
				desktop = d
			}
			wm.state.TrackStartupManaged(w, desktop)
		}
	}

	var currentHint *int
	if d, ok := wm.ewmh.GetCurrentDesktop(wm.x); ok {
		currentHint = &d
	}

	effects := wm.state.StartupFinalize(currentHint)
	return append(effects, wm.ewmh.Sync(wm.state)...)
}
