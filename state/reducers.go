package state

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/kestrelwm/kestrel/effect"
)

// OnMapRequest handles a freshly mapped window, classified by the
// caller (the X11 adapter decides Managed/Unmanaged/Dock).
func (s *State) OnMapRequest(w xproto.Window, wt WindowType) []effect.Effect {
	switch wt {
	case Dock:
		s.docks[w] = struct{}{}
		effects := []effect.Effect{effect.Map(w)}
		return append(effects, s.relayoutCurrent()...)

	case Managed:
		ws := s.workspaces[s.currentWorkspace]
		ws.Push(w)
		s.weights[w] = 1
		s.clientList = append(s.clientList, w)
		idx, _ := ws.IndexOf(w)
		ws.SetFocus(idx)

		effects := []effect.Effect{
			effect.SetBorder(w, s.screen.FocusedBorderPixel, s.borderWidth),
			effect.Map(w),
			effect.Raise(w),
			effect.Focus(w),
			effect.GrabButton(w),
			effect.SubscribeEnterNotify(w),
		}
		return append(effects, s.relayoutCurrent()...)

	default: // Unmanaged
		return nil
	}
}

// OnDestroy removes w unconditionally: the window is gone for good.
func (s *State) OnDestroy(w xproto.Window) []effect.Effect {
	return s.removeWindow(w)
}

// OnUnmap removes w. An unmap of a window that sits on a workspace
// other than the current one is ignored: the WM itself hid it (a
// workspace switch or SendToWorkspace), so it stays tracked.
func (s *State) OnUnmap(w xproto.Window) []effect.Effect {
	if wsIdx, ok := s.WindowWorkspace(w); ok && wsIdx != s.currentWorkspace {
		return nil
	}
	return s.removeWindow(w)
}

func (s *State) removeWindow(w xproto.Window) []effect.Effect {
	delete(s.fullscreen, w)
	delete(s.weights, w)

	if _, wasDock := s.docks[w]; wasDock {
		delete(s.docks, w)
		return s.relayoutCurrent()
	}

	wsIdx, idx, ok := s.locate(w)
	if !ok {
		return nil
	}
	s.workspaces[wsIdx].RemoveAt(idx)
	s.removeFromClientList(w)

	if wsIdx != s.currentWorkspace {
		return nil
	}
	effects := s.relayoutCurrent()
	if fw, ok := s.workspaces[wsIdx].FocusedWindow(); ok {
		effects = append(effects, effect.Focus(fw), effect.Raise(fw))
	}
	return effects
}

// SetFocus moves the focus cursor to w on whichever workspace holds
// it. Only the current workspace's focus change is observable as
// Effects.
func (s *State) SetFocus(w xproto.Window) []effect.Effect {
	wsIdx, idx, ok := s.locate(w)
	if !ok {
		return nil
	}
	ws := s.workspaces[wsIdx]
	prevIdx, hadFocus := ws.Focus()
	ws.SetFocus(idx)

	if wsIdx != s.currentWorkspace {
		return nil
	}

	effects := []effect.Effect{
		effect.Focus(w),
		effect.Raise(w),
		effect.SetBorder(w, s.screen.FocusedBorderPixel, s.borderWidth),
	}
	if hadFocus && prevIdx != idx {
		if prevWin, ok := ws.WindowAt(prevIdx); ok {
			effects = append(effects, effect.SetBorder(prevWin, s.screen.NormalBorderPixel, s.borderWidth))
		}
	}
	return effects
}

// FocusWindow is like SetFocus, but first switches workspace if the
// hint or a lookup says w lives elsewhere.
func (s *State) FocusWindow(w xproto.Window, desktopHint *int) []effect.Effect {
	target := s.currentWorkspace
	if wsIdx, ok := s.WindowWorkspace(w); ok {
		target = wsIdx
	} else if desktopHint != nil && *desktopHint >= 0 && *desktopHint < NumWorkspaces {
		target = *desktopHint
	}

	var effects []effect.Effect
	if target != s.currentWorkspace {
		effects = append(effects, s.GoToWorkspace(target)...)
	}
	return append(effects, s.SetFocus(w)...)
}

// GoToWorkspace switches the current workspace to i. A no-op if i is
// already current or out of range.
func (s *State) GoToWorkspace(i int) []effect.Effect {
	if i == s.currentWorkspace || i < 0 || i >= NumWorkspaces {
		return nil
	}

	var effects []effect.Effect
	cur := s.workspaces[s.currentWorkspace]
	for _, w := range cur.Windows() {
		effects = append(effects, effect.Unmap(w))
	}

	s.currentWorkspace = i
	next := s.workspaces[i]
	for _, w := range next.Windows() {
		effects = append(effects, effect.Map(w))
	}
	effects = append(effects, s.relayoutCurrent()...)

	if focused, ok := next.FocusedWindow(); ok {
		effects = append(effects, effect.Focus(focused), effect.Raise(focused))
	}
	return effects
}

// TrackStartupDock registers a pre-existing dock window found during
// the startup scan, without emitting effects.
func (s *State) TrackStartupDock(w xproto.Window) {
	s.docks[w] = struct{}{}
}

// TrackStartupManaged registers a pre-existing managed window found
// during the startup scan on the given desktop, without emitting
// effects. An out-of-range desktop falls back to workspace 0.
func (s *State) TrackStartupManaged(w xproto.Window, desktop int) {
	if desktop < 0 || desktop >= NumWorkspaces {
		desktop = 0
	}
	s.workspaces[desktop].Push(w)
	s.weights[w] = 1
	s.clientList = append(s.clientList, w)
}

// StartupFinalize sets the current workspace from currentHint
// (clamped, default 0), then emits a full map+layout pass for the
// current workspace and unmaps for every other.
func (s *State) StartupFinalize(currentHint *int) []effect.Effect {
	cur := 0
	if currentHint != nil && *currentHint >= 0 && *currentHint < NumWorkspaces {
		cur = *currentHint
	}
	s.currentWorkspace = cur

	var effects []effect.Effect
	for i, ws := range s.workspaces {
		if i == cur {
			for _, w := range ws.Windows() {
				effects = append(effects, effect.Map(w))
			}
			effects = append(effects, s.relayoutCurrent()...)
		} else {
			for _, w := range ws.Windows() {
				effects = append(effects, effect.Unmap(w))
			}
		}
	}
	return effects
}
