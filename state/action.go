package state

import (
	"github.com/kestrelwm/kestrel/action"
	"github.com/kestrelwm/kestrel/effect"
)

// ApplyAction dispatches a resolved keybinding action. Spawn and Kill
// are handled outside State (process spawn and WM_DELETE polling
// respectively both need the world); callers must intercept those two
// kinds before reaching here. Passing them anyway is a harmless no-op.
func (s *State) ApplyAction(a action.Event) []effect.Effect {
	ws := s.workspaces[s.currentWorkspace]

	switch a.Kind {
	case action.Spawn, action.Kill:
		return nil

	case action.NextWindow, action.PrevWindow:
		n := ws.Len()
		if n == 0 {
			return nil
		}
		cur, ok := ws.Focus()
		if !ok {
			return nil
		}
		var next int
		if a.Kind == action.NextWindow {
			next = (cur + 1) % n
		} else {
			next = (cur - 1 + n) % n
		}
		w, _ := ws.WindowAt(next)
		return s.SetFocus(w)

	case action.SwapLeft, action.SwapRight:
		idx, ok := ws.Focus()
		if !ok {
			return nil
		}
		n := ws.Len()
		var other int
		if a.Kind == action.SwapLeft {
			other = idx - 1
		} else {
			other = idx + 1
		}
		if other < 0 || other >= n {
			return nil
		}
		ws.Swap(idx, other)
		ws.SetFocus(other)
		return s.relayoutCurrent()

	case action.IncreaseWindowWeight:
		if w, ok := ws.FocusedWindow(); ok {
			s.weights[w] = s.weightOf(w) + a.N
		}
		return s.relayoutCurrent()

	case action.DecreaseWindowWeight:
		if w, ok := ws.FocusedWindow(); ok {
			cur := s.weightOf(w)
			if a.N >= cur {
				s.weights[w] = 1
			} else {
				s.weights[w] = cur - a.N
			}
		}
		return s.relayoutCurrent()

	case action.IncreaseWindowGap:
		s.windowGap += a.N
		return s.relayoutCurrent()

	case action.DecreaseWindowGap:
		if a.N >= s.windowGap {
			s.windowGap = 0
		} else {
			s.windowGap -= a.N
		}
		return s.relayoutCurrent()

	case action.GoToWorkspace:
		return s.GoToWorkspace(a.Workspace)

	case action.SendToWorkspace:
		return s.sendToWorkspace(a.Workspace)

	case action.ToggleFullscreen:
		return s.toggleFullscreen()

	case action.CycleLayout:
		s.layouts.Cycle()
		return s.relayoutCurrent()

	default:
		return nil
	}
}

func (s *State) sendToWorkspace(target int) []effect.Effect {
	if target == s.currentWorkspace || target < 0 || target >= NumWorkspaces {
		return nil
	}
	cur := s.workspaces[s.currentWorkspace]
	w, ok := cur.FocusedWindow()
	if !ok {
		return nil
	}
	idx, _ := cur.Focus()
	cur.RemoveAt(idx)

	dst := s.workspaces[target]
	dst.Push(w)

	effects := []effect.Effect{effect.Unmap(w)}
	effects = append(effects, s.relayoutCurrent()...)

	if nw, ok := cur.FocusedWindow(); ok {
		effects = append(effects, s.SetFocus(nw)...)
	}
	return effects
}

func (s *State) toggleFullscreen() []effect.Effect {
	ws := s.workspaces[s.currentWorkspace]
	w, ok := ws.FocusedWindow()
	if !ok {
		return nil
	}

	if s.IsWindowFullscreen(w) {
		delete(s.fullscreen, w)
		return s.relayoutCurrent()
	}

	s.fullscreen[w] = struct{}{}
	return []effect.Effect{
		effect.ConfigurePositionSize(w, 0, 0, s.screen.Width, s.screen.Height),
		effect.Raise(w),
	}
}
