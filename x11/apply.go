package x11

import (
	"encoding/binary"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/sirupsen/logrus"

	"github.com/kestrelwm/kestrel/effect"
)

// checker is satisfied by every xgb ...Checked(...) call's cookie —
// each wraps a Check() that blocks for the server's error reply (or
// nil on success).
type checker interface {
	Check() error
}

// ApplyEffectsUnchecked fires every effect as an unchecked request:
// xgb writes it to the wire immediately and does not wait for a
// reply. This is the steady-state path — cheap, and never blocking.
// Each request's checked cookie is discarded, so an error on this
// path is not reported.
func (x *X11) ApplyEffectsUnchecked(effects []effect.Effect) {
	for _, e := range effects {
		x.applyOne(e)
	}
}

// ApplyEffectsChecked issues every request first, collecting its
// cookie, then inspects each reply in a second pass — pipelined rather
// than one round trip per effect. A failing reply is logged and does
// not stop the rest of the batch from being checked.
func (x *X11) ApplyEffectsChecked(effects []effect.Effect) {
	cookies := make([]checker, 0, len(effects))
	for _, e := range effects {
		if c := x.buildRequest(e); c != nil {
			cookies = append(cookies, c)
		}
	}
	for _, c := range cookies {
		if err := c.Check(); err != nil {
			logrus.WithError(err).Warn("x11: checked effect failed")
		}
	}
}

func (x *X11) applyOne(e effect.Effect) {
	x.buildRequest(e)
}

// buildRequest issues the wire request for e and returns its checked
// cookie. Every branch uses the *Checked constructor regardless of
// which apply path called it — the unchecked path simply discards the
// cookie without calling Check().
func (x *X11) buildRequest(e effect.Effect) checker {
	switch e.Kind {
	case effect.KindMap:
		return xproto.MapWindowChecked(x.conn, e.Window)

	case effect.KindUnmap:
		return xproto.UnmapWindowChecked(x.conn, e.Window)

	case effect.KindFocus:
		return xproto.SetInputFocusChecked(x.conn, xproto.InputFocusPointerRoot, e.Window, xproto.TimeCurrentTime)

	case effect.KindRaise:
		return xproto.ConfigureWindowChecked(x.conn, e.Window, xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove})

	case effect.KindConfigure:
		return xproto.ConfigureWindowChecked(x.conn, e.Window,
			xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight|xproto.ConfigWindowBorderWidth,
			[]uint32{uint32(e.X), uint32(e.Y), e.Width, e.Height, e.Border})

	case effect.KindConfigurePositionSize:
		return xproto.ConfigureWindowChecked(x.conn, e.Window,
			xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
			[]uint32{uint32(e.X), uint32(e.Y), e.Width, e.Height})

	case effect.KindSetBorder:
		cw := xproto.ConfigureWindowChecked(x.conn, e.Window, xproto.ConfigWindowBorderWidth, []uint32{e.Border})
		xproto.ChangeWindowAttributesChecked(x.conn, e.Window, xproto.CwBorderPixel, []uint32{e.Pixel})
		return cw

	case effect.KindSetCardinal32:
		return xproto.ChangePropertyChecked(x.conn, xproto.PropModeReplace, e.Window, e.Atom, xproto.AtomCardinal, 32,
			1, encode32([]uint32{e.Value}))

	case effect.KindSetCardinal32List:
		return xproto.ChangePropertyChecked(x.conn, xproto.PropModeReplace, e.Window, e.Atom, xproto.AtomCardinal, 32,
			uint32(len(e.Values)), encode32(e.Values))

	case effect.KindSetAtomList:
		return xproto.ChangePropertyChecked(x.conn, xproto.PropModeReplace, e.Window, e.Atom, xproto.AtomAtom, 32,
			uint32(len(e.Values)), encode32(e.Values))

	case effect.KindSetUtf8String:
		data := []byte(e.Str)
		return xproto.ChangePropertyChecked(x.conn, xproto.PropModeReplace, e.Window, e.Atom, x.atoms.Utf8String, 8,
			uint32(len(data)), data)

	case effect.KindSetWindowProperty:
		return xproto.ChangePropertyChecked(x.conn, xproto.PropModeReplace, e.Window, e.Atom, xproto.AtomWindow, 32,
			uint32(len(e.Values)), encode32(e.Values))

	case effect.KindKillClient:
		return xproto.KillClientChecked(x.conn, uint32(e.Window))

	case effect.KindSendWmDelete:
		return x.sendWmDelete(e.Window)

	case effect.KindGrabKey:
		return xproto.GrabKeyChecked(x.conn, true, e.GrabWindow, e.Modifiers, e.Keycode,
			xproto.GrabModeAsync, xproto.GrabModeAsync)

	case effect.KindGrabButton:
		return xproto.GrabButtonChecked(x.conn, false, e.Window,
			uint16(xproto.EventMaskButtonPress), xproto.GrabModeSync, xproto.GrabModeAsync,
			xproto.WindowNone, xproto.CursorNone, xproto.ButtonIndex1, xproto.ModMaskAny)

	case effect.KindSubscribeEnterNotify:
		return xproto.ChangeWindowAttributesChecked(x.conn, e.Window, xproto.CwEventMask,
			[]uint32{uint32(xproto.EventMaskEnterWindow)})

	default:
		return nil
	}
}

func (x *X11) sendWmDelete(w xproto.Window) checker {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: w,
		Type:   x.atoms.WmProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(x.atoms.WmDeleteWindow),
			uint32(xproto.TimeCurrentTime),
			0, 0, 0,
		}),
	}
	return xproto.SendEventChecked(x.conn, false, w, xproto.EventMaskNoEvent, string(ev.Bytes()))
}

func encode32(values []uint32) []byte {
	out := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[4*i:], v)
	}
	return out
}
