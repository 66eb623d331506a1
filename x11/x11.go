// Package x11 is the protocol adapter: it owns the live connection,
// translates raw X11 events into the shapes the state engine expects,
// and applies effect.Effect values as requests on the wire. Nothing in
// this package is pure — every exported method other than the small
// read-side queries does I/O.
package x11

import (
	"encoding/binary"
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/kestrelwm/kestrel/effect"
	"github.com/kestrelwm/kestrel/state"
)

// X11 wraps a live connection, the default screen, and the interned
// EWMH/ICCCM atom set.
type X11 struct {
	conn   *xgb.Conn
	screen *xproto.ScreenInfo
	atoms  *Atoms
	check  xproto.Window
}

// New opens a connection to the X server named by $DISPLAY, interns
// every atom this window manager needs, and creates the supporting
// check window EWMH requires.
func New() (*X11, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11: connect: %w", err)
	}

	setup := xproto.Setup(conn)
	if setup == nil || len(setup.Roots) < 1 {
		conn.Close()
		return nil, fmt.Errorf("x11: could not parse setup info")
	}
	screen := &setup.Roots[0]

	atoms, err := internAtoms(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("x11: intern atoms: %w", err)
	}

	x := &X11{conn: conn, screen: screen, atoms: atoms}

	check, err := x.createCheckWindow()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("x11: create check window: %w", err)
	}
	x.check = check

	return x, nil
}

// Close tears down the connection.
func (x *X11) Close() { x.conn.Close() }

// Conn exposes the raw connection for callers that need it directly
// (the keysym loader, extension-specific requests).
func (x *X11) Conn() *xgb.Conn { return x.conn }

// Root returns the root window of the managed screen.
func (x *X11) Root() xproto.Window { return x.screen.Root }

// CheckWindow returns the invisible window created to satisfy
// _NET_SUPPORTING_WM_CHECK.
func (x *X11) CheckWindow() xproto.Window { return x.check }

// Atoms returns the interned atom set.
func (x *X11) Atoms() *Atoms { return x.atoms }

// ScreenConfig derives the state engine's screen description from the
// live root window geometry and the given border pixels.
func (x *X11) ScreenConfig(focusedPixel, normalPixel uint32) state.ScreenConfig {
	return state.ScreenConfig{
		Width:              uint32(x.screen.WidthInPixels),
		Height:             uint32(x.screen.HeightInPixels),
		FocusedBorderPixel: focusedPixel,
		NormalBorderPixel:  normalPixel,
	}
}

// WhitePixel and BlackPixel return the screen's default pixel values,
// used as the stock focused/normal border colors when nothing more
// specific is configured.
func (x *X11) WhitePixel() uint32 { return x.screen.WhitePixel }
func (x *X11) BlackPixel() uint32 { return x.screen.BlackPixel }

func (x *X11) createCheckWindow() (xproto.Window, error) {
	win, err := xproto.NewWindowId(x.conn)
	if err != nil {
		return 0, err
	}
	err = xproto.CreateWindowChecked(
		x.conn, x.screen.RootDepth, win, x.screen.Root,
		-1, -1, 1, 1, 0,
		xproto.WindowClassInputOutput, x.screen.RootVisual,
		0, nil,
	).Check()
	if err != nil {
		return 0, err
	}
	return win, nil
}

// SetRootEventMask subscribes the root window to the substructure
// events a window manager needs (SubstructureRedirect lets it
// intercept MapRequest/ConfigureRequest; SubstructureNotify delivers
// the corresponding *Notify events for windows it does not redirect).
func (x *X11) SetRootEventMask() error {
	mask := uint32(xproto.EventMaskSubstructureRedirect |
		xproto.EventMaskSubstructureNotify |
		xproto.EventMaskPropertyChange |
		xproto.EventMaskStructureNotify)
	return xproto.ChangeWindowAttributesChecked(x.conn, x.screen.Root, xproto.CwEventMask, []uint32{mask}).Check()
}

// GetRootWindowChildren queries the root window's children, used once
// at startup to discover already-mapped windows.
func (x *X11) GetRootWindowChildren() ([]xproto.Window, error) {
	reply, err := xproto.QueryTree(x.conn, x.screen.Root).Reply()
	if err != nil {
		return nil, err
	}
	return reply.Children, nil
}

// WaitForEvent blocks for the next X event. A (nil, nil) return means
// the connection has died — xgb's contract, not an absence of events —
// and callers must treat it as fatal.
func (x *X11) WaitForEvent() (xgb.Event, xgb.Error) {
	return x.conn.WaitForEvent()
}

// ClassifyWindow inspects w's _NET_WM_WINDOW_TYPE to decide whether it
// is a dock. Otherwise it falls back to the window's attributes:
// override-redirect windows (tooltips, menus — clients explicitly
// asking not to be managed) classify as Unmanaged, everything else as
// a normal managed window. Any query failure is permissive and
// classifies as Managed.
func (x *X11) ClassifyWindow(w xproto.Window) (state.WindowType, error) {
	atoms, err := x.GetAtomList(w, x.atoms.WmWindowType)
	if err == nil {
		for _, a := range atoms {
			if a == x.atoms.WmWindowTypeDock {
				return state.Dock, nil
			}
		}
	}

	attrs, err := xproto.GetWindowAttributes(x.conn, w).Reply()
	if err != nil || attrs == nil {
		return state.Managed, nil
	}
	if attrs.OverrideRedirect {
		return state.Unmanaged, nil
	}
	return state.Managed, nil
}

// SupportsWmDelete reports whether w advertises WM_DELETE_WINDOW in
// its WM_PROTOCOLS property.
func (x *X11) SupportsWmDelete(w xproto.Window) bool {
	reply, err := xproto.GetProperty(x.conn, false, w, x.atoms.WmProtocols, xproto.AtomAtom, 0, (1<<32)-1).Reply()
	if err != nil || reply == nil {
		return false
	}
	for _, a := range decodeAtoms(reply.Value) {
		if a == x.atoms.WmDeleteWindow {
			return true
		}
	}
	return false
}

// GetCardinal32 reads a single CARDINAL property, if present.
func (x *X11) GetCardinal32(w xproto.Window, atom xproto.Atom) (uint32, bool) {
	reply, err := xproto.GetProperty(x.conn, false, w, atom, xproto.AtomCardinal, 0, 1).Reply()
	if err != nil || reply == nil || len(reply.Value) < 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(reply.Value), true
}

// GetAtomList reads an ATOM-typed property's full value.
func (x *X11) GetAtomList(w xproto.Window, atom xproto.Atom) ([]xproto.Atom, error) {
	reply, err := xproto.GetProperty(x.conn, false, w, atom, xproto.AtomAtom, 0, (1<<32)-1).Reply()
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, nil
	}
	return decodeAtoms(reply.Value), nil
}

func decodeAtoms(value []byte) []xproto.Atom {
	out := make([]xproto.Atom, 0, len(value)/4)
	for i := 0; i+4 <= len(value); i += 4 {
		out = append(out, xproto.Atom(binary.LittleEndian.Uint32(value[i:i+4])))
	}
	return out
}

// AllowEvents releases a synchronous pointer grab taken to observe a
// click before forwarding it to the client (ReplayPointer semantics).
func (x *X11) AllowEvents(mode byte) error {
	return xproto.AllowEventsChecked(x.conn, mode, xproto.TimeCurrentTime).Check()
}
