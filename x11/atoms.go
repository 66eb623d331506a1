package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Atoms holds every interned atom this window manager reads or
// writes. Interned once at startup and passed around by value
// thereafter — cheap 32-bit identifiers, per the core spec's design
// notes.
type Atoms struct {
	NumberOfDesktops  xproto.Atom
	CurrentDesktop    xproto.Atom
	Supported         xproto.Atom
	SupportingWmCheck xproto.Atom
	WmWindowType      xproto.Atom
	WmWindowTypeDock  xproto.Atom
	WmName            xproto.Atom
	WmDesktop         xproto.Atom
	WmState           xproto.Atom
	WmStateFullscreen xproto.Atom
	ClientList        xproto.Atom
	ActiveWindow      xproto.Atom
	Workarea          xproto.Atom
	DesktopGeometry   xproto.Atom
	CloseWindow       xproto.Atom
	WmProtocols       xproto.Atom
	WmDeleteWindow    xproto.Atom
	Utf8String        xproto.Atom
}

var atomNames = []string{
	"_NET_NUMBER_OF_DESKTOPS",
	"_NET_CURRENT_DESKTOP",
	"_NET_SUPPORTED",
	"_NET_SUPPORTING_WM_CHECK",
	"_NET_WM_WINDOW_TYPE",
	"_NET_WM_WINDOW_TYPE_DOCK",
	"_NET_WM_NAME",
	"_NET_WM_DESKTOP",
	"_NET_WM_STATE",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_CLIENT_LIST",
	"_NET_ACTIVE_WINDOW",
	"_NET_WORKAREA",
	"_NET_DESKTOP_GEOMETRY",
	"_NET_CLOSE_WINDOW",
	"WM_PROTOCOLS",
	"WM_DELETE_WINDOW",
	"UTF8_STRING",
}

func internAtoms(conn *xgb.Conn) (*Atoms, error) {
	cookies := make(map[string]xproto.InternAtomCookie, len(atomNames))
	for _, name := range atomNames {
		cookies[name] = xproto.InternAtom(conn, false, uint16(len(name)), name)
	}

	replies := make(map[string]xproto.Atom, len(atomNames))
	for _, name := range atomNames {
		reply, err := cookies[name].Reply()
		if err != nil {
			return nil, err
		}
		replies[name] = reply.Atom
	}

	return &Atoms{
		NumberOfDesktops:  replies["_NET_NUMBER_OF_DESKTOPS"],
		CurrentDesktop:    replies["_NET_CURRENT_DESKTOP"],
		Supported:         replies["_NET_SUPPORTED"],
		SupportingWmCheck: replies["_NET_SUPPORTING_WM_CHECK"],
		WmWindowType:      replies["_NET_WM_WINDOW_TYPE"],
		WmWindowTypeDock:  replies["_NET_WM_WINDOW_TYPE_DOCK"],
		WmName:            replies["_NET_WM_NAME"],
		WmDesktop:         replies["_NET_WM_DESKTOP"],
		WmState:           replies["_NET_WM_STATE"],
		WmStateFullscreen: replies["_NET_WM_STATE_FULLSCREEN"],
		ClientList:        replies["_NET_CLIENT_LIST"],
		ActiveWindow:      replies["_NET_ACTIVE_WINDOW"],
		Workarea:          replies["_NET_WORKAREA"],
		DesktopGeometry:   replies["_NET_DESKTOP_GEOMETRY"],
		CloseWindow:       replies["_NET_CLOSE_WINDOW"],
		WmProtocols:       replies["WM_PROTOCOLS"],
		WmDeleteWindow:    replies["WM_DELETE_WINDOW"],
		Utf8String:        replies["UTF8_STRING"],
	}, nil
}
