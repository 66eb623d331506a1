// Package effect defines the tagged-union value that reducers emit and
// the X11 adapter consumes. An Effect describes one X-server-observable
// mutation; it carries no connection handle and never blocks.
package effect

import "github.com/BurntSushi/xgb/xproto"

// Kind tags which fields of an Effect are meaningful.
type Kind int

const (
	KindMap Kind = iota
	KindUnmap
	KindFocus
	KindRaise
	KindConfigure
	KindConfigurePositionSize
	KindSetBorder
	KindSetCardinal32
	KindSetCardinal32List
	KindSetAtomList
	KindSetUtf8String
	KindSetWindowProperty
	KindKillClient
	KindSendWmDelete
	KindGrabKey
	KindGrabButton
	KindSubscribeEnterNotify
)

func (k Kind) String() string {
	switch k {
	case KindMap:
		return "Map"
	case KindUnmap:
		return "Unmap"
	case KindFocus:
		return "Focus"
	case KindRaise:
		return "Raise"
	case KindConfigure:
		return "Configure"
	case KindConfigurePositionSize:
		return "ConfigurePositionSize"
	case KindSetBorder:
		return "SetBorder"
	case KindSetCardinal32:
		return "SetCardinal32"
	case KindSetCardinal32List:
		return "SetCardinal32List"
	case KindSetAtomList:
		return "SetAtomList"
	case KindSetUtf8String:
		return "SetUtf8String"
	case KindSetWindowProperty:
		return "SetWindowProperty"
	case KindKillClient:
		return "KillClient"
	case KindSendWmDelete:
		return "SendWmDelete"
	case KindGrabKey:
		return "GrabKey"
	case KindGrabButton:
		return "GrabButton"
	case KindSubscribeEnterNotify:
		return "SubscribeEnterNotify"
	default:
		return "Unknown"
	}
}

// Effect is a single flat value covering every variant. Only the fields
// relevant to Kind are populated; the rest are zero. Effects compare
// equal with reflect.DeepEqual, which is how tests assert on them.
type Effect struct {
	Kind Kind

	Window     xproto.Window
	GrabWindow xproto.Window

	X, Y          int32
	Width, Height uint32
	Border        uint32
	Pixel         uint32

	Atom   xproto.Atom
	Value  uint32
	Values []uint32
	Str    string

	Keycode   xproto.Keycode
	Modifiers uint16
}

func Map(w xproto.Window) Effect   { return Effect{Kind: KindMap, Window: w} }
func Unmap(w xproto.Window) Effect { return Effect{Kind: KindUnmap, Window: w} }
func Focus(w xproto.Window) Effect { return Effect{Kind: KindFocus, Window: w} }
func Raise(w xproto.Window) Effect { return Effect{Kind: KindRaise, Window: w} }

func Configure(w xproto.Window, x, y int32, width, height, border uint32) Effect {
	return Effect{Kind: KindConfigure, Window: w, X: x, Y: y, Width: width, Height: height, Border: border}
}

func ConfigurePositionSize(w xproto.Window, x, y int32, width, height uint32) Effect {
	return Effect{Kind: KindConfigurePositionSize, Window: w, X: x, Y: y, Width: width, Height: height}
}

func SetBorder(w xproto.Window, pixel, width uint32) Effect {
	return Effect{Kind: KindSetBorder, Window: w, Pixel: pixel, Border: width}
}

func SetCardinal32(w xproto.Window, atom xproto.Atom, value uint32) Effect {
	return Effect{Kind: KindSetCardinal32, Window: w, Atom: atom, Value: value}
}

func SetCardinal32List(w xproto.Window, atom xproto.Atom, values []uint32) Effect {
	return Effect{Kind: KindSetCardinal32List, Window: w, Atom: atom, Values: values}
}

func SetAtomList(w xproto.Window, atom xproto.Atom, values []uint32) Effect {
	return Effect{Kind: KindSetAtomList, Window: w, Atom: atom, Values: values}
}

func SetUtf8String(w xproto.Window, atom xproto.Atom, value string) Effect {
	return Effect{Kind: KindSetUtf8String, Window: w, Atom: atom, Str: value}
}

// SetWindowProperty sets a property of type WINDOW holding one or more
// window IDs (e.g. _NET_SUPPORTING_WM_CHECK, _NET_ACTIVE_WINDOW).
func SetWindowProperty(w xproto.Window, atom xproto.Atom, values []uint32) Effect {
	return Effect{Kind: KindSetWindowProperty, Window: w, Atom: atom, Values: values}
}

func KillClient(w xproto.Window) Effect    { return Effect{Kind: KindKillClient, Window: w} }
func SendWmDelete(w xproto.Window) Effect  { return Effect{Kind: KindSendWmDelete, Window: w} }
func GrabButton(w xproto.Window) Effect    { return Effect{Kind: KindGrabButton, Window: w} }
func SubscribeEnterNotify(w xproto.Window) Effect {
	return Effect{Kind: KindSubscribeEnterNotify, Window: w}
}

func GrabKey(keycode xproto.Keycode, modifiers uint16, grabWindow xproto.Window) Effect {
	return Effect{Kind: KindGrabKey, Keycode: keycode, Modifiers: modifiers, GrabWindow: grabWindow}
}
