// Package keysym resolves X11 keysyms to keycodes for the live
// keyboard mapping, and carries the small set of named keysym
// constants the default keybindings reference.
package keysym

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Well-known keysym values, per the X11 keysymdef list. A small
// subset, including every key the default bindings use.
const (
	XKBackSpace uint32 = 0xff08
	XKTab       uint32 = 0xff09
	XKReturn    uint32 = 0xff0d
	XKEscape    uint32 = 0xff1b
	XKSpace     uint32 = 0x0020
	XKMinus     uint32 = 0x002d
	XKEqual     uint32 = 0x003d

	XK0 uint32 = 0x0030
	XK1 uint32 = 0x0031
	XK2 uint32 = 0x0032
	XK3 uint32 = 0x0033
	XK4 uint32 = 0x0034
	XK5 uint32 = 0x0035
	XK6 uint32 = 0x0036
	XK7 uint32 = 0x0037
	XK8 uint32 = 0x0038
	XK9 uint32 = 0x0039

	XKa uint32 = 0x0061
	XKb uint32 = 0x0062
	XKc uint32 = 0x0063
	XKd uint32 = 0x0064
	XKe uint32 = 0x0065
	XKf uint32 = 0x0066
	XKh uint32 = 0x0068
	XKj uint32 = 0x006a
	XKk uint32 = 0x006b
	XKl uint32 = 0x006c
	XKq uint32 = 0x0071
	XKt uint32 = 0x0074
	XKw uint32 = 0x0077
	XKy uint32 = 0x0079

	XKUp    uint32 = 0xff52
	XKDown  uint32 = 0xff54
	XKLeft  uint32 = 0xff51
	XKRight uint32 = 0xff53
)

// loKeycode/hiKeycode bound the keycode range queried from the
// server; 8..255 covers every keycode a standard X11 keyboard can
// report.
const (
	loKeycode = 8
	hiKeycode = 255
)

// Keymap resolves keysyms to keycodes for the keyboard mapping in
// effect when Load was called.
type Keymap struct {
	bySym map[uint32]xproto.Keycode
}

// Load queries the server's current keyboard mapping and builds a
// Keymap from it.
func Load(conn *xgb.Conn) (Keymap, error) {
	count := hiKeycode - loKeycode + 1
	reply, err := xproto.GetKeyboardMapping(conn, loKeycode, byte(count)).Reply()
	if err != nil {
		return Keymap{}, err
	}
	if reply == nil {
		return Keymap{}, fmt.Errorf("keysym: empty keyboard mapping reply")
	}

	bySym := resolveKeysyms(loKeycode, int(reply.KeysymsPerKeycode), reply.Keysyms)
	return Keymap{bySym: bySym}, nil
}

// resolveKeysyms builds the sym-to-keycode map from a flat
// per-keycode keysym table, as returned by GetKeyboardMapping. firstCode
// is the keycode the table's first row corresponds to.
func resolveKeysyms(firstCode byte, perKeycode int, keysyms []xproto.Keysym) map[uint32]xproto.Keycode {
	bySym := make(map[uint32]xproto.Keycode)

	// Iterate keycodes in ascending order so the first keysym match
	// wins — the "lowest keycode" resolution rule when a keysym is
	// bound to more than one physical key.
	rows := len(keysyms) / perKeycode
	for i := 0; i < rows; i++ {
		code := xproto.Keycode(int(firstCode) + i)
		syms := keysyms[i*perKeycode : (i+1)*perKeycode]
		for _, sym := range syms {
			s := uint32(sym)
			if s == 0 {
				continue
			}
			if _, taken := bySym[s]; !taken {
				bySym[s] = code
			}
		}
	}

	return bySym
}

// KeycodeFor returns the lowest keycode bound to sym, if any.
func (k Keymap) KeycodeFor(sym uint32) (xproto.Keycode, bool) {
	code, ok := k.bySym[sym]
	return code, ok
}
