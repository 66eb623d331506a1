package wm

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"

	"github.com/kestrelwm/kestrel/action"
	"github.com/kestrelwm/kestrel/config"
	"github.com/kestrelwm/kestrel/effect"
	"github.com/kestrelwm/kestrel/keysym"
)

func TestResolveBindingsSkipsUnresolvedKeysyms(t *testing.T) {
	// A zero-value Keymap has no loaded keyboard mapping, so every
	// binding should be dropped rather than panic or add a zero
	// keycode entry.
	var empty keysym.Keymap
	bindings := []config.Binding{
		{Sym: keysym.XKq, Modifiers: config.ModMod1, Action: action.Event{Kind: action.Kill}},
		{Sym: keysym.XKReturn, Modifiers: config.ModMod1, Action: action.Event{Kind: action.Spawn, Cmd: "st"}},
	}

	out := resolveBindings(empty, bindings)

	assert.Empty(t, out)
}

func TestKeygrabEffectsOneGrabPerBinding(t *testing.T) {
	root := xproto.Window(1)
	bindings := map[chord]action.Event{
		{keycode: 24, modifiers: config.ModMod1}: {Kind: action.Kill},
		{keycode: 36, modifiers: config.ModMod1}: {Kind: action.Spawn, Cmd: "st"},
	}

	effects := keygrabEffects(bindings, root)

	assert.Len(t, effects, 2)
	assert.Contains(t, effects, effect.GrabKey(24, config.ModMod1, root))
	assert.Contains(t, effects, effect.GrabKey(36, config.ModMod1, root))
}
