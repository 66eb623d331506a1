// Package wm wires the pure state/layout/ewmh packages to a live X11
// connection: it owns the event loop, resolves keybindings, spawns
// client processes, and is the only place side effects actually
// happen.
package wm

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/sirupsen/logrus"

	"github.com/kestrelwm/kestrel/action"
	"github.com/kestrelwm/kestrel/config"
	"github.com/kestrelwm/kestrel/effect"
	"github.com/kestrelwm/kestrel/ewmh"
	"github.com/kestrelwm/kestrel/keysym"
	"github.com/kestrelwm/kestrel/state"
	"github.com/kestrelwm/kestrel/x11"
)

type chord struct {
	keycode   xproto.Keycode
	modifiers uint16
}

// WindowManager is the running instance: a live X11 connection, the
// EWMH publisher, the state engine, and the resolved keybinding table.
type WindowManager struct {
	cfg   *config.Config
	x     *x11.X11
	ewmh  *ewmh.Manager
	state *state.State

	keymap   keysym.Keymap
	bindings map[chord]action.Event
}

// New connects to the X server and interns atoms, but does not yet
// take over window management — call Init for that.
func New(cfg *config.Config) (*WindowManager, error) {
	x, err := x11.New()
	if err != nil {
		return nil, fmt.Errorf("wm: connect: %w", err)
	}
	return &WindowManager{cfg: cfg, x: x}, nil
}

// Close releases the X11 connection.
func (wm *WindowManager) Close() {
	wm.x.Close()
}

// Init grabs substructure redirect on the root window (failing if
// another window manager already holds it), loads the keyboard
// mapping, resolves the configured keybindings, and publishes the
// startup EWMH hints.
func (wm *WindowManager) Init() error {
	if err := wm.x.SetRootEventMask(); err != nil {
		if _, ok := err.(xproto.AccessError); ok {
			return fmt.Errorf("wm: could not become window manager, is another one already running?")
		}
		return fmt.Errorf("wm: set root event mask: %w", err)
	}

	keymap, err := keysym.Load(wm.x.Conn())
	if err != nil {
		return fmt.Errorf("wm: load keyboard mapping: %w", err)
	}
	wm.keymap = keymap
	wm.bindings = resolveBindings(keymap, wm.cfg.Bindings)

	screen := wm.x.ScreenConfig(wm.x.WhitePixel(), wm.x.BlackPixel())
	wm.state = state.New(screen, wm.cfg.BorderWidth, wm.cfg.WindowGap, wm.cfg.DockHeight, defaultLayouts())
	wm.ewmh = ewmh.New(wm.x.Atoms(), wm.x.Root(), wm.x.CheckWindow())

	keygrabs := keygrabEffects(wm.bindings, wm.x.Root())
	wm.x.ApplyEffectsChecked(keygrabs)

	wm.x.ApplyEffectsUnchecked(wm.ewmh.PublishHints())
	wm.x.ApplyEffectsUnchecked([]effect.Effect{wm.ewmh.DesktopGeometryEffect(screen.Width, screen.Height)})
	wm.x.ApplyEffectsUnchecked(wm.ewmh.Sync(wm.state))

	return nil
}

// Run spawns the autostart script, scans for already-mapped windows,
// then loops forever dispatching X events. It returns only on a fatal
// connection-level failure.
func (wm *WindowManager) Run() error {
	spawnAutostart(wm.cfg.Autostart)

	startup := wm.grabWindows()
	wm.x.ApplyEffectsUnchecked(startup)

	for {
		ev, xerr := wm.x.WaitForEvent()
		if ev == nil && xerr == nil {
			return fmt.Errorf("wm: X connection closed")
		}
		if xerr != nil {
			logrus.WithField("error", xerr).Error("X11 protocol error")
			continue
		}

		effects := wm.dispatch(ev)
		wm.x.ApplyEffectsUnchecked(effects)
	}
}

func resolveBindings(keymap keysym.Keymap, bindings []config.Binding) map[chord]action.Event {
	out := make(map[chord]action.Event, len(bindings))
	for _, b := range bindings {
		code, ok := keymap.KeycodeFor(b.Sym)
		if !ok {
			logrus.WithField("keysym", b.Sym).Warn("no keycode for keysym, skipping binding")
			continue
		}
		out[chord{keycode: code, modifiers: b.Modifiers}] = b.Action
	}
	return out
}

func keygrabEffects(bindings map[chord]action.Event, root xproto.Window) []effect.Effect {
	effects := make([]effect.Effect, 0, len(bindings))
	for c := range bindings {
		effects = append(effects, effect.GrabKey(c.keycode, c.modifiers, root))
	}
	return effects
}
