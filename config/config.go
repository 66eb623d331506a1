// Package config loads window-manager configuration via viper and
// supplies the built-in keybinding table; bindings are not read from
// the config file.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/kestrelwm/kestrel/action"
	"github.com/kestrelwm/kestrel/keysym"
)

const (
	DefaultBorderWidth = 2
	DefaultWindowGap   = 8
	DefaultDockHeight  = 24
	DefaultLogLevel    = "info"
	DefaultAutostart   = "~/.config/kestrel/autostart.sh"
)

// Modifier mask bits, mirroring xproto.ModMaskN (duplicated here so
// this package stays free of an xgb import — it deals in plain
// uint16 masks with the same bit values, passed to the grab unchanged).
const (
	ModShift uint16 = 1 << 0
	ModCtrl  uint16 = 1 << 2
	ModMod1  uint16 = 1 << 3
)

// Binding pairs a keysym+modifier chord with the action it triggers.
type Binding struct {
	Sym       uint32
	Modifiers uint16
	Action    action.Event
}

// Config is the fully-resolved runtime configuration.
type Config struct {
	BorderWidth       uint32
	WindowGap         uint32
	DockHeight        uint32
	LogLevel          string
	Autostart         string
	FocusFollowsMouse bool
	Bindings          []Binding
}

// Load reads configuration from path via viper (YAML/TOML/JSON, by
// extension). A missing file is not an error — Load falls back to
// defaults, matching the original's "just works with no config"
// behavior.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("border_width", DefaultBorderWidth)
	v.SetDefault("window_gap", DefaultWindowGap)
	v.SetDefault("dock_height", DefaultDockHeight)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("autostart", DefaultAutostart)
	v.SetDefault("focus_follows_mouse", false)

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	return &Config{
		BorderWidth:       uint32(v.GetInt("border_width")),
		WindowGap:         uint32(v.GetInt("window_gap")),
		DockHeight:        uint32(v.GetInt("dock_height")),
		LogLevel:          v.GetString("log_level"),
		Autostart:         v.GetString("autostart"),
		FocusFollowsMouse: v.GetBool("focus_follows_mouse"),
		Bindings:          DefaultBindings(),
	}, nil
}

// DefaultBindings is the Mod1-centric keybinding table new installs
// start with: a terminal and a couple of launchers, window-focus
// movement, workspace switching, and the kill/close binding.
func DefaultBindings() []Binding {
	return []Binding{
		{Sym: keysym.XKReturn, Modifiers: ModMod1, Action: action.Event{Kind: action.Spawn, Cmd: "st"}},
		{Sym: keysym.XKw, Modifiers: ModMod1, Action: action.Event{Kind: action.Spawn, Cmd: "google-chrome-stable"}},
		{Sym: keysym.XKd, Modifiers: ModMod1, Action: action.Event{Kind: action.Spawn, Cmd: "dmenu_run"}},
		{Sym: keysym.XKq, Modifiers: ModMod1, Action: action.Event{Kind: action.Kill}},

		{Sym: keysym.XKj, Modifiers: ModMod1, Action: action.Event{Kind: action.PrevWindow}},
		{Sym: keysym.XKk, Modifiers: ModMod1, Action: action.Event{Kind: action.NextWindow}},
		{Sym: keysym.XKh, Modifiers: ModMod1, Action: action.Event{Kind: action.SwapLeft}},
		{Sym: keysym.XKl, Modifiers: ModMod1, Action: action.Event{Kind: action.SwapRight}},

		{Sym: keysym.XKEqual, Modifiers: ModMod1, Action: action.Event{Kind: action.IncreaseWindowWeight, N: 1}},
		{Sym: keysym.XKMinus, Modifiers: ModMod1, Action: action.Event{Kind: action.DecreaseWindowWeight, N: 1}},
		{Sym: keysym.XKEqual, Modifiers: ModMod1 | ModShift, Action: action.Event{Kind: action.IncreaseWindowGap, N: 2}},
		{Sym: keysym.XKMinus, Modifiers: ModMod1 | ModShift, Action: action.Event{Kind: action.DecreaseWindowGap, N: 2}},

		{Sym: keysym.XKSpace, Modifiers: ModMod1, Action: action.Event{Kind: action.CycleLayout}},
		{Sym: keysym.XKf, Modifiers: ModMod1, Action: action.Event{Kind: action.ToggleFullscreen}},

		{Sym: keysym.XKt, Modifiers: ModMod1, Action: action.Event{Kind: action.GoToWorkspace, Workspace: 0}},
		{Sym: keysym.XKy, Modifiers: ModMod1, Action: action.Event{Kind: action.GoToWorkspace, Workspace: 1}},
		{Sym: keysym.XKt, Modifiers: ModMod1 | ModShift, Action: action.Event{Kind: action.SendToWorkspace, Workspace: 0}},
		{Sym: keysym.XKy, Modifiers: ModMod1 | ModShift, Action: action.Event{Kind: action.SendToWorkspace, Workspace: 1}},
	}
}
