package ewmh

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"

	"github.com/kestrelwm/kestrel/action"
	"github.com/kestrelwm/kestrel/effect"
	"github.com/kestrelwm/kestrel/layout"
	"github.com/kestrelwm/kestrel/state"
	"github.com/kestrelwm/kestrel/x11"
)

func testAtoms() *x11.Atoms {
	// Arbitrary distinct IDs; Sync only ever threads them through, it
	// never interns or compares them against a live server.
	return &x11.Atoms{
		NumberOfDesktops:  1,
		CurrentDesktop:    2,
		Supported:         3,
		SupportingWmCheck: 4,
		WmWindowType:      5,
		WmWindowTypeDock:  6,
		WmName:            7,
		WmDesktop:         8,
		WmState:           9,
		WmStateFullscreen: 10,
		ClientList:        11,
		ActiveWindow:      12,
		Workarea:          13,
		DesktopGeometry:   14,
		CloseWindow:       15,
		WmProtocols:       16,
		WmDeleteWindow:    17,
		Utf8String:        18,
	}
}

func testState() *state.State {
	screen := state.ScreenConfig{Width: 1000, Height: 800, FocusedBorderPixel: 0xff0000, NormalBorderPixel: 0x888888}
	layouts := layout.NewManager(layout.Registration{Kind: layout.KindHorizontal, Algorithm: layout.Horizontal{}})
	return state.New(screen, 0, 0, 24, layouts)
}

func TestSyncIncludesWorkareaAndActiveWindow(t *testing.T) {
	atoms := testAtoms()
	root := xproto.Window(100)
	s := testState()
	s.TrackStartupManaged(xproto.Window(1), 0)
	s.TrackStartupManaged(xproto.Window(2), 1)
	s.TrackStartupDock(xproto.Window(99))
	s.SetFocus(xproto.Window(1))

	m := New(atoms, root, xproto.Window(101))
	effects := m.Sync(s)

	usableHeight := s.UsableScreenHeight()
	expectedWorkarea := make([]uint32, 0, 4*NumWorkspaces)
	for i := 0; i < NumWorkspaces; i++ {
		expectedWorkarea = append(expectedWorkarea, 0, 0, 1000, usableHeight)
	}
	assert.Contains(t, effects, effect.SetCardinal32List(root, atoms.Workarea, expectedWorkarea))
	assert.Contains(t, effects, effect.SetWindowProperty(root, atoms.ActiveWindow, []uint32{1}))
	assert.Contains(t, effects, effect.SetCardinal32(xproto.Window(2), atoms.WmDesktop, 1))
	assert.Contains(t, effects, effect.SetAtomList(xproto.Window(1), atoms.WmState, nil))
}

func TestSyncNoWindows(t *testing.T) {
	atoms := testAtoms()
	root := xproto.Window(100)
	s := testState()

	m := New(atoms, root, xproto.Window(101))
	effects := m.Sync(s)

	assert.Contains(t, effects, effect.SetWindowProperty(root, atoms.ClientList, nil))
	assert.Contains(t, effects, effect.SetWindowProperty(root, atoms.ActiveWindow, nil))
	assert.Contains(t, effects, effect.SetCardinal32(root, atoms.CurrentDesktop, 0))
}

func TestSyncFullscreenWindow(t *testing.T) {
	atoms := testAtoms()
	root := xproto.Window(100)
	s := testState()
	s.TrackStartupManaged(xproto.Window(1), 0)
	s.SetFocus(xproto.Window(1))
	s.ApplyAction(action.Event{Kind: action.ToggleFullscreen})

	m := New(atoms, root, xproto.Window(101))
	effects := m.Sync(s)

	assert.Contains(t, effects, effect.SetAtomList(xproto.Window(1), atoms.WmState, []uint32{uint32(atoms.WmStateFullscreen)}))
}

func TestPublishHintsSetsCheckWindowIdentity(t *testing.T) {
	atoms := testAtoms()
	root := xproto.Window(100)
	check := xproto.Window(101)
	m := New(atoms, root, check)

	effects := m.PublishHints()
	assert.Contains(t, effects, effect.SetWindowProperty(check, atoms.SupportingWmCheck, []uint32{uint32(check)}))
}
