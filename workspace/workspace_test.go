package workspace

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
)

func TestEmptyWorkspaceHasNoFocus(t *testing.T) {
	w := New()
	_, ok := w.Focus()
	assert.False(t, ok)
	assert.Equal(t, 0, w.Len())
}

func TestPushSetsFocusWhenNoneHeld(t *testing.T) {
	w := New()
	w.Push(xproto.Window(1))
	idx, ok := w.Focus()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	w.Push(xproto.Window(2))
	idx, ok = w.Focus()
	assert.True(t, ok)
	assert.Equal(t, 0, idx, "existing focus is not disturbed by a later push")
}

func TestRemoveAtReclampsFocusToLastValidIndex(t *testing.T) {
	w := New()
	w.Push(xproto.Window(1))
	w.Push(xproto.Window(2))
	w.Push(xproto.Window(3))
	w.SetFocus(2)

	_, ok := w.RemoveAt(2)
	assert.True(t, ok)
	idx, ok := w.Focus()
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestRemoveLastWindowClearsFocus(t *testing.T) {
	w := New()
	w.Push(xproto.Window(1))
	w.RemoveAt(0)
	_, ok := w.Focus()
	assert.False(t, ok)
	assert.Equal(t, 0, w.Len())
}

func TestRemoveAtOutOfRange(t *testing.T) {
	w := New()
	w.Push(xproto.Window(1))
	_, ok := w.RemoveAt(5)
	assert.False(t, ok)
	assert.Equal(t, 1, w.Len())
}

func TestSetFocusRejectsOutOfRange(t *testing.T) {
	w := New()
	w.Push(xproto.Window(1))
	assert.False(t, w.SetFocus(3))
	idx, _ := w.Focus()
	assert.Equal(t, 0, idx)
}

func TestSwap(t *testing.T) {
	w := New()
	w.Push(xproto.Window(1))
	w.Push(xproto.Window(2))
	w.Swap(0, 1)
	assert.Equal(t, []xproto.Window{2, 1}, w.Windows())
}

func TestRetainReclampsFocus(t *testing.T) {
	w := New()
	w.Push(xproto.Window(1))
	w.Push(xproto.Window(2))
	w.Push(xproto.Window(3))
	w.SetFocus(2)
	w.Retain(func(win xproto.Window) bool { return win != xproto.Window(3) })
	assert.Equal(t, []xproto.Window{1, 2}, w.Windows())
	idx, ok := w.Focus()
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestIndexOf(t *testing.T) {
	w := New()
	w.Push(xproto.Window(7))
	w.Push(xproto.Window(9))
	idx, ok := w.IndexOf(xproto.Window(9))
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	_, ok = w.IndexOf(xproto.Window(42))
	assert.False(t, ok)
}
