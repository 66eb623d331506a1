package x11

import (
	"encoding/binary"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
)

func TestDecodeAtomsEmpty(t *testing.T) {
	assert.Empty(t, decodeAtoms(nil))
}

func TestDecodeAtomsRoundTrip(t *testing.T) {
	want := []xproto.Atom{7, 42, 1009}
	buf := make([]byte, 4*len(want))
	for i, a := range want {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(a))
	}
	assert.Equal(t, want, decodeAtoms(buf))
}

func TestDecodeAtomsIgnoresTrailingPartialWord(t *testing.T) {
	buf := make([]byte, 7)
	binary.LittleEndian.PutUint32(buf, 99)
	assert.Equal(t, []xproto.Atom{99}, decodeAtoms(buf))
}

// TestNewRequiresLiveDisplay exercises the real connection path when a
// display is reachable, and is skipped otherwise — this package has no
// fake/mock transport, so its end-to-end behavior can only be verified
// against a live (or Xvfb-backed) X server.
func TestNewRequiresLiveDisplay(t *testing.T) {
	x, err := New()
	if err != nil {
		t.Skipf("no X display available: %v", err)
	}
	defer x.Close()

	assert.NotZero(t, x.Root())
	assert.NotZero(t, x.CheckWindow())
	assert.NotNil(t, x.Atoms())
}
