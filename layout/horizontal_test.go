package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHorizontalTwoEqualWindows(t *testing.T) {
	got := Horizontal{}.Generate(Rect{W: 1000, H: 800}, []uint32{1, 1}, 0, 0)
	want := []Rect{
		{X: 0, Y: 0, W: 500, H: 800},
		{X: 500, Y: 0, W: 500, H: 800},
	}
	assert.Equal(t, want, got)
}

func TestHorizontalSingleWindowWithBorderAndGap(t *testing.T) {
	got := Horizontal{}.Generate(Rect{W: 1000, H: 800}, []uint32{1}, 2, 4)
	want := []Rect{{X: 4, Y: 4, W: 988, H: 788}}
	assert.Equal(t, want, got)
}

func TestHorizontalThreeEqualWindows(t *testing.T) {
	got := Horizontal{}.Generate(Rect{W: 900, H: 600}, []uint32{1, 1, 1}, 0, 0)
	assert.Len(t, got, 3)
	assert.Equal(t, int32(0), got[0].X)
	assert.Equal(t, int32(300), got[1].X)
	assert.Equal(t, int32(600), got[2].X)
	for _, r := range got {
		assert.Equal(t, uint32(600), r.H)
	}
}

func TestHorizontalWeightedSplit(t *testing.T) {
	got := Horizontal{}.Generate(Rect{W: 900, H: 300}, []uint32{2, 1}, 0, 0)
	assert.Equal(t, uint32(600), got[0].W)
	assert.Equal(t, uint32(300), got[1].W)
}

func TestHorizontalWeightScaleInvariance(t *testing.T) {
	small := Horizontal{}.Generate(Rect{W: 1000, H: 800}, []uint32{1, 1}, 0, 0)
	large := Horizontal{}.Generate(Rect{W: 1000, H: 800}, []uint32{100, 100}, 0, 0)
	assert.Equal(t, small, large)
}

func TestHorizontalSharedYAndHeight(t *testing.T) {
	got := Horizontal{}.Generate(Rect{W: 700, H: 500}, []uint32{1, 2, 1}, 1, 2)
	for i := 1; i < len(got); i++ {
		assert.Equal(t, got[0].Y, got[i].Y)
		assert.Equal(t, got[0].H, got[i].H)
	}
}

func TestHorizontalStrictlyIncreasingX(t *testing.T) {
	got := Horizontal{}.Generate(Rect{W: 1200, H: 400}, []uint32{1, 3, 2}, 0, 2)
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i].X, got[i-1].X)
	}
}

func TestHorizontalEmptyInputPanics(t *testing.T) {
	assert.Panics(t, func() {
		Horizontal{}.Generate(Rect{W: 100, H: 100}, nil, 0, 0)
	})
}

func TestHorizontalOutputLengthMatchesWeights(t *testing.T) {
	weights := []uint32{1, 2, 3, 4, 5}
	got := Horizontal{}.Generate(Rect{W: 3000, H: 900}, weights, 1, 1)
	assert.Len(t, got, len(weights))
	for _, r := range got {
		assert.GreaterOrEqual(t, r.W, uint32(1))
		assert.GreaterOrEqual(t, r.H, uint32(1))
	}
}

func TestHorizontalAreaOriginIrrelevant(t *testing.T) {
	atOrigin := Horizontal{}.Generate(Rect{X: 0, Y: 0, W: 800, H: 600}, []uint32{1, 1}, 0, 0)
	offset := Horizontal{}.Generate(Rect{X: 500, Y: 300, W: 800, H: 600}, []uint32{1, 1}, 0, 0)
	assert.Equal(t, atOrigin, offset)
}
