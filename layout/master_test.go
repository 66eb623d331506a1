package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMasterThreeWindows(t *testing.T) {
	got := Master{}.Generate(Rect{W: 1000, H: 800}, []uint32{1, 1, 1}, 0, 0)
	want := []Rect{
		{X: 0, Y: 0, W: 500, H: 800},
		{X: 500, Y: 0, W: 500, H: 400},
		{X: 500, Y: 400, W: 500, H: 400},
	}
	assert.Equal(t, want, got)
}

func TestMasterSingleWindowWithBorderAndGap(t *testing.T) {
	got := Master{}.Generate(Rect{W: 20, H: 20}, []uint32{1}, 4, 4)
	want := []Rect{{X: 4, Y: 4, W: 4, H: 4}}
	assert.Equal(t, want, got)
}

func TestMasterEmptyInputReturnsEmpty(t *testing.T) {
	got := Master{}.Generate(Rect{W: 100, H: 100}, nil, 0, 0)
	assert.Empty(t, got)
}

func TestMasterWeightsIgnored(t *testing.T) {
	a := Master{}.Generate(Rect{W: 1000, H: 800}, []uint32{1, 1, 1}, 0, 0)
	b := Master{}.Generate(Rect{W: 1000, H: 800}, []uint32{50, 1, 9}, 0, 0)
	assert.Equal(t, a, b)
}

func TestMasterAreaNonIncreasing(t *testing.T) {
	got := Master{}.Generate(Rect{W: 1600, H: 900}, []uint32{1, 1, 1, 1, 1}, 0, 0)
	areaOf := func(r Rect) uint64 { return uint64(r.W) * uint64(r.H) }
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, areaOf(got[i]), areaOf(got[i-1]))
	}
}

func TestMasterFirstWindowLargest(t *testing.T) {
	got := Master{}.Generate(Rect{W: 1280, H: 720}, []uint32{1, 1, 1, 1}, 0, 0)
	areaOf := func(r Rect) uint64 { return uint64(r.W) * uint64(r.H) }
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, areaOf(got[0]), areaOf(got[i]))
	}
}

func TestMasterNoOverlapAndWithinBounds(t *testing.T) {
	area := Rect{W: 1000, H: 800}
	got := Master{}.Generate(area, []uint32{1, 1, 1, 1, 1, 1, 1, 1}, 1, 2)
	for _, r := range got {
		assert.GreaterOrEqual(t, r.X, area.X)
		assert.GreaterOrEqual(t, r.Y, area.Y)
		assert.LessOrEqual(t, int64(r.X)+int64(r.W), int64(area.X)+int64(area.W))
		assert.LessOrEqual(t, int64(r.Y)+int64(r.H), int64(area.Y)+int64(area.H))
	}
	for i := 0; i < len(got); i++ {
		for j := i + 1; j < len(got); j++ {
			assert.False(t, rectsOverlap(got[i], got[j]), "rect %d overlaps rect %d", i, j)
		}
	}
}

func TestMasterAreaOriginIrrelevant(t *testing.T) {
	atOrigin := Master{}.Generate(Rect{X: 0, Y: 0, W: 800, H: 600}, []uint32{1, 1, 1}, 0, 0)
	offset := Master{}.Generate(Rect{X: 200, Y: 100, W: 800, H: 600}, []uint32{1, 1, 1}, 0, 0)
	assert.Equal(t, atOrigin, offset)
}

func rectsOverlap(a, b Rect) bool {
	if int64(a.X)+int64(a.W) <= int64(b.X) || int64(b.X)+int64(b.W) <= int64(a.X) {
		return false
	}
	if int64(a.Y)+int64(a.H) <= int64(b.Y) || int64(b.Y)+int64(b.H) <= int64(a.Y) {
		return false
	}
	return true
}
