package layout

// Horizontal lays windows out side by side in equal-height columns,
// each column's width proportional to its weight.
type Horizontal struct{}

// Generate panics on empty weights: dividing the area by a weight sum
// of zero is a programming error, not a runtime condition callers
// should recover from.
func (Horizontal) Generate(area Rect, weights []uint32, border, gap uint32) []Rect {
	if len(weights) == 0 {
		panic("layout: horizontal: empty input")
	}

	var total uint32
	for _, w := range weights {
		total += w
	}

	totalBorder := border + gap
	innerH := pad(area.H, totalBorder)
	partition := area.W / total

	rects := make([]Rect, len(weights))
	var cumulative uint32
	for i, weight := range weights {
		cell := (area.W * weight) / total
		innerW := pad(cell, totalBorder)
		x := cumulative*partition + gap
		rects[i] = Rect{X: int32(x), Y: int32(gap), W: innerW, H: innerH}
		cumulative += weight
	}
	return rects
}
