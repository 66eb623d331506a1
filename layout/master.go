package layout

// Master is a dwindle/spiral layout: the first window takes the
// dominant half of the area, and each subsequent window recursively
// halves whatever remains, alternating horizontal and vertical splits.
// Weight values are ignored; only the count of windows matters.
type Master struct{}

func (Master) Generate(area Rect, weights []uint32, border, gap uint32) []Rect {
	if len(weights) == 0 {
		return nil
	}

	totalBorder := border + gap/2
	prevX := gap
	prevY := gap
	prevH := area.H - gap
	prevW := area.W - gap

	last := len(weights) - 1
	rects := make([]Rect, len(weights))
	for i := range weights {
		switch {
		case i == last:
			rects[i] = Rect{
				X: int32(prevX), Y: int32(prevY),
				W: pad(prevW, totalBorder), H: pad(prevH, totalBorder),
			}
		case i%2 == 0:
			innerW := prevW / 2
			rects[i] = Rect{
				X: int32(prevX), Y: int32(prevY),
				W: pad(innerW, totalBorder), H: pad(prevH, totalBorder),
			}
			prevX += innerW
			prevW = innerW
		default:
			innerH := prevH / 2
			rects[i] = Rect{
				X: int32(prevX), Y: int32(prevY),
				W: pad(prevW, totalBorder), H: pad(innerH, totalBorder),
			}
			prevY += innerH
			prevH = innerH
		}
	}
	return rects
}
