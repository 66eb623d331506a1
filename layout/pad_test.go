package layout

import "testing"

func TestPad(t *testing.T) {
	cases := []struct {
		dim, border, want uint32
	}{
		{100, 10, 80},
		{20, 10, 1},
		{0, 0, 1},
		{2, 1, 1},
	}
	for _, c := range cases {
		if got := pad(c.dim, c.border); got != c.want {
			t.Errorf("pad(%d, %d) = %d, want %d", c.dim, c.border, got, c.want)
		}
	}
}
