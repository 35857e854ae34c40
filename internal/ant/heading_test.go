package ant

import "testing"

func TestRotateCycleClosure(t *testing.T) {
	for _, h := range Headings() {
		left := h.RotateLeft().RotateLeft().RotateLeft().RotateLeft()
		if left != h {
			t.Errorf("four RotateLeft from %s = %s, expected %s", h, left, h)
		}
		right := h.RotateRight().RotateRight().RotateRight().RotateRight()
		if right != h {
			t.Errorf("four RotateRight from %s = %s, expected %s", h, right, h)
		}
	}
}

func TestRotateInverse(t *testing.T) {
	for _, h := range Headings() {
		if got := h.RotateLeft().RotateRight(); got != h {
			t.Errorf("RotateLeft then RotateRight from %s = %s", h, got)
		}
		if got := h.RotateRight().RotateLeft(); got != h {
			t.Errorf("RotateRight then RotateLeft from %s = %s", h, got)
		}
	}
}

func TestRotateLeftCycle(t *testing.T) {
	tests := []struct {
		from, to Heading
	}{
		{Up, Left},
		{Left, Down},
		{Down, Right},
		{Right, Up},
	}
	for _, tc := range tests {
		if got := tc.from.RotateLeft(); got != tc.to {
			t.Errorf("%s.RotateLeft() = %s, expected %s", tc.from, got, tc.to)
		}
		// RotateRight is the inverse edge
		if got := tc.to.RotateRight(); got != tc.from {
			t.Errorf("%s.RotateRight() = %s, expected %s", tc.to, got, tc.from)
		}
	}
}

func TestOffsets(t *testing.T) {
	tests := []struct {
		h      Heading
		dx, dy int
	}{
		{Up, 0, 1},
		{Down, 0, -1},
		{Left, 1, 0},
		{Right, -1, 0},
	}
	sumX, sumY := 0, 0
	for _, tc := range tests {
		dx, dy := tc.h.Offset()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%s.Offset() = (%d, %d), expected (%d, %d)", tc.h, dx, dy, tc.dx, tc.dy)
		}
		sumX += dx
		sumY += dy
	}
	// The four unit displacements cancel out
	if sumX != 0 || sumY != 0 {
		t.Errorf("offset sum = (%d, %d), expected (0, 0)", sumX, sumY)
	}
}

func TestOppositeOffsetsNegate(t *testing.T) {
	pairs := [][2]Heading{{Up, Down}, {Left, Right}}
	for _, p := range pairs {
		ax, ay := p[0].Offset()
		bx, by := p[1].Offset()
		if ax != -bx || ay != -by {
			t.Errorf("%s and %s offsets do not negate: (%d,%d) vs (%d,%d)",
				p[0], p[1], ax, ay, bx, by)
		}
	}
}

func TestColorToggleInvolution(t *testing.T) {
	for _, c := range []CellColor{Light, Dark} {
		if got := c.Toggle().Toggle(); got != c {
			t.Errorf("%s.Toggle().Toggle() = %s, expected %s", c, got, c)
		}
		if c.Toggle() == c {
			t.Errorf("%s.Toggle() should differ from %s", c, c)
		}
	}
}
