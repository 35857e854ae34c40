package ant

import (
	"errors"
	"testing"
)

func TestNewGridRejectsInvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -5, 10},
		{"negative height", 10, -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGrid(tc.w, tc.h); err == nil {
				t.Errorf("NewGrid(%d, %d) should fail", tc.w, tc.h)
			}
		})
	}
}

func TestNewGridStartsDark(t *testing.T) {
	g, err := NewGrid(7, 5)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	if g.Width() != 7 || g.Height() != 5 {
		t.Errorf("dimensions = %dx%d, expected 7x5", g.Width(), g.Height())
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c, err := g.At(x, y)
			if err != nil {
				t.Fatalf("At(%d, %d) failed: %v", x, y, err)
			}
			if c != Dark {
				t.Errorf("cell (%d, %d) = %s, expected dark", x, y, c)
			}
		}
	}

	if g.LightCount() != 0 {
		t.Errorf("LightCount() = %d on a fresh grid", g.LightCount())
	}
}

func TestGridSetAndAt(t *testing.T) {
	g, err := NewGrid(10, 10)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	if err := g.Set(3, 4, Light); err != nil {
		t.Fatalf("Set(3, 4) failed: %v", err)
	}

	c, err := g.At(3, 4)
	if err != nil {
		t.Fatalf("At(3, 4) failed: %v", err)
	}
	if c != Light {
		t.Errorf("At(3, 4) = %s, expected light", c)
	}

	// Neighbors are untouched
	for _, p := range [][2]int{{2, 4}, {4, 4}, {3, 3}, {3, 5}} {
		c, err := g.At(p[0], p[1])
		if err != nil {
			t.Fatalf("At(%d, %d) failed: %v", p[0], p[1], err)
		}
		if c != Dark {
			t.Errorf("neighbor (%d, %d) = %s, expected dark", p[0], p[1], c)
		}
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g, err := NewGrid(4, 4)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	oob := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}}
	for _, p := range oob {
		if g.InBounds(p[0], p[1]) {
			t.Errorf("InBounds(%d, %d) = true", p[0], p[1])
		}
		if _, err := g.At(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At(%d, %d) error = %v, expected ErrOutOfBounds", p[0], p[1], err)
		}
		if err := g.Set(p[0], p[1], Light); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d, %d) error = %v, expected ErrOutOfBounds", p[0], p[1], err)
		}
	}
}
