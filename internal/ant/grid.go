package ant

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by Grid accessors for coordinates outside
// [0, width) x [0, height).
var ErrOutOfBounds = errors.New("ant: coordinate out of bounds")

// Grid is a fixed-size rectangular field of binary cells.
// Cells are stored in row-major order: index = y*width + x.
// Dimensions never change after construction.
type Grid struct {
	width  int
	height int
	cells  []CellColor // All cells start Dark
}

// NewGrid creates a grid with the given dimensions, all cells Dark.
// Zero or negative dimensions are rejected.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ant: invalid grid dimensions %dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]CellColor, width*height),
	}, nil
}

// Width returns the fixed grid width.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the fixed grid height.
func (g *Grid) Height() int {
	return g.height
}

// InBounds returns true if (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the color of the cell at (x, y).
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) At(x, y int) (CellColor, error) {
	if !g.InBounds(x, y) {
		return Dark, fmt.Errorf("%w: (%d, %d) on %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return g.cells[y*g.width+x], nil
}

// Set overwrites the color of the cell at (x, y).
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) Set(x, y int, c CellColor) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
	}
	g.cells[y*g.width+x] = c
	return nil
}

// colorAt reads a cell without a bounds check. Callers must have verified
// the coordinate with InBounds first.
func (g *Grid) colorAt(x, y int) CellColor {
	return g.cells[y*g.width+x]
}

// paint writes a cell without a bounds check. Same precondition as colorAt.
func (g *Grid) paint(x, y int, c CellColor) {
	g.cells[y*g.width+x] = c
}

// LightCount returns the number of Light cells, for diagnostics and tests.
func (g *Grid) LightCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Light {
			n++
		}
	}
	return n
}
