// Package ant implements the classic two-color Langton's Ant automaton:
// a bounded grid of binary cells and a single agent that turns, paints and
// moves one cell per step. The package is pure simulation logic with no
// knowledge of terminals, timing or input.
package ant

// CellColor is the binary state of a grid cell.
type CellColor uint8

const (
	Dark CellColor = iota
	Light
)

// Toggle returns the opposite color. Toggle is an involution:
// c.Toggle().Toggle() == c.
func (c CellColor) Toggle() CellColor {
	if c == Dark {
		return Light
	}
	return Dark
}

// String returns a human-readable name for the color.
func (c CellColor) String() string {
	if c == Dark {
		return "dark"
	}
	return "light"
}
