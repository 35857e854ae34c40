package ant

// Heading represents the ant's direction of travel.
type Heading int

const (
	Up Heading = iota
	Down
	Left
	Right
)

// Headings lists all valid headings for iteration.
func Headings() []Heading {
	return []Heading{Up, Down, Left, Right}
}

// RotateLeft returns the heading turned 90 degrees counter-clockwise.
func (h Heading) RotateLeft() Heading {
	switch h {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	case Right:
		return Up
	default:
		return h
	}
}

// RotateRight returns the heading turned 90 degrees clockwise.
// It is the exact inverse of RotateLeft.
func (h Heading) RotateRight() Heading {
	switch h {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return h
	}
}

// Offset returns the unit displacement for one step in this heading:
// Up=(0,+1), Down=(0,-1), Left=(+1,0), Right=(-1,0). Only the
// Heading/offset pairing is observable; opposite headings negate
// each other.
func (h Heading) Offset() (dx, dy int) {
	switch h {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return 1, 0
	case Right:
		return -1, 0
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the heading.
func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
