package ant

import "fmt"

// Mark is the rendering hint attached to a non-terminal step outcome.
// It tells the driver which symbol to draw at the painted cell; the
// automaton's own state never depends on it.
type Mark int

const (
	MarkBlank  Mark = iota // Light cell repainted Dark, path display off
	MarkPath               // Light cell repainted Dark, path display on
	MarkFilled             // Dark cell repainted Light, always drawn filled
)

// StepOutcome is the result of a single Step call.
// When Left is true the agent stepped outside the grid: nothing was
// mutated and the run is over. Otherwise X, Y is the cell the agent
// moved to and painted, and Mark is the symbol hint for the renderer.
type StepOutcome struct {
	Left  bool
	X, Y  int
	Color CellColor // Color now stored at (X, Y)
	Mark  Mark
}

// Agent is the ant: a position within the grid and a current heading.
type Agent struct {
	X, Y    int
	Heading Heading
}

// Config holds the construction parameters for an Automaton.
type Config struct {
	Width, Height  int
	StartX, StartY int
	Heading        Heading
	ShowPath       bool
}

// DefaultStart centers the agent on the grid and points it Right.
func DefaultStart(width, height int) Config {
	return Config{
		Width:   width,
		Height:  height,
		StartX:  width / 2,
		StartY:  height / 2,
		Heading: Right,
	}
}

// Automaton owns a Grid and an Agent and advances them one step at a time.
// It is single-threaded: Step must be called sequentially by one driver.
type Automaton struct {
	grid     *Grid
	agent    Agent
	showPath bool
	steps    uint64
	done     bool
}

// New constructs an automaton with an all-Dark grid. Invalid dimensions
// and out-of-bounds start positions are rejected here rather than
// surfacing during stepping.
func New(cfg Config) (*Automaton, error) {
	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if !grid.InBounds(cfg.StartX, cfg.StartY) {
		return nil, fmt.Errorf("ant: start position (%d, %d) outside %dx%d grid",
			cfg.StartX, cfg.StartY, cfg.Width, cfg.Height)
	}
	return &Automaton{
		grid: grid,
		agent: Agent{
			X:       cfg.StartX,
			Y:       cfg.StartY,
			Heading: cfg.Heading,
		},
		showPath: cfg.ShowPath,
	}, nil
}

// Step advances the simulation by exactly one tick:
//
//  1. Move the agent one cell along its heading.
//  2. If that leaves the grid, return a Left outcome without mutating
//     anything; the automaton is frozen from then on.
//  3. Otherwise flip the color of the new cell and turn the agent:
//     Light cells turn it left, Dark cells turn it right.
//
// The stored color is the toggled value, the textbook single-toggle rule.
func (a *Automaton) Step() StepOutcome {
	if a.done {
		return StepOutcome{Left: true, X: a.agent.X, Y: a.agent.Y}
	}

	dx, dy := a.agent.Heading.Offset()
	nx, ny := a.agent.X+dx, a.agent.Y+dy

	if !a.grid.InBounds(nx, ny) {
		a.done = true
		return StepOutcome{Left: true, X: a.agent.X, Y: a.agent.Y}
	}

	a.agent.X, a.agent.Y = nx, ny
	a.steps++

	current := a.grid.colorAt(nx, ny)

	var mark Mark
	switch current {
	case Light:
		a.grid.paint(nx, ny, Dark)
		a.agent.Heading = a.agent.Heading.RotateLeft()
		if a.showPath {
			mark = MarkPath
		} else {
			mark = MarkBlank
		}
	case Dark:
		a.grid.paint(nx, ny, Light)
		a.agent.Heading = a.agent.Heading.RotateRight()
		mark = MarkFilled
	}

	return StepOutcome{
		X:     nx,
		Y:     ny,
		Color: current.Toggle(),
		Mark:  mark,
	}
}

// Position returns the agent's current coordinates.
func (a *Automaton) Position() (x, y int) {
	return a.agent.X, a.agent.Y
}

// Heading returns the agent's current heading.
func (a *Automaton) Heading() Heading {
	return a.agent.Heading
}

// CellAt returns the color of an arbitrary in-bounds cell.
func (a *Automaton) CellAt(x, y int) (CellColor, error) {
	return a.grid.At(x, y)
}

// Width returns the grid width.
func (a *Automaton) Width() int {
	return a.grid.Width()
}

// Height returns the grid height.
func (a *Automaton) Height() int {
	return a.grid.Height()
}

// Steps returns the number of committed steps so far.
func (a *Automaton) Steps() uint64 {
	return a.steps
}

// Done reports whether the agent has left the grid.
func (a *Automaton) Done() bool {
	return a.done
}

// SetShowPath changes the rendering hint for future Light-to-Dark
// transitions. It has no effect on the grid or the agent.
func (a *Automaton) SetShowPath(show bool) {
	a.showPath = show
}

// ShowPath reports the current path display setting.
func (a *Automaton) ShowPath() bool {
	return a.showPath
}
