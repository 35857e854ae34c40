package ant

import "hash/fnv"

// Snapshot captures the complete automaton state for determinism
// verification in tests.
type Snapshot struct {
	Steps      uint64
	X, Y       int
	Heading    Heading
	Done       bool
	LightCells int
	GridHash   uint64 // FNV-1a over the cell buffer
}

// Snapshot returns the current automaton snapshot.
func (a *Automaton) Snapshot() Snapshot {
	h := fnv.New64a()
	for _, c := range a.grid.cells {
		h.Write([]byte{byte(c)})
	}
	return Snapshot{
		Steps:      a.steps,
		X:          a.agent.X,
		Y:          a.agent.Y,
		Heading:    a.agent.Heading,
		Done:       a.done,
		LightCells: a.grid.LightCount(),
		GridHash:   h.Sum64(),
	}
}
