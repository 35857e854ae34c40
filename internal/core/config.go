package core

// RuntimeConfig contains configuration passed to the simulation at startup.
// The grid dimensions normally come from the terminal size.
type RuntimeConfig struct {
	GridW       int  // Grid width in cells
	GridH       int  // Grid height in cells
	FixedGrid   bool // Grid size was set explicitly, ignore terminal resizes
	DelayMS     int  // Delay between steps in milliseconds
	ShowPath    bool // Draw a shaded marker on Light-to-Dark transitions
	ShowCounter bool // Draw the step counter in the top-left corner
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridW:       80,
		GridH:       24,
		DelayMS:     20,
		ShowPath:    false,
		ShowCounter: true,
	}
}
