// Package config provides YAML-based configuration loading for the
// simulator: step delay, display toggles and marker symbols.
package config

// SimConfig contains all user-tunable simulation settings.
type SimConfig struct {
	Display DisplayConfig `yaml:"display"`
	Timing  TimingConfig  `yaml:"timing"`
}

// DisplayConfig defines how the ant's trail is drawn.
type DisplayConfig struct {
	ShowPath    bool          `yaml:"show_path"`    // Draw a shaded marker where the ant un-paints a cell
	ShowCounter bool          `yaml:"show_counter"` // Draw the step counter in the top-left corner
	Symbols     SymbolsConfig `yaml:"symbols"`
}

// SymbolsConfig defines the marker characters.
// Single-character strings; the first rune is used.
type SymbolsConfig struct {
	Filled string `yaml:"filled"` // Dark-to-Light transition marker
	Path   string `yaml:"path"`   // Light-to-Dark transition marker when show_path is on
}

// TimingConfig defines the pacing of the driver loop.
type TimingConfig struct {
	DelayMS    int `yaml:"delay_ms"`     // Delay between steps in milliseconds
	MinDelayMS int `yaml:"min_delay_ms"` // Lower bound for live speed adjustment
	MaxDelayMS int `yaml:"max_delay_ms"` // Upper bound for live speed adjustment
}

// FilledRune returns the configured filled marker as a rune.
func (s SymbolsConfig) FilledRune() rune {
	return firstRune(s.Filled, '█')
}

// PathRune returns the configured path marker as a rune.
func (s SymbolsConfig) PathRune() rune {
	return firstRune(s.Path, '░')
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
