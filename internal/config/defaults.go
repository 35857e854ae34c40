package config

import (
	_ "embed"
)

//go:embed defaults/langton.yaml
var defaultLangtonYAML []byte

// DefaultSimConfig returns the default simulation configuration:
// 20ms delay, counter on, path off.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Display: DisplayConfig{
			ShowPath:    false,
			ShowCounter: true,
			Symbols: SymbolsConfig{
				Filled: "█",
				Path:   "░",
			},
		},
		Timing: TimingConfig{
			DelayMS:    20,
			MinDelayMS: 1,
			MaxDelayMS: 1000,
		},
	}
}
