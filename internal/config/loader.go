package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the simulation configuration.
// Search order: customPath -> ~/.langton/config.yaml -> ./configs/langton.yaml -> embedded default
func Load(customPath string) (SimConfig, error) {
	var cfg SimConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/langton.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultLangtonYAML, &cfg); err != nil {
		return DefaultSimConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".langton", filename)
}

// normalize fills zero-valued timing fields with defaults so a partial
// config file still yields a usable configuration.
func normalize(cfg SimConfig) SimConfig {
	def := DefaultSimConfig()
	if cfg.Timing.DelayMS <= 0 {
		cfg.Timing.DelayMS = def.Timing.DelayMS
	}
	if cfg.Timing.MinDelayMS <= 0 {
		cfg.Timing.MinDelayMS = def.Timing.MinDelayMS
	}
	if cfg.Timing.MaxDelayMS <= 0 {
		cfg.Timing.MaxDelayMS = def.Timing.MaxDelayMS
	}
	if cfg.Display.Symbols.Filled == "" {
		cfg.Display.Symbols.Filled = def.Display.Symbols.Filled
	}
	if cfg.Display.Symbols.Path == "" {
		cfg.Display.Symbols.Path = def.Display.Symbols.Path
	}
	return cfg
}
