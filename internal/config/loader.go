package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPacman loads the maze chase configuration.
// Search order: customPath -> ~/.arcade/configs/pacman.yaml -> ./configs/pacman.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets.
func LoadPacman(customPath string) (PacmanConfig, error) {
	cfg := DefaultPacmanConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultPacmanConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pacman.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultPacmanConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/pacman.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultPacmanConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPacmanYAML, &cfg); err != nil {
		return DefaultPacmanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPacmanPreset modifies the config based on a difficulty preset.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Lives.Start = 5
		cfg.Timers.Frightened = 14
	case DifficultyHard:
		cfg.Lives.Start = 2
		cfg.Timers.Frightened = 6
	}
}
