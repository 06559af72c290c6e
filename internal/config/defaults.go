package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default maze chase configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Movement: PacmanMovement{
			BaseSpeed:        5.0,
			EatenSpeed:       5.0,
			FrightenedFactor: 0.65,
			CenterEpsilon:    0.05,
			MaxStep:          0.1,
		},
		Timers: PacmanTimers{
			Ready:      3.0,
			Scatter:    5.0,
			Chase:      20.0,
			Frightened: 10.0,
			InputQueue: 0.5,
			EatenAnim:  1.0,
		},
		Scoring: PacmanScoring{
			Pellet:         10,
			PowerPellet:    100,
			Ghost:          500,
			ExtraLifeEvery: 10000,
			Max:            99999,
		},
		Lives: PacmanLives{
			Start: 3,
			Max:   9,
		},
		Ghosts: PacmanGhosts{
			Chaser:   GhostParams{SpeedOffset: -0.25, GatePass: 0},
			Ambusher: GhostParams{SpeedOffset: -0.5, GatePass: 0.15},
			Flanker:  GhostParams{SpeedOffset: -0.75, GatePass: 0.3},
			Erratic:  GhostParams{SpeedOffset: -1.0, GatePass: 0.5},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionLevel,
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pacman":
		return defaultPacmanYAML
	default:
		return nil
	}
}
