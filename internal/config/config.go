// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// PacmanConfig contains all tunable parameters of the maze chase.
type PacmanConfig struct {
	Movement   PacmanMovement   `yaml:"movement"`
	Timers     PacmanTimers     `yaml:"timers"`
	Scoring    PacmanScoring    `yaml:"scoring"`
	Lives      PacmanLives      `yaml:"lives"`
	Ghosts     PacmanGhosts     `yaml:"ghosts"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PacmanMovement defines entity speeds in tiles per second.
type PacmanMovement struct {
	BaseSpeed        float64 `yaml:"base_speed"`        // Player speed and reference for ghost offsets
	EatenSpeed       float64 `yaml:"eaten_speed"`       // Speed of a ghost returning to the house
	FrightenedFactor float64 `yaml:"frightened_factor"` // Multiplier applied to frightened ghosts
	CenterEpsilon    float64 `yaml:"center_epsilon"`    // Tolerance for the tile-center test
	MaxStep          float64 `yaml:"max_step"`          // Upper bound for dt in seconds
}

// PacmanTimers defines durations in seconds.
type PacmanTimers struct {
	Ready      float64 `yaml:"ready"`
	Scatter    float64 `yaml:"scatter"`
	Chase      float64 `yaml:"chase"`
	Frightened float64 `yaml:"frightened"`
	InputQueue float64 `yaml:"input_queue"`
	EatenAnim  float64 `yaml:"eaten_anim"`
}

// PacmanScoring defines point awards and limits.
type PacmanScoring struct {
	Pellet         int `yaml:"pellet"`
	PowerPellet    int `yaml:"power_pellet"`
	Ghost          int `yaml:"ghost"`
	ExtraLifeEvery int `yaml:"extra_life_every"`
	Max            int `yaml:"max"`
}

// PacmanLives defines the life counter.
type PacmanLives struct {
	Start int `yaml:"start"`
	Max   int `yaml:"max"`
}

// PacmanGhosts holds per-identity ghost parameters.
type PacmanGhosts struct {
	Chaser   GhostParams `yaml:"chaser"`
	Ambusher GhostParams `yaml:"ambusher"`
	Flanker  GhostParams `yaml:"flanker"`
	Erratic  GhostParams `yaml:"erratic"`
}

// GhostParams defines one ghost identity.
type GhostParams struct {
	SpeedOffset float64 `yaml:"speed_offset"` // Added to movement.base_speed
	GatePass    float64 `yaml:"gate_pass"`    // Eaten pellet fraction required to leave the house
}

// ByIndex returns the parameters of ghost i in chaser, ambusher, flanker,
// erratic order.
func (g PacmanGhosts) ByIndex(i int) GhostParams {
	switch i {
	case 0:
		return g.Chaser
	case 1:
		return g.Ambusher
	case 2:
		return g.Flanker
	default:
		return g.Erratic
	}
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// Progression types.
const (
	ProgressionNone  = "none"
	ProgressionScore = "score"
	ProgressionTime  = "time"
	ProgressionLevel = "level"
)

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // one of the Progression* constants
	MaxAt int    `yaml:"max_at"` // score, ticks or levels cleared at max difficulty
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
