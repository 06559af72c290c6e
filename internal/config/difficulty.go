package config

import "math"

// Progress is the run state difficulty is measured against.
type Progress struct {
	Score int // points this run
	Ticks int // simulation ticks this run
	Level int // 1-based level number
}

// DifficultyManager scales ghost speed as a run progresses.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the difficulty (0.0 to 1.0) reached at p. With "level"
// progression the first maze counts as zero progress.
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		progress = float64(p.Score) / maxAt
	case ProgressionTime:
		progress = float64(p.Ticks) / maxAt
	case ProgressionLevel:
		progress = float64(p.Level-1) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0, 1)
	return d.initialLevel + progress*(1-d.initialLevel)
}

// Speed scales a base speed by the difficulty at p, from base at level 0
// up to base * (1 + speed_multiplier) at level 1.
func (d *DifficultyManager) Speed(baseSpeed float64, p Progress) float64 {
	return baseSpeed * (1 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
