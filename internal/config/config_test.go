package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML PacmanConfig
	if err := yaml.Unmarshal(GetDefaultYAML("pacman"), &fromYAML); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}

	if fromYAML != DefaultPacmanConfig() {
		t.Errorf("embedded defaults differ from DefaultPacmanConfig():\n%+v\n%+v", fromYAML, DefaultPacmanConfig())
	}
}

func TestLoadPacmanCustomPathOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pacman.yaml")
	data := []byte("lives:\n  start: 7\ntimers:\n  frightened: 4.5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPacman(path)
	if err != nil {
		t.Fatalf("LoadPacman() failed: %v", err)
	}

	if cfg.Lives.Start != 7 {
		t.Errorf("Lives.Start = %d, expected 7", cfg.Lives.Start)
	}
	if cfg.Timers.Frightened != 4.5 {
		t.Errorf("Timers.Frightened = %v, expected 4.5", cfg.Timers.Frightened)
	}
	// Untouched keys keep their defaults.
	if cfg.Lives.Max != 9 || cfg.Scoring.Ghost != 500 || cfg.Timers.Chase != 20 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadPacmanErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPacman(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("lives: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadPacman(bad)
	if err == nil {
		t.Error("malformed custom config should fail")
	}
	if cfg != DefaultPacmanConfig() {
		t.Error("failed load should return defaults")
	}
}

func TestApplyPacmanPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		enabled    bool
		lives      int
		frightened float64
		initial    float64
	}{
		{DifficultyEasy, true, 5, 14, 0.0},
		{DifficultyNormal, true, 3, 10, 0.3},
		{DifficultyHard, true, 2, 6, 0.7},
		{DifficultyFixed, false, 3, 10, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPacmanConfig()
			ApplyPacmanPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Lives.Start != tc.lives {
				t.Errorf("Lives.Start = %d, expected %d", cfg.Lives.Start, tc.lives)
			}
			if cfg.Timers.Frightened != tc.frightened {
				t.Errorf("Timers.Frightened = %v, expected %v", cfg.Timers.Frightened, tc.frightened)
			}
			if cfg.Difficulty.InitialLevel != tc.initial {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initial)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should be empty")
	}
}

func TestDifficultyManagerSpeed(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: ProgressionScore, MaxAt: 1000},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 4.0},
		{500, 5.0},
		{1000, 6.0},
		{5000, 6.0}, // clamped at max difficulty
	}
	for _, tc := range tests {
		if got := dm.Speed(4.0, Progress{Score: tc.score}); got != tc.expected {
			t.Errorf("Speed(4, score %d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	cfg.Enabled = false
	dm = NewDifficultyManager(cfg)
	if got := dm.Speed(4.0, Progress{Score: 1000}); got != 4.0 {
		t.Errorf("disabled Speed = %v, expected base", got)
	}
	if dm.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
}

func TestDifficultyManagerProgressionTypes(t *testing.T) {
	tests := []struct {
		name     string
		typ      string
		p        Progress
		expected float64
	}{
		{"time halfway", ProgressionTime, Progress{Ticks: 50}, 0.75},
		{"first level is no progress", ProgressionLevel, Progress{Level: 1, Score: 90000}, 0.5},
		{"level halfway", ProgressionLevel, Progress{Level: 51}, 0.75},
		{"level past max", ProgressionLevel, Progress{Level: 500}, 1},
		{"none", ProgressionNone, Progress{Level: 500}, 0.5},
		{"unknown", "moon", Progress{Level: 500}, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dm := NewDifficultyManager(DifficultyConfig{
				Enabled:      true,
				InitialLevel: 0.5,
				Progression:  ProgressionConfig{Type: tc.typ, MaxAt: 100},
			})
			if got := dm.Level(tc.p); got != tc.expected {
				t.Errorf("Level(%+v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestDifficultyManagerInitialLevelClamps(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{InitialLevel: -3})
	if got := dm.Level(Progress{}); got != 0 {
		t.Errorf("initial level should clamp to 0, got %v", got)
	}
	dm = NewDifficultyManager(DifficultyConfig{InitialLevel: 2})
	if got := dm.Level(Progress{}); got != 1 {
		t.Errorf("initial level should clamp to 1, got %v", got)
	}
}
