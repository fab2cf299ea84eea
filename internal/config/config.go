// Package config provides YAML-based game configuration loading, difficulty
// presets and environment overrides for Paint Drop.
package config

import "time"

// PaintDropConfig contains all configuration for the Paint Drop game.
type PaintDropConfig struct {
	Field  FieldConfig  `yaml:"field"`
	Timing TimingConfig `yaml:"timing"`
	Player PlayerConfig `yaml:"player"`
	Bucket BucketConfig `yaml:"bucket"`
}

// FieldConfig defines the virtual play field the placement walk runs in.
// Positions are in field units and mapped to terminal columns when drawn.
type FieldConfig struct {
	Width  float64 `yaml:"width"`  // Field width in units
	Margin float64 `yaml:"margin"` // Units kept clear at each edge
	Ground int     `yaml:"ground"` // Rows reserved for the ground at the bottom
}

// TimingConfig defines pacing. All values are in seconds.
type TimingConfig struct {
	MinCadence   float64 `yaml:"min_cadence"`   // Shortest time between spawns
	MaxCadence   float64 `yaml:"max_cadence"`   // Longest time between spawns
	FallDuration float64 `yaml:"fall_duration"` // Time for a bucket to reach the floor
	LevelDelay   float64 `yaml:"level_delay"`   // Pause before the next level starts
	PopDelay     float64 `yaml:"pop_delay"`     // Wait before leftover buckets vanish after a miss
	PopStagger   float64 `yaml:"pop_stagger"`   // Extra wait per leftover bucket
}

// PlayerConfig defines the catcher.
type PlayerConfig struct {
	Width int     `yaml:"width"` // Width in characters
	Speed float64 `yaml:"speed"` // Field units moved per tick while a key is held
}

// BucketConfig defines the falling buckets.
type BucketConfig struct {
	Width int `yaml:"width"` // Width in characters
}

// Seconds converts a config value in seconds to a time.Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI/environment string to a preset. Unknown or empty
// values return "" meaning the config is used as loaded.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPaintDropPreset adjusts fall time and catcher speed for a preset.
// The level plan itself is never changed. Normal and fixed keep the loaded values.
func ApplyPaintDropPreset(cfg *PaintDropConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.FallDuration *= 1.4
		cfg.Player.Speed *= 1.25
		cfg.Player.Width += 2
	case DifficultyHard:
		cfg.Timing.FallDuration *= 0.75
		cfg.Player.Width = max(cfg.Player.Width-2, 3)
	}
}
