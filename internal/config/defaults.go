package config

import (
	_ "embed"
)

//go:embed defaults/paintdrop.yaml
var defaultPaintDropYAML []byte

// DefaultPaintDropConfig returns the default Paint Drop configuration.
func DefaultPaintDropConfig() PaintDropConfig {
	return PaintDropConfig{
		Field: FieldConfig{
			Width:  750,
			Margin: 60,
			Ground: 2,
		},
		Timing: TimingConfig{
			MinCadence:   0.12,
			MaxCadence:   1.0,
			FallDuration: 1.0,
			LevelDelay:   2.25,
			PopDelay:     1.0,
			PopStagger:   0.15,
		},
		Player: PlayerConfig{
			Width: 7,
			Speed: 18,
		},
		Bucket: BucketConfig{
			Width: 3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "paintdrop":
		return defaultPaintDropYAML
	default:
		return nil
	}
}
