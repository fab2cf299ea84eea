package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPaintDrop loads Paint Drop configuration.
// Search order: customPath -> ~/.paintdrop/configs/paintdrop.yaml ->
// ./configs/paintdrop.yaml -> embedded default.
// Values missing from a file keep their defaults.
func LoadPaintDrop(customPath string) (PaintDropConfig, error) {
	cfg := DefaultPaintDropConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultPaintDropConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, validate(cfg)
	}

	for _, path := range []string{userConfigPath("paintdrop.yaml"), filepath.Join("configs", "paintdrop.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultPaintDropConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil && validate(candidate) == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPaintDropYAML, &cfg); err != nil {
		return DefaultPaintDropConfig(), nil
	}
	return cfg, nil
}

// validate rejects values the game cannot run with.
func validate(cfg PaintDropConfig) error {
	switch {
	case cfg.Field.Width <= 0:
		return fmt.Errorf("config: field.width must be positive, got %v", cfg.Field.Width)
	case cfg.Field.Margin < 0 || 2*cfg.Field.Margin >= cfg.Field.Width:
		return fmt.Errorf("config: field.margin %v leaves no room in width %v", cfg.Field.Margin, cfg.Field.Width)
	case cfg.Timing.MinCadence <= 0 || cfg.Timing.MaxCadence < cfg.Timing.MinCadence:
		return fmt.Errorf("config: invalid cadence bounds [%v, %v]", cfg.Timing.MinCadence, cfg.Timing.MaxCadence)
	case cfg.Timing.FallDuration <= 0:
		return fmt.Errorf("config: timing.fall_duration must be positive, got %v", cfg.Timing.FallDuration)
	case cfg.Player.Width < 1 || cfg.Bucket.Width < 1:
		return fmt.Errorf("config: player and bucket widths must be at least 1")
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".paintdrop", "configs", filename)
}
