package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	var cfg PaintDropConfig
	if err := yaml.Unmarshal(GetDefaultYAML("paintdrop"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultPaintDropConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultPaintDropConfig())
	}
	if GetDefaultYAML("flappy") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("timing:\n  fall_duration: 1.5\nplayer:\n  width: 9\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPaintDrop(path)
	if err != nil {
		t.Fatalf("LoadPaintDrop() failed: %v", err)
	}
	if cfg.Timing.FallDuration != 1.5 || cfg.Player.Width != 9 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Fields missing from the file keep defaults
	if cfg.Timing.LevelDelay != 2.25 || cfg.Field.Width != 750 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPaintDrop(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("field: [not, a, map"), 0o600)
	if _, err := LoadPaintDrop(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	narrow := filepath.Join(dir, "narrow.yaml")
	os.WriteFile(narrow, []byte("field:\n  width: 100\n  margin: 60\n"), 0o600)
	if _, err := LoadPaintDrop(narrow); err == nil {
		t.Error("margin wider than half the field should fail")
	}
}

func TestApplyPaintDropPreset(t *testing.T) {
	base := DefaultPaintDropConfig()

	easy := base
	ApplyPaintDropPreset(&easy, DifficultyEasy)
	if easy.Timing.FallDuration <= base.Timing.FallDuration || easy.Player.Width <= base.Player.Width {
		t.Errorf("easy should slow buckets and widen the catcher: %+v", easy)
	}

	hard := base
	ApplyPaintDropPreset(&hard, DifficultyHard)
	if hard.Timing.FallDuration >= base.Timing.FallDuration || hard.Player.Width >= base.Player.Width {
		t.Errorf("hard should speed buckets and narrow the catcher: %+v", hard)
	}

	for _, p := range []DifficultyPreset{DifficultyNormal, DifficultyFixed, ""} {
		cfg := base
		ApplyPaintDropPreset(&cfg, p)
		if cfg != base {
			t.Errorf("preset %q should not change config", p)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error(`ParsePreset("hard") should be hard`)
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should map to empty")
	}
}

func TestSeconds(t *testing.T) {
	if got := Seconds(2.25); got != 2250*time.Millisecond {
		t.Errorf("Seconds(2.25) = %v", got)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("PAINTDROP_DB", "/tmp/pd.db")
	t.Setenv("PAINTDROP_DIFFICULTY", "easy")
	t.Setenv("PAINTDROP_FPS", "30")

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}
	if e.DBPath != "/tmp/pd.db" || e.Difficulty != "easy" || e.FPS != 30 {
		t.Errorf("LoadEnv() = %+v", e)
	}
	if e.SSHAddr != ":23234" {
		t.Errorf("SSHAddr default = %q", e.SSHAddr)
	}

	t.Setenv("PAINTDROP_FPS", "fast")
	if _, err := LoadEnv(); err == nil {
		t.Error("non-numeric FPS should fail")
	}
}
