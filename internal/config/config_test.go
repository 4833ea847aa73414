package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML Config
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	want := DefaultConfig()
	if fromYAML.Width() != want.Width() {
		t.Errorf("Width() = %v, expected %v", fromYAML.Width(), want.Width())
	}
	if fromYAML.Paddle != want.Paddle {
		t.Errorf("Paddle = %+v, expected %+v", fromYAML.Paddle, want.Paddle)
	}
	if math.Abs(fromYAML.Physics.LaunchAngle-want.Physics.LaunchAngle) > 1e-12 {
		t.Errorf("LaunchAngle = %v, expected %v", fromYAML.Physics.LaunchAngle, want.Physics.LaunchAngle)
	}
	if fromYAML.Scoring != want.Scoring || fromYAML.Controller != want.Controller || fromYAML.Sound != want.Sound {
		t.Error("embedded YAML diverges from DefaultConfig()")
	}
}

func TestDerivedGeometry(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width() != 641 {
		t.Errorf("Width() = %v, expected 641", cfg.Width())
	}
	if cfg.MainHeight() != 652 {
		t.Errorf("MainHeight() = %v, expected 652", cfg.MainHeight())
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  initial_speed: 0.3\nscoring:\n  brick_destroy: 250\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.InitialSpeed != 0.3 {
		t.Errorf("InitialSpeed = %v, expected 0.3", cfg.Physics.InitialSpeed)
	}
	if cfg.Scoring.BrickDestroy != 250 {
		t.Errorf("BrickDestroy = %v, expected 250", cfg.Scoring.BrickDestroy)
	}
	// Untouched sections keep their defaults
	if cfg.Ball.Radius != 8 {
		t.Errorf("Ball.Radius = %v, expected default 8", cfg.Ball.Radius)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("ball:\n  radius: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("expected validation error for negative radius")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero columns", func(c *Config) { c.Field.Columns = 0 }, true},
		{"footer too tall", func(c *Config) { c.Field.FooterHeight = c.Field.Height }, true},
		{"paddle wider than field", func(c *Config) { c.Paddle.HalfWidth = 1000 }, true},
		{"zero speed", func(c *Config) { c.Physics.InitialSpeed = 0 }, true},
		{"zero tick interval", func(c *Config) { c.Scoring.TickIntervalMs = 0 }, true},
		{"huge launch angle", func(c *Config) { c.Physics.LaunchAngle = 1e17 }, false},
		{"infinite launch angle", func(c *Config) { c.Physics.LaunchAngle = math.Inf(1) }, true},
		{"NaN launch angle", func(c *Config) { c.Physics.LaunchAngle = math.NaN() }, true},
		{"NaN speed", func(c *Config) { c.Physics.InitialSpeed = math.NaN() }, true},
		{"negative speed up", func(c *Config) { c.Physics.SpeedUpAmount = -0.01 }, true},
		{"zero speed up", func(c *Config) { c.Physics.SpeedUpAmount = 0 }, false},
		{"infinite paddle angle", func(c *Config) { c.Paddle.Angles[1] = math.Inf(-1) }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultConfig()

	easy := DefaultConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Physics.InitialSpeed >= base.Physics.InitialSpeed {
		t.Error("easy preset should slow the ball down")
	}

	hard := DefaultConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Physics.InitialSpeed <= base.Physics.InitialSpeed {
		t.Error("hard preset should speed the ball up")
	}
	if hard.Paddle.HalfWidth >= base.Paddle.HalfWidth {
		t.Error("hard preset should shrink the paddle")
	}

	fixed := DefaultConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Physics.SpeedUpAmount != 0 {
		t.Errorf("fixed preset should disable speed-up, got %v", fixed.Physics.SpeedUpAmount)
	}

	for _, c := range []Config{easy, hard, fixed} {
		if err := c.Validate(); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}
