package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			BrickWidth:   40,
			BrickHeight:  20,
			Columns:      16, // 641 units wide
			Height:       700,
			FooterHeight: 48,
		},
		Ball: BallConfig{
			Radius: 8,
		},
		Paddle: PaddleConfig{
			HalfWidth: 32,
			Step:      32,
			Angles:    [3]float64{0.2, 0.4, 0.6},
		},
		Physics: PhysicsConfig{
			InitialSpeed:      0.15,
			LaunchAngle:       math.Pi / 3,
			SpeedUpAmount:     0.025,
			SpeedUpIntervalMs: 20000,
		},
		Scoring: ScoringConfig{
			BrickDestroy:   100,
			TickIntervalMs: 1000,
		},
		Controller: ControllerConfig{
			LevelStartDelayMs: 2000,
			GameStartDelayMs:  1000,
		},
		Sound: SoundConfig{
			Enabled:     true,
			LookaheadMs: 100,
			Volume:      0.8,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArkanoidYAML
}
