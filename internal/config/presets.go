package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.InitialSpeed = 0.12
		cfg.Physics.SpeedUpAmount = 0.015
		cfg.Physics.SpeedUpIntervalMs = 30000
		cfg.Paddle.HalfWidth = 40
	case DifficultyHard:
		cfg.Physics.InitialSpeed = 0.2
		cfg.Physics.SpeedUpAmount = 0.035
		cfg.Physics.SpeedUpIntervalMs = 15000
		cfg.Paddle.HalfWidth = 24
	case DifficultyFixed:
		// No progression: the ball keeps its initial speed
		cfg.Physics.SpeedUpAmount = 0
	}
}
