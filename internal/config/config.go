// Package config provides YAML-based configuration loading and difficulty
// presets for the Arkanoid engine and its collaborators.
package config

import (
	"errors"
	"fmt"
	"math"
)

// Config contains all tunable parameters of the game.
type Config struct {
	Field      FieldConfig      `yaml:"field"`
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Controller ControllerConfig `yaml:"controller"`
	Sound      SoundConfig      `yaml:"sound"`
}

// FieldConfig defines the play-field geometry. The field is Columns bricks
// wide plus one unit so the right-most brick still fits inside the boundary.
type FieldConfig struct {
	BrickWidth   float64 `yaml:"brick_width"`
	BrickHeight  float64 `yaml:"brick_height"`
	Columns      int     `yaml:"columns"`
	Height       float64 `yaml:"height"`
	FooterHeight float64 `yaml:"footer_height"` // Band below the paddle plane
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
}

// PaddleConfig defines paddle size, keyboard step and deflection angles.
type PaddleConfig struct {
	HalfWidth float64    `yaml:"half_width"`
	Step      float64    `yaml:"step"`
	Angles    [3]float64 `yaml:"angles"` // Inner, middle, outer zone deflection (radians)
}

// PhysicsConfig defines ball speed and its progression.
type PhysicsConfig struct {
	InitialSpeed      float64 `yaml:"initial_speed"`
	LaunchAngle       float64 `yaml:"launch_angle"`
	SpeedUpAmount     float64 `yaml:"speed_up_amount"`
	SpeedUpIntervalMs float64 `yaml:"speed_up_interval_ms"`
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	BrickDestroy   int     `yaml:"brick_destroy"`
	TickIntervalMs float64 `yaml:"tick_interval_ms"`
}

// ControllerConfig defines the lifecycle delays used by the game controller.
type ControllerConfig struct {
	LevelStartDelayMs float64 `yaml:"level_start_delay_ms"`
	GameStartDelayMs  float64 `yaml:"game_start_delay_ms"`
}

// SoundConfig defines sound scheduling and playback.
type SoundConfig struct {
	Enabled     bool    `yaml:"enabled"`
	LookaheadMs float64 `yaml:"lookahead_ms"`
	Volume      float64 `yaml:"volume"` // 0.0 - 1.0
}

// Width returns the play-field width.
func (c Config) Width() float64 {
	return c.Field.BrickWidth*float64(c.Field.Columns) + 1
}

// MainHeight returns the y coordinate of the paddle plane.
func (c Config) MainHeight() float64 {
	return c.Field.Height - c.Field.FooterHeight
}

// Validate reports configuration values the engine cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.Field.BrickWidth <= 0 || c.Field.BrickHeight <= 0 {
		errs = append(errs, errors.New("brick dimensions must be positive"))
	}
	if c.Field.Columns <= 0 {
		errs = append(errs, errors.New("field columns must be positive"))
	}
	if c.Field.FooterHeight <= 0 || c.Field.FooterHeight >= c.Field.Height {
		errs = append(errs, fmt.Errorf("footer height %.0f must be inside field height %.0f", c.Field.FooterHeight, c.Field.Height))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, errors.New("ball radius must be positive"))
	}
	if c.Paddle.HalfWidth <= 0 || 2*c.Paddle.HalfWidth > c.Width() {
		errs = append(errs, fmt.Errorf("paddle half width %.0f does not fit the field", c.Paddle.HalfWidth))
	}
	if !finite(c.Physics.InitialSpeed) || c.Physics.InitialSpeed <= 0 {
		errs = append(errs, errors.New("initial speed must be positive"))
	}
	if !finite(c.Physics.LaunchAngle) {
		errs = append(errs, fmt.Errorf("launch angle %v must be finite", c.Physics.LaunchAngle))
	}
	if !finite(c.Physics.SpeedUpAmount) || c.Physics.SpeedUpAmount < 0 {
		errs = append(errs, fmt.Errorf("speed up amount %v must not be negative", c.Physics.SpeedUpAmount))
	}
	for _, a := range c.Paddle.Angles {
		if !finite(a) {
			errs = append(errs, errors.New("paddle angles must be finite"))
			break
		}
	}
	if !(c.Scoring.TickIntervalMs > 0) || !(c.Physics.SpeedUpIntervalMs > 0) {
		errs = append(errs, errors.New("timer intervals must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
