package engine

import "github.com/vovakirdan/tui-arkanoid/internal/config"

// Snapshot is a read-only copy of the state a presentation needs.
// BricksVersion changes whenever the brick layout does; consumers redraw
// bricks only when it differs from the last value they saw.
type Snapshot struct {
	Time          float64 `json:"time"`
	BallX         float64 `json:"ballX"`
	BallY         float64 `json:"ballY"`
	PaddleLeft    float64 `json:"paddleLeft"`
	PaddleX       float64 `json:"paddleX"`
	Score         int     `json:"score"`
	Level         int     `json:"level"`
	Status        string  `json:"status"`
	BricksVersion uint64  `json:"bricksVersion"`
	State         State   `json:"state"`
	OnPaddle      bool    `json:"onPaddle"`
	Speed         float64 `json:"speed"`
	Remaining     int     `json:"remaining"`
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Time:          e.time,
		BallX:         e.ball.X,
		BallY:         e.ball.Y,
		PaddleLeft:    e.paddle.Left,
		PaddleX:       e.paddle.X,
		Score:         e.score,
		Level:         e.level,
		Status:        e.status,
		BricksVersion: e.bricksVersion,
		State:         e.state,
		OnPaddle:      e.onPaddle,
		Speed:         e.speed,
		Remaining:     e.remaining(),
	}
}

// Bricks returns a copy of the brick layout. Index 0 is the game area.
func (e *Engine) Bricks() []Brick {
	out := make([]Brick, len(e.bricks))
	copy(out, e.bricks)
	return out
}

// Ball returns the ball with its current edges.
func (e *Engine) Ball() Ball { return e.ball }

// Paddle returns the paddle position.
func (e *Engine) Paddle() Paddle { return e.paddle }

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// SetState is used by the controller, which owns the transitions the engine
// does not make itself.
func (e *Engine) SetState(s State) { e.state = s }

// ResetScore sets the score to zero.
func (e *Engine) ResetScore() { e.score = 0 }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Level returns the index of the loaded level, or -1 before the first load.
func (e *Engine) Level() int { return e.level }

// LevelCount returns the number of levels in the set.
func (e *Engine) LevelCount() int { return e.set.Len() }

// Title returns the title of the level set.
func (e *Engine) Title() string { return e.set.Title }

// Time returns the simulation clock in ms.
func (e *Engine) Time() float64 { return e.time }

// BallOnPaddle reports whether the ball is waiting for release.
func (e *Engine) BallOnPaddle() bool { return e.onPaddle }

// Angle returns the heading of the ball in radians.
func (e *Engine) Angle() float64 { return e.angle }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.Config { return e.cfg }
