// Package controller drives an engine through the game lifecycle: start
// delays, frame stepping, level progression, pause and input gating.
//
// All methods take the current wall time in milliseconds, which keeps the
// controller deterministic under test.
package controller

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/audio"
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/engine"
)

// Controller owns the timers around an engine. It is not safe for
// concurrent use.
type Controller struct {
	eng    *engine.Engine
	sched  *audio.Scheduler
	cfg    config.Config
	logger *log.Logger

	paused    bool
	running   bool
	finished  bool
	lastFrame float64
	wait      *timer
	onFinish  func(engine.Snapshot)
}

type timer struct {
	at   float64
	fire func(at float64)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithFinishHook registers fn to run once when a game ends, either by
// game over or by completing the last level.
func WithFinishHook(fn func(engine.Snapshot)) Option {
	return func(c *Controller) {
		c.onFinish = fn
	}
}

// New creates a controller. sched may be nil.
func New(eng *engine.Engine, sched *audio.Scheduler, cfg config.Config, opts ...Option) *Controller {
	c := &Controller{
		eng:    eng,
		sched:  sched,
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sched == nil {
		c.sched = audio.NewScheduler(nil, false, c.logger)
	}
	return c
}

// Engine returns the controlled engine.
func (c *Controller) Engine() *engine.Engine { return c.eng }

// NewGame resets the score and starts the first level after the game
// start delay.
func (c *Controller) NewGame(now float64) {
	if c.eng.State() == engine.StateWaiting {
		c.logger.Warn("game is already waiting to start")
		return
	}
	c.logger.Debug("new game", "now", now)
	c.stop()
	c.finished = false
	c.eng.ResetScore()
	c.eng.SetState(engine.StateInit)
	c.schedule(now+c.cfg.Controller.GameStartDelayMs, func(at float64) {
		if err := c.StartLevel(at, 0); err != nil {
			c.logger.Error("could not start first level", "error", err)
		}
	})
}

// StartLevel loads level and activates it after the level start delay.
// With an empty level set the ball bounces in the bare field. An invalid
// level returns the game to Init.
func (c *Controller) StartLevel(now float64, level int) error {
	if c.eng.State() == engine.StateWaiting {
		c.logger.Warn("game is already waiting to start", "level", level)
		return nil
	}
	c.logger.Debug("start level", "level", level, "now", now)
	c.stop()
	c.paused = false
	c.eng.SetState(engine.StateWaiting)

	if c.eng.LevelCount() > 0 {
		if err := c.eng.LoadLevel(level); err != nil {
			c.eng.SetState(engine.StateInit)
			c.logger.Error("cannot load level", "level", level, "error", err)
			return fmt.Errorf("start level: %w", err)
		}
	} else {
		c.eng.NewGame()
	}

	c.schedule(now+c.cfg.Controller.LevelStartDelayMs, func(at float64) {
		c.eng.SetState(engine.StateActive)
		c.lastFrame = at
		c.running = true
	})
	return nil
}

// NextLevel skips to the following level, wrapping to the first.
func (c *Controller) NextLevel(now float64) error {
	next := 0
	if n := c.eng.LevelCount(); n > 0 {
		next = (c.eng.Level() + 1) % n
	}
	c.finished = false
	return c.StartLevel(now, next)
}

// Frame fires due timers, advances the engine by the wall time since the
// previous frame and forwards due sounds to the scheduler.
func (c *Controller) Frame(now float64) engine.Snapshot {
	if c.wait != nil && now >= c.wait.at {
		w := c.wait
		c.wait = nil
		w.fire(w.at)
	}
	if !c.running || c.paused {
		return c.eng.Snapshot()
	}

	snap := c.eng.Advance(now - c.lastFrame)
	c.lastFrame = now
	lookahead := c.cfg.Sound.LookaheadMs
	c.sched.Schedule(c.eng.DrainSounds(lookahead), c.eng.Time())

	switch snap.State {
	case engine.StateGameOver:
		c.running = false
		c.finish(snap)
	case engine.StateLevelComplete:
		c.running = false
		if snap.Level+1 < c.eng.LevelCount() {
			if err := c.StartLevel(now, snap.Level+1); err != nil {
				c.logger.Error("cannot start next level", "error", err)
			}
		} else {
			c.finish(snap)
		}
	}
	return snap
}

// Left moves the paddle one step left.
func (c *Controller) Left(now float64) {
	c.eng.MovePaddleLeft(c.delta(now))
}

// Right moves the paddle one step right.
func (c *Controller) Right(now float64) {
	c.eng.MovePaddleRight(c.delta(now))
}

// MoveTo centers the paddle at field coordinate x.
func (c *Controller) MoveTo(now, x float64) {
	c.eng.MovePaddleTo(c.delta(now), x)
}

// Release launches the ball. It only works in an active, unpaused game
// with the ball still on the paddle.
func (c *Controller) Release(now float64) bool {
	if c.eng.State() != engine.StateActive || !c.eng.BallOnPaddle() || c.paused {
		return false
	}
	c.eng.ReleaseBall(c.delta(now))
	return true
}

// TogglePause pauses or resumes frame stepping. Resuming restarts the frame
// clock so the pause is not simulated.
func (c *Controller) TogglePause(now float64) bool {
	c.paused = !c.paused
	if !c.paused {
		c.lastFrame = now
	}
	return c.paused
}

// Status describes the controller for presentations.
type Status struct {
	engine.Snapshot
	Paused     bool `json:"paused"`
	Waiting    bool `json:"waiting"`
	Finished   bool `json:"finished"`
	LevelCount int  `json:"levelCount"`
}

// Status returns the current status without advancing anything.
func (c *Controller) Status() Status {
	return Status{
		Snapshot:   c.eng.Snapshot(),
		Paused:     c.paused,
		Waiting:    c.wait != nil,
		Finished:   c.finished,
		LevelCount: c.eng.LevelCount(),
	}
}

func (c *Controller) delta(now float64) float64 {
	if !c.running {
		return 0
	}
	return math.Max(math.Round(now-c.lastFrame), 0)
}

func (c *Controller) schedule(at float64, fire func(at float64)) {
	c.wait = &timer{at: at, fire: fire}
}

func (c *Controller) stop() {
	c.wait = nil
	c.running = false
}

func (c *Controller) finish(snap engine.Snapshot) {
	if c.finished {
		return
	}
	c.finished = true
	c.logger.Info("game finished", "score", snap.Score, "level", snap.Level, "state", snap.State)
	if c.onFinish != nil {
		c.onFinish(snap)
	}
}
