// Package engine implements the event-driven Arkanoid simulation.
//
// The engine never steps the ball frame by frame. After every bounce it
// solves analytically for the next collision and queues it as an event;
// Advance drains the queue up to the requested time, so collisions are
// resolved at their exact times however large the step is.
package engine

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/levels"
)

// maxDispatch bounds the events handled by one Advance call.
const maxDispatch = 100_000

// Engine owns all gameplay state. It is not safe for concurrent use.
type Engine struct {
	cfg    config.Config
	set    levels.Set
	logger *log.Logger

	width      float64
	mainHeight float64

	state  State
	status string
	score  int
	level  int

	time       float64
	speed      float64
	speedExtra float64
	angle      float64
	onPaddle   bool
	ball       Ball
	paddle     Paddle
	bricks     []Brick

	events timeline[Event]
	sounds timeline[Sound]

	bricksVersion uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine for the given configuration and level set.
// The field starts empty with the ball on the paddle; call LoadLevel or
// NewGame before play.
func New(cfg config.Config, set levels.Set, opts ...Option) *Engine {
	e := &Engine{
		cfg:        cfg,
		set:        set,
		logger:     log.New(io.Discard),
		width:      cfg.Width(),
		mainHeight: cfg.MainHeight(),
		state:      StateInit,
		status:     set.Title,
		level:      -1,
	}
	if e.status == "" {
		e.status = "Arkanoid"
	}
	for _, opt := range opts {
		opt(e)
	}

	e.ball.Radius = cfg.Ball.Radius
	e.paddle.Half = cfg.Paddle.HalfWidth
	e.bricks = []Brick{{
		Left:   0,
		Right:  e.width,
		Top:    0,
		Bottom: cfg.Field.Height,
		ID:     0,
		Kind:   KindGameArea,
		Color:  GameAreaColor,
	}}
	e.NewGame()
	return e
}

// NewGame resets the clock, paddle, ball, speed and both queues.
// It leaves state, score, level and bricks alone.
func (e *Engine) NewGame() {
	e.time = 0
	e.onPaddle = true
	e.paddle.center(e.width / 2)
	e.speed = e.cfg.Physics.InitialSpeed
	e.speedExtra = 0
	e.angle = e.cfg.Physics.LaunchAngle
	e.ball.X = e.width / 2
	e.ball.Y = e.mainHeight - e.ball.Radius
	e.ball.updateEdges()
	e.events.reset()
	e.sounds.reset()
}

// LoadLevel lays out the bricks of level index and starts a new game on it.
// An index outside the level set returns ErrInvalidLevel and changes nothing.
func (e *Engine) LoadLevel(index int) error {
	if index < 0 || index >= e.set.Len() {
		return fmt.Errorf("load level %d of %d: %w", index, e.set.Len(), ErrInvalidLevel)
	}

	lvl := e.set.Levels[index]
	bw, bh := e.cfg.Field.BrickWidth, e.cfg.Field.BrickHeight

	e.bricks = e.bricks[:1]
	id := 1
	for _, run := range lvl.Bricks {
		col := run.Col
		for n := run.Count; n > 0; n-- {
			left := float64(col) * bw
			right := left + bw
			if right > e.width {
				break
			}
			top := float64(run.Row) * bh
			e.bricks = append(e.bricks, Brick{
				Left:   left,
				Right:  right,
				Top:    top,
				Bottom: top + bh,
				ID:     id,
				Kind:   BrickKind(run.Kind),
				Color:  run.Color,
			})
			id++
			col++
		}
	}

	e.level = index
	e.status = lvl.Title
	e.bricksVersion++
	e.logger.Debug("level loaded", "level", index, "title", lvl.Title, "bricks", len(e.bricks)-1)
	e.NewGame()
	return nil
}

// MovePaddleLeft queues a one-step paddle move delta ms after the current time.
func (e *Engine) MovePaddleLeft(delta float64) {
	e.events.push(PaddleLeft{Time: e.time + clampDelta(delta)})
}

// MovePaddleRight queues a one-step paddle move delta ms after the current time.
func (e *Engine) MovePaddleRight(delta float64) {
	e.events.push(PaddleRight{Time: e.time + clampDelta(delta)})
}

// MovePaddleTo queues a move of the paddle center to x.
func (e *Engine) MovePaddleTo(delta, x float64) {
	e.events.push(PaddleTo{Time: e.time + clampDelta(delta), X: x})
}

// ReleaseBall queues a launch. It does nothing while the ball is in flight.
func (e *Engine) ReleaseBall(delta float64) {
	if e.onPaddle {
		e.events.push(ReleaseBall{Time: e.time + clampDelta(delta)})
	}
}

// Advance runs the simulation forward by elapsed ms and returns the
// resulting snapshot. Negative values are treated as zero.
func (e *Engine) Advance(elapsed float64) Snapshot {
	end := e.time + clampDelta(elapsed)
	for n := 0; ; n++ {
		if n == maxDispatch {
			e.logger.Warn("event dispatch limit reached", "time", e.time, "pending", e.events.len())
			break
		}
		ev, ok := e.events.pop(end)
		if !ok {
			break
		}
		ev.apply(e)
	}
	e.moveBall(end - e.time)
	return e.Snapshot()
}

// DrainSounds removes and returns, in time order, every sound trigger due
// within lookahead ms of the current time.
func (e *Engine) DrainSounds(lookahead float64) []Sound {
	limit := e.time + clampDelta(lookahead)
	var out []Sound
	for {
		s, ok := e.sounds.pop(limit)
		if !ok {
			return out
		}
		out = append(out, s)
	}
}

// moveBall advances the clock by delta, moving the ball along its current
// velocity unless it rests on the paddle.
func (e *Engine) moveBall(delta float64) {
	if !e.onPaddle {
		e.ball.X += delta * e.speed * math.Cos(e.angle)
		e.ball.Y += delta * e.speed * math.Sin(e.angle)
	}
	e.ball.updateEdges()
	e.time += delta
}

// followPaddle keeps a resting ball on the paddle center.
func (e *Engine) followPaddle() {
	if e.onPaddle {
		e.ball.X = e.paddle.X
		e.moveBall(0)
	}
}

// paddleBounce deflects the ball off the paddle or, if the paddle is not
// under it, schedules the end of the game.
func (e *Engine) paddleBounce() {
	x := e.ball.X
	p := e.paddle
	if x < p.Left || x > p.Right {
		e.miss()
		return
	}

	a := e.cfg.Paddle.Angles
	eighth := p.Half * 0.25
	switch {
	case x <= p.Left+eighth:
		e.angle = -e.angle - a[2]
	case x <= p.Left+2*eighth:
		e.angle = -e.angle - a[1]
	case x <= p.Left+3*eighth:
		e.angle = -e.angle - a[0]
	case x >= p.Right-eighth:
		e.angle = -e.angle + a[2]
	case x >= p.Right-2*eighth:
		e.angle = -e.angle + a[1]
	case x >= p.Right-3*eighth:
		e.angle = -e.angle + a[0]
	default:
		e.angle = -e.angle
	}
	e.sounds.push(Sound{Kind: EventBouncePaddle, Time: e.time})
}

func (e *Engine) miss() {
	vspeed := (e.speed + e.speedExtra) * math.Sin(e.angle)
	end := math.Round(e.time + e.cfg.Field.FooterHeight/vspeed)
	if math.IsInf(end, 0) || math.IsNaN(end) || end <= e.time {
		end = math.Floor(e.time) + 1
	}
	e.logger.Debug("ball missed", "time", e.time, "end", end)
	e.events.push(GameOver{Time: end})
	e.sounds.push(Sound{Kind: EventGameOver, Time: end})
	e.state = StateMissed
}

// hitBrick applies a bounce off brick i (never the game area).
func (e *Engine) hitBrick(i int) {
	e.bricksVersion++
	switch e.bricks[i].Kind {
	case KindSilver:
		e.bricks[i].Kind = KindRegular
		e.bricks[i].Color = DamagedColor
	case KindRegular:
		e.bricks = append(e.bricks[:i], e.bricks[i+1:]...)
		e.score += e.cfg.Scoring.BrickDestroy
		e.checkVictory()
	}
}

func (e *Engine) checkVictory() {
	if e.remaining() > 0 {
		return
	}
	e.status = "Victory!"
	e.state = StateLevelComplete
	e.sounds.push(Sound{Kind: EventLevelComplete, Time: e.time})
}

func (e *Engine) remaining() int {
	n := 0
	for _, b := range e.bricks {
		if b.Kind.Destructible() {
			n++
		}
	}
	return n
}

func clampDelta(d float64) float64 {
	if d > 0 && !math.IsInf(d, 1) {
		return d
	}
	return 0
}
