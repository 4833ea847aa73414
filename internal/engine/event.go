package engine

import "math"

// EventKind identifies an event or sound trigger.
type EventKind int

const (
	EventPaddleLeft EventKind = iota + 1
	EventPaddleRight
	EventPaddleTo
	EventReleaseBall
	EventBounceWall     // Ball reached a horizontal face
	EventBounceVertical // Ball reached a vertical face
	EventBouncePaddle   // Ball reached the paddle plane
	EventGameOver
	EventScoreTick
	EventSpeedUp
	EventLevelComplete // Sound stream only
)

var eventKindNames = map[EventKind]string{
	EventPaddleLeft:     "paddle-left",
	EventPaddleRight:    "paddle-right",
	EventPaddleTo:       "paddle-to",
	EventReleaseBall:    "release",
	EventBounceWall:     "bounce-wall",
	EventBounceVertical: "bounce-vertical",
	EventBouncePaddle:   "bounce-paddle",
	EventGameOver:       "gameover",
	EventScoreTick:      "score-tick",
	EventSpeedUp:        "speed-up",
	EventLevelComplete:  "level-complete",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is something that must happen at simulation time At().
// The set of events is closed: only this package can add variants.
type Event interface {
	At() float64
	Kind() EventKind
	apply(e *Engine)
}

// NoBrick is the brick index of a bounce that does not involve a rectangle.
const NoBrick = -1

// Axis selects how a bounce reflects the ball.
type Axis int

const (
	AxisWall     Axis = iota // Horizontal face: angle = -angle
	AxisVertical             // Vertical face: angle = pi - angle
	AxisPaddle               // Paddle plane: zone deflection or miss
)

// PaddleLeft moves the paddle one step to the left.
type PaddleLeft struct{ Time float64 }

// PaddleRight moves the paddle one step to the right.
type PaddleRight struct{ Time float64 }

// PaddleTo centers the paddle at X, clamped to the field.
type PaddleTo struct {
	Time float64
	X    float64
}

// ReleaseBall launches the ball from the paddle.
type ReleaseBall struct{ Time float64 }

// Bounce reflects the ball at Time. Brick is the index of the rectangle hit
// or NoBrick for the paddle plane.
type Bounce struct {
	Time  float64
	Axis  Axis
	Brick int
}

// GameOver ends the game after a miss.
type GameOver struct{ Time float64 }

// ScoreTick awards flight time score.
type ScoreTick struct{ Time float64 }

// SpeedUp increases the pending speed increment.
type SpeedUp struct{ Time float64 }

var (
	_ Event = PaddleLeft{}
	_ Event = PaddleRight{}
	_ Event = PaddleTo{}
	_ Event = ReleaseBall{}
	_ Event = Bounce{}
	_ Event = GameOver{}
	_ Event = ScoreTick{}
	_ Event = SpeedUp{}
)

func (ev PaddleLeft) At() float64  { return ev.Time }
func (ev PaddleRight) At() float64 { return ev.Time }
func (ev PaddleTo) At() float64    { return ev.Time }
func (ev ReleaseBall) At() float64 { return ev.Time }
func (ev Bounce) At() float64      { return ev.Time }
func (ev GameOver) At() float64    { return ev.Time }
func (ev ScoreTick) At() float64   { return ev.Time }
func (ev SpeedUp) At() float64     { return ev.Time }

func (PaddleLeft) Kind() EventKind  { return EventPaddleLeft }
func (PaddleRight) Kind() EventKind { return EventPaddleRight }
func (PaddleTo) Kind() EventKind    { return EventPaddleTo }
func (ReleaseBall) Kind() EventKind { return EventReleaseBall }
func (GameOver) Kind() EventKind    { return EventGameOver }
func (ScoreTick) Kind() EventKind   { return EventScoreTick }
func (SpeedUp) Kind() EventKind     { return EventSpeedUp }

func (ev Bounce) Kind() EventKind {
	switch ev.Axis {
	case AxisVertical:
		return EventBounceVertical
	case AxisPaddle:
		return EventBouncePaddle
	default:
		return EventBounceWall
	}
}

func (ev PaddleLeft) apply(e *Engine) {
	left := math.Max(e.paddle.Left-e.cfg.Paddle.Step, 0)
	e.paddle.center(left + e.paddle.Half)
	e.followPaddle()
}

func (ev PaddleRight) apply(e *Engine) {
	right := math.Min(e.paddle.Right+e.cfg.Paddle.Step, e.width)
	e.paddle.center(right - e.paddle.Half)
	e.followPaddle()
}

func (ev PaddleTo) apply(e *Engine) {
	x := ev.X
	if x+e.paddle.Half > e.width {
		x = e.width - e.paddle.Half
	}
	if x-e.paddle.Half < 0 {
		x = e.paddle.Half
	}
	e.paddle.center(x)
	e.followPaddle()
}

func (ev ReleaseBall) apply(e *Engine) {
	if !e.onPaddle {
		return
	}
	// The ball rests on the paddle, so only the clock moves here.
	e.moveBall(ev.Time - e.time)
	e.events.push(Bounce{Time: e.time, Axis: AxisWall, Brick: NoBrick})
	e.events.push(ScoreTick{Time: e.time + e.cfg.Scoring.TickIntervalMs})
	e.events.push(SpeedUp{Time: e.time + e.cfg.Physics.SpeedUpIntervalMs})
	e.onPaddle = false
}

func (ev Bounce) apply(e *Engine) {
	e.moveBall(ev.Time - e.time)
	switch ev.Axis {
	case AxisWall:
		e.angle = -e.angle
	case AxisVertical:
		e.angle = math.Pi - e.angle
	case AxisPaddle:
		e.paddleBounce()
	}
	if ev.Brick > 0 && ev.Brick < len(e.bricks) {
		e.hitBrick(ev.Brick)
	}
	e.predictNextBounce()
}

func (ev GameOver) apply(e *Engine) {
	e.state = StateGameOver
	e.status = "Game Over!"
}

func (ev ScoreTick) apply(e *Engine) {
	e.moveBall(ev.Time - e.time)
	if !e.onPaddle {
		e.score += int(math.Round(e.speed * 10))
	}
	e.events.push(ScoreTick{Time: e.time + e.cfg.Scoring.TickIntervalMs})
}

func (ev SpeedUp) apply(e *Engine) {
	e.moveBall(ev.Time - e.time)
	e.speedExtra += e.cfg.Physics.SpeedUpAmount
	e.events.push(SpeedUp{Time: e.time + e.cfg.Physics.SpeedUpIntervalMs})
}

// Sound is a trigger for the audio collaborator. Brick is the kind of the
// rectangle involved in a bounce, KindNone otherwise.
type Sound struct {
	Kind  EventKind `json:"kind"`
	Time  float64   `json:"time"`
	Brick BrickKind `json:"brick"`
}

// At returns the time the sound should play.
func (s Sound) At() float64 { return s.Time }

// timeline is a small time-ordered queue. Entries stay in insertion order,
// so a linear scan for the strict minimum breaks ties in favour of the
// earliest insert.
type timeline[T interface{ At() float64 }] struct {
	items []T
}

func (q *timeline[T]) push(item T) {
	q.items = append(q.items, item)
}

// pop removes and returns the earliest item if it is due at or before limit.
func (q *timeline[T]) pop(limit float64) (T, bool) {
	var zero T
	idx := -1
	minTime := math.Inf(1)
	for i, item := range q.items {
		if item.At() < minTime {
			minTime = item.At()
			idx = i
		}
	}
	if idx < 0 || minTime > limit {
		return zero, false
	}
	item := q.items[idx]
	q.items = append(q.items[:idx], q.items[idx+1:]...)
	return item, true
}

func (q *timeline[T]) len() int {
	return len(q.items)
}

func (q *timeline[T]) reset() {
	q.items = q.items[:0]
}
