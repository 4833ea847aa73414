package engine

import "github.com/vovakirdan/tui-arkanoid/internal/levels"

// BrickKind uses the same numeric codes as level data.
type BrickKind int

const (
	KindNone     BrickKind = 0
	KindGameArea BrickKind = levels.KindGameArea
	KindRegular  BrickKind = levels.KindRegular
	KindSilver   BrickKind = levels.KindSilver
	KindGold     BrickKind = levels.KindGold
)

// Colors assigned by the engine itself.
const (
	GameAreaColor = 0xdcdcdc
	DamagedColor  = 0x333333 // Silver brick after its first hit
)

func (k BrickKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindGameArea:
		return "gamearea"
	case KindRegular:
		return "regular"
	case KindSilver:
		return "silver"
	case KindGold:
		return "gold"
	default:
		return "unknown"
	}
}

// Destructible reports whether the kind counts towards level completion.
func (k BrickKind) Destructible() bool {
	return k == KindRegular || k == KindSilver
}

// Brick is an axis-aligned rectangle in field coordinates (y grows downward).
type Brick struct {
	Left   float64   `json:"left"`
	Right  float64   `json:"right"`
	Top    float64   `json:"top"`
	Bottom float64   `json:"bottom"`
	ID     int       `json:"id"`
	Kind   BrickKind `json:"kind"`
	Color  int       `json:"color"`
}

// Ball is modelled as its bounding box.
type Ball struct {
	X, Y   float64
	Radius float64

	Top, Bottom, Left, Right float64
}

// updateEdges recomputes the bounding box from the center.
func (b *Ball) updateEdges() {
	b.Top = b.Y - b.Radius
	b.Bottom = b.Y + b.Radius
	b.Left = b.X - b.Radius
	b.Right = b.X + b.Radius
}

// Paddle lies on the paddle plane; only its horizontal extent matters.
type Paddle struct {
	X, Left, Right float64
	Half           float64
}

// center places the paddle so that its middle is at x.
func (p *Paddle) center(x float64) {
	p.X = x
	p.Left = x - p.Half
	p.Right = x + p.Half
}

// State is the lifecycle state of a game.
type State int

// Numeric values are part of the web protocol.
const (
	StateInit          State = 0
	StateActive        State = 1
	StatePaused        State = 2
	StateMissed        State = 3
	StateWaiting       State = 4
	StateGameOver      State = 6
	StateLevelComplete State = 7
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateMissed:
		return "missed"
	case StateWaiting:
		return "waiting"
	case StateGameOver:
		return "gameover"
	case StateLevelComplete:
		return "complete"
	default:
		return "unknown"
	}
}
