package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/controller"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/engine"
)

// Minimum terminal size for drawing the field.
const (
	minWidth  = 24
	minHeight = 8
)

const tooSmall = "terminal too small"

// layout places the HUD above the bordered field in a w x h area.
type layout struct {
	box   core.Rect // Field border
	inner core.Rect // Field interior
	proj  core.Projection
	ok    bool
}

func newLayout(w, h int, cfg config.Config) layout {
	if w < minWidth || h < minHeight {
		return layout{}
	}
	box := core.NewRect(0, 1, w, h-1)
	inner := core.NewRect(1, 2, w-2, h-3)
	return layout{
		box:   box,
		inner: inner,
		proj: core.Projection{
			FieldW: cfg.Width(),
			FieldH: cfg.Field.Height,
			Cols:   inner.W,
			Rows:   inner.H,
		},
		ok: true,
	}
}

// fieldX converts a screen column to a field x coordinate.
func (l layout) fieldX(col int) float64 {
	return l.proj.FieldX(core.Clamp(col-l.inner.X, 0, l.inner.W-1))
}

// brickRunes gives each kind its own texture so that kinds stay apart on
// terminals without true color.
var brickRunes = map[engine.BrickKind]rune{
	engine.KindRegular: '█',
	engine.KindSilver:  '▓',
	engine.KindGold:    '▒',
}

// scene is everything a frame draws.
type scene struct {
	status  controller.Status
	bricks  []engine.Brick
	paddle  engine.Paddle
	plane   float64 // Paddle plane y
	title   string
	soundOn bool
}

func drawScene(scr *core.Screen, l layout, sc scene) {
	scr.Clear()
	if !l.ok {
		scr.DrawText(0, 0, tooSmall, core.ColorAlert)
		return
	}

	drawHUD(scr, sc)
	scr.DrawBox(l.box, core.ColorBorder)

	for _, b := range sc.bricks {
		r, ok := brickRunes[b.Kind]
		if !ok {
			continue
		}
		span := l.proj.Span(b.Left, b.Right, b.Top, b.Bottom)
		span.X += l.inner.X
		span.Y += l.inner.Y
		color := core.RGB(b.Color)
		scr.FillRect(span, r, color)
		if span.W > 1 {
			// Right edge marks the seam between neighbours.
			for y := span.Y; y < span.Bottom(); y++ {
				scr.Set(span.Right()-1, y, '▌', color.Scale(0.6))
			}
		}
	}

	st := sc.status
	_, row := l.proj.Cell(0, sc.plane)
	pad := l.proj.Span(sc.paddle.Left, sc.paddle.Right, 0, 1)
	scr.FillRect(core.NewRect(l.inner.X+pad.X, l.inner.Y+row, pad.W, 1), '▀', core.ColorPaddle)

	if st.State != engine.StateInit {
		col, brow := l.proj.Cell(st.BallX, st.BallY)
		scr.Set(l.inner.X+col, l.inner.Y+brow, '●', core.ColorBall)
	}

	if msg, color := overlay(st); msg != "" {
		scr.DrawTextCentered(l.inner.Y+l.inner.H*2/3, msg, color)
	}
}

func drawHUD(scr *core.Screen, sc scene) {
	st := sc.status
	level := "-"
	if st.LevelCount > 0 && st.Level >= 0 {
		level = fmt.Sprintf("%d/%d", st.Level+1, st.LevelCount)
	}
	sound := "off"
	if sc.soundOn {
		sound = "on"
	}
	left := fmt.Sprintf(" %s  Level %s  Score %d", sc.title, level, st.Score)
	scr.DrawText(0, 0, left, core.ColorText)

	right := fmt.Sprintf("sound %s ", sound)
	scr.DrawText(scr.Width()-len(right), 0, right, core.ColorDim)
}

// overlay returns the centered message for the current status.
func overlay(st controller.Status) (string, core.Color) {
	switch {
	case st.Paused:
		return "PAUSED", core.ColorHighlight
	case st.State == engine.StateGameOver:
		return "GAME OVER  press n", core.ColorAlert
	case st.State == engine.StateLevelComplete:
		return st.Status, core.ColorHighlight
	case st.State == engine.StateWaiting && st.LevelCount == 0:
		return "Get ready", core.ColorHighlight
	case st.State == engine.StateWaiting:
		return fmt.Sprintf("Level %d", st.Level+1), core.ColorHighlight
	case st.State == engine.StateInit && st.Waiting:
		return "Get ready", core.ColorHighlight
	case st.State == engine.StateInit:
		return "press n for a new game", core.ColorText
	case st.State == engine.StateActive && st.OnPaddle:
		return "space to launch", core.ColorDim
	}
	return "", core.ColorDefault
}
