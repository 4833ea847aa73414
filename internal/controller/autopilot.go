package controller

import "github.com/vovakirdan/tui-arkanoid/internal/engine"

// AutoplayOptions configures a headless run.
type AutoplayOptions struct {
	Level    int     // First level; negative starts a new game with its delays
	Duration float64 // Wall time to simulate in ms
	Step     float64 // Frame interval in ms
}

// AutoplayResult summarises a headless run.
type AutoplayResult struct {
	Status
	Frames  int     `json:"frames"`
	Elapsed float64 `json:"elapsed"`
}

// Autoplay runs the game on a synthetic clock with a paddle that follows
// the ball, launching it whenever it rests on the paddle. The run stops
// after Duration or when the game finishes. The same options always give
// the same result.
func (c *Controller) Autoplay(opts AutoplayOptions) (AutoplayResult, error) {
	if opts.Step <= 0 {
		opts.Step = 10
	}

	now := 0.0
	if opts.Level < 0 {
		c.NewGame(now)
	} else if err := c.StartLevel(now, opts.Level); err != nil {
		return AutoplayResult{}, err
	}

	frames := 0
	for now < opts.Duration && !c.finished {
		now += opts.Step
		if c.running && c.eng.State() == engine.StateActive {
			if c.eng.BallOnPaddle() {
				c.Release(now)
			} else {
				c.MoveTo(now, c.eng.Ball().X)
			}
		}
		c.Frame(now)
		frames++
	}

	return AutoplayResult{Status: c.Status(), Frames: frames, Elapsed: now}, nil
}
