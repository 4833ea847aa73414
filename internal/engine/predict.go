package engine

import "math"

// predictNextBounce queues the earliest collision of the ball on its current
// heading. The ball is a box: its edges are tested against the faces of every
// rectangle, and the game area is hit from the inside. Candidates are
// compared with strict less-than, so earlier ones win ties: the paddle
// plane first, then rectangles in slice order.
func (e *Engine) predictNextBounce() {
	e.speed += e.speedExtra
	e.speedExtra = 0
	e.angle = normalizeAngle(e.angle)

	sina, cosa := math.Sin(e.angle), math.Cos(e.angle)
	hspeed := e.speed * cosa
	vspeed := e.speed * sina
	b := &e.ball

	minTime := math.Inf(1)
	minIdx := NoBrick
	minAxis := Axis(-1)

	if e.state != StateMissed && sina > 0 && b.Bottom < e.mainHeight {
		minTime = (e.mainHeight - b.Bottom) / vspeed
		minAxis = AxisPaddle
	}

	for i, r := range e.bricks {
		var vdist, hdist float64
		if r.Kind == KindGameArea {
			vdist = pick(sina > 0, r.Bottom-b.Bottom, b.Top-r.Top)
			hdist = pick(cosa > 0, r.Right-b.Right, b.Left-r.Left)
		} else {
			vdist = pick(sina > 0, r.Top-b.Bottom, b.Top-r.Bottom)
			hdist = pick(cosa > 0, r.Left-b.Right, b.Left-r.Right)
		}

		var vtime, htime, nextX, nextY float64
		if vdist > 0 {
			vtime = vdist / math.Abs(vspeed)
			nextX = b.X + hspeed*vtime
			if nextX >= r.Left && nextX <= r.Right && vtime < minTime {
				minTime, minAxis, minIdx = vtime, AxisWall, i
			}
		}
		if hdist > 0 {
			htime = hdist / math.Abs(hspeed)
			nextY = b.Y + vspeed*htime
			if nextY >= r.Top && nextY <= r.Bottom && htime < minTime {
				minTime, minAxis, minIdx = htime, AxisVertical, i
			}
		}

		// Approaching a corner: the face with the smaller overshoot wins.
		if vdist > 0 && hdist > 0 {
			dy := pick(sina > 0, r.Top-nextY, nextY-r.Bottom)
			dx := pick(cosa > 0, r.Left-nextX, nextX-r.Right)
			if dx > 0 && dy > 0 {
				if dx < dy {
					if vtime < minTime {
						minTime, minAxis, minIdx = vtime, AxisWall, i
					}
				} else if htime < minTime {
					minTime, minAxis, minIdx = htime, AxisVertical, i
				}
			}
		}
	}

	if minAxis < 0 {
		e.logger.Warn("no collision ahead", "x", b.X, "y", b.Y, "angle", e.angle)
		return
	}

	id := minIdx
	if minIdx >= 0 {
		id = e.bricks[minIdx].ID
	}
	e.logger.Debug("bounce queued", "x", b.X, "y", b.Y, "dt", minTime, "id", id, "angle", e.angle)

	at := e.time + minTime
	e.events.push(Bounce{Time: at, Axis: minAxis, Brick: minIdx})
	// Game area bounces (index 0) produce no sound trigger.
	if minAxis != AxisPaddle && minIdx > 0 {
		e.sounds.push(Sound{Kind: Bounce{Axis: minAxis}.Kind(), Time: at, Brick: e.bricks[minIdx].Kind})
	}
}

// normalizeAngle maps a into (-pi, pi]. Non-finite angles become 0.
func normalizeAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Remainder(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
