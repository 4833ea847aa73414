// Package audio turns engine sound triggers into played samples.
package audio

import "github.com/vovakirdan/tui-arkanoid/internal/engine"

// Sample names a playable sound.
type Sample string

const (
	SampleBounce   Sample = "bounce"  // Game area
	SampleBounce2  Sample = "bounce2" // Regular brick
	SampleGold     Sample = "gold"    // Any other brick
	SamplePaddle   Sample = "paddle"
	SampleGameOver Sample = "gameOver"
	SampleWin      Sample = "win"
	SampleMusic    Sample = "music"
)

// Samples lists every effect sample.
var Samples = []Sample{SampleBounce, SampleBounce2, SampleGold, SamplePaddle, SampleGameOver, SampleWin}

// SampleFor maps a sound trigger to its sample. It reports false for
// triggers that have no sound.
func SampleFor(s engine.Sound) (Sample, bool) {
	switch s.Kind {
	case engine.EventBounceWall, engine.EventBounceVertical:
		switch s.Brick {
		case engine.KindRegular:
			return SampleBounce2, true
		case engine.KindGameArea:
			return SampleBounce, true
		default:
			return SampleGold, true
		}
	case engine.EventBouncePaddle:
		return SamplePaddle, true
	case engine.EventGameOver:
		return SampleGameOver, true
	case engine.EventLevelComplete:
		return SampleWin, true
	default:
		return "", false
	}
}
