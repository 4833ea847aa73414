package audio

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/engine"
)

// Player plays a sample after a delay. Implementations must not block.
type Player interface {
	Play(sample Sample, delay time.Duration)
}

// Scheduler forwards drained sound triggers to a Player.
type Scheduler struct {
	player  Player
	logger  *log.Logger
	mu      sync.Mutex
	enabled bool
}

// NewScheduler creates a scheduler. A nil player disables playback.
func NewScheduler(player Player, enabled bool, logger *log.Logger) *Scheduler {
	if player == nil {
		player = NopPlayer{}
		enabled = false
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scheduler{player: player, logger: logger, enabled: enabled}
}

// SetEnabled switches playback on or off.
func (s *Scheduler) SetEnabled(on bool) {
	s.mu.Lock()
	s.enabled = on
	s.mu.Unlock()
}

// Enabled reports whether playback is on.
func (s *Scheduler) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Schedule plays each sound relative to the model clock modelNow.
// Sounds already due play immediately. When disabled the sounds are
// consumed without playing.
func (s *Scheduler) Schedule(sounds []engine.Sound, modelNow float64) {
	if !s.Enabled() {
		return
	}
	for _, snd := range sounds {
		sample, ok := SampleFor(snd)
		if !ok {
			continue
		}
		delay := math.Round(snd.Time - modelNow)
		if delay < 0 {
			delay = 0
		}
		s.logger.Debug("sound planned", "sample", sample, "delay_ms", delay)
		s.player.Play(sample, time.Duration(delay)*time.Millisecond)
	}
}

// NopPlayer discards everything.
type NopPlayer struct{}

func (NopPlayer) Play(Sample, time.Duration) {}

// Played is one call recorded by Recorder.
type Played struct {
	Sample Sample
	Delay  time.Duration
}

// Recorder keeps the samples it is asked to play. The web session uses it
// to forward sounds to the browser.
type Recorder struct {
	mu     sync.Mutex
	played []Played
}

func (r *Recorder) Play(sample Sample, delay time.Duration) {
	r.mu.Lock()
	r.played = append(r.played, Played{Sample: sample, Delay: delay})
	r.mu.Unlock()
}

// Take returns and clears the recorded samples.
func (r *Recorder) Take() []Played {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.played
	r.played = nil
	return out
}
