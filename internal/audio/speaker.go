package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq float64 // 0 is a rest
	dur  time.Duration
}

var tones = map[Sample][]note{
	SampleBounce:   {{660, 40 * time.Millisecond}},
	SampleBounce2:  {{880, 50 * time.Millisecond}},
	SampleGold:     {{1320, 30 * time.Millisecond}, {1760, 40 * time.Millisecond}},
	SamplePaddle:   {{440, 60 * time.Millisecond}},
	SampleGameOver: {{392, 150 * time.Millisecond}, {330, 150 * time.Millisecond}, {262, 300 * time.Millisecond}},
	SampleWin:      {{523, 100 * time.Millisecond}, {659, 100 * time.Millisecond}, {784, 100 * time.Millisecond}, {1047, 250 * time.Millisecond}},
	SampleMusic: {
		{262, 200 * time.Millisecond}, {0, 50 * time.Millisecond},
		{330, 200 * time.Millisecond}, {0, 50 * time.Millisecond},
		{392, 200 * time.Millisecond}, {0, 50 * time.Millisecond},
		{330, 200 * time.Millisecond}, {0, 300 * time.Millisecond},
	},
}

// Tone synthesises a sample at the given volume (0..1).
func Tone(sample Sample, sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := tones[sample]
	if !ok {
		return nil, fmt.Errorf("audio: unknown sample %q", sample)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq == 0 {
			parts = append(parts, beep.Silence(sr.N(n.dur)))
			continue
		}
		sine, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %q: %w", sample, err)
		}
		parts = append(parts, beep.Take(sr.N(n.dur), sine))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// math.Log2(0) is -Inf, so zero volume is expressed as silence.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// SpeakerPlayer plays samples on the local sound device.
type SpeakerPlayer struct {
	mu     sync.Mutex
	volume float64
	music  *beep.Ctrl
}

// NewSpeakerPlayer initialises the sound device.
func NewSpeakerPlayer(volume float64) (*SpeakerPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	return &SpeakerPlayer{volume: volume}, nil
}

// Play queues the sample behind delay worth of silence.
func (p *SpeakerPlayer) Play(sample Sample, delay time.Duration) {
	tone, err := Tone(sample, sampleRate, p.volume)
	if err != nil {
		return
	}
	if delay > 0 {
		tone = beep.Seq(beep.Silence(sampleRate.N(delay)), tone)
	}
	speaker.Play(tone)
}

// SetMusic starts or pauses the background loop.
func (p *SpeakerPlayer) SetMusic(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		if !on {
			return
		}
		vol := p.volume * 0.3
		loop := beep.Iterate(func() beep.Streamer {
			tone, err := Tone(SampleMusic, sampleRate, vol)
			if err != nil {
				return nil
			}
			return tone
		})
		p.music = &beep.Ctrl{Streamer: loop, Paused: false}
		speaker.Play(p.music)
		return
	}

	speaker.Lock()
	p.music.Paused = !on
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *SpeakerPlayer) Close() {
	speaker.Clear()
	speaker.Close()
}
