// Package audio plays short synthesized cues for simulation events.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-squash/internal/core"
	"github.com/vovakirdan/tui-squash/internal/games/squash"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Cue describes one sound effect.
type Cue struct {
	Freq     float64       // Fundamental in Hz
	Duration time.Duration // Length before cut-off
}

// Cues for each engine event.
var (
	CueStart  = Cue{Freq: 440, Duration: 100 * time.Millisecond}
	CueHit    = Cue{Freq: 660, Duration: 60 * time.Millisecond}
	CueBounce = Cue{Freq: 880, Duration: 60 * time.Millisecond}
	CueMiss   = Cue{Freq: 150, Duration: 300 * time.Millisecond}
)

// CueFor maps an engine event to its cue.
func CueFor(ev squash.Event) (Cue, bool) {
	switch ev {
	case squash.EventStart:
		return CueStart, true
	case squash.EventPaddleHit:
		return CueHit, true
	case squash.EventWallBounce:
		return CueBounce, true
	case squash.EventMiss:
		return CueMiss, true
	default:
		return Cue{}, false
	}
}

// Player mixes cues onto the system speaker.
// A Player that was never initialized ignores every Play call.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player with volume in [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Init opens the speaker. Call once; later calls are no-ops.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// PlayEvents queues the cue of every event in order.
func (p *Player) PlayEvents(events []squash.Event) {
	for _, ev := range events {
		if cue, ok := CueFor(ev); ok {
			p.Play(cue)
		}
	}
}

// Play queues a single cue.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Add(NewCueStreamer(c, p.volume))
	speaker.Unlock()
}

// Close silences all queued cues.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// NewCueStreamer returns a finite streamer for a cue.
func NewCueStreamer(c Cue, volume float64) beep.Streamer {
	return beep.Take(sampleRate.N(c.Duration), NewToneGenerator(sampleRate, c.Freq, volume, c.Duration))
}

// ToneGenerator produces a sine tone with one harmonic and an exponential decay.
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	decay  float64 // Seconds for the envelope to drop by 1/e
	pos    int
}

// NewToneGenerator creates a decaying tone that fades over roughly length.
func NewToneGenerator(sr beep.SampleRate, freq, volume float64, length time.Duration) *ToneGenerator {
	decay := length.Seconds() / 3
	if decay <= 0 {
		decay = 0.01
	}
	return &ToneGenerator{
		sr:     sr,
		freq:   freq,
		volume: volume,
		decay:  decay,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.6*math.Sin(2*math.Pi*g.freq*t) + 0.2*math.Sin(2*math.Pi*g.freq*2*t)

		// Short attack avoids a click, then exponential decay
		attack := math.Min(t/0.005, 1.0)
		sample *= attack * math.Exp(-t/g.decay) * g.volume * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
