// Package audio plays the terminal bell through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/tilegrid/logging"
)

const (
	// SampleRate used for the speaker and generated tones
	SampleRate = beep.SampleRate(44100)

	bellFrequency = 880.0
	bellDuration  = 120 * time.Millisecond
	bellAttack    = 5 * time.Millisecond
	bellRelease   = 90 * time.Millisecond
)

// speakerInit is replaced in tests
var speakerInit = func() error {
	return speaker.Init(SampleRate, SampleRate.N(time.Second/10))
}

var speakerPlay = func(s beep.Streamer) { speaker.Play(s) }

// Bell plays a short tone, it stays silent when no audio device is available
type Bell struct {
	mu      sync.Mutex
	volume  float64
	enabled bool
	ready   bool
	tried   bool
}

// NewBell creates a bell at volume in [0,1], a disabled bell never touches the device
func NewBell(enabled bool, volume float64) *Bell {
	return &Bell{enabled: enabled, volume: min(1, max(0, volume))}
}

// initLocked opens the speaker once, failures disable the bell
func (b *Bell) initLocked() bool {
	if b.tried {
		return b.ready
	}
	b.tried = true
	if err := speakerInit(); err != nil {
		logging.Logger().Debug("audio unavailable, bell disabled", "error", err)
		return false
	}
	b.ready = true
	return true
}

// Ring plays the bell tone and reports whether it was sent to the speaker
func (b *Bell) Ring() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.enabled || !b.initLocked() {
		return false
	}
	speakerPlay(b.tone())
	return true
}

// Available reports whether the bell can play, opening the device on first call
func (b *Bell) Available() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enabled && b.initLocked()
}

// Tone returns the bell streamer without playing it
func (b *Bell) Tone() beep.Streamer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tone()
}

func (b *Bell) tone() beep.Streamer {
	return Tone(bellFrequency, bellDuration, b.volume)
}

// Tone is a sine at freq with its octave, shaped by a short attack and release
func Tone(freq float64, duration time.Duration, volume float64) beep.Streamer {
	n := SampleRate.N(duration)
	fund, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return beep.Silence(n)
	}
	over, err := generators.SineTone(SampleRate, freq*2)
	if err != nil {
		return beep.Silence(n)
	}
	mixed := beep.Mix(
		newVolume(beep.Take(n, fund), 0.7),
		newVolume(beep.Take(n, over), 0.3),
	)
	return newVolume(newEnvelope(mixed, duration, bellAttack, bellRelease), volume)
}

// newVolume maps linear volume to beep's exponential scale, zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// envelope fades a stream in and out
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   SampleRate.N(attack),
		release:  SampleRate.N(release),
		total:    SampleRate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.position >= start && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
