// Package audio synthesizes the game's sound effects and plays them
// through the system speaker.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone describes a single synthesized effect.
type Tone struct {
	Wave     WaveType
	Freq     float64       // Start frequency in Hz
	EndFreq  float64       // Frequency reached at the end; 0 keeps Freq
	Warble   float64       // Vibrato rate in Hz, 0 for none
	Noise    float64       // Fraction of white noise mixed in
	Duration time.Duration // 0 streams forever
	Attack   time.Duration
	Release  time.Duration
	Volume   float64
}

// Tones maps each sound to its recipe.
var Tones = map[core.Sound]Tone{
	asteroids.SoundFire: {
		Wave: WaveSquare, Freq: 800, EndFreq: 400,
		Duration: 150 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 140 * time.Millisecond,
		Volume: 0.25,
	},
	asteroids.SoundThrustStart: {
		Wave: WaveSaw, Freq: 150, Noise: 0.6,
		Attack: 30 * time.Millisecond,
		Volume: 0.2,
	},
	asteroids.SoundExplodeSmall: {
		Wave: WaveSaw, Freq: 400, EndFreq: 40, Noise: 0.5,
		Duration: 200 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 180 * time.Millisecond,
		Volume: 0.35,
	},
	asteroids.SoundExplodeMedium: {
		Wave: WaveSaw, Freq: 250, EndFreq: 25, Noise: 0.5,
		Duration: 350 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 320 * time.Millisecond,
		Volume: 0.4,
	},
	asteroids.SoundExplodeLarge: {
		Wave: WaveSaw, Freq: 120, EndFreq: 12, Noise: 0.6,
		Duration: 500 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 460 * time.Millisecond,
		Volume: 0.5,
	},
	asteroids.SoundUFOSpawnLarge: {
		Wave: WaveSine, Freq: 600, Warble: 8,
		Duration: 400 * time.Millisecond, Attack: 20 * time.Millisecond, Release: 100 * time.Millisecond,
		Volume: 0.2,
	},
	asteroids.SoundUFOSpawnSmall: {
		Wave: WaveSine, Freq: 1000, Warble: 12,
		Duration: 400 * time.Millisecond, Attack: 20 * time.Millisecond, Release: 100 * time.Millisecond,
		Volume: 0.2,
	},
	asteroids.SoundPulse: {
		Wave: WaveSquare, Freq: 200,
		Duration: 100 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 60 * time.Millisecond,
		Volume: 0.15,
	},
}

// oscillator generates raw audio waves with an optional exponential sweep.
type oscillator struct {
	tone     Tone
	phase    float64
	position int
	duration int // Samples, 0 for endless
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a streamer for tone at the given sample rate.
func NewOscillator(tone Tone, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		tone:     tone,
		duration: rate.N(tone.Duration),
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(tone.Freq))),
	}
}

// freqAt returns the instantaneous frequency at the current position.
func (o *oscillator) freqAt() float64 {
	freq := o.tone.Freq
	if o.tone.EndFreq > 0 && o.duration > 0 {
		progress := float64(o.position) / float64(o.duration)
		freq *= math.Pow(o.tone.EndFreq/o.tone.Freq, progress)
	}
	if o.tone.Warble > 0 {
		t := float64(o.position) / float64(o.rate)
		freq *= 1 + 0.08*math.Sin(2*math.Pi*o.tone.Warble*t)
	}
	return freq
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration > 0 && o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.tone.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		if o.tone.Noise > 0 {
			val = val*(1-o.tone.Noise) + (o.rng.Float64()*2-1)*o.tone.Noise
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase, kept in [0, 1)
		o.phase += o.freqAt() / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream.
// A zero total length means the stream never releases.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, tone Tone, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(tone.Attack),
		release:  rate.N(tone.Release),
		total:    rate.N(tone.Duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.total > 0 && e.release > 0 {
			if remaining := e.total - e.position; remaining < e.release {
				vol = math.Max(float64(remaining)/float64(e.release), 0)
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Synthesize builds the streamer for sound, scaled by master volume.
// It reports false for sounds without a recipe.
func Synthesize(sound core.Sound, rate beep.SampleRate, master float64) (beep.Streamer, bool) {
	tone, ok := Tones[sound]
	if !ok {
		return nil, false
	}
	shaped := newEnvelope(NewOscillator(tone, rate), tone, rate)
	return newVolume(shaped, tone.Volume*master), true
}
