package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Player plays game sounds through the system speaker.
// Every method is safe to call before Initialize or after it fails;
// the player then stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	thrust      *beep.Ctrl
	volume      float64
	initialized bool
}

// NewPlayer creates a player with the given master volume (0 to 1).
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Initialize opens the speaker.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts sound. Thrust is a loop that runs from thrust-start until
// thrust-stop; every other sound is one-shot.
func (p *Player) Play(sound core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	switch sound {
	case asteroids.SoundThrustStart:
		p.startThrust()
	case asteroids.SoundThrustStop:
		p.stopThrust()
	default:
		s, ok := Synthesize(sound, sampleRate, p.volume)
		if !ok {
			return
		}
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
}

func (p *Player) startThrust() {
	if p.thrust != nil && !p.thrust.Paused {
		return
	}
	s, ok := Synthesize(asteroids.SoundThrustStart, sampleRate, p.volume)
	if !ok {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if p.thrust != nil {
		// Drop the paused loop from the mixer
		p.thrust.Streamer = nil
	}
	p.thrust = &beep.Ctrl{Streamer: s, Paused: false}
	p.mixer.Add(p.thrust)
}

func (p *Player) stopThrust() {
	if p.thrust == nil {
		return
	}
	speaker.Lock()
	p.thrust.Paused = true
	speaker.Unlock()
}

// Close silences all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	if p.thrust != nil {
		p.thrust.Paused = true
	}
	p.mixer.Clear()
	speaker.Unlock()

	p.thrust = nil
	p.initialized = false
}
