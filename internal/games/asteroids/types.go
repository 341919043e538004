// Package asteroids implements a vector Asteroids game: a ship, splitting
// rocks and hostile saucers on a wrapping playfield.
//
// World coordinates are pixels. The World type owns the simulation and is
// free of any terminal concerns; Game adapts it to the arcade registry.
package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Sound identifiers emitted by the world.
const (
	SoundFire          core.Sound = "fire"
	SoundThrustStart   core.Sound = "thrust-start"
	SoundThrustStop    core.Sound = "thrust-stop"
	SoundExplodeSmall  core.Sound = "explode-small"
	SoundExplodeMedium core.Sound = "explode-medium"
	SoundExplodeLarge  core.Sound = "explode-large"
	SoundUFOSpawnLarge core.Sound = "ufo-spawn-large"
	SoundUFOSpawnSmall core.Sound = "ufo-spawn-small"
	SoundPulse         core.Sound = "pulse"
)

// Sounds lists every sound the world can emit.
var Sounds = []core.Sound{
	SoundFire,
	SoundThrustStart,
	SoundThrustStop,
	SoundExplodeSmall,
	SoundExplodeMedium,
	SoundExplodeLarge,
	SoundUFOSpawnLarge,
	SoundUFOSpawnSmall,
	SoundPulse,
}

// Input is the control state for a single frame.
type Input struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
	Fire        bool
}

// Bounds is the playfield size in pixels.
type Bounds struct {
	W, H float64
}

// Center returns the middle of the playfield.
func (b Bounds) Center() core.Vec2 {
	return core.V(b.W/2, b.H/2)
}

// Frame describes the simulation time covered by one update.
type Frame struct {
	Dt    float64 // Elapsed time in milliseconds
	Scale float64 // Multiplier for per-frame terms, 1 in classic integration
}

// ClassicFrame returns a frame where per-frame terms are applied unscaled.
func ClassicFrame(dt float64) Frame {
	return Frame{Dt: dt, Scale: 1}
}

// seconds returns Dt in seconds.
func (f Frame) seconds() float64 {
	return f.Dt / 1000
}

// Rand is the random source entities draw from.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}
