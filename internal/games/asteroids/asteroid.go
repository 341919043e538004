package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// AsteroidSize is the size category of an asteroid.
type AsteroidSize int

const (
	SizeLarge AsteroidSize = iota
	SizeMedium
	SizeSmall
)

// FragmentCount is the number of pieces a large or medium asteroid splits into.
const FragmentCount = 2

type sizeSpec struct {
	radius    float64
	baseSpeed float64 // Pixels per frame
	speedVar  float64
	points    int
	explosion core.Sound
}

var sizeSpecs = [...]sizeSpec{
	SizeLarge:  {radius: 30, baseSpeed: 1, speedVar: 1, points: 20, explosion: SoundExplodeMedium},
	SizeMedium: {radius: 20, baseSpeed: 2, speedVar: 1.5, points: 50, explosion: SoundExplodeSmall},
	SizeSmall:  {radius: 10, baseSpeed: 3, speedVar: 2, points: 100, explosion: SoundExplodeSmall},
}

func (s AsteroidSize) spec() sizeSpec {
	if s < SizeLarge || s > SizeSmall {
		return sizeSpecs[SizeSmall]
	}
	return sizeSpecs[s]
}

// Radius returns the nominal radius in pixels.
func (s AsteroidSize) Radius() float64 { return s.spec().radius }

// Points returns the score for destroying an asteroid of this size.
func (s AsteroidSize) Points() int { return s.spec().points }

// ExplosionSound returns the sound played when an asteroid of this size breaks.
func (s AsteroidSize) ExplosionSound() core.Sound { return s.spec().explosion }

// Smaller returns the fragment size, or false for small asteroids.
func (s AsteroidSize) Smaller() (AsteroidSize, bool) {
	switch s {
	case SizeLarge:
		return SizeMedium, true
	case SizeMedium:
		return SizeSmall, true
	default:
		return s, false
	}
}

func (s AsteroidSize) String() string {
	switch s {
	case SizeLarge:
		return "large"
	case SizeMedium:
		return "medium"
	case SizeSmall:
		return "small"
	default:
		return "unknown"
	}
}

// Asteroid is a drifting rock with an irregular outline.
type Asteroid struct {
	Pos  core.Vec2
	Vel  core.Vec2 // Pixels per frame
	Size AsteroidSize

	shape  core.Polygon
	active bool
}

// NewAsteroid creates an asteroid with a random heading and speed.
func NewAsteroid(pos core.Vec2, size AsteroidSize, rng Rand) *Asteroid {
	spec := size.spec()
	angle := rng.Float64() * 2 * math.Pi
	speed := spec.baseSpeed + rng.Float64()*spec.speedVar
	return newAsteroid(pos, size, core.FromAngle(angle).Scale(speed), rng)
}

func newAsteroid(pos core.Vec2, size AsteroidSize, vel core.Vec2, rng Rand) *Asteroid {
	return &Asteroid{
		Pos:    pos,
		Vel:    vel,
		Size:   size,
		shape:  asteroidShape(size.Radius(), rng),
		active: true,
	}
}

// asteroidShape builds 8-11 vertices evenly spaced by angle,
// each at 70%-130% of the nominal radius.
func asteroidShape(radius float64, rng Rand) core.Polygon {
	n := 8 + int(rng.Float64()*4)
	shape := make(core.Polygon, n)
	for i := range n {
		angle := float64(i) / float64(n) * 2 * math.Pi
		r := radius * (0.7 + rng.Float64()*0.6)
		shape[i] = core.FromAngle(angle).Scale(r)
	}
	return shape
}

// Active reports whether the asteroid is in play.
func (a *Asteroid) Active() bool {
	return a.active
}

// Update drifts the asteroid and wraps it once fully off screen.
func (a *Asteroid) Update(f Frame, b Bounds) {
	if !a.active {
		return
	}
	r := a.Size.Radius()
	a.Pos = a.Pos.Add(a.Vel.Scale(f.Scale))
	a.Pos = core.Wrap(a.Pos, r, r, b.W, b.H)
}

// Polygon returns the outline in world space. Asteroids do not rotate.
func (a *Asteroid) Polygon() core.Polygon {
	return a.shape.Translate(a.Pos)
}

// Vertices returns the number of outline vertices.
func (a *Asteroid) Vertices() int {
	return len(a.shape)
}

// Destroy takes the asteroid out of play and returns its fragments.
// Fragments start at the parent's position with the parent's velocity
// plus an evenly spread divergence.
func (a *Asteroid) Destroy(rng Rand) []*Asteroid {
	a.active = false

	next, ok := a.Size.Smaller()
	if !ok {
		return nil
	}

	fragments := make([]*Asteroid, 0, FragmentCount)
	for i := range FragmentCount {
		angle := 2 * math.Pi * float64(i) / FragmentCount
		speed := 1 + rng.Float64()*2
		vel := a.Vel.Add(core.FromAngle(angle).Scale(speed))
		fragments = append(fragments, newAsteroid(a.Pos, next, vel, rng))
	}
	return fragments
}
