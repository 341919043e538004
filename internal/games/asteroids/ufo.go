package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// UFOType is the saucer variant.
type UFOType int

const (
	UFOLarge UFOType = iota
	UFOSmall
)

type ufoSpec struct {
	width, height float64
	speed         float64 // Pixels per frame
	fireRate      float64 // Milliseconds between shots
	points        int
	accuracy      float64 // 1 is perfect steering toward the target
	spread        float64 // Fraction of π added as aim error
	shoulder      float64 // Divisor of width for the top and bottom edges
	spawnSound    core.Sound
}

var ufoSpecs = [...]ufoSpec{
	UFOLarge: {width: 30, height: 15, speed: 2, fireRate: 2000, points: 200, accuracy: 0.3, spread: 0.5, shoulder: 3, spawnSound: SoundUFOSpawnLarge},
	UFOSmall: {width: 20, height: 10, speed: 4, fireRate: 1000, points: 1000, accuracy: 0.8, spread: 0.2, shoulder: 4, spawnSound: SoundUFOSpawnSmall},
}

func (t UFOType) spec() ufoSpec {
	if t == UFOSmall {
		return ufoSpecs[UFOSmall]
	}
	return ufoSpecs[UFOLarge]
}

// Points returns the score for destroying a UFO of this type.
func (t UFOType) Points() int { return t.spec().points }

// SpawnSound returns the sound played when a UFO of this type appears.
func (t UFOType) SpawnSound() core.Sound { return t.spec().spawnSound }

// Size returns the width and height of the saucer in pixels.
func (t UFOType) Size() (w, h float64) {
	s := t.spec()
	return s.width, s.height
}

func (t UFOType) String() string {
	if t == UFOSmall {
		return "small"
	}
	return "large"
}

// Target is what a UFO steers toward and shoots at.
type Target interface {
	Active() bool
	Position() core.Vec2
}

// ProjectileSink accepts projectiles fired by UFOs.
type ProjectileSink interface {
	Launch(p *Projectile)
}

// UFO is an enemy saucer.
type UFO struct {
	Pos  core.Vec2
	Vel  core.Vec2 // Pixels per frame
	Type UFOType

	direction float64 // +1 right, -1 left
	cooldown  float64 // Milliseconds since last shot
	animTime  float64
	shotSpeed float64
	shotLife  float64
	shape     core.Polygon
	active    bool
	rng       Rand
}

// NewUFO creates a saucer heading left or right at random.
// shotSpeed and shotLifeMs configure the projectiles it fires.
func NewUFO(pos core.Vec2, t UFOType, shotSpeed, shotLifeMs float64, rng Rand) *UFO {
	spec := t.spec()
	dir := 1.0
	if rng.Float64() < 0.5 {
		dir = -1
	}
	return &UFO{
		Pos:       pos,
		Vel:       core.V(dir*spec.speed, 0),
		Type:      t,
		direction: dir,
		shotSpeed: shotSpeed,
		shotLife:  shotLifeMs,
		shape:     ufoShape(spec),
		active:    true,
		rng:       rng,
	}
}

// ufoShape builds the flattened hexagon outline.
func ufoShape(s ufoSpec) core.Polygon {
	k := s.width / s.shoulder
	hw, hh := s.width/2, s.height/2
	return core.Polygon{
		{X: -hw, Y: 0},
		{X: -k, Y: -hh},
		{X: k, Y: -hh},
		{X: hw, Y: 0},
		{X: k, Y: hh},
		{X: -k, Y: hh},
	}
}

// Active reports whether the UFO is in play.
func (u *UFO) Active() bool {
	return u.active
}

// Direction returns +1 when the saucer cruises right and -1 for left.
func (u *UFO) Direction() float64 {
	return u.direction
}

// Update advances the saucer, steers it and fires at target when ready.
// A nil target or sink is tolerated.
func (u *UFO) Update(f Frame, target Target, sink ProjectileSink, b Bounds) {
	if !u.active {
		return
	}
	spec := u.Type.spec()

	u.cooldown += f.Dt
	u.animTime += f.Dt

	u.Pos = u.Pos.Add(u.Vel.Scale(f.Scale))
	u.Pos = core.Wrap(u.Pos, spec.width/2, spec.height/2, b.W, b.H)

	if target == nil || !target.Active() {
		return
	}
	u.steer(spec, target)
	u.tryFire(spec, target, sink)
}

func (u *UFO) steer(spec ufoSpec, target Target) {
	if u.Type == UFOLarge {
		u.Vel = core.V(
			u.direction*spec.speed,
			math.Sin(u.animTime*0.001)*spec.speed*0.5,
		)
		if u.rng.Float64() < 0.005 {
			u.direction = -u.direction
		}
		return
	}

	bearing := target.Position().Sub(u.Pos).Angle()
	bearing += (u.rng.Float64() - 0.5) * (1 - spec.accuracy) * math.Pi
	u.Vel = core.FromAngle(bearing).Scale(spec.speed)
}

func (u *UFO) tryFire(spec ufoSpec, target Target, sink ProjectileSink) {
	if u.cooldown < spec.fireRate {
		return
	}

	aim := target.Position().Sub(u.Pos).Angle()
	aim += (u.rng.Float64() - 0.5) * math.Pi * spec.spread
	u.cooldown = 0

	if sink != nil {
		sink.Launch(NewProjectile(u.Pos, aim, u.shotSpeed, u.shotLife, true))
	}
}

// Polygon returns the saucer outline in world space.
func (u *UFO) Polygon() core.Polygon {
	return u.shape.Translate(u.Pos)
}

// Destroy takes the UFO out of play.
func (u *UFO) Destroy() {
	u.active = false
}
