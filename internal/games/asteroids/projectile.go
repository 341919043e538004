package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

var projectileShape = core.Polygon{
	{X: -2, Y: -1},
	{X: 2, Y: -1},
	{X: 2, Y: 1},
	{X: -2, Y: 1},
}

// Projectile is a shot fired by the ship or a UFO.
type Projectile struct {
	Pos   core.Vec2
	Vel   core.Vec2 // Pixels per second
	Enemy bool      // Fired by a UFO

	age      float64
	lifetime float64
	active   bool
}

// NewProjectile creates an active projectile travelling along angle.
func NewProjectile(pos core.Vec2, angle, speed, lifetimeMs float64, enemy bool) *Projectile {
	return &Projectile{
		Pos:      pos,
		Vel:      core.FromAngle(angle).Scale(speed),
		Enemy:    enemy,
		lifetime: lifetimeMs,
		active:   true,
	}
}

// Active reports whether the projectile is still in flight.
func (p *Projectile) Active() bool {
	return p.active
}

// Age returns the milliseconds the projectile has been alive.
func (p *Projectile) Age() float64 {
	return p.age
}

// Update moves the projectile and expires it once its lifetime is used up.
// Velocity is time-based, so Frame.Scale does not apply.
func (p *Projectile) Update(f Frame, b Bounds) {
	if !p.active {
		return
	}
	p.Pos = p.Pos.Add(p.Vel.Scale(f.seconds()))
	p.age += f.Dt
	if p.age >= p.lifetime {
		p.active = false
	}
	p.Pos = core.Wrap(p.Pos, 0, 0, b.W, b.H)
}

// Polygon returns the projectile's axis-aligned hit box in world space.
func (p *Projectile) Polygon() core.Polygon {
	return projectileShape.Translate(p.Pos)
}

// Destroy removes the projectile from play.
func (p *Projectile) Destroy() {
	p.active = false
}
