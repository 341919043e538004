package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// ShipRadius bounds the ship hull and is its wrap margin.
const ShipRadius = 10

// StartAngle points the ship up the screen.
const StartAngle = -math.Pi / 2

// Local-space hull with the nose on +X so it leads along the heading.
var shipShape = core.Polygon{
	{X: 10, Y: 0},
	{X: -8, Y: -8},
	{X: -8, Y: 8},
}

// Flame drawn behind the hull while thrusting.
var flameShape = core.Polygon{
	{X: -8, Y: -4},
	{X: -14, Y: 0},
	{X: -8, Y: 4},
}

// Ship is the player-controlled craft.
type Ship struct {
	Pos       core.Vec2
	Vel       core.Vec2 // Pixels per frame
	Angle     float64   // Heading in radians
	Thrusting bool

	active       bool
	invulnerable bool
	invulnTime   float64 // Milliseconds spent invulnerable
	cfg          config.AsteroidsShip
}

// NewShip creates an active, invulnerable ship at pos.
func NewShip(pos core.Vec2, cfg config.AsteroidsShip) *Ship {
	s := &Ship{cfg: cfg}
	s.Respawn(pos)
	return s
}

// Active reports whether the ship is in play.
func (s *Ship) Active() bool {
	return s.active
}

// Invulnerable reports whether the ship currently ignores hazards.
func (s *Ship) Invulnerable() bool {
	return s.invulnerable
}

// Position returns the ship's world position.
func (s *Ship) Position() core.Vec2 {
	return s.Pos
}

// Update advances the ship by one frame.
func (s *Ship) Update(f Frame, in Input, b Bounds) {
	if !s.active {
		return
	}

	if s.invulnerable {
		s.invulnTime += f.Dt
		if s.invulnTime >= s.cfg.InvulnerabilityMs {
			s.invulnerable = false
			s.invulnTime = 0
		}
	}

	dt := f.seconds()
	if in.RotateLeft {
		s.Angle -= s.cfg.RotationSpeed * dt
	}
	if in.RotateRight {
		s.Angle += s.cfg.RotationSpeed * dt
	}

	s.Thrusting = in.Thrust
	if in.Thrust {
		s.Vel = s.Vel.Add(core.FromAngle(s.Angle).Scale(s.cfg.Thrust * dt))
	}

	// Friction and drift are per frame; Scale stretches them in uniform mode
	s.Vel = s.Vel.Scale(math.Pow(s.cfg.Friction, f.Scale))
	if speed := s.Vel.Len(); speed > s.cfg.MaxSpeed {
		s.Vel = s.Vel.Scale(s.cfg.MaxSpeed / speed)
	}

	s.Pos = s.Pos.Add(s.Vel.Scale(f.Scale))
	s.Pos = core.Wrap(s.Pos, ShipRadius, ShipRadius, b.W, b.H)
}

// Nose returns the world position of the hull's leading vertex.
func (s *Ship) Nose() core.Vec2 {
	return shipShape[0].Rotate(s.Angle).Add(s.Pos)
}

// Fire creates a player projectile leaving the nose along the heading.
func (s *Ship) Fire(p config.AsteroidsProjectile) *Projectile {
	return NewProjectile(s.Nose(), s.Angle, p.PlayerSpeed, p.LifetimeMs, false)
}

// Polygon returns the hull in world space.
func (s *Ship) Polygon() core.Polygon {
	return shipShape.Transform(s.Pos, s.Angle)
}

// Flame returns the thrust flame in world space.
func (s *Ship) Flame() core.Polygon {
	return flameShape.Transform(s.Pos, s.Angle)
}

// Destroy takes the ship out of play.
func (s *Ship) Destroy() {
	s.active = false
	s.Thrusting = false
}

// Respawn puts the ship back in play at pos, at rest and invulnerable.
func (s *Ship) Respawn(pos core.Vec2) {
	s.Pos = pos
	s.Vel = core.Vec2{}
	s.Angle = StartAngle
	s.Thrusting = false
	s.active = true
	s.invulnerable = true
	s.invulnTime = 0
}
