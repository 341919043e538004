package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// ShipView is the drawable state of the ship.
type ShipView struct {
	Pos          core.Vec2
	Angle        float64
	Hull         core.Polygon
	Flame        core.Polygon // Nil unless thrusting
	Active       bool
	Invulnerable bool
}

// AsteroidView is the drawable state of an asteroid.
type AsteroidView struct {
	Size    AsteroidSize
	Outline core.Polygon
}

// UFOView is the drawable state of a saucer.
type UFOView struct {
	Type    UFOType
	Outline core.Polygon
}

// ProjectileView is the drawable state of a projectile.
type ProjectileView struct {
	Pos   core.Vec2
	Enemy bool
}

// RenderState is a read-only copy of everything a renderer needs for one frame.
// Only active entities are included.
type RenderState struct {
	Bounds      Bounds
	Ship        ShipView
	Asteroids   []AsteroidView
	UFOs        []UFOView
	Projectiles []ProjectileView
	Score       int
	Lives       int
	Level       int
	Tick        int
	GameOver    bool
}

// RenderState captures the current frame for drawing.
func (w *World) RenderState() RenderState {
	rs := RenderState{
		Bounds:   w.bounds,
		Score:    w.score,
		Lives:    w.lives,
		Level:    w.level,
		Tick:     w.ticks,
		GameOver: w.gameOver,
	}

	if s := w.ship; s != nil {
		rs.Ship = ShipView{
			Pos:          s.Pos,
			Angle:        s.Angle,
			Active:       s.Active(),
			Invulnerable: s.Invulnerable(),
		}
		if s.Active() {
			rs.Ship.Hull = s.Polygon()
			if s.Thrusting {
				rs.Ship.Flame = s.Flame()
			}
		}
	}

	rs.Asteroids = make([]AsteroidView, 0, len(w.asteroids))
	for _, a := range w.asteroids {
		if a.Active() {
			rs.Asteroids = append(rs.Asteroids, AsteroidView{Size: a.Size, Outline: a.Polygon()})
		}
	}

	rs.UFOs = make([]UFOView, 0, len(w.ufos))
	for _, u := range w.ufos {
		if u.Active() {
			rs.UFOs = append(rs.UFOs, UFOView{Type: u.Type, Outline: u.Polygon()})
		}
	}

	rs.Projectiles = make([]ProjectileView, 0, len(w.projectiles)+len(w.enemyProjectiles))
	for _, group := range [][]*Projectile{w.projectiles, w.enemyProjectiles} {
		for _, p := range group {
			if p.Active() {
				rs.Projectiles = append(rs.Projectiles, ProjectileView{Pos: p.Pos, Enemy: p.Enemy})
			}
		}
	}

	return rs
}
