package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// resolveCollisions runs the hit sweeps in a fixed order.
// Fragments created during a sweep are merged once the sweep ends, so they
// can only be hit from the next frame.
func (w *World) resolveCollisions() {
	w.shotsVersusAsteroids()
	w.shotsVersusUFOs()

	if !w.shipVulnerable() {
		return
	}
	w.shipVersusAsteroids()
	w.shipVersusUFOs()
	w.shipVersusEnemyShots()
}

func (w *World) shipVulnerable() bool {
	return w.ship.Active() && !w.ship.Invulnerable()
}

func (w *World) shotsVersusAsteroids() {
	for _, p := range w.projectiles {
		for _, a := range w.asteroids {
			if !p.Active() {
				break
			}
			if !a.Active() || !core.Overlaps(p.Polygon(), a.Polygon()) {
				continue
			}
			p.Destroy()
			w.pendingAsteroids = append(w.pendingAsteroids, a.Destroy(w.rng)...)
			w.addScore(a.Size.Points())
			w.play(a.Size.ExplosionSound())
		}
	}

	w.asteroids = append(w.asteroids, w.pendingAsteroids...)
	clear(w.pendingAsteroids)
	w.pendingAsteroids = w.pendingAsteroids[:0]
}

func (w *World) shotsVersusUFOs() {
	for _, p := range w.projectiles {
		for _, u := range w.ufos {
			if !p.Active() {
				break
			}
			if !u.Active() || !core.Overlaps(p.Polygon(), u.Polygon()) {
				continue
			}
			p.Destroy()
			u.Destroy()
			w.addScore(u.Type.Points())
			w.play(SoundExplodeMedium)
		}
	}
}

func (w *World) shipVersusAsteroids() {
	hull := w.ship.Polygon()
	for _, a := range w.asteroids {
		if !w.ship.Active() {
			return
		}
		if a.Active() && core.Overlaps(hull, a.Polygon()) {
			w.destroyShip()
		}
	}
}

func (w *World) shipVersusUFOs() {
	hull := w.ship.Polygon()
	for _, u := range w.ufos {
		if !w.ship.Active() {
			return
		}
		if u.Active() && core.Overlaps(hull, u.Polygon()) {
			w.destroyShip()
		}
	}
}

func (w *World) shipVersusEnemyShots() {
	hull := w.ship.Polygon()
	for _, p := range w.enemyProjectiles {
		if !w.ship.Active() {
			return
		}
		if p.Active() && core.Overlaps(hull, p.Polygon()) {
			p.Destroy()
			w.destroyShip()
		}
	}
}
