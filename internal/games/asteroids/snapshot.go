package asteroids

import "math"

// Snapshot contains the simulation state used for determinism testing.
// Positions are stored in fixed point (1/1000 pixel) so hashes are stable.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lives    int
	Level    int
	GameOver bool

	// Ship state: X, Y, VX, VY, Angle, Active, Invulnerable
	ShipData []int

	// Each asteroid is 4 ints: Size, X, Y, Vertices
	AsteroidData []int

	// Each UFO is 4 ints: Type, X, Y, Direction
	UFOData []int

	// Each projectile is 4 ints: Enemy, X, Y, Age
	ProjectileData []int

	Generation uint64
	RNGDraws   uint64
}

func fixed(v float64) int {
	return int(math.Round(v * 1000))
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       uint64(w.ticks), //#nosec G115 -- tick count is always positive
		Score:      w.score,
		Lives:      w.lives,
		Level:      w.level,
		GameOver:   w.gameOver,
		Generation: w.scheduler.Generation(),
		RNGDraws:   w.rng.draws,
	}

	if s := w.ship; s != nil {
		snap.ShipData = []int{
			fixed(s.Pos.X), fixed(s.Pos.Y),
			fixed(s.Vel.X), fixed(s.Vel.Y),
			fixed(s.Angle),
			boolInt(s.Active()), boolInt(s.Invulnerable()),
		}
	}

	snap.AsteroidData = make([]int, 0, len(w.asteroids)*4)
	for _, a := range w.asteroids {
		snap.AsteroidData = append(snap.AsteroidData, int(a.Size), fixed(a.Pos.X), fixed(a.Pos.Y), a.Vertices())
	}

	snap.UFOData = make([]int, 0, len(w.ufos)*4)
	for _, u := range w.ufos {
		snap.UFOData = append(snap.UFOData, int(u.Type), fixed(u.Pos.X), fixed(u.Pos.Y), int(u.Direction()))
	}

	snap.ProjectileData = make([]int, 0, (len(w.projectiles)+len(w.enemyProjectiles))*4)
	for _, group := range [][]*Projectile{w.projectiles, w.enemyProjectiles} {
		for _, p := range group {
			snap.ProjectileData = append(snap.ProjectileData, boolInt(p.Enemy), fixed(p.Pos.X), fixed(p.Pos.Y), fixed(p.Age()))
		}
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)               //#nosec G115 -- hash computation
	h = h*31 + uint64(boolInt(snap.GameOver))   //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.AsteroidData))   //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.UFOData))        //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.ProjectileData)) //#nosec G115 -- hash computation

	for _, data := range [][]int{snap.ShipData, snap.AsteroidData, snap.UFOData, snap.ProjectileData} {
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}

	h = h*31 + snap.Generation
	h = h*31 + snap.RNGDraws

	return h
}
