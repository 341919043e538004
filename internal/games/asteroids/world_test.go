package asteroids

import (
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// soundRecorder records every sound the world emits.
type soundRecorder struct {
	played []core.Sound
}

func (r *soundRecorder) Play(s core.Sound) {
	r.played = append(r.played, s)
}

func (r *soundRecorder) count(s core.Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

func newTestWorld(t *testing.T) (*World, *soundRecorder) {
	t.Helper()
	w := NewWorld(config.DefaultAsteroidsConfig())
	rec := &soundRecorder{}
	w.SetSoundSink(rec)
	w.Reset(testBounds, 42)
	return w, rec
}

// clearField removes every entity except the ship.
func clearField(w *World) {
	w.asteroids = nil
	w.ufos = nil
	w.projectiles = nil
	w.enemyProjectiles = nil
}

// still returns an asteroid that does not drift.
func still(w *World, pos core.Vec2, size AsteroidSize) *Asteroid {
	a := NewAsteroid(pos, size, w.rng)
	a.Vel = core.Vec2{}
	return a
}

// rock is an asteroid parked far from the ship so levels don't advance.
func rock(w *World) *Asteroid {
	return still(w, core.V(60, 60), SizeSmall)
}

func TestWorldReset(t *testing.T) {
	w, _ := newTestWorld(t)

	if w.Score() != 0 || w.Lives() != 3 || w.Level() != 1 {
		t.Errorf("Reset() score/lives/level = %d/%d/%d, expected 0/3/1", w.Score(), w.Lives(), w.Level())
	}
	if len(w.Asteroids()) != 5 {
		t.Errorf("len(Asteroids()) = %d, expected 5", len(w.Asteroids()))
	}
	for _, a := range w.Asteroids() {
		if a.Size != SizeLarge {
			t.Errorf("initial asteroid size = %v, expected large", a.Size)
		}
	}
	if w.Ship().Pos != testBounds.Center() {
		t.Errorf("ship pos = %v, expected centre", w.Ship().Pos)
	}
	if !w.Ship().Invulnerable() {
		t.Error("ship should start invulnerable")
	}
}

func TestProjectileDestroysLargeAsteroid(t *testing.T) {
	w, rec := newTestWorld(t)
	clearField(w)

	w.asteroids = []*Asteroid{still(w, core.V(100, 100), SizeLarge)}
	w.projectiles = []*Projectile{NewProjectile(core.V(100, 100), 0, 0, 1000, false)}

	w.Update(16, Input{})

	if w.Score() != 20 {
		t.Errorf("Score() = %d, expected 20", w.Score())
	}
	if len(w.Asteroids()) != 2 {
		t.Fatalf("len(Asteroids()) = %d, expected 2", len(w.Asteroids()))
	}
	for _, a := range w.Asteroids() {
		if a.Size != SizeMedium {
			t.Errorf("fragment size = %v, expected medium", a.Size)
		}
	}
	if len(w.Projectiles()) != 0 {
		t.Error("projectile should be consumed by the hit")
	}
	if rec.count(SoundExplodeMedium) != 1 {
		t.Errorf("explode-medium played %d times, expected 1", rec.count(SoundExplodeMedium))
	}
	if w.Level() != 1 {
		t.Errorf("Level() = %d, fragments should keep the level", w.Level())
	}
}

func TestMovingProjectileSplitsAsteroidOnce(t *testing.T) {
	w, rec := newTestWorld(t)
	clearField(w)

	// 500px/s shot closing on a large asteroid 100px to its right
	w.asteroids = []*Asteroid{still(w, core.V(300, 100), SizeLarge)}
	w.projectiles = []*Projectile{NewProjectile(core.V(200, 100), 0, 500, 1000, false)}

	frames := 0
	for w.Score() == 0 && frames < 30 {
		w.Update(16, Input{})
		frames++
	}

	if w.Score() != 20 {
		t.Fatalf("Score() = %d after %d frames, expected 20", w.Score(), frames)
	}
	if len(w.Asteroids()) != 2 {
		t.Fatalf("len(Asteroids()) = %d, expected 2", len(w.Asteroids()))
	}
	for _, a := range w.Asteroids() {
		if a.Size != SizeMedium {
			t.Errorf("fragment size = %v, expected medium", a.Size)
		}
	}
	if len(w.Projectiles()) != 0 {
		t.Error("projectile should be consumed by the hit")
	}
	if rec.count(SoundExplodeMedium) != 1 {
		t.Errorf("explode-medium played %d times, expected 1", rec.count(SoundExplodeMedium))
	}

	// The spent shot must not score again on later frames
	w.Update(16, Input{})
	if w.Score() != 20 {
		t.Errorf("Score() = %d one frame later, expected 20", w.Score())
	}
}

func TestFragmentsNotHitSameFrame(t *testing.T) {
	w, _ := newTestWorld(t)
	clearField(w)

	// Two shots on the same spot: the second must not hit the fresh fragments
	w.asteroids = []*Asteroid{still(w, core.V(100, 100), SizeLarge)}
	w.projectiles = []*Projectile{
		NewProjectile(core.V(100, 100), 0, 0, 1000, false),
		NewProjectile(core.V(100, 100), 0, 0, 1000, false),
	}

	w.Update(16, Input{})

	if w.Score() != 20 {
		t.Errorf("Score() = %d, expected 20", w.Score())
	}
	if len(w.Projectiles()) != 1 {
		t.Errorf("len(Projectiles()) = %d, expected 1 surviving shot", len(w.Projectiles()))
	}

	// Next frame the survivor hits a fragment
	w.Update(16, Input{})
	if w.Score() != 70 {
		t.Errorf("Score() = %d, expected 70", w.Score())
	}
}

func TestProjectileDestroysUFO(t *testing.T) {
	w, rec := newTestWorld(t)
	clearField(w)

	u := NewUFO(core.V(200, 200), UFOSmall, 300, 1000, w.rng)
	u.Vel = core.Vec2{}
	w.ufos = []*UFO{u}
	w.asteroids = []*Asteroid{rock(w)}
	w.projectiles = []*Projectile{NewProjectile(core.V(200, 200), 0, 0, 1000, false)}

	w.Update(16, Input{})

	if w.Score() != 1000 {
		t.Errorf("Score() = %d, expected 1000", w.Score())
	}
	if len(w.UFOs()) != 0 {
		t.Error("UFO should be purged after the hit")
	}
	if rec.count(SoundExplodeMedium) != 1 {
		t.Errorf("explode-medium played %d times, expected 1", rec.count(SoundExplodeMedium))
	}
}

func TestShipCollisionLastLife(t *testing.T) {
	w, rec := newTestWorld(t)
	clearField(w)
	w.lives = 1
	w.ship.invulnerable = false

	w.asteroids = []*Asteroid{still(w, w.ship.Pos, SizeLarge)}

	w.Update(16, Input{})

	if !w.GameOver() {
		t.Error("GameOver() = false, expected true")
	}
	if w.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", w.Lives())
	}
	if w.scheduler.Pending() != 0 {
		t.Error("no respawn should be scheduled on the last life")
	}
	if rec.count(SoundExplodeLarge) != 1 {
		t.Errorf("explode-large played %d times, expected 1", rec.count(SoundExplodeLarge))
	}

	// Further updates are ignored
	before := w.Snapshot()
	w.Update(16, Input{Thrust: true})
	after := w.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("world changed after game over")
	}
}

func TestShipRespawnAfterDelay(t *testing.T) {
	w, _ := newTestWorld(t)
	clearField(w)
	w.ship.invulnerable = false
	w.asteroids = []*Asteroid{still(w, w.ship.Pos, SizeLarge)}

	w.Update(100, Input{})

	if w.Ship().Active() {
		t.Fatal("ship should be destroyed")
	}
	if w.Lives() != 2 {
		t.Fatalf("Lives() = %d, expected 2", w.Lives())
	}

	// Respawn is due 2000ms after the hit
	for i := 0; i < 19; i++ {
		w.Update(100, Input{})
	}
	if w.Ship().Active() {
		t.Fatal("ship respawned early")
	}

	w.Update(100, Input{})
	if !w.Ship().Active() || !w.Ship().Invulnerable() {
		t.Fatal("ship should respawn active and invulnerable")
	}
	if w.Ship().Pos != testBounds.Center() {
		t.Errorf("respawn pos = %v, expected centre", w.Ship().Pos)
	}

	// Invulnerable ship survives sitting on the asteroid
	w.Update(100, Input{})
	if w.Lives() != 2 || !w.Ship().Active() {
		t.Error("invulnerable ship should ignore the asteroid")
	}
}

func TestResetCancelsPendingRespawn(t *testing.T) {
	w, _ := newTestWorld(t)
	clearField(w)
	w.ship.invulnerable = false
	w.asteroids = []*Asteroid{still(w, w.ship.Pos, SizeLarge)}

	w.Update(16, Input{})
	old := w.Ship()
	if old.Active() || w.scheduler.Pending() != 1 {
		t.Fatal("expected a destroyed ship with a pending respawn")
	}

	w.Reset(testBounds, 42)
	clearField(w)
	w.asteroids = []*Asteroid{rock(w)}

	for i := 0; i < 40; i++ {
		w.Update(100, Input{})
	}
	if old.Active() {
		t.Error("stale respawn resurrected the previous session's ship")
	}
}

func TestShipHitByEnemyProjectile(t *testing.T) {
	w, _ := newTestWorld(t)
	clearField(w)
	w.ship.invulnerable = false
	w.asteroids = []*Asteroid{rock(w)}

	shot := NewProjectile(w.ship.Pos, 0, 0, 1000, true)
	w.enemyProjectiles = []*Projectile{shot}

	w.Update(16, Input{})

	if w.Lives() != 2 {
		t.Errorf("Lives() = %d, expected 2", w.Lives())
	}
	if shot.Active() {
		t.Error("enemy projectile should be consumed")
	}
}

func TestInvulnerableShipIgnoresHazards(t *testing.T) {
	w, _ := newTestWorld(t)
	clearField(w)
	w.asteroids = []*Asteroid{still(w, w.ship.Pos, SizeLarge)}
	w.enemyProjectiles = []*Projectile{NewProjectile(w.ship.Pos, 0, 0, 1000, true)}

	w.Update(16, Input{})

	if w.Lives() != 3 || !w.Ship().Active() {
		t.Error("invulnerable ship should not be destroyed")
	}
}

func TestShipDestroyedOncePerFrame(t *testing.T) {
	w, _ := newTestWorld(t)
	clearField(w)
	w.ship.invulnerable = false
	w.asteroids = []*Asteroid{
		still(w, w.ship.Pos, SizeLarge),
		still(w, w.ship.Pos, SizeMedium),
	}
	w.enemyProjectiles = []*Projectile{NewProjectile(w.ship.Pos, 0, 0, 1000, true)}

	w.Update(16, Input{})

	if w.Lives() != 2 {
		t.Errorf("Lives() = %d, expected exactly one life lost", w.Lives())
	}
}

func TestFireRisingEdge(t *testing.T) {
	w, rec := newTestWorld(t)
	clearField(w)
	w.asteroids = []*Asteroid{rock(w)}

	// Invulnerable ships cannot fire
	w.Update(16, Input{Fire: true})
	if len(w.Projectiles()) != 0 {
		t.Fatal("invulnerable ship fired")
	}

	w.ship.invulnerable = false
	w.Update(16, Input{Fire: false})
	w.Update(16, Input{Fire: true})
	w.Update(16, Input{Fire: true})
	if len(w.Projectiles()) != 1 {
		t.Fatalf("len(Projectiles()) = %d, expected 1 while held", len(w.Projectiles()))
	}

	w.Update(16, Input{Fire: false})
	w.Update(16, Input{Fire: true})
	if len(w.Projectiles()) != 2 {
		t.Errorf("len(Projectiles()) = %d, expected 2 after second press", len(w.Projectiles()))
	}
	if rec.count(SoundFire) != 2 {
		t.Errorf("fire played %d times, expected 2", rec.count(SoundFire))
	}
}

func TestThrustSounds(t *testing.T) {
	w, rec := newTestWorld(t)
	clearField(w)
	w.asteroids = []*Asteroid{rock(w)}

	w.Update(16, Input{Thrust: true})
	w.Update(16, Input{Thrust: true})
	w.Update(16, Input{})

	if rec.count(SoundThrustStart) != 1 {
		t.Errorf("thrust-start played %d times, expected 1", rec.count(SoundThrustStart))
	}
	if rec.count(SoundThrustStop) != 1 {
		t.Errorf("thrust-stop played %d times, expected 1", rec.count(SoundThrustStop))
	}
	if !w.RenderState().Ship.Active {
		t.Error("ship should be active")
	}
}

func TestUFOSpawnTimer(t *testing.T) {
	w, rec := newTestWorld(t)
	clearField(w)
	w.asteroids = []*Asteroid{rock(w)}

	w.Update(9999, Input{})
	if len(w.UFOs()) != 0 {
		t.Fatal("UFO spawned before the interval")
	}

	w.Update(1, Input{})
	if len(w.UFOs()) != 1 {
		t.Fatalf("len(UFOs()) = %d, expected 1", len(w.UFOs()))
	}
	u := w.UFOs()[0]
	if u.Pos.X != -30 && u.Pos.X != testBounds.W+30 {
		t.Errorf("UFO x = %v, expected just outside an edge", u.Pos.X)
	}
	if rec.count(u.Type.SpawnSound()) != 1 {
		t.Errorf("%s played %d times, expected 1", u.Type.SpawnSound(), rec.count(u.Type.SpawnSound()))
	}

	// Only one UFO at a time
	w.Update(10000, Input{})
	if len(w.UFOs()) > 1 {
		t.Errorf("len(UFOs()) = %d, expected at most 1", len(w.UFOs()))
	}
}

func TestPulseTimer(t *testing.T) {
	w, rec := newTestWorld(t)
	clearField(w)
	w.asteroids = []*Asteroid{rock(w)}

	for i := 0; i < 50; i++ {
		w.Update(100, Input{})
	}
	if rec.count(SoundPulse) != 2 {
		t.Errorf("pulse played %d times in 5s, expected 2", rec.count(SoundPulse))
	}
}

func TestLevelProgression(t *testing.T) {
	w, _ := newTestWorld(t)
	clearField(w)
	w.ufoTimer = 5000

	w.Update(16, Input{})

	if w.Level() != 2 {
		t.Errorf("Level() = %d, expected 2", w.Level())
	}
	if len(w.Asteroids()) != 6 {
		t.Errorf("len(Asteroids()) = %d, expected 6", len(w.Asteroids()))
	}
	if w.ufoTimer != 0 {
		t.Errorf("ufoTimer = %v, expected reset to 0", w.ufoTimer)
	}
}

func TestWaveSizeCapped(t *testing.T) {
	w, _ := newTestWorld(t)
	clearField(w)
	w.level = 20

	w.Update(16, Input{})

	if len(w.Asteroids()) != 12 {
		t.Errorf("len(Asteroids()) = %d, expected cap of 12", len(w.Asteroids()))
	}
}

func TestExtraLives(t *testing.T) {
	w, _ := newTestWorld(t)

	w.addScore(9990)
	if w.Lives() != 3 {
		t.Fatalf("Lives() = %d, expected 3", w.Lives())
	}
	w.addScore(20)
	if w.Lives() != 4 {
		t.Fatalf("Lives() = %d, expected 4 after 10000 points", w.Lives())
	}

	w.lives--
	w.addScore(100)
	if w.Lives() != 3 {
		t.Errorf("Lives() = %d, a threshold should only pay out once", w.Lives())
	}

	w.addScore(20000)
	if w.Lives() != 5 {
		t.Errorf("Lives() = %d, expected 5 after crossing two thresholds", w.Lives())
	}
}

func TestEnemyProjectilesMergedAfterUFOs(t *testing.T) {
	w, _ := newTestWorld(t)
	clearField(w)
	w.asteroids = []*Asteroid{rock(w)}

	u := NewUFO(core.V(100, 500), UFOLarge, 300, 1000, w.rng)
	u.cooldown = 5000
	w.ufos = []*UFO{u}

	w.Update(16, Input{})

	if len(w.EnemyProjectiles()) != 1 {
		t.Fatalf("len(EnemyProjectiles()) = %d, expected 1", len(w.EnemyProjectiles()))
	}
	if w.EnemyProjectiles()[0].Age() != 0 {
		t.Error("projectile fired this frame should not be updated until next frame")
	}
}

func TestUniformIntegration(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Physics.Integration = config.IntegrationUniform
	cfg.Physics.ReferenceFrameMs = 10

	w := NewWorld(cfg)
	w.Reset(testBounds, 1)
	clearField(w)

	a := still(w, core.V(100, 100), SizeLarge)
	a.Vel = core.V(1, 0)
	w.asteroids = []*Asteroid{a}

	w.Update(20, Input{})
	if a.Pos.X != 102 {
		t.Errorf("X = %v, expected 102 with two reference frames", a.Pos.X)
	}
}

func TestWorldSetBounds(t *testing.T) {
	w, _ := newTestWorld(t)
	clearField(w)
	w.asteroids = []*Asteroid{rock(w)}

	w.SetBounds(Bounds{W: 400, H: 300})
	p := NewProjectile(core.V(401, 100), 0, 0, 1000, false)
	w.projectiles = []*Projectile{p}

	w.Update(16, Input{})
	if p.Pos.X != 0 {
		t.Errorf("X = %v, expected wrap at new width", p.Pos.X)
	}
}

func TestWorldDeterminism(t *testing.T) {
	run := func(seed int64) Snapshot {
		w := NewWorld(config.DefaultAsteroidsConfig())
		w.Reset(testBounds, seed)
		for i := 0; i < 1200; i++ {
			in := Input{
				RotateLeft: i%90 < 20,
				Thrust:     i%120 < 30,
				Fire:       i%10 == 0,
			}
			w.Update(1000.0/60, in)
		}
		return w.Snapshot()
	}

	a := run(12345)
	b := run(12345)
	if a.Hash() != b.Hash() {
		t.Errorf("same seed produced different hashes: %d vs %d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.Lives != b.Lives || a.Level != b.Level {
		t.Errorf("state mismatch: %+v vs %+v", a, b)
	}

	c := run(54321)
	if a.Hash() == c.Hash() {
		t.Error("different seeds produced identical hashes")
	}
}

func TestRenderStateOnlyActive(t *testing.T) {
	w, _ := newTestWorld(t)
	clearField(w)

	dead := rock(w)
	dead.Destroy(w.rng)
	w.asteroids = []*Asteroid{rock(w), dead}
	w.projectiles = []*Projectile{NewProjectile(core.V(10, 10), 0, 0, 1000, false)}
	w.enemyProjectiles = []*Projectile{NewProjectile(core.V(20, 20), 0, 0, 1000, true)}
	w.ship.Thrusting = true

	rs := w.RenderState()
	if len(rs.Asteroids) != 1 {
		t.Errorf("len(Asteroids) = %d, expected 1", len(rs.Asteroids))
	}
	if len(rs.Projectiles) != 2 || rs.Projectiles[0].Enemy || !rs.Projectiles[1].Enemy {
		t.Errorf("Projectiles = %+v, expected player then enemy", rs.Projectiles)
	}
	if rs.Ship.Flame == nil {
		t.Error("thrusting ship should expose a flame")
	}
}
