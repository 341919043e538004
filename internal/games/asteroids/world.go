package asteroids

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// countingRand wraps the session RNG and counts draws for snapshots.
type countingRand struct {
	r     *rand.Rand
	draws uint64
}

func newCountingRand(seed int64) *countingRand {
	return &countingRand{r: rand.New(rand.NewSource(seed))}
}

func (c *countingRand) Float64() float64 {
	c.draws++
	return c.r.Float64()
}

// World owns every entity and advances the simulation one frame at a time.
// It is not safe for concurrent use.
type World struct {
	cfg        config.AsteroidsConfig
	difficulty *config.DifficultyManager
	rng        *countingRand
	sink       core.SoundSink
	bounds     Bounds
	scheduler  *Scheduler

	ship             *Ship
	asteroids        []*Asteroid
	ufos             []*UFO
	projectiles      []*Projectile
	enemyProjectiles []*Projectile

	// Writes that must not disturb collections being iterated
	pendingAsteroids []*Asteroid
	pendingEnemy     []*Projectile

	score      int
	lives      int
	level      int
	extraLives int
	gameOver   bool
	ticks      int

	ufoTimer   float64
	pulseTimer float64
	prevFire   bool
	prevThrust bool
}

// NewWorld creates a world. Call Reset before the first Update.
func NewWorld(cfg config.AsteroidsConfig) *World {
	return &World{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        newCountingRand(1),
		scheduler:  NewScheduler(),
	}
}

// SetSoundSink sets the receiver of sound notifications. nil silences the world.
func (w *World) SetSoundSink(s core.SoundSink) {
	w.sink = s
}

// SetBounds changes the playfield size. It affects wrapping and the respawn point.
func (w *World) SetBounds(b Bounds) {
	w.bounds = b
}

// Bounds returns the playfield size.
func (w *World) Bounds() Bounds {
	return w.bounds
}

// Reset starts a new session seeded with seed.
// Deferred actions from the previous session never fire.
func (w *World) Reset(b Bounds, seed int64) {
	w.bounds = b
	w.rng = newCountingRand(seed)
	w.scheduler.NextGeneration()

	w.score = 0
	w.lives = w.cfg.Gameplay.Lives
	w.level = 1
	w.extraLives = 0
	w.gameOver = false
	w.ticks = 0
	w.ufoTimer = 0
	w.pulseTimer = 0
	w.prevFire = false
	w.prevThrust = false

	w.ship = NewShip(b.Center(), w.cfg.Ship)
	w.asteroids = nil
	w.ufos = nil
	w.projectiles = nil
	w.enemyProjectiles = nil
	w.pendingAsteroids = nil
	w.pendingEnemy = nil

	w.spawnWave()
}

// Launch queues an enemy projectile. It is merged after all UFOs have updated.
func (w *World) Launch(p *Projectile) {
	w.pendingEnemy = append(w.pendingEnemy, p)
}

// frame converts elapsed milliseconds into a Frame for the configured integration.
func (w *World) frame(dt float64) Frame {
	if w.cfg.Physics.Integration == config.IntegrationUniform && w.cfg.Physics.ReferenceFrameMs > 0 {
		return Frame{Dt: dt, Scale: dt / w.cfg.Physics.ReferenceFrameMs}
	}
	return ClassicFrame(dt)
}

// Update advances the simulation by dt milliseconds.
// It does nothing once the game is over.
func (w *World) Update(dt float64, in Input) {
	if w.gameOver || w.ship == nil {
		return
	}
	w.ticks++
	f := w.frame(dt)

	w.updateShip(f, in)
	w.updateEntities(f)
	w.updateTimers(dt)
	w.resolveCollisions()
	w.purge()
	w.checkLevel()

	if w.lives <= 0 {
		w.gameOver = true
		if w.prevThrust {
			w.prevThrust = false
			w.play(SoundThrustStop)
		}
	}
}

func (w *World) updateShip(f Frame, in Input) {
	active := w.ship.Active()
	if active {
		w.ship.Update(f, in, w.bounds)
	}

	thrusting := active && in.Thrust
	switch {
	case thrusting && !w.prevThrust:
		w.play(SoundThrustStart)
	case !thrusting && w.prevThrust:
		w.play(SoundThrustStop)
	}
	w.prevThrust = thrusting

	if in.Fire && !w.prevFire && active && !w.ship.Invulnerable() {
		w.projectiles = append(w.projectiles, w.ship.Fire(w.cfg.Projectile))
		w.play(SoundFire)
	}
	w.prevFire = in.Fire
}

func (w *World) updateEntities(f Frame) {
	for _, a := range w.asteroids {
		a.Update(f, w.bounds)
	}
	for _, u := range w.ufos {
		u.Update(f, w.ship, w, w.bounds)
	}
	for _, p := range w.projectiles {
		p.Update(f, w.bounds)
	}
	for _, p := range w.enemyProjectiles {
		p.Update(f, w.bounds)
	}

	w.enemyProjectiles = append(w.enemyProjectiles, w.pendingEnemy...)
	w.pendingEnemy = w.pendingEnemy[:0]
}

func (w *World) updateTimers(dt float64) {
	w.scheduler.Advance(dt)

	w.ufoTimer += dt
	interval := w.difficulty.SpawnInterval(w.cfg.UFO.SpawnIntervalMs, w.score, w.ticks, w.level)
	if w.ufoTimer >= interval {
		if len(w.ufos) == 0 {
			w.spawnUFO()
		}
		w.ufoTimer = 0
	}

	if w.cfg.Gameplay.PulseIntervalMs > 0 {
		w.pulseTimer += dt
		if w.pulseTimer >= w.cfg.Gameplay.PulseIntervalMs {
			w.pulseTimer = 0
			w.play(SoundPulse)
		}
	}
}

// spawnUFO places a saucer just beyond the left or right edge.
func (w *World) spawnUFO() {
	x := -w.cfg.UFO.SpawnOffset
	if w.rng.Float64() >= 0.5 {
		x = w.bounds.W + w.cfg.UFO.SpawnOffset
	}
	y := w.rng.Float64() * w.bounds.H

	t := UFOSmall
	chance := w.difficulty.LargeUFOChance(w.cfg.UFO.LargeChance, w.score, w.ticks, w.level)
	if w.rng.Float64() < chance {
		t = UFOLarge
	}

	w.ufos = append(w.ufos, NewUFO(core.V(x, y), t, w.cfg.Projectile.EnemySpeed, w.cfg.Projectile.LifetimeMs, w.rng))
	w.play(t.SpawnSound())
}

// spawnWave adds large asteroids at random positions for the current level.
func (w *World) spawnWave() {
	n := core.Min(w.cfg.Field.BaseCount+w.level, w.cfg.Field.MaxCount)
	for range n {
		pos := core.V(w.rng.Float64()*w.bounds.W, w.rng.Float64()*w.bounds.H)
		w.asteroids = append(w.asteroids, NewAsteroid(pos, SizeLarge, w.rng))
	}
}

// destroyShip handles a fatal hit: one life lost and a respawn scheduled
// while lives remain.
func (w *World) destroyShip() {
	w.ship.Destroy()
	w.lives--
	w.play(SoundExplodeLarge)

	if w.lives > 0 {
		ship := w.ship
		w.scheduler.After(w.cfg.Ship.RespawnDelayMs, func() {
			ship.Respawn(w.bounds.Center())
		})
	}
}

// addScore adds points and awards extra lives at each threshold crossed.
func (w *World) addScore(points int) {
	w.score += points

	every := w.cfg.Gameplay.ExtraLifeEvery
	if every <= 0 {
		return
	}
	if earned := w.score / every; earned > w.extraLives {
		w.lives += earned - w.extraLives
		w.extraLives = earned
	}
}

func (w *World) purge() {
	w.asteroids = purgeInactive(w.asteroids)
	w.ufos = purgeInactive(w.ufos)
	w.projectiles = purgeInactive(w.projectiles)
	w.enemyProjectiles = purgeInactive(w.enemyProjectiles)
}

type activatable interface {
	Active() bool
}

// purgeInactive filters s in place, keeping active entities in order.
func purgeInactive[T activatable](s []T) []T {
	kept := s[:0]
	for _, e := range s {
		if e.Active() {
			kept = append(kept, e)
		}
	}
	clear(s[len(kept):])
	return kept
}

// checkLevel starts the next wave when the field is clear.
func (w *World) checkLevel() {
	if len(w.asteroids) > 0 || len(w.ufos) > 0 {
		return
	}
	w.level++
	w.spawnWave()
	w.ufoTimer = 0
}

func (w *World) play(s core.Sound) {
	if w.sink != nil {
		w.sink.Play(s)
	}
}

// Score returns the current score.
func (w *World) Score() int { return w.score }

// Lives returns the remaining lives.
func (w *World) Lives() int { return w.lives }

// Level returns the current wave number, starting at 1.
func (w *World) Level() int { return w.level }

// GameOver reports whether the session has ended.
func (w *World) GameOver() bool { return w.gameOver }

// Ship returns the player ship.
func (w *World) Ship() *Ship { return w.ship }

// Asteroids returns the live asteroids. The slice must not be modified.
func (w *World) Asteroids() []*Asteroid { return w.asteroids }

// UFOs returns the live saucers. The slice must not be modified.
func (w *World) UFOs() []*UFO { return w.ufos }

// Projectiles returns the player's projectiles in flight.
func (w *World) Projectiles() []*Projectile { return w.projectiles }

// EnemyProjectiles returns UFO projectiles in flight.
func (w *World) EnemyProjectiles() []*Projectile { return w.enemyProjectiles }
