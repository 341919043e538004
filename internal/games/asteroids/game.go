package asteroids

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// GameID is the registry and score-table key.
const GameID = "asteroids"

// Game states
const (
	StateStart    = "start"    // Title banner, waiting for the first key
	StatePlaying  = "playing"  // Simulation running
	StatePaused   = "paused"   // Simulation frozen
	StateGameOver = "gameover" // No lives left
)

// Minimum terminal size the playfield is usable at.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts World to the arcade registry.
type Game struct {
	world   *World
	cfg     config.AsteroidsConfig
	runtime core.RuntimeConfig
	sink    core.SoundSink
	state   string

	screenTooSmall bool

	// Realtime timestep
	now  func() time.Time
	last time.Time
}

// New creates a new Asteroids game instance.
func New() *Game {
	return &Game{
		cfg:   config.DefaultAsteroidsConfig(),
		state: StateStart,
		now:   time.Now,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// SetSoundSink routes sound notifications to s.
func (g *Game) SetSoundSink(s core.SoundSink) {
	g.sink = s
	if g.world != nil {
		g.world.SetSoundSink(s)
	}
}

// SetClock replaces the wall clock used by the realtime timestep.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
	g.last = time.Time{}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := LoadConfig()
	if err != nil {
		cfg = config.DefaultAsteroidsConfig()
		if difficultyPreset != "" {
			config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
		}
	}
	g.ResetWithConfig(runtime, cfg)
}

// LoadConfig loads the configuration selected by SetConfigPath and applies
// the preset from SetDifficultyPreset.
func LoadConfig() (config.AsteroidsConfig, error) {
	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// ResetWithConfig restarts the game with an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.AsteroidsConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	// Recreate the world when the config changes; otherwise keep its
	// scheduler so the generation keeps counting across sessions.
	if g.world == nil || g.world.cfg != cfg {
		g.world = NewWorld(cfg)
	}
	g.world.SetSoundSink(g.sink)
	g.world.Reset(g.bounds(runtime.ScreenW, runtime.ScreenH), runtime.Seed)

	g.state = StateStart
	g.last = time.Time{}
}

// Resize adapts the playfield to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < MinScreenW || h < MinScreenH
	if g.world != nil {
		g.world.SetBounds(g.bounds(w, h))
	}
}

// bounds converts a terminal size to playfield pixels.
func (g *Game) bounds(cols, rows int) Bounds {
	return Bounds{
		W: float64(cols) * g.cfg.Viewport.CellWidth,
		H: float64(rows) * g.cfg.Viewport.CellHeight,
	}
}

// World returns the underlying simulation.
func (g *Game) World() *World {
	return g.world
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.ResetWithConfig(g.runtime, g.cfg)
		g.state = StatePlaying
		return core.StepResult{State: g.State()}
	}

	switch g.state {
	case StateStart:
		if in.Has(core.ActionFire) || in.Has(core.ActionConfirm) || in.Has(core.ActionThrust) {
			g.state = StatePlaying
			g.last = time.Time{}
		}
		return core.StepResult{State: g.State()}
	case StateGameOver:
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
			g.last = time.Time{}
		} else {
			g.state = StatePaused
		}
	}
	if g.state == StatePaused {
		return core.StepResult{State: g.State()}
	}

	g.world.Update(g.frameDuration(), Input{
		RotateLeft:  in.Has(core.ActionLeft),
		RotateRight: in.Has(core.ActionRight),
		Thrust:      in.Has(core.ActionThrust),
		Fire:        in.Has(core.ActionFire),
	})

	if g.world.GameOver() {
		g.state = StateGameOver
	}

	return core.StepResult{State: g.State()}
}

// frameDuration returns the milliseconds this tick should simulate.
func (g *Game) frameDuration() float64 {
	fixed := g.runtime.TickMillis()
	if g.cfg.Physics.Timestep != config.TimestepRealtime {
		return fixed
	}

	now := g.now()
	if g.last.IsZero() {
		g.last = now
		return fixed
	}
	dt := float64(now.Sub(g.last)) / float64(time.Millisecond)
	g.last = now

	if dt < 0 {
		return 0
	}
	if limit := g.cfg.Physics.MaxFrameMs; limit > 0 && dt > limit {
		return limit
	}
	return dt
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score(),
		Lives:    g.world.Lives(),
		Level:    g.world.Level(),
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Phase returns the current state name.
func (g *Game) Phase() string {
	return g.state
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
