// Package config provides YAML-based game configuration loading and
// difficulty management for the game.
package config

// AsteroidsConfig contains all configuration for the Asteroids game.
type AsteroidsConfig struct {
	Viewport   AsteroidsViewport   `yaml:"viewport"`
	Physics    AsteroidsPhysics    `yaml:"physics"`
	Ship       AsteroidsShip       `yaml:"ship"`
	Projectile AsteroidsProjectile `yaml:"projectile"`
	Field      AsteroidsField      `yaml:"field"`
	UFO        AsteroidsUFO        `yaml:"ufo"`
	Gameplay   AsteroidsGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig    `yaml:"difficulty"`
}

// AsteroidsViewport maps terminal cells to world pixels.
type AsteroidsViewport struct {
	CellWidth  float64 `yaml:"cell_width"`  // World pixels per terminal column
	CellHeight float64 `yaml:"cell_height"` // World pixels per terminal row
}

// Timestep modes.
const (
	TimestepFixed    = "fixed"    // Every tick advances 1000/TickRate ms
	TimestepRealtime = "realtime" // Every tick advances the measured wall-clock time
)

// Integration modes.
const (
	IntegrationClassic = "classic" // Per-frame velocities, friction and drift
	IntegrationUniform = "uniform" // Per-frame terms scaled by dt / reference frame
)

// AsteroidsPhysics controls how simulation time is advanced.
type AsteroidsPhysics struct {
	Timestep         string  `yaml:"timestep"`           // "fixed" or "realtime"
	Integration      string  `yaml:"integration"`        // "classic" or "uniform"
	MaxFrameMs       float64 `yaml:"max_frame_ms"`       // Cap on a single realtime step
	ReferenceFrameMs float64 `yaml:"reference_frame_ms"` // Frame length per-frame terms were tuned for
}

// AsteroidsShip defines player ship parameters.
type AsteroidsShip struct {
	RotationSpeed     float64 `yaml:"rotation_speed"` // Radians per second
	Thrust            float64 `yaml:"thrust"`         // Velocity gained per second of thrust
	MaxSpeed          float64 `yaml:"max_speed"`      // Pixels per frame
	Friction          float64 `yaml:"friction"`       // Velocity multiplier per frame
	InvulnerabilityMs float64 `yaml:"invulnerability_ms"`
	RespawnDelayMs    float64 `yaml:"respawn_delay_ms"`
}

// AsteroidsProjectile defines projectile parameters.
type AsteroidsProjectile struct {
	PlayerSpeed float64 `yaml:"player_speed"` // Pixels per second
	EnemySpeed  float64 `yaml:"enemy_speed"`  // Pixels per second
	LifetimeMs  float64 `yaml:"lifetime_ms"`
}

// AsteroidsField defines asteroid wave parameters.
type AsteroidsField struct {
	BaseCount int `yaml:"base_count"` // Wave size is base_count + level
	MaxCount  int `yaml:"max_count"`  // Upper bound on wave size
}

// AsteroidsUFO defines enemy saucer spawning.
type AsteroidsUFO struct {
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms"`
	LargeChance     float64 `yaml:"large_chance"` // Probability a spawned UFO is large
	SpawnOffset     float64 `yaml:"spawn_offset"` // Distance outside the viewport edge
}

// AsteroidsGameplay defines lives, bonuses and ambient timers.
type AsteroidsGameplay struct {
	Lives           int     `yaml:"lives"`
	ExtraLifeEvery  int     `yaml:"extra_life_every"` // 0 disables extra lives
	PulseIntervalMs float64 `yaml:"pulse_interval_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", "wave", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks/wave at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnIntervalReduction float64 `yaml:"spawn_interval_reduction"` // Fraction of the UFO interval removed at max difficulty
	SmallUFOBoost          float64 `yaml:"small_ufo_boost"`          // Added small-UFO probability at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
