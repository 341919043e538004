package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsYAML returns the embedded default configuration document.
func DefaultAsteroidsYAML() []byte {
	out := make([]byte, len(defaultAsteroidsYAML))
	copy(out, defaultAsteroidsYAML)
	return out
}

// DefaultAsteroidsConfig returns the default Asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Viewport: AsteroidsViewport{
			CellWidth:  8,
			CellHeight: 16,
		},
		Physics: AsteroidsPhysics{
			Timestep:         TimestepFixed,
			Integration:      IntegrationClassic,
			MaxFrameMs:       100,
			ReferenceFrameMs: 1000.0 / 60,
		},
		Ship: AsteroidsShip{
			RotationSpeed:     3.5,
			Thrust:            5,
			MaxSpeed:          7,
			Friction:          0.97,
			InvulnerabilityMs: 3000,
			RespawnDelayMs:    2000,
		},
		Projectile: AsteroidsProjectile{
			PlayerSpeed: 500,
			EnemySpeed:  300,
			LifetimeMs:  1000,
		},
		Field: AsteroidsField{
			BaseCount: 4,
			MaxCount:  12,
		},
		UFO: AsteroidsUFO{
			SpawnIntervalMs: 10000,
			LargeChance:     0.7,
			SpawnOffset:     30,
		},
		Gameplay: AsteroidsGameplay{
			Lives:           3,
			ExtraLifeEvery:  10000,
			PulseIntervalMs: 2000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpawnIntervalReduction: 0.5,
				SmallUFOBoost:          0.4,
			},
		},
	}
}
