package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseAsteroids(defaultAsteroidsYAML)
	if err != nil {
		t.Fatalf("parseAsteroids(embedded) failed: %v", err)
	}
	def := DefaultAsteroidsConfig()

	if cfg.Ship != def.Ship {
		t.Errorf("embedded ship = %+v, expected %+v", cfg.Ship, def.Ship)
	}
	if cfg.Projectile != def.Projectile {
		t.Errorf("embedded projectile = %+v, expected %+v", cfg.Projectile, def.Projectile)
	}
	if cfg.Field != def.Field || cfg.UFO != def.UFO || cfg.Gameplay != def.Gameplay {
		t.Error("embedded field/ufo/gameplay sections differ from hardcoded defaults")
	}
	if cfg.Physics.Timestep != TimestepFixed || cfg.Physics.Integration != IntegrationClassic {
		t.Errorf("embedded physics modes = %q/%q, expected fixed/classic", cfg.Physics.Timestep, cfg.Physics.Integration)
	}
	if math.Abs(cfg.Physics.ReferenceFrameMs-def.Physics.ReferenceFrameMs) > 0.01 {
		t.Errorf("embedded reference frame = %v, expected ~%v", cfg.Physics.ReferenceFrameMs, def.Physics.ReferenceFrameMs)
	}
}

func TestLoadAsteroidsCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "asteroids.yaml")
	data := []byte("gameplay:\n  lives: 7\nphysics:\n  integration: uniform\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAsteroids(path)
	if err != nil {
		t.Fatalf("LoadAsteroids() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Physics.Integration != IntegrationUniform {
		t.Errorf("Integration = %q, expected uniform", cfg.Physics.Integration)
	}
	// Keys not present keep their defaults
	if cfg.Ship.MaxSpeed != 7 {
		t.Errorf("MaxSpeed = %v, expected default 7", cfg.Ship.MaxSpeed)
	}
}

func TestLoadAsteroidsErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "ship: [unterminated"},
		{"unknown timestep", "physics:\n  timestep: warp\n"},
		{"zero lives", "gameplay:\n  lives: 0\n"},
		{"bad cell size", "viewport:\n  cell_width: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			cfg, err := LoadAsteroids(path)
			if err == nil {
				t.Fatal("LoadAsteroids() expected error")
			}
			if cfg.Gameplay.Lives != DefaultAsteroidsConfig().Gameplay.Lives {
				t.Error("LoadAsteroids() should return defaults alongside an error")
			}
		})
	}

	if _, err := LoadAsteroids(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadAsteroids() of missing file should fail")
	}
}

func TestApplyAsteroidsPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		enabled    bool
		lives      int
		initialLvl float64
	}{
		{DifficultyEasy, true, 5, 0.0},
		{DifficultyNormal, true, 3, 0.3},
		{DifficultyHard, true, 2, 0.7},
		{DifficultyFixed, false, 3, 0.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultAsteroidsConfig()
			ApplyAsteroidsPreset(&cfg, tt.preset)

			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Gameplay.Lives != tt.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tt.lives)
			}
			if cfg.Difficulty.InitialLevel != tt.initialLvl {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tt.initialLvl)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("ParsePreset of unknown value should return empty preset")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultAsteroidsConfig().Difficulty

	t.Run("disabled returns base values", func(t *testing.T) {
		dm := NewDifficultyManager(cfg)
		if got := dm.SpawnInterval(10000, 5000, 100, 8); got != 10000 {
			t.Errorf("SpawnInterval() = %v, expected 10000", got)
		}
		if got := dm.LargeUFOChance(0.7, 5000, 100, 8); got != 0.7 {
			t.Errorf("LargeUFOChance() = %v, expected 0.7", got)
		}
	})

	t.Run("disabled holds initial level", func(t *testing.T) {
		fixed := cfg
		fixed.Enabled = false
		fixed.InitialLevel = 0.5
		dm := NewDifficultyManager(fixed)

		for _, wave := range []int{1, 6, 50} {
			if got := dm.Level(100000, 100000, wave); got != 0.5 {
				t.Errorf("Level(wave %d) = %v, expected 0.5", wave, got)
			}
		}
		if got := dm.SpawnInterval(10000, 0, 0, 50); got != 7500 {
			t.Errorf("SpawnInterval() = %v, expected 7500", got)
		}
	})

	t.Run("wave progression", func(t *testing.T) {
		enabled := cfg
		enabled.Enabled = true
		dm := NewDifficultyManager(enabled)

		if got := dm.Level(0, 0, 1); got != 0 {
			t.Errorf("Level(wave 1) = %v, expected 0", got)
		}
		if got := dm.Level(0, 0, 11); got != 1 {
			t.Errorf("Level(wave 11) = %v, expected 1", got)
		}
		if got := dm.Level(0, 0, 50); got != 1 {
			t.Errorf("Level(wave 50) = %v, expected clamp to 1", got)
		}
		if got := dm.SpawnInterval(10000, 0, 0, 11); got != 5000 {
			t.Errorf("SpawnInterval(max) = %v, expected 5000", got)
		}
		if got := dm.LargeUFOChance(0.7, 0, 0, 11); math.Abs(got-0.3) > 1e-9 {
			t.Errorf("LargeUFOChance(max) = %v, expected 0.3", got)
		}
	})

	t.Run("initial level offsets progression", func(t *testing.T) {
		enabled := cfg
		enabled.Enabled = true
		enabled.InitialLevel = 0.5
		dm := NewDifficultyManager(enabled)

		if got := dm.Level(0, 0, 6); math.Abs(got-0.75) > 1e-9 {
			t.Errorf("Level(wave 6) = %v, expected 0.75", got)
		}
	})
}
