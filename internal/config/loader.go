package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadAsteroids loads Asteroids configuration.
// Search order: customPath -> ~/.asteroids/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
// Files only need to set the keys they override; everything else keeps its default.
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultAsteroidsConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseAsteroids(data)
		if err != nil {
			return DefaultAsteroidsConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("asteroids.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseAsteroids(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/asteroids.yaml"); err == nil {
		if cfg, err := parseAsteroids(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseAsteroids(defaultAsteroidsYAML)
	if err != nil {
		return DefaultAsteroidsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseAsteroids decodes data over the hardcoded defaults and validates the result.
func parseAsteroids(data []byte) (AsteroidsConfig, error) {
	cfg := DefaultAsteroidsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first configuration value the game cannot run with.
func (c AsteroidsConfig) Validate() error {
	switch c.Physics.Timestep {
	case TimestepFixed, TimestepRealtime:
	default:
		return fmt.Errorf("physics.timestep: unknown mode %q", c.Physics.Timestep)
	}
	switch c.Physics.Integration {
	case IntegrationClassic, IntegrationUniform:
	default:
		return fmt.Errorf("physics.integration: unknown mode %q", c.Physics.Integration)
	}
	if c.Viewport.CellWidth <= 0 || c.Viewport.CellHeight <= 0 {
		return errors.New("viewport: cell dimensions must be positive")
	}
	if c.Physics.ReferenceFrameMs <= 0 {
		return errors.New("physics.reference_frame_ms must be positive")
	}
	if c.Gameplay.Lives <= 0 {
		return errors.New("gameplay.lives must be positive")
	}
	if c.Projectile.LifetimeMs <= 0 {
		return errors.New("projectile.lifetime_ms must be positive")
	}
	if c.Field.MaxCount < 1 {
		return errors.New("field.max_count must be at least 1")
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func (c AsteroidsConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".asteroids", "configs", filename)
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Ship.InvulnerabilityMs = 4000
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Ship.InvulnerabilityMs = 2000
	}
}
