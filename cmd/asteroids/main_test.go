package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

func TestApplyGameFlags(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(good, []byte("gameplay:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("gameplay: [not a map\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		asteroids.SetConfigPath("")
		asteroids.SetDifficultyPreset("")
	})

	tests := []struct {
		name       string
		path       string
		difficulty string
		wantErr    bool
	}{
		{"defaults", "", "", false},
		{"preset", "", "hard", false},
		{"unknown preset", "", "nightmare", true},
		{"custom file", good, "", false},
		{"missing file", filepath.Join(dir, "missing.yaml"), "", true},
		{"malformed file", bad, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := applyGameFlags(tt.path, tt.difficulty)
			if (err != nil) != tt.wantErr {
				t.Errorf("applyGameFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyGameFlagsCustomLives(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lives.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { asteroids.SetConfigPath("") })

	if err := applyGameFlags(path, ""); err != nil {
		t.Fatalf("applyGameFlags() error = %v", err)
	}
	cfg, err := asteroids.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Gameplay.Lives != 4 {
		t.Errorf("Lives = %d, expected 4", cfg.Gameplay.Lives)
	}
}
