package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/audio"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVolume     float64
	flagHoldMs     int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/Right, A/D  - Rotate
  Up, W            - Thrust
  Space            - Fire
  Enter            - Start
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Screenshot to ~/.asteroids/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Five lives, slow UFO pressure
  normal - UFO pressure starts at 30%
  hard   - Two lives, UFO pressure starts at 70%
  fixed  - No progression, stays at the config's initial level

Examples:
  asteroids play
  asteroids play --difficulty easy
  asteroids play --config ./my-asteroids.yaml
  asteroids play --volume 0.4
  asteroids play --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.7, "Master volume from 0 to 1")
	playCmd.Flags().IntVar(&flagHoldMs, "hold-ms", int(tui.DefaultHoldWindow/time.Millisecond), "How long a key counts as held after its last repeat")
}

func validDifficulty(s string) bool {
	return config.ParsePreset(s) != ""
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(flagConfig, flagDifficulty); err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if cfg.ScreenW < asteroids.MinScreenW || cfg.ScreenH < asteroids.MinScreenH {
		logger.Warn("terminal is smaller than the playfield minimum",
			"size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH),
			"min", fmt.Sprintf("%dx%d", asteroids.MinScreenW, asteroids.MinScreenH))
	}

	game, err := registry.Create(asteroids.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	opts := tui.RunOptions{
		HoldWindow: time.Duration(flagHoldMs) * time.Millisecond,
	}
	if !flagMute {
		player := audio.NewPlayer(flagVolume)
		if err := player.Initialize(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer player.Close()
			opts.Sink = player
		}
	}

	// Continue without storage if the database cannot be opened
	var saver tui.ScoreSaver
	store := openStore()
	if store != nil {
		defer store.Close()
		saver = store
	}

	if err := tui.Run(game, saver, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
