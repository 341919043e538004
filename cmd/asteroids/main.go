// asteroids is a terminal Asteroids game that can also be served over SSH.
//
// Usage:
//
//	asteroids play      - Play in this terminal
//	asteroids serve     - Start SSH server for remote play
//	asteroids scores    - Show high scores
//	asteroids config    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.asteroids/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "asteroids",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids in your terminal",
	Long: `Asteroids for the terminal: steer the ship, break up the rocks
and keep clear of the flying saucers.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  asteroids play
  asteroids play --difficulty hard --mute
  asteroids serve --ssh :2222
  asteroids scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.asteroids/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGameFlags forwards --config and --difficulty to the game package.
func applyGameFlags(configPath, difficulty string) error {
	if difficulty != "" && !validDifficulty(difficulty) {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
	}
	asteroids.SetConfigPath(configPath)
	asteroids.SetDifficultyPreset(difficulty)

	// Reset falls back to defaults on a bad file; surface the error here instead
	if _, err := asteroids.LoadConfig(); err != nil {
		return err
	}
	return nil
}

// openStore opens the score database, logging and returning nil on failure
// so the game still runs.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
