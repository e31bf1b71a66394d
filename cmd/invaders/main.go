// invaders is a Space Invaders game for the terminal, a desktop window and SSH.
//
// Usage:
//
//	invaders play            - Play in the terminal
//	invaders gui             - Play in a desktop window
//	invaders serve           - Start SSH server for remote play
//	invaders scores          - Show score history and the best score
//	invaders config          - Print the default configuration
//	invaders simulate        - Run a headless game with an autopilot
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.invaders/scores.db)
//	--config <path>       - Load game settings from a YAML file
//	--difficulty <name>   - Apply a difficulty preset
//	--log-level <level>   - debug, info, warn or error
//	--sound               - Enable sound effects
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/invaders/internal/audio"
	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagSound      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `Invaders is a Space Invaders game that runs in the terminal,
in a desktop window, or over SSH.

Available commands:
  play      - Play in the terminal
  gui       - Play in a desktop window
  serve     - Start SSH server for remote play
  scores    - View score history
  config    - Print the default configuration
  simulate  - Run a headless game with an autopilot

Examples:
  invaders play
  invaders play --difficulty hard
  invaders gui --sound
  invaders serve --ssh :2222
  invaders scores --limit 20`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Enable sound effects")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadGameConfig reads the config file, applies the difficulty preset and validates the result.
func loadGameConfig() (config.InvadersConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.InvadersConfig{}, err
	}
	return config.LoadInvadersWithPreset(flagConfig, preset)
}

// newLogger builds the application logger.
// With toFile set, output goes to ~/.invaders/invaders.log so the alt screen stays clean.
func newLogger(toFile bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closer := func() {}

	if toFile {
		w = io.Discard
		if home, err := os.UserHomeDir(); err == nil {
			dir := filepath.Join(home, ".invaders")
			if err := os.MkdirAll(dir, 0o755); err == nil {
				f, err := os.OpenFile(filepath.Join(dir, "invaders.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
				if err == nil {
					w = f
					closer = func() { f.Close() }
				}
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger, closer
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, or returns nil so the game still runs.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// openSound starts audio output when --sound is set. Failures disable sound.
func openSound(logger *log.Logger) *audio.SoundManager {
	if !flagSound {
		return nil
	}
	sm := audio.NewSoundManager(0.5, logger)
	if err := sm.Initialize(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return nil
	}
	return sm
}
