package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/platform/gui"
)

var flagScale float64

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Open a window the size of the playfield and play there.

Controls are the same as in the terminal; arrow keys are read as held keys.

Examples:
  invaders gui
  invaders gui --scale 1.5 --sound`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func init() {
	guiCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runGUI(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(false)
	defer closeLog()

	store := openStore(logger)
	sound := openSound(logger)

	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	runErr := gui.Run(gameCfg, cfg, gui.Options{
		Store:  store,
		Sound:  sound,
		Logger: logger,
		Scale:  flagScale,
	})

	sound.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// msDuration converts a millisecond flag value.
func msDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
