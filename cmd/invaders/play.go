package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/invaders/internal/platform/tui"
)

var flagHoldMS int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Enter       - Start
  Left/A      - Move left
  Right/D     - Move right
  Space/Up    - Fire
  P/Esc       - Pause
  R           - Restart (after game over)
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy    - More lives, fewer enemy shots
  normal  - Default settings
  hard    - Fewer lives, faster formation, more enemy shots
  fixed   - Formation speed never increases between waves

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldMS, "hold", 0, "Milliseconds a direction key stays held after its last repeat (0 = default)")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(true)
	defer closeLog()

	store := openStore(logger)
	sound := openSound(logger)

	opts := tui.Options{
		Store:      store,
		Sound:      sound,
		Logger:     logger,
		HoldWindow: msDuration(flagHoldMS),
	}
	runErr := tui.Run(gameCfg, runtimeConfig(), opts)

	sound.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
