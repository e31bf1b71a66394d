package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/invaders/internal/invaders"
	"github.com/vovakirdan/invaders/internal/platform/tui"
	"github.com/vovakirdan/invaders/internal/storage"
)

var (
	flagLimit     int
	flagScoresTUI bool
	flagClear     bool
	flagSessions  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show score history and the best score",
	Long: `Display the top scores and the persisted best score.

Examples:
  invaders scores
  invaders scores --limit 25
  invaders scores --tui
  invaders scores --sessions
  invaders scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history and the best score")
	scoresCmd.Flags().BoolVar(&flagSessions, "sessions", false, "Show recent SSH sessions instead of scores")
}

func runScores(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	key := gameCfg.Gameplay.HighScoreKey

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	game := invaders.NewGame(gameCfg, invaders.Deps{}, nil)

	if flagClear {
		if err := clearScores(store, game.ID(), key); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagSessions {
		if err := writeSessions(os.Stdout, store, flagLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagScoresTUI {
		cfg := runtimeConfig()
		if err := tui.RunScoreboard(store, game.ID(), key, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Get top scores
	scores, err := store.TopScores(game.ID(), flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-4s  %s\n", "Rank", "Score", "Wave", "Date")
	fmt.Printf("  %-4s  %-10s  %-4s  %s\n", "----", "-----", "----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-4d  %s\n", i+1, entry.Score, entry.Wave, dateStr)
	}

	// Show high score
	fmt.Println()
	if highScore, err := store.HighScore(key); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

// clearScores removes the history and the persisted best score.
func clearScores(store *storage.Store, gameID, key string) error {
	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	return store.ResetHighScore(key)
}

// writeSessions prints the most recent SSH sessions recorded by serve.
func writeSessions(w io.Writer, store *storage.Store, limit int) error {
	sessions, err := store.RecentSessions(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Recent SSH Sessions")
	fmt.Fprintln(w)

	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-16s  %-21s  %-5s  %-6s  %-8s  %s\n", "User", "Remote", "Games", "Best", "Duration", "Ended")
	fmt.Fprintf(w, "  %-16s  %-21s  %-5s  %-6s  %-8s  %s\n", "----", "------", "-----", "----", "--------", "-----")
	for _, rec := range sessions {
		duration := rec.EndedAt.Sub(rec.StartedAt).Round(time.Second)
		fmt.Fprintf(w, "  %-16s  %-21s  %-5d  %-6d  %-8s  %s\n",
			rec.User, rec.RemoteAddr, rec.GamesPlayed, rec.BestScore, duration, rec.EndedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
