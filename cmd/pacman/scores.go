package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs recorded in the scores database.

Examples:
  pacman scores
  pacman scores --limit 25
  pacman scores -i          # scrollable table
  pacman scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	title := "Pac-Man"

	if flagScoresClear {
		if err := store.ClearScores(pacman.GameID); err != nil {
			fail("%v", err)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, pacman.GameID, title, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	scores, err := store.TopScores(pacman.GameID, flagScoresLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pacman play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %s\n", "----", "------", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-7d  %-5d  %s\n", i+1, player, entry.Score, entry.Level, dateStr)
	}

	// Show totals
	fmt.Println()
	if stats, err := store.GetGameStats(pacman.GameID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Deepest level: %d\n", stats.HighScore, stats.GamesCount, stats.MaxLevel)
	}
}
