package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"golang.org/x/term"

	"github.com/vradchenko/puff-arcade/internal/platform/tui"
	"github.com/vradchenko/puff-arcade/internal/registry"
	"github.com/vradchenko/puff-arcade/internal/storage"
)

var (
	flagScoresStats       bool
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.

With --interactive (or no game argument), opens a browsable scoreboard
covering all games.

Examples:
  arcade scores dreamland
  arcade scores lawn --stats
  arcade scores -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show aggregate play statistics")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse scores in a TUI")
}

// runScoreboard opens the interactive scoreboard for all games.
func runScoreboard() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if _, err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		os.Exit(1)
	}
}

func runScores(cmd *cobra.Command, args []string) {
	if flagScoresInteractive || len(args) == 0 {
		runScoreboard()
		return
	}
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "------", "----")

	// Print scores
	for i, entry := range scores {
		result := "-"
		if entry.Won {
			result = "WIN"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6s  %s\n", i+1, entry.Score, result, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}

	if flagScoresStats {
		stats, statsErr := store.GetGameStats(gameID)
		if statsErr != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", statsErr)
			os.Exit(1)
		}
		fmt.Println()
		fmt.Printf("Games played: %d\n", stats.GamesCount)
		fmt.Printf("Wins:         %d\n", stats.Wins)
		fmt.Printf("Average:      %.0f\n", stats.AvgScore)
		if !stats.LastPlayed.IsZero() {
			fmt.Printf("Last played:  %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
		}
	}
}
