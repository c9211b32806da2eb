package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vradchenko/puff-arcade/internal/core"
	"github.com/vradchenko/puff-arcade/internal/games/dreamland"
	"github.com/vradchenko/puff-arcade/internal/games/lawn"
	"github.com/vradchenko/puff-arcade/internal/platform/sound"
	"github.com/vradchenko/puff-arcade/internal/platform/tui"
	"github.com/vradchenko/puff-arcade/internal/registry"
	"github.com/vradchenko/puff-arcade/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  A/D, Left/Right - Move
  W/S, Up/Down    - Cursor (lawn)
  Space/Z         - Jump
  X/C             - Inhale / place plant
  V               - Use copy ability
  G               - Drop ability / dig up plant
  Tab             - Cycle seed card
  P/Esc           - Pause
  R               - Restart
  Q/Ctrl+C        - Quit

Examples:
  arcade play dreamland
  arcade play lawn
  arcade play dreamland --seed 42
  arcade play lawn --config ./my-lawn.yaml
  arcade play dreamland --mute`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path for games before creation
	switch gameID {
	case "dreamland":
		dreamland.SetConfigPath(flagConfig)
	case "lawn":
		lawn.SetConfigPath(flagConfig)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Open sound output; silence is not an error worth stopping for
	var snd *sound.Player
	if !flagMute {
		snd = sound.NewPlayer()
		if sndErr := snd.Init(); sndErr != nil {
			log.Warn("sound unavailable, playing silent", "error", sndErr)
			snd = nil
		}
	}

	// Run the game
	runErr := tui.Run(game, store, snd, cfg)

	// Close store and sound before potential exit
	if store != nil {
		store.Close()
	}
	if snd != nil {
		snd.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
