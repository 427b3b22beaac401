package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tetrion/tetrion/internal/config"
	"github.com/tetrion/tetrion/internal/core"
	"github.com/tetrion/tetrion/internal/platform/tui"
	"github.com/tetrion/tetrion/internal/registry"
	"github.com/tetrion/tetrion/internal/storage"
	"github.com/tetrion/tetrion/internal/tetris"
)

var (
	flagConfig string
	flagLevel  int
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Left/Right/A/D  - Move piece
  Down/S          - Soft drop
  Space           - Hard drop
  Up/W/X          - Rotate clockwise
  Z               - Rotate counter-clockwise
  C               - Hold piece
  P               - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Examples:
  tetrion play marathon
  tetrion play marathon --level 5
  tetrion play sprint
  tetrion play marathon --config ./my-rules.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (0 = config default)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetrion list' to see available modes.")
		os.Exit(1)
	}

	// Validate the config before the session starts so a bad file is a
	// clean CLI error rather than a silent fallback mid-game
	if flagConfig != "" {
		gc, err := config.Load(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if _, err := tetris.OptionsFromConfig(gc); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and start level before creation
	tetris.SetConfigPath(flagConfig)
	if flagLevel > 0 {
		tetris.SetStartLevel(flagLevel)
	}

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

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
