package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paintdrop/internal/core"
	"github.com/vovakirdan/paintdrop/internal/games/paintdrop"
	"github.com/vovakirdan/paintdrop/internal/platform/tui"
	"github.com/vovakirdan/paintdrop/internal/registry"
	"github.com/vovakirdan/paintdrop/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to paintdrop.

Controls:
  A/D, Left/Right  - Move the catcher
  Space/Enter      - Start (and start again after game over)
  P                - Pause
  R                - Back to the title after game over
  Esc/B/Tab        - High scores (when no round is running)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower buckets, faster and wider catcher
  normal - Config as loaded
  hard   - Faster buckets, narrower catcher
  fixed  - Config as loaded

Examples:
  paintdrop play
  paintdrop play --difficulty hard
  paintdrop play --config ./my-paintdrop.yaml
  paintdrop play --seed 42 --log ./paintdrop.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", env.Difficulty, "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'paintdrop list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

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

	// Set config path and difficulty before the game is created
	paintdrop.SetConfigPath(flagConfig)
	paintdrop.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	if logger != nil {
		logger.Info("session started", "game", gameID, "size", fmt.Sprintf("%dx%d", width, height), "fps", flagFPS, "difficulty", flagDifficulty)
	}

	runErr := tui.Run(game, store, cfg, logger)

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
