// paintdrop is a terminal paint-bucket catching game.
//
// Usage:
//
//	paintdrop list              - List available games
//	paintdrop play              - Play Paint Drop
//	paintdrop scores            - Show high scores
//	paintdrop serve             - Start SSH server for remote play
//	paintdrop config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.paintdrop/scores.db)
//	--log <path>    - Write logs to a file
//
// Flag defaults may be set with PAINTDROP_* environment variables.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paintdrop/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/paintdrop/internal/games/paintdrop"
)

const defaultGameID = "paintdrop"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagVerbose bool

	// Flag defaults from PAINTDROP_* variables, read before any init runs
	env = loadEnv()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paintdrop",
	Short: "Paint Drop - catch falling paint buckets in your terminal",
	Long: `Paint Drop is a terminal arcade game. Buckets of paint fall from the
top of the screen; catch every one to clear the round. Each round drops more
buckets, faster, and spread wider. Miss one and the game is over.

Available commands:
  list     - Show all available games
  play     - Play a game
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default game config

Examples:
  paintdrop play
  paintdrop play --difficulty easy
  paintdrop serve --ssh :2222
  paintdrop scores`,
}

func loadEnv() config.Env {
	e, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring environment: %v\n", err)
		return config.Env{DBPath: "~/.paintdrop/scores.db", SSHAddr: ":23234", FPS: 60}
	}
	return e
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", env.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", env.DBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", env.LogPath, "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogger builds the logger for a command. Without --log, interactive
// commands discard logs so they don't draw over the alt-screen; fallback
// is used otherwise. The returned func closes the log file.
func openLogger(fallback *os.File) (*log.Logger, func(), error) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "paintdrop",
	}
	if flagVerbose {
		opts.Level = log.DebugLevel
	}

	if flagLogPath == "" {
		if fallback == nil {
			return nil, func() {}, nil
		}
		return log.NewWithOptions(fallback, opts), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return log.NewWithOptions(f, opts), func() { f.Close() }, nil
}
