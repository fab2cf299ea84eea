package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paintdrop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default game config",
	Long: `Print the built-in YAML config. Save it to
~/.paintdrop/configs/paintdrop.yaml or ./configs/paintdrop.yaml and edit it,
or pass it to 'paintdrop play --config'.

Examples:
  paintdrop config > my-paintdrop.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no config for game %q\n", gameID)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
