package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paintdrop/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game IDs accepted by play, scores and config",
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	for _, g := range registry.List() {
		fmt.Printf("%s\t%s\n", g.ID, g.Title)
	}
}
