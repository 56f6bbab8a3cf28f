package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long:  `Shows the levels of the built-in pack, or of the --levels directory.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	lvls, err := loadLevels()
	if err != nil {
		return err
	}

	maxIDLen := 2 // "ID" header
	for _, lvl := range lvls {
		maxIDLen = max(maxIDLen, len(lvl.ID))
	}

	fmt.Printf("  %-*s  %-16s  %-7s  %s\n", maxIDLen, "ID", "Title", "Size", "Pellets")
	fmt.Printf("  %-*s  %-16s  %-7s  %s\n", maxIDLen, "--", "-----", "----", "-------")
	for _, lvl := range lvls {
		size := fmt.Sprintf("%dx%d", lvl.Width, lvl.Height)
		fmt.Printf("  %-*s  %-16s  %-7s  %d\n", maxIDLen, lvl.ID, lvl.Title(), size, lvl.PelletCount())
	}

	fmt.Println()
	fmt.Println("Run 'pacman play --level <id>' to start on a level.")
	return nil
}
