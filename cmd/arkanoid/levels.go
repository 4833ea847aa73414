package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List level packs and the levels of the selected pack",
	Long: `Shows the registered level packs and the levels of the pack selected
with --pack or --levels.

Examples:
  arkanoid levels
  arkanoid levels --levels ./my-levels.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	packs := levels.List()

	fmt.Println("Level packs:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range packs {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "Name", "Levels", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "----", "------", "-----")
	for _, p := range packs {
		fmt.Printf("  %-*s  %-6d  %s\n", maxNameLen, p.Name, p.Levels, p.Title)
	}

	set, pack, err := loadLevels()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Levels in %s:\n", pack)
	fmt.Println()
	if set.Len() == 0 {
		fmt.Println("  (none - the ball bounces in an empty field)")
		return nil
	}
	fmt.Printf("  %-3s  %-6s  %s\n", "#", "Bricks", "Title")
	fmt.Printf("  %-3s  %-6s  %s\n", "-", "------", "-----")
	for i, lvl := range set.Levels {
		fmt.Printf("  %-3d  %-6d  %s\n", i+1, lvl.BrickCount(), lvl.Title)
	}

	fmt.Println()
	fmt.Println("Run 'arkanoid play --pack <name>' to play a pack.")
	return nil
}
