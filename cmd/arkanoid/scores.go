package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [pack]",
	Short: "Show high scores for a level pack",
	Long: `Display the top high scores for a level pack (default: --pack).

Examples:
  arkanoid scores
  arkanoid scores classic --limit 20
  arkanoid scores --all
  arkanoid scores file:my-levels --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show statistics for every pack")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the pack")
}

func runScores(_ *cobra.Command, args []string) error {
	pack := flagPack
	if len(args) == 1 {
		pack = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresAll {
		return printAllStats(store)
	}

	if flagScoresClear {
		if err := store.ClearScores(pack); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Scores for %s cleared.\n", pack)
		return nil
	}

	scores, err := store.TopScores(pack, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", pack)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arkanoid play --pack %s' to set the first high score!\n", pack)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-12s  %s\n", "Rank", "Score", "Level", "Player", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-12s  %s\n", "----", "-----", "-----", "------", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %-12s  %s\n", i+1, entry.Score, entry.Level, entry.Player, dateStr)
	}

	if stats, err := store.Stats(pack); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func printAllStats(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return fmt.Errorf("retrieving statistics: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-6s  %-10s  %-8s  %s\n", "Pack", "Games", "Best", "Avg", "Last played")
	fmt.Printf("  %-16s  %-6s  %-10s  %-8s  %s\n", "----", "-----", "----", "---", "-----------")
	for _, name := range sortedKeys(all) {
		s := all[name]
		fmt.Printf("  %-16s  %-6d  %-10d  %-8.0f  %s\n",
			s.Pack, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func sortedKeys(m map[string]*storage.PackStats) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
