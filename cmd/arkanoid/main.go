// arkanoid is a terminal Arkanoid with an event-driven physics engine.
//
// Usage:
//
//	arkanoid play            - Play in this terminal
//	arkanoid serve           - Start SSH server for remote play
//	arkanoid web             - Serve the game to browsers
//	arkanoid sim             - Run a headless game with an autopilot paddle
//	arkanoid levels          - List level packs and levels
//	arkanoid scores [pack]   - Show high scores for a pack
//
// Global flags:
//
//	--config <path>      - Game config YAML
//	--levels <path>      - Level file YAML (overrides --pack)
//	--pack <name>        - Built-in level pack (default: classic)
//	--difficulty <name>  - Preset: easy, normal, hard, fixed
//	--db <path>          - Scores database (default: ~/.arkanoid/scores.db)
//	--fps <rate>         - Frame rate (default: 60)
//	--debug              - Verbose logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/levels"
)

var (
	// Global flags
	flagConfig     string
	flagLevels     string
	flagPack       string
	flagDifficulty string
	flagDBPath     string
	flagFPS        int
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break bricks in your terminal",
	Long: `Arkanoid is a brick breaker driven by an event-driven physics engine:
collisions are predicted ahead of time instead of being searched for on
every frame, so the ball never tunnels through a brick.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Serve the game to browsers
  sim      - Headless run with an autopilot paddle
  levels   - List level packs
  scores   - View high scores

Examples:
  arkanoid play
  arkanoid play --difficulty hard
  arkanoid play --levels ./my-levels.yaml
  arkanoid serve --ssh :2222
  arkanoid web --addr :8080
  arkanoid sim --duration 60000
  arkanoid scores classic`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to a level file YAML (overrides --pack)")
	rootCmd.PersistentFlags().StringVar(&flagPack, "pack", "classic", "Built-in level pack")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arkanoid/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger creates the command logger.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the game config and applies the difficulty preset.
func loadConfig() (config.Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return cfg, nil
}

// loadLevels returns the selected level set and the name its scores are
// stored under.
func loadLevels() (levels.Set, string, error) {
	if flagLevels != "" {
		set, err := levels.Load(flagLevels)
		if err != nil {
			return set, "", err
		}
		name := strings.TrimSuffix(filepath.Base(flagLevels), filepath.Ext(flagLevels))
		return set, "file:" + name, nil
	}
	if !levels.Exists(flagPack) {
		return levels.Set{}, "", fmt.Errorf("unknown level pack %q (run 'arkanoid levels' to list packs)", flagPack)
	}
	set, err := levels.Open(flagPack)
	return set, flagPack, err
}

// loadGame loads config and levels together.
func loadGame() (config.Config, levels.Set, string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, levels.Set{}, "", err
	}
	set, pack, err := loadLevels()
	if err != nil {
		return cfg, set, "", err
	}
	return cfg, set, pack, nil
}
