package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/audio"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/levels"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level pack, play, repeat",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a level pack, Enter to play it.
Quitting a game returns you to the menu.

Examples:
  arkanoid menu
  arkanoid menu --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(io.Discard, "arkanoid")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	var player audio.Player
	if cfg.Sound.Enabled {
		if sp, spErr := audio.NewSpeakerPlayer(cfg.Sound.Volume); spErr == nil {
			defer sp.Close()
			player = sp
		}
	}

	runtime := core.DefaultRuntimeConfig()
	runtime.FPS = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	current := flagPack
	for {
		res, err := tui.RunMenu(runtime, current)
		if err != nil {
			return err
		}
		if res.Quit {
			return nil
		}
		runtime = res.Config
		current = res.Pack

		set, err := levels.Open(current)
		if err != nil {
			return err
		}
		if err := tui.Run(tui.Options{
			Config:  cfg,
			Levels:  set,
			Pack:    current,
			Player:  playerName(),
			Store:   store,
			Sound:   player,
			Logger:  logger,
			Runtime: runtime,
		}); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
