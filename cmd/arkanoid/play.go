package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/audio"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/Right, A/D  - Move the paddle
  Mouse drag       - Move the paddle
  Space, click     - Launch the ball
  P/Esc            - Pause
  N                - New game
  Tab              - Skip to the next level
  M                - Sound on/off
  ?                - Full help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower ball, wider paddle
  normal - Default settings
  hard   - Faster ball, narrower paddle
  fixed  - No speed-up over time

Examples:
  arkanoid play
  arkanoid play --difficulty easy
  arkanoid play --pack freebounce
  arkanoid play --levels ./my-levels.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, set, pack, err := loadGame()
	if err != nil {
		return err
	}
	if flagMute {
		cfg.Sound.Enabled = false
	}

	// Logs would corrupt the alternate screen, so they go to a file.
	var logOut io.Writer = io.Discard
	if flagDebug {
		f, openErr := openDebugLog()
		if openErr != nil {
			return openErr
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "arkanoid")

	runtime := core.DefaultRuntimeConfig()
	runtime.FPS = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var player audio.Player
	if cfg.Sound.Enabled {
		sp, spErr := audio.NewSpeakerPlayer(cfg.Sound.Volume)
		if spErr != nil {
			logger.Warn("audio unavailable", "error", spErr)
		} else {
			defer sp.Close()
			player = sp
		}
	}

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Levels:  set,
		Pack:    pack,
		Player:  playerName(),
		Store:   store,
		Sound:   player,
		Logger:  logger,
		Runtime: runtime,
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

func openDebugLog() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arkanoid")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
