package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/storage"
	"github.com/vovakirdan/tui-arkanoid/internal/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the game to browsers",
	Long: `Start an HTTP server with a browser version of the game.

Each browser tab runs its own game on the server; frames are streamed
over a WebSocket. The JSON API lists levels and high scores.

Endpoints:
  GET /             - Game page
  GET /api/levels   - Levels of the served pack
  GET /api/scores   - High scores (?pack=, ?limit=)
  GET /ws           - Game session (?player=)

Examples:
  arkanoid web
  arkanoid web --addr :9000 --pack classic`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address")
}

func runWeb(_ *cobra.Command, _ []string) error {
	cfg, set, pack, err := loadGame()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, "arkanoid-web")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := web.NewServer(web.Options{
		Config: cfg,
		Levels: set,
		Pack:   pack,
		Store:  store,
		Logger: logger,
		FPS:    flagFPS,
	})
	fmt.Printf("Open http://localhost%s in a browser\n", flagWebAddr)
	return srv.ListenAndServe(ctx, flagWebAddr)
}
