package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/audio"
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/controller"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/engine"
	"github.com/vovakirdan/tui-arkanoid/internal/levels"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

func testModel(t *testing.T, w, h int) (Model, time.Time) {
	t.Helper()
	set, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin() error: %v", err)
	}
	m := NewModel(Options{
		Config:  config.DefaultConfig(),
		Levels:  set,
		Sound:   &audio.Recorder{},
		Runtime: core.RuntimeConfig{ScreenW: w, ScreenH: h, FPS: 30},
	})
	base := m.start
	m.now = func() time.Time { return base }
	return m, base
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

// activate runs frames until the first level is live.
func activate(t *testing.T, m Model, base time.Time) Model {
	t.Helper()
	m, _ = update(t, m, FrameMsg(base.Add(1100*time.Millisecond)))
	m, _ = update(t, m, FrameMsg(base.Add(3100*time.Millisecond)))
	if st := m.Controller().Status(); st.State != engine.StateActive {
		t.Fatalf("state = %v, expected active", st.State)
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key      string
		expected core.Action
	}{
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"right", core.ActionRight},
		{"d", core.ActionRight},
		{"space", core.ActionRelease},
		{"p", core.ActionPause},
		{"esc", core.ActionPause},
		{"n", core.ActionNewGame},
		{"tab", core.ActionNextLevel},
		{"m", core.ActionSound},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"?", core.ActionNone},
		{"x", core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := km.Action(keyMsg(tt.key)); got != tt.expected {
				t.Errorf("Action(%q) = %v, expected %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestModelLifecycle(t *testing.T) {
	m, base := testModel(t, 80, 30)

	if st := m.Controller().Status(); !st.Waiting || st.State != engine.StateInit {
		t.Fatalf("new session should wait for the first level, got %+v", st)
	}

	m = activate(t, m, base)

	m.now = func() time.Time { return base.Add(3150 * time.Millisecond) }
	m, _ = update(t, m, keyMsg("space"))
	m, _ = update(t, m, FrameMsg(base.Add(3200*time.Millisecond)))

	if m.Controller().Status().OnPaddle {
		t.Error("ball should have left the paddle")
	}
}

func TestModelPause(t *testing.T) {
	m, base := testModel(t, 80, 30)
	m = activate(t, m, base)

	m, _ = update(t, m, keyMsg("p"))
	if !m.Controller().Status().Paused {
		t.Fatal("expected paused after p")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should say PAUSED")
	}

	m, _ = update(t, m, keyMsg("p"))
	if m.Controller().Status().Paused {
		t.Error("expected running after second p")
	}
}

func TestModelSoundToggle(t *testing.T) {
	m, _ := testModel(t, 80, 30)

	if !m.sched.Enabled() {
		t.Fatal("sound should start enabled")
	}
	m, _ = update(t, m, keyMsg("m"))
	if m.sched.Enabled() {
		t.Error("sound should be off after m")
	}
	if !strings.Contains(m.View(), "sound off") {
		t.Error("HUD should show sound off")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := testModel(t, 80, 30)

	m, cmd := update(t, m, keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.View() != "" {
		t.Error("View after quit should be empty")
	}
}

func TestModelMouseMovesPaddle(t *testing.T) {
	cfg := config.DefaultConfig()
	// One cell per field unit
	w, h := int(cfg.Width())+2, int(cfg.Field.Height)+4
	m, base := testModel(t, w, h)
	m = activate(t, m, base)

	m.now = func() time.Time { return base.Add(3150 * time.Millisecond) }
	m, _ = update(t, m, tea.MouseMsg{X: 101, Y: 300, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	m, _ = update(t, m, FrameMsg(base.Add(3200*time.Millisecond)))

	if got := m.eng.Paddle().X; got != 100.5 {
		t.Errorf("paddle X = %v, expected 100.5", got)
	}

	// Other buttons are ignored
	m, _ = update(t, m, tea.MouseMsg{X: 400, Y: 300, Button: tea.MouseButtonRight, Action: tea.MouseActionPress})
	m, _ = update(t, m, FrameMsg(base.Add(3250*time.Millisecond)))
	if got := m.eng.Paddle().X; got != 100.5 {
		t.Errorf("paddle X = %v after right click, expected 100.5", got)
	}
}

func TestModelViewTooSmall(t *testing.T) {
	m, _ := testModel(t, 10, 5)

	if got := m.View(); !strings.Contains(got, "terminal too small") {
		t.Errorf("View() = %q, expected size warning", got)
	}
}

func TestModelResize(t *testing.T) {
	m, _ := testModel(t, 10, 5)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	view := m.View()
	if strings.Contains(view, "terminal too small") {
		t.Error("resized view should draw the field")
	}
	if !strings.Contains(view, "Score 0") {
		t.Error("HUD should show the score")
	}
}

func TestBrickLayerCache(t *testing.T) {
	m, _ := testModel(t, 80, 30)

	first := m.bricks(1)
	second := m.bricks(1)
	if len(first) == 0 || &first[0] != &second[0] {
		t.Error("same version should reuse the cached layout")
	}
	third := m.bricks(2)
	if &first[0] == &third[0] {
		t.Error("new version should reload the layout")
	}
}

func TestScoreSaver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	save := scoreSaver(Options{Store: store, Pack: "classic", Player: "ann"})
	save(engine.Snapshot{Score: 1200, Level: 2})
	save(engine.Snapshot{Score: 0, Level: 0})

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() error: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d scores, expected 1 (zero scores are skipped)", len(scores))
	}
	if scores[0].Score != 1200 || scores[0].Level != 3 || scores[0].Player != "ann" {
		t.Errorf("saved %+v", scores[0])
	}

	// Without a store nothing happens
	scoreSaver(Options{})(engine.Snapshot{Score: 10})
}

func TestDrawScene(t *testing.T) {
	cfg := config.DefaultConfig()
	scr := core.NewScreen(int(cfg.Width())+2, int(cfg.Field.Height)+3)
	l := newLayout(scr.Width(), scr.Height(), cfg)
	if !l.ok {
		t.Fatal("layout should fit")
	}

	drawScene(scr, l, scene{
		status: controller.Status{
			Snapshot:   engine.Snapshot{BallX: 320, BallY: 400, State: engine.StateActive, Level: 0},
			LevelCount: 5,
		},
		bricks: []engine.Brick{
			{Left: 0, Right: 641, Top: 0, Bottom: 700, Kind: engine.KindGameArea, Color: engine.GameAreaColor},
			{Left: 0, Right: 40, Top: 60, Bottom: 80, ID: 1, Kind: engine.KindRegular, Color: 0xff0000},
		},
		paddle: engine.Paddle{X: 320, Left: 288, Right: 352, Half: 32},
		plane:  cfg.MainHeight(),
		title:  "Arkanoid",
	})

	if c := scr.Get(1, 62); c.Rune != '█' || c.Color != core.RGB(0xff0000) {
		t.Errorf("brick cell = %+v", c)
	}
	if c := scr.Get(40, 62); c.Rune != '▌' {
		t.Errorf("brick seam = %+v", c)
	}
	if c := scr.Get(1+320, 2+400); c.Rune != '●' {
		t.Errorf("ball cell = %+v", c)
	}
	row := 2 + int(cfg.MainHeight())
	if c := scr.Get(1+300, row); c.Rune != '▀' || c.Color != core.ColorPaddle {
		t.Errorf("paddle cell = %+v", c)
	}
	// The game area itself is not filled
	if c := scr.Get(1+320, 2+200); c.Rune != ' ' {
		t.Errorf("empty field cell = %+v", c)
	}
	if !strings.Contains(scr.Row(0), "Level 1/5") {
		t.Errorf("HUD = %q", scr.Row(0))
	}
}

func TestOverlay(t *testing.T) {
	tests := []struct {
		name     string
		status   controller.Status
		expected string
	}{
		{"paused", controller.Status{Paused: true, Snapshot: engine.Snapshot{State: engine.StateActive}}, "PAUSED"},
		{"game over", controller.Status{Snapshot: engine.Snapshot{State: engine.StateGameOver}}, "GAME OVER  press n"},
		{"victory", controller.Status{Snapshot: engine.Snapshot{State: engine.StateLevelComplete, Status: "Victory!"}}, "Victory!"},
		{"waiting", controller.Status{LevelCount: 5, Snapshot: engine.Snapshot{State: engine.StateWaiting, Level: 2}}, "Level 3"},
		{"free bounce", controller.Status{Snapshot: engine.Snapshot{State: engine.StateWaiting, Level: -1}}, "Get ready"},
		{"idle", controller.Status{Snapshot: engine.Snapshot{State: engine.StateInit}}, "press n for a new game"},
		{"on paddle", controller.Status{Snapshot: engine.Snapshot{State: engine.StateActive, OnPaddle: true}}, "space to launch"},
		{"in flight", controller.Status{Snapshot: engine.Snapshot{State: engine.StateActive}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := overlay(tt.status); got != tt.expected {
				t.Errorf("overlay() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestModelScoreboard(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveScore("classic", "ann", 2500, 3); err != nil {
		t.Fatalf("SaveScore() error: %v", err)
	}

	set, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin() error: %v", err)
	}
	m := NewModel(Options{
		Config:  config.DefaultConfig(),
		Levels:  set,
		Pack:    "classic",
		Store:   store,
		Runtime: core.RuntimeConfig{ScreenW: 100, ScreenH: 30},
	})

	m, _ = update(t, m, keyMsg("s"))
	if m.board == nil {
		t.Fatal("s should open the scoreboard")
	}
	if !m.Controller().Status().Paused {
		t.Error("opening the scoreboard should pause the game")
	}
	view := m.View()
	if !strings.Contains(view, "HIGH SCORES") || !strings.Contains(view, "2500") {
		t.Errorf("scoreboard view is missing the saved score:\n%s", view)
	}

	// Game keys go to the scoreboard while it is open
	m, _ = update(t, m, keyMsg("p"))
	if !m.Controller().Status().Paused {
		t.Error("p should not reach the game while the scoreboard is open")
	}

	m, _ = update(t, m, keyMsg("esc"))
	if m.board != nil {
		t.Fatal("esc should close the scoreboard")
	}
	if m.Controller().Status().Paused {
		t.Error("closing the scoreboard should resume the game")
	}
}

func TestScoreboardPacks(t *testing.T) {
	b := NewScoreboard(nil, "file:mine", 80, 24)

	if b.Pack() != "file:mine" {
		t.Errorf("Pack() = %q, expected the current pack first", b.Pack())
	}
	b.Update(keyMsg("tab"))
	if b.Pack() == "file:mine" {
		t.Error("tab should switch to the next pack")
	}
	b.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if b.Pack() != "file:mine" {
		t.Errorf("shift+tab should go back, got %q", b.Pack())
	}
	if !strings.Contains(b.View(), "Scores are not available") {
		t.Error("scoreboard without a store should say so")
	}
}
