package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/audio"
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/controller"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/engine"
	"github.com/vovakirdan/tui-arkanoid/internal/levels"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

// Options configures a game session.
type Options struct {
	Config   config.Config
	Levels   levels.Set
	Pack     string // Score table key
	Player   string
	Store    *storage.Store // Optional
	Sound    audio.Player   // Optional
	Logger   *log.Logger
	Renderer *lipgloss.Renderer // Optional, per SSH session
	Runtime  core.RuntimeConfig
}

// musicPlayer is implemented by players that can loop background music.
type musicPlayer interface {
	SetMusic(on bool)
}

// brickLayer caches the brick layout between layout changes.
type brickLayer struct {
	version uint64
	bricks  []engine.Brick
	loaded  bool
}

// Model is the Bubble Tea model for one Arkanoid session.
type Model struct {
	opts     Options
	eng      *engine.Engine
	ctrl     *controller.Controller
	sched    *audio.Scheduler
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	render   *Renderer
	layer    *brickLayer
	board    *Scoreboard
	paused   bool // Paused by opening the scoreboard
	start    time.Time
	now      func() time.Time
	quitting bool
}

// NewModel creates a session and starts a new game.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Pack == "" {
		opts.Pack = "custom"
	}
	if opts.Player == "" {
		opts.Player = "player"
	}
	if opts.Runtime.FPS <= 0 {
		opts.Runtime.FPS = 60
	}

	sched := audio.NewScheduler(opts.Sound, opts.Config.Sound.Enabled, opts.Logger)
	eng := engine.New(opts.Config, opts.Levels, engine.WithLogger(opts.Logger))
	ctrl := controller.New(eng, sched, opts.Config,
		controller.WithLogger(opts.Logger),
		controller.WithFinishHook(scoreSaver(opts)),
	)

	m := Model{
		opts:   opts,
		eng:    eng,
		ctrl:   ctrl,
		sched:  sched,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		render: NewRenderer(opts.Renderer),
		layer:  &brickLayer{},
		now:    time.Now,
	}
	m.start = m.now()
	m.setMusic(sched.Enabled())
	ctrl.NewGame(0)
	return m
}

// scoreSaver stores the final score of each finished game.
func scoreSaver(opts Options) func(engine.Snapshot) {
	return func(snap engine.Snapshot) {
		if opts.Store == nil || snap.Score <= 0 {
			return
		}
		if _, err := opts.Store.SaveScore(opts.Pack, opts.Player, snap.Score, snap.Level+1); err != nil {
			opts.Logger.Warn("could not save score", "error", err)
		}
	}
}

// Controller returns the session controller.
func (m Model) Controller() *controller.Controller {
	return m.ctrl
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.opts.Runtime.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		if m.board != nil {
			m.board.Resize(msg.Width, msg.Height)
		}
		return m, nil

	case FrameMsg:
		m.ctrl.Frame(m.millis(time.Time(msg)))
		return m, frameCmd(m.opts.Runtime.FPS)
	}

	return m, nil
}

// millis converts wall time to milliseconds since the session started.
func (m Model) millis(t time.Time) float64 {
	return float64(t.Sub(m.start)) / float64(time.Millisecond)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.millis(m.now())

	if m.board != nil && !key.Matches(msg, m.keys.Quit) {
		cmd := m.board.Update(msg)
		if m.board.Closed() {
			m.board = nil
			if m.paused {
				m.ctrl.TogglePause(now)
				m.paused = false
			}
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Scores):
		m.board = NewScoreboard(m.opts.Store, m.opts.Pack, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		if !m.ctrl.Status().Paused {
			m.ctrl.TogglePause(now)
			m.paused = true
		}
		return m, nil
	}

	if m.apply(m.keys.Action(msg), now) {
		m.quitting = true
		m.setMusic(false)
		return m, tea.Quit
	}
	return m, nil
}

// apply runs an action against the controller. It reports whether the
// action ends the session.
func (m Model) apply(a core.Action, now float64) bool {
	switch a {
	case core.ActionQuit:
		return true
	case core.ActionLeft:
		m.ctrl.Left(now)
	case core.ActionRight:
		m.ctrl.Right(now)
	case core.ActionRelease:
		m.ctrl.Release(now)
	case core.ActionPause:
		m.ctrl.TogglePause(now)
	case core.ActionNewGame:
		m.ctrl.NewGame(now)
	case core.ActionNextLevel:
		if err := m.ctrl.NextLevel(now); err != nil {
			m.opts.Logger.Warn("next level failed", "error", err)
		}
	case core.ActionSound:
		on := !m.sched.Enabled()
		m.sched.SetEnabled(on)
		m.setMusic(on)
	}
	return false
}

// handleMouse moves the paddle under the pointer while dragging and
// launches the ball on click.
func (m Model) handleMouse(msg tea.MouseMsg) {
	l := m.fieldLayout(1)
	if !l.ok || msg.Button != tea.MouseButtonLeft {
		return
	}
	now := m.millis(m.now())
	switch msg.Action {
	case tea.MouseActionPress:
		m.ctrl.MoveTo(now, l.fieldX(msg.X))
		m.ctrl.Release(now)
	case tea.MouseActionMotion:
		m.ctrl.MoveTo(now, l.fieldX(msg.X))
	}
}

func (m Model) setMusic(on bool) {
	if mp, ok := m.opts.Sound.(musicPlayer); ok {
		mp.SetMusic(on)
	}
}

// bricks returns the brick layout, refreshing the cache only when the
// engine reports a layout change.
func (m Model) bricks(version uint64) []engine.Brick {
	if !m.layer.loaded || m.layer.version != version {
		m.layer.bricks = m.eng.Bricks()
		m.layer.version = version
		m.layer.loaded = true
	}
	return m.layer.bricks
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	helpView := m.help.View(m.keys)
	rows := lipgloss.Height(helpView)
	l := m.fieldLayout(rows)
	if !l.ok {
		return tooSmall
	}
	m.screen.Resize(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH-rows)

	st := m.ctrl.Status()
	drawScene(m.screen, l, scene{
		status:  st,
		bricks:  m.bricks(st.BricksVersion),
		paddle:  m.eng.Paddle(),
		plane:   m.opts.Config.MainHeight(),
		title:   m.title(),
		soundOn: m.sched.Enabled(),
	})
	return m.render.Render(m.screen) + "\n" + helpView
}

// fieldLayout lays out the field above helpRows lines of help.
func (m Model) fieldLayout(helpRows int) layout {
	return newLayout(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH-helpRows, m.opts.Config)
}

func (m Model) title() string {
	if t := m.eng.Title(); t != "" {
		return t
	}
	return "Arkanoid"
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
