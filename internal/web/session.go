package web

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-arkanoid/internal/audio"
	"github.com/vovakirdan/tui-arkanoid/internal/controller"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/engine"
)

const writeWait = 5 * time.Second

// command is a message from the browser.
type command struct {
	Action string   `json:"action"`
	X      *float64 `json:"x,omitempty"` // Field x for "move"
}

type fieldInfo struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Plane      float64 `json:"plane"`
	BallRadius float64 `json:"ballRadius"`
	PaddleHalf float64 `json:"paddleHalf"`
}

type helloMessage struct {
	Type    string    `json:"type"`
	Session string    `json:"session"`
	Title   string    `json:"title"`
	Field   fieldInfo `json:"field"`
}

type soundMessage struct {
	Sample  audio.Sample `json:"sample"`
	DelayMs int64        `json:"delayMs"`
}

type frameMessage struct {
	Type   string            `json:"type"`
	Status controller.Status `json:"status"`
	Sound  bool              `json:"sound"`
	Sounds []soundMessage    `json:"sounds,omitempty"`
	Bricks []engine.Brick    `json:"bricks,omitempty"`
}

// session is one browser game. Only the goroutine running run touches the
// engine and writes to the connection.
type session struct {
	id     string
	conn   *websocket.Conn
	eng    *engine.Engine
	ctrl   *controller.Controller
	sched  *audio.Scheduler
	rec    *audio.Recorder
	logger *log.Logger
	fps    int
	start  time.Time

	bricksSent    bool
	bricksVersion uint64
}

func (s *Server) play(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	player := r.URL.Query().Get("player")
	if player == "" {
		player = "web"
	}
	sess := s.newSession(conn, player)
	sess.logger.Info("session started", "remote", r.RemoteAddr, "player", player)
	sess.run(r.Context())
	sess.logger.Info("session ended", "score", sess.eng.Score())
}

func (s *Server) newSession(conn *websocket.Conn, player string) *session {
	id := uuid.NewString()
	logger := s.logger.With("session", id)
	rec := &audio.Recorder{}
	sched := audio.NewScheduler(rec, s.opts.Config.Sound.Enabled, logger)
	eng := engine.New(s.opts.Config, s.opts.Levels, engine.WithLogger(logger))
	ctrl := controller.New(eng, sched, s.opts.Config,
		controller.WithLogger(logger),
		controller.WithFinishHook(s.saveScore(player, logger)),
	)
	return &session{
		id:     id,
		conn:   conn,
		eng:    eng,
		ctrl:   ctrl,
		sched:  sched,
		rec:    rec,
		logger: logger,
		fps:    s.opts.FPS,
		start:  time.Now(),
	}
}

func (s *Server) saveScore(player string, logger *log.Logger) func(engine.Snapshot) {
	return func(snap engine.Snapshot) {
		if s.opts.Store == nil || snap.Score <= 0 {
			return
		}
		if _, err := s.opts.Store.SaveScore(s.opts.Pack, player, snap.Score, snap.Level+1); err != nil {
			logger.Warn("could not save score", "error", err)
		}
	}
}

func (ss *session) run(ctx context.Context) {
	defer ss.conn.Close()

	done := make(chan struct{})
	defer close(done)
	cmds := make(chan command, 16)
	errc := make(chan error, 1)
	go ss.readLoop(cmds, errc, done)

	cfg := ss.eng.Config()
	hello := helloMessage{
		Type:    "hello",
		Session: ss.id,
		Title:   ss.eng.Title(),
		Field: fieldInfo{
			Width:      cfg.Width(),
			Height:     cfg.Field.Height,
			Plane:      cfg.MainHeight(),
			BallRadius: cfg.Ball.Radius,
			PaddleHalf: cfg.Paddle.HalfWidth,
		},
	}
	if err := ss.write(hello); err != nil {
		return
	}

	ss.ctrl.NewGame(ss.millis(time.Now()))

	ticker := time.NewTicker(time.Second / time.Duration(ss.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			ss.close(websocket.CloseGoingAway, "server shutting down")
			return
		case err := <-errc:
			ss.logger.Debug("read loop ended", "error", err)
			return
		case cmd := <-cmds:
			if !ss.apply(cmd, ss.millis(time.Now())) {
				ss.close(websocket.CloseNormalClosure, "bye")
				return
			}
		case t := <-ticker.C:
			ss.ctrl.Frame(ss.millis(t))
			if err := ss.write(ss.frame()); err != nil {
				ss.logger.Debug("write failed", "error", err)
				return
			}
		}
	}
}

// readLoop decodes browser commands until the connection fails.
func (ss *session) readLoop(cmds chan<- command, errc chan<- error, done <-chan struct{}) {
	for {
		_, payload, err := ss.conn.ReadMessage()
		if err != nil {
			errc <- err
			return
		}
		var cmd command
		if err := json.Unmarshal(payload, &cmd); err != nil {
			ss.logger.Warn("discarding malformed message", "error", err)
			continue
		}
		select {
		case cmds <- cmd:
		case <-done:
			return
		}
	}
}

// apply runs a browser command. It reports false when the browser asked
// to end the session.
func (ss *session) apply(cmd command, now float64) bool {
	if cmd.Action == "move" {
		if cmd.X != nil {
			ss.ctrl.MoveTo(now, *cmd.X)
		}
		return true
	}

	action, ok := core.ParseAction(cmd.Action)
	if !ok {
		ss.logger.Warn("unknown action", "action", cmd.Action)
		return true
	}
	switch action {
	case core.ActionQuit:
		return false
	case core.ActionLeft:
		ss.ctrl.Left(now)
	case core.ActionRight:
		ss.ctrl.Right(now)
	case core.ActionRelease:
		ss.ctrl.Release(now)
	case core.ActionPause:
		ss.ctrl.TogglePause(now)
	case core.ActionNewGame:
		ss.ctrl.NewGame(now)
	case core.ActionNextLevel:
		if err := ss.ctrl.NextLevel(now); err != nil {
			ss.logger.Warn("next level failed", "error", err)
		}
	case core.ActionSound:
		ss.sched.SetEnabled(!ss.sched.Enabled())
	}
	return true
}

// frame builds the next frame. Bricks are included only when the layout
// changed since the last frame sent.
func (ss *session) frame() frameMessage {
	st := ss.ctrl.Status()
	msg := frameMessage{
		Type:   "frame",
		Status: st,
		Sound:  ss.sched.Enabled(),
	}
	for _, p := range ss.rec.Take() {
		msg.Sounds = append(msg.Sounds, soundMessage{Sample: p.Sample, DelayMs: p.Delay.Milliseconds()})
	}
	if !ss.bricksSent || st.BricksVersion != ss.bricksVersion {
		msg.Bricks = ss.eng.Bricks()
		ss.bricksSent = true
		ss.bricksVersion = st.BricksVersion
	}
	return msg
}

func (ss *session) write(v any) error {
	if err := ss.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return ss.conn.WriteJSON(v)
}

func (ss *session) close(code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	_ = ss.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}

func (ss *session) millis(t time.Time) float64 {
	return float64(t.Sub(ss.start)) / float64(time.Millisecond)
}
