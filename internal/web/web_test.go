package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/levels"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

func testServer(t *testing.T, store *storage.Store) *Server {
	t.Helper()
	set, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin() error: %v", err)
	}
	return NewServer(Options{
		Config: config.DefaultConfig(),
		Levels: set,
		Pack:   "classic",
		Store:  store,
		FPS:    50,
	})
}

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHome(t *testing.T) {
	h := testServer(t, nil).Routes()

	rec := get(t, h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d, expected 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{"<title>Arkanoid</title>", "<canvas", "/ws", "5 levels"} {
		if !strings.Contains(body, want) {
			t.Errorf("page is missing %q", want)
		}
	}
}

func TestHomeEscapesTitle(t *testing.T) {
	srv := NewServer(Options{Levels: levels.Set{Title: "<b>bold</b>"}})

	body := get(t, srv.Routes(), "/").Body.String()
	if strings.Contains(body, "<b>bold</b>") {
		t.Error("title should be escaped")
	}
	if !strings.Contains(body, "&lt;b&gt;bold&lt;/b&gt;") {
		t.Error("escaped title not found")
	}
}

func TestListLevels(t *testing.T) {
	rec := get(t, testServer(t, nil).Routes(), "/api/levels")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/levels = %d", rec.Code)
	}

	var resp levelsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Pack != "classic" || len(resp.Levels) != 5 {
		t.Errorf("got pack %q with %d levels, expected classic with 5", resp.Pack, len(resp.Levels))
	}
	if resp.Levels[0].Title != "Warm Up" || resp.Levels[0].Bricks != 80 {
		t.Errorf("first level = %+v", resp.Levels[0])
	}

	found := false
	for _, p := range resp.Packs {
		if p.Name == "classic" {
			found = true
		}
	}
	if !found {
		t.Errorf("packs %+v do not include classic", resp.Packs)
	}
}

func TestListScores(t *testing.T) {
	store := testStore(t)
	for i, score := range []int{300, 900, 600} {
		if _, err := store.SaveScore("classic", "p", score, i+1); err != nil {
			t.Fatalf("SaveScore() error: %v", err)
		}
	}
	if _, err := store.SaveScore("other", "p", 5000, 1); err != nil {
		t.Fatalf("SaveScore() error: %v", err)
	}
	h := testServer(t, store).Routes()

	tests := []struct {
		name     string
		target   string
		pack     string
		expected []int
	}{
		{"default pack", "/api/scores", "classic", []int{900, 600, 300}},
		{"limit", "/api/scores?limit=2", "classic", []int{900, 600}},
		{"bad limit", "/api/scores?limit=x", "classic", []int{900, 600, 300}},
		{"other pack", "/api/scores?pack=other", "other", []int{5000}},
		{"empty pack", "/api/scores?pack=none", "none", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("GET %s = %d", tt.target, rec.Code)
			}
			var resp scoresResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Pack != tt.pack {
				t.Errorf("pack = %q, expected %q", resp.Pack, tt.pack)
			}
			if len(resp.Scores) != len(tt.expected) {
				t.Fatalf("got %d scores, expected %d", len(resp.Scores), len(tt.expected))
			}
			for i, want := range tt.expected {
				if resp.Scores[i].Score != want {
					t.Errorf("score %d = %d, expected %d", i, resp.Scores[i].Score, want)
				}
			}
		})
	}
}

func TestListScoresWithoutStore(t *testing.T) {
	rec := get(t, testServer(t, nil).Routes(), "/api/scores")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /api/scores = %d, expected 503", rec.Code)
	}
}

func dial(t *testing.T, srv *Server) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?player=tester"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if resp != nil {
		resp.Body.Close()
	}
	if err != nil {
		t.Fatalf("failed to open websocket connection: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) frameMessage {
	t.Helper()
	var msg frameMessage
	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("SetReadDeadline: %v", err)
	}
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if msg.Type != "frame" {
		t.Fatalf("message type = %q, expected frame", msg.Type)
	}
	return msg
}

func readHello(t *testing.T, conn *websocket.Conn) helloMessage {
	t.Helper()
	var hello helloMessage
	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("SetReadDeadline: %v", err)
	}
	if err := conn.ReadJSON(&hello); err != nil {
		t.Fatalf("read hello: %v", err)
	}
	return hello
}

func TestSessionHelloAndFrames(t *testing.T) {
	conn := dial(t, testServer(t, nil))

	hello := readHello(t, conn)
	if hello.Type != "hello" {
		t.Fatalf("first message type = %q, expected hello", hello.Type)
	}
	if _, err := uuid.Parse(hello.Session); err != nil {
		t.Errorf("session id %q is not a uuid: %v", hello.Session, err)
	}
	if hello.Field.Width != 641 || hello.Field.Plane != 652 {
		t.Errorf("field = %+v", hello.Field)
	}

	first := readFrame(t, conn)
	if len(first.Bricks) == 0 {
		t.Error("first frame should carry the brick layout")
	}
	if !first.Status.Waiting {
		t.Error("a new session should be waiting for the first level")
	}

	second := readFrame(t, conn)
	if second.Status.BricksVersion == first.Status.BricksVersion && second.Bricks != nil {
		t.Error("unchanged layout should not be resent")
	}
}

func TestSessionCommands(t *testing.T) {
	conn := dial(t, testServer(t, nil))
	readHello(t, conn)

	// Malformed and unknown messages are skipped
	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.WriteJSON(command{Action: "jump"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.WriteJSON(command{Action: "pause"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		if time.Now().After(deadline) {
			t.Fatal("never saw a paused frame")
		}
		if readFrame(t, conn).Status.Paused {
			break
		}
	}

	if err := conn.WriteJSON(command{Action: "sound"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	for {
		if time.Now().After(deadline) {
			t.Fatal("never saw sound turned off")
		}
		if !readFrame(t, conn).Sound {
			break
		}
	}
}

func TestSessionQuit(t *testing.T) {
	conn := dial(t, testServer(t, nil))
	readHello(t, conn)

	if err := conn.WriteJSON(command{Action: "quit"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("SetReadDeadline: %v", err)
	}
	for {
		_, _, err := conn.ReadMessage()
		if err == nil {
			continue
		}
		if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
			t.Errorf("read error = %v, expected normal closure", err)
		}
		return
	}
}
