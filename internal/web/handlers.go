package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/vovakirdan/tui-arkanoid/internal/levels"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

// levelInfo describes one level of the served set.
type levelInfo struct {
	Index  int    `json:"index"`
	Title  string `json:"title"`
	Bricks int    `json:"bricks"`
}

type levelsResponse struct {
	Pack   string            `json:"pack"`
	Title  string            `json:"title"`
	Levels []levelInfo       `json:"levels"`
	Packs  []levels.PackInfo `json:"packs"`
}

type scoresResponse struct {
	Pack   string               `json:"pack"`
	Scores []storage.ScoreEntry `json:"scores"`
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	render(w, r, indexPage(pageData{
		Title:  s.title(),
		Pack:   s.opts.Pack,
		Levels: s.opts.Levels.Len(),
	}))
}

func (s *Server) listLevels(w http.ResponseWriter, _ *http.Request) {
	set := s.opts.Levels
	resp := levelsResponse{
		Pack:   s.opts.Pack,
		Title:  s.title(),
		Levels: make([]levelInfo, 0, set.Len()),
		Packs:  levels.List(),
	}
	for i, lvl := range set.Levels {
		resp.Levels = append(resp.Levels, levelInfo{Index: i, Title: lvl.Title, Bricks: lvl.BrickCount()})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) listScores(w http.ResponseWriter, r *http.Request) {
	if s.opts.Store == nil {
		http.Error(w, "scores are not available", http.StatusServiceUnavailable)
		return
	}
	pack := r.URL.Query().Get("pack")
	if pack == "" {
		pack = s.opts.Pack
	}
	limit := parseInt(r.URL.Query().Get("limit"), 10)
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}

	scores, err := s.opts.Store.TopScores(pack, limit)
	if err != nil {
		s.logger.Error("cannot load scores", "pack", pack, "error", err)
		http.Error(w, "cannot load scores", http.StatusInternalServerError)
		return
	}
	if scores == nil {
		scores = []storage.ScoreEntry{}
	}
	writeJSON(w, http.StatusOK, scoresResponse{Pack: pack, Scores: scores})
}

func (s *Server) title() string {
	if s.opts.Levels.Title != "" {
		return s.opts.Levels.Title
	}
	return "Arkanoid"
}

func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func parseInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
