package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Renderer converts a Screen to styled text. Styles are created once per
// color. A Renderer belongs to one session and is not safe for concurrent use.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles map[core.Color]lipgloss.Style
}

// NewRenderer creates a renderer. A nil lipgloss renderer uses the default one.
func NewRenderer(lg *lipgloss.Renderer) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		lg:     lg,
		styles: make(map[core.Color]lipgloss.Style),
	}
}

func (r *Renderer) style(c core.Color) lipgloss.Style {
	if s, ok := r.styles[c]; ok {
		return s
	}
	s := r.lg.NewStyle()
	if hex := c.Hex(); hex != "" {
		s = s.Foreground(lipgloss.Color(hex))
	}
	r.styles[c] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one escape sequence.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, run := range s.Runs(y) {
			sb.WriteString(r.style(run.Color).Render(run.Text))
		}
	}
	return sb.String()
}
