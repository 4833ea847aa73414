package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arkanoid/internal/levels"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores     = 100 // Max scores to load
	boardChrome   = 8   // Title, tabs, borders and help around the table
	minBoardTable = 3
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPack key.Binding
	PrevPack key.Binding
	Close    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPack, k.PrevPack, k.Close}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextPack, k.PrevPack, k.Close}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPack: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next pack"),
		),
		PrevPack: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev pack"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "s"),
			key.WithHelp("esc/s", "back to game"),
		),
	}
}

// Scoreboard shows the high scores of each level pack inside a session.
type Scoreboard struct {
	packs  []string
	cursor int
	store  *storage.Store
	scores []storage.ScoreEntry
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
	closed bool
}

// NewScoreboard creates a scoreboard opened on the given pack. The pack
// is listed even when it is not a registered one, e.g. a level file.
func NewScoreboard(store *storage.Store, current string, width, height int) *Scoreboard {
	packs := []string{current}
	for _, p := range levels.List() {
		if p.Name != current {
			packs = append(packs, p.Name)
		}
	}

	b := &Scoreboard{
		packs:  packs,
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	b.table = b.createTable()
	b.loadScores()
	return b
}

// createTable creates a new table with appropriate columns.
func (b *Scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 9},
		{Title: "Level", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(b.height-boardChrome, minBoardTable)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Pack returns the pack being shown.
func (b *Scoreboard) Pack() string {
	return b.packs[b.cursor]
}

// Scores returns the loaded scores.
func (b *Scoreboard) Scores() []storage.ScoreEntry {
	return b.scores
}

// Closed reports whether the user left the scoreboard.
func (b *Scoreboard) Closed() bool {
	return b.closed
}

// loadScores loads scores for the current pack.
func (b *Scoreboard) loadScores() {
	b.scores = nil
	if b.store != nil {
		if scores, err := b.store.TopScores(b.Pack(), maxScores); err == nil {
			b.scores = scores
		}
	}

	rows := make([]table.Row, len(b.scores))
	for i, s := range b.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
			s.Player,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	b.table.SetRows(rows)
	b.table.GotoTop()
}

// Update handles a key press.
func (b *Scoreboard) Update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keys.Close):
		b.closed = true
		return nil

	case key.Matches(msg, b.keys.NextPack):
		b.cursor = (b.cursor + 1) % len(b.packs)
		b.loadScores()
		return nil

	case key.Matches(msg, b.keys.PrevPack):
		b.cursor = (b.cursor - 1 + len(b.packs)) % len(b.packs)
		b.loadScores()
		return nil
	}

	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return cmd
}

// Resize adapts the table to a new terminal size.
func (b *Scoreboard) Resize(width, height int) {
	b.width = width
	b.height = height
	b.table.SetHeight(max(height-boardChrome, minBoardTable))
	b.help.Width = width
}

// View renders the scoreboard.
func (b *Scoreboard) View() string {
	var sb strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	sb.WriteString(lipgloss.PlaceHorizontal(b.width, lipgloss.Center, titleStyle.Render("HIGH SCORES")))
	sb.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := tabStyle.
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	tabs := make([]string, len(b.packs))
	for i, p := range b.packs {
		if i == b.cursor {
			tabs[i] = activeTabStyle.Render(p)
		} else {
			tabs[i] = tabStyle.Render(p)
		}
	}
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(tabLine) > b.width {
		// Just show current pack with arrows
		tabLine = fmt.Sprintf("< %s >", b.Pack())
	}
	sb.WriteString(lipgloss.PlaceHorizontal(b.width, lipgloss.Center, tabLine))
	sb.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	sb.WriteString(lipgloss.PlaceHorizontal(b.width, lipgloss.Center, tableStyle.Render(b.tableContent())))
	sb.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	sb.WriteString(helpStyle.Render(b.help.View(b.keys)))

	return sb.String()
}

// tableContent renders the table or an empty message.
func (b *Scoreboard) tableContent() string {
	if b.store == nil {
		return "Scores are not available."
	}
	if len(b.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		return emptyStyle.Render("No scores recorded yet.\nFinish a game to set a high score!")
	}
	return b.table.View()
}
