package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/sushi-bros/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForStats = 80  // Minimum width to show the stats panel
	statsWidth       = 24  // Width of the stats panel
	maxScores        = 100 // Max scores to load
)

var numbers = message.NewPrinter(language.English)

// FormatScore renders a score with thousands separators.
func FormatScore(n int) string {
	return numbers.Sprintf("%d", n)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Filter},
		{k.Back, k.Quit},
	}
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
		Filter: key.NewBinding(
			key.WithKeys("tab", "f"),
			key.WithHelp("tab/f", "filter by level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	gameID    string
	title     string
	levels    []string // level names, index = level
	filter    int      // -1 = all levels
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	showStats bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, gameID, title string, levels []string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		gameID:    gameID,
		title:     title,
		levels:    levels,
		filter:    -1,
		store:     store,
		keys:      DefaultScoreboardKeyMap(),
		help:      h,
		width:     width,
		height:    height,
		showStats: width >= minWidthForStats,
	}

	m.table = m.createTable()
	m.loadScores()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Level", Width: 14},
		{Title: "Date", Width: 14},
	}

	tableWidth := m.width - 4
	if m.showStats {
		tableWidth -= statsWidth + 3
	}
	if extra := tableWidth - 54; extra > 0 {
		columns[2].Width += min(extra, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
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

// loadScores reloads scores and stats from the store.
func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	m.stats = nil
	if m.store != nil {
		if scores, err := m.store.TopScores(m.gameID, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(m.gameID); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// visible returns the scores matching the level filter.
func (m ScoreboardModel) visible() []storage.ScoreEntry {
	if m.filter < 0 {
		return m.scores
	}
	out := make([]storage.ScoreEntry, 0, len(m.scores))
	for _, s := range m.scores {
		if s.Level == m.filter {
			out = append(out, s)
		}
	}
	return out
}

func (m ScoreboardModel) levelName(level int) string {
	if level >= 0 && level < len(m.levels) {
		return m.levels[level]
	}
	return fmt.Sprintf("Level %d", level+1)
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	scores := m.visible()
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			FormatScore(s.Score),
			m.levelName(s.Level),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Filter):
			m.filter++
			if m.filter >= len(m.levels) {
				m.filter = -1
			}
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showStats = m.width >= minWidthForStats
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := fmt.Sprintf("HIGH SCORES - %s", m.title)
	if m.filter >= 0 {
		title += " - " + m.levelName(m.filter)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableBox := boxStyle.Render(m.renderTableContent())

	if m.showStats {
		stats := boxStyle.Width(statsWidth).Render(m.renderStats())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableBox, "  ", stats))
	} else {
		b.WriteString(centerText(tableBox, m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStats renders the aggregate panel.
func (m ScoreboardModel) renderStats() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "No runs yet"
	}
	lines := []string{
		"Stats",
		strings.Repeat("-", statsWidth-4),
		fmt.Sprintf("Runs:  %s", FormatScore(m.stats.GamesCount)),
		fmt.Sprintf("Best:  %s", FormatScore(m.stats.HighScore)),
		fmt.Sprintf("Avg:   %s", FormatScore(int(m.stats.AvgScore))),
		fmt.Sprintf("Reach: %s", m.levelName(m.stats.BestLevel)),
	}
	if !m.stats.LastPlayed.IsZero() {
		lines = append(lines, fmt.Sprintf("Last:  %s", m.stats.LastPlayed.Format("Jan 02")))
	}
	return strings.Join(lines, "\n")
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.visible()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nPlay a run to set a high score!")
	}

	return m.table.View()
}

// centerText pads s so it sits in the middle of width columns.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(store *storage.Store, gameID, title string, levels []string, width, height int) error {
	model := NewScoreboardModel(store, gameID, title, levels, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
