package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/invaders/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 40  // Below this the date column is dropped
	maxScores     = 100 // Max scores to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Refresh, k.Quit},
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
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	store     *storage.Store
	gameID    string
	key       string // High score key
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	highScore int
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
}

// NewScoreboardModel creates a new scoreboard model for one game.
func NewScoreboardModel(store *storage.Store, gameID, highScoreKey string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:  store,
		gameID: gameID,
		key:    highScoreKey,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table with columns sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Wave", Width: 6},
	}

	tableWidth := m.width - 6 // Border and padding
	if tableWidth >= tableMinWidth {
		columns = append(columns, table.Column{Title: "Date", Width: min(tableWidth-22, 20)})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, stats and help
	)

	// Table styles
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

// load reads scores, stats and the high score from the store.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.highScore, m.loadErr = nil, nil, 0, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	if m.scores, m.loadErr = m.store.TopScores(m.gameID, maxScores); m.loadErr != nil {
		m.updateTableRows()
		return
	}
	if m.stats, m.loadErr = m.store.GetGameStats(m.gameID); m.loadErr != nil {
		m.updateTableRows()
		return
	}
	m.highScore, m.loadErr = m.store.HighScore(m.key)
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	withDate := len(m.table.Columns()) > 3
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Wave),
		}
		if withDate {
			row = append(row, s.CreatedAt.Format("Jan 02 15:04"))
		}
		rows[i] = row
	}
	m.table.SetRows(rows)

	// Reset cursor to top
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
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
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

	b.WriteString(titleStyle.Render(centerText("HIGH SCORES - SPACE INVADERS", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the stored history.
func (m ScoreboardModel) statsLine() string {
	if m.loadErr != nil {
		return "Error: " + m.loadErr.Error()
	}
	if m.stats == nil || m.stats.GamesCount == 0 {
		return fmt.Sprintf("Best: %d", m.highScore)
	}
	return fmt.Sprintf("Best: %d  |  Games: %d  |  Avg: %.0f  |  Best wave: %d",
		m.highScore, m.stats.GamesCount, m.stats.AvgScore, m.stats.BestWave)
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}

	return m.table.View()
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(store *storage.Store, gameID, highScoreKey string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, gameID, highScoreKey, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
