package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockbreak/internal/storage"
)

// History layout constants
const (
	minWidthForSummary = 90  // Minimum width to show the summary beside the table
	summaryWidth       = 26  // Width of the summary panel
	maxRounds          = 200 // Max rounds to load
)

// HistoryKeyMap defines the key bindings for the round history.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Session key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Session, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Session, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Session: key.NewBinding(
			key.WithKeys("tab", "s"),
			key.WithHelp("tab", "this session only"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing the round journal.
type HistoryModel struct {
	store       *storage.Store
	rounds      []storage.Round
	stats       *storage.JournalStats
	filter      string // Session shown when filtering, empty shows all
	filtering   bool
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	showSummary bool
}

// NewHistoryModel creates a history view. session is the session the
// filter key narrows the list to.
func NewHistoryModel(store *storage.Store, session string, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:       store,
		filter:      session,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSummary: width >= minWidthForSummary,
	}

	m.table = m.createTable()
	m.loadRounds()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Ended", Width: 14},
		{Title: "Ticks", Width: 8},
		{Title: "Blocks", Width: 7},
		{Title: "Bounces", Width: 8},
		{Title: "Session", Width: 10},
	}

	// Give the session column whatever space is left
	tableWidth := m.width - 6
	if m.showSummary {
		tableWidth -= summaryWidth + 4
	}
	used := 0
	for _, c := range columns[:len(columns)-1] {
		used += c.Width + 2
	}
	if rest := tableWidth - used; rest > 10 {
		columns[len(columns)-1].Width = min(rest, 36)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

// loadRounds reloads rounds and stats from the journal.
func (m *HistoryModel) loadRounds() {
	m.rounds, m.stats, m.loadErr = nil, nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	if m.filtering {
		m.rounds, m.loadErr = m.store.SessionRounds(m.filter, maxRounds)
	} else {
		m.rounds, m.loadErr = m.store.RecentRounds(maxRounds)
	}
	if m.loadErr == nil {
		m.stats, m.loadErr = m.store.Stats()
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded rounds.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.EndedAt.Local().Format("Jan 02 15:04"),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.BlocksDestroyed),
			fmt.Sprintf("%d", r.PaddleBounces),
			r.Session,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Session):
			if m.filter != "" {
				m.filtering = !m.filtering
				m.loadRounds()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSummary = m.width >= minWidthForSummary
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "ROUND HISTORY"
	if m.filtering {
		title = fmt.Sprintf("ROUND HISTORY - %s", m.filter)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := panel.Render(m.renderTableContent())
	if m.showSummary {
		summary := panel.Width(summaryWidth).Render(m.renderSummary())
		content = lipgloss.JoinHorizontal(lipgloss.Top, summary, "  ", content)
	}
	b.WriteString(content)

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty/error message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not read the journal:\n" + m.loadErr.Error())
	case len(m.rounds) == 0:
		return emptyStyle.Render("No rounds recorded yet.\nPlay until the ball gets past you!")
	}
	return m.table.View()
}

// renderSummary renders the journal aggregates.
func (m HistoryModel) renderSummary() string {
	if m.stats == nil {
		return "Summary\n\nno data"
	}
	s := m.stats

	var b strings.Builder
	b.WriteString("Summary\n")
	b.WriteString(strings.Repeat("-", summaryWidth-4))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Rounds:    %d\n", s.Rounds)
	fmt.Fprintf(&b, "Sessions:  %d\n", s.Sessions)
	fmt.Fprintf(&b, "Blocks:    %d\n", s.TotalBlocks)
	fmt.Fprintf(&b, "Most:      %d\n", s.MostBlocks)
	fmt.Fprintf(&b, "Longest:   %d ticks\n", s.LongestRound)
	fmt.Fprintf(&b, "Average:   %.0f ticks\n", s.AvgTicks)
	if !s.LastPlayed.IsZero() {
		fmt.Fprintf(&b, "Last:      %s", s.LastPlayed.Local().Format("Jan 02 15:04"))
	}
	return b.String()
}

// IsQuitting returns true if the user closed the view.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen until the user quits.
func RunHistory(store *storage.Store, session string, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, session, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
