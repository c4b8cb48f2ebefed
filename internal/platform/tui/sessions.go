package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilefield/internal/storage"
)

// maxSessions is how many recorded sessions the browser loads.
const maxSessions = 200

// SessionsKeyMap defines the key bindings for the sessions browser.
type SessionsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SessionsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Reload, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SessionsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Reload, k.Quit},
	}
}

// DefaultSessionsKeyMap returns default key bindings.
func DefaultSessionsKeyMap() SessionsKeyMap {
	return SessionsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "scroll down"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SessionsModel is the Bubble Tea model for browsing recorded sessions.
type SessionsModel struct {
	store    *storage.Store
	sessions []storage.SessionRecord
	summary  storage.Summary
	loadErr  error
	table    table.Model
	help     help.Model
	keys     SessionsKeyMap
	width    int
	height   int
	quitting bool
}

// NewSessionsModel creates a sessions browser reading from store.
func NewSessionsModel(store *storage.Store, width, height int) SessionsModel {
	h := help.New()
	h.ShowAll = false

	m := SessionsModel{
		store:  store,
		keys:   DefaultSessionsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *SessionsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Started", Width: 16},
		{Title: "Length", Width: 8},
		{Title: "Frames", Width: 7},
		{Title: "Bytes", Width: 10},
		{Title: "Writes", Width: 7},
		{Title: "B/frame", Width: 8},
		{Title: "End", Width: 6},
	}

	height := m.height - 8 // Leave room for header, summary, and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("6")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads sessions and the summary from the store.
func (m *SessionsModel) load() {
	m.loadErr = nil
	if m.store == nil {
		m.sessions = nil
		m.updateTableRows()
		return
	}

	sessions, err := m.store.RecentSessions(maxSessions)
	if err != nil {
		m.loadErr = err
		sessions = nil
	}
	m.sessions = sessions

	if sum, err := m.store.Summarize(); err == nil {
		m.summary = sum
	} else if m.loadErr == nil {
		m.loadErr = err
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded sessions.
func (m *SessionsModel) updateTableRows() {
	m.table.SetRows(SessionRows(m.sessions))
	m.table.GotoTop()
}

// SessionRows formats sessions as table rows.
func SessionRows(sessions []storage.SessionRecord) []table.Row {
	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		perFrame := "-"
		if s.Frames > 0 {
			perFrame = fmt.Sprintf("%d", s.Bytes/int64(s.Frames))
		}
		rows[i] = table.Row{
			s.StartedAt.Local().Format("Jan 02 15:04:05"),
			s.Duration.Round(100 * time.Millisecond).String(),
			fmt.Sprintf("%d", s.Frames),
			fmt.Sprintf("%d", s.Bytes),
			fmt.Sprintf("%d", s.Writes),
			perFrame,
			s.EndReason,
		}
	}
	return rows
}

// Init initializes the sessions model.
func (m SessionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the sessions browser.
func (m SessionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Reload):
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
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

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the sessions browser.
func (m SessionsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("RECORDED SESSIONS"))
	b.WriteString("\n")

	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(summaryStyle.Render(SummaryLine(m.summary)))
	b.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("Error: " + m.loadErr.Error()))
		b.WriteString("\n")
	case len(m.sessions) == 0:
		b.WriteString("No sessions recorded yet. Run 'tilefield view --record' to record one.\n")
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// SummaryLine formats aggregate statistics on one line.
func SummaryLine(sum storage.Summary) string {
	avg := int64(0)
	if sum.Frames > 0 {
		avg = sum.Bytes / sum.Frames
	}
	return fmt.Sprintf("%d sessions, %d frames, %d bytes (%d per frame), %d writes, %s total",
		sum.Sessions, sum.Frames, sum.Bytes, avg, sum.Writes, sum.TotalDuration.Round(time.Second))
}

// RunSessions starts the interactive sessions browser.
func RunSessions(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewSessionsModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
