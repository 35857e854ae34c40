package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/langton/internal/core"
	"github.com/vovakirdan/langton/internal/storage"
)

// History view layout constants
const (
	historyMaxRows  = 100 // Max runs to load
	historyMinWidth = 56  // Minimum table width
)

// HistoryKeyMap defines the key bindings for the run history view.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	SortTab key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.SortTab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.SortTab, k.Quit},
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
		SortTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "recent/longest"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// historySort selects which ordering the table shows.
type historySort int

const (
	sortRecent historySort = iota
	sortLongest
)

// HistoryModel is the Bubble Tea model for the run history screen.
type HistoryModel struct {
	store    *storage.Store
	table    table.Model
	keys     HistoryKeyMap
	help     help.Model
	sort     historySort
	width    int
	height   int
	loadErr  error
	quitting bool
}

// NewHistoryModel creates the history view backed by the given store.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.buildTable()
	m.reload()
	return m
}

// buildTable constructs the table widget sized to the current window.
func (m *HistoryModel) buildTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 17},
		{Title: "Grid", Width: 10},
		{Title: "Steps", Width: 10},
		{Title: "End", Width: 10},
		{Title: "Time", Width: 7},
	}

	height := core.Max(m.height-6, 3)
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("7"))
	t.SetStyles(styles)

	return t
}

// reload fetches runs from the store with the current ordering.
func (m *HistoryModel) reload() {
	if m.store == nil {
		m.loadErr = fmt.Errorf("no run store available")
		return
	}

	var (
		runs []storage.RunEntry
		err  error
	)
	if m.sort == sortLongest {
		runs, err = m.store.LongestRuns(historyMaxRows)
	} else {
		runs, err = m.store.RecentRuns(historyMaxRows)
	}
	if err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil

	rows := make([]table.Row, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, table.Row{
			r.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			fmt.Sprintf("%d", r.Steps),
			r.EndReason,
			fmt.Sprintf("%ds", r.Duration),
		})
	}
	m.table.SetRows(rows)
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.SortTab):
			if m.sort == sortRecent {
				m.sort = sortLongest
			} else {
				m.sort = sortRecent
			}
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(core.Max(m.height-6, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	title := "Run History: Recent"
	if m.sort == sortLongest {
		title = "Run History: Longest"
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	if m.loadErr != nil {
		return titleStyle.Render(title) + "\n\n  " + m.loadErr.Error() + "\n"
	}

	return titleStyle.Render(title) + "\n" +
		m.table.View() + "\n" +
		m.help.View(m.keys)
}

// RunHistory starts the interactive history viewer.
func RunHistory(store *storage.Store, width, height int) error {
	if width < historyMinWidth {
		width = historyMinWidth
	}
	model := NewHistoryModel(store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
