package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-diver/internal/config"
	"github.com/vovakirdan/tui-diver/internal/storage"
)

const maxScores = 100

// ScoreSource is the part of the score history the scoreboard reads.
type ScoreSource interface {
	TopScores(tier config.Tier, limit int) ([]storage.ScoreEntry, error)
	GetTierStats(tier config.Tier) (*storage.TierStats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextTier key.Binding
	PrevTier key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTier, k.PrevTier, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTier, k.PrevTier},
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
		NextTier: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tier"),
		),
		PrevTier: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev tier"),
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

// ScoreboardModel shows the game history of one tier at a time.
type ScoreboardModel struct {
	tiers    []config.Tier
	cursor   int
	source   ScoreSource
	scores   []storage.ScoreEntry
	stats    *storage.TierStats
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard starting at the given tier.
func NewScoreboardModel(source ScoreSource, start config.Tier, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		tiers:  config.Tiers(),
		source: source,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for i, t := range m.tiers {
		if t == start {
			m.cursor = i
		}
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	dateWidth := m.width - 4 - 6 - 10 - 8 - 8
	if dateWidth > 20 {
		dateWidth = 20
	}
	if dateWidth < 12 {
		dateWidth = 12
	}
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Pearls", Width: 8},
		{Title: "Date", Width: dateWidth},
	}

	height := m.height - 10
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
		Background(lipgloss.Color("24")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the selected tier's history.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.source != nil {
		tier := m.tiers[m.cursor]
		if scores, err := m.source.TopScores(tier, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.source.GetTierStats(tier); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Pearls),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Tier returns the tier on display.
func (m ScoreboardModel) Tier() config.Tier {
	return m.tiers[m.cursor]
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTier):
			m.cursor = (m.cursor + 1) % len(m.tiers)
			m.load()
			return m, nil
		case key.Matches(msg, m.keys.PrevTier):
			m.cursor = (m.cursor - 1 + len(m.tiers)) % len(m.tiers)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	b.WriteString(centerText(titleStyle.Render("DEEP DIVER - LOGBOOK"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.stats != nil && m.stats.GamesCount > 0 {
		line := fmt.Sprintf("dives %d   best %d   average %.0f   pearls %d",
			m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.Pearls)
		b.WriteString(centerText(muted.Render(line), m.width))
		b.WriteString("\n")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(box.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")
	b.WriteString(muted.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tab := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24")).
		Padding(0, 1)

	tabs := make([]string, len(m.tiers))
	for i, t := range m.tiers {
		if i == m.cursor {
			tabs[i] = active.Render(t.Label())
		} else {
			tabs[i] = tab.Render(t.Label())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return empty.Render("No dives logged at this tier yet.")
	}
	return m.table.View()
}

// centerText pads text to the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunScoreboard shows the scoreboard until the user leaves it.
func RunScoreboard(source ScoreSource, start config.Tier, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(source, start, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
