package timer

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"worklog/internal/ui/theme"
)

// Model is the live elapsed display shown after `worklog start`.
// It is purely cosmetic: quitting it leaves the stored session
// running, to be closed later by `worklog stop`.
type Model struct {
	tag       string
	startedAt time.Time
	now       time.Time
	keys      keyMap
	help      help.Model
	width     int
}

type tickMsg time.Time

type keyMap struct {
	Detach key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Detach: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "detach (activity keeps running)"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Detach}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Detach}}
}

func New(tag string, startedAt time.Time) Model {
	return Model{
		tag:       tag,
		startedAt: startedAt,
		now:       startedAt,
		keys:      defaultKeys(),
		help:      help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tickMsg:
		m.now = time.Time(msg).UTC()
		return m, tick()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Detach) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	elapsed := m.now.Sub(m.startedAt).Truncate(time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	body := theme.Title.Render("tracking "+m.tag) + "\n\n" +
		theme.Muted.Render("elapsed  ") + theme.Elapsed.Render(formatDuration(elapsed)) + "\n\n" +
		m.help.View(m.keys)
	pane := theme.Pane.Render(body)
	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, pane)
	}
	return pane
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func formatDuration(d time.Duration) string {
	total := int64(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
