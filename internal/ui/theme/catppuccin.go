package theme

import "github.com/charmbracelet/lipgloss"

var (
	Surface1 = lipgloss.Color("#45475a")
	Subtext0 = lipgloss.Color("#a6adc8")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")

	Title   = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted   = lipgloss.NewStyle().Foreground(Subtext0)
	Elapsed = lipgloss.NewStyle().Foreground(Green).Bold(true)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Padding(1, 2)
)
