package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	statusStyle     = lipgloss.NewStyle().Faint(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	navActiveStyle   = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	navInactiveStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)
