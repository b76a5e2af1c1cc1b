package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent = lipgloss.Color("12")
	colorError  = lipgloss.Color("9")
	colorMuted  = lipgloss.Color("8")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	helpStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorError)

	// doneStyle renders the titles of completed todos.
	doneStyle = lipgloss.NewStyle().Foreground(colorMuted).Strikethrough(true)

	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Padding(1, 2)
)
