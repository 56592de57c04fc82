package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	strategyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75")).
			Width(14)

	durationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	productStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("141"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)

	barFilled = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	barEmpty  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
