package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("212")
	mutedColor  = lipgloss.Color("245")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			PaddingLeft(2).
			MarginBottom(1)

	focusMarkerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(accentColor)

	entryNameStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1).
			PaddingLeft(2)
)
