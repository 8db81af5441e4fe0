package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen  = lipgloss.Color("#98971A")
	colorYellow = lipgloss.Color("#D79921")
	colorRed    = lipgloss.Color("#CC241D")
	colorSubtle = lipgloss.Color("#665C54")
	colorFG     = lipgloss.Color("#EBDBB2")
	colorDim    = lipgloss.Color("#504945")

	styleTitle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	styleDivider = lipgloss.NewStyle().
			Foreground(colorDim)

	styleQuery = lipgloss.NewStyle().
			Foreground(colorFG).
			Bold(true)

	styleSelectedItem = lipgloss.NewStyle().
				Foreground(colorYellow).
				Bold(true)

	styleNormalItem = lipgloss.NewStyle().
			Foreground(colorFG)

	stylePreview = lipgloss.NewStyle().
			Foreground(colorSubtle)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleHint = lipgloss.NewStyle().
			Foreground(colorSubtle)
)
