package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	bodyStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)

	activeDotStyle   = lipgloss.NewStyle().Foreground(colorFocus)
	inactiveDotStyle = lipgloss.NewStyle().Foreground(colorDim)

	retreatActiveStyle   = lipgloss.NewStyle().Foreground(colorMauve).Bold(true)
	retreatInactiveStyle = lipgloss.NewStyle().Foreground(colorDim)
	nextStyle            = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	finishStyle          = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)

	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
	helpSepStyle  = lipgloss.NewStyle().Foreground(colorDim)
)
