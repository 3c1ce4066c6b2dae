package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the screen uses.
// https://catppuccin.com/palette
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorMuted   = colorOverlay1
	colorDim     = colorSurface1
)

// paletteColors returns every color the screen draws with.
func paletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorPink, colorMauve, colorGreen, colorLavender,
		colorText, colorSubtext0, colorOverlay1, colorSurface1,
	}
}
