package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette.
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface0 lipgloss.Color = "#313244"
)

var (
	canvasStyle = lipgloss.NewStyle().Foreground(colorText)
	statusStyle = lipgloss.NewStyle().Foreground(colorOverlay1).Background(colorSurface0)
	errorStyle  = lipgloss.NewStyle().Foreground(colorRed).Background(colorSurface0)
	runStyle    = lipgloss.NewStyle().Foreground(colorGreen)
)
