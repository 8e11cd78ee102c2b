package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	penFg     = lipgloss.Color("#FFA500")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	penStyle   = lipgloss.NewStyle().Foreground(penFg)
)

// grayColor returns the terminal colour for an intensity in [0, 1].
func grayColor(v float64) lipgloss.Color {
	switch {
	case !(v > 0):
		v = 0
	case v > 1:
		v = 1
	}
	c := uint8(v*255 + 0.5)
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c, c, c))
}
