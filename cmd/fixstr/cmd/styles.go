package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorOK      = lipgloss.Color("#10B981")
	colorWarn    = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(12)

	okStyle = lipgloss.NewStyle().
		Foreground(colorOK)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorWarn)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	contentStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

// field renders a "label value" line
func field(label string, value any) string {
	return labelStyle.Render(label) + " " + fmt.Sprint(value)
}

// pad pads s with spaces to width terminal cells
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// clip shortens s to width terminal cells
func clip(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
