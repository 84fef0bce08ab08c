package tui

import (
	"github.com/charmbracelet/lipgloss"

	"toryn/internal/geom"
)

var (
	inkFg    = lipgloss.Color("#E6E6E6")
	mutedFg  = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg = lipgloss.Color("#7C3AED")
	warnFg   = lipgloss.Color("#F87171")
	cursorFg = lipgloss.Color("#FFA500")
	frameCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(inkFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(frameCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(mutedFg)
	warnStyle  = lipgloss.NewStyle().Foreground(warnFg)
	hoverStyle = lipgloss.NewStyle().Foreground(cursorFg)
)

// methodBadge marks the incremental rasterizer, which drops vertical lines.
func methodBadge(m geom.Method) string {
	if m == geom.Incremental {
		return warnStyle.Render(m.String())
	}
	return dimStyle.Render(m.String())
}
