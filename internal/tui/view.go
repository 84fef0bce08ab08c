package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.layout()

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lay.contentH-2)
	}

	// Header
	header := titleStyle.Render(" toryn ─ raster primitives ") +
		dimStyle.Render(" "+m.active.Name()+"  ") + methodBadge(m.method) +
		dimStyle.Render(fmt.Sprintf("  steps=%d", m.curve.Steps))
	header = lipgloss.NewStyle().Width(lay.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	var frameErr error
	if m.showStats {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lay.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lay.mapH-2, 20))
		statsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(lay.mapW, lay.mapH, lipgloss.Center, lipgloss.Center, statsBox)
	} else {
		var canvas string
		if m.pasteMode {
			m.ta.SetWidth(lay.mapW)
			m.ta.SetHeight(min(lay.mapH, 12))
			canvas = m.ta.View()
		} else {
			canvas, frameErr = m.renderCanvas(lay.mapW, lay.mapH)
		}
		mapView = lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).Render(canvas)
	}

	// Body row
	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	if frameErr != nil {
		status += warnStyle.Render(" " + firstLine(frameErr) + " ")
	}
	// raster coords of the hovered cell at bottom-right
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  x=%d y=%d  ", m.hoverPt.X, m.hoverPt.Y))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, lay.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(lay.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lay.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"1-5 demo",
		"m method",
		"+/- steps",
		"click point",
		"c clear",
		"Tab sidebar",
		"Enter open",
		"p paste",
		"a stats",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
