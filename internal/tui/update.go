package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"toryn/internal/demo"
	"toryn/internal/geom"
	"toryn/internal/scene"
)

const maxSteps = 1000

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		now := time.Time(msg)
		if a, ok := m.active.(demo.Animated); ok && !m.lastTick.IsZero() {
			a.Update(now.Sub(m.lastTick))
		}
		m.lastTick = now
		return m, tick()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				w := strings.TrimSpace(m.ta.Value())
				if w == "" {
					m.status = "paste: empty"
					return m, nil
				}
				sc, err := scene.ParseWKT(w)
				if err != nil {
					m.status = "wkt error: " + err.Error()
					return m, nil
				}
				m.selPath = ""
				m.active = demo.FromScene("<pasted>", sc)
				m.status = "rendered WKT  counts: " + sc.Summary()
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch key := msg.String(); key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1", "2", "3", "4", "5":
			i, _ := strconv.Atoi(key)
			m.active = m.demos[i-1]
			m.status = "demo: " + m.active.Name()
		case "m":
			if m.method == geom.Midpoint {
				m.method = geom.Incremental
			} else {
				m.method = geom.Midpoint
			}
			m.status = "method: " + m.method.String()
		case "+", "=":
			m.curve.Steps = min(maxSteps, m.curve.Steps+10)
			m.status = fmt.Sprintf("steps: %d", m.curve.Steps)
		case "-", "_":
			m.curve.Steps = max(1, m.curve.Steps-10)
			m.status = fmt.Sprintf("steps: %d", m.curve.Steps)
		case "c":
			m.curve.Clear()
			m.status = "curve cleared"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				return m, m.ta.Focus()
			}
			m.status = "view mode"
			m.ta.Blur()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showStats = !m.showStats
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		}
		if m.showStats {
			m.refreshStats()
		}
	case tea.MouseMsg:
		lay := m.layout()
		cx, cy := msg.X-lay.mapX, msg.Y-lay.mapY
		if cx < 0 || cx >= lay.mapW || cy < 0 || cy >= lay.mapH {
			m.hovering = false
			break
		}
		m.hovering = true
		m.hoverCellX, m.hoverCellY = cx, cy
		m.hoverPt = cellToPoint(cx, cy, lay.mapW, lay.mapH)
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if e, ok := m.active.(demo.Editable); ok {
				e.Add(m.hoverPt, canvasViewport(lay.mapW, lay.mapH))
				m.status = "control point " + m.hoverPt.String()
			} else {
				m.status = "press 5 to place curve control points"
			}
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}
