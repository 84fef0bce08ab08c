package tui

import (
	"strings"

	"toryn/internal/geom"
	"toryn/internal/render"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// layout is the screen split shared by View and mouse handling.
type layout struct {
	contentW, contentH int
	mapX, mapY         int
	mapW, mapH         int
}

func (m Model) layout() layout {
	lay := layout{
		contentW: max(10, m.width),
		contentH: max(4, m.height-headerHeight-footerHeight),
		mapY:     headerHeight,
	}
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth
		lay.mapX = sw + 1
	}
	lay.mapW = max(10, lay.contentW-sw-1)
	lay.mapH = lay.contentH
	return lay
}

// frame draws the active demo into a fresh w x h cell canvas. Extra
// renderers receive the same batches.
func (m Model) frame(w, h int, extra ...render.Renderer) (*render.Canvas, error) {
	c := render.NewCanvas(w, h)
	var target render.Renderer = c
	if len(extra) > 0 {
		target = render.Tee(append([]render.Renderer{c}, extra...))
	}
	p := render.Painter{Target: target, Viewport: c.Viewport(), Method: m.method, Cache: m.cache}
	return c, m.active.Draw(&p)
}

func (m Model) renderCanvas(w, h int) (string, error) {
	c, err := m.frame(w, h)
	lines := c.Lines()

	// Hover highlight: an orange circle on the hovered cell
	if m.hovering && m.hoverCellY >= 0 && m.hoverCellY < len(lines) {
		r := []rune(lines[m.hoverCellY])
		if cx := m.hoverCellX; cx >= 0 && cx < len(r) {
			lines[m.hoverCellY] = string(r[:cx]) + hoverStyle.Render("◯") + string(r[cx+1:])
		}
	}
	return strings.Join(lines, "\n"), err
}

// cellToPoint maps a map cell to the raster point under its top-left micro
// pixel, relative to the canvas centre with y up.
func cellToPoint(cx, cy, w, h int) geom.Point2d {
	return geom.Pt(int32(cx*2), int32(-cy*4)).Translate(-int32(w), int32(2*h))
}

func canvasViewport(w, h int) geom.Viewport {
	return geom.Viewport{Width: float32(w * 2), Height: float32(h * 4)}
}
