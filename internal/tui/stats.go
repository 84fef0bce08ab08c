package tui

import (
	"fmt"
	"strings"

	table "github.com/charmbracelet/bubbles/table"

	"toryn/internal/render"
)

// refreshStats redraws the active demo at the current map size and lists
// every renderer batch in the table.
func (m *Model) refreshStats() {
	lay := m.layout()
	var rec render.Recorder
	_, err := m.frame(lay.mapW, lay.mapH, &rec)
	// An empty table would panic on render; fall back to the canvas
	if len(rec.Batches) == 0 {
		m.showStats = false
		m.status = "nothing drawn"
		if err != nil {
			m.status += ": " + firstLine(err)
		}
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "mode", Width: 8},
		{Title: "vertices", Width: 10},
		{Title: "first", Width: 14},
		{Title: "last", Width: 14},
	}
	rows := make([]table.Row, 0, len(rec.Batches))
	for i, b := range rec.Batches {
		first := b.Viewport.Point(b.Vertices[0])
		last := b.Viewport.Point(b.Vertices[len(b.Vertices)-1])
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			b.Mode.String(),
			fmt.Sprintf("%d", len(b.Vertices)),
			first.String(),
			last.String(),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	m.status = fmt.Sprintf("stats: %s  batches=%d vertices=%d", m.active.Name(), len(rec.Batches), rec.Vertices())
	if err != nil {
		m.status += "  " + firstLine(err)
	}
}

// firstLine trims joined errors to one status line.
func firstLine(err error) string {
	s, _, _ := strings.Cut(err.Error(), "\n")
	return s
}
