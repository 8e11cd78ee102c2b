package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
)

func drawingColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "points", Width: 7},
		{Title: "size", Width: 18},
	}
}

// refreshTable lists the drawings of the selected gesture.
func (m *Model) refreshTable() {
	rows := make([]table.Row, 0, len(m.drawings))
	for i, d := range m.drawings {
		size := "-"
		if bb := d.BBox(); !bb.Empty() {
			s := bb.Size()
			size = fmt.Sprintf("%.1f × %.1f", s.X, s.Y)
		}
		rows = append(rows, table.Row{strconv.Itoa(i), strconv.Itoa(d.Len()), size})
	}
	m.tbl.SetRows(rows)
	if c := m.tbl.Cursor(); c >= len(rows) {
		m.tbl.SetCursor(max(0, len(rows)-1))
	}
}
