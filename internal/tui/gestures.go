package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"

	"gesturepad/internal/geom"
	"gesturepad/internal/raster"
)

type gestureItem struct {
	name string
}

func (g gestureItem) Title() string       { return g.name }
func (g gestureItem) Description() string { return "" }
func (g gestureItem) FilterValue() string { return g.name }

// refreshGestures reloads the sidebar from the library directory.
func (m *Model) refreshGestures() {
	if m.lib == nil {
		return
	}
	names, err := m.lib.Names()
	if err != nil {
		m.status = "read library error: " + err.Error()
		return
	}
	items := make([]list.Item, 0, len(names))
	for _, n := range names {
		items = append(items, gestureItem{name: n})
	}
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no gestures in " + m.lib.Dir() + ": press n to create one"
	}
}

// selectGesture makes name the target of save and loads its drawings.
func (m *Model) selectGesture(name string) {
	if m.lib == nil {
		m.status = "no library"
		return
	}
	ds, err := m.lib.Load(name)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selGesture = name
	m.drawings = ds
	m.refreshTable()
	m.status = fmt.Sprintf("gesture: %s  drawings=%d", name, len(ds))
}

// loadDrawing puts drawing i of the selected gesture on the canvas.
func (m *Model) loadDrawing(i int) {
	if i < 0 || i >= len(m.drawings) {
		m.status = "no drawing selected"
		return
	}
	m.setDrawing(m.fitToCanvas(m.drawings[i]))
	m.status = fmt.Sprintf("loaded: %s/%d  points=%d", m.selGesture, i, m.drawing.Len())
}

// setDrawing replaces the canvas contents and refreshes the preview.
func (m *Model) setDrawing(d *geom.Drawing) {
	m.drawing = d
	m.isDrawing = false
	m.renderPreview()
}

func (m *Model) renderPreview() {
	if m.drawing.Len() == 0 {
		m.preview = raster.Grid{}
		m.hasPreview = false
		return
	}
	m.preview = raster.Preview(m.drawing)
	m.hasPreview = true
}
