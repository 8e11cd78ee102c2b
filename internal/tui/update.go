package tui

import (
	"fmt"
	"math"
	"os"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"gesturepad/internal/geom"
	"gesturepad/internal/logging"
	"gesturepad/internal/raster"
)

// rotateStep is the angle applied by "[" and "]".
const rotateStep = 15 * math.Pi / 180

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.mode != inputNone {
			return m.updateInput(msg)
		}
		if m.showTable {
			return m.updateTable(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshGestures()
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(gestureItem); ok {
					m.selectGesture(it.name)
				}
			}
			return m, nil
		case "n":
			m.startInput(inputName, "new gesture name")
			return m, nil
		case "p":
			m.startInput(inputPaste, "paste mode: WKT LINESTRING, enter to load")
			return m, nil
		case "s":
			m.saveDrawing()
		case "v":
			if m.selGesture == "" {
				m.status = "select a gesture first"
				break
			}
			m.showTable = true
			m.tbl.Focus()
		case "r":
			m.setDrawing(m.drawing.Reflected())
			m.status = "reflected"
		case "[":
			m.setDrawing(m.drawing.Rotated(-rotateStep))
			m.status = "rotated -15°"
		case "]":
			m.setDrawing(m.drawing.Rotated(rotateStep))
			m.status = "rotated +15°"
		case "e":
			m.exportPreview()
		case "c":
			m.setDrawing(geom.New())
			m.status = "cleared"
		case "h":
			m.helpVisible = !m.helpVisible
		}
	case tea.MouseMsg:
		if m.mode != inputNone || m.showTable {
			return m, nil
		}
		m.handleMouse(msg)
		return m, nil
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	lo := m.layout()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !lo.inCanvas(msg.X, msg.Y) {
			return
		}
		m.drawing = geom.New()
		m.preview = raster.Grid{}
		m.hasPreview = false
		m.isDrawing = true
		m.addPoint(lo.cellToPoint(msg.X, msg.Y))
		m.status = "drawing"
	case tea.MouseActionMotion:
		if m.isDrawing {
			m.addPoint(lo.cellToPoint(msg.X, msg.Y))
		}
	case tea.MouseActionRelease:
		if m.isDrawing {
			m.finishStroke()
		}
	}
}

// addPoint extends the stroke unless p repeats the last point.
func (m *Model) addPoint(p geom.Point) {
	if last, ok := m.drawing.Last(); ok && last == p {
		return
	}
	m.drawing.Append(p.X, p.Y)
}

// finishStroke ends the pen stroke, simplifies it and renders the preview.
func (m *Model) finishStroke() {
	raw := m.drawing.Len()
	m.setDrawing(m.drawing.Simplified(m.drawing.SimplifyTolerance()))
	m.status = fmt.Sprintf("stroke: %d points (%d raw)", m.drawing.Len(), raw)
	logging.Logger().Debug("stroke finished", "raw", raw, "simplified", m.drawing.Len())
}

func (m *Model) startInput(mode inputMode, status string) {
	m.mode = mode
	m.ta.SetValue("")
	m.ta.Focus()
	m.status = status
}

func (m *Model) stopInput() {
	m.mode = inputNone
	m.ta.Blur()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stopInput()
		m.status = "cancelled"
		return m, nil
	case "enter":
		v := strings.TrimSpace(m.ta.Value())
		if v == "" {
			m.status = "input: empty"
			return m, nil
		}
		mode := m.mode
		m.stopInput()
		switch mode {
		case inputPaste:
			d, err := geom.ParseWKT(v)
			if err != nil {
				m.status = "wkt error: " + err.Error()
				return m, nil
			}
			m.setDrawing(m.fitToCanvas(d))
			m.status = fmt.Sprintf("pasted: %d points", d.Len())
		case inputName:
			m.createGesture(v)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "v":
		m.showTable = false
		m.tbl.Blur()
		return m, nil
	case "enter":
		m.loadDrawing(m.tbl.Cursor())
		m.showTable = false
		m.tbl.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m *Model) createGesture(name string) {
	if m.lib == nil {
		m.status = "no library"
		return
	}
	if err := m.lib.Create(name); err != nil {
		m.status = "create error: " + err.Error()
		return
	}
	m.refreshGestures()
	m.selectGesture(name)
}

func (m *Model) saveDrawing() {
	switch {
	case m.lib == nil:
		m.status = "no library"
		return
	case m.selGesture == "":
		m.status = "select a gesture first (tab, enter) or create one (n)"
		return
	case m.drawing.Len() == 0:
		m.status = "nothing to save"
		return
	}
	idx, err := m.lib.Append(m.selGesture, m.drawing)
	if err != nil {
		m.status = "save error: " + err.Error()
		return
	}
	m.drawings = append(m.drawings, m.drawing.Copy())
	m.refreshTable()
	m.status = fmt.Sprintf("saved: %s/%d", m.selGesture, idx)
}

func (m *Model) exportPreview() {
	if !m.hasPreview {
		m.status = "nothing to export"
		return
	}
	f, err := os.Create(m.cfg.ExportPath)
	if err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	err = raster.EncodePNG(f, &m.preview, m.cfg.ExportScale)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	m.status = "exported: " + m.cfg.ExportPath
}
