package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gesturepad/internal/geom"
	"gesturepad/internal/raster"
)

const (
	sidebarWidth = 28
	// previewWidth is the boxed 28-column preview plus border and padding.
	previewWidth = raster.Size + 4
	headerHeight = 1
	footerHeight = 2
)

// layout is the screen geometry shared by View and mouse handling.
type layout struct {
	contentW, contentH int
	sidebarW           int
	canvasX, canvasY   int
	canvasW, canvasH   int
}

func (m Model) layout() layout {
	lo := layout{
		contentW: max(10, m.width),
		contentH: max(4, m.height-headerHeight-footerHeight),
		canvasY:  headerHeight,
	}
	if m.showSidebar {
		lo.sidebarW = sidebarWidth
		lo.canvasX = sidebarWidth + 1
	}
	lo.canvasW = max(10, lo.contentW-lo.canvasX-previewWidth-1)
	lo.canvasH = lo.contentH
	return lo
}

// inCanvas reports whether the terminal cell (x, y) lies on the canvas.
func (lo layout) inCanvas(x, y int) bool {
	return x >= lo.canvasX && x < lo.canvasX+lo.canvasW && y >= lo.canvasY && y < lo.canvasY+lo.canvasH
}

// cellToPoint converts a terminal cell to the micro-pixel point at its
// center.
func (lo layout) cellToPoint(x, y int) geom.Point {
	return geom.Pt(float64(x-lo.canvasX)*2+1, float64(y-lo.canvasY)*4+2)
}

// fitToCanvas scales a drawing from elsewhere (library, paste) to fill most
// of the canvas and centers it.
func (m Model) fitToCanvas(d *geom.Drawing) *geom.Drawing {
	lo := m.layout()
	wMic, hMic := float64(lo.canvasW*2), float64(lo.canvasH*4)
	size := 0.8 * min(wMic, hMic)
	return d.Normalized(size).Translated((wMic-size)/2, (hMic-size)/2)
}

// renderCanvas draws the current stroke on a braille buffer of w×h cells.
func (m Model) renderCanvas(w, h int) string {
	br := newBrailleBuf(w, h)
	pts := m.drawing.Points()

	var prevX, prevY int
	havePrev := false
	for _, p := range pts {
		mx, okx := microInt(p.X)
		my, oky := microInt(p.Y)
		if !okx || !oky {
			havePrev = false
			continue
		}
		if havePrev {
			br.drawLineMicro(prevX, prevY, mx, my)
		} else {
			br.setPixel(mx, my)
		}
		prevX, prevY, havePrev = mx, my, true
	}

	lines := br.toLines()
	// Pen marker on the last point while the stroke is in progress
	if m.isDrawing {
		if last, ok := m.drawing.Last(); ok {
			cx, okx := microInt(last.X / 2)
			cy, oky := microInt(last.Y / 4)
			if okx && oky && cy >= 0 && cy < len(lines) {
				r := []rune(lines[cy])
				if cx >= 0 && cx < len(r) {
					lines[cy] = string(r[:cx]) + penStyle.Render("●") + string(r[cx+1:])
				}
			}
		}
	}
	return strings.Join(lines, "\n")
}

// renderGrid draws a raster grid with upper half blocks: each text line
// shows two grid rows, the upper as foreground and the lower as background.
func renderGrid(g *raster.Grid) string {
	lines := make([]string, 0, raster.Size/2)
	for y := 0; y < raster.Size; y += 2 {
		var sb strings.Builder
		for x := 0; x < raster.Size; x++ {
			st := lipgloss.NewStyle().
				Foreground(grayColor(g[y][x])).
				Background(grayColor(g[y+1][x]))
			sb.WriteString(st.Render("▀"))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// previewView is the boxed 28×28 classifier-input preview.
func (m Model) previewView() string {
	title := titleStyle.Render("28×28 input")
	var body string
	if m.hasPreview {
		body = renderGrid(&m.preview)
	} else {
		empty := strings.Repeat(strings.Repeat(" ", raster.Size)+"\n", raster.Size/2-1) + strings.Repeat(" ", raster.Size)
		body = dimStyle.Render(empty)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, boxStyle.Render(body))
}
