package tui

import "strings"

// brailleBuf is the pad's stroke canvas. Each terminal cell is one braille
// glyph of 2×4 dots, and each dot is one micro-pixel, the unit drawings are
// captured in: a cell spans 2 drawing units across and 4 down.
type brailleBuf struct {
	cols, rows int
	cells      [][]uint8 // dot mask per cell, rows first
}

func newBrailleBuf(cols, rows int) *brailleBuf {
	cells := make([][]uint8, rows)
	for i := range cells {
		cells[i] = make([]uint8, cols)
	}
	return &brailleBuf{cols: cols, rows: rows, cells: cells}
}

// dotBits maps a micro-pixel position inside a cell to its braille dot.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel turns on the dot at drawing coordinates (mx, my). Dots off the
// canvas are ignored.
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	col, row := mx/2, my/4
	if row >= b.rows || col >= b.cols {
		return
	}
	b.cells[row][col] |= dotBits[mx%2][my%4]
}

// drawLineMicro joins two captured points with Bresenham's line so a fast
// pen movement still reads as one continuous stroke.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x1 < x0 {
		sx = -1
	}
	if y1 < y0 {
		sy = -1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// toLines renders one string per cell row; empty cells are blanks rather
// than the empty braille glyph.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.rows)
	var sb strings.Builder
	for y, row := range b.cells {
		sb.Reset()
		for _, mask := range row {
			if mask == 0 {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteRune(rune(0x2800 + int(mask)))
		}
		out[y] = sb.String()
	}
	return out
}
