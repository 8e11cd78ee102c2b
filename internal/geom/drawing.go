package geom

import (
	"strconv"
	"strings"
)

// Drawing is a single gesture: points in the order they were drawn.
// The zero value is an empty drawing ready to use.
type Drawing struct {
	pts []Point
}

// New returns an empty drawing.
func New() *Drawing {
	return &Drawing{}
}

// FromPoints returns a drawing holding a copy of pts.
func FromPoints(pts ...Point) *Drawing {
	d := &Drawing{pts: make([]Point, len(pts))}
	copy(d.pts, pts)
	return d
}

// Append adds a point at the end of the drawing. Values are not validated.
func (d *Drawing) Append(x, y float64) {
	d.pts = append(d.pts, Point{X: x, Y: y})
}

// Len returns the number of points.
func (d *Drawing) Len() int {
	return len(d.pts)
}

// At returns the i-th point.
func (d *Drawing) At(i int) Point {
	return d.pts[i]
}

// Last returns the most recently appended point, or false if the drawing
// is empty.
func (d *Drawing) Last() (Point, bool) {
	if len(d.pts) == 0 {
		return Point{}, false
	}
	return d.pts[len(d.pts)-1], true
}

// Clear removes all points.
func (d *Drawing) Clear() {
	d.pts = d.pts[:0]
}

// Copy returns an independent duplicate of d.
func (d *Drawing) Copy() *Drawing {
	return FromPoints(d.pts...)
}

// Points returns a copy of the points.
func (d *Drawing) Points() []Point {
	out := make([]Point, len(d.pts))
	copy(out, d.pts)
	return out
}

// BBox folds min/max over all points. An empty drawing yields the
// degenerate box described on BBox.
func (d *Drawing) BBox() BBox {
	b := emptyBBox()
	for _, p := range d.pts {
		b = b.extend(p)
	}
	return b
}

// Equal reports whether d and o hold the same points in the same order.
func (d *Drawing) Equal(o *Drawing) bool {
	if len(d.pts) != len(o.pts) {
		return false
	}
	for i, p := range d.pts {
		if p != o.pts[i] {
			return false
		}
	}
	return true
}

// String renders the points as "(x, y), (x, y), ...". It is meant for logs
// and is not a parseable format.
func (d *Drawing) String() string {
	var sb strings.Builder
	for i, p := range d.pts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		sb.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		sb.WriteString(", ")
		sb.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
		sb.WriteByte(')')
	}
	return sb.String()
}
