package geom

import (
	"math"

	"gesturepad/internal/parallel"
)

// minScale keeps Normalized from dividing by zero on empty, single-point
// or otherwise flat drawings.
const minScale = 0.0001

// mapPoints applies f to every point independently and returns the results
// as a new drawing in the same order.
func (d *Drawing) mapPoints(f func(Point) Point) *Drawing {
	return &Drawing{pts: parallel.Map(d.pts, f)}
}

// Normalized scales and shifts the drawing so that its longer bounding-box
// side spans exactly [0, size] and the shorter side is centered inside that
// span. The aspect ratio is kept.
func (d *Drawing) Normalized(size float64) *Drawing {
	b := d.BBox()
	dim := b.Size()
	scale := math.Max(math.Max(dim.X, dim.Y), minScale)
	half := scale / 2
	c := b.Center()
	origin := Point{X: c.X - half, Y: c.Y - half}
	return d.mapPoints(func(p Point) Point {
		return p.Sub(origin).Mul(size).Div(scale)
	})
}

// Translated shifts every point by (dx, dy).
func (d *Drawing) Translated(dx, dy float64) *Drawing {
	off := Point{X: dx, Y: dy}
	return d.mapPoints(func(p Point) Point {
		return p.Add(off)
	})
}

// Reflected mirrors the drawing across the vertical line through the
// horizontal center of its bounding box.
func (d *Drawing) Reflected() *Drawing {
	b := d.BBox()
	xc := (b.Min.X + b.Max.X) / 2
	return d.mapPoints(func(p Point) Point {
		return Point{X: 2*xc - p.X, Y: p.Y}
	})
}

// Rotated turns the drawing by theta radians about its bounding-box center.
// Because +y is down, positive angles turn clockwise on screen.
func (d *Drawing) Rotated(theta float64) *Drawing {
	c := d.BBox().Center()
	return d.mapPoints(func(p Point) Point {
		return p.Sub(c).Rotate(theta).Add(c)
	})
}
