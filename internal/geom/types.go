package geom

import "math"

// BBox is an axis-aligned bounding box. The box of an empty drawing has
// Min at (+Inf, +Inf) and Max at (-Inf, -Inf); see Empty.
type BBox struct {
	Min Point
	Max Point
}

// emptyBBox is the identity of the min/max fold.
func emptyBBox() BBox {
	return BBox{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// extend grows b to contain p. NaN coordinates never win a comparison and
// so leave the box unchanged.
func (b BBox) extend(p Point) BBox {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	return b
}

// Empty reports whether b contains no points.
func (b BBox) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Size returns Max-Min.
func (b BBox) Size() Point {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b BBox) Center() Point {
	return b.Min.Add(b.Max).Div(2)
}

// Extent returns the longer of the two side lengths.
func (b BBox) Extent() float64 {
	s := b.Size()
	return math.Max(s.X, s.Y)
}
