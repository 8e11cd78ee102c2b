package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// strokeTolerance is the simplification tolerance applied to a finished
// stroke, as a fraction of its longer bounding-box side.
const strokeTolerance = 0.01

// Simplified reduces the drawing with the Ramer-Douglas-Peucker algorithm.
// An interior point survives when its perpendicular distance to the line
// through the ends of its span exceeds epsilon; the first and last points
// always survive and the relative order of the survivors is kept. A larger
// epsilon never keeps more points. Negative epsilon is treated as zero,
// which drops only exactly collinear points.
func (d *Drawing) Simplified(epsilon float64) *Drawing {
	if len(d.pts) < 3 {
		return d.Copy()
	}
	if epsilon < 0 {
		epsilon = 0
	}

	ls := make(orb.LineString, len(d.pts))
	for i, p := range d.pts {
		ls[i] = orb.Point{p.X, p.Y}
	}
	ls = douglasPeucker(ls, epsilon)

	out := &Drawing{pts: make([]Point, len(ls))}
	for i, p := range ls {
		out.pts[i] = Point{X: p.X(), Y: p.Y()}
	}
	return out
}

// douglasPeucker returns the points of ls kept by RDP at threshold epsilon.
// Spans are processed from an explicit stack so long strokes cannot
// exhaust the goroutine stack.
func douglasPeucker(ls orb.LineString, epsilon float64) orb.LineString {
	keep := make([]bool, len(ls))
	keep[0], keep[len(ls)-1] = true, true

	stack := [][2]int{{0, len(ls) - 1}}
	for len(stack) > 0 {
		span := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		first, last := span[0], span[1]
		if last-first < 2 {
			continue
		}

		idx, dmax := -1, 0.0
		for i := first + 1; i < last; i++ {
			if d := lineDistance(ls[i], ls[first], ls[last]); d > dmax {
				idx, dmax = i, d
			}
		}
		if idx < 0 || !(dmax > epsilon) {
			continue
		}
		keep[idx] = true
		stack = append(stack, [2]int{first, idx}, [2]int{idx, last})
	}

	out := make(orb.LineString, 0, len(ls))
	for i, p := range ls {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

// lineDistance is the perpendicular distance from p to the infinite line
// through a and b, or the distance to a when a and b coincide.
func lineDistance(p, a, b orb.Point) float64 {
	dx, dy := b.X()-a.X(), b.Y()-a.Y()
	px, py := p.X()-a.X(), p.Y()-a.Y()
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(px, py)
	}
	return math.Abs(dx*py-dy*px) / math.Sqrt(l2)
}

// SimplifyTolerance returns the epsilon used to tidy a freshly captured
// stroke: one percent of the longer bounding-box side.
func (d *Drawing) SimplifyTolerance() float64 {
	if len(d.pts) == 0 {
		return 0
	}
	return strokeTolerance * d.BBox().Extent()
}
