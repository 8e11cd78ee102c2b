package raster

import (
	"math"

	"gesturepad/internal/geom"
	"gesturepad/internal/parallel"
)

const (
	// StrokeWidth is the full width of the capsule swept along a segment.
	StrokeWidth = 2.5

	// SampleStep is the spacing of samples along and across a segment.
	SampleStep = 0.6

	// flatFraction is the share of the half-width shaded at full intensity
	// before the linear falloff starts.
	flatFraction = 0.25

	// previewSize and previewMargin place a drawing inside the grid with
	// room for the stroke width on every side.
	previewSize   = 23
	previewMargin = 2.5
)

// alpha maps a distance from the stroke centerline to an intensity: 1.0 up
// to a quarter of the half-width, then linear down to 0 at the half-width.
func alpha(dist float64) float64 {
	dist /= StrokeWidth / 2
	slope := 1 / (1 - flatFraction)
	return math.Max(0, math.Min(1, -slope*dist+slope))
}

// Rasterize renders d into a Grid. Drawings with fewer than two points give
// an all-zero grid. The accumulation buffer is indexed [x][y]; the returned
// grid is its transpose, indexed [y][x].
func Rasterize(d *geom.Drawing) Grid {
	pts := d.Points()
	if len(pts) < 2 {
		return Grid{}
	}

	acc := parallel.Reduce(len(pts)-1,
		func() *Grid { return new(Grid) },
		func(acc *Grid, i int) *Grid {
			var line Grid
			drawSegment(&line, pts[i], pts[i+1])
			acc.maxInto(&line)
			return acc
		},
		func(a, b *Grid) *Grid {
			a.maxInto(b)
			return a
		},
	)
	return acc.Transpose()
}

// segment holds the state of one capsule sweep: its own visited set keeps
// truncated samples that land on the same pixel from overwriting it.
type segment struct {
	visited [Size][Size]bool
	p1      geom.Point
	dir     geom.Point
	perp    geom.Point
}

// pixel returns the pixel hit by the sample l along and w across the
// segment, or false if it lies off the grid or was already shaded.
func (s *segment) pixel(l, w float64) (geom.Point, int, int, bool) {
	p := s.p1.Add(s.dir.Mul(l)).Add(s.perp.Mul(w))
	// Truncation maps (-1, 0) to 0, so the lower bound is -1. NaN fails
	// every comparison and is dropped here too.
	if !(p.X > -1 && p.X < Size && p.Y > -1 && p.Y < Size) {
		return geom.Point{}, 0, 0, false
	}
	x, y := int(p.X), int(p.Y)
	if s.visited[x][y] {
		return geom.Point{}, 0, 0, false
	}
	s.visited[x][y] = true
	return geom.Pt(float64(x), float64(y)), x, y, true
}

// drawSegment shades the capsule from p1 to p2 into dst, indexed [x][y].
// The sample order matters: the first sample to reach a pixel decides its
// intensity.
func drawSegment(dst *Grid, p1, p2 geom.Point) {
	delta := p2.Sub(p1)
	length := delta.Length()
	if !(length > 0) || math.IsInf(length, 0) {
		return
	}
	dir := delta.Normalize()
	s := &segment{p1: p1, dir: dir, perp: dir.Perp()}

	half := StrokeWidth / 2
	nw := int(2 * half / SampleStep)
	nd := int(half / SampleStep)
	first, n := lineSamples(p1, dir, length)

	for wi := 0; wi <= nw; wi++ {
		w := -half + float64(wi)*SampleStep

		for k := 0; k < n; k++ {
			l := (first + float64(k)) * SampleStep
			if p, x, y, ok := s.pixel(l, w); ok {
				dist := p.Sub(p1).Project(s.perp).Length()
				dst[x][y] = alpha(dist)
			}
		}

		for di := 0; di <= nd; di++ {
			d := float64(di) * SampleStep
			if p, x, y, ok := s.pixel(-d, w); ok {
				dst[x][y] = alpha(p.Sub(p1).Length())
			}
			if p, x, y, ok := s.pixel(length+d, w); ok {
				dst[x][y] = alpha(p.Sub(p2).Length())
			}
		}
	}
}

// lineSamples returns the first sample index along the segment and the
// number of samples to take. Samples run from index 0 to
// floor(length/SampleStep); those whose projection onto dir cannot reach
// the grid are skipped up front, which keeps long off-grid segments cheap
// without changing which samples land on the grid.
func lineSamples(p1, dir geom.Point, length float64) (first float64, n int) {
	lmin, lmax := math.Inf(1), math.Inf(-1)
	for _, c := range [...]geom.Point{{X: -1, Y: -1}, {X: Size, Y: -1}, {X: -1, Y: Size}, {X: Size, Y: Size}} {
		t := c.Sub(p1).Dot(dir)
		lmin = math.Min(lmin, t)
		lmax = math.Max(lmax, t)
	}
	first = math.Max(0, math.Ceil((lmin-1)/SampleStep))
	last := math.Min(math.Floor(length/SampleStep), math.Floor((lmax+1)/SampleStep))
	if !(last >= first) {
		return 0, 0
	}
	return first, int(last-first) + 1
}

// PreviewDrawing fits d into the grid the way classifier input is prepared:
// normalized to 23 units and shifted 2.5 units in from the top-left corner.
func PreviewDrawing(d *geom.Drawing) *geom.Drawing {
	return d.Normalized(previewSize).Translated(previewMargin, previewMargin)
}

// Preview rasterizes d after PreviewDrawing.
func Preview(d *geom.Drawing) Grid {
	return Rasterize(PreviewDrawing(d))
}
