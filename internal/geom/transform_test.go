package geom

import (
	"math"
	"testing"

	"gesturepad/internal/parallel"
)

const eps = 1e-9

func assertSameShape(t *testing.T, got, want *Drawing, tol float64) {
	t.Helper()
	if got.Len() != want.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), want.Len())
	}
	for i := 0; i < got.Len(); i++ {
		if !got.At(i).Approx(want.At(i), tol) {
			t.Errorf("point %d = %v, want %v", i, got.At(i), want.At(i))
		}
	}
}

func zigzag(n int) *Drawing {
	d := New()
	for i := range n {
		d.Append(float64(i)*3.5+10, 20+15*math.Sin(float64(i)))
	}
	return d
}

func TestNormalized_LongerAxisSpansSize(t *testing.T) {
	tests := []struct {
		name string
		d    *Drawing
		size float64
	}{
		{"wide", FromPoints(Pt(10, 20), Pt(50, 25), Pt(20, 30)), 28},
		{"tall", FromPoints(Pt(-5, -100), Pt(0, 100), Pt(3, 0)), 23},
		{"square", FromPoints(Pt(0, 0), Pt(10, 10)), 1},
		{"zigzag", zigzag(200), 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.d.Normalized(tt.size)
			b := n.BBox()
			dim := b.Size()
			long, short := dim.X, dim.Y
			lo, hi := b.Min.Y, b.Max.Y
			if dim.Y > dim.X {
				long, short = dim.Y, dim.X
				lo, hi = b.Min.X, b.Max.X
			}
			if math.Abs(long-tt.size) > 1e-9 {
				t.Errorf("longer side = %v, want %v", long, tt.size)
			}
			// Shorter axis is centered, not stretched.
			if math.Abs((lo+hi)/2-tt.size/2) > 1e-9 {
				t.Errorf("shorter axis center = %v, want %v", (lo+hi)/2, tt.size/2)
			}
			if short > long+1e-9 {
				t.Errorf("shorter side %v exceeds longer %v", short, long)
			}
		})
	}
}

func TestNormalized_Values(t *testing.T) {
	d := FromPoints(Pt(10, 20), Pt(50, 25), Pt(20, 30))
	got := d.Normalized(28)
	want := FromPoints(Pt(0, 10.5), Pt(28, 14), Pt(7, 17.5))
	assertSameShape(t, got, want, eps)
}

func TestNormalized_Degenerate(t *testing.T) {
	if n := New().Normalized(28); n.Len() != 0 {
		t.Errorf("empty Normalized Len() = %d, want 0", n.Len())
	}

	// A single point sits at the center of the target box.
	n := FromPoints(Pt(7, 9)).Normalized(28)
	if !n.At(0).Approx(Pt(14, 14), 1e-6) {
		t.Errorf("single point normalized to %v, want (14,14)", n.At(0))
	}

	// Repeated identical points must not divide by zero.
	n = FromPoints(Pt(1, 1), Pt(1, 1), Pt(1, 1)).Normalized(28)
	for i := 0; i < n.Len(); i++ {
		p := n.At(i)
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			t.Errorf("point %d = %v, want finite", i, p)
		}
	}
}

func TestTranslated_RoundTrip(t *testing.T) {
	d := zigzag(50)
	got := d.Translated(12.5, -3.25).Translated(-12.5, 3.25)
	assertSameShape(t, got, d, eps)

	moved := d.Translated(1, 2)
	for i := 0; i < d.Len(); i++ {
		if want := d.At(i).Add(Pt(1, 2)); moved.At(i) != want {
			t.Errorf("point %d = %v, want %v", i, moved.At(i), want)
		}
	}
}

func TestReflected(t *testing.T) {
	d := FromPoints(Pt(0, 1), Pt(4, 2), Pt(1, 3))
	got := d.Reflected()
	want := FromPoints(Pt(4, 1), Pt(0, 2), Pt(3, 3))
	assertSameShape(t, got, want, eps)

	assertSameShape(t, d.Reflected().Reflected(), d, eps)
	assertSameShape(t, zigzag(77).Reflected().Reflected(), zigzag(77), eps)
}

func TestRotated_RoundTrip(t *testing.T) {
	// Point-symmetric drawings keep their box center under rotation, so the
	// inverse rotation lands exactly on the original.
	sym := FromPoints(Pt(0, 0), Pt(6, 2), Pt(10, 10), Pt(4, 8), Pt(0, 0))
	for _, theta := range []float64{0, 0.3, math.Pi / 2, -2.1, math.Pi} {
		got := sym.Rotated(theta).Rotated(-theta)
		assertSameShape(t, got, sym, 1e-9)
	}
}

func TestRotated_RoundTripKeepsShape(t *testing.T) {
	// In general the box center moves, so undoing a rotation reproduces the
	// original up to a translation.
	d := zigzag(120)
	for _, theta := range []float64{0.3, math.Pi / 2, -2.1} {
		got := d.Rotated(theta).Rotated(-theta)
		off := got.At(0).Sub(d.At(0))
		assertSameShape(t, got.Translated(-off.X, -off.Y), d, 1e-9)
	}
}

func TestRotated_ClockwiseOnScreen(t *testing.T) {
	// Center of the box is the origin; +x turns toward +y (down).
	d := FromPoints(Pt(-1, 0), Pt(1, 0))
	got := d.Rotated(math.Pi / 2)
	want := FromPoints(Pt(0, -1), Pt(0, 1))
	assertSameShape(t, got, want, 1e-12)
}

func TestRotated_AboutBBoxCenter(t *testing.T) {
	d := FromPoints(Pt(10, 10), Pt(14, 10), Pt(14, 12))
	got := d.Rotated(math.Pi)
	want := FromPoints(Pt(14, 12), Pt(10, 12), Pt(10, 10))
	assertSameShape(t, got, want, 1e-12)
}

func TestTransforms_DoNotMutateReceiver(t *testing.T) {
	d := FromPoints(Pt(1, 2), Pt(5, 3), Pt(2, 8))
	orig := d.Copy()

	d.Normalized(28)
	d.Translated(3, 4)
	d.Reflected()
	d.Rotated(1)
	d.Simplified(10)

	if !d.Equal(orig) {
		t.Errorf("transform mutated receiver: %v, want %v", d, orig)
	}
}

func TestTransforms_IndependentOfWorkers(t *testing.T) {
	d := zigzag(500)

	parallel.SetWorkers(1)
	serial := d.Rotated(0.7).Normalized(28)
	parallel.SetWorkers(8)
	defer parallel.SetWorkers(0)
	par := d.Rotated(0.7).Normalized(28)

	if !serial.Equal(par) {
		t.Error("result depends on worker count")
	}
}
