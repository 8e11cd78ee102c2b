package geom

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestSimplified_KeepsEndpointsAndOrder(t *testing.T) {
	d := zigzag(300)
	for _, epsilon := range []float64{0, 0.5, 2, 10, 1000} {
		s := d.Simplified(epsilon)
		if s.Len() < 2 {
			t.Fatalf("epsilon=%v: Len() = %d, want >= 2", epsilon, s.Len())
		}
		end, _ := d.Last()
		if s.At(0) != d.At(0) {
			t.Errorf("epsilon=%v: first point %v, want %v", epsilon, s.At(0), d.At(0))
		}
		if last, _ := s.Last(); last != end {
			t.Errorf("epsilon=%v: last point %v, want %v", epsilon, last, end)
		}

		// Survivors are a subsequence of the input.
		j := 0
		for i := 0; i < s.Len(); i++ {
			for j < d.Len() && d.At(j) != s.At(i) {
				j++
			}
			if j == d.Len() {
				t.Fatalf("epsilon=%v: point %v not found in order", epsilon, s.At(i))
			}
			j++
		}
	}
}

func TestSimplified_Monotonic(t *testing.T) {
	d := zigzag(400)
	prev := math.MaxInt
	for _, epsilon := range []float64{0, 0.1, 0.5, 1, 2, 4, 8, 16, 64} {
		n := d.Simplified(epsilon).Len()
		if n > prev {
			t.Errorf("epsilon=%v kept %d points, more than %d at a smaller epsilon", epsilon, n, prev)
		}
		if n > d.Len() {
			t.Errorf("epsilon=%v kept %d points of %d", epsilon, n, d.Len())
		}
		prev = n
	}
}

func TestSimplified_Zero(t *testing.T) {
	// No three consecutive points are collinear.
	d := FromPoints(Pt(0, 0), Pt(1, 2), Pt(3, 1), Pt(4, 5), Pt(6, 0))
	if got := d.Simplified(0); !got.Equal(d) {
		t.Errorf("Simplified(0) = %v, want unchanged %v", got, d)
	}

	// Exactly collinear interior points go.
	line := FromPoints(Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3))
	want := FromPoints(Pt(0, 0), Pt(3, 3))
	if got := line.Simplified(0); !got.Equal(want) {
		t.Errorf("collinear Simplified(0) = %v, want %v", got, want)
	}
}

func TestSimplified_Tolerance(t *testing.T) {
	d := FromPoints(Pt(0, 0), Pt(5, 0.4), Pt(10, 0), Pt(10, 10))

	if got := d.Simplified(0.5); got.Len() != 3 {
		t.Errorf("Simplified(0.5) kept %d points, want 3: %v", got.Len(), got)
	}
	if got := d.Simplified(0.3); got.Len() != 4 {
		t.Errorf("Simplified(0.3) kept %d points, want 4: %v", got.Len(), got)
	}
}

func TestSimplified_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		d    *Drawing
	}{
		{"empty", New()},
		{"single", FromPoints(Pt(1, 1))},
		{"pair", FromPoints(Pt(1, 1), Pt(1, 1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.d.Simplified(5)
			if !got.Equal(tt.d) {
				t.Errorf("Simplified = %v, want %v", got, tt.d)
			}
			got.Append(0, 0)
			if got.Len() == tt.d.Len() {
				t.Error("degenerate result aliases the receiver")
			}
		})
	}
}

func TestSimplified_NegativeEpsilon(t *testing.T) {
	d := FromPoints(Pt(0, 0), Pt(1, 2), Pt(3, 1), Pt(4, 5))
	if got := d.Simplified(-3); !got.Equal(d) {
		t.Errorf("Simplified(-3) = %v, want unchanged", got)
	}
}

func TestSimplifyTolerance(t *testing.T) {
	if got := New().SimplifyTolerance(); got != 0 {
		t.Errorf("empty tolerance = %v, want 0", got)
	}
	d := FromPoints(Pt(0, 0), Pt(200, 50))
	if got := d.SimplifyTolerance(); math.Abs(got-2) > eps {
		t.Errorf("SimplifyTolerance() = %v, want 2", got)
	}
}

func TestSimplified_PointsBeyondChord(t *testing.T) {
	tests := []struct {
		name    string
		d       *Drawing
		epsilon float64
		want    *Drawing
	}{
		{
			// The turn point lies on the line through the ends, so it goes
			// even though it is far from the chord segment.
			name:    "backtrack",
			d:       FromPoints(Pt(0, 0), Pt(10, 0), Pt(5, 0)),
			epsilon: 1,
			want:    FromPoints(Pt(0, 0), Pt(5, 0)),
		},
		{
			name:    "backtrack off line",
			d:       FromPoints(Pt(0, 0), Pt(20, 0.5), Pt(1, 0.05)),
			epsilon: 1,
			want:    FromPoints(Pt(0, 0), Pt(1, 0.05)),
		},
		{
			name:    "near-closed loop",
			d:       FromPoints(Pt(0, 0), Pt(20, 0.5), Pt(0, 0.2)),
			epsilon: 1,
			want:    FromPoints(Pt(0, 0), Pt(20, 0.5), Pt(0, 0.2)),
		},
		{
			// Coincident ends fall back to distance from the end point.
			name:    "closed loop",
			d:       FromPoints(Pt(0, 0), Pt(3, 4), Pt(0, 0)),
			epsilon: 4.9,
			want:    FromPoints(Pt(0, 0), Pt(3, 4), Pt(0, 0)),
		},
		{
			name:    "closed loop within tolerance",
			d:       FromPoints(Pt(0, 0), Pt(3, 4), Pt(0, 0)),
			epsilon: 5,
			want:    FromPoints(Pt(0, 0), Pt(0, 0)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Simplified(tt.epsilon); !got.Equal(tt.want) {
				t.Errorf("Simplified(%v) = %v, want %v", tt.epsilon, got, tt.want)
			}
		})
	}
}

func TestLineDistance(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b orb.Point
		want    float64
	}{
		{"on segment", orb.Point{5, 3}, orb.Point{0, 0}, orb.Point{10, 0}, 3},
		{"beyond end", orb.Point{15, 3}, orb.Point{0, 0}, orb.Point{10, 0}, 3},
		{"before start", orb.Point{-4, -2}, orb.Point{0, 0}, orb.Point{10, 0}, 2},
		{"diagonal", orb.Point{0, 2}, orb.Point{0, 0}, orb.Point{2, 2}, math.Sqrt2},
		{"zero chord", orb.Point{3, 4}, orb.Point{0, 0}, orb.Point{0, 0}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lineDistance(tt.p, tt.a, tt.b); math.Abs(got-tt.want) > eps {
				t.Errorf("lineDistance = %v, want %v", got, tt.want)
			}
		})
	}
}
