package tui

import "math"

// microLimit bounds micro-pixel coordinates handed to Bresenham so a point
// far off the canvas cannot turn one segment into millions of steps.
const microLimit = 4096

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// microInt floors a micro-pixel coordinate, clamped to ±microLimit.
// It reports false for NaN.
func microInt(v float64) (int, bool) {
	if math.IsNaN(v) {
		return 0, false
	}
	v = math.Max(-microLimit, math.Min(microLimit, v))
	return int(math.Floor(v)), true
}
