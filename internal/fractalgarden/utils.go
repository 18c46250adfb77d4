package fractalgarden

import (
	"math"
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// linspace mirrors the usual numeric routine: n evenly spaced samples over
// [start, stop], both ends included; n == 1 yields just start.
func linspace(start, stop Real, n int) []Real {
	if n <= 0 {
		return nil
	}
	out := make([]Real, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / Real(n-1)
	for i := range out {
		out[i] = start + Real(i)*step
	}
	out[n-1] = stop
	return out
}

func degToRad(d Real) Real { return d * math.Pi / 180 }
