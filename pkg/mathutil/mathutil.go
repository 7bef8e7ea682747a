package mathutil

import "math"

func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Smooth moves cur toward target by the fraction rate of the remaining
// distance, applied k times. k may be fractional.
func Smooth(cur, target, rate, k float64) float64 {
	if k == 1 {
		return cur + (target-cur)*rate
	}
	f := 1 - math.Pow(1-rate, k)
	return cur + (target-cur)*f
}
