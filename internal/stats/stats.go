// Package stats provides the small set of aggregates the estimator and
// analytics endpoints need. Every function reports whether the sample set was
// non-empty; callers fall through to fixed defaults instead of ever seeing a
// NaN or a zero that looks like data.
package stats

import "math"

// Min returns the smallest sample. ok is false for an empty set.
func Min(xs []float64) (min float64, ok bool) {
	if len(xs) == 0 {
		return 0, false
	}
	min = xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
	}
	return min, true
}

// Max returns the largest sample. ok is false for an empty set.
func Max(xs []float64) (max float64, ok bool) {
	if len(xs) == 0 {
		return 0, false
	}
	max = xs[0]
	for _, x := range xs[1:] {
		if x > max {
			max = x
		}
	}
	return max, true
}

// Mean returns the arithmetic mean. ok is false for an empty set.
func Mean(xs []float64) (mean float64, ok bool) {
	if len(xs) == 0 {
		return 0, false
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), true
}

// StdDev returns the population standard deviation. ok is false for an empty
// set.
func StdDev(xs []float64) (sd float64, ok bool) {
	mean, ok := Mean(xs)
	if !ok {
		return 0, false
	}
	var sumSq float64
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(xs))), true
}

// Positive filters xs down to strictly positive samples. Non-positive deltas
// come from midnight rollover or out-of-order logging and are dropped rather
// than clamped, so they cannot drag a mean toward zero.
func Positive(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if x > 0 {
			out = append(out, x)
		}
	}
	return out
}
