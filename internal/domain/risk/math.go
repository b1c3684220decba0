package risk

import (
	"math"
	"time"
)

const daysPerYear = 365.25

// clamp100 bounds a score to the canonical [0,100] scale.
func clamp100(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

// yearsBetween returns the (possibly fractional) number of years from a to b,
// never negative: future-dated input counts as age zero.
func yearsBetween(a, b time.Time) float64 {
	if y := b.Sub(a).Hours() / 24 / daysPerYear; y > 0 {
		return y
	}
	return 0
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleVariance is the unbiased (n-1) variance, 0 for fewer than two values.
func sampleVariance(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return ss / float64(len(xs)-1)
}

func maxFloat(xs []float64) float64 {
	var m float64
	for _, x := range xs {
		if x > m {
			m = x
		}
	}
	return m
}
