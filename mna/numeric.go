package mna

import (
	"math"

	"golang.org/x/exp/constraints"
)

// absOf is math.Abs over any float width.
func absOf[T constraints.Float](v T) T {
	return T(math.Abs(float64(v)))
}

// maxAbs returns the largest absolute value in vals, 0 for an empty slice.
func maxAbs[T constraints.Float](vals []T) T {
	var best T
	for _, v := range vals {
		if a := absOf(v); a > best {
			best = a
		}
	}

	return best
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
