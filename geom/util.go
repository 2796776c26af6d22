package geom

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
func Equal[R Scalar](a, b R) bool {
	return math.Abs(float64(a-b)) < Tolerance
}

func abs[R Scalar](x R) R {
	if x < 0 {
		return -x
	}
	return x
}
