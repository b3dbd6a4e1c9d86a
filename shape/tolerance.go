package shape

import "math"

// Epsilon is the default absolute tolerance for comparing computed areas and
// perimeters against expected values.
const Epsilon = 1e-3

// RightAngleTolerance bounds |x²+y²−z²| relative to z², where z is the
// longest side of a triangle.
const RightAngleTolerance = 1e-4

// ApproxEqual reports whether |x−y| < tol.
func ApproxEqual(x, y, tol float64) bool {
	return math.Abs(x-y) < tol
}

func isPositiveFinite(v float64) bool {
	// NaN fails every comparison, so v > 0 also rejects it.
	return v > 0 && !math.IsInf(v, 1)
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
