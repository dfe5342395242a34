package math

import "math"

// Epsilon is the shared tolerance for floating-point comparisons,
// near-zero tests in the intersection solvers, and the over/under
// point bias. Using one value everywhere avoids shadow acne and
// keeps refraction rays from re-hitting their own entry surface.
const Epsilon = 1e-5

// ApproxEqual reports whether two floats are equal within Epsilon
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
