// Package math2d provides 2D vector math and tolerance-aware geometric
// primitives for curve and polyline processing.
//
// All comparisons in this package are "fuzzy": they tolerate a small fixed
// epsilon so that configurations near degenerate geometry (tangency,
// concentric circles) classify into stable categories instead of flipping
// on floating-point rounding noise.
package math2d

import "math"

const (
	// Epsilon64 is the comparison tolerance used for float64 values.
	Epsilon64 = 1e-8
	// Epsilon32 is the comparison tolerance used for float32 values.
	Epsilon32 = 1e-5
)

// Float is the scalar constraint for all math2d types and functions.
type Float interface {
	float32 | float64
}

// Eps returns the fixed comparison tolerance for T.
func Eps[T Float]() T {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return T(Epsilon32)
	}
	return T(Epsilon64)
}

// FuzzyEqZero reports whether |a| <= eps.
func FuzzyEqZero[T Float](a T) bool {
	return Abs(a) <= Eps[T]()
}

// FuzzyEq reports whether a is within eps of b.
func FuzzyEq[T Float](a, b T) bool {
	return Abs(a-b) <= Eps[T]()
}

// FuzzyLt reports whether a < b + eps. Values within tolerance of each
// other satisfy the comparison.
func FuzzyLt[T Float](a, b T) bool {
	return a < b+Eps[T]()
}

// FuzzyGt reports whether a > b - eps. Values within tolerance of each
// other satisfy the comparison.
func FuzzyGt[T Float](a, b T) bool {
	return a > b-Eps[T]()
}

// Abs returns |a|.
func Abs[T Float](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// Sqrt returns the square root of a.
func Sqrt[T Float](a T) T {
	return T(math.Sqrt(float64(a)))
}
