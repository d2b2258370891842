// Package numeric holds the floating point tolerance shared by the load
// validation rules and the timeline scheduler.
package numeric

import "gonum.org/v1/gonum/floats/scalar"

// Tolerance is the absolute and relative tolerance used by every comparison
// in this package.
const Tolerance = 1.0e-6

// IsZero reports whether v is zero within Tolerance.
func IsZero(v float64) bool {
	return scalar.EqualWithinAbs(v, 0, Tolerance)
}

// IsEqual reports whether a and b are equal within an absolute or relative
// Tolerance.
func IsEqual(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, Tolerance, Tolerance)
}

// IsLT reports whether a is strictly less than b and not nearly equal to it.
func IsLT(a, b float64) bool {
	return a < b && !IsEqual(a, b)
}

// IsLE reports whether a is less than or nearly equal to b.
func IsLE(a, b float64) bool {
	return a < b || IsEqual(a, b)
}

// InRange reports whether lo <= v <= hi within tolerance.
func InRange(v, lo, hi float64) bool {
	return IsLE(lo, v) && IsLE(v, hi)
}

// Snap returns target when v is nearly equal to it, otherwise v.
func Snap(v, target float64) float64 {
	if IsEqual(v, target) {
		return target
	}
	return v
}
