package numeric

import "math"

// MachineEpsilon returns the distance from 1.0 to the next larger
// representable float64 (2^-52). This is the classic "machine epsilon":
// the upper bound on relative rounding error for a single operation in
// round-to-nearest.
//
// It is computed rather than hard-coded so the definition is visible:
// the gap between 1 and its successor.
func MachineEpsilon() float64 {
	return math.Nextafter(1, 2) - 1
}

// ULP returns the size of one unit in the last place at x: the gap
// between |x| and the next representable float64 away from zero.
// ULP(0) returns the smallest positive subnormal.
func ULP(x float64) float64 {
	x = math.Abs(x)
	return math.Nextafter(x, math.Inf(1)) - x
}

// RelativeError returns |a-b| scaled by the larger operand magnitude,
// the standard symmetric relative-error measure.
//
// The second return value is false when the relative error is undefined:
// both operands exactly zero (division by zero guarded per the harness
// edge-case policy), or either operand non-finite. In that case the
// first return value is 0.
func RelativeError(a, b float64) (float64, bool) {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return 0, false
	}

	denom := math.Max(math.Abs(a), math.Abs(b))
	if denom == 0 {
		// Both values underflowed to exactly zero: zero absolute error,
		// undefined relative error. Never divide by zero here.
		return 0, false
	}

	return math.Abs(a-b) / denom, true
}
