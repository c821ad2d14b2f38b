// Package mathkit is a numeric evaluation core for interactive math teaching
// tools: summation, quadratic analysis, right-triangle solving, descriptive
// statistics, fixed-size vector/matrix algebra, and trigonometric identity
// verification.
//
// Design goals:
//   - Pure functions over plain float64 inputs, structured value results
//   - No hidden state; every result is freshly allocated per call
//   - Defined answers for every numeric edge case (no NaN/Inf leaks, no panics)
//   - JSON tool-call surface for embedding in services and agent backends
package mathkit

import "gonum.org/v1/gonum/floats/scalar"

// Tolerance policy. The interactive widgets this core serves display 4-6
// significant digits, so equality is decided relative-or-absolute rather
// than bitwise. One constant per concern; do not introduce ad-hoc epsilons
// elsewhere.
const (
	// EpsEquality is the general-purpose relative tolerance for comparing
	// two computed float64 values (loop vs closed form, round trips).
	EpsEquality = 1e-9

	// EpsAbs is the absolute floor used alongside EpsEquality so that
	// comparisons near zero still succeed, and on its own for display-grade
	// classification (discriminant ≈ 0, special-triangle side ratios).
	EpsAbs = 1e-6

	// EpsIdentity is the tolerance for trigonometric identity verification,
	// where both sides are single evaluations with little accumulated error.
	EpsIdentity = 1e-10

	// EpsSingular guards divisions: cos θ ≈ 0, vector magnitude ≈ 0,
	// determinant ≈ 0.
	EpsSingular = 1e-9
)

// approxEqual reports whether a and b agree within the general policy.
func approxEqual(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, EpsAbs, EpsEquality)
}

// nearZero reports whether v should be treated as a singular zero
// (divisor guards, asymptote detection).
func nearZero(v float64) bool {
	return scalar.EqualWithinAbs(v, 0, EpsSingular)
}
