// Package uncertain propagates measurement uncertainty through arithmetic
// with full correlation tracking.
//
// Every atomic variable (a value constructed with an explicit nonzero
// standard deviation) is registered once in a VarRegistry and identified by
// a VarID. Derived values carry a sparse map of partial derivatives with
// respect to those atomic variables and recompute their standard deviation
// on demand from the registry's original deviations. Because derivatives to
// the same variable merge additively, algebraic identities cancel exactly:
//
//	x, _ := uncertain.New(10, 0.5)
//	x.Sub(x).StdDev()              // 0, not sqrt(2)·0.5
//	x.Add(x).StdDev()              // 1.0
//	x.Sub(x.IndependentCopy())     // sqrt(2)·0.5, correlation broken
//
// Subpackages:
//   - umath: elementary functions (trig, hyperbolic, exp/log, sqrt, abs,
//     atan2, hypot) with domain validation
//   - simple: non-correlating quadrature variants for quick estimates
//   - uformat: human-readable formatting (fixed, scientific, parenthetical)
//   - umat: matrices of uncertain values on gonum
//
// Propagation is strictly first order (forward-mode linearization); there is
// no covariance-matrix tracking and no non-Gaussian model.
package uncertain
