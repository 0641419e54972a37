package umath

import (
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/uncertain/internal/uncertain"
)

// Sin returns sin(x). Derivative cos(x).
func Sin(x uncertain.Value) uncertain.Value {
	return uncertain.Chain(x, gomath.Sin(x.Nominal()), gomath.Cos(x.Nominal()))
}

// Cos returns cos(x). Derivative -sin(x).
func Cos(x uncertain.Value) uncertain.Value {
	return uncertain.Chain(x, gomath.Cos(x.Nominal()), -gomath.Sin(x.Nominal()))
}

// Tan returns tan(x), failing where cos(x) is exactly zero.
func Tan(x uncertain.Value) (uncertain.Value, error) {
	cosX := gomath.Cos(x.Nominal())
	if cosX == 0 {
		return uncertain.Value{}, fmt.Errorf("%w: tangent undefined where cos(x) = 0", uncertain.ErrDomain)
	}
	return uncertain.Chain(x, gomath.Tan(x.Nominal()), 1/(cosX*cosX)), nil
}

// Asin returns asin(x) for x in (-1, 1). The endpoints are rejected as well:
// the function value exists there but the derivative 1/sqrt(1-x²) does not.
func Asin(x uncertain.Value) (uncertain.Value, error) {
	val := x.Nominal()
	if val < -1 || val > 1 {
		return uncertain.Value{}, fmt.Errorf("%w: asin input must be in [-1, 1], got %g", uncertain.ErrDomain, val)
	}
	denom := gomath.Sqrt(1 - val*val)
	if denom == 0 {
		return uncertain.Value{}, fmt.Errorf("%w: asin derivative undefined at x = ±1", uncertain.ErrDomain)
	}
	return uncertain.Chain(x, gomath.Asin(val), 1/denom), nil
}

// Acos returns acos(x) for x in (-1, 1), rejecting the endpoints like Asin.
func Acos(x uncertain.Value) (uncertain.Value, error) {
	val := x.Nominal()
	if val < -1 || val > 1 {
		return uncertain.Value{}, fmt.Errorf("%w: acos input must be in [-1, 1], got %g", uncertain.ErrDomain, val)
	}
	denom := gomath.Sqrt(1 - val*val)
	if denom == 0 {
		return uncertain.Value{}, fmt.Errorf("%w: acos derivative undefined at x = ±1", uncertain.ErrDomain)
	}
	return uncertain.Chain(x, gomath.Acos(val), -1/denom), nil
}

// Atan returns atan(x). Derivative 1/(1+x²).
func Atan(x uncertain.Value) uncertain.Value {
	val := x.Nominal()
	return uncertain.Chain(x, gomath.Atan(val), 1/(1+val*val))
}

// Atan2 returns atan2(y, x), merging contributions from both arguments so
// that shared variables stay correlated (Atan2(x, x) collapses correctly).
// The origin is rejected: the angle is undefined there.
func Atan2(y, x uncertain.Value) (uncertain.Value, error) {
	yn, xn := y.Nominal(), x.Nominal()
	rr := xn*xn + yn*yn
	if rr == 0 {
		return uncertain.Value{}, fmt.Errorf("%w: atan2 undefined at (0, 0)", uncertain.ErrDomain)
	}
	// ∂/∂y = x/(x²+y²), ∂/∂x = -y/(x²+y²)
	return uncertain.Combine(y, x, gomath.Atan2(yn, xn), xn/rr, -yn/rr), nil
}
