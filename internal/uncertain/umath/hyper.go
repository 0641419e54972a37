package umath

import (
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/uncertain/internal/uncertain"
)

// Sinh returns sinh(x). Derivative cosh(x).
func Sinh(x uncertain.Value) uncertain.Value {
	return uncertain.Chain(x, gomath.Sinh(x.Nominal()), gomath.Cosh(x.Nominal()))
}

// Cosh returns cosh(x). Derivative sinh(x).
func Cosh(x uncertain.Value) uncertain.Value {
	return uncertain.Chain(x, gomath.Cosh(x.Nominal()), gomath.Sinh(x.Nominal()))
}

// Tanh returns tanh(x). Derivative 1/cosh²(x).
func Tanh(x uncertain.Value) uncertain.Value {
	coshX := gomath.Cosh(x.Nominal())
	return uncertain.Chain(x, gomath.Tanh(x.Nominal()), 1/(coshX*coshX))
}

// Asinh returns asinh(x). Derivative 1/sqrt(1+x²).
func Asinh(x uncertain.Value) uncertain.Value {
	val := x.Nominal()
	return uncertain.Chain(x, gomath.Asinh(val), 1/gomath.Sqrt(1+val*val))
}

// Acosh returns acosh(x) for x > 1. At x = 1 the function value exists but
// the derivative 1/sqrt(x²-1) does not.
func Acosh(x uncertain.Value) (uncertain.Value, error) {
	val := x.Nominal()
	if val <= 1 {
		return uncertain.Value{}, fmt.Errorf("%w: acosh input must be greater than 1, got %g", uncertain.ErrDomain, val)
	}
	return uncertain.Chain(x, gomath.Acosh(val), 1/gomath.Sqrt(val*val-1)), nil
}

// Atanh returns atanh(x) for x in (-1, 1). Derivative 1/(1-x²).
func Atanh(x uncertain.Value) (uncertain.Value, error) {
	val := x.Nominal()
	if val <= -1 || val >= 1 {
		return uncertain.Value{}, fmt.Errorf("%w: atanh input must be in (-1, 1), got %g", uncertain.ErrDomain, val)
	}
	return uncertain.Chain(x, gomath.Atanh(val), 1/(1-val*val)), nil
}
