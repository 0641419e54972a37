package umath

import (
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/uncertain/internal/uncertain"
)

// Exp returns e**x. Derivative exp(x).
func Exp(x uncertain.Value) uncertain.Value {
	nom := gomath.Exp(x.Nominal())
	return uncertain.Chain(x, nom, nom)
}

// Log returns ln(x) for x > 0. Derivative 1/x.
func Log(x uncertain.Value) (uncertain.Value, error) {
	val := x.Nominal()
	if val <= 0 {
		return uncertain.Value{}, fmt.Errorf("%w: logarithm undefined for non-positive input %g", uncertain.ErrDomain, val)
	}
	return uncertain.Chain(x, gomath.Log(val), 1/val), nil
}

// Log10 returns log₁₀(x) for x > 0. Derivative 1/(x·ln10).
func Log10(x uncertain.Value) (uncertain.Value, error) {
	val := x.Nominal()
	if val <= 0 {
		return uncertain.Value{}, fmt.Errorf("%w: logarithm undefined for non-positive input %g", uncertain.ErrDomain, val)
	}
	return uncertain.Chain(x, gomath.Log10(val), 1/(val*gomath.Ln10)), nil
}

// Sqrt returns sqrt(x) for x > 0. Zero is rejected too: the derivative
// 1/(2·sqrt(x)) diverges there.
func Sqrt(x uncertain.Value) (uncertain.Value, error) {
	val := x.Nominal()
	if val <= 0 {
		return uncertain.Value{}, fmt.Errorf("%w: sqrt input must be positive, got %g", uncertain.ErrDomain, val)
	}
	nom := gomath.Sqrt(val)
	return uncertain.Chain(x, nom, 1/(2*nom)), nil
}

// Pow returns base**exp. It is the arithmetic Pow re-exported here so that
// callers working through umath see the full elementary set in one place.
func Pow(base, exp uncertain.Value) (uncertain.Value, error) {
	return uncertain.Pow(base, exp)
}

// Abs returns |x|. The derivative is sign(x), taken as 0 exactly at x = 0,
// where the true subgradient is the whole interval [-1, 1].
func Abs(x uncertain.Value) uncertain.Value {
	val := x.Nominal()
	var sign float64
	switch {
	case val > 0:
		sign = 1
	case val < 0:
		sign = -1
	}
	return uncertain.Chain(x, gomath.Abs(val), sign)
}

// Hypot returns sqrt(x² + y²) with both partials merged, so Hypot(x, x)
// collapses to the correlated sqrt(2)·|x| result. At the origin both partials
// are undefined; the input derivative maps are summed directly instead, which
// matches plain quadrature combination rather than a true subgradient.
func Hypot(x, y uncertain.Value) uncertain.Value {
	nom := gomath.Hypot(x.Nominal(), y.Nominal())
	if nom == 0 {
		return uncertain.Combine(x, y, 0, 1, 1)
	}
	return uncertain.Combine(x, y, nom, x.Nominal()/nom, y.Nominal()/nom)
}
