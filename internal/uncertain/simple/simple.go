// Package simple provides non-correlating uncertainty types: every operation
// assumes its operands are independent and combines deviations in quadrature.
//
// These are cheap — no registry, no derivative maps — but they overestimate
// uncertainty whenever operands share provenance: Sub(x, x) reports
// sqrt(2)·σ, not zero. Use the uncertain package when expressions reuse the
// same measured quantity.
package simple

import (
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/uncertain/internal/uncertain"
)

// UDouble is a float64 value with an attached standard deviation and no
// correlation tracking.
type UDouble struct {
	nominal float64
	stddev  float64
}

// New returns a UDouble, rejecting a negative deviation.
func New(nominal, stddev float64) (UDouble, error) {
	if stddev < 0 {
		return UDouble{}, fmt.Errorf("%w: %g", uncertain.ErrInvalidStdDev, stddev)
	}
	return UDouble{nominal: nominal, stddev: stddev}, nil
}

// Nominal returns the central estimate.
func (u UDouble) Nominal() float64 { return u.nominal }

// StdDev returns the stored deviation.
func (u UDouble) StdDev() float64 { return u.stddev }

// Add combines deviations in quadrature: sqrt(σ₁² + σ₂²).
func (u UDouble) Add(o UDouble) UDouble {
	return UDouble{
		nominal: u.nominal + o.nominal,
		stddev:  gomath.Sqrt(u.stddev*u.stddev + o.stddev*o.stddev),
	}
}

// Sub combines deviations like Add; the operands are assumed independent.
func (u UDouble) Sub(o UDouble) UDouble {
	return UDouble{
		nominal: u.nominal - o.nominal,
		stddev:  gomath.Sqrt(u.stddev*u.stddev + o.stddev*o.stddev),
	}
}

// Mul propagates σ = sqrt(b²σₐ² + a²σᵦ²).
func (u UDouble) Mul(o UDouble) UDouble {
	return UDouble{
		nominal: u.nominal * o.nominal,
		stddev: gomath.Sqrt(o.nominal*o.nominal*u.stddev*u.stddev +
			u.nominal*u.nominal*o.stddev*o.stddev),
	}
}

// MulScalar scales the deviation by |c|.
func (u UDouble) MulScalar(c float64) UDouble {
	return UDouble{nominal: u.nominal * c, stddev: u.stddev * gomath.Abs(c)}
}

// Div propagates σ = sqrt(σₐ² + (a/b)²σᵦ²)/|b|, failing on a zero divisor.
func (u UDouble) Div(o UDouble) (UDouble, error) {
	if o.nominal == 0 {
		return UDouble{}, uncertain.ErrDivisionByZero
	}
	ratio := u.nominal / o.nominal
	return UDouble{
		nominal: ratio,
		stddev: gomath.Sqrt(u.stddev*u.stddev+ratio*ratio*o.stddev*o.stddev) /
			gomath.Abs(o.nominal),
	}, nil
}

// DivScalar divides nominal and deviation by |c|, failing on zero.
func (u UDouble) DivScalar(c float64) (UDouble, error) {
	if c == 0 {
		return UDouble{}, uncertain.ErrDivisionByZero
	}
	return UDouble{nominal: u.nominal / c, stddev: u.stddev / gomath.Abs(c)}, nil
}

// Pow propagates through base and exponent, requiring a positive base:
// σ = |v|·sqrt((exp/base·σ_base)² + (ln base·σ_exp)²).
func (u UDouble) Pow(o UDouble) (UDouble, error) {
	if u.nominal <= 0 {
		return UDouble{}, fmt.Errorf("%w: pow base must be positive, got %g", uncertain.ErrDomain, u.nominal)
	}
	nom := gomath.Pow(u.nominal, o.nominal)
	sigma := gomath.Abs(nom) * gomath.Sqrt(
		gomath.Pow(o.nominal/u.nominal*u.stddev, 2)+
			gomath.Pow(gomath.Log(u.nominal)*o.stddev, 2))
	return UDouble{nominal: nom, stddev: sigma}, nil
}

// String formats the value as "nominal ± stddev".
func (u UDouble) String() string {
	return fmt.Sprintf("%g ± %g", u.nominal, u.stddev)
}

// UFloat is the single-precision twin of UDouble.
type UFloat struct {
	nominal float32
	stddev  float32
}

// NewFloat returns a UFloat, rejecting a negative deviation.
func NewFloat(nominal, stddev float32) (UFloat, error) {
	if stddev < 0 {
		return UFloat{}, fmt.Errorf("%w: %g", uncertain.ErrInvalidStdDev, stddev)
	}
	return UFloat{nominal: nominal, stddev: stddev}, nil
}

// Nominal returns the central estimate.
func (u UFloat) Nominal() float32 { return u.nominal }

// StdDev returns the stored deviation.
func (u UFloat) StdDev() float32 { return u.stddev }

// Add combines deviations in quadrature.
func (u UFloat) Add(o UFloat) UFloat {
	return UFloat{
		nominal: u.nominal + o.nominal,
		stddev:  quadrature32(u.stddev, o.stddev),
	}
}

// Sub combines deviations like Add.
func (u UFloat) Sub(o UFloat) UFloat {
	return UFloat{
		nominal: u.nominal - o.nominal,
		stddev:  quadrature32(u.stddev, o.stddev),
	}
}

// Mul propagates σ = sqrt(b²σₐ² + a²σᵦ²).
func (u UFloat) Mul(o UFloat) UFloat {
	return UFloat{
		nominal: u.nominal * o.nominal,
		stddev:  quadrature32(o.nominal*u.stddev, u.nominal*o.stddev),
	}
}

// Div propagates σ = sqrt(σₐ² + (a/b)²σᵦ²)/|b|, failing on a zero divisor.
func (u UFloat) Div(o UFloat) (UFloat, error) {
	if o.nominal == 0 {
		return UFloat{}, uncertain.ErrDivisionByZero
	}
	ratio := u.nominal / o.nominal
	sigma := quadrature32(u.stddev, ratio*o.stddev) / float32(gomath.Abs(float64(o.nominal)))
	return UFloat{nominal: ratio, stddev: sigma}, nil
}

// String formats the value as "nominal ± stddev".
func (u UFloat) String() string {
	return fmt.Sprintf("%g ± %g", u.nominal, u.stddev)
}

func quadrature32(a, b float32) float32 {
	return float32(gomath.Sqrt(float64(a)*float64(a) + float64(b)*float64(b)))
}
