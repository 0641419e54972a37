// Package uformat renders uncertain values for humans. It consumes only the
// Nominal and StdDev accessors, so it works unchanged for any future value
// variant with the same surface.
package uformat

import (
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/uncertain/internal/uncertain"
)

// Fixed renders "nominal ± stddev" with prec digits after the decimal point.
func Fixed(v uncertain.Value, prec int) string {
	return fmt.Sprintf("%.*f ± %.*f", prec, v.Nominal(), prec, v.StdDev())
}

// Scientific renders "nominal ± stddev" in scientific notation with prec
// digits of mantissa precision.
func Scientific(v uncertain.Value, prec int) string {
	return fmt.Sprintf("%.*e ± %.*e", prec, v.Nominal(), prec, v.StdDev())
}

// Compact renders the parenthetical notation common in physics papers: the
// deviation is rounded to two significant digits and attached to the nominal
// value's last decimals, e.g. 1.234 ± 0.056 → "1.234(56)".
//
// Values without uncertainty render as the plain nominal number; non-finite
// components fall back to the "±" form.
func Compact(v uncertain.Value) string {
	nom, sigma := v.Nominal(), v.StdDev()
	if sigma == 0 {
		return fmt.Sprintf("%g", nom)
	}
	if gomath.IsNaN(nom) || gomath.IsInf(nom, 0) || gomath.IsNaN(sigma) || gomath.IsInf(sigma, 0) {
		return fmt.Sprintf("%g ± %g", nom, sigma)
	}

	// Two significant digits of the deviation.
	exp := int(gomath.Floor(gomath.Log10(sigma)))
	digits := int(gomath.Round(sigma / gomath.Pow(10, float64(exp-1))))
	if digits >= 100 {
		// 0.0996 rounds up to 0.10: shift the exponent instead of
		// carrying three digits.
		digits = 10
		exp++
	}

	if exp >= 1 {
		// Deviation at or above 10: no decimals, parenthetical carries
		// the full magnitude.
		scale := gomath.Pow(10, float64(exp-1))
		return fmt.Sprintf("%.0f(%.0f)", nom, float64(digits)*scale)
	}

	decimals := 1 - exp
	return fmt.Sprintf("%.*f(%d)", decimals, nom, digits)
}
