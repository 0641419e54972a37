package uncertain

import "math"

// Zero returns the additive identity.
func Zero() Value {
	return Const(0)
}

// One returns the multiplicative identity.
func One() Value {
	return Const(1)
}

// Cmp compares nominal values only, returning -1, 0 or +1. Uncertainty and
// provenance are deliberately ignored: two measurements can agree in central
// value while carrying different deviations.
func (v Value) Cmp(o Value) int {
	switch {
	case v.nominal < o.nominal:
		return -1
	case v.nominal > o.nominal:
		return 1
	default:
		return 0
	}
}

// Equal reports v.Nominal() == o.Nominal().
func (v Value) Equal(o Value) bool {
	return v.nominal == o.nominal
}

// Less reports v.Nominal() < o.Nominal().
func (v Value) Less(o Value) bool {
	return v.nominal < o.nominal
}

// LessEq reports v.Nominal() <= o.Nominal().
func (v Value) LessEq(o Value) bool {
	return v.nominal <= o.nominal
}

// Greater reports v.Nominal() > o.Nominal().
func (v Value) Greater(o Value) bool {
	return v.nominal > o.nominal
}

// GreaterEq reports v.Nominal() >= o.Nominal().
func (v Value) GreaterEq(o Value) bool {
	return v.nominal >= o.nominal
}

// IsFinite reports whether both the nominal value and the standard deviation
// are finite.
func (v Value) IsFinite() bool {
	if math.IsInf(v.nominal, 0) || math.IsNaN(v.nominal) {
		return false
	}
	sigma := v.StdDev()
	return !math.IsInf(sigma, 0) && !math.IsNaN(sigma)
}

// IsNaN reports whether the nominal value or the standard deviation is NaN.
func (v Value) IsNaN() bool {
	return math.IsNaN(v.nominal) || math.IsNaN(v.StdDev())
}
