package uncertain

import (
	"fmt"
	"math"
)

// Value is a scalar with a nominal value and a first-order sensitivity to
// zero or more atomic variables. Uncertainty is never stored directly on a
// derived value; it is recomputed from the derivative map and the registry's
// original deviations, which is what makes reuse of the same variable cancel
// correctly (x - x has zero uncertainty, not sqrt(2)·σ).
//
// Values have value semantics: operators return new Values and never mutate
// their operands. Only the explicit setters mutate, and those fully reset
// provenance. A Value is safe to read and copy concurrently; concurrent calls
// to its setters are not.
type Value struct {
	nominal float64
	deriv   map[VarID]float64
	reg     *VarRegistry
}

// Const returns a value with no uncertainty. Constants carry an empty
// derivative map and never occupy a registry slot.
func Const(v float64) Value {
	return Value{nominal: v}
}

// New registers a fresh atomic variable with the given deviation in the
// default registry. stddev must be >= 0; a zero deviation yields a constant
// without touching the registry.
func New(nominal, stddev float64) (Value, error) {
	return NewWith(Default(), nominal, stddev)
}

// NewWith is New against an explicit registry.
func NewWith(reg *VarRegistry, nominal, stddev float64) (Value, error) {
	if stddev < 0 {
		return Value{}, fmt.Errorf("%w: %g", ErrInvalidStdDev, stddev)
	}
	if stddev == 0 {
		return Const(nominal), nil
	}
	id := reg.Register(stddev)
	return Value{
		nominal: nominal,
		deriv:   map[VarID]float64{id: 1.0},
		reg:     reg,
	}, nil
}

// MustNew is New but panics on a negative deviation. For tests and static
// initialization.
func MustNew(nominal, stddev float64) Value {
	v, err := New(nominal, stddev)
	if err != nil {
		panic(err)
	}
	return v
}

// Derive builds a value from an already-computed derivative map, pruning
// negligible entries. This is the construction path for every operator and
// elementary function; raw derivative maps are never mutable through the
// public surface otherwise. Derive takes ownership of deriv.
func Derive(reg *VarRegistry, nominal float64, deriv map[VarID]float64) Value {
	return Value{nominal: nominal, deriv: prune(deriv), reg: reg}
}

// Chain applies the single-variable chain rule: the result has the given
// nominal value and every derivative of x scaled by slope = f'(x.Nominal()).
func Chain(x Value, nominal, slope float64) Value {
	deriv := make(map[VarID]float64, len(x.deriv))
	for id, d := range x.deriv {
		deriv[id] = slope * d
	}
	return Derive(x.reg, nominal, deriv)
}

// Nominal returns the central estimate.
func (v Value) Nominal() float64 {
	return v.nominal
}

// StdDev computes the standard deviation as the quadrature sum
// sqrt(Σ (∂v/∂xᵢ)²·σᵢ²) over the derivative map. It is recomputed on every
// call rather than cached; derivative maps are cheap to carry around while
// registry entries are immutable, so there is nothing to invalidate.
//
// StdDev panics if the map references an ID the registry does not know. That
// can only happen when Reset was called while values were still alive.
func (v Value) StdDev() float64 {
	if len(v.deriv) == 0 {
		return 0
	}
	var variance float64
	reg := v.registry()
	for id, d := range v.deriv {
		sigma, err := reg.Lookup(id)
		if err != nil {
			panic(err)
		}
		variance += d * d * sigma * sigma
	}
	return math.Sqrt(variance)
}

// IsAtomic reports whether v is an unmodified atomic variable: exactly one
// derivative entry with derivative exactly 1.0.
func (v Value) IsAtomic() bool {
	if len(v.deriv) != 1 {
		return false
	}
	for _, d := range v.deriv {
		return d == 1.0
	}
	return false
}

// IndependentCopy returns a new atomic variable with the same nominal value
// and the same current deviation but no shared provenance: subtracting the
// copy from the original combines in quadrature instead of cancelling.
func (v Value) IndependentCopy() Value {
	out, err := NewWith(v.registry(), v.nominal, v.StdDev())
	if err != nil {
		// StdDev is non-negative by construction.
		panic(err)
	}
	return out
}

// Derivatives returns a copy of the derivative map.
func (v Value) Derivatives() map[VarID]float64 {
	out := make(map[VarID]float64, len(v.deriv))
	for id, d := range v.deriv {
		out[id] = d
	}
	return out
}

// NumVars reports how many atomic variables v depends on.
func (v Value) NumVars() int {
	return len(v.deriv)
}

// SetNominal replaces the central estimate, keeping the derivative map.
func (v *Value) SetNominal(nominal float64) {
	v.nominal = nominal
}

// SetStdDev discards all provenance and re-seats v as a fresh atomic variable
// with the given deviation. Prior correlation with other values is lost.
func (v *Value) SetStdDev(stddev float64) error {
	out, err := NewWith(v.registry(), v.nominal, stddev)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// String formats the value as "nominal ± stddev".
func (v Value) String() string {
	return fmt.Sprintf("%g ± %g", v.nominal, v.StdDev())
}

// registry returns the registry v was built against, falling back to the
// process default for constants and zero values.
func (v Value) registry() *VarRegistry {
	if v.reg != nil {
		return v.reg
	}
	return Default()
}
