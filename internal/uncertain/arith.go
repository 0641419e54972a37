package uncertain

import (
	"fmt"
	"math"
)

// Combine applies the two-argument chain rule: the result has the given
// nominal value and derivative dfdx·∂x + dfdy·∂y for every atomic variable
// either operand depends on. Variables shared by both operands receive the
// sum of both weighted contributions, which is exactly what cancels
// correlated uncertainty (x - x merges {id:1} and {id:-1} into nothing).
func Combine(x, y Value, nominal, dfdx, dfdy float64) Value {
	deriv := make(map[VarID]float64, len(x.deriv)+len(y.deriv))
	for id, d := range x.deriv {
		deriv[id] = dfdx * d
	}
	for id, d := range y.deriv {
		deriv[id] += dfdy * d
	}
	reg := x.reg
	if reg == nil {
		reg = y.reg
	}
	return Derive(reg, nominal, deriv)
}

// Add returns v + o.
func (v Value) Add(o Value) Value {
	return Combine(v, o, v.nominal+o.nominal, 1, 1)
}

// Sub returns v - o. Subtracting a value from itself yields exactly zero
// uncertainty, unlike subtracting an independent copy.
func (v Value) Sub(o Value) Value {
	return Combine(v, o, v.nominal-o.nominal, 1, -1)
}

// Mul returns v * o with the product rule: d = o.nom·dv + v.nom·do.
func (v Value) Mul(o Value) Value {
	return Combine(v, o, v.nominal*o.nominal, o.nominal, v.nominal)
}

// Div returns v / o. The divisor's nominal value must be nonzero.
func (v Value) Div(o Value) (Value, error) {
	if o.nominal == 0 {
		return Value{}, ErrDivisionByZero
	}
	q := v.nominal / o.nominal
	return Combine(v, o, q, 1/o.nominal, -q/o.nominal), nil
}

// AddScalar returns v + c. Derivatives are unchanged.
func (v Value) AddScalar(c float64) Value {
	return Value{nominal: v.nominal + c, deriv: v.deriv, reg: v.reg}
}

// SubScalar returns v - c.
func (v Value) SubScalar(c float64) Value {
	return v.AddScalar(-c)
}

// MulScalar returns v * c.
func (v Value) MulScalar(c float64) Value {
	return Chain(v, v.nominal*c, c)
}

// DivScalar returns v / c, failing if c is exactly zero.
func (v Value) DivScalar(c float64) (Value, error) {
	if c == 0 {
		return Value{}, ErrDivisionByZero
	}
	return Chain(v, v.nominal/c, 1/c), nil
}

// ScalarDiv returns c / v, failing if v's nominal value is exactly zero.
func ScalarDiv(c float64, v Value) (Value, error) {
	if v.nominal == 0 {
		return Value{}, ErrDivisionByZero
	}
	return Chain(v, c/v.nominal, -c/(v.nominal*v.nominal)), nil
}

// Neg returns -v.
func (v Value) Neg() Value {
	return Chain(v, -v.nominal, -1)
}

// Pow returns base**exp with first-order propagation through both arguments:
//
//	d = v·(exp/base)·d_base + v·ln(base)·d_exp, v = base^exp
//
// The base's nominal value must be positive so that ln(base) exists.
func Pow(base, exp Value) (Value, error) {
	if base.nominal <= 0 {
		return Value{}, fmt.Errorf("%w: pow base must be positive, got %g", ErrDomain, base.nominal)
	}
	nom := math.Pow(base.nominal, exp.nominal)
	return Combine(base, exp, nom, nom*exp.nominal/base.nominal, nom*math.Log(base.nominal)), nil
}
