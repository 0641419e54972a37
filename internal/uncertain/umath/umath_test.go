package umath

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/uncertain/internal/uncertain"
)

func atomic(t *testing.T, reg *uncertain.VarRegistry, nominal, stddev float64) uncertain.Value {
	t.Helper()
	v, err := uncertain.NewWith(reg, nominal, stddev)
	require.NoError(t, err)
	return v
}

func TestTrig(t *testing.T) {
	reg := uncertain.NewVarRegistry()

	t.Run("Sin propagates |cos(x)|·σ", func(t *testing.T) {
		x := atomic(t, reg, 0.5, 0.1)
		v := Sin(x)
		assert.InDelta(t, gomath.Sin(0.5), v.Nominal(), 1e-12)
		assert.InDelta(t, gomath.Cos(0.5)*0.1, v.StdDev(), 1e-12)
	})

	t.Run("Cos propagates |sin(x)|·σ", func(t *testing.T) {
		x := atomic(t, reg, 0.5, 0.1)
		v := Cos(x)
		assert.InDelta(t, gomath.Cos(0.5), v.Nominal(), 1e-12)
		assert.InDelta(t, gomath.Sin(0.5)*0.1, v.StdDev(), 1e-12)
	})

	t.Run("Pythagorean identity has zero uncertainty", func(t *testing.T) {
		x := atomic(t, reg, 0.5, 0.1)
		s := Sin(x)
		c := Cos(x)
		ident := s.Mul(s).Add(c.Mul(c))

		assert.InDelta(t, 1.0, ident.Nominal(), 1e-12)
		assert.InDelta(t, 0.0, ident.StdDev(), 1e-10, "d/dx (sin²+cos²) ≡ 0")
	})

	t.Run("Tan", func(t *testing.T) {
		x := atomic(t, reg, 0.3, 0.05)
		v, err := Tan(x)
		require.NoError(t, err)
		cosX := gomath.Cos(0.3)
		assert.InDelta(t, gomath.Tan(0.3), v.Nominal(), 1e-12)
		assert.InDelta(t, 0.05/(cosX*cosX), v.StdDev(), 1e-12)
	})

	t.Run("Asin and Acos domains", func(t *testing.T) {
		x := atomic(t, reg, 0.5, 0.1)

		v, err := Asin(x)
		require.NoError(t, err)
		assert.InDelta(t, gomath.Asin(0.5), v.Nominal(), 1e-12)
		assert.InDelta(t, 0.1/gomath.Sqrt(0.75), v.StdDev(), 1e-12)

		w, err := Acos(x)
		require.NoError(t, err)
		assert.InDelta(t, gomath.Acos(0.5), w.Nominal(), 1e-12)
		assert.InDelta(t, 0.1/gomath.Sqrt(0.75), w.StdDev(), 1e-12)

		for _, bad := range []float64{-1.5, 1.5, 1.0, -1.0} {
			_, err := Asin(uncertain.Const(bad))
			assert.ErrorIs(t, err, uncertain.ErrDomain, "asin(%g)", bad)
			_, err = Acos(uncertain.Const(bad))
			assert.ErrorIs(t, err, uncertain.ErrDomain, "acos(%g)", bad)
		}
	})

	t.Run("Atan", func(t *testing.T) {
		x := atomic(t, reg, 2.0, 0.1)
		v := Atan(x)
		assert.InDelta(t, gomath.Atan(2.0), v.Nominal(), 1e-12)
		assert.InDelta(t, 0.1/5.0, v.StdDev(), 1e-12)
	})

	t.Run("Atan2 merges both arguments", func(t *testing.T) {
		y := atomic(t, reg, 1.0, 0.1)
		x := atomic(t, reg, 1.0, 0.1)

		v, err := Atan2(y, x)
		require.NoError(t, err)
		assert.InDelta(t, gomath.Pi/4, v.Nominal(), 1e-12)
		// partials ±1/2 each, independent → sqrt(2)·0.05
		assert.InDelta(t, gomath.Sqrt(2)*0.05, v.StdDev(), 1e-12)
	})

	t.Run("Atan2 of a value with itself collapses", func(t *testing.T) {
		x := atomic(t, reg, 3.0, 0.2)
		v, err := Atan2(x, x)
		require.NoError(t, err)
		assert.InDelta(t, gomath.Pi/4, v.Nominal(), 1e-12)
		// partials x/(2x²) and -x/(2x²) cancel on the shared variable
		assert.InDelta(t, 0.0, v.StdDev(), 1e-12)
	})

	t.Run("Atan2 at origin fails", func(t *testing.T) {
		_, err := Atan2(uncertain.Const(0), uncertain.Const(0))
		assert.ErrorIs(t, err, uncertain.ErrDomain)
	})
}

func TestHyperbolic(t *testing.T) {
	reg := uncertain.NewVarRegistry()

	t.Run("Sinh Cosh Tanh", func(t *testing.T) {
		x := atomic(t, reg, 0.7, 0.1)

		v := Sinh(x)
		assert.InDelta(t, gomath.Sinh(0.7), v.Nominal(), 1e-12)
		assert.InDelta(t, gomath.Cosh(0.7)*0.1, v.StdDev(), 1e-12)

		w := Cosh(x)
		assert.InDelta(t, gomath.Cosh(0.7), w.Nominal(), 1e-12)
		assert.InDelta(t, gomath.Sinh(0.7)*0.1, w.StdDev(), 1e-12)

		u := Tanh(x)
		coshX := gomath.Cosh(0.7)
		assert.InDelta(t, gomath.Tanh(0.7), u.Nominal(), 1e-12)
		assert.InDelta(t, 0.1/(coshX*coshX), u.StdDev(), 1e-12)
	})

	t.Run("Cosh deviation is non-negative for negative x", func(t *testing.T) {
		x := atomic(t, reg, -0.7, 0.1)
		v := Cosh(x)
		assert.InDelta(t, gomath.Sinh(0.7)*0.1, v.StdDev(), 1e-12)
	})

	t.Run("Asinh", func(t *testing.T) {
		x := atomic(t, reg, 2.0, 0.1)
		v := Asinh(x)
		assert.InDelta(t, gomath.Asinh(2.0), v.Nominal(), 1e-12)
		assert.InDelta(t, 0.1/gomath.Sqrt(5), v.StdDev(), 1e-12)
	})

	t.Run("Acosh domain", func(t *testing.T) {
		x := atomic(t, reg, 2.0, 0.1)
		v, err := Acosh(x)
		require.NoError(t, err)
		assert.InDelta(t, gomath.Acosh(2.0), v.Nominal(), 1e-12)
		assert.InDelta(t, 0.1/gomath.Sqrt(3), v.StdDev(), 1e-12)

		for _, bad := range []float64{0.5, 1.0, -2.0} {
			_, err := Acosh(uncertain.Const(bad))
			assert.ErrorIs(t, err, uncertain.ErrDomain, "acosh(%g)", bad)
		}
	})

	t.Run("Atanh domain", func(t *testing.T) {
		x := atomic(t, reg, 0.5, 0.1)
		v, err := Atanh(x)
		require.NoError(t, err)
		assert.InDelta(t, gomath.Atanh(0.5), v.Nominal(), 1e-12)
		assert.InDelta(t, 0.1/0.75, v.StdDev(), 1e-12)

		for _, bad := range []float64{-1.0, 1.0, 2.0} {
			_, err := Atanh(uncertain.Const(bad))
			assert.ErrorIs(t, err, uncertain.ErrDomain, "atanh(%g)", bad)
		}
	})
}

func TestExpLog(t *testing.T) {
	reg := uncertain.NewVarRegistry()

	t.Run("Exp", func(t *testing.T) {
		x := atomic(t, reg, 1.0, 0.1)
		v := Exp(x)
		assert.InDelta(t, gomath.E, v.Nominal(), 1e-12)
		assert.InDelta(t, gomath.E*0.1, v.StdDev(), 1e-12)
	})

	t.Run("Log and Log10", func(t *testing.T) {
		x := atomic(t, reg, 10.0, 0.5)

		v, err := Log(x)
		require.NoError(t, err)
		assert.InDelta(t, gomath.Log(10.0), v.Nominal(), 1e-12)
		assert.InDelta(t, 0.05, v.StdDev(), 1e-12)

		w, err := Log10(x)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, w.Nominal(), 1e-12)
		assert.InDelta(t, 0.05/gomath.Ln10, w.StdDev(), 1e-12)

		for _, bad := range []float64{0, -1} {
			_, err := Log(uncertain.Const(bad))
			assert.ErrorIs(t, err, uncertain.ErrDomain, "log(%g)", bad)
			_, err = Log10(uncertain.Const(bad))
			assert.ErrorIs(t, err, uncertain.ErrDomain, "log10(%g)", bad)
		}
	})

	t.Run("Log of exp recovers the input deviation", func(t *testing.T) {
		x := atomic(t, reg, 1.5, 0.2)
		v, err := Log(Exp(x))
		require.NoError(t, err)
		assert.InDelta(t, 1.5, v.Nominal(), 1e-12)
		assert.InDelta(t, 0.2, v.StdDev(), 1e-12)

		diff := v.Sub(x)
		assert.InDelta(t, 0.0, diff.StdDev(), 1e-10, "exp/log round trip stays correlated")
	})

	t.Run("Sqrt", func(t *testing.T) {
		x := atomic(t, reg, 4.0, 0.2)
		v, err := Sqrt(x)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, v.Nominal(), 1e-12)
		assert.InDelta(t, 0.2/4.0, v.StdDev(), 1e-12)

		for _, bad := range []float64{0, -4} {
			_, err := Sqrt(uncertain.Const(bad))
			assert.ErrorIs(t, err, uncertain.ErrDomain, "sqrt(%g)", bad)
		}
	})

	t.Run("Sqrt agrees with Pow one half", func(t *testing.T) {
		x := atomic(t, reg, 4.0, 0.2)

		s, err := Sqrt(x)
		require.NoError(t, err)
		p, err := Pow(x, uncertain.Const(0.5))
		require.NoError(t, err)

		assert.InDelta(t, p.Nominal(), s.Nominal(), 1e-12)
		assert.InDelta(t, p.StdDev(), s.StdDev(), 1e-12)
	})
}

func TestAbsHypot(t *testing.T) {
	reg := uncertain.NewVarRegistry()

	t.Run("Abs", func(t *testing.T) {
		x := atomic(t, reg, -3.0, 0.3)
		v := Abs(x)
		assert.InDelta(t, 3.0, v.Nominal(), 1e-12)
		assert.InDelta(t, 0.3, v.StdDev(), 1e-12)

		sum := v.Add(x) // |x| + x has derivative 0 for x < 0
		assert.InDelta(t, 0.0, sum.StdDev(), 1e-12)
	})

	t.Run("Abs at zero has zero derivative", func(t *testing.T) {
		x := atomic(t, reg, 0.0, 0.5)
		v := Abs(x)
		assert.Equal(t, 0.0, v.Nominal())
		assert.InDelta(t, 0.0, v.StdDev(), 1e-12)
	})

	t.Run("Hypot of independent values", func(t *testing.T) {
		x := atomic(t, reg, 3.0, 0.1)
		y := atomic(t, reg, 4.0, 0.2)

		v := Hypot(x, y)
		assert.InDelta(t, 5.0, v.Nominal(), 1e-12)
		want := gomath.Sqrt(gomath.Pow(3.0/5.0*0.1, 2) + gomath.Pow(4.0/5.0*0.2, 2))
		assert.InDelta(t, want, v.StdDev(), 1e-12)
	})

	t.Run("Hypot of a value with itself collapses", func(t *testing.T) {
		x := atomic(t, reg, 1.0, 0.1)
		v := Hypot(x, x)
		assert.InDelta(t, gomath.Sqrt(2), v.Nominal(), 1e-12)
		// both partials 1/sqrt(2) on the same variable → σ = sqrt(2)·0.1
		assert.InDelta(t, gomath.Sqrt(2)*0.1, v.StdDev(), 1e-12)
	})

	t.Run("Hypot at origin sums derivative maps", func(t *testing.T) {
		x := atomic(t, reg, 0.0, 0.1)
		y := atomic(t, reg, 0.0, 0.2)

		v := Hypot(x, y)
		assert.Equal(t, 0.0, v.Nominal())
		assert.InDelta(t, gomath.Sqrt(0.01+0.04), v.StdDev(), 1e-12)
	})
}
