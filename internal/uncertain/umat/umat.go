// Package umat provides dense matrices of uncertain values, bridging the
// uncertain package to gonum. Uncertainty propagates element-wise through
// matrix arithmetic with full correlation tracking, and the nominal and
// deviation planes project out as gonum mat.Dense matrices for use with the
// rest of the gonum ecosystem.
package umat

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/GriffinCanCode/uncertain/internal/uncertain"
)

// Dense is a row-major matrix of uncertain.Value elements.
type Dense struct {
	rows, cols int
	data       []uncertain.Value
}

// NewDense creates an r×c matrix of certain zeros.
func NewDense(r, c int) *Dense {
	if r <= 0 || c <= 0 {
		panic(fmt.Sprintf("umat: invalid dimensions %dx%d", r, c))
	}
	return &Dense{rows: r, cols: c, data: make([]uncertain.Value, r*c)}
}

// FromDense builds a matrix of independent atomic variables from a nominal
// matrix and a matching matrix of standard deviations, registering each entry
// with reg. Entries with zero deviation become constants.
func FromDense(reg *uncertain.VarRegistry, nominal, stddev mat.Matrix) (*Dense, error) {
	r, c := nominal.Dims()
	sr, sc := stddev.Dims()
	if sr != r || sc != c {
		return nil, fmt.Errorf("umat: dimension mismatch %dx%d vs %dx%d", r, c, sr, sc)
	}

	out := NewDense(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := uncertain.NewWith(reg, nominal.At(i, j), stddev.At(i, j))
			if err != nil {
				return nil, fmt.Errorf("umat: entry (%d,%d): %w", i, j, err)
			}
			out.Set(i, j, v)
		}
	}
	return out, nil
}

// Dims returns the matrix dimensions.
func (m *Dense) Dims() (r, c int) {
	return m.rows, m.cols
}

// At returns the element at row i, column j.
func (m *Dense) At(i, j int) uncertain.Value {
	m.check(i, j)
	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j.
func (m *Dense) Set(i, j int, v uncertain.Value) {
	m.check(i, j)
	m.data[i*m.cols+j] = v
}

// Add returns m + o element-wise.
func (m *Dense) Add(o *Dense) (*Dense, error) {
	if err := m.sameShape(o); err != nil {
		return nil, err
	}
	out := NewDense(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = v.Add(o.data[i])
	}
	return out, nil
}

// Sub returns m - o element-wise. Subtracting a matrix from itself yields a
// matrix of certain zeros.
func (m *Dense) Sub(o *Dense) (*Dense, error) {
	if err := m.sameShape(o); err != nil {
		return nil, err
	}
	out := NewDense(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = v.Sub(o.data[i])
	}
	return out, nil
}

// Mul returns the matrix product m·o. Correlation is tracked through the
// inner-product sums, so shared atomic variables across entries combine
// correctly rather than in quadrature.
func (m *Dense) Mul(o *Dense) (*Dense, error) {
	if m.cols != o.rows {
		return nil, fmt.Errorf("umat: dimension mismatch %dx%d · %dx%d", m.rows, m.cols, o.rows, o.cols)
	}
	out := NewDense(m.rows, o.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < o.cols; j++ {
			acc := uncertain.Zero()
			for k := 0; k < m.cols; k++ {
				acc = acc.Add(m.At(i, k).Mul(o.At(k, j)))
			}
			out.Set(i, j, acc)
		}
	}
	return out, nil
}

// Scale returns c·m.
func (m *Dense) Scale(c float64) *Dense {
	out := NewDense(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = v.MulScalar(c)
	}
	return out
}

// T returns the transpose.
func (m *Dense) T() *Dense {
	out := NewDense(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.Set(j, i, m.At(i, j))
		}
	}
	return out
}

// Trace returns the sum of the diagonal of a square matrix.
func (m *Dense) Trace() (uncertain.Value, error) {
	if m.rows != m.cols {
		return uncertain.Value{}, fmt.Errorf("umat: trace of non-square %dx%d matrix", m.rows, m.cols)
	}
	acc := uncertain.Zero()
	for i := 0; i < m.rows; i++ {
		acc = acc.Add(m.At(i, i))
	}
	return acc, nil
}

// Nominal projects the central estimates into a gonum matrix.
func (m *Dense) Nominal() *mat.Dense {
	out := mat.NewDense(m.rows, m.cols, nil)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.Set(i, j, m.At(i, j).Nominal())
		}
	}
	return out
}

// StdDev projects the standard deviations into a gonum matrix.
func (m *Dense) StdDev() *mat.Dense {
	out := mat.NewDense(m.rows, m.cols, nil)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.Set(i, j, m.At(i, j).StdDev())
		}
	}
	return out
}

func (m *Dense) sameShape(o *Dense) error {
	if m.rows != o.rows || m.cols != o.cols {
		return fmt.Errorf("umat: dimension mismatch %dx%d vs %dx%d", m.rows, m.cols, o.rows, o.cols)
	}
	return nil
}

func (m *Dense) check(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("umat: index (%d,%d) out of bounds for %dx%d matrix", i, j, m.rows, m.cols))
	}
}
