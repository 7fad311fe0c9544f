// SPDX-License-Identifier: MIT
// Package linalg - Matrix[R, C]: fixed-shape, value-semantics matrices.
//
// Purpose:
//   - Carry the shape in the type so Mul/Add/Transpose shape rules are checked
//     by the compiler.
//   - Hold entries in an embedded array so a Matrix is copied, never shared.
//
// Layout:
//   - Entry (i,j) lives at data[i*C + j]; the first R*C slots form exactly the
//     row-major buffer of the equivalent matrix.Dense. Unused slots stay zero,
//     so == on two values of the same type compares their entries.

package linalg

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalgo/dim"
	"github.com/katalvlaran/linalgo/matrix"
)

// Operation tags for error wrapping.
const (
	opFromRows  = "FromRows"
	opFromData  = "FromData"
	opFromDense = "FromDense"
	opAt        = "At"
	opSet       = "Set"
	opRow       = "Row"
	opCol       = "Col"
)

// Matrix is an R×C matrix of float64. The zero value is the zero matrix.
type Matrix[R, C dim.Size] struct {
	data [dim.Max * dim.Max]float64
}

// New returns the R×C zero matrix.
func New[R, C dim.Size]() Matrix[R, C] {
	return Matrix[R, C]{}
}

// FromRows builds a matrix from one slice per row. Values are copied.
//
// Errors:
//   - ErrDimensionMismatch when the row count or row length differs from R×C.
//   - ErrBadShape for ragged rows, ErrNaNInf for non-finite values.
func FromRows[R, C dim.Size](rows [][]float64) (Matrix[R, C], error) {
	r, c := dim.Of[R](), dim.Of[C]()
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return Matrix[R, C]{}, linalgErrorf(opFromRows, err)
	}
	if d.Rows() != r || d.Cols() != c {
		return Matrix[R, C]{}, linalgErrorf(opFromRows,
			fmt.Errorf("got %dx%d, want %dx%d: %w", d.Rows(), d.Cols(), r, c, ErrDimensionMismatch))
	}

	return fromDense[R, C](d), nil
}

// FromData builds a matrix from a row-major flat slice of length R*C.
// Values are copied.
//
// Errors:
//   - ErrDimensionMismatch when len(data) != R*C, ErrNaNInf for non-finite values.
func FromData[R, C dim.Size](data []float64) (Matrix[R, C], error) {
	r, c := dim.Of[R](), dim.Of[C]()
	if len(data) != r*c {
		return Matrix[R, C]{}, linalgErrorf(opFromData,
			fmt.Errorf("%d values for %dx%d: %w", len(data), r, c, ErrDimensionMismatch))
	}
	d, err := matrix.NewDenseFromData(r, c, data)
	if err != nil {
		return Matrix[R, C]{}, linalgErrorf(opFromData, err)
	}

	return fromDense[R, C](d), nil
}

// MustFromRows is FromRows that panics on error. Use it for literals.
func MustFromRows[R, C dim.Size](rows [][]float64) Matrix[R, C] {
	m, err := FromRows[R, C](rows)
	if err != nil {
		panic(err)
	}

	return m
}

// MustFromData is FromData that panics on error.
func MustFromData[R, C dim.Size](data []float64) Matrix[R, C] {
	m, err := FromData[R, C](data)
	if err != nil {
		panic(err)
	}

	return m
}

// FromDense copies a runtime-shaped matrix into a typed value. It is the
// inverse of Dense: entries are taken as they are, ±Inf and NaN included,
// so results of kernel arithmetic can always be brought back.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when m is not R×C.
func FromDense[R, C dim.Size](m matrix.Matrix) (Matrix[R, C], error) {
	r, c := dim.Of[R](), dim.Of[C]()
	if err := matrix.ValidateNotNil(m); err != nil {
		return Matrix[R, C]{}, linalgErrorf(opFromDense, err)
	}
	if m.Rows() != r || m.Cols() != c {
		return Matrix[R, C]{}, linalgErrorf(opFromDense,
			fmt.Errorf("got %dx%d, want %dx%d: %w", m.Rows(), m.Cols(), r, c, ErrDimensionMismatch))
	}
	if d, ok := m.(*matrix.Dense); ok {
		return fromDense[R, C](d), nil
	}
	var out Matrix[R, C]
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return Matrix[R, C]{}, linalgErrorf(opFromDense, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// fromDense copies a kernel result into a typed value.
// d must be R×C.
func fromDense[R, C dim.Size](d *matrix.Dense) Matrix[R, C] {
	var m Matrix[R, C]
	copy(m.data[:], d.Data())

	return m
}

// dense exports the entries to a fresh kernel matrix. The finite-value
// policy is off because arithmetic may legitimately overflow to ±Inf.
func (m Matrix[R, C]) dense() *matrix.Dense {
	r, c := dim.Of[R](), dim.Of[C]()

	return must(matrix.NewDenseFromData(r, c, m.data[:r*c], matrix.WithNoValidateNaNInf()))
}

// Dense returns a fresh *matrix.Dense holding a copy of the entries.
func (m Matrix[R, C]) Dense() *matrix.Dense { return m.dense() }

// Dims returns (R, C).
func (m Matrix[R, C]) Dims() (rows, cols int) { return dim.Of[R](), dim.Of[C]() }

// At returns entry (i, j).
// Errors: ErrOutOfRange.
func (m Matrix[R, C]) At(i, j int) (float64, error) {
	r, c := dim.Of[R](), dim.Of[C]()
	if i < 0 || i >= r || j < 0 || j >= c {
		return 0, linalgErrorf(opAt, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}

	return m.data[i*c+j], nil
}

// Set stores v at (i, j).
// Errors: ErrOutOfRange, ErrNaNInf (v is NaN or ±Inf). On error m is unchanged.
func (m *Matrix[R, C]) Set(i, j int, v float64) error {
	r, c := dim.Of[R](), dim.Of[C]()
	if i < 0 || i >= r || j < 0 || j >= c {
		return linalgErrorf(opSet, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}
	if isNonFinite(v) {
		return linalgErrorf(opSet, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
	}
	m.data[i*c+j] = v

	return nil
}

// Clone returns a copy of m. Plain assignment does the same.
func (m Matrix[R, C]) Clone() Matrix[R, C] { return m }

// Transpose returns the C×R matrix with entry (j, i) = m(i, j).
func (m Matrix[R, C]) Transpose() Matrix[C, R] {
	return fromDense[C, R](must(matrix.Transpose(m.dense())))
}

// Scale returns s·m. m is not modified.
func (m Matrix[R, C]) Scale(s float64) Matrix[R, C] {
	return fromDense[R, C](must(matrix.Scale(m.dense(), s)))
}

// Add returns m + o.
func (m Matrix[R, C]) Add(o Matrix[R, C]) Matrix[R, C] {
	return fromDense[R, C](must(matrix.Add(m.dense(), o.dense())))
}

// Sub returns m − o.
func (m Matrix[R, C]) Sub(o Matrix[R, C]) Matrix[R, C] {
	return fromDense[R, C](must(matrix.Sub(m.dense(), o.dense())))
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
func (m Matrix[R, C]) Row(i int) ([]float64, error) {
	r, c := dim.Of[R](), dim.Of[C]()
	if i < 0 || i >= r {
		return nil, linalgErrorf(opRow, fmt.Errorf("%d: %w", i, ErrOutOfRange))
	}
	out := make([]float64, c)
	copy(out, m.data[i*c:(i+1)*c])

	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange.
func (m Matrix[R, C]) Col(j int) ([]float64, error) {
	r, c := dim.Of[R](), dim.Of[C]()
	if j < 0 || j >= c {
		return nil, linalgErrorf(opCol, fmt.Errorf("%d: %w", j, ErrOutOfRange))
	}
	out := make([]float64, r)
	for i := range out {
		out[i] = m.data[i*c+j]
	}

	return out, nil
}

// ToRows returns the entries as freshly allocated row slices.
func (m Matrix[R, C]) ToRows() [][]float64 {
	r, c := dim.Of[R](), dim.Of[C]()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		copy(rows[i], m.data[i*c:(i+1)*c])
	}

	return rows
}

// String renders one "[a, b, c]" line per row.
func (m Matrix[R, C]) String() string { return m.dense().String() }

// Equal reports exact entry-wise equality.
func (m Matrix[R, C]) Equal(o Matrix[R, C]) bool { return m.data == o.data }

// ApproxEqual reports |m(i,j) − o(i,j)| ≤ tol·(1 + |o(i,j)|) for every entry.
// A negative or non-finite tol never matches.
func (m Matrix[R, C]) ApproxEqual(o Matrix[R, C], tol float64) bool {
	if !(tol >= 0) {
		return false
	}
	ok, err := matrix.AllClose(m.dense(), o.dense(), tol, tol)

	return err == nil && ok
}

// Mul returns the R×C product a·b. The shared inner dimension K is enforced
// by the compiler.
// Complexity: O(R·K·C).
func Mul[R, K, C dim.Size](a Matrix[R, K], b Matrix[K, C]) Matrix[R, C] {
	return fromDense[R, C](must(matrix.Mul(a.dense(), b.dense())))
}

// MulVec returns the R-vector m·v.
func MulVec[R, C dim.Size](m Matrix[R, C], v Vector[C]) Vector[R] {
	y := must(matrix.MatVec(m.dense(), v.Slice()))

	return vectorOf[R](y)
}
