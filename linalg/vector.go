// SPDX-License-Identifier: MIT
// Package linalg - Vector[N]: fixed-length value vectors.

package linalg

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalgo/dim"
	"github.com/katalvlaran/linalgo/matrix"
)

const (
	opVectorFrom = "VectorFrom"
	opVectorAt   = "Vector.At"
	opVectorSet  = "Vector.Set"
	opUnit       = "Unit"
)

// Vector is an N-vector of float64. The zero value is the zero vector.
type Vector[N dim.Size] struct {
	data [dim.Max]float64
}

// NewVector returns the zero N-vector.
func NewVector[N dim.Size]() Vector[N] { return Vector[N]{} }

// VectorOf builds a vector from exactly N values.
// Errors: ErrDimensionMismatch, ErrNaNInf.
func VectorOf[N dim.Size](vals ...float64) (Vector[N], error) {
	return VectorFrom[N](vals)
}

// VectorFrom builds a vector from a slice of length N. The slice is copied.
// Errors: ErrDimensionMismatch, ErrNaNInf.
func VectorFrom[N dim.Size](s []float64) (Vector[N], error) {
	n := dim.Of[N]()
	if len(s) != n {
		return Vector[N]{}, linalgErrorf(opVectorFrom,
			fmt.Errorf("%d values, want %d: %w", len(s), n, ErrDimensionMismatch))
	}
	for i, v := range s {
		if isNonFinite(v) {
			return Vector[N]{}, linalgErrorf(opVectorFrom, fmt.Errorf("[%d]: %w", i, ErrNaNInf))
		}
	}

	return vectorOf[N](s), nil
}

// MustVectorOf is VectorOf that panics on error.
func MustVectorOf[N dim.Size](vals ...float64) Vector[N] {
	v, err := VectorOf[N](vals...)
	if err != nil {
		panic(err)
	}

	return v
}

// MustVectorFrom is VectorFrom that panics on error.
func MustVectorFrom[N dim.Size](s []float64) Vector[N] {
	v, err := VectorFrom[N](s)
	if err != nil {
		panic(err)
	}

	return v
}

// vectorOf copies the first N entries of s without validation.
func vectorOf[N dim.Size](s []float64) Vector[N] {
	var v Vector[N]
	copy(v.data[:dim.Of[N]()], s)

	return v
}

// Len returns N.
func (v Vector[N]) Len() int { return dim.Of[N]() }

// At returns entry i.
// Errors: ErrOutOfRange.
func (v Vector[N]) At(i int) (float64, error) {
	if i < 0 || i >= dim.Of[N]() {
		return 0, linalgErrorf(opVectorAt, fmt.Errorf("%d: %w", i, ErrOutOfRange))
	}

	return v.data[i], nil
}

// Set stores x at index i.
// Errors: ErrOutOfRange, ErrNaNInf. On error v is unchanged.
func (v *Vector[N]) Set(i int, x float64) error {
	if i < 0 || i >= dim.Of[N]() {
		return linalgErrorf(opVectorSet, fmt.Errorf("%d: %w", i, ErrOutOfRange))
	}
	if isNonFinite(x) {
		return linalgErrorf(opVectorSet, fmt.Errorf("%d: %w", i, ErrNaNInf))
	}
	v.data[i] = x

	return nil
}

// Slice returns the entries as a fresh slice.
func (v Vector[N]) Slice() []float64 {
	out := make([]float64, dim.Of[N]())
	copy(out, v.data[:])

	return out
}

// Add returns v + o.
func (v Vector[N]) Add(o Vector[N]) Vector[N] {
	for i := 0; i < dim.Of[N](); i++ {
		v.data[i] += o.data[i]
	}

	return v
}

// Sub returns v − o.
func (v Vector[N]) Sub(o Vector[N]) Vector[N] {
	for i := 0; i < dim.Of[N](); i++ {
		v.data[i] -= o.data[i]
	}

	return v
}

// Scale returns s·v.
func (v Vector[N]) Scale(s float64) Vector[N] {
	for i := 0; i < dim.Of[N](); i++ {
		v.data[i] *= s
	}

	return v
}

// Negate returns −v.
func (v Vector[N]) Negate() Vector[N] { return v.Scale(-1) }

// Dot returns Σ v[i]·o[i].
func (v Vector[N]) Dot(o Vector[N]) float64 {
	return must(matrix.Dot(v.Slice(), o.Slice()))
}

// Magnitude returns the Euclidean length of v.
func (v Vector[N]) Magnitude() float64 { return matrix.Norm(v.Slice()) }

// Distance returns |v − o|.
func (v Vector[N]) Distance(o Vector[N]) float64 { return v.Sub(o).Magnitude() }

// Unit returns v/|v|.
// Errors: ErrDegenerateVector when |v| ≤ eps (DefaultEpsilon unless WithEpsilon).
func (v Vector[N]) Unit(opts ...Option) (Vector[N], error) {
	u, err := matrix.Unit(v.Slice(), opts...)
	if err != nil {
		return Vector[N]{}, linalgErrorf(opUnit, err)
	}

	return vectorOf[N](u), nil
}

// ToColumn returns v as an N×1 matrix.
func (v Vector[N]) ToColumn() Matrix[N, dim.D1] {
	var m Matrix[N, dim.D1]
	copy(m.data[:], v.data[:])

	return m
}

// ToRow returns v as a 1×N matrix.
func (v Vector[N]) ToRow() Matrix[dim.D1, N] {
	var m Matrix[dim.D1, N]
	copy(m.data[:], v.data[:])

	return m
}

// FromColumn returns the single column of m as a vector.
func FromColumn[N dim.Size](m Matrix[N, dim.D1]) Vector[N] {
	var v Vector[N]
	copy(v.data[:], m.data[:dim.Max])

	return v
}

// Equal reports exact entry-wise equality.
func (v Vector[N]) Equal(o Vector[N]) bool { return v.data == o.data }

// ApproxEqual reports |v[i] − o[i]| ≤ tol·(1 + |o[i]|) for every entry.
func (v Vector[N]) ApproxEqual(o Vector[N], tol float64) bool {
	return v.ToColumn().ApproxEqual(o.ToColumn(), tol)
}

// String renders "[a, b, c]".
func (v Vector[N]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < dim.Of[N](); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", v.data[i])
	}
	b.WriteByte(']')

	return b.String()
}

// Cross returns u × v. It exists only for 3-vectors.
func Cross(u, v Vector[dim.D3]) Vector[dim.D3] {
	return vectorOf[dim.D3](must(matrix.Cross(u.Slice(), v.Slice())))
}
