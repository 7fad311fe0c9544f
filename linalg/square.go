// SPDX-License-Identifier: MIT
// Package linalg - Square[N]: determinant, inverse and linear solves.
//
// Canonical paths (Determinant, Inverse, Solve) run Gaussian elimination with
// partial pivoting. DeterminantCofactor, InverseAdjugate and SolveByInverse
// are the textbook alternates; they agree with the canonical paths within
// rounding for well-conditioned inputs and are kept for small N.
//
// Singularity is decided against eps·max|a_ij| (eps from WithEpsilon), never
// by exact comparison with zero.

package linalg

import (
	"github.com/katalvlaran/linalgo/dim"
	"github.com/katalvlaran/linalgo/matrix"
)

const (
	opInverse         = "Inverse"
	opInverseAdjugate = "InverseAdjugate"
	opSolve           = "Solve"
	opSolveByInverse  = "SolveByInverse"
	opMinor           = "Minor"
	opCofactor        = "Cofactor"
	opLU              = "LU"
)

// Square is an N×N matrix. It embeds Matrix[N, N], so every Matrix method is
// available; the arithmetic ones are redeclared to stay within Square.
type Square[N dim.Size] struct {
	Matrix[N, N]
}

// AsSquare views an N×N matrix as a Square. The entries are copied.
func AsSquare[N dim.Size](m Matrix[N, N]) Square[N] {
	return Square[N]{Matrix: m}
}

// Identity returns I_N.
func Identity[N dim.Size]() Square[N] {
	n := dim.Of[N]()
	var s Square[N]
	for i := 0; i < n; i++ {
		s.data[i*n+i] = 1
	}

	return s
}

// SquareFromRows is FromRows for square matrices.
func SquareFromRows[N dim.Size](rows [][]float64) (Square[N], error) {
	m, err := FromRows[N, N](rows)
	if err != nil {
		return Square[N]{}, err
	}

	return Square[N]{Matrix: m}, nil
}

// MustSquareFromRows is SquareFromRows that panics on error.
func MustSquareFromRows[N dim.Size](rows [][]float64) Square[N] {
	return Square[N]{Matrix: MustFromRows[N, N](rows)}
}

// SquareFromDense is FromDense for square matrices.
func SquareFromDense[N dim.Size](m matrix.Matrix) (Square[N], error) {
	s, err := FromDense[N, N](m)
	if err != nil {
		return Square[N]{}, err
	}

	return Square[N]{Matrix: s}, nil
}

func squareFromDense[N dim.Size](d *matrix.Dense) Square[N] {
	return Square[N]{Matrix: fromDense[N, N](d)}
}

// Clone returns a copy of s.
func (s Square[N]) Clone() Square[N] { return s }

// Transpose returns sᵀ.
func (s Square[N]) Transpose() Square[N] { return Square[N]{Matrix: s.Matrix.Transpose()} }

// Scale returns k·s.
func (s Square[N]) Scale(k float64) Square[N] { return Square[N]{Matrix: s.Matrix.Scale(k)} }

// Add returns s + o.
func (s Square[N]) Add(o Square[N]) Square[N] { return Square[N]{Matrix: s.Matrix.Add(o.Matrix)} }

// Sub returns s − o.
func (s Square[N]) Sub(o Square[N]) Square[N] { return Square[N]{Matrix: s.Matrix.Sub(o.Matrix)} }

// Mul returns the product s·o.
func (s Square[N]) Mul(o Square[N]) Square[N] { return Square[N]{Matrix: Mul(s.Matrix, o.Matrix)} }

// Apply returns s·v.
func (s Square[N]) Apply(v Vector[N]) Vector[N] { return MulVec(s.Matrix, v) }

// Equal reports exact entry-wise equality.
func (s Square[N]) Equal(o Square[N]) bool { return s.Matrix.Equal(o.Matrix) }

// ApproxEqual is Matrix.ApproxEqual for squares.
func (s Square[N]) ApproxEqual(o Square[N], tol float64) bool {
	return s.Matrix.ApproxEqual(o.Matrix, tol)
}

// Trace returns Σ s(i,i).
func (s Square[N]) Trace() float64 {
	n := dim.Of[N]()
	var tr float64
	for i := 0; i < n; i++ {
		tr += s.data[i*n+i]
	}

	return tr
}

// Determinant returns det(s) from the pivots of Gaussian elimination with
// partial pivoting. It is exactly 0 when a pivot is zero within tolerance.
// Complexity: O(N^3).
func (s Square[N]) Determinant(opts ...Option) float64 {
	return must(matrix.Determinant(s.dense(), opts...))
}

// DeterminantCofactor returns det(s) by recursive cofactor expansion along
// the first row. Complexity: O(N!); intended for small N.
func (s Square[N]) DeterminantCofactor() float64 {
	return must(matrix.DeterminantCofactor(s.dense()))
}

// IsSingular reports whether elimination meets a pivot that is zero within
// tolerance.
func (s Square[N]) IsSingular(opts ...Option) bool {
	return must(matrix.IsSingular(s.dense(), opts...))
}

// LU returns the reusable factorization P·s = L·U.
// Errors: ErrSingular.
func (s Square[N]) LU(opts ...Option) (*matrix.LUP, error) {
	f, err := matrix.LU(s.dense(), opts...)
	if err != nil {
		return nil, linalgErrorf(opLU, err)
	}

	return f, nil
}

// Inverse returns s⁻¹ computed through the LUP factorization.
// Errors: ErrSingular. On error the zero value is returned.
// Complexity: O(N^3).
func (s Square[N]) Inverse(opts ...Option) (Square[N], error) {
	inv, err := matrix.Inverse(s.dense(), opts...)
	if err != nil {
		return Square[N]{}, linalgErrorf(opInverse, err)
	}

	return squareFromDense[N](inv), nil
}

// InverseAdjugate returns adj(s)/det(s) with the cofactor determinant.
// Errors: ErrSingular when |det| ≤ eps·max|a_ij|^N.
func (s Square[N]) InverseAdjugate(opts ...Option) (Square[N], error) {
	inv, err := matrix.InverseAdjugate(s.dense(), opts...)
	if err != nil {
		return Square[N]{}, linalgErrorf(opInverseAdjugate, err)
	}

	return squareFromDense[N](inv), nil
}

// Solve returns x with s·x = b, by Gaussian elimination with partial pivoting
// and back substitution. Neither s nor b is modified.
// Errors: ErrSingular.
// Complexity: O(N^3).
func (s Square[N]) Solve(b Vector[N], opts ...Option) (Vector[N], error) {
	x, err := matrix.Solve(s.dense(), b.Slice(), opts...)
	if err != nil {
		return Vector[N]{}, linalgErrorf(opSolve, err)
	}

	return vectorOf[N](x), nil
}

// SolveByInverse returns s⁻¹·b. It compounds the rounding error of the
// inversion; prefer Solve.
// Errors: ErrSingular.
func (s Square[N]) SolveByInverse(b Vector[N], opts ...Option) (Vector[N], error) {
	x, err := matrix.SolveByInverse(s.dense(), b.Slice(), opts...)
	if err != nil {
		return Vector[N]{}, linalgErrorf(opSolveByInverse, err)
	}

	return vectorOf[N](x), nil
}

// Minor returns s without row r and column c. The (N-1)×(N-1) result has no
// dimension type of its own, so it comes back as a runtime-shaped Dense.
// Errors: ErrOutOfRange; ErrInvalidDimensions for N = 1.
func (s Square[N]) Minor(r, c int) (*matrix.Dense, error) {
	m, err := matrix.Minor(s.dense(), r, c)
	if err != nil {
		return nil, linalgErrorf(opMinor, err)
	}

	return m, nil
}

// Cofactor returns (-1)^(i+j)·det(Minor(i, j)). The cofactor of a 1×1 matrix is 1.
// Errors: ErrOutOfRange.
func (s Square[N]) Cofactor(i, j int) (float64, error) {
	c, err := matrix.Cofactor(s.dense(), i, j)
	if err != nil {
		return 0, linalgErrorf(opCofactor, err)
	}

	return c, nil
}

// Adjugate returns the transposed cofactor matrix, so s·adj(s) = det(s)·I.
func (s Square[N]) Adjugate() Square[N] {
	return squareFromDense[N](must(matrix.Adjugate(s.dense())))
}
