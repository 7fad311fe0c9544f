// SPDX-License-Identifier: MIT
// Package matrix - Gaussian elimination with partial pivoting.
//
// Purpose:
//   - Provide the canonical determinant / inverse / solve path.
//   - Factor PA = LU once (LUP) and reuse it for any number of right-hand sides.
//
// Tolerance:
//   - A pivot p is treated as zero when |p| <= eps*s, where s = max|a_ij| of
//     the input and eps comes from WithEpsilon (DefaultEpsilon otherwise).
//     When an entry is infinite the bound is eps alone.
//     The comparison is relative to the entry magnitudes, so uniformly scaling
//     a matrix never changes whether it is reported singular.
//
// Determinism:
//   - Pivot ties are broken by the lowest row index; loops run in fixed order.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// LUP is a packed LU factorization with row permutation: P·A = L·U.
// The strict lower triangle of lu holds the multipliers of L (unit diagonal
// implied); the upper triangle including the diagonal holds U.
type LUP struct {
	n     int
	lu    *Dense // packed factors, owned
	perm  []int  // perm[i] = row of A that ended up in row i
	swaps int    // number of row interchanges performed
}

// LU factors a square matrix with Gaussian elimination and partial pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil; copy the input (never mutated).
//   - Stage 2: for each column i select the row in [i,n) with the largest
//     |a[r][i]| (lowest index on ties) and swap it into row i.
//   - Stage 3: if the pivot is zero within tolerance fail with ErrSingular.
//   - Stage 4: eliminate below the pivot, storing the multipliers in place.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix, opts ...Option) (*LUP, error) {
	f, err := factorize(m, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	return f, nil
}

// factorize is LU without the operation tag, shared by the facades.
func factorize(m Matrix, o Options) (*LUP, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}
	src, err := toDense(m)
	if err != nil {
		return nil, err
	}
	a := src.clone()
	a.validateNaNInf = false // internal workspace

	n := a.r
	tol := pivotTol(o.eps, a.MaxAbs())
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k, p int
		best, v    float64
		pivot, fac float64
		swaps      int
		d          = a.data
	)
	for i = 0; i < n; i++ {
		// Partial pivoting: largest magnitude in column i among rows i..n-1.
		p, best = i, math.Abs(d[i*n+i])
		for j = i + 1; j < n; j++ {
			if v = math.Abs(d[j*n+i]); v > best {
				p, best = j, v
			}
		}
		if p != i {
			swapRows(d, n, i, p)
			perm[i], perm[p] = perm[p], perm[i]
			swaps++
		}
		pivot = d[i*n+i]
		if math.Abs(pivot) <= tol {
			return nil, fmt.Errorf("pivot %d (|%g| <= %g): %w", i, pivot, tol, ErrSingular)
		}
		// Eliminate entries below the pivot.
		for j = i + 1; j < n; j++ {
			fac = d[j*n+i] / pivot
			d[j*n+i] = fac // multiplier of L
			if fac == 0 {
				continue
			}
			for k = i + 1; k < n; k++ {
				d[j*n+k] -= fac * d[i*n+k]
			}
		}
	}

	return &LUP{n: n, lu: a, perm: perm, swaps: swaps}, nil
}

// pivotTol returns eps·s. An infinite scale would make every pivot look
// zero, so the test falls back to the absolute eps.
func pivotTol(eps, s float64) float64 {
	if math.IsInf(s, 1) {
		return eps
	}

	return eps * s
}

// swapRows exchanges rows r1 and r2 of a flat n-column buffer.
func swapRows(d []float64, n, r1, r2 int) {
	a, b := r1*n, r2*n
	for k := 0; k < n; k++ {
		d[a+k], d[b+k] = d[b+k], d[a+k]
	}
}

// Size returns n for the n×n factored matrix.
func (f *LUP) Size() int { return f.n }

// Swaps returns the number of row interchanges performed.
func (f *LUP) Swaps() int { return f.swaps }

// Perm returns a copy of the row permutation: row i of P·A is row Perm()[i] of A.
func (f *LUP) Perm() []int {
	out := make([]int, f.n)
	copy(out, f.perm)

	return out
}

// Det returns the determinant as the signed product of the pivots.
// The sign flips once per row swap.
// Complexity: O(n).
func (f *LUP) Det() float64 {
	det := 1.0
	if f.swaps%2 == 1 {
		det = -1.0
	}
	for i := 0; i < f.n; i++ {
		det *= f.lu.data[i*f.n+i]
	}

	return det
}

// L returns the unit lower-triangular factor as a fresh Dense.
func (f *LUP) L() *Dense {
	n := f.n
	l, _ := NewDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			l.data[i*n+j] = f.lu.data[i*n+j]
		}
		l.data[i*n+i] = 1
	}

	return l
}

// U returns the upper-triangular factor as a fresh Dense.
func (f *LUP) U() *Dense {
	n := f.n
	u, _ := NewDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			u.data[i*n+j] = f.lu.data[i*n+j]
		}
	}

	return u
}

// P returns the permutation matrix with P·A = L·U.
func (f *LUP) P() *Dense {
	n := f.n
	p, _ := NewDense(n, n)
	for i, r := range f.perm {
		p.data[i*n+r] = 1
	}

	return p
}

// Solve returns x with A·x = b.
//
// Implementation:
//   - Stage 1: permute b the way the rows of A were swapped.
//   - Stage 2: forward substitution with L replays the elimination on b
//     (b[j] -= l[j][i]·b[i] for every i<j).
//   - Stage 3: back substitution x[i] = (b[i] − Σ_{j>i} u[i][j]·x[j]) / u[i][i].
//
// Errors:
//   - ErrNilMatrix (nil b), ErrDimensionMismatch (len(b) != n).
//
// Complexity:
//   - Time O(n^2), Space O(n).
func (f *LUP) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x := make([]float64, f.n)
	f.solveInto(x, func(i int) float64 { return b[i] })

	return x, nil
}

// solveInto writes the solution for right-hand side rhs into x.
func (f *LUP) solveInto(x []float64, rhs func(i int) float64) {
	n, d := f.n, f.lu.data
	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		sum = rhs(f.perm[i])
		for j = 0; j < i; j++ {
			sum -= d[i*n+j] * x[j]
		}
		x[i] = sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum -= d[i*n+j] * x[j]
		}
		x[i] = sum / d[i*n+i]
	}
}

// Inverse returns A⁻¹ by solving A·x = e_col for every identity column.
// Complexity: Time O(n^3), Space O(n^2).
func (f *LUP) Inverse() *Dense {
	n := f.n
	inv, _ := NewDense(n, n)
	x := make([]float64, n)
	var col, i int
	for col = 0; col < n; col++ {
		c := col
		f.solveInto(x, func(r int) float64 {
			if r == c {
				return 1
			}
			return 0
		})
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv
}

// Determinant computes det(A) by elimination with partial pivoting.
// A pivot that is zero within tolerance makes the result exactly 0.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Determinant(m Matrix, opts ...Option) (float64, error) {
	f, err := factorize(m, gatherOptions(opts...))
	switch {
	case err == nil:
		return f.Det(), nil
	case errors.Is(err, ErrSingular):
		return 0, nil
	default:
		return 0, matrixErrorf(opDeterminant, err)
	}
}

// Inverse computes A⁻¹ through the LUP factorization.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	f, err := factorize(m, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return f.Inverse(), nil
}

// Solve returns x with A·x = b using Gaussian elimination with partial
// pivoting. This is the canonical solver.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square A or len(b) != n), ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Solve(m Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	f, err := factorize(m, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

// SolveByInverse returns x = A⁻¹·b.
// It compounds the conditioning error of the inversion and is kept as a
// secondary path for small, well-conditioned systems; prefer Solve.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
func SolveByInverse(m Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSolveInv, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolveInv, err)
	}
	f, err := factorize(m, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opSolveInv, err)
	}

	return MatVec(f.Inverse(), b)
}
