// SPDX-License-Identifier: MIT
// Package matrix - cofactor algebra: minors, cofactors, adjugate, and the
// definitional determinant/inverse built on them.
//
// Purpose:
//   - Keep the textbook Laplace expansion as an independent, test-validated
//     alternate to the elimination path in impl_elimination.go.
//
// Complexity:
//   - DeterminantCofactor is O(n!) and is meant for small n (≤ 6 or so).
//     InverseAdjugate computes n² minors' determinants on top of that.

package matrix

import (
	"fmt"
	"math"
)

// Minor returns the (n-1)×(n-1) matrix obtained by deleting row r and column c.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil; bounds-check r and c.
//   - Stage 2: build the kept index lists and materialize via Dense.Induced.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrOutOfRange,
//     ErrInvalidDimensions (a 1×1 matrix has no non-empty minor).
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func Minor(m Matrix, r, c int) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := m.Rows()
	if r < 0 || r >= n || c < 0 || c >= n {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", r, c, ErrOutOfRange))
	}
	if n == 1 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	res, err := src.Induced(skipIndex(n, r), skipIndex(n, c))
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return res, nil
}

// skipIndex returns 0..n-1 without k.
func skipIndex(n, k int) []int {
	idx := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != k {
			idx = append(idx, i)
		}
	}

	return idx
}

// minorData deletes row r and column c from a flat n×n buffer.
func minorData(d []float64, n, r, c int) []float64 {
	out := make([]float64, 0, (n-1)*(n-1))
	var i, j int
	for i = 0; i < n; i++ {
		if i == r {
			continue
		}
		for j = 0; j < n; j++ {
			if j != c {
				out = append(out, d[i*n+j])
			}
		}
	}

	return out
}

// detCofactor expands along row 0: det = Σ_col (-1)^col · a[0][col] · det(minor(0,col)).
func detCofactor(d []float64, n int) float64 {
	switch n {
	case 1:
		return d[0]
	case 2:
		return d[0]*d[3] - d[1]*d[2]
	}
	det := ZeroSum
	sign := 1.0
	for col := 0; col < n; col++ {
		det += sign * d[col] * detCofactor(minorData(d, n, 0, col), n-1)
		sign = -sign
	}

	return det
}

// cofactorAt returns (-1)^(i+j) · det(minor(i,j)); the 1×1 cofactor is 1.
func cofactorAt(d []float64, n, i, j int) float64 {
	if n == 1 {
		return 1
	}
	v := detCofactor(minorData(d, n, i, j), n-1)
	if (i+j)%2 == 1 {
		return -v
	}

	return v
}

// DeterminantCofactor computes det(A) by recursive cofactor expansion along
// row 0, with the 1×1 entry as base case.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n!), Space O(n^2) per recursion level.
func DeterminantCofactor(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDetCofactor, err)
	}
	src, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDetCofactor, err)
	}

	return detCofactor(src.data, src.r), nil
}

// Cofactor returns C(i,j) = (-1)^(i+j) · det(Minor(i,j)).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrOutOfRange.
func Cofactor(m Matrix, i, j int) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	n := m.Rows()
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, matrixErrorf(opCofactor, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}
	src, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return cofactorAt(src.data, n, i, j), nil
}

// Adjugate returns the transpose of the cofactor matrix: adj[j][i] = C(i,j).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^2 · (n-1)!), Space O(n^2).
func Adjugate(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adjugateOf(src), nil
}

func adjugateOf(src *Dense) *Dense {
	n := src.r
	adj, _ := NewDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			adj.data[j*n+i] = cofactorAt(src.data, n, i, j)
		}
	}

	return adj
}

// InverseAdjugate computes A⁻¹ = adj(A) / det(A) with the cofactor determinant.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil; det by cofactor expansion.
//   - Stage 2: fail with ErrSingular when |det| <= eps·s^n (s = max|a_ij|;
//     eps alone when s is infinite).
//   - Stage 3: build the adjugate into a fresh Dense and divide by det.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n^2 · (n-1)!), Space O(n^2).
func InverseAdjugate(m Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverseAdj, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverseAdj, err)
	}
	n := src.r
	det := detCofactor(src.data, n)
	tol := o.eps
	if s := src.MaxAbs(); !math.IsInf(s, 1) {
		tol *= math.Pow(s, float64(n))
	}
	if math.Abs(det) <= tol {
		return nil, matrixErrorf(opInverseAdj, fmt.Errorf("|det %g| <= %g: %w", det, tol, ErrSingular))
	}

	inv := adjugateOf(src)
	for idx := range inv.data {
		inv.data[idx] /= det
	}

	return inv, nil
}
