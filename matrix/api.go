// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// CloneMatrix returns a structural clone of m.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// AllClose reports whether |a−b| ≤ atol + rtol·|b| holds element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite tolerances).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// Equal reports exact element-wise equality of two same-shaped matrices.
func Equal(a, b Matrix) (bool, error) {
	return ewAllClose(a, b, 0, 0)
}

// IsSingular reports whether elimination meets a pivot that is zero within
// tolerance. Non-square or nil input is reported through the error.
func IsSingular(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, matrixErrorf("IsSingular", err)
	}
	_, err := factorize(m, gatherOptions(opts...))

	return err != nil, nil
}
