// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/linalgo/matrix"
)

// Sentinel errors, shared with package matrix so errors.Is matches either name.
var (
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrBadShape          = matrix.ErrBadShape
	ErrOutOfRange        = matrix.ErrOutOfRange
	ErrNaNInf            = matrix.ErrNaNInf
	ErrSingular          = matrix.ErrSingular
	ErrDegenerateVector  = matrix.ErrDegenerateVector
	ErrInvalidDimensions = matrix.ErrInvalidDimensions
	ErrNilMatrix         = matrix.ErrNilMatrix
)

// DefaultEpsilon is the tolerance used when no WithEpsilon option is given.
const DefaultEpsilon = matrix.DefaultEpsilon

// Option configures the numeric tolerance of a single operation.
type Option = matrix.Option

// WithEpsilon sets the tolerance for singularity and degeneracy checks.
// It panics if eps is negative or not finite.
func WithEpsilon(eps float64) Option { return matrix.WithEpsilon(eps) }

// linalgErrorf tags err with the failing operation.
func linalgErrorf(op string, err error) error {
	return fmt.Errorf("linalg: %s: %w", op, err)
}

// must unwraps a kernel result whose failure modes the type parameters rule out.
func must[T any](v T, err error) T {
	if err != nil {
		panic("linalg: unexpected kernel error: " + err.Error())
	}

	return v
}
