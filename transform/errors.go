// SPDX-License-Identifier: MIT

package transform

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalgo/linalg"
)

var (
	// ErrInvalidProjection is returned by Perspective for a non-positive
	// field of view, aspect or near plane, far <= near, or fovy >= π.
	ErrInvalidProjection = errors.New("transform: invalid projection")

	// ErrPointAtInfinity is returned by TransformPoint when the homogeneous
	// w of the result is zero within tolerance.
	ErrPointAtInfinity = errors.New("transform: point at infinity")

	// ErrDegenerateVector is returned for a zero rotation axis or a look-at
	// frame that cannot be built.
	ErrDegenerateVector = linalg.ErrDegenerateVector

	// ErrSingular is returned by NormalMatrix for a non-invertible linear part.
	ErrSingular = linalg.ErrSingular

	// ErrNaNInf is returned when converting float32 data that is not finite.
	ErrNaNInf = linalg.ErrNaNInf
)

func transformErrorf(op string, err error) error {
	return fmt.Errorf("transform: %s: %w", op, err)
}
