// SPDX-License-Identifier: MIT
// Package matrix - vector kernels on plain float64 slices.
//
// These back linalg.Vector; lengths are checked at run time here and at
// compile time in linalg.

package matrix

import (
	"fmt"
	"math"
)

const (
	opDot   = "Dot"
	opNorm  = "Norm"
	opUnit  = "Unit"
	opCross = "Cross"
)

// crossLen is the only length for which the cross product is defined.
const crossLen = 3

// Dot returns Σ x[i]·y[i].
//
// Errors:
//   - ErrNilMatrix (nil slice), ErrDimensionMismatch (len(x) != len(y)).
//
// Complexity: O(n).
func Dot(x, y []float64) (float64, error) {
	if err := ValidateVecLen(x, len(y)); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	if y == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}
	sum := ZeroSum
	for i := range x {
		sum += x[i] * y[i]
	}

	return sum, nil
}

// Norm returns the Euclidean length sqrt(Σ x[i]²).
// Entries are scaled by the largest magnitude first, so the intermediate sum
// neither overflows nor underflows for finite inputs. Any NaN entry makes the
// result NaN; otherwise any infinite entry makes it +Inf.
// Complexity: O(n).
func Norm(x []float64) float64 {
	var s float64
	for _, v := range x {
		if math.IsNaN(v) {
			return math.NaN()
		}
		if a := math.Abs(v); a > s {
			s = a
		}
	}
	if s == 0 || math.IsInf(s, 1) {
		return s
	}
	sum := ZeroSum
	for _, v := range x {
		r := v / s
		sum += r * r
	}

	return s * math.Sqrt(sum)
}

// Unit returns x / Norm(x).
//
// Errors:
//   - ErrNilMatrix (nil x), ErrNaNInf when Norm(x) is NaN,
//     ErrDegenerateVector when Norm(x) <= eps.
//
// Complexity: O(n).
func Unit(x []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if x == nil {
		return nil, matrixErrorf(opUnit, ErrNilMatrix)
	}
	mag := Norm(x)
	if math.IsNaN(mag) {
		return nil, matrixErrorf(opUnit, ErrNaNInf)
	}
	if mag <= o.eps {
		return nil, matrixErrorf(opUnit, fmt.Errorf("|x| = %g <= %g: %w", mag, o.eps, ErrDegenerateVector))
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v / mag
	}

	return out, nil
}

// Cross returns the 3-vector x × y.
//
// Errors:
//   - ErrNilMatrix (nil slice), ErrDimensionMismatch unless both have length 3.
//
// Complexity: O(1).
func Cross(x, y []float64) ([]float64, error) {
	if err := ValidateVecLen(x, crossLen); err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	if err := ValidateVecLen(y, crossLen); err != nil {
		return nil, matrixErrorf(opCross, err)
	}

	return []float64{
		x[1]*y[2] - x[2]*y[1],
		x[2]*y[0] - x[0]*y[2],
		x[0]*y[1] - x[1]*y[0],
	}, nil
}
