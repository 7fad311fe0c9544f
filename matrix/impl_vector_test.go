// SPDX-License-Identifier: MIT
// Package matrix_test covers the slice vector kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalgo/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	t.Parallel()

	d, err := matrix.Dot([]float64{1, 2, 3}, []float64{4, -5, 6})
	require.NoError(t, err)
	require.Equal(t, 12.0, d)

	_, err = matrix.Dot([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Dot(nil, []float64{})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Dot([]float64{}, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNorm(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5.0, matrix.Norm([]float64{3, 4, 0}))
	assert.Zero(t, matrix.Norm([]float64{0, 0}))
	assert.Zero(t, matrix.Norm(nil))
	// No overflow for large finite entries.
	assert.InDelta(t, 5e200, matrix.Norm([]float64{3e200, 4e200}), 1e188)
	assert.True(t, math.IsInf(matrix.Norm([]float64{1, math.Inf(-1)}), 1))
	// NaN wins over zeros and infinities alike.
	assert.True(t, math.IsNaN(matrix.Norm([]float64{math.NaN(), 0, 0})))
	assert.True(t, math.IsNaN(matrix.Norm([]float64{math.Inf(1), math.NaN()})))
}

func TestUnit(t *testing.T) {
	t.Parallel()

	u, err := matrix.Unit([]float64{3, 4, 0})
	require.NoError(t, err)
	sliceClose(t, u, []float64{0.6, 0.8, 0}, 0, 1e-15)
	assert.InDelta(t, 1.0, matrix.Norm(u), 1e-15)

	_, err = matrix.Unit([]float64{0, 0, 0})
	require.ErrorIs(t, err, matrix.ErrDegenerateVector)
	_, err = matrix.Unit([]float64{1e-12, 0})
	require.ErrorIs(t, err, matrix.ErrDegenerateVector)
	_, err = matrix.Unit([]float64{1e-12, 0}, matrix.WithEpsilon(0))
	require.NoError(t, err)
	_, err = matrix.Unit(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Unit([]float64{math.NaN(), 0, 0})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.NotErrorIs(t, err, matrix.ErrDegenerateVector)
}

func TestCross(t *testing.T) {
	t.Parallel()

	e1, e2, e3 := []float64{1, 0, 0}, []float64{0, 1, 0}, []float64{0, 0, 1}
	c, err := matrix.Cross(e1, e2)
	require.NoError(t, err)
	require.Equal(t, e3, c)

	c, err = matrix.Cross(e2, e1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, -1}, c)

	u, v := []float64{1, 2, 3}, []float64{-4, 0.5, 2}
	c, err = matrix.Cross(u, v)
	require.NoError(t, err)
	du, _ := matrix.Dot(c, u)
	dv, _ := matrix.Dot(c, v)
	assert.InDelta(t, 0, du, 1e-12)
	assert.InDelta(t, 0, dv, 1e-12)

	_, err = matrix.Cross([]float64{1, 2}, e1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Cross(e1, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
