// SPDX-License-Identifier: MIT
package linalg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalgo/dim"
	"github.com/katalvlaran/linalgo/linalg"
)

type vec3 = linalg.Vector[dim.D3]

func TestVector_Construct(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3}
	v, err := linalg.VectorFrom[dim.D3](src)
	require.NoError(t, err)
	src[0] = 42
	x, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, x)
	require.Equal(t, 3, v.Len())

	_, err = linalg.VectorOf[dim.D3](1, 2)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = linalg.VectorOf[dim.D2](1, math.Inf(1))
	require.ErrorIs(t, err, linalg.ErrNaNInf)
	require.Panics(t, func() { linalg.MustVectorFrom[dim.D4](nil) })

	var zero vec3
	require.True(t, zero.Equal(linalg.NewVector[dim.D3]()))
	require.Equal(t, []float64{0, 0, 0}, zero.Slice())
}

func TestVector_AtSet(t *testing.T) {
	t.Parallel()

	var v vec3
	require.NoError(t, v.Set(2, 5))
	require.Equal(t, []float64{0, 0, 5}, v.Slice())
	require.ErrorIs(t, v.Set(3, 1), linalg.ErrOutOfRange)
	require.ErrorIs(t, v.Set(0, math.NaN()), linalg.ErrNaNInf)
	_, err := v.At(-1)
	require.ErrorIs(t, err, linalg.ErrOutOfRange)

	w := v
	require.NoError(t, w.Set(2, 9))
	x, _ := v.At(2)
	require.Equal(t, 5.0, x, "assignment copies")
}

func TestVector_Arithmetic(t *testing.T) {
	t.Parallel()

	u := linalg.MustVectorOf[dim.D3](1, 2, 3)
	v := linalg.MustVectorOf[dim.D3](4, -5, 6)

	assert.Equal(t, []float64{5, -3, 9}, u.Add(v).Slice())
	assert.Equal(t, []float64{-3, 7, -3}, u.Sub(v).Slice())
	assert.Equal(t, []float64{2, 4, 6}, u.Scale(2).Slice())
	assert.Equal(t, []float64{-1, -2, -3}, u.Negate().Slice())
	assert.Equal(t, []float64{1, 2, 3}, u.Slice(), "operands untouched")

	assert.Equal(t, 12.0, u.Dot(v))
	assert.Equal(t, u.Dot(v), v.Dot(u))
	assert.InDelta(t, math.Sqrt(9+49+9), u.Distance(v), 1e-15)
}

func TestVector_MagnitudeUnit(t *testing.T) {
	t.Parallel()

	v := linalg.MustVectorOf[dim.D3](3, 4, 0)
	assert.Equal(t, 5.0, v.Magnitude())

	u, err := v.Unit()
	require.NoError(t, err)
	assert.True(t, u.ApproxEqual(linalg.MustVectorOf[dim.D3](0.6, 0.8, 0), 1e-15), "u = %v", u)
	assert.InDelta(t, 1, u.Magnitude(), 1e-15)

	_, err = linalg.NewVector[dim.D3]().Unit()
	require.ErrorIs(t, err, linalg.ErrDegenerateVector)

	tiny := linalg.MustVectorOf[dim.D2](1e-12, 0)
	_, err = tiny.Unit()
	require.ErrorIs(t, err, linalg.ErrDegenerateVector)
	_, err = tiny.Unit(linalg.WithEpsilon(1e-15))
	require.NoError(t, err)
}

func TestCross(t *testing.T) {
	t.Parallel()

	e1 := linalg.MustVectorOf[dim.D3](1, 0, 0)
	e2 := linalg.MustVectorOf[dim.D3](0, 1, 0)
	e3 := linalg.MustVectorOf[dim.D3](0, 0, 1)

	assert.True(t, linalg.Cross(e1, e2).Equal(e3))
	assert.Zero(t, e1.Dot(e2))
	assert.True(t, linalg.Cross(e2, e1).Equal(e3.Negate()))

	u := linalg.MustVectorOf[dim.D3](1, 2, 3)
	v := linalg.MustVectorOf[dim.D3](-4, 0.5, 2)
	c := linalg.Cross(u, v)
	assert.InDelta(t, 0, c.Dot(u), 1e-12)
	assert.InDelta(t, 0, c.Dot(v), 1e-12)
	assert.True(t, linalg.Cross(u, u).Equal(vec3{}))
}

func TestVector_ColumnRow(t *testing.T) {
	t.Parallel()

	v := linalg.MustVectorOf[dim.D4](1, 2, 3, 4)
	col := v.ToColumn()
	r, c := col.Dims()
	assert.Equal(t, [2]int{4, 1}, [2]int{r, c})
	assert.Equal(t, [][]float64{{1}, {2}, {3}, {4}}, col.ToRows())
	assert.True(t, linalg.FromColumn(col).Equal(v))

	row := v.ToRow()
	assert.Equal(t, [][]float64{{1, 2, 3, 4}}, row.ToRows())
	assert.True(t, row.Transpose().Equal(col))

	// A column built independently round-trips too.
	m := linalg.MustFromRows[dim.D2, dim.D1]([][]float64{{7}, {8}})
	assert.True(t, linalg.FromColumn(m).ToColumn().Equal(m))
}

func TestVector_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[3, 4, 0.5]", linalg.MustVectorOf[dim.D3](3, 4, 0.5).String())
	assert.Equal(t, "[0]", linalg.NewVector[dim.D1]().String())
}
