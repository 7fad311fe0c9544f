// SPDX-License-Identifier: MIT
package linalg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalgo/dim"
	"github.com/katalvlaran/linalgo/linalg"
	"github.com/katalvlaran/linalgo/matrix"
)

type m23 = linalg.Matrix[dim.D2, dim.D3]

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var m m23
	r, c := m.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, m.ToRows())
	require.True(t, m.Equal(linalg.New[dim.D2, dim.D3]()))
}

func TestFromRows(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := linalg.FromRows[dim.D2, dim.D3](src)
	require.NoError(t, err)
	src[0][0] = 99 // caller storage is not shared
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)
	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)
}

func TestFromRows_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"too few rows", [][]float64{{1, 2, 3}}, linalg.ErrDimensionMismatch},
		{"too many cols", [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}}, linalg.ErrDimensionMismatch},
		{"ragged", [][]float64{{1, 2, 3}, {4, 5}}, linalg.ErrBadShape},
		{"nan", [][]float64{{1, 2, math.NaN()}, {4, 5, 6}}, linalg.ErrNaNInf},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := linalg.FromRows[dim.D2, dim.D3](tc.rows)
			require.ErrorIs(t, err, tc.want)
			require.True(t, m.Equal(m23{}), "failed construction yields the zero value")
		})
	}
}

func TestFromData(t *testing.T) {
	t.Parallel()

	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := linalg.FromData[dim.D2, dim.D3](data)
	require.NoError(t, err)
	data[5] = 0
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.ToRows())

	_, err = linalg.FromData[dim.D2, dim.D3](data[:5])
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = linalg.FromData[dim.D1, dim.D1]([]float64{math.Inf(1)})
	require.ErrorIs(t, err, linalg.ErrNaNInf)

	require.Panics(t, func() { linalg.MustFromData[dim.D2, dim.D2]([]float64{1}) })
	require.Panics(t, func() { linalg.MustFromRows[dim.D2, dim.D2](nil) })
}

func TestAtSet(t *testing.T) {
	t.Parallel()

	var m m23
	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, linalg.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, linalg.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), linalg.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), linalg.ErrNaNInf)
	v, _ = m.At(0, 0)
	require.Zero(t, v, "failed Set leaves the value unchanged")

	_, err = m.Row(2)
	require.ErrorIs(t, err, linalg.ErrOutOfRange)
	_, err = m.Col(3)
	require.ErrorIs(t, err, linalg.ErrOutOfRange)
}

// TestAssignmentIndependence checks that every copy is a deep copy.
func TestAssignmentIndependence(t *testing.T) {
	t.Parallel()

	a := linalg.MustFromRows[dim.D2, dim.D3]([][]float64{{1, 2, 3}, {4, 5, 6}})
	b := a
	c := a.Clone()
	require.NoError(t, b.Set(0, 0, -1))
	require.NoError(t, c.Set(1, 1, -1))

	v, _ := a.At(0, 0)
	require.Equal(t, 1.0, v)
	v, _ = a.At(1, 1)
	require.Equal(t, 5.0, v)
	require.Equal(t, [][]float64{{-1, 2, 3}, {4, 5, 6}}, b.ToRows())
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	a := linalg.MustFromRows[dim.D2, dim.D3]([][]float64{{1, 2, 3}, {4, 5, 6}})
	b := linalg.MustFromRows[dim.D2, dim.D3]([][]float64{{6, 5, 4}, {3, 2, 1}})

	assert.Equal(t, [][]float64{{7, 7, 7}, {7, 7, 7}}, a.Add(b).ToRows())
	assert.Equal(t, [][]float64{{-5, -3, -1}, {1, 3, 5}}, a.Sub(b).ToRows())
	assert.Equal(t, [][]float64{{2, 4, 6}, {8, 10, 12}}, a.Scale(2).ToRows())
	// Operands are untouched.
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, a.ToRows())

	at := a.Transpose()
	r, c := at.Dims()
	assert.Equal(t, [2]int{3, 2}, [2]int{r, c})
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at.ToRows())
	assert.True(t, at.Transpose().Equal(a))
}

func TestMul(t *testing.T) {
	t.Parallel()

	a := linalg.MustFromRows[dim.D2, dim.D3]([][]float64{{1, 2, 3}, {4, 5, 6}})
	b := linalg.MustFromRows[dim.D3, dim.D2]([][]float64{{7, 8}, {9, 10}, {11, 12}})
	p := linalg.Mul(a, b) // Matrix[D2, D2]
	assert.Equal(t, [][]float64{{58, 64}, {139, 154}}, p.ToRows())

	q := linalg.Mul(b, a) // Matrix[D3, D3]
	r, c := q.Dims()
	assert.Equal(t, [2]int{3, 3}, [2]int{r, c})

	I := linalg.Identity[dim.D3]()
	assert.True(t, linalg.Mul(a, I.Matrix).Equal(a))

	v := linalg.MustVectorOf[dim.D3](1, 0, -1)
	assert.Equal(t, []float64{-2, -2}, linalg.MulVec(a, v).Slice())
}

func TestApproxEqualAndString(t *testing.T) {
	t.Parallel()

	a := linalg.MustFromRows[dim.D2, dim.D2]([][]float64{{1, 2}, {3, 4}})
	b := linalg.MustFromRows[dim.D2, dim.D2]([][]float64{{1 + 1e-12, 2}, {3, 4}})
	assert.False(t, a.Equal(b))
	assert.True(t, a.ApproxEqual(b, 1e-9))
	assert.False(t, a.ApproxEqual(b, 0))
	assert.False(t, a.ApproxEqual(b, -1))
	assert.False(t, a.ApproxEqual(b, math.NaN()))

	assert.Equal(t, "[1, 2]\n[3, 4]\n", a.String())

	d := a.Dense()
	require.NoError(t, d.Set(0, 0, 100))
	v, _ := a.At(0, 0)
	assert.Equal(t, 1.0, v, "Dense export is a copy")
}

// TestFromDense round-trips through the kernel, non-finite entries included.
func TestFromDense(t *testing.T) {
	t.Parallel()

	inf := math.Inf(-1)
	d, err := matrix.NewDenseFromRows([][]float64{{1, 2, inf}, {4, 5, 6}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	m, err := linalg.FromDense[dim.D2, dim.D3](d)
	require.NoError(t, err)
	v, err := m.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, inf, v)
	assert.Equal(t, d.Data(), m.Dense().Data())

	_, err = linalg.FromDense[dim.D3, dim.D2](d)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = linalg.FromDense[dim.D2, dim.D3](nil)
	require.ErrorIs(t, err, linalg.ErrNilMatrix)

	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	sq, err := linalg.SquareFromDense[dim.D2](id)
	require.NoError(t, err)
	assert.True(t, sq.Equal(linalg.Identity[dim.D2]()))
	_, err = linalg.SquareFromDense[dim.D2](d)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}
