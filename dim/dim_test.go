package dim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalgo/dim"
)

type d0 struct{}

func (d0) N() int { return 0 }

type d9 struct{}

func (d9) N() int { return dim.Max + 1 }

type d5 struct{}

func (d5) N() int { return 5 }

func TestOf_Predeclared(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, dim.Of[dim.D1]())
	require.Equal(t, 2, dim.Of[dim.D2]())
	require.Equal(t, 3, dim.Of[dim.D3]())
	require.Equal(t, 4, dim.Of[dim.D4]())
	require.Equal(t, 5, dim.Of[dim.D5]())
	require.Equal(t, 6, dim.Of[dim.D6]())
	require.Equal(t, 7, dim.Of[dim.D7]())
	require.Equal(t, dim.Max, dim.Of[dim.D8]())
}

func TestOf_UserDefined(t *testing.T) {
	t.Parallel()

	require.Equal(t, 5, dim.Of[d5]())
}

func TestOf_OutOfRangePanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { dim.Of[d0]() })
	require.Panics(t, func() { dim.Of[d9]() })
}
