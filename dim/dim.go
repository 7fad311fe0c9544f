// SPDX-License-Identifier: MIT

package dim

import "fmt"

// Max is the largest dimension a fixed-size value can hold.
// Matrices embed Max*Max entries and vectors Max entries, so assignment
// copies the whole value and storage is never shared.
const Max = 8

// panicOutOfRange is the stable message raised by Of.
const panicOutOfRange = "dim: size %d of %T outside 1..%d"

// Size is implemented by dimension parameter types.
// N must be a pure function of the type: every value returns the same size.
type Size interface {
	N() int
}

// D1 through D8 are the predeclared dimensions.
type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
)

func (D1) N() int { return 1 }
func (D2) N() int { return 2 }
func (D3) N() int { return 3 }
func (D4) N() int { return 4 }
func (D5) N() int { return 5 }
func (D6) N() int { return 6 }
func (D7) N() int { return 7 }
func (D8) N() int { return 8 }

// Of resolves the size carried by T.
// It panics when the size is outside 1..Max: an unsupported dimension type is
// a programmer error, not a runtime condition.
// Complexity: O(1).
func Of[T Size]() int {
	var t T
	n := t.N()
	if n < 1 || n > Max {
		panic(fmt.Sprintf(panicOutOfRange, n, t, Max))
	}

	return n
}
