// Package linalgo is a small fixed-dimension linear-algebra library.
//
// Matrices and vectors carry their dimensions in their types, own their
// storage, and copy on assignment. Shape mistakes in arithmetic are compile
// errors; numeric failures (singular systems, zero-length vectors) are
// sentinel errors.
//
// The module is organized under four packages:
//
//	dim/       — dimension parameter types D1..D8 and the Size interface
//	matrix/    — runtime-shaped Dense kernel: arithmetic, LUP elimination,
//	             cofactor algebra, vector kernels, options, sentinel errors
//	linalg/    — typed API: Matrix[R, C], Square[N], Identity[N], Vector[N], Cross
//	transform/ — 4×4 homogeneous transforms (translate, rotate, look-at,
//	             perspective) and float32 export via golang.org/x/image/math/f32
//
// Quick example:
//
//	a := linalg.MustSquareFromRows[dim.D3]([][]float64{
//		{4, 7, 2},
//		{3, 5, 6},
//		{8, 1, 9},
//	})
//	a.Determinant() // 229
//
//	go get github.com/katalvlaran/linalgo
package linalgo
