// SPDX-License-Identifier: MIT
// Package transform - float32 exports for GPU upload.
//
// golang.org/x/image/math/f32 stores matrices row-major (m[4*r+c]), the same
// layout linalg uses, so conversion is an element-wise narrowing copy.
// Graphics APIs that expect column-major data (OpenGL with transpose=false)
// need Transposed first.

package transform

import (
	"fmt"

	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/linalgo/dim"
	"github.com/katalvlaran/linalgo/linalg"
)

const (
	opFromMat4 = "FromMat4"
	opFromVec3 = "FromVec3"
)

// ToMat4 narrows m to float32.
func ToMat4(m Mat4) f32.Mat4 {
	var out f32.Mat4
	for i, row := range m.ToRows() {
		for j, v := range row {
			out[4*i+j] = float32(v)
		}
	}

	return out
}

// ToMat3 narrows a 3×3 matrix (for example a NormalMatrix) to float32.
func ToMat3(m linalg.Square[dim.D3]) f32.Mat3 {
	var out f32.Mat3
	for i, row := range m.ToRows() {
		for j, v := range row {
			out[3*i+j] = float32(v)
		}
	}

	return out
}

// ToVec3 narrows v to float32.
func ToVec3(v Vec3) f32.Vec3 {
	x, y, z := comps(v)

	return f32.Vec3{float32(x), float32(y), float32(z)}
}

// FromMat4 widens a float32 matrix.
// Errors: ErrNaNInf.
func FromMat4(m f32.Mat4) (Mat4, error) {
	data := make([]float64, len(m))
	for i, v := range m {
		data[i] = float64(v)
	}
	sq, err := linalg.FromData[dim.D4, dim.D4](data)
	if err != nil {
		return Mat4{}, transformErrorf(opFromMat4, err)
	}

	return linalg.AsSquare(sq), nil
}

// FromVec3 widens a float32 vector.
// Errors: ErrNaNInf.
func FromVec3(v f32.Vec3) (Vec3, error) {
	out, err := linalg.VectorOf[dim.D3](float64(v[0]), float64(v[1]), float64(v[2]))
	if err != nil {
		return Vec3{}, transformErrorf(opFromVec3, fmt.Errorf("%v: %w", v, err))
	}

	return out, nil
}

// Transposed returns the column-major layout of m.
func Transposed(m f32.Mat4) f32.Mat4 {
	var out f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*c+r] = m[4*r+c]
		}
	}

	return out
}
