// SPDX-License-Identifier: MIT
// Package transform - model/view/projection matrices.

package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalgo/dim"
	"github.com/katalvlaran/linalgo/linalg"
	"github.com/katalvlaran/linalgo/matrix"
)

// Mat4 is the 4×4 transform type.
type Mat4 = linalg.Square[dim.D4]

// Vec3 is a point or direction in 3-space.
type Vec3 = linalg.Vector[dim.D3]

const (
	opRotation       = "Rotation"
	opLookAt         = "LookAt"
	opPerspective    = "Perspective"
	opTransformPoint = "TransformPoint"
	opNormalMatrix   = "NormalMatrix"
)

// fromRows builds a transform from literal rows computed in this package.
// Entries derived from finite inputs are finite; anything else is reported.
func fromRows(op string, rows [][]float64) (Mat4, error) {
	m, err := linalg.SquareFromRows[dim.D4](rows)
	if err != nil {
		return Mat4{}, transformErrorf(op, err)
	}

	return m, nil
}

// rawSquare builds an N×N value from row-major entries taken as they are,
// ±Inf and NaN included, so overflowed inputs pass through instead of
// failing construction. len(data) is always N*N here.
func rawSquare[N dim.Size](data ...float64) linalg.Square[N] {
	n := dim.Of[N]()
	d := must(matrix.NewDenseFromData(n, n, data, matrix.WithNoValidateNaNInf()))

	return must(linalg.SquareFromDense[N](d))
}

// rawVec3 is rawSquare for 3-vectors.
func rawVec3(x, y, z float64) Vec3 {
	d := must(matrix.NewDenseFromData(3, 1, []float64{x, y, z}, matrix.WithNoValidateNaNInf()))

	return linalg.FromColumn(must(linalg.FromDense[dim.D3, dim.D1](d)))
}

// must unwraps results whose shapes are fixed by the caller.
func must[T any](v T, err error) T {
	if err != nil {
		panic("transform: unexpected error: " + err.Error())
	}

	return v
}

// comps unpacks a 3-vector.
func comps(v Vec3) (x, y, z float64) {
	s := v.Slice()

	return s[0], s[1], s[2]
}

// Translation returns T(v): identity with v in the last column.
func Translation(v Vec3) Mat4 {
	x, y, z := comps(v)

	return rawSquare[dim.D4](
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// Translate returns m·T(v).
func Translate(m Mat4, v Vec3) Mat4 { return m.Mul(Translation(v)) }

// Scaling returns the diagonal matrix diag(v.x, v.y, v.z, 1).
func Scaling(v Vec3) Mat4 {
	x, y, z := comps(v)

	return rawSquare[dim.D4](
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// Scale returns m·S(v).
func Scale(m Mat4, v Vec3) Mat4 { return m.Mul(Scaling(v)) }

// Rotation returns the right-handed rotation by angle radians about axis.
// The axis is normalized first.
//
// Implementation:
//   - Rodrigues' formula R = cI + s[k]× + (1−c)kkᵀ with c = cos, s = sin.
//
// Errors:
//   - ErrDegenerateVector when |axis| ≤ eps.
func Rotation(angle float64, axis Vec3, opts ...linalg.Option) (Mat4, error) {
	k, err := axis.Unit(opts...)
	if err != nil {
		return Mat4{}, transformErrorf(opRotation, err)
	}
	x, y, z := comps(k)
	c, s := math.Cos(angle), math.Sin(angle)
	t := 1 - c

	return fromRows(opRotation, [][]float64{
		{c + x*x*t, x*y*t - z*s, x*z*t + y*s, 0},
		{y*x*t + z*s, c + y*y*t, y*z*t - x*s, 0},
		{z*x*t - y*s, z*y*t + x*s, c + z*z*t, 0},
		{0, 0, 0, 1},
	})
}

// Rotate returns m·R(angle, axis).
func Rotate(m Mat4, angle float64, axis Vec3, opts ...linalg.Option) (Mat4, error) {
	r, err := Rotation(angle, axis, opts...)
	if err != nil {
		return Mat4{}, err
	}

	return m.Mul(r), nil
}

// LookAt returns the right-handed view matrix for a camera at eye looking at
// center. The camera looks down its −z axis with up projected onto +y.
//
// Errors:
//   - ErrDegenerateVector when eye and center coincide or up is parallel to
//     the view direction.
func LookAt(eye, center, up Vec3, opts ...linalg.Option) (Mat4, error) {
	f, err := center.Sub(eye).Unit(opts...)
	if err != nil {
		return Mat4{}, transformErrorf(opLookAt, fmt.Errorf("view direction: %w", err))
	}
	s, err := linalg.Cross(f, up).Unit(opts...)
	if err != nil {
		return Mat4{}, transformErrorf(opLookAt, fmt.Errorf("up parallel to view: %w", err))
	}
	u := linalg.Cross(s, f)

	sx, sy, sz := comps(s)
	ux, uy, uz := comps(u)
	fx, fy, fz := comps(f)

	return fromRows(opLookAt, [][]float64{
		{sx, sy, sz, -s.Dot(eye)},
		{ux, uy, uz, -u.Dot(eye)},
		{-fx, -fy, -fz, f.Dot(eye)},
		{0, 0, 0, 1},
	})
}

// Perspective returns the OpenGL perspective projection for a vertical field
// of view fovy (radians), width/height aspect and near/far clip distances.
// Points at distance near map to depth −1 and at far to +1.
//
// Errors:
//   - ErrInvalidProjection for fovy ∉ (0, π), aspect ≤ 0, near ≤ 0, far ≤ near,
//     or an infinite aspect or far.
func Perspective(fovy, aspect, near, far float64) (Mat4, error) {
	switch {
	case !(fovy > 0 && fovy < math.Pi):
		return Mat4{}, transformErrorf(opPerspective, fmt.Errorf("fovy %g: %w", fovy, ErrInvalidProjection))
	case !(aspect > 0):
		return Mat4{}, transformErrorf(opPerspective, fmt.Errorf("aspect %g: %w", aspect, ErrInvalidProjection))
	case math.IsInf(aspect, 0) || math.IsInf(far, 0):
		return Mat4{}, transformErrorf(opPerspective, fmt.Errorf("aspect %g far %g: %w", aspect, far, ErrInvalidProjection))
	case !(near > 0) || !(far > near):
		return Mat4{}, transformErrorf(opPerspective, fmt.Errorf("near %g far %g: %w", near, far, ErrInvalidProjection))
	}
	f := 1 / math.Tan(fovy/2)

	return fromRows(opPerspective, [][]float64{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / (near - far), 2 * far * near / (near - far)},
		{0, 0, -1, 0},
	})
}

// apply4 returns m·(x, y, z, w).
func apply4(m Mat4, x, y, z, w float64) [4]float64 {
	var r [4]float64
	for i, row := range m.ToRows() {
		r[i] = row[0]*x + row[1]*y + row[2]*z + row[3]*w
	}

	return r
}

// TransformPoint maps p as (p, 1) and divides by the resulting w.
//
// Errors:
//   - ErrPointAtInfinity when |w| ≤ eps.
func TransformPoint(m Mat4, p Vec3, opts ...linalg.Option) (Vec3, error) {
	eps := matrix.NewMatrixOptions(opts...).Epsilon()
	x, y, z := comps(p)
	r := apply4(m, x, y, z, 1)
	if !(math.Abs(r[3]) > eps) {
		return Vec3{}, transformErrorf(opTransformPoint, fmt.Errorf("w = %g: %w", r[3], ErrPointAtInfinity))
	}

	return rawVec3(r[0]/r[3], r[1]/r[3], r[2]/r[3]), nil
}

// TransformDirection maps d as (d, 0): translation does not apply.
func TransformDirection(m Mat4, d Vec3) Vec3 {
	x, y, z := comps(d)
	r := apply4(m, x, y, z, 0)

	return rawVec3(r[0], r[1], r[2])
}

// Linear returns the upper-left 3×3 block of m.
func Linear(m Mat4) linalg.Square[dim.D3] {
	rows := m.ToRows()

	return rawSquare[dim.D3](
		rows[0][0], rows[0][1], rows[0][2],
		rows[1][0], rows[1][1], rows[1][2],
		rows[2][0], rows[2][1], rows[2][2],
	)
}

// NormalMatrix returns (L⁻¹)ᵀ for the linear part L of m, the matrix that
// keeps surface normals perpendicular under non-uniform scaling.
//
// Errors:
//   - ErrSingular when L is not invertible.
func NormalMatrix(m Mat4, opts ...linalg.Option) (linalg.Square[dim.D3], error) {
	inv, err := Linear(m).Inverse(opts...)
	if err != nil {
		return linalg.Square[dim.D3]{}, transformErrorf(opNormalMatrix, err)
	}

	return inv.Transpose(), nil
}
