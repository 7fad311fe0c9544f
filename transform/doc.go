// Package transform builds 4×4 homogeneous transforms on top of linalg.
//
// Matrices are row-major and act on column vectors, so a point p maps to M·p
// and the translation lives in the last column. Composition helpers post-
// multiply: Translate(m, v) is m·T(v), which applies T first when the result
// is used on a point.
//
// The projection follows the OpenGL clip-space convention: the view looks
// down −z and depth maps to [−1, 1].
//
// Helpers without an error result (Translation, Scaling, TransformDirection,
// Linear) carry ±Inf and NaN entries through unchanged, so values that
// overflowed upstream never make them panic.
//
// Finished transforms convert to golang.org/x/image/math/f32 values (Mat4,
// Mat3, Vec3), whose row-major layout matches the one used here.
package transform
