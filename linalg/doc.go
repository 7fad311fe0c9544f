// Package linalg provides matrices and vectors whose dimensions are part of
// their type.
//
// A Matrix[R, C] has R rows and C columns for its whole lifetime, where R and
// C are dimension types from package dim (dim.D1 … dim.D8, or any user type
// implementing dim.Size). Because the shape is in the type, shape errors in
// arithmetic are compile errors:
//
//	var a linalg.Matrix[dim.D2, dim.D3]
//	var b linalg.Matrix[dim.D3, dim.D4]
//	c := linalg.Mul(a, b) // Matrix[dim.D2, dim.D4]
//	_ = linalg.Mul(b, a)  // does not compile
//
// Storage is a fixed-capacity array held inside each value, so assigning or
// passing a Matrix, Square or Vector copies it completely; two values never
// share entries. The zero value of every type is a valid zero matrix or
// vector. Constructors that take caller data (FromRows, FromData, VectorOf,
// VectorFrom) copy it.
//
// Square[N] adds determinant, inverse and linear-system solving. The
// canonical algorithms use Gaussian elimination with partial pivoting; the
// cofactor expansion (DeterminantCofactor, InverseAdjugate) and SolveByInverse
// are alternates for small, well-conditioned problems. Singularity is always
// decided against a tolerance relative to the magnitude of the entries; see
// WithEpsilon.
//
// Cross is only defined for Vector[dim.D3]; using it with any other
// dimension does not compile.
//
// All numerics run through package matrix. Errors are the matrix sentinels
// re-exported here, matched with errors.Is.
package linalg
