// Package matrix is the runtime-shaped numeric kernel behind linalg.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set, deep-copying
//     constructors (NewDense, NewDenseFromData, NewDenseFromRows) and an
//     optional finite-value policy.
//   - Arithmetic kernels: Add, Sub, Mul, Scale, Transpose, MatVec.
//   - Gaussian elimination with partial pivoting (LU / LUP) backing the
//     canonical Determinant, Inverse and Solve.
//   - Cofactor algebra (Minor, Cofactor, Adjugate, DeterminantCofactor,
//     InverseAdjugate) kept as an independent alternate for small n.
//   - Vector kernels on slices: Dot, Norm, Unit, Cross.
//
// Errors are package sentinels matched with errors.Is. Numeric tolerance is
// configured through functional options (WithEpsilon); every "is this zero?"
// decision is relative to the magnitude of the inputs.
//
// Callers that know their dimensions at compile time should use package
// linalg, which wraps these kernels in fixed-size, value-semantics types.
package matrix
