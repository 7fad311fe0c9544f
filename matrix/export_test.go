// SPDX-License-Identifier: MIT

package matrix

// White-box bridges for matrix_test. Compiled only with the test binary.

// IsClose exposes the scalar AllClose predicate.
func IsClose(a, b, rtol, atol float64) bool { return isClose(a, b, rtol, atol) }

// SkipIndex exposes the minor index builder.
func SkipIndex(n, k int) []int { return skipIndex(n, k) }

// DetCofactorFlat runs the Laplace expansion directly on a flat n×n buffer.
func DetCofactorFlat(d []float64, n int) float64 { return detCofactor(d, n) }
