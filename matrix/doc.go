// SPDX-License-Identifier: MIT

// Package matrix provides small dense-matrix linear algebra on float64.
//
// The matrix package provides:
//
//   - Dense, a row-major value type built from rows of columns (FromRows),
//     with Zeros and Identity constructors. Ragged input is rejected with
//     ErrInvalidShape; Dense has no mutators.
//   - Element-wise Add/Sub, Mul, Transpose and MatVec.
//   - Det: Doolittle elimination without pivoting; on an exact zero pivot
//     matrices up to 3×3 fall back to cofactor expansion, larger ones fail
//     with ErrSingular. LU exposes the same elimination as L and U factors.
//   - Inverse (Gauss-Jordan) and Solve (Gaussian elimination with back
//     substitution), both with partial pivoting and a configurable pivot
//     tolerance (default 1e-12, WithPivotTolerance).
//   - EqualApprox for tolerance-based comparison (WithEpsilon).
//
// Every operation accepts the read-only Matrix interface, leaves its inputs
// untouched; matrix results are freshly allocated *Dense values. Errors are package
// sentinels wrapped with an operation tag; match them with errors.Is.
//
// Matrices are meant to be small: all kernels are straightforward O(n³)
// loops with no blocking or parallelism.
//
//	A, _ := matrix.FromRows([][]float64{{4, 7}, {2, 6}})
//	x, _ := matrix.Solve(A, []float64{1, 0}) // [0.6 -0.2]
//	inv, _ := matrix.Inverse(A)
//	det, _ := matrix.Det(A) // 10
package matrix
