// SPDX-License-Identifier: MIT

// Package matrix: the read-only Matrix interface and shared constants.
package matrix

// Matrix is a read-only two-dimensional array of float64 values.
// *Dense is the package's implementation; kernels take the Matrix interface
// and use a flat fast path when the concrete type is *Dense.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// ZeroSum is the initial value for dot products and substitution sums.
const ZeroSum = 0.0

// ZeroPivot is the exact-zero pivot that triggers the Det fallback.
const ZeroPivot = 0.0

// CofactorMaxOrder is the largest order for which Det falls back to
// cofactor expansion on a zero pivot.
const CofactorMaxOrder = 3

// Operation name constants for unified error wrapping.
const (
	opFromRows    = "FromRows"
	opZeros       = "Zeros"
	opIdentity    = "Identity"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opMatVec      = "MatVec"
	opDet         = "Det"
	opLU          = "LU"
	opInverse     = "Inverse"
	opSolve       = "Solve"
	opEqualApprox = "EqualApprox"
)
