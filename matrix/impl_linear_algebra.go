// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose and
// matrix-vector product. All functions perform strict fail-fast validation
// and return wrapped sentinels on shape problems.
//
// Notes:
//   - Non-*Dense operands are materialised once through asDense; kernels then
//     run flat row-major loops over the backing slices.
//   - Inputs are never mutated; every result is a freshly allocated Dense.

package matrix

import "fmt"

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: materialise operands, single flat loop 0..r*c-1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDense(da.r, da.c)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Sub(Add(A, B), B) reproduces A up to rounding.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loop over row-major strides; each C[i,j] accumulates
//     A[i,k]*B[k,j] in increasing k, the same order as the textbook triple sum.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c). An inner dimension of 0 yields zeros.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - Zero entries are not skipped, so NaN/Inf in B propagate as IEEE dictates.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res := newDense(aRows, bCols)
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// No shape constraint; an r×c input yields c×r.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := dm.r, dm.c
	res := newDense(cols, rows) // dims flipped
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j] // data[i*cols+j] → res[j*rows+i]
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Errors:
//   - ErrNilMatrix (nil m), ErrDimensionMismatch (len(x) != m.Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, fmt.Errorf("materialise: %w", err))
	}

	rows, cols := dm.r, dm.c
	y := make([]float64, rows)
	var (
		i, j, base int
		sum        float64
	)
	for i = 0; i < rows; i++ {
		base = i * cols
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			sum += dm.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}
