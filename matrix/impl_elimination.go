// SPDX-License-Identifier: MIT
// Package matrix: elimination kernels (Det, LU, Inverse, Solve).
//
// Purpose:
//   - Det/LU: Doolittle elimination WITHOUT pivoting (deterministic, pivots
//     in natural order). Det falls back to exact cofactor expansion for
//     n ≤ CofactorMaxOrder when a natural pivot is exactly zero.
//   - Inverse/Solve: Gauss-Jordan / Gaussian elimination WITH partial
//     pivoting and a pivot tolerance (DefaultPivotTolerance).
//
// Notes:
//   - Every kernel copies its input into a private working buffer; the
//     caller's matrix is never touched.
//   - The unpivoted Det reports ErrSingular for an n > 3 matrix whose
//     natural pivot is zero, even when the matrix is invertible.

package matrix

import (
	"fmt"
	"math"
)

// doolittle runs in-place Doolittle elimination on the n×n row-major buffer u.
// When l is non-nil, the multipliers are stored below its diagonal.
// It returns the product of pivots, or the index of the first exact zero
// pivot (>= 0) when elimination cannot proceed; zeroAt == -1 on success.
// Complexity: O(n³).
func doolittle(u, l []float64, n int) (det float64, zeroAt int) {
	det = 1.0
	var (
		i, j, k       int
		pivot, factor float64
	)
	for k = 0; k < n; k++ {
		pivot = u[k*n+k]
		if pivot == ZeroPivot {
			return 0, k
		}
		det *= pivot
		for i = k + 1; i < n; i++ {
			factor = u[i*n+k] / pivot
			if l != nil {
				l[i*n+k] = factor
			}
			for j = k; j < n; j++ {
				u[i*n+j] -= factor * u[k*n+j]
			}
		}
	}

	return det, -1
}

// cofactorDet expands the n×n row-major buffer a along its first row.
// Base cases: 1×1 and 2×2 closed forms. Intended for n ≤ CofactorMaxOrder.
func cofactorDet(a []float64, n int) float64 {
	switch n {
	case 0:
		return 1
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[1]*a[2]
	}

	m := n - 1
	minor := make([]float64, m*m)
	det := 0.0
	sign := 1.0
	var i, j, col, dst int
	for col = 0; col < n; col++ {
		dst = 0
		for i = 1; i < n; i++ { // rows below the expansion row
			for j = 0; j < n; j++ {
				if j == col {
					continue
				}
				minor[dst] = a[i*n+j]
				dst++
			}
		}
		det += sign * a[col] * cofactorDet(minor, m)
		sign = -sign
	}

	return det
}

// Det computes the determinant of a square matrix.
// MAIN DESCRIPTION:
//   - Product of the pivots of an unpivoted Doolittle elimination.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: copy m into a working buffer U and eliminate column by column.
//   - Stage 3: on an exact zero pivot, n ≤ 3 ⇒ cofactor expansion of the
//     ORIGINAL matrix; n > 3 ⇒ ErrSingular.
//
// Behavior highlights:
//   - Singular matrices up to 3×3 return 0 (through the cofactor path), not an error.
//   - The 0×0 determinant is 1 (empty product).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (an ErrInvalidShape), ErrSingular (n > 3, zero pivot).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Det(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	n := dm.r
	u := make([]float64, len(dm.data))
	copy(u, dm.data)
	det, zeroAt := doolittle(u, nil, n)
	if zeroAt < 0 {
		return det, nil
	}
	if n <= CofactorMaxOrder {
		return cofactorDet(dm.data, n), nil
	}

	return 0, matrixErrorf(opDet, fmt.Errorf("zero pivot at %d: %w", zeroAt, ErrSingular))
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular on any exact zero pivot.
//
// Complexity:
//   - Time O(n³), Space O(n²) for L and U.
func LU(m Matrix) (l, u *Dense, err error) {
	if err = ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := dm.r
	l = identity(n)
	u = dm.Clone()
	if _, zeroAt := doolittle(u.data, l.data, n); zeroAt >= 0 {
		return nil, nil, matrixErrorf(opLU, fmt.Errorf("zero pivot at %d: %w", zeroAt, ErrSingular))
	}
	// Elimination leaves the exact multiples it subtracted below the diagonal
	// of U as rounding residue; U is upper triangular by definition.
	var i, j int
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			u.data[i*n+j] = 0
		}
	}

	return l, u, nil
}

// augment copies the n×n matrix d into n rows of width n+extra; the
// trailing columns are left zero for the caller to fill.
func augment(d *Dense, extra int) [][]float64 {
	n := d.r
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, n+extra)
		copy(row, d.data[i*n:(i+1)*n])
		rows[i] = row
	}

	return rows
}

// pivotRow returns the row r in [col, n) maximising |rows[r][col]|; the
// first such row wins ties.
func pivotRow(rows [][]float64, col int) int {
	best := col
	bestAbs := math.Abs(rows[col][col])
	for r := col + 1; r < len(rows); r++ {
		if v := math.Abs(rows[r][col]); v > bestAbs {
			best, bestAbs = r, v
		}
	}

	return best
}

// eliminatePivot selects and swaps the pivot for column col, then scales the
// pivot row so that rows[col][col] == 1.
// Returns ErrSingular when the best pivot magnitude is below tol.
func eliminatePivot(rows [][]float64, col int, tol float64) error {
	p := pivotRow(rows, col)
	if math.Abs(rows[p][col]) < tol {
		return fmt.Errorf("pivot %d below tolerance %g: %w", col, tol, ErrSingular)
	}
	if p != col {
		rows[col], rows[p] = rows[p], rows[col]
	}
	inv := 1.0 / rows[col][col]
	pr := rows[col]
	for c := range pr {
		pr[c] *= inv
	}

	return nil
}

// subtractRow performs rows[r] -= factor*rows[col] when factor != 0.
func subtractRow(rows [][]float64, r, col int) {
	factor := rows[r][col]
	if factor == 0 {
		return
	}
	dst, src := rows[r], rows[col]
	for c := range dst {
		dst[c] -= factor * src[c]
	}
}

// Inverse computes A⁻¹ by Gauss-Jordan elimination on [A | I].
// MAIN DESCRIPTION:
//   - Partial pivoting: at column k choose the row at/below k with the
//     largest |value|, swap it up, scale it to a unit pivot, and clear column
//     k in every other row.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); resolve options.
//   - Stage 2: build the n×2n augmented working copy.
//   - Stage 3: for each column: pivot (ErrSingular below tolerance), scale, eliminate.
//   - Stage 4: return the right half.
//
// Inputs:
//   - m: square matrix.
//   - opts: WithPivotTolerance (default 1e-12).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (an ErrInvalidShape), ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	n := dm.r
	rows := augment(dm, n)
	var col, r int
	for r = 0; r < n; r++ {
		rows[r][n+r] = 1 // right half starts as I
	}
	for col = 0; col < n; col++ {
		if err = eliminatePivot(rows, col, o.pivotTol); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for r = 0; r < n; r++ {
			if r != col {
				subtractRow(rows, r, col)
			}
		}
	}

	inv := newDense(n, n)
	for r = 0; r < n; r++ {
		copy(inv.data[r*n:(r+1)*n], rows[r][n:])
	}

	return inv, nil
}

// Solve returns x with A·x = b using Gaussian elimination with partial pivoting.
// MAIN DESCRIPTION:
//   - Reduce [A | b] to unit upper-triangular form (same pivot rule and
//     tolerance as Inverse), then back-substitute.
//
// Errors (in priority order):
//   - ErrNilMatrix, ErrNonSquare (an ErrInvalidShape),
//     ErrDimensionMismatch (len(b) != A.Rows()), ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)

	n := da.r
	rows := augment(da, 1)
	var col, r, j int
	for r = 0; r < n; r++ {
		rows[r][n] = b[r]
	}
	for col = 0; col < n; col++ {
		if err = eliminatePivot(rows, col, o.pivotTol); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		for r = col + 1; r < n; r++ {
			subtractRow(rows, r, col)
		}
	}

	// Back substitution on the unit upper-triangular system.
	x := make([]float64, n)
	var sum float64
	for r = n - 1; r >= 0; r-- {
		sum = ZeroSum
		for j = r + 1; j < n; j++ {
			sum += rows[r][j] * x[j]
		}
		x[r] = rows[r][n] - sum
	}

	return x, nil
}
