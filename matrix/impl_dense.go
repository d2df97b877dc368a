// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Enforce the rectangular invariant once, at construction (FromRows).
//   - Keep Dense immutable to callers: there is no Set; kernels build results
//     in fresh buffers owned by the package.
//
// Complexity quicksheet:
//   - FromRows/Zeros/Identity: O(r*c); At: O(1); Clone/ToRows: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const ctxAt = "At" // method tag used in error wrappers

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); zero is legal (0×0, k×0).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is a valid 0×0 matrix.
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// newDense allocates a zero-filled r×c Dense. Callers guarantee r, c >= 0.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// FromRows builds a Dense from rows of columns, copying every value.
// MAIN DESCRIPTION:
//   - Public constructor enforcing the rectangular invariant.
//
// Implementation:
//   - Stage 1: take cols from the first row (0 when there are no rows).
//   - Stage 2: reject any row whose length differs (ErrRagged).
//   - Stage 3: copy rows into a flat row-major buffer.
//
// Behavior highlights:
//   - nil or empty input yields a 0×0 matrix; rows of length 0 yield k×0.
//   - The caller's slices are never retained.
//
// Errors:
//   - ErrRagged (an ErrInvalidShape), wrapped with the offending row index.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrRagged))
		}
	}

	m := newDense(r, c)
	for i = 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i]) // row i → contiguous block
	}

	return m, nil
}

// Zeros returns an r×c matrix of zeros.
// Errors: ErrInvalidDimensions when r < 0 or c < 0.
func Zeros(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opZeros, ErrInvalidDimensions)
	}

	return newDense(rows, cols), nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n < 0.
func Identity(n int) (*Dense, error) {
	if n < 0 {
		return nil, matrixErrorf(opIdentity, ErrInvalidDimensions)
	}

	return identity(n), nil
}

// identity is the unchecked Identity used by kernels.
func identity(n int) *Dense {
	m := newDense(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// ToRows exports the matrix as freshly allocated rows of columns.
// FromRows(m.ToRows()) reproduces m.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders one bracketed, comma-separated line per row, values in %g.
// Intended for logs and debugging, not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// asDense returns m itself when it is a *Dense, or materialises any other
// Matrix into a fresh *Dense through At. The result must be treated as
// read-only by callers: it may alias the caller's matrix.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	out := newDense(rows, cols)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
