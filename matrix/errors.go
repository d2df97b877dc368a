// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels (possibly wrapped with an operation tag)
// and tests check them via errors.Is. No operation panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Operations
// wrap with matrixErrorf(op, err) so messages read "<Op>: <validator>: matrix: ...".
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape (ragged / non-square) -> operand shape mismatch
// -> vector length mismatch -> singularity.

var (
	// ErrInvalidShape is returned when a matrix does not have the shape an
	// operation requires: ragged rows, negative sizes or a non-square matrix.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrShapeMismatch indicates incompatible operand shapes: Add/Sub of
	// different shapes, or Mul where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrDimensionMismatch indicates a vector whose length does not match the
	// matrix dimension it is combined with (Solve, MatVec).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when no usable pivot exists: an exact zero pivot
	// in Det (n > 3) or a best pivot below tolerance in Inverse/Solve.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (or nil vector) was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// Refinements of ErrInvalidShape. errors.Is matches both the refinement and
// ErrInvalidShape.
var (
	// ErrRagged marks rows of unequal length at construction.
	ErrRagged = fmt.Errorf("irregular matrix: %w", ErrInvalidShape)

	// ErrNonSquare marks a non-square input to Det, Inverse or Solve.
	ErrNonSquare = fmt.Errorf("matrix is not square: %w", ErrInvalidShape)

	// ErrInvalidDimensions marks negative sizes passed to Zeros or Identity.
	ErrInvalidDimensions = fmt.Errorf("dimensions must be >= 0: %w", ErrInvalidShape)
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
