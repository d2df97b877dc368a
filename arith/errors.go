// SPDX-License-Identifier: MIT

package arith

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by Div, Mod and FloorDiv when b == 0.
	ErrDivisionByZero = errors.New("arith: division by zero")

	// ErrInvalidArgument marks an input outside the real domain of an operation.
	ErrInvalidArgument = errors.New("arith: invalid argument")
)

// Specific argument faults. Each wraps ErrInvalidArgument.
var (
	// ErrNegativeSqrt is returned by Sqrt for a < 0.
	ErrNegativeSqrt = fmt.Errorf("sqrt undefined for negative numbers: %w", ErrInvalidArgument)

	// ErrZeroRootIndex is returned by NthRoot for n == 0.
	ErrZeroRootIndex = fmt.Errorf("0th root is undefined: %w", ErrInvalidArgument)

	// ErrEvenRootOfNegative is returned by NthRoot for even n and a < 0.
	ErrEvenRootOfNegative = fmt.Errorf("even root of negative number is not real: %w", ErrInvalidArgument)
)

// Operation tags for error wrapping.
const (
	opDiv      = "Div"
	opMod      = "Mod"
	opFloorDiv = "FloorDiv"
	opSqrt     = "Sqrt"
	opNthRoot  = "NthRoot"
)

// arithErrorf prefixes err with an operation tag, keeping it matchable via errors.Is.
func arithErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
