// SPDX-License-Identifier: MIT

// Package cplx provides arithmetic helpers over complex128 values.
//
// A complex number is the ordered pair (real, imaginary), represented by
// Go's built-in complex128. New and Parts convert between the pair form and
// the built-in type.
//
// Add, Sub, Mul, Conj, Abs, Phase and Pow are total. Div returns
// ErrDivisionByZero (the same sentinel as arith.ErrDivisionByZero) when the
// divisor is 0+0i instead of producing NaN/Inf components.
package cplx
