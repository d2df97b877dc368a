// SPDX-License-Identifier: MIT

// Package arith provides scalar arithmetic on float64 values.
//
// The package covers the four basic operations, exponentiation, floored
// modulo and floor division, square, square and n-th roots, and
// ceiling/floor rounding to int.
//
// Failure policy:
//
//   - Division-like operations (Div, Mod, FloorDiv) return ErrDivisionByZero
//     when the divisor is exactly zero.
//   - Root extraction rejects inputs with no real result (Sqrt of a negative
//     number, even NthRoot of a negative number, the 0th root) with errors
//     that match ErrInvalidArgument under errors.Is.
//   - Add, Sub, Mul, Pow, Square, Ceil and Floor are total.
//
// The two error kinds owned here are shared by the calculus and cplx
// packages, so a caller can match any input fault with a single errors.Is.
//
//	q, err := arith.Div(10, 4) // 2.5, nil
//	r, err := arith.Mod(-7, 3) // 2, nil (sign follows the divisor)
//	x, err := arith.NthRoot(-27, 3) // -3, nil
package arith
