// SPDX-License-Identifier: MIT

package cplx

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/numkit/arith"
)

// ErrDivisionByZero is returned by Div for a zero divisor.
// It is arith.ErrDivisionByZero, so one errors.Is covers real and complex division.
var ErrDivisionByZero = arith.ErrDivisionByZero

const opDiv = "Div"

// New builds re + im·i.
func New(re, im float64) complex128 { return complex(re, im) }

// Parts returns the real and imaginary components of z.
func Parts(z complex128) (re, im float64) { return real(z), imag(z) }

// Add returns a + b.
func Add(a, b complex128) complex128 { return a + b }

// Sub returns a - b.
func Sub(a, b complex128) complex128 { return a - b }

// Mul returns a · b.
func Mul(a, b complex128) complex128 { return a * b }

// Div returns a / b.
// Errors: ErrDivisionByZero when b == 0+0i.
func Div(a, b complex128) (complex128, error) {
	if b == 0 {
		return 0, fmt.Errorf("%s: %w", opDiv, ErrDivisionByZero)
	}

	return a / b, nil
}

// Conj returns the complex conjugate re - im·i.
func Conj(a complex128) complex128 { return cmplx.Conj(a) }

// Abs returns the modulus sqrt(re² + im²), computed without overflow.
func Abs(a complex128) float64 { return cmplx.Abs(a) }

// Phase returns atan2(im, re) in radians, in [-π, π].
func Phase(a complex128) float64 { return math.Atan2(imag(a), real(a)) }

// Pow returns a**b = exp(b · log a). Pow(0, 0) == 1.
func Pow(a, b complex128) complex128 { return cmplx.Pow(a, b) }
