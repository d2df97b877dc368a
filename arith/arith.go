// SPDX-License-Identifier: MIT

package arith

import "math"

// Add returns a + b.
func Add(a, b float64) float64 { return a + b }

// Sub returns a - b.
func Sub(a, b float64) float64 { return a - b }

// Mul returns a * b.
func Mul(a, b float64) float64 { return a * b }

// Div returns a / b.
// Errors: ErrDivisionByZero when b == 0.
func Div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, arithErrorf(opDiv, ErrDivisionByZero)
	}

	return a / b, nil
}

// Pow returns a**b with math.Pow semantics, including negative and
// fractional exponents. Pow(0, y) for y < 0 is +Inf.
func Pow(a, b float64) float64 { return math.Pow(a, b) }

// Mod returns a modulo b where the result carries the sign of the divisor
// (floored modulo): Mod(-7, 3) == 2, Mod(7, -3) == -2.
// Errors: ErrDivisionByZero when b == 0.
func Mod(a, b float64) (float64, error) {
	if b == 0 {
		return 0, arithErrorf(opMod, ErrDivisionByZero)
	}

	return floorMod(a, b), nil
}

// floorMod shifts math.Mod (sign of the dividend) onto the divisor's sign.
func floorMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}

	return r
}

// FloorDiv returns floor(a / b) as an int.
// Errors: ErrDivisionByZero when b == 0.
//
// The quotient is derived from the floored remainder so that
// FloorDiv(a, b)*b + Mod(a, b) == a holds for finite inputs.
func FloorDiv(a, b float64) (int, error) {
	if b == 0 {
		return 0, arithErrorf(opFloorDiv, ErrDivisionByZero)
	}
	q := (a - floorMod(a, b)) / b // exact multiple of b up to rounding
	fq := math.Floor(q)
	if q-fq > 0.5 {
		fq++ // q landed just below an integer
	}

	return int(fq), nil
}

// Square returns a * a.
func Square(a float64) float64 { return a * a }

// Sqrt returns the non-negative square root of a.
// There is no promotion to complex: use the cplx package for negative inputs.
// Errors: ErrNegativeSqrt (an ErrInvalidArgument) when a < 0.
func Sqrt(a float64) (float64, error) {
	if a < 0 {
		return 0, arithErrorf(opSqrt, ErrNegativeSqrt)
	}

	return math.Sqrt(a), nil
}

// NthRoot returns the real n-th root of a.
//
// For even n, a must be non-negative. For odd n a negative a yields the
// negative real root -(|a|^(1/n)). Negative n is accepted and follows the
// same parity rule, so NthRoot(8, -3) == 0.5.
//
// Errors:
//   - ErrZeroRootIndex when n == 0.
//   - ErrEvenRootOfNegative when n is even and a < 0.
func NthRoot(a float64, n int) (float64, error) {
	if n == 0 {
		return 0, arithErrorf(opNthRoot, ErrZeroRootIndex)
	}
	odd := n%2 != 0 // n%2 is -1 for negative odd n
	if !odd && a < 0 {
		return 0, arithErrorf(opNthRoot, ErrEvenRootOfNegative)
	}
	if odd && a < 0 {
		return -math.Pow(-a, 1/float64(n)), nil
	}

	return math.Pow(a, 1/float64(n)), nil
}

// Ceil returns the least integer value greater than or equal to a.
// Values outside the int range follow Go's float-to-int conversion rules.
func Ceil(a float64) int { return int(math.Ceil(a)) }

// Floor returns the greatest integer value less than or equal to a.
func Floor(a float64) int { return int(math.Floor(a)) }
