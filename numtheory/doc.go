// SPDX-License-Identifier: MIT

// Package numtheory provides greatest-common-divisor and
// least-common-multiple helpers on int64 values.
//
// GCD uses Euclid's algorithm on absolute values, so the sign of the inputs
// never affects the result and GCD(0, 0) == 0. LCM returns 0 whenever either
// operand is zero. HCF is a naming alias of GCD.
//
// Results are always non-negative. The single unrepresentable case is an
// operand equal to math.MinInt64, whose absolute value overflows int64.
package numtheory
