// SPDX-License-Identifier: MIT

// Package calculus approximates derivatives and definite integrals of
// caller-supplied scalar functions.
//
// ✨ Key features:
//   - Derivative: central difference (order 1) or second-difference stencil (order 2)
//   - Integrate: composite Simpson's rule over an even number of subintervals
//   - functional options (WithStep, WithOrder, WithSubintervals) with documented defaults
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numkit/calculus"
//
//	cube := func(x float64) float64 { return x * x * x }
//	d1, err := calculus.Derivative(cube, 2)                        // ≈ 12
//	d2, err := calculus.Derivative(cube, 2, calculus.WithOrder(2)) // ≈ 12
//	area, err := calculus.Integrate(math.Sin, 0, math.Pi)          // ≈ 2
//
// Errors:
//
//	Every input fault (nil function, non-positive step, unsupported order,
//	odd or too small subinterval count) wraps arith.ErrInvalidArgument.
//	The behaviour of f itself is not checked: NaN or Inf produced by f
//	propagates into the result.
//
// Complexity:
//
//   - Derivative: 2 (order 1) or 3 (order 2) evaluations of f
//   - Integrate:  n+1 evaluations of f, O(1) memory
package calculus
