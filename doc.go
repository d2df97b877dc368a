// Package numkit is a small numeric toolbox: scalar arithmetic with
// checked division and roots, integer number theory, finite-difference
// calculus, dense linear algebra and complex arithmetic.
//
// What is inside?
//
//	A pure-Go, stateless library where every fallible operation returns an
//	explicit error wrapping a package sentinel:
//		• Scalar arithmetic: Div, Mod, FloorDiv, Sqrt, NthRoot, Ceil, Floor
//		• Number theory: GCD, LCM, HCF and their variadic forms
//		• Calculus: central-difference Derivative, Simpson Integrate
//		• Linear algebra: Add, Sub, Mul, Transpose, Det, LU, Inverse, Solve
//		• Complex numbers: Div, Conj, Abs, Phase, Pow over complex128
//
// Everything is organized under five subpackages:
//
//	arith/     scalar operations and the DivisionByZero / InvalidArgument kinds
//	numtheory/ gcd, lcm and hcf over int64
//	calculus/  Derivative and Integrate with functional options (step, order, subintervals)
//	matrix/    row-major Dense, validators, elimination kernels with pivot tolerance
//	cplx/      complex128 helpers with checked division
//
// Errors are matched with errors.Is against the sentinels each package
// exports (arith.ErrDivisionByZero, matrix.ErrSingular, ...). Inputs are
// never mutated; every matrix result is a freshly allocated Dense.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{4, 7}, {2, 6}})
//	x, err := matrix.Solve(a, []float64{1, 0}) // x ≈ [0.6 -0.2]
//
//	go get github.com/katalvlaran/numkit
package numkit
