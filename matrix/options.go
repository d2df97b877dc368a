// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// elimination kernels and approximate comparison. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the smallest pivot magnitude Inverse and Solve
	// accept; a best pivot below it means the matrix is treated as singular.
	DefaultPivotTolerance = 1e-12

	// DefaultEpsilon is the absolute/relative tolerance used by EqualApprox.
	DefaultEpsilon = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPivotTolInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	pivotTol float64 // >= 0; DefaultPivotTolerance
	eps      float64 // >= 0; DefaultEpsilon
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

// WithPivotTolerance sets the singularity threshold for Inverse and Solve.
// A zero tolerance rejects only exact zero pivots.
// Panics when tol is negative, NaN or ±Inf.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithEpsilon sets the tolerance used by EqualApprox.
// Larger eps relaxes equality checks; use judiciously.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies user options over the defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotTol: DefaultPivotTolerance,
		eps:      DefaultEpsilon,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
