// SPDX-License-Identifier: MIT

package calculus

import (
	"fmt"

	"github.com/katalvlaran/numkit/arith"
)

// Func is a real-valued function of one real variable.
type Func func(float64) float64

// Defaults (single source of truth).
const (
	// DefaultStep is the finite-difference step for order 1.
	DefaultStep = 1e-6

	// DefaultSecondOrderStep is the step used for order 2 when no WithStep
	// was given. The second difference divides by h², so h = 1e-6 leaves
	// only about three significant digits.
	DefaultSecondOrderStep = 1e-4

	// DefaultOrder is the derivative order.
	DefaultOrder = 1

	// DefaultSubintervals is the Simpson partition size.
	DefaultSubintervals = 1000
)

var (
	// ErrNilFunc indicates a nil Func argument.
	ErrNilFunc = fmt.Errorf("calculus: function is nil: %w", arith.ErrInvalidArgument)

	// ErrInvalidStep indicates a step that is not finite and strictly positive.
	ErrInvalidStep = fmt.Errorf("calculus: h must be positive: %w", arith.ErrInvalidArgument)

	// ErrInvalidOrder indicates a derivative order other than 1 or 2.
	ErrInvalidOrder = fmt.Errorf("calculus: only order 1 or 2 are supported: %w", arith.ErrInvalidArgument)

	// ErrInvalidSubintervals indicates n < 2 or odd n for Simpson's rule.
	ErrInvalidSubintervals = fmt.Errorf("calculus: n must be an even integer >= 2: %w", arith.ErrInvalidArgument)
)

// Option mutates Options. Options only record values; Derivative and
// Integrate validate them and report faults as errors.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	step    float64 // finite-difference step; 0 means "pick by order"
	stepSet bool    // WithStep was applied
	order   int     // derivative order
	n       int     // Simpson subintervals
}

// WithStep sets the finite-difference step h used by Derivative.
func WithStep(h float64) Option {
	return func(o *Options) {
		o.step = h
		o.stepSet = true
	}
}

// WithOrder selects the derivative order (1 or 2).
func WithOrder(order int) Option {
	return func(o *Options) { o.order = order }
}

// WithSubintervals sets the number of Simpson subintervals n (even, ≥ 2).
func WithSubintervals(n int) Option {
	return func(o *Options) { o.n = n }
}

// gatherOptions applies user options over the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		order: DefaultOrder,
		n:     DefaultSubintervals,
	}
	for _, set := range user {
		set(&o)
	}
	if !o.stepSet {
		o.step = DefaultStep
		if o.order == 2 {
			o.step = DefaultSecondOrderStep
		}
	}

	return o
}
