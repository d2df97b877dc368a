// SPDX-License-Identifier: MIT

package calculus

import (
	"fmt"
	"math"
)

const opDerivative = "Derivative"

// Derivative approximates the order-th derivative of f at x.
//
// Formulas (h = step):
//
//	order 1: (f(x+h) - f(x-h)) / (2h)
//	order 2: (f(x+h) - 2f(x) + f(x-h)) / h²
//
// Errors, checked in this order:
//   - ErrNilFunc when f is nil.
//   - ErrInvalidStep when h is not finite or h <= 0.
//   - ErrInvalidOrder when order ∉ {1, 2}.
func Derivative(f Func, x float64, opts ...Option) (float64, error) {
	if f == nil {
		return 0, fmt.Errorf("%s: %w", opDerivative, ErrNilFunc)
	}
	o := gatherOptions(opts...)
	h := o.step
	if !(h > 0) || math.IsInf(h, 1) { // also rejects NaN
		return 0, fmt.Errorf("%s: h=%g: %w", opDerivative, h, ErrInvalidStep)
	}

	switch o.order {
	case 1:
		return (f(x+h) - f(x-h)) / (2 * h), nil
	case 2:
		return (f(x+h) - 2*f(x) + f(x-h)) / (h * h), nil
	default:
		return 0, fmt.Errorf("%s: order=%d: %w", opDerivative, o.order, ErrInvalidOrder)
	}
}
