// SPDX-License-Identifier: MIT

package calculus

import "fmt"

const opIntegrate = "Integrate"

// Integrate approximates ∫_a^b f(x) dx with the composite Simpson rule.
//
// Algorithm:
//  1. Validate n (even, ≥ 2) before looking at the bounds.
//  2. a == b ⇒ 0 without evaluating f.
//  3. h = (b-a)/n, x_i = a + i·h.
//  4. S = f(x_0) + f(x_n) + Σ_{i odd} 4·f(x_i) + Σ_{i even, 0<i<n} 2·f(x_i).
//  5. return S·h/3.
//
// b < a is allowed and yields the negated integral over [b, a].
//
// Errors:
//   - ErrNilFunc when f is nil.
//   - ErrInvalidSubintervals when n < 2 or n is odd.
func Integrate(f Func, a, b float64, opts ...Option) (float64, error) {
	if f == nil {
		return 0, fmt.Errorf("%s: %w", opIntegrate, ErrNilFunc)
	}
	n := gatherOptions(opts...).n
	if n < 2 || n%2 != 0 {
		return 0, fmt.Errorf("%s: n=%d: %w", opIntegrate, n, ErrInvalidSubintervals)
	}
	if a == b {
		return 0, nil
	}

	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	var i int
	for i = 1; i < n; i++ {
		if i%2 == 1 {
			sum += 4 * f(a+float64(i)*h)
		} else {
			sum += 2 * f(a+float64(i)*h)
		}
	}

	return sum * h / 3, nil
}
