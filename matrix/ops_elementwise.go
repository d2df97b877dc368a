// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparison.

package matrix

import "gonum.org/v1/gonum/floats/scalar"

// EqualApprox reports whether a and b have the same shape and every pair of
// elements agrees within eps, absolutely or relative to the larger magnitude.
// eps comes from WithEpsilon (default 1e-9).
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//
// Complexity: O(r*c).
func EqualApprox(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opEqualApprox, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opEqualApprox, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opEqualApprox, err)
	}
	eps := gatherOptions(opts...).eps

	for i, v := range da.data {
		if !scalar.EqualWithinAbsOrRel(v, db.data[i], eps, eps) {
			return false, nil
		}
	}

	return true, nil
}
