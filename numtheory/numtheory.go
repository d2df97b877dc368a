// SPDX-License-Identifier: MIT

package numtheory

// abs returns |x| for int64.
func abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

// GCD returns the greatest common divisor of |a| and |b|.
// Complexity: O(log min(|a|,|b|)).
func GCD(a, b int64) int64 {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of |a| and |b|, or 0 when either is 0.
// Division happens before multiplication to keep the intermediate small.
func LCM(a, b int64) int64 {
	a, b = abs(a), abs(b)
	if a == 0 || b == 0 {
		return 0
	}

	return a / GCD(a, b) * b
}

// HCF returns the highest common factor; identical to GCD.
func HCF(a, b int64) int64 { return GCD(a, b) }

// GCDAll folds GCD over xs. GCDAll() == 0, the identity of GCD.
func GCDAll(xs ...int64) int64 {
	var g int64
	for _, x := range xs {
		g = GCD(g, x)
		if g == 1 {
			break // nothing divides further
		}
	}

	return g
}

// LCMAll folds LCM over xs. LCMAll() == 1; any zero operand yields 0.
func LCMAll(xs ...int64) int64 {
	l := int64(1)
	for _, x := range xs {
		l = LCM(l, x)
		if l == 0 {
			break
		}
	}

	return l
}
