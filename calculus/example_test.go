// SPDX-License-Identifier: MIT
package calculus_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numkit/calculus"
)

// ExampleDerivative differentiates x³ at x = 2 (f' = 3x², f'' = 6x).
func ExampleDerivative() {
	f := func(x float64) float64 { return x * x * x }

	d1, _ := calculus.Derivative(f, 2)
	d2, _ := calculus.Derivative(f, 2, calculus.WithOrder(2))
	fmt.Printf("f'(2)=%.4f f''(2)=%.4f\n", d1, d2)
	// Output:
	// f'(2)=12.0000 f''(2)=12.0000
}

// ExampleIntegrate integrates sin over [0, π].
func ExampleIntegrate() {
	area, err := calculus.Integrate(math.Sin, 0, math.Pi, calculus.WithSubintervals(100))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.6f\n", area)
	// Output:
	// 2.000000
}
