// SPDX-License-Identifier: MIT
package cplx_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/katalvlaran/numkit/arith"
	"github.com/katalvlaran/numkit/cplx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertClose compares both components within tol.
func assertClose(t *testing.T, want, got complex128, tol float64) {
	t.Helper()
	assert.InDelta(t, real(want), real(got), tol, "real part")
	assert.InDelta(t, imag(want), imag(got), tol, "imaginary part")
}

// TestTotalOps covers the operations without failure modes.
func TestTotalOps(t *testing.T) {
	t.Parallel()

	a, b := cplx.New(3, 4), cplx.New(1, 2)
	assert.Equal(t, cplx.New(4, 6), cplx.Add(a, b))
	assert.Equal(t, cplx.New(2, 2), cplx.Sub(a, b))
	assert.Equal(t, cplx.New(-5, 10), cplx.Mul(a, b))
	assert.Equal(t, cplx.New(3, -4), cplx.Conj(a))
	assert.Equal(t, 5.0, cplx.Abs(a))

	re, im := cplx.Parts(a)
	assert.Equal(t, 3.0, re)
	assert.Equal(t, 4.0, im)
}

// TestDiv checks a known quotient and the zero-divisor guard.
func TestDiv(t *testing.T) {
	t.Parallel()

	q, err := cplx.Div(cplx.New(4, 2), cplx.New(1, 1))
	require.NoError(t, err)
	assertClose(t, cplx.New(3, -1), q, 1e-15)

	_, err = cplx.Div(cplx.New(1, 1), 0)
	assert.ErrorIs(t, err, cplx.ErrDivisionByZero)
	assert.ErrorIs(t, err, arith.ErrDivisionByZero)
}

// TestDiv_RoundTrip verifies Mul(Div(a,b), b) ≈ a for random non-zero b.
func TestDiv_RoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		a := cplx.New(rng.NormFloat64()*10, rng.NormFloat64()*10)
		b := cplx.New(rng.NormFloat64()*10, rng.NormFloat64()*10)
		if b == 0 {
			continue
		}
		q, err := cplx.Div(a, b)
		require.NoError(t, err)
		back := cplx.Mul(q, b)
		assert.InDelta(t, 0, cmplx.Abs(back-a), 1e-12*math.Max(1, cmplx.Abs(a)))
	}
}

// TestPhase covers the four quadrants and the positive real axis.
func TestPhase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, cplx.Phase(cplx.New(1, 0)))
	assert.InDelta(t, math.Pi/2, cplx.Phase(cplx.New(0, 1)), 1e-15)
	assert.InDelta(t, math.Pi, cplx.Phase(cplx.New(-1, 0)), 1e-15)
	assert.InDelta(t, -math.Pi/4, cplx.Phase(cplx.New(1, -1)), 1e-15)
}

// TestPow covers i², real powers and the 0^0 convention.
func TestPow(t *testing.T) {
	t.Parallel()

	assertClose(t, -1, cplx.Pow(1i, 2), 1e-12)
	assertClose(t, 8, cplx.Pow(2, 3), 1e-12)
	assertClose(t, 1, cplx.Pow(0, 0), 0)
	// i^i = e^(-π/2), a real number.
	assertClose(t, complex(math.Exp(-math.Pi/2), 0), cplx.Pow(1i, 1i), 1e-12)
}
