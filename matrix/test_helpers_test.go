// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numkit/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the materialising (non-*Dense) path in kernels.
type hide struct{ matrix.Matrix }

// MustFromRows builds a *Dense from rows or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireApprox asserts that got and want have the same shape and agree
// elementwise within eps.
func RequireApprox(t testing.TB, want, got matrix.Matrix, eps float64) {
	t.Helper()
	ok, err := matrix.EqualApprox(want, got, matrix.WithEpsilon(eps))
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\nwant\n%v\ngot\n%v", want, got)
}

// randomRows returns an n×n diagonally dominant matrix: every natural pivot
// is non-zero and the system is well conditioned.
func randomRows(rng *rand.Rand, n int) [][]float64 {
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		sum := 0.0
		for j = 0; j < n; j++ {
			v := rng.Float64()*2 - 1 // [-1, 1)
			rows[i][j] = v
			if v < 0 {
				sum -= v
			} else {
				sum += v
			}
		}
		rows[i][i] = sum + 1
	}

	return rows
}

// randomVec returns n values in [-10, 10).
func randomVec(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*20 - 10
	}

	return v
}

// flatten concatenates rows into a row-major slice.
func flatten(rows [][]float64) []float64 {
	var out []float64
	for _, r := range rows {
		out = append(out, r...)
	}

	return out
}
