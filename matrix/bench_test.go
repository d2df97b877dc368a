// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numkit/matrix"
)

const benchN = 64

func benchMatrix(b *testing.B) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(1))

	return MustFromRows(b, randomRows(rng, benchN))
}

func BenchmarkMul(b *testing.B) {
	m := benchMatrix(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(m, m); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

func BenchmarkDet(b *testing.B) {
	m := benchMatrix(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Det(m); err != nil {
			b.Fatalf("Det failed: %v", err)
		}
	}
}

func BenchmarkInverse(b *testing.B) {
	m := benchMatrix(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Inverse(m); err != nil {
			b.Fatalf("Inverse failed: %v", err)
		}
	}
}

func BenchmarkSolve(b *testing.B) {
	m := benchMatrix(b)
	rhs := randomVec(rand.New(rand.NewSource(2)), benchN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Solve(m, rhs); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}
