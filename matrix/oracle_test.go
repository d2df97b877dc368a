// SPDX-License-Identifier: MIT
// Package matrix_test cross-checks the kernels against gonum/mat on random,
// well-conditioned inputs.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/numkit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

const (
	oracleSeed   = 42
	oracleTrials = 8
	oracleMaxN   = 6
	oracleTol    = 1e-9
)

func TestOracle_Gonum(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(oracleSeed))
	for trial := 0; trial < oracleTrials; trial++ {
		n := 1 + trial%oracleMaxN
		rows := randomRows(rng, n)
		other := randomRows(rng, n)
		b := randomVec(rng, n)

		t.Run(fmt.Sprintf("trial%d_n%d", trial, n), func(t *testing.T) {
			a := MustFromRows(t, rows)
			ga := mat.NewDense(n, n, flatten(rows))

			// Det
			d, err := matrix.Det(a)
			require.NoError(t, err)
			want := mat.Det(ga)
			assert.Truef(t, scalar.EqualWithinAbsOrRel(want, d, oracleTol, oracleTol), "Det: want %v got %v", want, d)

			// Inverse
			inv, err := matrix.Inverse(a)
			require.NoError(t, err)
			var gInv mat.Dense
			require.NoError(t, gInv.Inverse(ga))
			assert.True(t, mat.EqualApprox(&gInv, mat.NewDense(n, n, flatten(inv.ToRows())), oracleTol), "Inverse")

			// Solve
			x, err := matrix.Solve(a, b)
			require.NoError(t, err)
			var gx mat.VecDense
			require.NoError(t, gx.SolveVec(ga, mat.NewVecDense(n, b)))
			assert.True(t, floats.EqualApprox(gx.RawVector().Data, x, oracleTol), "Solve")

			// Mul and Transpose
			o := MustFromRows(t, other)
			p, err := matrix.Mul(a, o)
			require.NoError(t, err)
			var gp mat.Dense
			gp.Mul(ga, mat.NewDense(n, n, flatten(other)))
			assert.True(t, mat.EqualApprox(&gp, mat.NewDense(n, n, flatten(p.ToRows())), oracleTol), "Mul")

			tr, err := matrix.Transpose(a)
			require.NoError(t, err)
			assert.True(t, mat.Equal(ga.T(), mat.NewDense(n, n, flatten(tr.ToRows()))), "Transpose")
		})
	}
}
