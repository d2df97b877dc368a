// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense construction and accessors.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/numkit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows_Shapes(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name         string
		rows         [][]float64
		wantR, wantC int
	}{
		{"nil", nil, 0, 0},
		{"empty", [][]float64{}, 0, 0},
		{"k by 0", [][]float64{{}, {}}, 2, 0},
		{"2x3", [][]float64{{1, 2, 3}, {4, 5, 6}}, 2, 3},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.FromRows(tc.rows)
			require.NoError(t, err)
			r, c := m.Shape()
			assert.Equal(t, tc.wantR, r)
			assert.Equal(t, tc.wantC, c)
		})
	}
}

func TestFromRows_Ragged(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	require.Error(t, err)
	assert.ErrorIs(t, err, matrix.ErrRagged)
	assert.ErrorIs(t, err, matrix.ErrInvalidShape)
	assert.Contains(t, err.Error(), "row 1 has 1 columns, want 2")
}

func TestFromRows_CopiesInput(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2}, {3, 4}}
	m := MustFromRows(t, src)
	src[0][0] = 99
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0), "Dense must not alias the caller's rows")

	out := m.ToRows()
	out[1][1] = -1
	assert.Equal(t, 4.0, MustAt(t, m, 1, 1), "ToRows must return fresh slices")
}

func TestZerosIdentity(t *testing.T) {
	t.Parallel()

	z, err := matrix.Zeros(2, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z.ToRows())

	id, err := matrix.Identity(3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id.ToRows())

	_, err = matrix.Zeros(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Identity(-3)
	assert.ErrorIs(t, err, matrix.ErrInvalidShape)
}

func TestDense_AtOutOfRange(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		p := p
		t.Run(fmt.Sprintf("%d,%d", p[0], p[1]), func(t *testing.T) {
			t.Parallel()
			_, err := m.At(p[0], p[1])
			assert.ErrorIs(t, err, matrix.ErrOutOfRange)
		})
	}
}

func TestDense_CloneIndependent(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()
	assert.Equal(t, m.ToRows(), cp.ToRows())
	assert.NotSame(t, m, cp)
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2.5}, {-3, 4}})
	assert.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())

	var zero matrix.Dense
	assert.Equal(t, "", zero.String())
	assert.Equal(t, 0, zero.Rows())
}
