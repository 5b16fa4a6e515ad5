// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

func TestNewBool(t *testing.T) {
	b, err := matrix.NewBool([][]bool{{true, false}, {false, true}})
	require.NoError(t, err)
	r, c := b.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)

	_, err = matrix.NewBool(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidData)
	// Ragged input is the same structural malformation New rejects.
	_, err = matrix.NewBool([][]bool{{true}, {true, false}})
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
}

func TestBoolLogic(t *testing.T) {
	a, err := matrix.NewBool([][]bool{{true, true}, {false, false}})
	require.NoError(t, err)
	b, err := matrix.NewBool([][]bool{{true, false}, {true, false}})
	require.NoError(t, err)

	and, err := a.And(b)
	require.NoError(t, err)
	wantAnd, err := matrix.NewBool([][]bool{{true, false}, {false, false}})
	require.NoError(t, err)
	require.True(t, and.Equal(wantAnd))

	or, err := a.Or(b)
	require.NoError(t, err)
	wantOr, err := matrix.NewBool([][]bool{{true, true}, {true, false}})
	require.NoError(t, err)
	require.True(t, or.Equal(wantOr))

	// De Morgan: ¬(a ∧ b) = ¬a ∨ ¬b.
	lhs := and.Not()
	rhs, err := a.Not().Or(b.Not())
	require.NoError(t, err)
	require.True(t, lhs.Equal(rhs))

	_, err = a.And(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	narrow, err := matrix.NewBool([][]bool{{true}})
	require.NoError(t, err)
	_, err = a.Or(narrow)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestBoolReductionsAndAccess(t *testing.T) {
	b, err := matrix.NewBool([][]bool{{true, false}})
	require.NoError(t, err)

	require.True(t, b.Any())
	require.False(t, b.All())
	require.True(t, b.Not().Any())

	require.NoError(t, b.Set(1, 2, true))
	require.True(t, b.All())

	_, err = b.At(2, 1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, b.Set(0, 1, true), matrix.ErrIndexOutOfBounds)

	cp := b.Clone()
	require.NoError(t, cp.Set(1, 1, false))
	require.True(t, b.All())

	require.Equal(t, "[true, true]\n", b.String())
}
