// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

func TestEqNe(t *testing.T) {
	a := mustNew(t, [][]complex128{{1, 2}, {3, 4}})
	b := mustNew(t, [][]complex128{{1 + 1e-10, 2}, {3, 5}})

	eq, err := a.Eq(b)
	require.NoError(t, err)
	require.True(t, mustAt(t, eq, 1, 1))
	require.True(t, mustAt(t, eq, 1, 2))
	require.False(t, mustAt(t, eq, 2, 2))

	ne, err := a.Ne(b)
	require.NoError(t, err)
	require.True(t, eq.Not().Equal(ne))

	// Per-call tolerance override.
	strict, err := a.Eq(b, matrix.WithEpsilon(1e-12))
	require.NoError(t, err)
	require.False(t, mustAt(t, strict, 1, 1))

	loose, err := a.Eq(b, matrix.WithEpsilon(2))
	require.NoError(t, err)
	require.True(t, loose.All())

	_, err = a.Eq(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = a.Eq(mustNew(t, [][]complex128{{1}}))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestOrderedComparisons(t *testing.T) {
	a := mustNew(t, [][]complex128{{1, 5}, {3, 3}})
	b := mustNew(t, [][]complex128{{2, 2}, {3, 3 + 1e-10}})

	lt, err := a.Lt(b)
	require.NoError(t, err)
	require.True(t, mustAt(t, lt, 1, 1))
	require.False(t, mustAt(t, lt, 1, 2))
	require.False(t, mustAt(t, lt, 2, 2)) // inside the tolerance band

	gt, err := a.Gt(b)
	require.NoError(t, err)
	require.False(t, mustAt(t, gt, 1, 1))
	require.True(t, mustAt(t, gt, 1, 2))
	require.False(t, mustAt(t, gt, 2, 1))

	le, err := a.Le(b)
	require.NoError(t, err)
	require.True(t, mustAt(t, le, 2, 2))
	require.False(t, mustAt(t, le, 1, 2))

	ge, err := a.Ge(b)
	require.NoError(t, err)
	require.True(t, ge.Any())
	require.True(t, mustAt(t, ge, 2, 1))
	require.False(t, mustAt(t, ge, 1, 1))
}

func TestOrderedComparisons_RejectComplex(t *testing.T) {
	a := mustNew(t, [][]complex128{{complex(1, 1)}})
	b := mustNew(t, [][]complex128{{1}})

	for name, cmp := range map[string]func(*matrix.Dense, ...matrix.Option) (*matrix.Bool, error){
		"Lt": a.Lt, "Gt": a.Gt, "Le": a.Le, "Ge": a.Ge,
	} {
		if _, err := cmp(b); err == nil {
			t.Fatalf("%s: expected ErrInvalidData for complex operand", name)
		} else {
			require.ErrorIs(t, err, matrix.ErrInvalidData)
		}
	}

	// Complex on the right side is rejected too.
	_, err := b.Lt(a)
	require.ErrorIs(t, err, matrix.ErrInvalidData)

	// Eq tolerates complex entries.
	eq, err := a.Eq(a.Clone())
	require.NoError(t, err)
	require.True(t, eq.All())
}

// mustAt reads a Bool entry or aborts the test.
func mustAt(t *testing.T, b *matrix.Bool, i, j int) bool {
	t.Helper()
	v, err := b.At(i, j)
	require.NoError(t, err)

	return v
}
