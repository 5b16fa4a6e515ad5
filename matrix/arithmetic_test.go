// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

func TestAddSub(t *testing.T) {
	a := mustNew(t, [][]complex128{{1, 2}, {3, 4}})
	b := mustNew(t, [][]complex128{{10, 20}, {30, 40}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.Equal(mustNew(t, [][]complex128{{11, 22}, {33, 44}})))

	diff, err := sum.Sub(b)
	require.NoError(t, err)
	require.True(t, diff.Equal(a))

	c := mustNew(t, [][]complex128{{1, 2, 3}})
	_, err = a.Add(c)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = a.Sub(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScalarForms(t *testing.T) {
	m := mustNew(t, [][]complex128{{1, 2}, {3, 4}})

	require.True(t, m.ScalarAdd(10).Equal(mustNew(t, [][]complex128{{11, 12}, {13, 14}})))
	require.True(t, m.ScalarMul(2).Equal(mustNew(t, [][]complex128{{2, 4}, {6, 8}})))
	require.True(t, m.Neg().Equal(mustNew(t, [][]complex128{{-1, -2}, {-3, -4}})))

	half, err := m.ScalarDiv(2)
	require.NoError(t, err)
	require.True(t, half.Equal(mustNew(t, [][]complex128{{0.5, 1}, {1.5, 2}})))

	_, err = m.ScalarDiv(0)
	require.ErrorIs(t, err, matrix.ErrInvalidValue)
	_, err = m.ScalarDiv(1e-12)
	require.ErrorIs(t, err, matrix.ErrInvalidValue)
}

func TestMul(t *testing.T) {
	t.Run("identity is neutral", func(t *testing.T) {
		m := mustNew(t, [][]complex128{{5, 6}, {7, 8}})
		id, err := matrix.Identity(2)
		require.NoError(t, err)

		left, err := id.Mul(m)
		require.NoError(t, err)
		require.True(t, left.Equal(m))

		right, err := m.Mul(id)
		require.NoError(t, err)
		require.True(t, right.Equal(m))
	})

	t.Run("rectangular", func(t *testing.T) {
		a := mustNew(t, [][]complex128{{1, 2, 3}, {4, 5, 6}})
		b := mustNew(t, [][]complex128{{7}, {8}, {9}})
		p, err := a.Mul(b)
		require.NoError(t, err)
		require.True(t, p.Equal(mustNew(t, [][]complex128{{50}, {122}})))
	})

	t.Run("inner mismatch", func(t *testing.T) {
		a := mustNew(t, [][]complex128{{1, 2}})
		b := mustNew(t, [][]complex128{{1, 2}})
		_, err := a.Mul(b)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	})
}

func TestDiv(t *testing.T) {
	a := mustNew(t, [][]complex128{{4, 0}, {0, 9}})
	b := mustNew(t, [][]complex128{{2, 0}, {0, 3}})

	q, err := a.Div(b)
	require.NoError(t, err)
	require.True(t, q.EqualTol(b, 1e-9))

	sing := mustNew(t, [][]complex128{{1, 2}, {2, 4}})
	_, err = a.Div(sing)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestHadamard(t *testing.T) {
	a := mustNew(t, [][]complex128{{1, 2}, {3, 4}})
	b := mustNew(t, [][]complex128{{5, 6}, {7, 8}})

	h, err := a.Hadamard(b)
	require.NoError(t, err)
	require.True(t, h.Equal(mustNew(t, [][]complex128{{5, 12}, {21, 32}})))

	_, err = a.Hadamard(mustNew(t, [][]complex128{{1}}))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestKronecker(t *testing.T) {
	a := mustNew(t, [][]complex128{{1, 2}})
	b := mustNew(t, [][]complex128{{3}, {4}})

	k, err := a.Kronecker(b)
	require.NoError(t, err)
	want := mustNew(t, [][]complex128{
		{3, 6},
		{4, 8},
	})
	require.True(t, k.Equal(want))

	// I ⊗ M is the block-diagonal embedding.
	id, err := matrix.Identity(2)
	require.NoError(t, err)
	m := mustNew(t, [][]complex128{{1, 2}, {3, 4}})
	k, err = id.Kronecker(m)
	require.NoError(t, err)
	want = mustNew(t, [][]complex128{
		{1, 2, 0, 0},
		{3, 4, 0, 0},
		{0, 0, 1, 2},
		{0, 0, 3, 4},
	})
	require.True(t, k.Equal(want))
}

func TestPow(t *testing.T) {
	t.Run("zero power is identity", func(t *testing.T) {
		m := mustNew(t, [][]complex128{{2, 1}, {1, 2}})
		p, err := m.Pow(0)
		require.NoError(t, err)
		id, err := matrix.Identity(2)
		require.NoError(t, err)
		require.True(t, p.Equal(id))
	})

	t.Run("cube", func(t *testing.T) {
		m := mustNew(t, [][]complex128{{2, 0}, {0, 3}})
		p, err := m.Pow(3)
		require.NoError(t, err)
		require.True(t, p.Equal(mustNew(t, [][]complex128{{8, 0}, {0, 27}})))
	})

	t.Run("negative power via inverse", func(t *testing.T) {
		m := mustNew(t, [][]complex128{{2, 0}, {0, 3}})
		p, err := m.Pow(-1)
		require.NoError(t, err)
		want := mustNew(t, [][]complex128{{0.5, 0}, {0, complex(1.0/3.0, 0)}})
		require.True(t, p.EqualTol(want, 1e-12))
	})

	t.Run("negative power of singular", func(t *testing.T) {
		m := mustNew(t, [][]complex128{{1, 2}, {2, 4}})
		_, err := m.Pow(-2)
		require.ErrorIs(t, err, matrix.ErrSingular)
	})

	t.Run("not square", func(t *testing.T) {
		_, err := mustNew(t, [][]complex128{{1, 2}}).Pow(2)
		require.ErrorIs(t, err, matrix.ErrNotSquare)
	})
}

func TestAugment(t *testing.T) {
	a := mustNew(t, [][]complex128{{1, 2}, {3, 4}})
	b := mustNew(t, [][]complex128{{5}, {6}})

	aug, err := a.Augment(b)
	require.NoError(t, err)
	require.True(t, aug.Equal(mustNew(t, [][]complex128{{1, 2, 5}, {3, 4, 6}})))

	_, err = a.Augment(mustNew(t, [][]complex128{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestMap(t *testing.T) {
	m := mustNew(t, [][]complex128{{1, 2}, {3, 4}})
	sq := m.Map(func(v complex128) complex128 { return v * v })
	require.True(t, sq.Equal(mustNew(t, [][]complex128{{1, 4}, {9, 16}})))
}
