// SPDX-License-Identifier: MIT

package mathfn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/katalvlaran/densemat/matrix/mathfn"
)

// mustNew builds a matrix or aborts the test.
func mustNew(t *testing.T, data [][]complex128) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(data)
	require.NoError(t, err)

	return m
}

// diag builds a square matrix with the given real diagonal.
func diag(t *testing.T, values ...float64) *matrix.Dense {
	t.Helper()
	cv := make([]complex128, len(values))
	for i, v := range values {
		cv[i] = complex(v, 0)
	}
	m, err := matrix.Diagonal(cv)
	require.NoError(t, err)

	return m
}

// identity returns Iₙ or aborts the test.
func identity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	id, err := matrix.Identity(n)
	require.NoError(t, err)

	return id
}

func TestExp(t *testing.T) {
	t.Run("zero matrix maps to identity", func(t *testing.T) {
		z, err := matrix.Zeros(2, 2)
		require.NoError(t, err)
		e, err := mathfn.Exp(z, 0)
		require.NoError(t, err)
		require.True(t, e.Equal(identity(t, 2)))
	})

	t.Run("diagonal matches scalar exp", func(t *testing.T) {
		e, err := mathfn.Exp(diag(t, 1, 2), 0)
		require.NoError(t, err)
		want := diag(t, math.E, math.E*math.E)
		require.True(t, e.EqualTol(want, 1e-9))
	})

	t.Run("validation", func(t *testing.T) {
		_, err := mathfn.Exp(nil, 0)
		require.ErrorIs(t, err, matrix.ErrNilMatrix)
		_, err = mathfn.Exp(mustNew(t, [][]complex128{{1, 2}}), 0)
		require.ErrorIs(t, err, matrix.ErrNotSquare)
	})
}

func TestLog(t *testing.T) {
	t.Run("identity maps to zero", func(t *testing.T) {
		lg, err := mathfn.Log(identity(t, 2), 0)
		require.NoError(t, err)
		z, err := matrix.Zeros(2, 2)
		require.NoError(t, err)
		require.True(t, lg.EqualTol(z, 1e-12))
	})

	t.Run("diagonal near one matches scalar log", func(t *testing.T) {
		lg, err := mathfn.Log(diag(t, 1.2, 0.9), 0)
		require.NoError(t, err)
		want := diag(t, math.Log(1.2), math.Log(0.9))
		require.True(t, lg.EqualTol(want, 1e-9))
	})

	t.Run("roundtrip with exp near identity", func(t *testing.T) {
		m := mustNew(t, [][]complex128{{1.1, 0.05}, {0.02, 0.9}})
		lg, err := mathfn.Log(m, 0)
		require.NoError(t, err)
		back, err := mathfn.Exp(lg, 0)
		require.NoError(t, err)
		require.True(t, back.EqualTol(m, 1e-8))
	})
}

func TestTrigFamily(t *testing.T) {
	m := mustNew(t, [][]complex128{{0.5, 0.1}, {0.2, 0.3}})

	t.Run("pythagorean identity", func(t *testing.T) {
		s, err := mathfn.Sin(m, 0)
		require.NoError(t, err)
		c, err := mathfn.Cos(m, 0)
		require.NoError(t, err)
		s2, err := s.Mul(s)
		require.NoError(t, err)
		c2, err := c.Mul(c)
		require.NoError(t, err)
		sum, err := s2.Add(c2)
		require.NoError(t, err)
		require.True(t, sum.EqualTol(identity(t, 2), 1e-9))
	})

	t.Run("diagonal matches scalar trig", func(t *testing.T) {
		d := diag(t, 0.4, 1.1)

		s, err := mathfn.Sin(d, 0)
		require.NoError(t, err)
		require.True(t, s.EqualTol(diag(t, math.Sin(0.4), math.Sin(1.1)), 1e-9))

		c, err := mathfn.Cos(d, 0)
		require.NoError(t, err)
		require.True(t, c.EqualTol(diag(t, math.Cos(0.4), math.Cos(1.1)), 1e-9))

		tn, err := mathfn.Tan(d, 0)
		require.NoError(t, err)
		require.True(t, tn.EqualTol(diag(t, math.Tan(0.4), math.Tan(1.1)), 1e-8))

		sc, err := mathfn.Sec(d, 0)
		require.NoError(t, err)
		require.True(t, sc.EqualTol(diag(t, 1/math.Cos(0.4), 1/math.Cos(1.1)), 1e-8))
	})

	t.Run("tan equals sin times sec", func(t *testing.T) {
		tn, err := mathfn.Tan(m, 0)
		require.NoError(t, err)
		s, err := mathfn.Sin(m, 0)
		require.NoError(t, err)
		sc, err := mathfn.Sec(m, 0)
		require.NoError(t, err)
		prod, err := s.Mul(sc)
		require.NoError(t, err)
		require.True(t, tn.EqualTol(prod, 1e-9))
	})
}

func TestInverseTrig(t *testing.T) {
	d := diag(t, 0.3, 0.5)

	as, err := mathfn.ArcSin(d, 0)
	require.NoError(t, err)
	require.True(t, as.EqualTol(diag(t, math.Asin(0.3), math.Asin(0.5)), 1e-9))

	ac, err := mathfn.ArcCos(d, 0)
	require.NoError(t, err)
	require.True(t, ac.EqualTol(diag(t, math.Acos(0.3), math.Acos(0.5)), 1e-9))

	at, err := mathfn.ArcTan(d, 0)
	require.NoError(t, err)
	require.True(t, at.EqualTol(diag(t, math.Atan(0.3), math.Atan(0.5)), 1e-9))

	// Roundtrip inside the convergence domain.
	s, err := mathfn.Sin(as, 0)
	require.NoError(t, err)
	require.True(t, s.EqualTol(d, 1e-9))
}

func TestHyperbolicFamily(t *testing.T) {
	m := mustNew(t, [][]complex128{{0.4, 0.1}, {0.1, 0.2}})

	t.Run("cosh squared minus sinh squared", func(t *testing.T) {
		sh, err := mathfn.Sinh(m, 0)
		require.NoError(t, err)
		ch, err := mathfn.Cosh(m, 0)
		require.NoError(t, err)
		sh2, err := sh.Mul(sh)
		require.NoError(t, err)
		ch2, err := ch.Mul(ch)
		require.NoError(t, err)
		diff, err := ch2.Sub(sh2)
		require.NoError(t, err)
		require.True(t, diff.EqualTol(identity(t, 2), 1e-9))
	})

	t.Run("diagonal matches scalar hyperbolics", func(t *testing.T) {
		d := diag(t, 0.7, 1.3)

		sh, err := mathfn.Sinh(d, 0)
		require.NoError(t, err)
		require.True(t, sh.EqualTol(diag(t, math.Sinh(0.7), math.Sinh(1.3)), 1e-9))

		ch, err := mathfn.Cosh(d, 0)
		require.NoError(t, err)
		require.True(t, ch.EqualTol(diag(t, math.Cosh(0.7), math.Cosh(1.3)), 1e-9))

		th, err := mathfn.Tanh(d, 0)
		require.NoError(t, err)
		require.True(t, th.EqualTol(diag(t, math.Tanh(0.7), math.Tanh(1.3)), 1e-8))
	})
}

func TestInverseHyperbolic(t *testing.T) {
	d := diag(t, 0.3, 0.5)

	ash, err := mathfn.ArSinh(d, 0)
	require.NoError(t, err)
	require.True(t, ash.EqualTol(diag(t, math.Asinh(0.3), math.Asinh(0.5)), 1e-9))

	ath, err := mathfn.ArTanh(d, 0)
	require.NoError(t, err)
	require.True(t, ath.EqualTol(diag(t, math.Atanh(0.3), math.Atanh(0.5)), 1e-9))

	// Roundtrip inside the convergence domain.
	th, err := mathfn.Tanh(ath, 0)
	require.NoError(t, err)
	require.True(t, th.EqualTol(d, 1e-9))
}

func TestArCosh(t *testing.T) {
	t.Run("shape and success", func(t *testing.T) {
		out, err := mathfn.ArCosh(diag(t, 2, 3), 0)
		require.NoError(t, err)
		require.True(t, out.IsSquare())
		require.Equal(t, 2, out.Rows())
	})

	t.Run("singular argument", func(t *testing.T) {
		m := mustNew(t, [][]complex128{{1, 2}, {2, 4}})
		_, err := mathfn.ArCosh(m, 0)
		require.ErrorIs(t, err, matrix.ErrSingular)
	})

	t.Run("not square", func(t *testing.T) {
		_, err := mathfn.ArCosh(mustNew(t, [][]complex128{{1, 2}}), 0)
		require.ErrorIs(t, err, matrix.ErrNotSquare)
	})
}

func TestScalarPow(t *testing.T) {
	t.Run("base one short-circuits to identity", func(t *testing.T) {
		p, err := mathfn.ScalarPow(1, diag(t, 3, 4), 0)
		require.NoError(t, err)
		require.True(t, p.Equal(identity(t, 2)))
	})

	t.Run("diagonal matches scalar powers", func(t *testing.T) {
		p, err := mathfn.ScalarPow(2, diag(t, 1, 2), 0)
		require.NoError(t, err)
		require.True(t, p.EqualTol(diag(t, 2, 4), 1e-9))
	})

	t.Run("non-positive base", func(t *testing.T) {
		d := diag(t, 1, 2)
		_, err := mathfn.ScalarPow(0, d, 0)
		require.ErrorIs(t, err, matrix.ErrInvalidValue)
		_, err = mathfn.ScalarPow(-2, d, 0)
		require.ErrorIs(t, err, matrix.ErrInvalidValue)
	})
}

func TestExplicitTermCounts(t *testing.T) {
	// A single term truncates exp(M) to I.
	m := diag(t, 1, 1)
	e, err := mathfn.Exp(m, 1)
	require.NoError(t, err)
	require.True(t, e.Equal(identity(t, 2)))

	// Two terms give I + M.
	e, err = mathfn.Exp(m, 2)
	require.NoError(t, err)
	require.True(t, e.EqualTol(diag(t, 2, 2), 1e-12))
}
