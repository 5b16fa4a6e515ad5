// SPDX-License-Identifier: MIT

// Package mathfn - hyperbolic family and its inverses.
package mathfn

import (
	"fmt"

	"github.com/katalvlaran/densemat/matrix"
)

const (
	ctxSinh   = "MathFn.Sinh"
	ctxCosh   = "MathFn.Cosh"
	ctxTanh   = "MathFn.Tanh"
	ctxArSinh = "MathFn.ArSinh"
	ctxArCosh = "MathFn.ArCosh"
	ctxArTanh = "MathFn.ArTanh"
)

// Sinh computes sinh(M) = Σ_{n>=0} M^(2n+1)/(2n+1)!. Converges for
// every square matrix.
// Errors: ErrNilMatrix, ErrNotSquare.
func Sinh(m *matrix.Dense, terms int) (*matrix.Dense, error) {
	if err := validateArg(ctxSinh, m); err != nil {
		return nil, err
	}
	sq, err := m.Mul(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxSinh, err)
	}

	return sumSeries(ctxSinh, m, sq, resolveTerms(terms, DefaultTrigTerms), 1,
		func(n int, c float64) float64 { return c / float64((2*n+2)*(2*n+3)) })
}

// Cosh computes cosh(M) = Σ_{n>=0} M^(2n)/(2n)!. Converges for every
// square matrix.
// Errors: ErrNilMatrix, ErrNotSquare.
func Cosh(m *matrix.Dense, terms int) (*matrix.Dense, error) {
	if err := validateArg(ctxCosh, m); err != nil {
		return nil, err
	}
	id, err := identityLike(ctxCosh, m)
	if err != nil {
		return nil, err
	}
	sq, err := m.Mul(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxCosh, err)
	}

	return sumSeries(ctxCosh, id, sq, resolveTerms(terms, DefaultTrigTerms), 1,
		func(n int, c float64) float64 { return c / float64((2*n+1)*(2*n+2)) })
}

// Tanh computes tanh(M) = sinh(M)·cosh(M)⁻¹.
// Errors: ErrNilMatrix, ErrNotSquare, ErrSingular when cosh(M) is not
// invertible.
func Tanh(m *matrix.Dense, terms int) (*matrix.Dense, error) {
	s, err := Sinh(m, terms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxTanh, err)
	}
	c, err := Cosh(m, terms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxTanh, err)
	}
	inv, err := c.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxTanh, err)
	}

	return s.Mul(inv)
}

// ArSinh computes arsinh(M) = Σ_{n>=0} (-1)ⁿ (2n)!/(4ⁿ(n!)²(2n+1)) ·
// M^(2n+1). Converges when the spectral radius of M is below 1.
// Errors: ErrNilMatrix, ErrNotSquare.
func ArSinh(m *matrix.Dense, terms int) (*matrix.Dense, error) {
	if err := validateArg(ctxArSinh, m); err != nil {
		return nil, err
	}
	sq, err := m.Mul(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxArSinh, err)
	}

	return sumSeries(ctxArSinh, m, sq, resolveTerms(terms, DefaultTrigTerms), 1,
		func(n int, c float64) float64 {
			k := float64(2*n + 1)

			return -c * k * k / float64((2*n+2)*(2*n+3))
		})
}

// ArCosh computes arcosh(M) for matrices with large spectrum via
//
//	arcosh(M) = log(2M) - Σ_{n>=1} (2n)!/(4ⁿ(n!)²·2n) · M^(-2n)
//
// which requires M to be invertible; convergence needs every eigenvalue
// magnitude above 1.
// Errors: ErrNilMatrix, ErrNotSquare, ErrSingular.
func ArCosh(m *matrix.Dense, terms int) (*matrix.Dense, error) {
	if err := validateArg(ctxArCosh, m); err != nil {
		return nil, err
	}
	lg, err := Log(m.ScalarMul(2), terms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxArCosh, err)
	}
	inv, err := m.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxArCosh, err)
	}
	invSq, err := inv.Mul(inv)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxArCosh, err)
	}

	// Term index t maps to the series index n = t+1; the first
	// coefficient is a_1/(2·1) = 1/4 with a_n the central binomial
	// (2n)!/(4ⁿ(n!)²).
	corr, err := sumSeries(ctxArCosh, invSq, invSq, resolveTerms(terms, DefaultTrigTerms), 0.25,
		func(t int, c float64) float64 {
			return c * float64(t+1) / float64(t+2) * float64(2*t+3) / float64(2*t+4)
		})
	if err != nil {
		return nil, err
	}

	return lg.Sub(corr)
}

// ArTanh computes artanh(M) = Σ_{n>=0} M^(2n+1)/(2n+1). Converges when
// the spectral radius of M is below 1.
// Errors: ErrNilMatrix, ErrNotSquare.
func ArTanh(m *matrix.Dense, terms int) (*matrix.Dense, error) {
	if err := validateArg(ctxArTanh, m); err != nil {
		return nil, err
	}
	sq, err := m.Mul(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxArTanh, err)
	}

	return sumSeries(ctxArTanh, m, sq, resolveTerms(terms, DefaultTrigTerms), 1,
		func(n int, c float64) float64 { return c * float64(2*n+1) / float64(2*n+3) })
}
