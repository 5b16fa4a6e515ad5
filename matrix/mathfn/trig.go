// SPDX-License-Identifier: MIT

// Package mathfn - trigonometric family and its inverses.
package mathfn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/densemat/matrix"
)

const (
	ctxSin    = "MathFn.Sin"
	ctxCos    = "MathFn.Cos"
	ctxTan    = "MathFn.Tan"
	ctxSec    = "MathFn.Sec"
	ctxArcSin = "MathFn.ArcSin"
	ctxArcCos = "MathFn.ArcCos"
	ctxArcTan = "MathFn.ArcTan"
)

// Sin computes sin(M) = Σ_{n>=0} (-1)ⁿ M^(2n+1)/(2n+1)!, truncated to
// terms summands (DefaultTrigTerms when terms <= 0). Converges for
// every square matrix.
// Errors: ErrNilMatrix, ErrNotSquare.
func Sin(m *matrix.Dense, terms int) (*matrix.Dense, error) {
	if err := validateArg(ctxSin, m); err != nil {
		return nil, err
	}
	sq, err := m.Mul(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxSin, err)
	}

	return sumSeries(ctxSin, m, sq, resolveTerms(terms, DefaultTrigTerms), 1,
		func(n int, c float64) float64 { return -c / float64((2*n+2)*(2*n+3)) })
}

// Cos computes cos(M) = Σ_{n>=0} (-1)ⁿ M^(2n)/(2n)!. Converges for
// every square matrix.
// Errors: ErrNilMatrix, ErrNotSquare.
func Cos(m *matrix.Dense, terms int) (*matrix.Dense, error) {
	if err := validateArg(ctxCos, m); err != nil {
		return nil, err
	}
	id, err := identityLike(ctxCos, m)
	if err != nil {
		return nil, err
	}
	sq, err := m.Mul(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxCos, err)
	}

	return sumSeries(ctxCos, id, sq, resolveTerms(terms, DefaultTrigTerms), 1,
		func(n int, c float64) float64 { return -c / float64((2*n+1)*(2*n+2)) })
}

// Tan computes tan(M) = sin(M)·cos(M)⁻¹.
// Errors: ErrNilMatrix, ErrNotSquare, ErrSingular when cos(M) is not
// invertible.
func Tan(m *matrix.Dense, terms int) (*matrix.Dense, error) {
	s, err := Sin(m, terms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxTan, err)
	}
	c, err := Cos(m, terms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxTan, err)
	}
	inv, err := c.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxTan, err)
	}

	return s.Mul(inv)
}

// Sec computes sec(M) = cos(M)⁻¹.
// Errors: ErrNilMatrix, ErrNotSquare, ErrSingular when cos(M) is not
// invertible.
func Sec(m *matrix.Dense, terms int) (*matrix.Dense, error) {
	c, err := Cos(m, terms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxSec, err)
	}
	inv, err := c.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxSec, err)
	}

	return inv, nil
}

// ArcSin computes arcsin(M) = Σ_{n>=0} (2n)!/(4ⁿ(n!)²(2n+1)) · M^(2n+1).
// Converges when the spectral radius of M is below 1.
// Errors: ErrNilMatrix, ErrNotSquare.
func ArcSin(m *matrix.Dense, terms int) (*matrix.Dense, error) {
	if err := validateArg(ctxArcSin, m); err != nil {
		return nil, err
	}
	sq, err := m.Mul(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxArcSin, err)
	}

	// Coefficient recurrence folds the central binomial ratio
	// (2n+1)/(2n+2) and the shift of the 1/(2n+1) factor into one step.
	return sumSeries(ctxArcSin, m, sq, resolveTerms(terms, DefaultTrigTerms), 1,
		func(n int, c float64) float64 {
			k := float64(2*n + 1)

			return c * k * k / float64((2*n+2)*(2*n+3))
		})
}

// ArcCos computes arccos(M) = (π/2)·I - arcsin(M).
// Errors: ErrNilMatrix, ErrNotSquare.
func ArcCos(m *matrix.Dense, terms int) (*matrix.Dense, error) {
	as, err := ArcSin(m, terms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxArcCos, err)
	}
	id, err := identityLike(ctxArcCos, m)
	if err != nil {
		return nil, err
	}

	return id.ScalarMul(complex(math.Pi/2, 0)).Sub(as)
}

// ArcTan computes arctan(M) = Σ_{n>=0} (-1)ⁿ M^(2n+1)/(2n+1).
// Converges when the spectral radius of M is below 1.
// Errors: ErrNilMatrix, ErrNotSquare.
func ArcTan(m *matrix.Dense, terms int) (*matrix.Dense, error) {
	if err := validateArg(ctxArcTan, m); err != nil {
		return nil, err
	}
	sq, err := m.Mul(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxArcTan, err)
	}

	return sumSeries(ctxArcTan, m, sq, resolveTerms(terms, DefaultTrigTerms), 1,
		func(n int, c float64) float64 { return -c * float64(2*n+1) / float64(2*n+3) })
}
