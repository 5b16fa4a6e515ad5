// SPDX-License-Identifier: MIT

// Package mathfn - exponential, logarithm and scalar powers.
package mathfn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/densemat/matrix"
)

const (
	ctxExp       = "MathFn.Exp"
	ctxLog       = "MathFn.Log"
	ctxScalarPow = "MathFn.ScalarPow"
)

// Exp computes the matrix exponential
//
//	exp(M) = Σ_{n>=0} Mⁿ/n!
//
// truncated to the requested number of terms (DefaultExpTerms when
// terms <= 0). The series converges for every square matrix.
// Errors: ErrNilMatrix, ErrNotSquare.
// Complexity: Time O(terms·n³), Space O(n²).
func Exp(m *matrix.Dense, terms int) (*matrix.Dense, error) {
	if err := validateArg(ctxExp, m); err != nil {
		return nil, err
	}

	id, err := identityLike(ctxExp, m)
	if err != nil {
		return nil, err
	}

	return sumSeries(ctxExp, id, m, resolveTerms(terms, DefaultExpTerms), 1,
		func(n int, c float64) float64 { return c / float64(n+1) })
}

// Log computes the principal matrix logarithm by the Mercator series in
// X = M - I:
//
//	log(M) = Σ_{n>=1} (-1)^(n+1) Xⁿ/n
//
// The series converges when the spectrum of M - I lies inside the unit
// disc; outside that domain the truncated sum is still returned.
// Default term count is DefaultTrigTerms.
// Errors: ErrNilMatrix, ErrNotSquare.
// Complexity: Time O(terms·n³), Space O(n²).
func Log(m *matrix.Dense, terms int) (*matrix.Dense, error) {
	if err := validateArg(ctxLog, m); err != nil {
		return nil, err
	}

	id, err := identityLike(ctxLog, m)
	if err != nil {
		return nil, err
	}
	x, err := m.Sub(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxLog, err)
	}

	return sumSeries(ctxLog, x, x, resolveTerms(terms, DefaultTrigTerms), 1,
		func(n int, c float64) float64 { return -c * float64(n+1) / float64(n+2) })
}

// ScalarPow raises a positive real base to a matrix exponent:
//
//	base^M = exp(ln(base)·M)
//
// A base within tolerance of 1 short-circuits to the identity.
// Errors: ErrInvalidValue for base <= 0, plus Exp's errors.
func ScalarPow(base float64, m *matrix.Dense, terms int) (*matrix.Dense, error) {
	if err := validateArg(ctxScalarPow, m); err != nil {
		return nil, err
	}
	if base <= 0 {
		return nil, fmt.Errorf("%s: base %v must be positive: %w", ctxScalarPow, base, matrix.ErrInvalidValue)
	}
	if math.Abs(base-1) < m.Eps() {
		return identityLike(ctxScalarPow, m)
	}

	return Exp(m.ScalarMul(complex(math.Log(base), 0)), terms)
}
