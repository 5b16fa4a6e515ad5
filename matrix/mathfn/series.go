// SPDX-License-Identifier: MIT

// Package mathfn - shared series machinery.
//
// Purpose:
//   - Term-count defaults and the single truncated-series accumulator
//     every public function drives.
//
// Implementation:
//   - A series is described by its first term matrix, the fixed matrix
//     factor applied between consecutive terms (M for dense series, M²
//     for odd/even ones), the leading coefficient and a recurrence that
//     maps coefficient n to coefficient n+1. Factorial-style
//     coefficients are produced by the recurrence directly, so no
//     factorial is ever materialized and the loop stays overflow-free.
package mathfn

import (
	"fmt"

	"github.com/katalvlaran/densemat/matrix"
)

const (
	// DefaultExpTerms is the number of series terms Exp (and ScalarPow,
	// which delegates to it) sums when the caller passes terms <= 0.
	DefaultExpTerms = 100

	// DefaultTrigTerms is the default term count for every other series
	// in the package.
	DefaultTrigTerms = 50
)

// resolveTerms maps a non-positive request to the family default.
func resolveTerms(terms, def int) int {
	if terms <= 0 {
		return def
	}

	return terms
}

// validateArg rejects nil and non-square arguments.
func validateArg(op string, m *matrix.Dense) error {
	if m == nil {
		return fmt.Errorf("%s: %w", op, matrix.ErrNilMatrix)
	}
	if !m.IsSquare() {
		r, c := m.Shape()

		return fmt.Errorf("%s: shape %dx%d: %w", op, r, c, matrix.ErrNotSquare)
	}

	return nil
}

// identityLike builds the identity matching m's size and tolerance.
func identityLike(op string, m *matrix.Dense) (*matrix.Dense, error) {
	id, err := matrix.Identity(m.Rows(), matrix.WithEpsilon(m.Eps()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// sumSeries evaluates Σ_{n=0}^{terms-1} c_n · first·stepⁿ where
// c_0 = c0 and c_{n+1} = next(n, c_n).
func sumSeries(op string, first, step *matrix.Dense, terms int, c0 float64,
	next func(n int, c float64) float64) (*matrix.Dense, error) {
	var err error
	pow := first
	c := c0
	acc := first.ScalarMul(complex(c, 0))
	for n := 1; n < terms; n++ {
		c = next(n-1, c)
		if pow, err = pow.Mul(step); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if acc, err = acc.Add(pow.ScalarMul(complex(c, 0))); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return acc, nil
}
