// SPDX-License-Identifier: MIT

// Package matrix - tolerance-aware entrywise comparisons.
//
// Purpose:
//   - Eq/Ne/Lt/Gt/Le/Ge compare two matrices entry by entry and return a
//     Bool truth table of the same shape.
//
// Behavior highlights:
//   - The comparison tolerance defaults to the receiver's eps; pass
//     WithEpsilon to override it per call.
//   - Eq and Ne compare |a-b| against the tolerance and accept complex
//     entries. The ordered forms (Lt, Gt, Le, Ge) require both operands
//     to be real and compare the signed difference a-b against the
//     tolerance band.
package matrix

import (
	"fmt"
	"math/cmplx"
)

// ---------- error context tags ----------

const (
	ctxEq = "Matrix.Eq"
	ctxNe = "Matrix.Ne"
	ctxLt = "Matrix.Lt"
	ctxGt = "Matrix.Gt"
	ctxLe = "Matrix.Le"
	ctxGe = "Matrix.Ge"
)

// compareTol resolves the tolerance for one comparison call.
func (m *Dense) compareTol(opts ...Option) float64 {
	if len(opts) == 0 {
		return m.eps
	}

	return gatherOptions(opts...).eps
}

// Eq reports entrywise equality: |m[i,j] - o[i,j]| <= tol.
// Errors: ErrNilMatrix, ErrInvalidDimensions.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Eq(o *Dense, opts ...Option) (*Bool, error) {
	if err := validateBinary(ctxEq, m, o); err != nil {
		return nil, err
	}

	tol := m.compareTol(opts...)
	res := newBool(m.r, m.c)
	for k := range m.data {
		res.data[k] = cmplx.Abs(m.data[k]-o.data[k]) <= tol
	}

	return res, nil
}

// Ne reports entrywise inequality: |m[i,j] - o[i,j]| > tol.
// Errors: ErrNilMatrix, ErrInvalidDimensions.
func (m *Dense) Ne(o *Dense, opts ...Option) (*Bool, error) {
	if err := validateBinary(ctxNe, m, o); err != nil {
		return nil, err
	}

	tol := m.compareTol(opts...)
	res := newBool(m.r, m.c)
	for k := range m.data {
		res.data[k] = cmplx.Abs(m.data[k]-o.data[k]) > tol
	}

	return res, nil
}

// realDiffs validates an ordered comparison: both operands present, same
// shape, every entry real. It returns the entrywise differences m - o.
func (m *Dense) realDiffs(op string, o *Dense) ([]float64, error) {
	if err := validateBinary(op, m, o); err != nil {
		return nil, err
	}
	if !m.IsReal() || !o.IsReal() {
		return nil, fmt.Errorf("%s: ordered comparison requires real entries: %w", op, ErrInvalidData)
	}

	diffs := make([]float64, len(m.data))
	for k := range m.data {
		diffs[k] = real(m.data[k]) - real(o.data[k])
	}

	return diffs, nil
}

// Lt reports m[i,j] < o[i,j] outside the tolerance band: a-b < -tol.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrInvalidData for
// non-real operands.
func (m *Dense) Lt(o *Dense, opts ...Option) (*Bool, error) {
	diffs, err := m.realDiffs(ctxLt, o)
	if err != nil {
		return nil, err
	}

	tol := m.compareTol(opts...)
	res := newBool(m.r, m.c)
	for k, d := range diffs {
		res.data[k] = d < -tol
	}

	return res, nil
}

// Gt reports m[i,j] > o[i,j] outside the tolerance band: a-b > tol.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrInvalidData for
// non-real operands.
func (m *Dense) Gt(o *Dense, opts ...Option) (*Bool, error) {
	diffs, err := m.realDiffs(ctxGt, o)
	if err != nil {
		return nil, err
	}

	tol := m.compareTol(opts...)
	res := newBool(m.r, m.c)
	for k, d := range diffs {
		res.data[k] = d > tol
	}

	return res, nil
}

// Le reports m[i,j] <= o[i,j] up to tolerance: a-b <= tol.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrInvalidData for
// non-real operands.
func (m *Dense) Le(o *Dense, opts ...Option) (*Bool, error) {
	diffs, err := m.realDiffs(ctxLe, o)
	if err != nil {
		return nil, err
	}

	tol := m.compareTol(opts...)
	res := newBool(m.r, m.c)
	for k, d := range diffs {
		res.data[k] = d <= tol
	}

	return res, nil
}

// Ge reports m[i,j] >= o[i,j] up to tolerance: a-b >= -tol.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrInvalidData for
// non-real operands.
func (m *Dense) Ge(o *Dense, opts ...Option) (*Bool, error) {
	diffs, err := m.realDiffs(ctxGe, o)
	if err != nil {
		return nil, err
	}

	tol := m.compareTol(opts...)
	res := newBool(m.r, m.c)
	for k, d := range diffs {
		res.data[k] = d >= -tol
	}

	return res, nil
}
