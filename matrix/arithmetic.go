// SPDX-License-Identifier: MIT

// Package matrix - binary/unary arithmetic.
//
// Purpose:
//   - Elementwise addition and subtraction, standard and Hadamard and
//     Kronecker products, scalar forms, integer matrix powers, horizontal
//     augmentation, and entrywise mapping.
//
// Behavior highlights:
//   - Every operation validates eagerly and returns a freshly allocated
//     result; operands are never mutated.
//   - Results inherit the left operand's tolerance.
package matrix

import (
	"fmt"
	"math/cmplx"
)

// ---------- error context tags ----------

const (
	ctxAdd       = "Matrix.Add"
	ctxSub       = "Matrix.Sub"
	ctxMul       = "Matrix.Mul"
	ctxDiv       = "Matrix.Div"
	ctxScalarDiv = "Matrix.ScalarDiv"
	ctxHadamard  = "Matrix.Hadamard"
	ctxKronecker = "Matrix.Kronecker"
	ctxPow       = "Matrix.Pow"
	ctxAugment   = "Matrix.Augment"
)

// Add computes the elementwise sum C[i,j] = m[i,j] + o[i,j].
// Errors: ErrNilMatrix, ErrInvalidDimensions.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Add(o *Dense) (*Dense, error) {
	if err := validateBinary(ctxAdd, m, o); err != nil {
		return nil, err
	}

	res := newDense(m.r, m.c, m.eps)
	for k := range m.data {
		res.data[k] = m.data[k] + o.data[k]
	}

	return res, nil
}

// Sub computes the elementwise difference m + (-o).
// Errors: ErrNilMatrix, ErrInvalidDimensions.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Sub(o *Dense) (*Dense, error) {
	if err := validateBinary(ctxSub, m, o); err != nil {
		return nil, err
	}

	res := newDense(m.r, m.c, m.eps)
	for k := range m.data {
		res.data[k] = m.data[k] - o.data[k]
	}

	return res, nil
}

// ScalarAdd returns C[i,j] = s + m[i,j]. Complexity: O(r*c).
func (m *Dense) ScalarAdd(s complex128) *Dense {
	res := newDense(m.r, m.c, m.eps)
	for k := range m.data {
		res.data[k] = s + m.data[k]
	}

	return res
}

// Mul performs standard matrix multiplication C = m × o with
// C[i,j] = Σ_r m[i,r]·o[r,j]; requires m.Cols() == o.Rows().
// Implementation:
//   - Stage 1: validate operands and inner dimensions.
//   - Stage 2: i→k→j triple loop with row-major strides, skipping zero
//     left-hand entries.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions.
// Complexity: Time O(r*n*c), Space O(r*c).
func (m *Dense) Mul(o *Dense) (*Dense, error) {
	if err := validateNotNil(ctxMul, m); err != nil {
		return nil, err
	}
	if err := validateNotNil(ctxMul, o); err != nil {
		return nil, err
	}
	if m.c != o.r {
		return nil, fmt.Errorf("%s: shapes %dx%d and %dx%d, column count of first != row count of second: %w",
			ctxMul, m.r, m.c, o.r, o.c, ErrInvalidDimensions)
	}

	res := newDense(m.r, o.c, m.eps)
	for i := 0; i < m.r; i++ {
		rowM := i * m.c
		rowR := i * o.c
		for k := 0; k < m.c; k++ {
			a := m.data[rowM+k]
			if a == 0 {
				continue // skip zero for performance
			}
			rowO := k * o.c
			for j := 0; j < o.c; j++ {
				res.data[rowR+j] += a * o.data[rowO+j]
			}
		}
	}

	return res, nil
}

// ScalarMul returns C[i,j] = s·m[i,j]. Complexity: O(r*c).
func (m *Dense) ScalarMul(s complex128) *Dense {
	res := newDense(m.r, m.c, m.eps)
	for k := range m.data {
		res.data[k] = s * m.data[k]
	}

	return res
}

// Div computes m × o⁻¹, the right division of the operator surface.
// Errors: ErrNilMatrix, ErrNotSquare, ErrSingular, ErrInvalidDimensions.
func (m *Dense) Div(o *Dense) (*Dense, error) {
	if err := validateNotNil(ctxDiv, m); err != nil {
		return nil, err
	}
	if err := validateNotNil(ctxDiv, o); err != nil {
		return nil, err
	}
	inv, err := o.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxDiv, err)
	}

	return m.Mul(inv)
}

// ScalarDiv returns C[i,j] = m[i,j]/s.
// Errors: ErrInvalidValue when |s| is within tolerance of zero.
func (m *Dense) ScalarDiv(s complex128) (*Dense, error) {
	if cmplx.Abs(s) < m.eps {
		return nil, fmt.Errorf("%s: divisor %v is within tolerance of zero: %w", ctxScalarDiv, s, ErrInvalidValue)
	}

	return m.ScalarMul(1 / s), nil
}

// Neg returns -m, i.e. ScalarMul(-1). Complexity: O(r*c).
func (m *Dense) Neg() *Dense { return m.ScalarMul(-1) }

// Hadamard computes the elementwise product C[i,j] = m[i,j]·o[i,j].
// Errors: ErrNilMatrix, ErrInvalidDimensions.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Hadamard(o *Dense) (*Dense, error) {
	if err := validateBinary(ctxHadamard, m, o); err != nil {
		return nil, err
	}

	res := newDense(m.r, m.c, m.eps)
	for k := range m.data {
		res.data[k] = m.data[k] * o.data[k]
	}

	return res, nil
}

// Kronecker computes the tensor product A ⊗ B: the block matrix with
// entry [(i-1)·B.rows+v, (j-1)·B.cols+w] = A[i,j]·B[v,w] (1-based).
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c*r'*c'), Space O(r*c*r'*c').
func (m *Dense) Kronecker(o *Dense) (*Dense, error) {
	if err := validateNotNil(ctxKronecker, m); err != nil {
		return nil, err
	}
	if err := validateNotNil(ctxKronecker, o); err != nil {
		return nil, err
	}

	res := newDense(m.r*o.r, m.c*o.c, m.eps)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			a := m.data[i*m.c+j]
			for v := 0; v < o.r; v++ {
				dst := (i*o.r+v)*res.c + j*o.c
				src := v * o.c
				for w := 0; w < o.c; w++ {
					res.data[dst+w] = a * o.data[src+w]
				}
			}
		}
	}

	return res, nil
}

// Pow raises a square matrix to an integer power:
//   - k < 0 computes Pow(m⁻¹, -k), so m must be non-singular;
//   - k = 0 returns the identity of matching size;
//   - k > 0 recurses as Pow(k-1) × m.
//
// Errors: ErrNotSquare, ErrSingular (negative k on a singular matrix).
// Complexity: Time O(|k|·n³), recursion depth bounded by |k|.
func (m *Dense) Pow(k int) (*Dense, error) {
	if err := validateSquare(ctxPow, m); err != nil {
		return nil, err
	}
	if k < 0 {
		inv, err := m.Inverse()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ctxPow, err)
		}

		return inv.Pow(-k)
	}
	if k == 0 {
		res := newDense(m.r, m.c, m.eps)
		for i := 0; i < m.r; i++ {
			res.data[i*m.c+i] = 1
		}

		return res, nil
	}
	prev, err := m.Pow(k - 1)
	if err != nil {
		return nil, err
	}

	return prev.Mul(m)
}

// Augment concatenates o to the right of m; both must have the same
// number of rows.
// Errors: ErrNilMatrix, ErrInvalidDimensions.
// Complexity: Time O(r*(c+c')), Space O(r*(c+c')).
func (m *Dense) Augment(o *Dense) (*Dense, error) {
	if err := validateNotNil(ctxAugment, m); err != nil {
		return nil, err
	}
	if err := validateNotNil(ctxAugment, o); err != nil {
		return nil, err
	}
	if m.r != o.r {
		return nil, fmt.Errorf("%s: shapes %dx%d and %dx%d, row counts differ: %w",
			ctxAugment, m.r, m.c, o.r, o.c, ErrInvalidDimensions)
	}

	res := newDense(m.r, m.c+o.c, m.eps)
	for i := 0; i < m.r; i++ {
		copy(res.data[i*res.c:i*res.c+m.c], m.data[i*m.c:(i+1)*m.c])
		copy(res.data[i*res.c+m.c:(i+1)*res.c], o.data[i*o.c:(i+1)*o.c])
	}

	return res, nil
}

// Map applies f to every entry, preserving shape.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Map(f func(complex128) complex128) *Dense {
	res := newDense(m.r, m.c, m.eps)
	for k, v := range m.data {
		res.data[k] = f(v)
	}

	return res
}
