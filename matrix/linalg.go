// SPDX-License-Identifier: MIT

// Package matrix - linear-algebra core.
//
// Purpose:
//   - Determinant via recursive Laplace expansion along the first row,
//     minors, cofactors, adjugate, and the adjugate-based inverse.
//   - Trace, transpose and conjugate (Hermitian) transpose.
//
// Notes:
//   - Laplace expansion is exponential in the matrix size. That is the
//     documented contract of this engine: correctness on small matrices,
//     not asymptotic performance. Recursion depth is bounded by the size.
package matrix

import (
	"fmt"
	"math/cmplx"
)

// ---------- error context tags ----------

const (
	ctxDet            = "Matrix.Det"
	ctxMinor          = "Matrix.Minor"
	ctxFirstMinor     = "Matrix.FirstMinor"
	ctxCofactor       = "Matrix.Cofactor"
	ctxCofactorMatrix = "Matrix.CofactorMatrix"
	ctxAdjugate       = "Matrix.Adjugate"
	ctxInverse        = "Matrix.Inverse"
	ctxTrace          = "Matrix.Trace"
)

// Det computes the determinant by Laplace expansion along the first row:
// det = Σ_j a[1,j]·cofactor(1,j), with a 1×1 base case.
// Errors: ErrNotSquare. Complexity: Time O(n!), Space O(n^2) per level.
func (m *Dense) Det() (complex128, error) {
	if err := validateSquare(ctxDet, m); err != nil {
		return 0, err
	}

	return m.det(), nil
}

// det is the unvalidated recursive kernel behind Det.
func (m *Dense) det() complex128 {
	if m.r == 1 {
		return m.data[0]
	}

	var sum complex128
	sign := 1.0 // alternating (-1)^(1+j) with 1-based j, starting at +1
	for j := 0; j < m.c; j++ {
		a := m.data[j] // first-row entry a[1,j+1]
		if a != 0 {
			sum += complex(sign, 0) * a * m.without(0, j).det()
		}
		sign = -sign
	}

	return sum
}

// without returns a copy of m lacking 0-based row r0 and column c0.
// Callers guarantee m.r > 1 and m.c > 1. Complexity: O(r*c).
func (m *Dense) without(r0, c0 int) *Dense {
	res := newDense(m.r-1, m.c-1, m.eps)
	k := 0
	for i := 0; i < m.r; i++ {
		if i == r0 {
			continue
		}
		for j := 0; j < m.c; j++ {
			if j == c0 {
				continue
			}
			res.data[k] = m.data[i*m.c+j]
			k++
		}
	}

	return res
}

// Minor returns the determinant of the submatrix formed by deleting the
// given 1-based rows and columns. Index sets must be non-empty and free of
// duplicates; the remaining submatrix must be square and non-empty.
// Errors: ErrInvalidData, ErrIndexOutOfBounds, ErrNotSquare.
// Complexity: dominated by the determinant of the remaining submatrix.
func (m *Dense) Minor(rows, cols []int) (complex128, error) {
	delRows, err := checkIndexList(ctxMinor, "row", rows, m.r)
	if err != nil {
		return 0, err
	}
	delCols, err := checkIndexList(ctxMinor, "column", cols, m.c)
	if err != nil {
		return 0, err
	}
	if len(delRows) >= m.r || len(delCols) >= m.c {
		return 0, fmt.Errorf("%s: deleting %d of %d rows and %d of %d columns leaves nothing: %w",
			ctxMinor, len(delRows), m.r, len(delCols), m.c, ErrInvalidData)
	}

	// Build the complement index sets (already ascending).
	sub := newDense(m.r-len(delRows), m.c-len(delCols), m.eps)
	if err = validateSquare(ctxMinor, sub); err != nil {
		return 0, err
	}
	k := 0
	for i := 0; i < m.r; i++ {
		if contains(delRows, i) {
			continue
		}
		for j := 0; j < m.c; j++ {
			if contains(delCols, j) {
				continue
			}
			sub.data[k] = m.data[i*m.c+j]
			k++
		}
	}

	return sub.det(), nil
}

// contains reports membership of v in a sorted ascending index slice.
func contains(sorted []int, v int) bool {
	for _, x := range sorted {
		if x == v {
			return true
		}
		if x > v {
			return false
		}
	}

	return false
}

// FirstMinor returns minor({i},{j}): the determinant after deleting row i
// and column j.
// Errors: ErrInvalidData, ErrIndexOutOfBounds, ErrNotSquare.
func (m *Dense) FirstMinor(i, j int) (complex128, error) {
	v, err := m.Minor([]int{i}, []int{j})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ctxFirstMinor, err)
	}

	return v, nil
}

// Cofactor returns (-1)^(i+j) · FirstMinor(i, j) with 1-based i, j.
// Errors: as FirstMinor.
func (m *Dense) Cofactor(i, j int) (complex128, error) {
	v, err := m.FirstMinor(i, j)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ctxCofactor, err)
	}
	if (i+j)%2 != 0 {
		v = -v
	}

	return v, nil
}

// CofactorMatrix returns the matrix of cofactors of every position.
// Errors: ErrNotSquare. Complexity: n² cofactors, each a Laplace expansion.
func (m *Dense) CofactorMatrix() (*Dense, error) {
	if err := validateSquare(ctxCofactorMatrix, m); err != nil {
		return nil, err
	}
	if m.r == 1 {
		// The sole cofactor of a 1×1 matrix is the empty-product determinant 1.
		res := newDense(1, 1, m.eps)
		res.data[0] = 1

		return res, nil
	}

	res := newDense(m.r, m.c, m.eps)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v := m.without(i, j).det()
			if (i+j)%2 != 0 {
				v = -v
			}
			res.data[i*m.c+j] = v
		}
	}

	return res, nil
}

// Adjugate returns the transpose of the cofactor matrix.
// Errors: ErrNotSquare.
func (m *Dense) Adjugate() (*Dense, error) {
	cof, err := m.CofactorMatrix()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxAdjugate, err)
	}

	return cof.Transpose(), nil
}

// Inverse computes adjugate(m)·(1/det(m)).
// Errors:
//   - ErrNotSquare.
//   - ErrSingular when |det| is within tolerance of zero.
//
// Complexity: dominated by the cofactor determinants.
func (m *Dense) Inverse() (*Dense, error) {
	if err := validateSquare(ctxInverse, m); err != nil {
		return nil, err
	}
	d := m.det()
	if cmplx.Abs(d) < m.eps {
		return nil, fmt.Errorf("%s: shape %dx%d, determinant %v: %w", ctxInverse, m.r, m.c, d, ErrSingular)
	}
	adj, err := m.Adjugate()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxInverse, err)
	}

	return adj.ScalarMul(1 / d), nil
}

// Trace returns the sum of diagonal entries.
// Errors: ErrNotSquare. Complexity: O(n).
func (m *Dense) Trace() (complex128, error) {
	if err := validateSquare(ctxTrace, m); err != nil {
		return 0, err
	}

	var sum complex128
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// Transpose returns a new matrix with result[i,j] = m[j,i].
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Transpose() *Dense {
	res := newDense(m.c, m.r, m.eps)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res
}

// T is the conventional shorthand for Transpose.
func (m *Dense) T() *Dense { return m.Transpose() }

// ConjTranspose returns the Hermitian transpose: entrywise conjugate
// followed by transposition. The conjugate of z is z itself when |z| is
// within tolerance of zero, else |z|²/z.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) ConjTranspose() *Dense {
	res := newDense(m.c, m.r, m.eps)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			z := m.data[base+j]
			if abs := cmplx.Abs(z); abs > m.eps {
				z = complex(abs*abs, 0) / z
			}
			res.data[j*m.r+i] = z
		}
	}

	return res
}
