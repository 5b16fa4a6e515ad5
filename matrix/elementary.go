// SPDX-License-Identifier: MIT

// Package matrix - elementary row/column operations and row reduction.
//
// Purpose:
//   - Provide the three basis transformations (switch, scale, add-multiple)
//     on rows, their column analogues, and Gauss–Jordan reduction built on
//     top of them.
//   - All operations are 1-based at the public surface and return a new
//     matrix; the receiver is never modified.
package matrix

import (
	"fmt"
	"math/cmplx"
)

// ---------- error context tags ----------

const (
	ctxRowSwitch = "Matrix.RowSwitch"
	ctxRowScale  = "Matrix.RowScale"
	ctxRowAdd    = "Matrix.RowAdd"
	ctxRowDiv    = "Matrix.RowDiv"
	ctxColSwitch = "Matrix.ColSwitch"
	ctxColScale  = "Matrix.ColScale"
	ctxColAdd    = "Matrix.ColAdd"
)

// RowSwitch exchanges rows i and j (Ri <-> Rj) and returns the result.
// Applying it twice with the same arguments restores the original matrix.
// Errors: ErrIndexOutOfBounds. Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) RowSwitch(i, j int) (*Dense, error) {
	if err := validateRowIndex(ctxRowSwitch, i, m.r); err != nil {
		return nil, err
	}
	if err := validateRowIndex(ctxRowSwitch, j, m.r); err != nil {
		return nil, err
	}

	res := m.Clone()
	// Swap the two row blocks in the flat buffer.
	ri, rj := (i-1)*m.c, (j-1)*m.c
	for k := 0; k < m.c; k++ {
		res.data[ri+k], res.data[rj+k] = res.data[rj+k], res.data[ri+k]
	}

	return res, nil
}

// RowScale replaces row i with k·Ri and returns the result. A factor whose
// magnitude is within tolerance of zero is a degenerate, non-invertible
// scaling and is rejected.
// Errors: ErrIndexOutOfBounds, ErrInvalidValue (|k| < eps).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) RowScale(i int, k complex128) (*Dense, error) {
	if err := validateRowIndex(ctxRowScale, i, m.r); err != nil {
		return nil, err
	}
	if cmplx.Abs(k) < m.eps {
		return nil, fmt.Errorf("%s: scale factor %v is within tolerance of zero: %w", ctxRowScale, k, ErrInvalidValue)
	}

	res := m.Clone()
	base := (i - 1) * m.c
	for c := 0; c < m.c; c++ {
		res.data[base+c] *= k
	}

	return res, nil
}

// RowAdd replaces row i with Ri + k·Rj and returns the result.
// Errors: ErrIndexOutOfBounds. Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) RowAdd(i, j int, k complex128) (*Dense, error) {
	if err := validateRowIndex(ctxRowAdd, i, m.r); err != nil {
		return nil, err
	}
	if err := validateRowIndex(ctxRowAdd, j, m.r); err != nil {
		return nil, err
	}

	res := m.Clone()
	dst, src := (i-1)*m.c, (j-1)*m.c
	for c := 0; c < m.c; c++ {
		res.data[dst+c] += k * res.data[src+c]
	}

	return res, nil
}

// RowDiv replaces row i with Ri/k, the division form of RowScale.
// Errors: ErrIndexOutOfBounds, ErrInvalidValue (|k| < eps).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) RowDiv(i int, k complex128) (*Dense, error) {
	if err := validateRowIndex(ctxRowDiv, i, m.r); err != nil {
		return nil, err
	}
	if cmplx.Abs(k) < m.eps {
		return nil, fmt.Errorf("%s: divisor %v is within tolerance of zero: %w", ctxRowDiv, k, ErrInvalidValue)
	}

	res := m.Clone()
	base := (i - 1) * m.c
	for c := 0; c < m.c; c++ {
		res.data[base+c] /= k
	}

	return res, nil
}

// RowSub replaces row i with Ri - k·Rj, shorthand for RowAdd with -k.
// Errors: ErrIndexOutOfBounds.
func (m *Dense) RowSub(i, j int, k complex128) (*Dense, error) {
	return m.RowAdd(i, j, -k)
}

// ColSwitch exchanges columns i and j, defined as the row operation
// conjugated by transposition.
// Errors: ErrIndexOutOfBounds. Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) ColSwitch(i, j int) (*Dense, error) {
	if err := validateColIndex(ctxColSwitch, i, m.c); err != nil {
		return nil, err
	}
	if err := validateColIndex(ctxColSwitch, j, m.c); err != nil {
		return nil, err
	}

	t, err := m.Transpose().RowSwitch(i, j)
	if err != nil {
		return nil, err
	}

	return t.Transpose(), nil
}

// ColScale replaces column i with k·Ci, defined as the row operation
// conjugated by transposition.
// Errors: ErrIndexOutOfBounds, ErrInvalidValue (|k| < eps).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) ColScale(i int, k complex128) (*Dense, error) {
	if err := validateColIndex(ctxColScale, i, m.c); err != nil {
		return nil, err
	}

	t, err := m.Transpose().RowScale(i, k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxColScale, err)
	}

	return t.Transpose(), nil
}

// ColAdd replaces column i with Ci + k·Cj, defined as the row operation
// conjugated by transposition.
// Errors: ErrIndexOutOfBounds. Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) ColAdd(i, j int, k complex128) (*Dense, error) {
	if err := validateColIndex(ctxColAdd, i, m.c); err != nil {
		return nil, err
	}
	if err := validateColIndex(ctxColAdd, j, m.c); err != nil {
		return nil, err
	}

	t, err := m.Transpose().RowAdd(i, j, k)
	if err != nil {
		return nil, err
	}

	return t.Transpose(), nil
}

// RREF returns the reduced row echelon form via Gauss–Jordan elimination.
// Implementation:
//   - Stage 1: scan columns left to right; below the current pivot row,
//     find the first entry whose magnitude exceeds tolerance.
//   - Stage 2: swap it into pivot position, normalize the pivot row so the
//     pivot entry is 1, eliminate the column from every other row, advance
//     the pivot row; columns without a usable pivot are skipped.
//
// Behavior highlights:
//   - Idempotent within tolerance: reducing an already-reduced matrix
//     returns an equal matrix.
//   - Deterministic pivot choice (first entry past tolerance, not the
//     largest), matching the elementary-operation semantics.
//
// Complexity: Time O(r^2*c), Space O(r*c).
func (m *Dense) RREF() *Dense {
	res := m.Clone()
	pivot := 0 // 0-based pivot row in the working copy
	for col := 0; col < res.c && pivot < res.r; col++ {
		// Find a usable pivot at or below the current pivot row.
		found := -1
		for row := pivot; row < res.r; row++ {
			if cmplx.Abs(res.data[row*res.c+col]) > res.eps {
				found = row
				break
			}
		}
		if found < 0 {
			continue // no pivot in this column
		}

		// Swap the pivot row into position.
		if found != pivot {
			a, b := found*res.c, pivot*res.c
			for k := 0; k < res.c; k++ {
				res.data[a+k], res.data[b+k] = res.data[b+k], res.data[a+k]
			}
		}

		// Normalize the pivot row so the pivot entry becomes exactly 1.
		inv := 1 / res.data[pivot*res.c+col]
		base := pivot * res.c
		for k := 0; k < res.c; k++ {
			res.data[base+k] *= inv
		}
		res.data[base+col] = 1

		// Eliminate the pivot column from every other row.
		for row := 0; row < res.r; row++ {
			if row == pivot {
				continue
			}
			factor := res.data[row*res.c+col]
			if cmplx.Abs(factor) <= res.eps {
				continue
			}
			off := row * res.c
			for k := 0; k < res.c; k++ {
				res.data[off+k] -= factor * res.data[base+k]
			}
			res.data[off+col] = 0
		}

		pivot++
	}

	return res
}
