// SPDX-License-Identifier: MIT

// Package matrix - boolean matrices.
//
// Purpose:
//   - Bool holds the truth table produced by the entrywise comparison
//     family (Eq, Ne, Lt, Gt, Le, Ge) and supports pointwise logic on it.
//
// Behavior highlights:
//   - Same 1-based indexing and row-major layout as Dense.
//   - And/Or require matching shapes; Not is shape-preserving.
package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNewBool = "Matrix.NewBool"
	ctxBoolAt  = "Bool.At"
	ctxBoolSet = "Bool.Set"
	ctxBoolAnd = "Bool.And"
	ctxBoolOr  = "Bool.Or"
)

// Bool is a dense rows×cols matrix of truth values.
type Bool struct {
	r, c int
	data []bool
}

// NewBool builds a Bool from a rectangular [][]bool.
// Errors: ErrInvalidData for an empty outer slice,
// ErrInvalidShape for ragged rows.
func NewBool(data [][]bool) (*Bool, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: empty input: %w", ctxNewBool, ErrInvalidData)
	}
	cols := len(data[0])
	if cols == 0 {
		return nil, fmt.Errorf("%s: empty first row: %w", ctxNewBool, ErrInvalidData)
	}

	b := newBool(len(data), cols)
	for i, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w",
				ctxNewBool, i+1, len(row), cols, ErrInvalidShape)
		}
		copy(b.data[i*cols:(i+1)*cols], row)
	}

	return b, nil
}

// newBool allocates an all-false rows×cols matrix.
func newBool(rows, cols int) *Bool {
	return &Bool{r: rows, c: cols, data: make([]bool, rows*cols)}
}

// Rows reports the number of rows.
func (b *Bool) Rows() int { return b.r }

// Cols reports the number of columns.
func (b *Bool) Cols() int { return b.c }

// Shape reports (rows, cols).
func (b *Bool) Shape() (int, int) { return b.r, b.c }

// At reads the entry at (i, j), 1-based.
// Errors: ErrIndexOutOfBounds.
func (b *Bool) At(i, j int) (bool, error) {
	if i < 1 || i > b.r {
		return false, fmt.Errorf("%s: row %d out of range [1, %d]: %w", ctxBoolAt, i, b.r, ErrIndexOutOfBounds)
	}
	if j < 1 || j > b.c {
		return false, fmt.Errorf("%s: column %d out of range [1, %d]: %w", ctxBoolAt, j, b.c, ErrIndexOutOfBounds)
	}

	return b.data[(i-1)*b.c+(j-1)], nil
}

// Set writes the entry at (i, j), 1-based.
// Errors: ErrIndexOutOfBounds.
func (b *Bool) Set(i, j int, v bool) error {
	if i < 1 || i > b.r {
		return fmt.Errorf("%s: row %d out of range [1, %d]: %w", ctxBoolSet, i, b.r, ErrIndexOutOfBounds)
	}
	if j < 1 || j > b.c {
		return fmt.Errorf("%s: column %d out of range [1, %d]: %w", ctxBoolSet, j, b.c, ErrIndexOutOfBounds)
	}
	b.data[(i-1)*b.c+(j-1)] = v

	return nil
}

// Clone returns an independent deep copy.
func (b *Bool) Clone() *Bool {
	res := newBool(b.r, b.c)
	copy(res.data, b.data)

	return res
}

// And computes the pointwise conjunction.
// Errors: ErrNilMatrix, ErrInvalidDimensions.
func (b *Bool) And(o *Bool) (*Bool, error) {
	if err := validateBoolPair(ctxBoolAnd, b, o); err != nil {
		return nil, err
	}

	res := newBool(b.r, b.c)
	for k := range b.data {
		res.data[k] = b.data[k] && o.data[k]
	}

	return res, nil
}

// Or computes the pointwise disjunction.
// Errors: ErrNilMatrix, ErrInvalidDimensions.
func (b *Bool) Or(o *Bool) (*Bool, error) {
	if err := validateBoolPair(ctxBoolOr, b, o); err != nil {
		return nil, err
	}

	res := newBool(b.r, b.c)
	for k := range b.data {
		res.data[k] = b.data[k] || o.data[k]
	}

	return res, nil
}

// Not computes the pointwise negation.
func (b *Bool) Not() *Bool {
	res := newBool(b.r, b.c)
	for k := range b.data {
		res.data[k] = !b.data[k]
	}

	return res
}

// Equal reports whether both matrices hold identical truth tables.
// A nil argument or a shape mismatch reports false.
func (b *Bool) Equal(o *Bool) bool {
	if o == nil || b.r != o.r || b.c != o.c {
		return false
	}
	for k := range b.data {
		if b.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// All reports whether every entry is true.
func (b *Bool) All() bool {
	for _, v := range b.data {
		if !v {
			return false
		}
	}

	return true
}

// Any reports whether at least one entry is true.
func (b *Bool) Any() bool {
	for _, v := range b.data {
		if v {
			return true
		}
	}

	return false
}

// String renders the matrix one bracketed row per line.
func (b *Bool) String() string {
	var sb strings.Builder
	for i := 0; i < b.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < b.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			if b.data[i*b.c+j] {
				sb.WriteString("true")
			} else {
				sb.WriteString("false")
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// validateBoolPair rejects nil operands and shape mismatches.
func validateBoolPair(op string, a, b *Bool) error {
	if a == nil || b == nil {
		return fmt.Errorf("%s: %w", op, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("%s: shapes %dx%d and %dx%d differ: %w", op, a.r, a.c, b.r, b.c, ErrInvalidDimensions)
	}

	return nil
}
