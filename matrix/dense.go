// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula (i-1)*cols + (j-1) behind a 1-based public surface.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based range selection (Slice) and explicit-index
//     submatrix extraction (Submatrix).
//   - Carry the numeric tolerance per instance from a single source of
//     truth (options.go).
//
// Complexity quicksheet:
//   - New: O(r*c) copy; At/Set: O(1); Clone: O(r*c); Slice: O(r'*c').
package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew       = "Matrix.New"
	ctxAt        = "Matrix.At"
	ctxSet       = "Matrix.Set"
	ctxRow       = "Matrix.Row"
	ctxCol       = "Matrix.Col"
	ctxSlice     = "Matrix.Slice"
	ctxSubmatrix = "Matrix.Submatrix"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix of complex128 scalars.
//   - r, c hold dimensions (rows, cols), both >= 1 by construction.
//   - data is a flat buffer of length r*c in row-major order.
//   - eps is the per-instance numeric tolerance (see options.go); results
//     of every operation inherit the receiver's eps.
//
// Integer and real matrices are matrices whose entries have, within eps,
// zero imaginary (and fractional) parts; see IsReal and IsInteger.
// A Dense is immutable after construction except through Set, which
// mutates only the receiver. Boolean matrices are the separate Bool type.
type Dense struct {
	r, c int          // row and column counts (>= 1)
	data []complex128 // contiguous row-major storage (len == r*c)
	eps  float64      // numeric tolerance carried per instance
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// New creates a Dense from a non-empty rectangular nested sequence of
// scalars; the input is deep-copied.
// Implementation:
//   - Stage 1: validate non-empty outer and inner sequences, rectangularity.
//   - Stage 2: resolve options, allocate the flat buffer, copy rows.
//
// Inputs:
//   - data: rows of entries; every row must have the same, positive length.
//   - opts: numeric policy (WithEpsilon).
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidData (empty input or empty first row).
//   - ErrInvalidShape (ragged rows).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(data [][]complex128, opts ...Option) (*Dense, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, fmt.Errorf("%s: input must be a non-empty list of non-empty rows: %w", ctxNew, ErrInvalidData)
	}
	rows, cols := len(data), len(data[0])
	for i, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", ctxNew, i+1, len(row), cols, ErrInvalidShape)
		}
	}

	o := gatherOptions(opts...)
	m := newDense(rows, cols, o.eps)
	for i, row := range data {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewFromFloats creates a Dense from real-valued rows. Same contract as New.
func NewFromFloats(data [][]float64, opts ...Option) (*Dense, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, fmt.Errorf("%s: input must be a non-empty list of non-empty rows: %w", ctxNew, ErrInvalidData)
	}
	rows, cols := len(data), len(data[0])
	for i, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", ctxNew, i+1, len(row), cols, ErrInvalidShape)
		}
	}

	o := gatherOptions(opts...)
	m := newDense(rows, cols, o.eps)
	for i, row := range data {
		for j, v := range row {
			m.data[i*cols+j] = complex(v, 0)
		}
	}

	return m, nil
}

// NewFromInts creates a Dense from integer-valued rows. Same contract as New.
func NewFromInts(data [][]int, opts ...Option) (*Dense, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, fmt.Errorf("%s: input must be a non-empty list of non-empty rows: %w", ctxNew, ErrInvalidData)
	}
	rows, cols := len(data), len(data[0])
	for i, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", ctxNew, i+1, len(row), cols, ErrInvalidShape)
		}
	}

	o := gatherOptions(opts...)
	m := newDense(rows, cols, o.eps)
	for i, row := range data {
		for j, v := range row {
			m.data[i*cols+j] = complex(float64(v), 0)
		}
	}

	return m, nil
}

// newDense is the internal zero-filled constructor. Callers guarantee
// rows >= 1 and cols >= 1; eps travels from the parent matrix or options.
// Complexity: Time O(r*c), Space O(r*c).
func newDense(rows, cols int, eps float64) *Dense {
	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]complex128, rows*cols),
		eps:  eps,
	}
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call. Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Eps returns the numeric tolerance carried by this instance.
// Complexity: O(1).
func (m *Dense) Eps() float64 { return m.eps }

// offset computes the row-major offset for 1-based (i, j) or returns
// ErrIndexOutOfBounds naming the offending axis and the valid range.
// Complexity: O(1).
func (m *Dense) offset(op string, i, j int) (int, error) {
	if i < 1 || i > m.r {
		return 0, fmt.Errorf("%s: row index %d outside [1..%d]: %w", op, i, m.r, ErrIndexOutOfBounds)
	}
	if j < 1 || j > m.c {
		return 0, fmt.Errorf("%s: column index %d outside [1..%d]: %w", op, j, m.c, ErrIndexOutOfBounds)
	}

	// Row-major offset behind the 1-based surface.
	return (i-1)*m.c + (j - 1), nil
}

// At returns the entry at 1-based (i, j); (1,1) is the top-left entry.
// Errors: ErrIndexOutOfBounds. Complexity: O(1).
func (m *Dense) At(i, j int) (complex128, error) {
	off, err := m.offset(ctxAt, i, j)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set stores v at 1-based (i, j). This is the sole mutation primitive: it
// affects only the receiver and must not be invoked concurrently on the
// same instance without external synchronization.
// Errors: ErrIndexOutOfBounds. Complexity: O(1).
func (m *Dense) Set(i, j int, v complex128) error {
	off, err := m.offset(ctxSet, i, j)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same tolerance).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() *Dense {
	cp := newDense(m.r, m.c, m.eps)
	copy(cp.data, m.data)

	return cp
}

// IsSquare reports Rows() == Cols(). Complexity: O(1).
func (m *Dense) IsSquare() bool { return m.r == m.c }

// IsReal reports whether every entry has an imaginary part within eps of
// zero. Complexity: O(r*c).
func (m *Dense) IsReal() bool {
	for _, v := range m.data {
		if math.Abs(imag(v)) > m.eps {
			return false
		}
	}

	return true
}

// IsInteger reports whether every entry is, within eps, a real integer.
// Presentation collaborators use this to pick an integer rendering.
// Complexity: O(r*c).
func (m *Dense) IsInteger() bool {
	for _, v := range m.data {
		if math.Abs(imag(v)) > m.eps {
			return false
		}
		re := real(v)
		if math.Abs(re-math.Round(re)) > m.eps {
			return false
		}
	}

	return true
}

// Row returns row i as a new 1×c matrix.
// Errors: ErrIndexOutOfBounds. Complexity: O(c).
func (m *Dense) Row(i int) (*Dense, error) {
	if i < 1 || i > m.r {
		return nil, fmt.Errorf("%s: row index %d outside [1..%d]: %w", ctxRow, i, m.r, ErrIndexOutOfBounds)
	}
	res := newDense(1, m.c, m.eps)
	copy(res.data, m.data[(i-1)*m.c:i*m.c])

	return res, nil
}

// Col returns column j as a new r×1 matrix.
// Errors: ErrIndexOutOfBounds. Complexity: O(r).
func (m *Dense) Col(j int) (*Dense, error) {
	if j < 1 || j > m.c {
		return nil, fmt.Errorf("%s: column index %d outside [1..%d]: %w", ctxCol, j, m.c, ErrIndexOutOfBounds)
	}
	res := newDense(m.r, 1, m.eps)
	for i := 0; i < m.r; i++ {
		res.data[i] = m.data[i*m.c+(j-1)]
	}

	return res, nil
}

// Slice selects rows × cols by range and returns a new matrix containing
// exactly the selected entries in selection order, so descending spans
// produce reversed results. Each Span is normalized against its own axis
// extent (rows against Rows(), cols against Cols()).
// Implementation:
//   - Stage 1: normalize both spans (bounds and direction).
//   - Stage 2: copy the cross product of the selected indices.
//
// Errors:
//   - ErrIndexOutOfBounds (span end outside the axis).
//   - ErrInvalidShape (empty selection).
//
// Complexity: Time O(r'*c'), Space O(r'*c').
func (m *Dense) Slice(rows, cols Span) (*Dense, error) {
	rowIdx, err := rows.normalize(m.r)
	if err != nil {
		return nil, fmt.Errorf("%s: rows: %w", ctxSlice, err)
	}
	colIdx, err := cols.normalize(m.c)
	if err != nil {
		return nil, fmt.Errorf("%s: cols: %w", ctxSlice, err)
	}

	res := newDense(len(rowIdx), len(colIdx), m.eps)
	for i, ri := range rowIdx {
		for j, cj := range colIdx {
			res.data[i*res.c+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// Submatrix extracts the rows × cols at the given explicit 1-based index
// lists. Indices must be unique; they are sorted ascending before
// extraction, so the result preserves the receiver's ordering.
// Errors:
//   - ErrInvalidData (empty list or duplicate index).
//   - ErrIndexOutOfBounds (index outside the axis).
//
// Complexity: Time O(r'*c' + r' log r' + c' log c').
func (m *Dense) Submatrix(rows, cols []int) (*Dense, error) {
	rowIdx, err := checkIndexList(ctxSubmatrix, "row", rows, m.r)
	if err != nil {
		return nil, err
	}
	colIdx, err := checkIndexList(ctxSubmatrix, "column", cols, m.c)
	if err != nil {
		return nil, err
	}

	res := newDense(len(rowIdx), len(colIdx), m.eps)
	for i, ri := range rowIdx {
		for j, cj := range colIdx {
			res.data[i*res.c+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// checkIndexList validates a 1-based index list against an axis extent and
// returns the sorted 0-based indices.
// Errors: ErrInvalidData (empty or duplicate), ErrIndexOutOfBounds.
// Complexity: Time O(k log k), Space O(k).
func checkIndexList(op, axis string, idx []int, extent int) ([]int, error) {
	if len(idx) == 0 {
		return nil, fmt.Errorf("%s: empty %s index list: %w", op, axis, ErrInvalidData)
	}
	sorted := append([]int(nil), idx...)
	sort.Ints(sorted)
	out := make([]int, len(sorted))
	for k, v := range sorted {
		if v < 1 || v > extent {
			return nil, fmt.Errorf("%s: %s index %d outside [1..%d]: %w", op, axis, v, extent, ErrIndexOutOfBounds)
		}
		if k > 0 && sorted[k-1] == v {
			return nil, fmt.Errorf("%s: duplicate %s index %d: %w", op, axis, v, ErrInvalidData)
		}
		out[k] = v - 1
	}

	return out, nil
}

// Equal reports whether o has the same shape and, entry by entry, the same
// values within the receiver's tolerance. A nil operand is never equal.
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool { return m.EqualTol(o, m.eps) }

// EqualTol is Equal with an explicit tolerance.
// Complexity: O(r*c).
func (m *Dense) EqualTol(o *Dense, tol float64) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if cmplx.Abs(m.data[k]-o.data[k]) > tol {
			return false
		}
	}

	return true
}

// String renders rows as lines with comma-separated entries for
// diagnostics; effectively-integer values print without a fraction, real
// values without an imaginary part. Not a presentation surface.
// Complexity: Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			b.WriteString(m.formatEntry(m.data[i*m.c+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// formatEntry picks the narrowest faithful rendering of v under eps:
// integer, real, or full complex.
func (m *Dense) formatEntry(v complex128) string {
	if math.Abs(imag(v)) <= m.eps {
		re := real(v)
		if math.Abs(re-math.Round(re)) <= m.eps {
			return fmt.Sprintf("%d", int64(math.Round(re)))
		}

		return fmt.Sprintf("%g", re)
	}

	return fmt.Sprintf("%g", v)
}
