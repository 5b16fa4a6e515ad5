// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap these sentinels with the failing
// operation's name and the offending shape/value via
// fmt.Errorf("Op: ctx: %w", ErrX); callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates incompatible shapes between two operands
	// of a binary operation, e.g. Add on different shapes, Mul where
	// a.Cols() != b.Rows(), or Augment on different row counts.
	ErrInvalidDimensions = errors.New("matrix: incompatible dimensions")

	// ErrNotSquare signals that a square-only operation (Det, Inverse, Trace,
	// Pow, every series function) received a non-square input.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse (and negative Pow) when the
	// determinant magnitude is within tolerance of zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrIndexOutOfBounds indicates a row or column index outside
	// [1..Rows()] / [1..Cols()]. The wrapping context names the offending
	// axis and the valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrInvalidData indicates a malformed operand: empty construction
	// input, a duplicate or empty index set, or a non-real operand where
	// ordered comparison requires real entries.
	ErrInvalidData = errors.New("matrix: invalid data")

	// ErrInvalidShape indicates structurally malformed input, e.g. ragged
	// rows at construction or an empty range selection.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrInvalidValue indicates a semantically invalid scalar, e.g. a row
	// scale factor within tolerance of zero, a non-positive base for
	// scalar-matrix exponentiation, or a non-positive factory size.
	ErrInvalidValue = errors.New("matrix: invalid value")

	// ErrNilMatrix indicates that a nil *Dense or *Bool (receiver or
	// argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
