// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation
//     checks; operations delegate shape/nil/squareness guards here.
//   - Wrap plain sentinels with the failing operation's name and the
//     offending shapes so call sites stay uniform.
//
// Determinism & Performance:
//   - All checks are pure, deterministic, and O(1).
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).
package matrix

import "fmt"

// validateNotNil ensures the matrix reference is non-nil.
// Returns wrapped ErrNilMatrix. Complexity: O(1).
func validateNotNil(op string, m *Dense) error {
	if m == nil {
		return fmt.Errorf("%s: %w", op, ErrNilMatrix)
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions; assumes both
// non-nil. Returns wrapped ErrInvalidDimensions carrying both shapes.
// Complexity: O(1).
func validateSameShape(op string, a, b *Dense) error {
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("%s: shapes %dx%d and %dx%d differ: %w", op, a.r, a.c, b.r, b.c, ErrInvalidDimensions)
	}

	return nil
}

// validateBinary is the composite NotNil(a) → NotNil(b) → SameShape guard
// used by every same-shape binary operation. Complexity: O(1).
func validateBinary(op string, a, b *Dense) error {
	if err := validateNotNil(op, a); err != nil {
		return err
	}
	if err := validateNotNil(op, b); err != nil {
		return err
	}

	return validateSameShape(op, a, b)
}

// validateSquare ensures m is square; assumes non-nil.
// Returns wrapped ErrNotSquare carrying the shape. Complexity: O(1).
func validateSquare(op string, m *Dense) error {
	if m.r != m.c {
		return fmt.Errorf("%s: shape %dx%d: %w", op, m.r, m.c, ErrNotSquare)
	}

	return nil
}

// validateRowIndex bounds-checks a 1-based row index.
// Returns wrapped ErrIndexOutOfBounds naming the axis and valid range.
// Complexity: O(1).
func validateRowIndex(op string, i, rows int) error {
	if i < 1 || i > rows {
		return fmt.Errorf("%s: row index %d outside [1..%d]: %w", op, i, rows, ErrIndexOutOfBounds)
	}

	return nil
}

// validateColIndex bounds-checks a 1-based column index.
// Returns wrapped ErrIndexOutOfBounds naming the axis and valid range.
// Complexity: O(1).
func validateColIndex(op string, j, cols int) error {
	if j < 1 || j > cols {
		return fmt.Errorf("%s: column index %d outside [1..%d]: %w", op, j, cols, ErrIndexOutOfBounds)
	}

	return nil
}
