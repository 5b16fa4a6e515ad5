// SPDX-License-Identifier: MIT

// Package matrix implements dense matrices over complex128 with exact,
// value-semantics arithmetic and tolerance-aware comparisons.
//
// What is matrix?
//
//   - A Dense matrix is an immutable rectangular block of complex128
//     entries, addressed with 1-based (row, column) indices.
//   - Every operation validates its inputs eagerly, returns a freshly
//     allocated result, and never mutates its operands (Set on a value
//     you own is the single mutating escape hatch).
//   - Each matrix carries its own tolerance eps, fixed at construction
//     via WithEpsilon and inherited by derived results; magnitudes below
//     eps are treated as zero in pivoting, inversion and comparisons.
//
// Core capabilities:
//
//   - Construction: New / NewFromFloats / NewFromInts, plus named
//     families (Identity, Zeros, Ones, Exchange, Hilbert, Diagonal,
//     Vandermonde, MatrixUnit, Fourier).
//   - Arithmetic: Add, Sub, Mul, Div, Hadamard, Kronecker, scalar forms,
//     integer powers, Augment, entrywise Map.
//   - Structure: Transpose, ConjTranspose, Row, Col, Slice (Span-based
//     striding), Submatrix, Clone.
//   - Elimination: the three elementary row/column operations and full
//     Gauss-Jordan reduction to reduced row echelon form (RREF).
//   - Classical linear algebra: Laplace-expansion determinant, minors,
//     cofactors, adjugate, inverse, trace.
//   - Comparison: Eq, Ne, Lt, Gt, Le, Ge produce Bool truth tables that
//     compose with And, Or, Not, All, Any.
//
// Error model:
//
//   - Failures surface as sentinel errors (ErrNotSquare, ErrSingular,
//     ErrIndexOutOfBounds, ...) wrapped with the operation name; match
//     them with errors.Is.
//
// See the mathfn subpackage for power-series matrix functions (Exp,
// Log, trigonometric and hyperbolic families).
package matrix
