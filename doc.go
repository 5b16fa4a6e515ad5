// Package densemat is an in-memory dense matrix arithmetic engine:
// immutable, value-typed matrices with algebraic operations, elementary
// row reduction, cofactor-based determinants and inverses, and matrix
// functions (exp, log, trigonometric and hyperbolic families) evaluated
// through truncated power series.
//
// What densemat brings together:
//
//   - Core data model: rectangular complex-valued matrices with validated
//     construction, 1-based public indexing, and slice/submatrix selection
//   - Elementary operations: row/column switch, scale and add-multiple,
//     plus Gauss–Jordan reduced row echelon form
//   - Linear-algebra core: determinant (Laplace expansion), minors,
//     cofactors, adjugate, inverse, trace, transpose, conjugate transpose
//   - Arithmetic: addition, multiplication, Hadamard and Kronecker
//     products, integer matrix powers and scalar-to-matrix powers
//   - Named factories: identity, zeros, ones, exchange, Hilbert, diagonal,
//     Vandermonde, Fourier
//   - Tolerance-aware elementwise comparison and boolean matrix algebra
//
// Why choose densemat?
//
//   - Small, clear contracts: every operation either returns a fresh
//     matrix or fails atomically with a sentinel error
//   - Pure Go: no cgo, no hidden deps, trivially safe for concurrent use
//   - Correctness-first: cofactor expansion and truncated series target
//     small matrices and exact semantics, not large-scale numerics
//
// Everything is organized under two subpackages:
//
//	matrix/        - data model, arithmetic, linear algebra, factories,
//	                 comparison & boolean logic
//	matrix/mathfn/ - power-series matrix functions (Exp, Log, Sin, ...)
//
// See matrix and matrix/mathfn package docs for usage patterns.
package densemat
