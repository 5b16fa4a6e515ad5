// SPDX-License-Identifier: MIT

// Package matrix - constructors for the named matrix families.
//
// Purpose:
//   - Identity, Zeros, Ones, Exchange, Hilbert, Diagonal, Vandermonde,
//     MatrixUnit, Fourier.
//
// Behavior highlights:
//   - Size arguments must be strictly positive; a non-positive size is
//     rejected with ErrInvalidValue.
//   - All factories accept the usual functional options, so the produced
//     matrix carries the requested tolerance from birth.
package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ---------- error context tags ----------

const (
	ctxIdentity    = "Matrix.Identity"
	ctxZeros       = "Matrix.Zeros"
	ctxOnes        = "Matrix.Ones"
	ctxExchange    = "Matrix.Exchange"
	ctxHilbert     = "Matrix.Hilbert"
	ctxDiagonal    = "Matrix.Diagonal"
	ctxVandermonde = "Matrix.Vandermonde"
	ctxMatrixUnit  = "Matrix.MatrixUnit"
	ctxFourier     = "Matrix.Fourier"
)

// validateSize rejects non-positive extents for the named axis.
func validateSize(op, name string, n int) error {
	if n <= 0 {
		return fmt.Errorf("%s: %s %d must be positive: %w", op, name, n, ErrInvalidValue)
	}

	return nil
}

// Identity returns the n×n identity matrix Iₙ.
// Errors: ErrInvalidValue for n <= 0.
func Identity(n int, opts ...Option) (*Dense, error) {
	if err := validateSize(ctxIdentity, "size", n); err != nil {
		return nil, err
	}

	res := newDense(n, n, gatherOptions(opts...).eps)
	for i := 0; i < n; i++ {
		res.data[i*n+i] = 1
	}

	return res, nil
}

// Zeros returns a rows×cols matrix of zero entries.
// Errors: ErrInvalidValue for non-positive extents.
func Zeros(rows, cols int, opts ...Option) (*Dense, error) {
	if err := validateSize(ctxZeros, "rows", rows); err != nil {
		return nil, err
	}
	if err := validateSize(ctxZeros, "cols", cols); err != nil {
		return nil, err
	}

	return newDense(rows, cols, gatherOptions(opts...).eps), nil
}

// Ones returns a rows×cols matrix with every entry equal to 1.
// Errors: ErrInvalidValue for non-positive extents.
func Ones(rows, cols int, opts ...Option) (*Dense, error) {
	if err := validateSize(ctxOnes, "rows", rows); err != nil {
		return nil, err
	}
	if err := validateSize(ctxOnes, "cols", cols); err != nil {
		return nil, err
	}

	res := newDense(rows, cols, gatherOptions(opts...).eps)
	for k := range res.data {
		res.data[k] = 1
	}

	return res, nil
}

// Exchange returns the n×n exchange (anti-diagonal identity) matrix Jₙ.
// Errors: ErrInvalidValue for n <= 0.
func Exchange(n int, opts ...Option) (*Dense, error) {
	if err := validateSize(ctxExchange, "size", n); err != nil {
		return nil, err
	}

	res := newDense(n, n, gatherOptions(opts...).eps)
	for i := 0; i < n; i++ {
		res.data[i*n+(n-1-i)] = 1
	}

	return res, nil
}

// Hilbert returns the n×n Hilbert matrix H[i,j] = 1/(i+j-1) (1-based).
// Errors: ErrInvalidValue for n <= 0.
func Hilbert(n int, opts ...Option) (*Dense, error) {
	if err := validateSize(ctxHilbert, "size", n); err != nil {
		return nil, err
	}

	res := newDense(n, n, gatherOptions(opts...).eps)
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			res.data[(i-1)*n+(j-1)] = complex(1/float64(i+j-1), 0)
		}
	}

	return res, nil
}

// Diagonal returns a square matrix with the given values on the main
// diagonal and zeros elsewhere.
// Errors: ErrInvalidData for an empty value list.
func Diagonal(values []complex128, opts ...Option) (*Dense, error) {
	n := len(values)
	if n == 0 {
		return nil, fmt.Errorf("%s: empty diagonal: %w", ctxDiagonal, ErrInvalidData)
	}

	res := newDense(n, n, gatherOptions(opts...).eps)
	for i, v := range values {
		res.data[i*n+i] = v
	}

	return res, nil
}

// Vandermonde returns the n×n matrix V[i,j] = x[i]^(j-1): row i holds
// the geometric progression of the i-th node.
// Errors: ErrInvalidData for an empty node list.
func Vandermonde(nodes []complex128, opts ...Option) (*Dense, error) {
	n := len(nodes)
	if n == 0 {
		return nil, fmt.Errorf("%s: empty node list: %w", ctxVandermonde, ErrInvalidData)
	}

	res := newDense(n, n, gatherOptions(opts...).eps)
	for i, x := range nodes {
		p := complex(1, 0)
		for j := 0; j < n; j++ {
			res.data[i*n+j] = p
			p *= x
		}
	}

	return res, nil
}

// MatrixUnit returns the rows×cols matrix Eᵢⱼ with a single 1 at the
// (i, j) position (1-based) and zeros elsewhere.
// Errors: ErrInvalidValue for non-positive extents,
// ErrIndexOutOfBounds when (i, j) falls outside the shape.
func MatrixUnit(i, j, rows, cols int, opts ...Option) (*Dense, error) {
	if err := validateSize(ctxMatrixUnit, "rows", rows); err != nil {
		return nil, err
	}
	if err := validateSize(ctxMatrixUnit, "cols", cols); err != nil {
		return nil, err
	}
	if i < 1 || i > rows {
		return nil, fmt.Errorf("%s: row %d out of range [1, %d]: %w", ctxMatrixUnit, i, rows, ErrIndexOutOfBounds)
	}
	if j < 1 || j > cols {
		return nil, fmt.Errorf("%s: column %d out of range [1, %d]: %w", ctxMatrixUnit, j, cols, ErrIndexOutOfBounds)
	}

	res := newDense(rows, cols, gatherOptions(opts...).eps)
	res.data[(i-1)*cols+(j-1)] = 1

	return res, nil
}

// Fourier returns the n×n discrete Fourier matrix: the Vandermonde
// matrix of ω = exp(-2πi/n), F[i,j] = ω^((i-1)(j-1)). With scale set,
// every entry is divided by √n, which makes the result unitary.
// Errors: ErrInvalidValue for n <= 0.
func Fourier(n int, scale bool, opts ...Option) (*Dense, error) {
	if err := validateSize(ctxFourier, "size", n); err != nil {
		return nil, err
	}

	omega := cmplx.Exp(complex(0, -2*math.Pi/float64(n)))
	res := newDense(n, n, gatherOptions(opts...).eps)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			res.data[i*n+j] = cmplx.Pow(omega, complex(float64(i*j), 0))
		}
	}
	if scale {
		inv := complex(1/math.Sqrt(float64(n)), 0)
		for k := range res.data {
			res.data[k] *= inv
		}
	}

	return res, nil
}
