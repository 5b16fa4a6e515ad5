// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densemat/matrix"
)

// benchMatrix builds a deterministic n×n matrix for benchmarking.
func benchMatrix(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	data := make([][]complex128, n)
	for i := range data {
		data[i] = make([]complex128, n)
		for j := range data[i] {
			data[i][j] = complex(float64((i*31+j*17)%13)+1, 0)
		}
		// Diagonal dominance keeps the matrix invertible at every size.
		data[i][i] += complex(float64(13*n), 0)
	}
	m, err := matrix.New(data)
	if err != nil {
		b.Fatalf("New: %v", err)
	}

	return m
}

func BenchmarkMul(b *testing.B) {
	m := benchMatrix(b, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Mul(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRREF(b *testing.B) {
	m := benchMatrix(b, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.RREF()
	}
}

func BenchmarkDet(b *testing.B) {
	m := benchMatrix(b, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Det(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInverse(b *testing.B) {
	m := benchMatrix(b, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Inverse(); err != nil {
			b.Fatal(err)
		}
	}
}
