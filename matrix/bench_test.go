// Package matrix_test provides benchmarks for the block kernels and accessor,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/blockmul/matrix"
)

// benchSizes are the tile sizes to benchmark; typical cache blocks.
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkD *matrix.Dense
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			fillDenseRand(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 7)
			fillDenseRand(b, B, 9)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

// BenchmarkMul_Generic measures the At-driven fallback on the same inputs.
func BenchmarkMul_Generic(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 7)
			fillDenseRand(b, B, 9)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(hide{A}, hide{B})
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkGetSetBlock(b *testing.B) {
	const n = 512
	src := mustDense(b, n, n)
	fillDenseRand(b, src, 5)
	dst := mustDense(b, n, n)
	for _, k := range benchSizes {
		b.Run(fmt.Sprintf("k=%d", k), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				blk, err := matrix.GetBlock(src, k, k, k)
				if err != nil {
					b.Fatal(err)
				}
				if err = matrix.SetBlock(dst, 0, 0, blk); err != nil {
					b.Fatal(err)
				}
				sinkD = blk
			}
		})
	}
}
