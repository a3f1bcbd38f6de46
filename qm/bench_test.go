package qm_test

import (
	"testing"

	"github.com/katalvlaran/boolmin/cube"
	"github.com/katalvlaran/boolmin/qm"
)

// benchmarkPrimes runs generation over a dense pseudo-random on-set of the
// given arity with the given strategy.
func benchmarkPrimes(b *testing.B, n int, strategy qm.MergeStrategy) {
	universe := int(cube.Universe(n)) + 1
	var ones []uint16
	state := uint32(0xB5297A4D)
	for m := 0; m < universe; m++ {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		if state&3 != 0 { // ~75% dense on-set
			ones = append(ones, uint16(m))
		}
	}
	opts := qm.Options{Strategy: strategy}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := qm.Primes(n, ones, nil, opts); err != nil {
			b.Fatalf("Primes failed: %v", err)
		}
	}
}

// BenchmarkPrimes_SmallN8 benchmarks the pairwise class scan at n=8.
func BenchmarkPrimes_SmallN8(b *testing.B) {
	benchmarkPrimes(b, 8, qm.Small)
}

// BenchmarkPrimes_LargeN8 benchmarks the hash-probe strategy at n=8.
func BenchmarkPrimes_LargeN8(b *testing.B) {
	benchmarkPrimes(b, 8, qm.Large)
}

// BenchmarkPrimes_LargeN10 exercises the dense n=10 budget scenario.
func BenchmarkPrimes_LargeN10(b *testing.B) {
	benchmarkPrimes(b, 10, qm.Large)
}

// BenchmarkPrimes_LargeN12 stresses bucket growth at n=12.
func BenchmarkPrimes_LargeN12(b *testing.B) {
	benchmarkPrimes(b, 12, qm.Large)
}
