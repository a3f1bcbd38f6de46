package minimize_test

import (
	"testing"

	"github.com/katalvlaran/boolmin/cube"
	"github.com/katalvlaran/boolmin/minimize"
	"github.com/katalvlaran/boolmin/qm"
)

// benchmarkMinimize times the full pipeline over a pseudo-random on-set.
func benchmarkMinimize(b *testing.B, n int, strategy qm.MergeStrategy, computePOS bool) {
	universe := int(cube.Universe(n)) + 1
	var ones []uint16
	state := uint32(0x6C078965)
	for m := 0; m < universe; m++ {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		if state&3 != 0 { // ~75% dense
			ones = append(ones, uint16(m))
		}
	}
	opts := minimize.DefaultOptions()
	opts.Strategy = strategy
	opts.ComputePOS = computePOS
	opts.EmitSteps = false

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := minimize.Minimize(n, ones, nil, opts); err != nil {
			b.Fatalf("Minimize failed: %v", err)
		}
	}
}

// BenchmarkMinimize_N6Full benchmarks both output forms at n=6.
func BenchmarkMinimize_N6Full(b *testing.B) {
	benchmarkMinimize(b, 6, qm.Auto, true)
}

// BenchmarkMinimize_N10DenseSOP is the 1-second-budget scenario: a dense
// 10-variable on-set, SOP only, hash-probe merging.
func BenchmarkMinimize_N10DenseSOP(b *testing.B) {
	benchmarkMinimize(b, 10, qm.Large, false)
}

// BenchmarkMinimize_N12SOP stresses generation width at n=12.
func BenchmarkMinimize_N12SOP(b *testing.B) {
	benchmarkMinimize(b, 12, qm.Large, false)
}
