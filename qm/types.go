// Package qm defines configuration options, result types, and sentinel
// errors for prime-implicant generation.
package qm

import (
	"errors"
	"time"

	"github.com/katalvlaran/boolmin/cube"
)

// Sentinel errors for generation governance.
var (
	// ErrTimeLimit indicates the cooperative time budget expired before
	// prime generation completed.
	ErrTimeLimit = errors.New("qm: time limit exceeded")

	// ErrDuplicateInput indicates a minterm listed in both the on-set and
	// the don't-care set.
	ErrDuplicateInput = errors.New("qm: minterm present in both ones and don't-cares")
)

// MergeStrategy selects how adjacent cube pairs are discovered inside a
// mask bucket. Both strategies are exact and yield identical prime sets.
type MergeStrategy int

const (
	// Auto picks Small for n ≤ AutoThreshold and Large above it.
	Auto MergeStrategy = iota

	// Small scans candidate pairs across adjacent popcount classes.
	// O(k²) pair attempts per bucket; lowest constant factor for small k.
	Small

	// Large hash-probes each cube's one-bit-up neighbors in a value set.
	// O(k·n) probes per bucket; wins when buckets grow into the thousands.
	Large
)

// AutoThreshold is the arity at which Auto switches from Small to Large.
const AutoThreshold = 8

// PI is a prime implicant: a maximal cube together with the sorted on-set
// minterms it covers. Don't-care points absorbed during merging are not
// listed — they are never owed coverage.
type PI struct {
	Cube   cube.Cube
	Covers []uint16
}

// Options configures prime generation.
// Zero value is usable; DefaultOptions is provided for symmetry with the
// rest of the module.
type Options struct {
	// Strategy selects the pair-discovery scheme. Default: Auto.
	Strategy MergeStrategy

	// TimeLimit bounds wall-clock time; the budget is polled before each
	// merge generation. Zero means no limit.
	TimeLimit time.Duration
}

// DefaultOptions returns generation defaults: automatic strategy
// selection and no time budget.
func DefaultOptions() Options {
	return Options{
		Strategy:  Auto,
		TimeLimit: 0,
	}
}

// resolve maps Auto onto a concrete strategy for arity n.
func (s MergeStrategy) resolve(n int) MergeStrategy {
	if s != Auto {
		return s
	}
	if n <= AutoThreshold {
		return Small
	}

	return Large
}
