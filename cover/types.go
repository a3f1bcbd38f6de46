// Package cover defines chart/solver types, options, and sentinel errors.
package cover

import (
	"errors"
	"time"

	"github.com/katalvlaran/boolmin/qm"
)

// Sentinel errors for chart construction and solver governance.
var (
	// ErrUncoveredColumn indicates a required minterm no prime covers;
	// with primes generated from the same on-set this is structurally
	// impossible and signals caller corruption.
	ErrUncoveredColumn = errors.New("cover: minterm has no covering prime implicant")

	// ErrTimeLimit indicates the cooperative time budget expired during
	// the cover search.
	ErrTimeLimit = errors.New("cover: time limit exceeded")
)

// Options configures the exact cover search.
type Options struct {
	// TimeLimit bounds wall-clock time; polled sparsely at node
	// expansion. Zero means no limit.
	TimeLimit time.Duration
}

// DefaultOptions returns solver defaults: unlimited time.
func DefaultOptions() Options {
	return Options{TimeLimit: 0}
}

// Solution is the outcome of an exact cover search.
type Solution struct {
	// Rows are the selected prime implicants in canonical key order.
	Rows []qm.PI

	// Literals is the total literal count of Rows — the secondary cost.
	Literals int

	// Nodes counts branch-and-bound node expansions (0 when reductions
	// alone solved the chart).
	Nodes int64

	// Minimal is false only when the time budget expired and Rows holds
	// the best incumbent rather than a proven minimum.
	Minimal bool
}
