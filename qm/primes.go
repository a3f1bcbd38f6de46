// Package qm — the generation engine.
//
// genEngine owns the per-call state of the iterated merge: the current
// cube generation, the dedup set for the next one, and the accumulating
// prime set. A dedicated engine struct (instead of closures) keeps the
// hot-path state explicit and the strategies independently testable.
package qm

import (
	"math/bits"
	"sort"
	"time"

	"github.com/katalvlaran/boolmin/cube"
)

// Primes returns every prime implicant of the function whose on-set is
// ones and whose don't-care set is dcs, over n variables.
//
// Contracts:
//   - n must satisfy cube.CheckVars.
//   - Every minterm must lie in [0, 2^n); ones and dcs must be disjoint.
//   - Input order is irrelevant; duplicates within a list are collapsed.
//
// Primes covering only don't-care points are discarded. The result is
// sorted by ascending canonical key and each PI carries its sorted
// on-set cover.
//
// Errors: cube.ErrVarsOutOfRange, cube.ErrMintermOutOfRange,
// ErrDuplicateInput, ErrTimeLimit.
//
// Complexity: bounded by n+1 generations; each generation costs O(k²)
// (Small) or O(k·n) (Large) merge attempts over its k live cubes, plus
// O(|PI|·|ones|) for the final cover computation.
func Primes(n int, ones, dcs []uint16, opts Options) ([]PI, error) {
	if err := cube.CheckVars(n); err != nil {
		return nil, err
	}
	universe := cube.Universe(n)

	// Seed generation 0: one point cube per distinct input minterm.
	onesSet := make(map[uint16]bool, len(ones))
	seen := make(map[uint16]bool, len(ones)+len(dcs))
	for _, m := range ones {
		if m > universe {
			return nil, cube.ErrMintermOutOfRange
		}
		onesSet[m] = true
		seen[m] = true
	}
	for _, m := range dcs {
		if m > universe {
			return nil, cube.ErrMintermOutOfRange
		}
		if onesSet[m] {
			return nil, ErrDuplicateInput
		}
		seen[m] = true
	}
	if len(onesSet) == 0 {
		// Contradiction (or all-don't-cares): no coverage is owed, so the
		// prime set is empty by the discard rule.
		return nil, nil
	}

	var e genEngine
	e.n = n
	e.universe = universe
	e.strategy = opts.Strategy.resolve(n)
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	e.current = make([]cube.Cube, 0, len(seen))
	for m := range seen {
		e.current = append(e.current, cube.Point(m))
	}
	// Canonical seed order keeps every downstream scan reproducible.
	sort.Slice(e.current, func(i, j int) bool { return e.current[i].Key() < e.current[j].Key() })

	if err := e.run(); err != nil {
		return nil, err
	}

	required := make([]uint16, 0, len(onesSet))
	for m := range onesSet {
		required = append(required, m)
	}
	sort.Slice(required, func(i, j int) bool { return required[i] < required[j] })

	return e.emit(required), nil
}

// genEngine holds one Primes invocation's merge state.
type genEngine struct {
	n        int
	universe uint16
	strategy MergeStrategy

	useDeadline bool
	deadline    time.Time

	// current is the live generation, canonically ordered.
	current []cube.Cube

	// primeKeys dedups emitted primes across generations.
	primeKeys map[uint32]bool
	primes    []cube.Cube
}

// run executes merge generations until none produces a new cube.
// The popcount of every mask strictly grows per generation, bounding the
// loop by n+1 rounds.
func (e *genEngine) run() error {
	e.primeKeys = make(map[uint32]bool)

	for len(e.current) > 0 {
		if e.useDeadline && time.Now().After(e.deadline) {
			return ErrTimeLimit
		}

		merged := make([]bool, len(e.current))
		nextKeys := make(map[uint32]bool)
		var next []cube.Cube

		deposit := func(c cube.Cube) {
			if k := c.Key(); !nextKeys[k] {
				nextKeys[k] = true
				next = append(next, c)
			}
		}

		// Bucket the generation by mask; only identical masks can merge.
		groups := e.maskGroups()
		for _, g := range groups {
			switch e.strategy {
			case Large:
				e.mergeHashed(g, merged, deposit)
			default:
				e.mergePairwise(g, merged, deposit)
			}
		}

		// Anything that merged with nothing is prime.
		for i, c := range e.current {
			if merged[i] {
				continue
			}
			if k := c.Key(); !e.primeKeys[k] {
				e.primeKeys[k] = true
				e.primes = append(e.primes, c)
			}
		}

		e.current = next
	}

	return nil
}

// maskGroups partitions current-generation indices by mask, groups sorted
// by ascending mask for reproducible scan order.
func (e *genEngine) maskGroups() [][]int {
	byMask := make(map[uint16][]int)
	for i, c := range e.current {
		byMask[c.Mask] = append(byMask[c.Mask], i)
	}
	masks := make([]int, 0, len(byMask))
	for m := range byMask {
		masks = append(masks, int(m))
	}
	sort.Ints(masks)

	out := make([][]int, 0, len(masks))
	for _, m := range masks {
		out = append(out, byMask[uint16(m)])
	}

	return out
}

// mergePairwise (Small strategy) classes a mask bucket by popcount(value)
// and attempts merges only between adjacent classes — the sole pairs that
// can differ in exactly one bit.
func (e *genEngine) mergePairwise(group []int, merged []bool, deposit func(cube.Cube)) {
	classes := make(map[int][]int)
	maxPop := 0
	for _, i := range group {
		p := bits.OnesCount16(e.current[i].Value)
		classes[p] = append(classes[p], i)
		if p > maxPop {
			maxPop = p
		}
	}

	var p, a, b int
	for p = 0; p < maxPop; p++ {
		lo, hi := classes[p], classes[p+1]
		if len(lo) == 0 || len(hi) == 0 {
			continue
		}
		for _, a = range lo {
			for _, b = range hi {
				if m, ok := cube.Merge(e.current[a], e.current[b]); ok {
					merged[a], merged[b] = true, true
					deposit(m)
				}
			}
		}
	}
}

// mergeHashed (Large strategy) indexes a mask bucket's values and probes,
// for every cube and every free axis, the value with that bit raised.
// Probing only upward visits each adjacent pair exactly once.
func (e *genEngine) mergeHashed(group []int, merged []bool, deposit func(cube.Cube)) {
	index := make(map[uint16]int, len(group))
	for _, i := range group {
		index[e.current[i].Value] = i
	}

	for _, i := range group {
		c := e.current[i]
		axes := e.universe &^ c.Mask
		for axes != 0 {
			bit := axes & (-axes)
			axes &^= bit
			if c.Value&bit != 0 {
				continue // only probe the 0→1 direction
			}
			j, ok := index[c.Value|bit]
			if !ok {
				continue
			}
			merged[i], merged[j] = true, true
			deposit(cube.Cube{Value: c.Value, Mask: c.Mask | bit})
		}
	}
}

// emit restricts every prime's coverage to the on-set, discards primes
// covering only don't-cares, and returns the survivors in canonical order.
// ones must be sorted ascending, so covers inherit that order.
func (e *genEngine) emit(ones []uint16) []PI {
	sort.Slice(e.primes, func(i, j int) bool { return e.primes[i].Key() < e.primes[j].Key() })

	out := make([]PI, 0, len(e.primes))
	for _, c := range e.primes {
		var covers []uint16
		for _, m := range ones {
			if c.Contains(m) {
				covers = append(covers, m)
			}
		}
		if len(covers) == 0 {
			continue
		}
		out = append(out, PI{Cube: c, Covers: covers})
	}

	return out
}
