// Package cover — exact search over the cyclic core.
//
// Solve drives reductions first; whatever chart survives them is searched
// by a depth-first branch-and-bound with deterministic branching, a
// greedy-seeded upper bound, and an independent-set admissible lower
// bound. A dedicated engine struct keeps hot-path state explicit.
package cover

import (
	"sort"
	"time"

	"github.com/katalvlaran/boolmin/qm"
)

// Solve returns the exact minimum cover of the chart under the
// lexicographic cost (row count, total literals, canonical key list).
//
// Errors: ErrTimeLimit when the budget expires; the returned Solution
// then holds the best incumbent with Minimal=false.
//
// Complexity: reductions are polynomial; the core search is exponential
// in the cyclic-core size, heavily pruned in practice.
func (ch *Chart) Solve(opts Options) (Solution, error) {
	st := ch.newState()
	ch.reduce(st)

	if st.remaining.empty() {
		// Reductions alone solved the chart: the committed rows are the
		// unique forced minimum.
		return ch.solution(st.chosen, 0, true), nil
	}

	var e bbEngine
	e.ch = ch
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	// Greedy incumbent: a feasible cover before the search starts, so
	// pruning has a finite bound from node one.
	e.seedGreedy(st.clone())

	e.search(st)

	sol := ch.solution(e.bestRows, e.nodes, !e.timedOut)
	if e.timedOut {
		return sol, ErrTimeLimit
	}

	return sol, nil
}

// bbEngine holds one Solve invocation's search state.
type bbEngine struct {
	ch *Chart

	useDeadline bool
	deadline    time.Time
	steps       int
	timedOut    bool

	nodes int64

	// Incumbent (upper bound) under the lexicographic cost.
	bestRows []int
	bestLits int
}

// deadlineCheck performs a rare deadline test (every 256 node events).
func (e *bbEngine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || e.steps&255 != 0 {
		return false
	}
	if time.Now().After(e.deadline) {
		e.timedOut = true
	}

	return e.timedOut
}

// litsOf sums the literal cost of a chosen row set.
func (e *bbEngine) litsOf(rows []int) int {
	lits := 0
	for _, r := range rows {
		lits += e.ch.rows[r].lits
	}

	return lits
}

// keyList returns the ascending canonical keys of a chosen row set —
// the deterministic tertiary tie-break.
func (e *bbEngine) keyList(rows []int) []uint32 {
	ks := make([]uint32, len(rows))
	for i, r := range rows {
		ks[i] = e.ch.rows[r].pi.Cube.Key()
	}
	sort.Slice(ks, func(i, j int) bool { return ks[i] < ks[j] })

	return ks
}

// offerIncumbent replaces the incumbent when the candidate is strictly
// better under (count, literals, key list).
func (e *bbEngine) offerIncumbent(rows []int) {
	lits := e.litsOf(rows)
	if e.bestRows != nil {
		switch {
		case len(rows) > len(e.bestRows):
			return
		case len(rows) == len(e.bestRows) && lits > e.bestLits:
			return
		case len(rows) == len(e.bestRows) && lits == e.bestLits:
			a, b := e.keyList(rows), e.keyList(e.bestRows)
			for i := range a {
				if a[i] != b[i] {
					if a[i] > b[i] {
						return
					}

					break
				}
			}
			if equalKeys(a, b) {
				return
			}
		}
	}
	e.bestRows = append([]int(nil), rows...)
	e.bestLits = lits
}

// equalKeys reports element-wise equality of two equal-length key lists.
func equalKeys(a, b []uint32) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// seedGreedy builds the initial incumbent by repeated best-row selection:
// most new columns covered, then fewest literals, then smallest key.
func (e *bbEngine) seedGreedy(st *state) {
	for !st.remaining.empty() {
		best, bestCover := -1, 0
		for r := range e.ch.rows {
			if !st.alive[r] {
				continue
			}
			cov := e.ch.rows[r].cols.countAnd(st.remaining)
			if cov == 0 {
				continue
			}
			if best < 0 || cov > bestCover ||
				(cov == bestCover && e.ch.rows[r].lits < e.ch.rows[best].lits) ||
				(cov == bestCover && e.ch.rows[r].lits == e.ch.rows[best].lits &&
					e.ch.rows[r].pi.Cube.Key() < e.ch.rows[best].pi.Cube.Key()) {
				best, bestCover = r, cov
			}
		}
		if best < 0 {
			return // unreachable on a validated chart
		}
		st.selectRow(e.ch, best)
	}
	e.offerIncumbent(st.chosen)
}

// lowerBound computes an admissible independent-set bound: repeatedly
// take the most-constrained remaining column, charge one row for it, and
// discard every column any of its covering rows could also serve. No two
// charged columns share a row, so any cover needs at least that many rows.
func (e *bbEngine) lowerBound(st *state) int {
	rem := st.remaining.clone()
	var buf []int
	lb := 0
	for !rem.empty() {
		pick, pickDeg := -1, 0
		rem.forEach(func(ci int) {
			rs := e.ch.coveringRows(st, ci, buf)
			if pick < 0 || len(rs) < pickDeg {
				pick, pickDeg = ci, len(rs)
			}
		})
		lb++
		for _, r := range e.ch.colRows[pick] {
			if st.alive[r] {
				rem.andNot(e.ch.rows[r].cols)
			}
		}
		rem.clear(pick)
	}

	return lb
}

// search is the core DFS. Each node re-runs the reductions, bounds, picks
// the most-constrained column, and branches over its covering rows in
// descending coverage-per-literal order.
func (e *bbEngine) search(st *state) {
	e.nodes++
	if e.timedOut || e.deadlineCheck() {
		return
	}

	ch := e.ch
	ch.reduce(st)

	if st.remaining.empty() {
		e.offerIncumbent(st.chosen)

		return
	}

	// Prune on count; an equal count is still explored because it may
	// improve the literal tie-break.
	if len(st.chosen)+e.lowerBound(st) > len(e.bestRows) {
		return
	}

	// Most-constrained column, lowest minterm on ties.
	var buf []int
	branch, branchDeg := -1, 0
	st.remaining.forEach(func(ci int) {
		rs := ch.coveringRows(st, ci, buf)
		if branch < 0 || len(rs) < branchDeg {
			branch, branchDeg = ci, len(rs)
		}
	})
	if branch < 0 {
		return
	}

	cands := ch.coveringRows(st, branch, nil)
	// Descending coverage-per-literal; integer cross-multiplication keeps
	// the order exact. Ties: fewer literals, then smaller key.
	sort.SliceStable(cands, func(i, j int) bool {
		ri, rj := cands[i], cands[j]
		ci := ch.rows[ri].cols.countAnd(st.remaining)
		cj := ch.rows[rj].cols.countAnd(st.remaining)
		li, lj := ch.rows[ri].lits, ch.rows[rj].lits
		if li == 0 {
			li = 1
		}
		if lj == 0 {
			lj = 1
		}
		if ci*lj != cj*li {
			return ci*lj > cj*li
		}
		if ch.rows[ri].lits != ch.rows[rj].lits {
			return ch.rows[ri].lits < ch.rows[rj].lits
		}

		return ch.rows[ri].pi.Cube.Key() < ch.rows[rj].pi.Cube.Key()
	})

	for _, r := range cands {
		child := st.clone()
		child.selectRow(ch, r)
		e.search(child)
		if e.timedOut {
			return
		}
	}
}

// solution materializes a Solution from chosen row indices.
func (ch *Chart) solution(chosen []int, nodes int64, minimal bool) Solution {
	rows := make([]qm.PI, 0, len(chosen))
	lits := 0
	idx := append([]int(nil), chosen...)
	sort.Slice(idx, func(i, j int) bool {
		return ch.rows[idx[i]].pi.Cube.Key() < ch.rows[idx[j]].pi.Cube.Key()
	})
	for _, r := range idx {
		rows = append(rows, ch.rows[r].pi)
		lits += ch.rows[r].lits
	}

	return Solution{Rows: rows, Literals: lits, Nodes: nodes, Minimal: minimal}
}
