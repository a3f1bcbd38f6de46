// Package cover — solver state and the reduction fixed point
// (essential extraction, row dominance, column dominance).
package cover

// state is one (sub)problem of the cover search: which rows are still
// candidates, which columns still need coverage, and what has been
// committed so far. Branching clones the state; reductions mutate it.
type state struct {
	alive     []bool
	remaining colset
	chosen    []int
}

// newState returns the root problem over the whole chart.
func (ch *Chart) newState() *state {
	st := &state{
		alive:     make([]bool, len(ch.rows)),
		remaining: newColset(len(ch.cols)),
	}
	for i := range st.alive {
		st.alive[i] = true
	}
	for i := range ch.cols {
		st.remaining.set(i)
	}

	return st
}

// clone returns a deep copy of st for an independent branch.
func (st *state) clone() *state {
	c := &state{
		alive:     make([]bool, len(st.alive)),
		remaining: st.remaining.clone(),
		chosen:    make([]int, len(st.chosen), len(st.chosen)+4),
	}
	copy(c.alive, st.alive)
	copy(c.chosen, st.chosen)

	return c
}

// selectRow commits row r: its columns stop needing coverage and the row
// leaves the candidate pool.
func (st *state) selectRow(ch *Chart, r int) {
	st.chosen = append(st.chosen, r)
	st.remaining.andNot(ch.rows[r].cols)
	st.alive[r] = false
}

// coveringRows returns the alive rows covering column ci, in ascending
// row order.
func (ch *Chart) coveringRows(st *state, ci int, buf []int) []int {
	buf = buf[:0]
	for _, r := range ch.colRows[ci] {
		if st.alive[r] {
			buf = append(buf, r)
		}
	}

	return buf
}

// reduce drives essential extraction and row/column dominance to a fixed
// point. Essentials may expose dominance and vice versa, so the passes
// alternate until a full round changes nothing.
//
// Complexity per round: O(|cols|·deg) essentials, O(|rows|²·words) row
// dominance, O(|cols|²·deg) column dominance.
func (ch *Chart) reduce(st *state) {
	var buf []int
	for {
		changed := false

		// Essential extraction: a remaining column with exactly one alive
		// covering row forces that row.
		for {
			forced := -1
			st.remaining.forEach(func(ci int) {
				if forced >= 0 {
					return
				}
				if rs := ch.coveringRows(st, ci, buf); len(rs) == 1 {
					forced = rs[0]
				}
			})
			if forced < 0 {
				break
			}
			st.selectRow(ch, forced)
			changed = true
		}

		// Drop rows contributing nothing to the remaining columns.
		for r := range ch.rows {
			if st.alive[r] && !ch.rows[r].cols.intersects(st.remaining) {
				st.alive[r] = false
				changed = true
			}
		}

		if ch.reduceRows(st) {
			changed = true
		}
		if ch.reduceCols(st) {
			changed = true
		}

		if !changed {
			return
		}
	}
}

// reduceRows removes dominated rows: i dominates j when j's remaining
// coverage is contained in i's and i costs no more literals. For fully
// interchangeable rows (equal coverage, equal literals) the smaller
// canonical key survives, keeping the pass deterministic.
func (ch *Chart) reduceRows(st *state) bool {
	changed := false
	for i := range ch.rows {
		if !st.alive[i] {
			continue
		}
		for j := range ch.rows {
			if i == j || !st.alive[j] {
				continue
			}
			if ch.rows[i].lits > ch.rows[j].lits {
				continue
			}
			if !subsetWithin(ch.rows[j].cols, ch.rows[i].cols, st.remaining) {
				continue
			}
			if ch.rows[i].lits == ch.rows[j].lits &&
				subsetWithin(ch.rows[i].cols, ch.rows[j].cols, st.remaining) &&
				ch.rows[i].pi.Cube.Key() > ch.rows[j].pi.Cube.Key() {
				continue // interchangeable pair: let the smaller key dominate
			}
			st.alive[j] = false
			changed = true
		}
	}

	return changed
}

// reduceCols removes dominated columns: when every alive row covering c2
// also covers c1, any cover of c2 covers c1 for free, so c1 drops.
// For columns with identical covering sets the lower minterm survives.
func (ch *Chart) reduceCols(st *state) bool {
	// Alive covering-row sets per remaining column, packed for subset tests.
	var cols []int
	st.remaining.forEach(func(ci int) { cols = append(cols, ci) })
	if len(cols) < 2 {
		return false
	}
	sets := make(map[int]colset, len(cols))
	for _, ci := range cols {
		s := newColset(len(ch.rows))
		for _, r := range ch.colRows[ci] {
			if st.alive[r] {
				s.set(r)
			}
		}
		sets[ci] = s
	}

	changed := false
	for _, c1 := range cols {
		if !st.remaining.has(c1) {
			continue
		}
		for _, c2 := range cols {
			if c1 == c2 || !st.remaining.has(c2) || !st.remaining.has(c1) {
				continue
			}
			if !sets[c2].subsetOf(sets[c1]) {
				continue
			}
			if sets[c1].subsetOf(sets[c2]) && c1 < c2 {
				continue // identical covering sets: keep the lower minterm
			}
			st.remaining.clear(c1)
			changed = true

			break
		}
	}

	return changed
}

// subsetWithin reports whether s∩rem ⊆ t, i.e. t covers everything s
// still contributes.
func subsetWithin(s, t, rem colset) bool {
	for i := range s {
		if s[i]&rem[i]&^t[i] != 0 {
			return false
		}
	}

	return true
}
