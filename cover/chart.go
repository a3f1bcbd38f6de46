// Package cover — PI chart construction and the packed column-set type.
package cover

import (
	"math/bits"
	"sort"

	"github.com/katalvlaran/boolmin/qm"
)

// colset is a fixed-width bitset over chart columns, one bit per required
// on-minterm. All solver set algebra (coverage subtraction, subset tests,
// cardinality) runs on whole words.
type colset []uint64

// newColset returns an all-zero set sized for n columns.
func newColset(n int) colset {
	return make(colset, (n+63)/64)
}

// set raises bit i.
func (s colset) set(i int) { s[i>>6] |= 1 << (uint(i) & 63) }

// has reports whether bit i is raised.
func (s colset) has(i int) bool { return s[i>>6]&(1<<(uint(i)&63)) != 0 }

// clear lowers bit i.
func (s colset) clear(i int) { s[i>>6] &^= 1 << (uint(i) & 63) }

// count returns the set cardinality.
func (s colset) count() int {
	c := 0
	for _, w := range s {
		c += bits.OnesCount64(w)
	}

	return c
}

// empty reports whether no bit is raised.
func (s colset) empty() bool {
	for _, w := range s {
		if w != 0 {
			return false
		}
	}

	return true
}

// clone returns a copy sharing no memory with s.
func (s colset) clone() colset {
	c := make(colset, len(s))
	copy(c, s)

	return c
}

// andNot clears from s every bit raised in t.
func (s colset) andNot(t colset) {
	for i := range s {
		s[i] &^= t[i]
	}
}

// intersects reports whether s and t share a raised bit.
func (s colset) intersects(t colset) bool {
	for i := range s {
		if s[i]&t[i] != 0 {
			return true
		}
	}

	return false
}

// countAnd returns |s ∩ t| without materializing the intersection.
func (s colset) countAnd(t colset) int {
	c := 0
	for i := range s {
		c += bits.OnesCount64(s[i] & t[i])
	}

	return c
}

// subsetOf reports whether every raised bit of s is raised in t.
func (s colset) subsetOf(t colset) bool {
	for i := range s {
		if s[i]&^t[i] != 0 {
			return false
		}
	}

	return true
}

// forEach invokes fn on every raised bit index in ascending order.
func (s colset) forEach(fn func(int)) {
	for wi, w := range s {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			fn(wi<<6 | b)
			w &= w - 1
		}
	}
}

// row is one chart row: a prime implicant, its packed column coverage,
// and its literal cost.
type row struct {
	pi   qm.PI
	cols colset
	lits int
}

// Chart is the bipartite PI/minterm incidence structure.
//
// Columns are the required on-minterms in ascending order; rows are prime
// implicants. colRows is the transposed index: for each column, the rows
// covering it.
type Chart struct {
	nvars   int
	cols    []uint16
	rows    []row
	colRows [][]int
}

// NewChart builds the chart for the given on-set and prime set.
//
// Contracts:
//   - ones are deduplicated and sorted internally; an empty on-set yields
//     an empty chart (solved trivially by Solve).
//   - pis must each cover at least one on-minterm (qm guarantees this).
//
// Errors: ErrUncoveredColumn when some required minterm is covered by no
// prime — impossible with a prime set generated from the same on-set,
// so it indicates inconsistent caller data.
//
// Complexity: O(|PI|·|ones|) time and chart memory.
func NewChart(nvars int, ones []uint16, pis []qm.PI) (*Chart, error) {
	// Canonical column order: ascending distinct minterms.
	cols := make([]uint16, 0, len(ones))
	seen := make(map[uint16]bool, len(ones))
	for _, m := range ones {
		if !seen[m] {
			seen[m] = true
			cols = append(cols, m)
		}
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i] < cols[j] })

	colIndex := make(map[uint16]int, len(cols))
	for i, m := range cols {
		colIndex[m] = i
	}

	ch := &Chart{
		nvars:   nvars,
		cols:    cols,
		rows:    make([]row, 0, len(pis)),
		colRows: make([][]int, len(cols)),
	}

	for _, pi := range pis {
		r := row{pi: pi, cols: newColset(len(cols)), lits: pi.Cube.Literals(nvars)}
		for _, m := range pi.Covers {
			if ci, ok := colIndex[m]; ok {
				r.cols.set(ci)
			}
		}
		ri := len(ch.rows)
		ch.rows = append(ch.rows, r)
		r.cols.forEach(func(ci int) {
			ch.colRows[ci] = append(ch.colRows[ci], ri)
		})
	}

	for _, rs := range ch.colRows {
		if len(rs) == 0 {
			return nil, ErrUncoveredColumn
		}
	}

	return ch, nil
}

// Columns returns the required minterms in chart order.
func (ch *Chart) Columns() []uint16 { return ch.cols }

// Essentials returns the indices of rows that uniquely cover some column
// of the original chart — the essential prime implicants, which appear in
// every minimum cover.
//
// Complexity: O(|cols|).
func (ch *Chart) Essentials() []int {
	mark := make([]bool, len(ch.rows))
	var out []int
	for _, rs := range ch.colRows {
		if len(rs) == 1 && !mark[rs[0]] {
			mark[rs[0]] = true
			out = append(out, rs[0])
		}
	}
	sort.Ints(out)

	return out
}
