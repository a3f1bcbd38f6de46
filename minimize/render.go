// Package minimize - expression rendering: minimum SOP/POS strings,
// canonical Σm/ΠM forms, and K-map group annotations.
package minimize

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/boolmin/cube"
)

// varBit returns the minterm-index bit of variable i: variable 0 is the
// most significant of the n positions.
func varBit(n, i int) uint16 {
	return uint16(1) << (n - 1 - i)
}

// sortCubes orders a selection canonically: ascending (Value, Mask).
// Rendering, groups, and the public Selected list all share this order,
// which keeps every output deterministic.
func sortCubes(sel []cube.Cube) []cube.Cube {
	out := append([]cube.Cube(nil), sel...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value < out[j].Value
		}

		return out[i].Mask < out[j].Mask
	})

	return out
}

// renderSOP renders a selected cover as a sum of products.
// The empty cover is the contradiction "0"; a cover containing the
// all-free cube is the tautology "1".
func renderSOP(sel []cube.Cube, n int, names []string) string {
	if len(sel) == 0 {
		return "0"
	}
	var b strings.Builder
	for ti, c := range sortCubes(sel) {
		if c.Mask == cube.Universe(n) {
			return "1"
		}
		if ti > 0 {
			b.WriteString(" + ")
		}
		for i := 0; i < n; i++ {
			bit := varBit(n, i)
			if c.Mask&bit != 0 {
				continue
			}
			b.WriteString(names[i])
			if c.Value&bit == 0 {
				b.WriteByte('\'')
			}
		}
	}

	return b.String()
}

// renderPOS renders the complement function's minimum cover as a product
// of sums: each complement product becomes a sum with every literal
// negated. An empty complement cover means the function is the tautology
// "1"; a complement tautology means the function is the contradiction "0".
func renderPOS(complementSel []cube.Cube, n int, names []string) string {
	if len(complementSel) == 0 {
		return "1"
	}
	var b strings.Builder
	for _, c := range sortCubes(complementSel) {
		if c.Mask == cube.Universe(n) {
			return "0"
		}
		b.WriteByte('(')
		first := true
		for i := 0; i < n; i++ {
			bit := varBit(n, i)
			if c.Mask&bit != 0 {
				continue
			}
			if !first {
				b.WriteString(" + ")
			}
			first = false
			b.WriteString(names[i])
			if c.Value&bit != 0 {
				b.WriteByte('\'')
			}
		}
		b.WriteByte(')')
	}

	return b.String()
}

// mintermList renders "a, b, c" from a sorted slice.
func mintermList(ms []uint16) string {
	var b strings.Builder
	for i, m := range ms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(int(m)))
	}

	return b.String()
}

// canonicalSOP renders the Σm listing with the optional don't-care tail.
func canonicalSOP(ones, dcs []uint16) string {
	s := "Σm(" + mintermList(ones) + ")"
	if len(dcs) > 0 {
		s += " + d(" + mintermList(dcs) + ")"
	}

	return s
}

// canonicalPOS renders the ΠM listing over the off-set with the optional
// don't-care tail.
func canonicalPOS(zeros, dcs []uint16) string {
	s := "ΠM(" + mintermList(zeros) + ")"
	if len(dcs) > 0 {
		s += " + d(" + mintermList(dcs) + ")"
	}

	return s
}

// buildGroups annotates the selected cover for a K-map renderer: one
// group per cube in canonical order, cells restricted to on-minterms,
// colors cycling a fixed palette.
func buildGroups(sel []cube.Cube, ones []uint16) []Group {
	out := make([]Group, 0, len(sel))
	for i, c := range sortCubes(sel) {
		var cells []uint16
		for _, m := range ones {
			if c.Contains(m) {
				cells = append(cells, m)
			}
		}
		out = append(out, Group{Cells: cells, ColorIndex: uint8(i % groupPalette)})
	}

	return out
}
