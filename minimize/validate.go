// Package minimize - input validation shared by the pipeline.
//
// Small, deterministic, side-effect-free helpers: only sentinel errors,
// no panics on user input.
package minimize

import (
	"sort"

	"github.com/katalvlaran/boolmin/cube"
)

// validateInputs checks arity, minterm ranges, and on/dc disjointness,
// returning defensive sorted-deduplicated copies of both lists.
//
// Complexity: O((|ones|+|dcs|) log) time for the canonical sort.
func validateInputs(n int, ones, dcs []uint16) (onesOut, dcsOut []uint16, err error) {
	if cube.CheckVars(n) != nil {
		return nil, nil, ErrInvalidNVars
	}
	universe := cube.Universe(n)

	onesSet := make(map[uint16]bool, len(ones))
	for _, m := range ones {
		if m > universe {
			return nil, nil, ErrInvalidMinterm
		}
		onesSet[m] = true
	}
	dcsSet := make(map[uint16]bool, len(dcs))
	for _, m := range dcs {
		if m > universe {
			return nil, nil, ErrInvalidMinterm
		}
		if onesSet[m] {
			return nil, nil, ErrOverlap
		}
		dcsSet[m] = true
	}

	onesOut = sortedKeys(onesSet)
	dcsOut = sortedKeys(dcsSet)

	return onesOut, dcsOut, nil
}

// sortedKeys flattens a minterm set into an ascending slice.
func sortedKeys(set map[uint16]bool) []uint16 {
	out := make([]uint16, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// complementOf returns universe \ ones \ dcs in ascending order — the
// off-set of the function. Both inputs must be sorted and disjoint.
//
// Complexity: O(2^n).
func complementOf(n int, ones, dcs []uint16) []uint16 {
	universe := int(cube.Universe(n)) + 1
	drop := make([]bool, universe)
	for _, m := range ones {
		drop[m] = true
	}
	for _, m := range dcs {
		drop[m] = true
	}
	out := make([]uint16, 0, universe-len(ones)-len(dcs))
	for m := 0; m < universe; m++ {
		if !drop[m] {
			out = append(out, uint16(m))
		}
	}

	return out
}

// variableNames materializes the n display names: caller-provided
// entries first, alphabet defaults (A, B, C, …) for the rest.
func variableNames(n int, given []string) []string {
	names := make([]string, n)
	for i := 0; i < n; i++ {
		if i < len(given) && given[i] != "" {
			names[i] = given[i]

			continue
		}
		names[i] = string(rune('A' + i))
	}

	return names
}
