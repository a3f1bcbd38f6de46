// Package boolmin is an exact two-level Boolean minimizer for Go.
//
// 🚀 What is boolmin?
//
//	A deterministic library that takes a Boolean function of 2–15 variables
//	(on-set minterms plus optional don't-cares) and returns the provably
//	minimum-literal two-level cover in both SOP and POS form:
//
//	  • Prime implicants via bit-sliced Quine–McCluskey merging
//	  • Exact minimum cover via reductions + branch-and-bound
//	  • Rendered expressions, canonical Σm/ΠM forms, K-map groups
//
// ✨ Why choose boolmin?
//
//   - Exact             — never heuristic; ties broken deterministically
//   - Fast in practice  — hash-probed merging, dominance-pruned search
//   - Pure Go           — no cgo, a single test-only dependency
//   - Cancellable       — cooperative time budgets on every hot loop
//
// Everything is organized under four subpackages:
//
//	cube/     — packed product-term algebra (value/mask pairs)
//	qm/       — prime-implicant generation by iterated adjacency merging
//	cover/    — PI chart, dominance reductions, exact branch-and-bound
//	minimize/ — the public pipeline: validate → primes → cover → render
//
// Quick ASCII example, f(A,B,C) = Σm(0,2,5,7):
//
//	     BC
//	A    00 01 11 10
//	0  [  1  0  0  1 ]   →  A'C' + AC
//	1  [  0  1  1  0 ]
//
// See minimize.Minimize for the entry point and the Example functions in
// each package's example_test.go for walkthroughs.
//
//	go get github.com/katalvlaran/boolmin/minimize
package boolmin
