// Package cover solves the exact unate covering problem over a
// prime-implicant chart: pick the fewest primes (then fewest literals)
// whose union contains every required on-minterm.
//
// 🚀 How it works
//
//	Columns are the on-minterms that must be covered; rows are prime
//	implicants with their column sets packed into word-wide bitsets.
//	Solving proceeds in three stages:
//
//	  1. Essential extraction — a column covered by exactly one row
//	     forces that row into the solution.
//	  2. Dominance reduction  — a row whose coverage is contained in a
//	     cheaper row's is dropped; a column whose covering rows contain
//	     another column's is dropped.  Both alternate to a fixed point.
//	  3. Branch-and-bound     — whatever cyclic core remains is searched
//	     exactly: most-constrained column first, candidates in
//	     coverage-per-literal order, a greedy-seeded upper bound, an
//	     independent-set admissible lower bound, and the reductions
//	     re-run inside every node.
//
// ✨ Guarantees:
//
//   - Exact          — the returned cover is minimum under the
//     lexicographic cost (row count, total literals, canonical key list)
//   - Deterministic  — identical inputs yield the identical Solution,
//     including tie-breaks
//   - Cancellable    — a time budget is polled sparsely at node
//     expansion; on expiry the best incumbent is returned, flagged
//     non-minimal
//
// The chart is bipartite and acyclic; all state lives in the solver and
// is released when Solve returns.
package cover
