// Package minimize is the public entry point of boolmin: exact
// minimum-literal two-level minimization of a Boolean function given by
// its on-set minterms and optional don't-cares.
//
// 🚀 What you get
//
//	One call — Minimize(n, ones, dontCares, opts) — returns:
//
//	  • every prime implicant, with essentials marked
//	  • the exact minimum SOP cover and its rendered expression
//	  • the exact minimum POS expression (a second pass over the off-set)
//	  • canonical Σm/ΠM forms with the don't-care suffix
//	  • K-map group annotations with stable color indices
//	  • a human-readable step trace plus stage timings and counts
//
// ✨ Guarantees:
//
//   - Exact and deterministic — identical inputs produce identical
//     results, strings included; ties broken canonically
//   - Pure — no global state, no I/O; safe to call from any goroutine,
//     in parallel, with no coordination
//   - Cancellable — Options.TimeLimit is polled cooperatively; on expiry
//     the best cover found so far is returned with ErrCancelled and
//     Result.Minimal=false
//
// Pipeline: validate → qm.Primes → cover.NewChart → cover.Solve →
// render; POS repeats the middle stages over the complement on-set.
//
// Convention: variable 0 is the most significant bit of the minterm
// index (K-map order), and default names are A, B, C, …
package minimize
