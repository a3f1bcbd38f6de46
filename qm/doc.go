// Package qm generates all prime implicants of a Boolean function by
// bit-sliced iterated adjacency merging (the tabular Quine–McCluskey pass).
//
// 🚀 How it works
//
//	Every on-minterm and don't-care seeds a zero-dimensional cube.  Each
//	generation buckets the surviving cubes by (mask, popcount(value)) —
//	only cubes with an identical free-variable mask whose value popcounts
//	differ by one can possibly be adjacent — merges every adjacent pair
//	into the next generation, and emits any cube that merged with nothing
//	as a prime implicant.  The mask popcount strictly grows per
//	generation, so the loop runs at most n+1 rounds.
//
// ✨ Key properties:
//
//   - Bit-sliced   — cubes are (value, mask) word pairs; a merge attempt
//     is a handful of ALU ops with no per-comparison allocation
//   - Stream-dedup — next-generation cubes are keyed by canonical
//     (mask<<16)|value identity, never materializing duplicate pairs
//   - Don't-cares  — absorbed as merge fuel, but never owed coverage:
//     each prime's Covers set is restricted to the on-set
//   - Two merge strategies (see MergeStrategy): pairwise class scan for
//     small n, hash-probed one-bit neighbors for large n
//
// Output is deterministic: primes are returned in ascending canonical-key
// order regardless of strategy.
package qm
