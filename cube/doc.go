// Package cube implements the packed product-term algebra underlying
// two-level Boolean minimization.
//
// 🚀 What is a cube?
//
//	A product term over n ≤ 15 variables, packed into two machine words:
//
//	  Value — bit i holds the asserted polarity of the variable at
//	          minterm-index bit i
//	  Mask  — bit i set means that variable is free (spans both polarities)
//
//	A cube with k free variables covers 2^k minterms — a k-dimensional
//	sub-cube of the Boolean hypercube.  All algebra (adjacency merging,
//	minterm containment, literal counting) is pure bitwise arithmetic.
//
// ✨ Key operations:
//
//   - Merge       — combine two cubes adjacent along exactly one axis
//   - Contains    — minterm membership test in two instructions
//   - Literals    — literal count, the secondary minimization cost
//   - Key         — packed (Mask<<16)|Value canonical identity for dedup
//   - Minterms    — ascending expansion of the covered truth points
//
// Invariants (enforced by construction, checked in tests):
//
//	Value & Mask == 0            — a bit cannot be both forced and free
//	Value|Mask  < 1<<n           — bits outside the variable range are zero
//
// Bit ↔ variable convention: variable 0 is the MOST significant bit of the
// minterm index, matching standard K-map ordering (A above B above C …).
package cube
