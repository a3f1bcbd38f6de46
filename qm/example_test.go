package qm_test

import (
	"fmt"

	"github.com/katalvlaran/boolmin/qm"
)

// //////////////////////////////////////////////////////////////////////////////
// ExamplePrimes
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Generate the primes of f(A,B,C) = Σm(0,2,5,7) — the textbook case
//	where iterated merging finds exactly two prime edges, A'C' and AC.
//
// Use case:
//
//	Feeding a PI chart for exact cover selection, or listing primes in a
//	teaching tool.
//
// Complexity: ≤ n+1 merge generations over the seeded minterms.
func ExamplePrimes() {
	pis, err := qm.Primes(3, []uint16{0, 2, 5, 7}, nil, qm.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, pi := range pis {
		fmt.Printf("value=%03b mask=%03b covers=%v\n", pi.Cube.Value, pi.Cube.Mask, pi.Covers)
	}
	// Output:
	// value=000 mask=010 covers=[0 2]
	// value=101 mask=010 covers=[5 7]
}
