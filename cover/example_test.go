package cover_test

import (
	"fmt"

	"github.com/katalvlaran/boolmin/cover"
	"github.com/katalvlaran/boolmin/qm"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleChart_Solve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Cover the 6-cycle Σm(0,1,2,5,6,7) over 3 variables: six prime edges,
//	no essentials, a genuine cyclic core solved by branch-and-bound.
//
// Use case:
//
//	The second half of exact two-level minimization — selecting which
//	primes actually appear in the minimum expression.
//
// Complexity: reductions polynomial; search exponential in the core.
func ExampleChart_Solve() {
	ones := []uint16{0, 1, 2, 5, 6, 7}
	pis, err := qm.Primes(3, ones, nil, qm.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	ch, err := cover.NewChart(3, ones, pis)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	sol, err := ch.Solve(cover.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("primes=%d selected=%d literals=%d minimal=%v\n",
		len(pis), len(sol.Rows), sol.Literals, sol.Minimal)
	for _, r := range sol.Rows {
		fmt.Printf("value=%03b mask=%03b covers=%v\n", r.Cube.Value, r.Cube.Mask, r.Covers)
	}
	// Output:
	// primes=6 selected=3 literals=6 minimal=true
	// value=000 mask=001 covers=[0 1]
	// value=101 mask=010 covers=[5 7]
	// value=010 mask=100 covers=[2 6]
}
