// Package minimize - the unified pipeline entry point.
//
// Minimize validates its inputs, generates prime implicants, solves the
// exact cover, and renders every output form. The POS expression comes
// from a second primes+cover pass over the complement on-set; both
// passes share one wall-clock budget.
package minimize

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/boolmin/cover"
	"github.com/katalvlaran/boolmin/cube"
	"github.com/katalvlaran/boolmin/qm"
)

// Minimize returns the exact minimum-literal two-level cover of the
// function over nVars variables whose on-set is ones and whose
// don't-care set is dontCares.
//
// Contracts:
//   - nVars ∈ [2, 15]; every minterm in [0, 2^nVars); ones and
//     dontCares disjoint. Order and duplicates are tolerated.
//   - With opts.MaxtermInput, ones lists the off-set instead and the
//     on-set is derived by complementation.
//
// Errors: ErrInvalidNVars, ErrInvalidMinterm, ErrOverlap,
// ErrUncoverableMinterm, ErrCancelled (with a partial Result), and
// ErrInternal for assertion-class failures.
//
// The call is pure: no I/O, no shared state, safe for concurrent use.
func Minimize(nVars int, ones, dontCares []uint16, opts Options) (*Result, error) {
	startAt := time.Now()

	onesIn, dcs, err := validateInputs(nVars, ones, dontCares)
	if err != nil {
		return nil, err
	}
	if opts.MaxtermInput {
		// Maxterm mode: the caller listed the off-set; minimize the rest.
		onesIn = complementOf(nVars, onesIn, dcs)
	}

	names := variableNames(nVars, opts.VariableNames)
	outName := opts.OutputName
	if outName == "" {
		outName = DefaultOutputName
	}

	var deadline time.Time
	useDeadline := opts.TimeLimit > 0
	if useDeadline {
		deadline = startAt.Add(opts.TimeLimit)
	}

	zeros := complementOf(nVars, onesIn, dcs)

	res := &Result{
		CanonicalSOP: canonicalSOP(onesIn, dcs),
		CanonicalPOS: canonicalPOS(zeros, dcs),
		Minimal:      true,
	}
	res.Counts.Minterms = len(onesIn)
	res.Counts.DontCares = len(dcs)
	res.Counts.Strategy = resolvedStrategy(nVars, opts.Strategy)

	step := func(format string, args ...any) {
		if opts.EmitSteps {
			res.Steps = append(res.Steps, fmt.Sprintf(format, args...))
		}
	}
	step("%s = %s over %d variables: %d minterms, %d don't-cares",
		outName, res.CanonicalSOP, nVars, len(onesIn), len(dcs))

	// SOP pass.
	sop, err := runPass(nVars, onesIn, dcs, opts.Strategy, deadline, useDeadline)
	res.Timings.Primes += sop.tPrimes
	res.Timings.Chart += sop.tChart
	res.Timings.Cover += sop.tCover
	res.Counts.Nodes += sop.sol.Nodes
	if err != nil {
		// A cover-stage timeout still carries the best incumbent; keep it
		// in the partial result rather than discarding finished work.
		if len(sop.sol.Rows) > 0 {
			partial := make([]cube.Cube, 0, len(sop.sol.Rows))
			for _, r := range sop.sol.Rows {
				partial = append(partial, r.Cube)
			}
			res.Selected = sortCubes(partial)
			res.Counts.Selected = len(res.Selected)
			res.MinimalSOP = renderSOP(res.Selected, nVars, names)
			res.Groups = buildGroups(res.Selected, onesIn)
		}
		res.Minimal = false
		res.Timings.Total = time.Since(startAt)

		return finishCancelled(res, err)
	}

	essential := make(map[int]bool, len(sop.essen))
	for _, ri := range sop.essen {
		essential[ri] = true
	}
	res.PrimeImplicants = make([]PrimeImplicant, len(sop.pis))
	for i, pi := range sop.pis {
		res.PrimeImplicants[i] = PrimeImplicant{
			Cube:      pi.Cube,
			Essential: essential[i],
			Covers:    pi.Covers,
		}
	}
	res.Counts.Primes = len(sop.pis)
	res.Counts.Essentials = len(sop.essen)
	step("%d prime implicants, %d essential", len(sop.pis), len(sop.essen))

	selected := make([]cube.Cube, 0, len(sop.sol.Rows))
	for _, r := range sop.sol.Rows {
		selected = append(selected, r.Cube)
	}
	res.Selected = sortCubes(selected)
	res.Counts.Selected = len(res.Selected)
	res.Minimal = sop.sol.Minimal
	if sop.sol.Nodes > 0 {
		step("cyclic core searched: %d branch-and-bound nodes", sop.sol.Nodes)
	} else {
		step("cover solved by essentials and dominance alone")
	}

	renderAt := time.Now()
	res.MinimalSOP = renderSOP(res.Selected, nVars, names)
	res.Groups = buildGroups(res.Selected, onesIn)
	res.Timings.Render += time.Since(renderAt)
	step("minimum SOP: %s = %s (%d products, %d literals)",
		outName, res.MinimalSOP, len(res.Selected), sop.sol.Literals)

	// POS pass: minimize the complement, render dually.
	if opts.ComputePOS {
		pos, perr := runPass(nVars, zeros, dcs, opts.Strategy, deadline, useDeadline)
		res.Timings.Primes += pos.tPrimes
		res.Timings.Chart += pos.tChart
		res.Timings.Cover += pos.tCover
		res.Counts.Nodes += pos.sol.Nodes
		if perr != nil {
			res.Minimal = false
			res.Timings.Total = time.Since(startAt)

			return finishCancelled(res, perr)
		}

		posSel := make([]cube.Cube, 0, len(pos.sol.Rows))
		for _, r := range pos.sol.Rows {
			posSel = append(posSel, r.Cube)
		}
		renderAt = time.Now()
		res.MinimalPOS = renderPOS(posSel, nVars, names)
		res.Timings.Render += time.Since(renderAt)
		step("minimum POS: %s = %s", outName, res.MinimalPOS)
	}

	res.Timings.Total = time.Since(startAt)

	return res, nil
}

// passOut bundles one primes+chart+cover pass.
type passOut struct {
	pis   []qm.PI
	essen []int
	sol   cover.Solution

	tPrimes time.Duration
	tChart  time.Duration
	tCover  time.Duration
}

// runPass executes primes → chart → cover over one on-set, charging all
// stages against the shared deadline.
func runPass(n int, ones, dcs []uint16, strategy qm.MergeStrategy, deadline time.Time, useDeadline bool) (passOut, error) {
	var out passOut

	qopts := qm.Options{Strategy: strategy}
	if useDeadline {
		rem := time.Until(deadline)
		if rem <= 0 {
			return out, qm.ErrTimeLimit
		}
		qopts.TimeLimit = rem
	}

	stageAt := time.Now()
	pis, err := qm.Primes(n, ones, dcs, qopts)
	out.tPrimes = time.Since(stageAt)
	if err != nil {
		return out, err
	}
	out.pis = pis

	stageAt = time.Now()
	ch, err := cover.NewChart(n, ones, pis)
	out.tChart = time.Since(stageAt)
	if err != nil {
		return out, err
	}
	out.essen = ch.Essentials()

	copts := cover.Options{}
	if useDeadline {
		rem := time.Until(deadline)
		if rem <= 0 {
			return out, cover.ErrTimeLimit
		}
		copts.TimeLimit = rem
	}
	stageAt = time.Now()
	out.sol, err = ch.Solve(copts)
	out.tCover = time.Since(stageAt)

	return out, err
}

// finishCancelled maps stage errors onto the public taxonomy, keeping
// the partial result for time-limit cancellations.
func finishCancelled(res *Result, err error) (*Result, error) {
	switch {
	case errors.Is(err, qm.ErrTimeLimit), errors.Is(err, cover.ErrTimeLimit):
		return res, ErrCancelled
	case errors.Is(err, cover.ErrUncoveredColumn):
		return nil, ErrUncoverableMinterm
	default:
		// Stage-level validation errors cannot occur after validateInputs;
		// anything else is an internal invariant violation.
		return nil, ErrInternal
	}
}

// resolvedStrategy mirrors qm's Auto resolution for telemetry.
func resolvedStrategy(n int, s qm.MergeStrategy) qm.MergeStrategy {
	if s != qm.Auto {
		return s
	}
	if n <= qm.AutoThreshold {
		return qm.Small
	}

	return qm.Large
}
