// Package minimize defines the public options, result types, and the
// error taxonomy of the minimization pipeline.
package minimize

import (
	"errors"
	"time"

	"github.com/katalvlaran/boolmin/cover"
	"github.com/katalvlaran/boolmin/cube"
	"github.com/katalvlaran/boolmin/qm"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors (validation, feasibility, governance)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

var (
	// ErrInvalidNVars indicates a variable count outside [2, 15].
	ErrInvalidNVars = errors.New("minimize: variable count out of range")

	// ErrInvalidMinterm indicates a minterm or don't-care outside [0, 2^n).
	ErrInvalidMinterm = errors.New("minimize: minterm out of range")

	// ErrOverlap indicates a minterm listed both as required and don't-care.
	ErrOverlap = errors.New("minimize: minterm present in both ones and don't-cares")

	// ErrUncoverableMinterm mirrors cover.ErrUncoveredColumn: a required
	// minterm no prime implicant contains — inconsistent caller data.
	ErrUncoverableMinterm = cover.ErrUncoveredColumn

	// ErrCancelled indicates the time budget expired; the accompanying
	// Result holds the best work completed, with Minimal=false.
	ErrCancelled = errors.New("minimize: cancelled by time limit")

	// ErrInternal indicates an assertion-class bug inside the pipeline.
	ErrInternal = errors.New("minimize: internal invariant violated")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & defaults
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// DefaultOutputName is used when Options.OutputName is empty.
const DefaultOutputName = "F"

// groupPalette is the number of distinct K-map group colors; color
// indices cycle through it in selection order.
const groupPalette = 8

// Options configures a Minimize call.
// Zero value is usable; DefaultOptions spells out the defaults.
type Options struct {
	// VariableNames holds up to n identifiers, variable 0 first (the most
	// significant bit of the minterm index). Missing or empty entries
	// default to A, B, C, …; extras are ignored.
	VariableNames []string

	// OutputName labels the function in the step trace. Default: "F".
	OutputName string

	// ComputePOS enables the complement pass producing MinimalPOS.
	// Default: true.
	ComputePOS bool

	// EmitSteps enables the human-readable Steps trace. Default: true.
	EmitSteps bool

	// MaxtermInput treats the ones argument as the off-set (maxterm
	// list): the on-set becomes everything else outside the don't-cares.
	MaxtermInput bool

	// TimeLimit bounds wall-clock time across all stages; zero means no
	// limit. Polled before each merge generation and sparsely at
	// branch-and-bound nodes.
	TimeLimit time.Duration

	// Strategy selects the prime-generation merge strategy (see qm).
	Strategy qm.MergeStrategy
}

// DefaultOptions returns production defaults: both output forms, step
// trace on, minterm input, automatic strategy, no time limit.
func DefaultOptions() Options {
	return Options{
		VariableNames: nil,
		OutputName:    DefaultOutputName,
		ComputePOS:    true,
		EmitSteps:     true,
		MaxtermInput:  false,
		TimeLimit:     0,
		Strategy:      qm.Auto,
	}
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Results
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// PrimeImplicant is one row of the PI listing: the cube, whether it is
// essential (uniquely covers some required minterm), and the sorted
// on-minterms it covers.
type PrimeImplicant struct {
	Cube      cube.Cube
	Essential bool
	Covers    []uint16
}

// Group annotates one selected cube for a K-map visualizer: the on-set
// cells it covers and a stable palette index.
type Group struct {
	Cells      []uint16
	ColorIndex uint8
}

// Timings records wall-clock stage durations, POS pass included.
type Timings struct {
	Primes time.Duration
	Chart  time.Duration
	Cover  time.Duration
	Render time.Duration
	Total  time.Duration
}

// Counts records pipeline cardinalities for telemetry.
type Counts struct {
	// Minterms and DontCares are the validated input sizes (after
	// maxterm conversion, when requested).
	Minterms  int
	DontCares int

	// Primes, Essentials, and Selected describe the SOP pass.
	Primes     int
	Essentials int
	Selected   int

	// Nodes totals branch-and-bound expansions across both passes.
	Nodes int64

	// Strategy is the concrete merge strategy that ran (never Auto).
	Strategy qm.MergeStrategy
}

// Result is the complete outcome of one Minimize call.
type Result struct {
	// PrimeImplicants lists every prime of the function in canonical
	// order, essentials marked.
	PrimeImplicants []PrimeImplicant

	// Selected is the minimum SOP cover in canonical order.
	Selected []cube.Cube

	// MinimalSOP and MinimalPOS are the rendered minimum expressions;
	// "1" for a tautology, "0" for a contradiction.
	MinimalSOP string
	MinimalPOS string

	// CanonicalSOP and CanonicalPOS are the Σm/ΠM listings with the
	// don't-care suffix when present.
	CanonicalSOP string
	CanonicalPOS string

	// Groups annotates the selected cubes for a K-map renderer.
	Groups []Group

	// Steps is the human-readable trace (empty unless EmitSteps).
	Steps []string

	Timings Timings
	Counts  Counts

	// Minimal is false only when the run was cancelled and the covers
	// are best-so-far rather than proven minima.
	Minimal bool
}
