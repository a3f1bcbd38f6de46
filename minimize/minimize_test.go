package minimize_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/boolmin/minimize"
	"github.com/katalvlaran/boolmin/qm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run is a test helper for the common success path.
func run(t *testing.T, n int, ones, dcs []uint16) *minimize.Result {
	t.Helper()
	res, err := minimize.Minimize(n, ones, dcs, minimize.DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Minimal, "uncancelled runs must be proven minimal")

	return res
}

// TestMinimize_ThreeVarTwoEssentials: f = Σm(0,2,5,7), the textbook case
// with two essential prime edges.
func TestMinimize_ThreeVarTwoEssentials(t *testing.T) {
	res := run(t, 3, []uint16{0, 2, 5, 7}, nil)

	assert.Equal(t, "A'C' + AC", res.MinimalSOP)
	assert.Equal(t, "(A + C')(A' + C)", res.MinimalPOS)
	assert.Equal(t, "Σm(0, 2, 5, 7)", res.CanonicalSOP)
	assert.Equal(t, "ΠM(1, 3, 4, 6)", res.CanonicalPOS)

	require.Len(t, res.PrimeImplicants, 2)
	for _, pi := range res.PrimeImplicants {
		assert.True(t, pi.Essential, "both primes are essential here")
	}
	require.Len(t, res.Selected, 2)
	assert.Equal(t, 2, res.Counts.Selected)
	assert.Equal(t, 2, res.Counts.Essentials)
}

// TestMinimize_FourVarTwoLiterals: f = Σm(0..3,5,7,8..11,13,15) reduces
// to the two single-literal products B' + D.
func TestMinimize_FourVarTwoLiterals(t *testing.T) {
	ones := []uint16{0, 1, 2, 3, 5, 7, 8, 9, 10, 11, 13, 15}
	res := run(t, 4, ones, nil)

	assert.Equal(t, "B' + D", res.MinimalSOP)
	assert.Equal(t, "(B' + D)", res.MinimalPOS)
	require.Len(t, res.Selected, 2)
}

// TestMinimize_DontCaresAbsorbed: f = Σm(1,3,7,11,15) + d(0,2,5) — the
// don't-cares enlarge A'B' to a full quad.
func TestMinimize_DontCaresAbsorbed(t *testing.T) {
	res := run(t, 4, []uint16{1, 3, 7, 11, 15}, []uint16{0, 2, 5})

	assert.Equal(t, "A'B' + CD", res.MinimalSOP)
	assert.Equal(t, "Σm(1, 3, 7, 11, 15) + d(0, 2, 5)", res.CanonicalSOP)
	assert.Equal(t, "ΠM(4, 6, 8, 9, 10, 12, 13, 14) + d(0, 2, 5)", res.CanonicalPOS)
	require.Len(t, res.Selected, 2)
}

// TestMinimize_Tautology: the full on-set renders as the constant 1 in
// both forms.
func TestMinimize_Tautology(t *testing.T) {
	res := run(t, 2, []uint16{0, 1, 2, 3}, nil)

	assert.Equal(t, "1", res.MinimalSOP)
	assert.Equal(t, "1", res.MinimalPOS)
	require.Len(t, res.Selected, 1)
	assert.Equal(t, "Σm(0, 1, 2, 3)", res.CanonicalSOP)
	assert.Equal(t, "ΠM()", res.CanonicalPOS)
}

// TestMinimize_Contradiction: the empty on-set renders as the constant 0.
func TestMinimize_Contradiction(t *testing.T) {
	res := run(t, 2, nil, nil)

	assert.Equal(t, "0", res.MinimalSOP)
	assert.Equal(t, "0", res.MinimalPOS)
	assert.Empty(t, res.Selected)
	assert.Empty(t, res.PrimeImplicants)
	assert.Equal(t, "Σm()", res.CanonicalSOP)
}

// TestMinimize_FiveVarThreeQuads: f = Σm(1..7) over five variables needs
// exactly three quads, and no two of them suffice.
func TestMinimize_FiveVarThreeQuads(t *testing.T) {
	ones := []uint16{1, 2, 3, 4, 5, 6, 7}
	res := run(t, 5, ones, nil)

	require.Len(t, res.Selected, 3, "three prime quads are required")
	assert.Equal(t, "A'B'E + A'B'D + A'B'C", res.MinimalSOP)

	// Any two of the selected cubes must miss some required minterm.
	for skip := range res.Selected {
		missing := false
		for _, m := range ones {
			hit := false
			for i, c := range res.Selected {
				if i != skip && c.Contains(m) {
					hit = true

					break
				}
			}
			if !hit {
				missing = true

				break
			}
		}
		assert.True(t, missing, "dropping cube %d must break coverage", skip)
	}
}

// TestMinimize_AllDontCares: every point indifferent means nothing is
// owed — the function minimizes to 0.
func TestMinimize_AllDontCares(t *testing.T) {
	res := run(t, 2, nil, []uint16{0, 1, 2, 3})

	assert.Equal(t, "0", res.MinimalSOP)
	assert.Empty(t, res.Selected)
}

// TestMinimize_SingleMinterm keeps all n literals.
func TestMinimize_SingleMinterm(t *testing.T) {
	res := run(t, 3, []uint16{5}, nil)

	assert.Equal(t, "AB'C", res.MinimalSOP)
	require.Len(t, res.Selected, 1)
	assert.Equal(t, 3, res.Selected[0].Literals(3))
}

// TestMinimize_CheckerboardN4: the 4-variable parity function admits no
// merges — eight 4-literal products.
func TestMinimize_CheckerboardN4(t *testing.T) {
	var ones []uint16
	for m := uint16(0); m < 16; m++ {
		if (m>>3^m>>2^m>>1^m)&1 == 1 {
			ones = append(ones, m)
		}
	}
	res := run(t, 4, ones, nil)

	require.Len(t, res.Selected, 8)
	for _, c := range res.Selected {
		assert.Equal(t, 4, c.Literals(4), "parity products keep every literal")
	}
	assert.Equal(t, 8, res.Counts.Primes, "no prime exceeds one minterm")
}

// TestMinimize_MaxtermInput: listing the off-set must minimize the
// complementary on-set. ΠM(0,1,2,3 missing)… here maxterms {0,3} of a
// 2-variable function leave the on-set {1,2}.
func TestMinimize_MaxtermInput(t *testing.T) {
	opts := minimize.DefaultOptions()
	opts.MaxtermInput = true
	res, err := minimize.Minimize(2, []uint16{0, 3}, nil, opts)
	require.NoError(t, err)

	assert.Equal(t, "A'B + AB'", res.MinimalSOP)
	assert.Equal(t, "Σm(1, 2)", res.CanonicalSOP)
	assert.Equal(t, 2, res.Counts.Minterms)
}

// TestMinimize_VariableNames: custom names flow through both renderings;
// missing entries fall back to the alphabet.
func TestMinimize_VariableNames(t *testing.T) {
	opts := minimize.DefaultOptions()
	opts.VariableNames = []string{"x", "y", "z"}
	res, err := minimize.Minimize(3, []uint16{0, 2, 5, 7}, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, "x'z' + xz", res.MinimalSOP)
	assert.Equal(t, "(x + z')(x' + z)", res.MinimalPOS)

	opts.VariableNames = []string{"x"}
	res, err = minimize.Minimize(3, []uint16{0, 2, 5, 7}, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, "x'C' + xC", res.MinimalSOP, "missing names default to the alphabet")
}

// TestMinimize_ValidationErrors exercises the public error taxonomy.
func TestMinimize_ValidationErrors(t *testing.T) {
	opts := minimize.DefaultOptions()

	_, err := minimize.Minimize(1, []uint16{0}, nil, opts)
	assert.ErrorIs(t, err, minimize.ErrInvalidNVars)

	_, err = minimize.Minimize(16, []uint16{0}, nil, opts)
	assert.ErrorIs(t, err, minimize.ErrInvalidNVars)

	_, err = minimize.Minimize(3, []uint16{8}, nil, opts)
	assert.ErrorIs(t, err, minimize.ErrInvalidMinterm)

	_, err = minimize.Minimize(3, []uint16{1}, []uint16{9}, opts)
	assert.ErrorIs(t, err, minimize.ErrInvalidMinterm)

	_, err = minimize.Minimize(3, []uint16{1, 2}, []uint16{2, 4}, opts)
	assert.ErrorIs(t, err, minimize.ErrOverlap)
}

// TestMinimize_UnsortedDuplicatedInput verifies the defensive
// canonicalization: order and duplicates must not change the result.
func TestMinimize_UnsortedDuplicatedInput(t *testing.T) {
	ref := run(t, 3, []uint16{0, 2, 5, 7}, nil)
	res := run(t, 3, []uint16{7, 0, 5, 2, 0, 7}, nil)
	assert.Equal(t, ref.MinimalSOP, res.MinimalSOP)
	assert.Equal(t, ref.Selected, res.Selected)
	assert.Equal(t, ref.CanonicalSOP, res.CanonicalSOP)
}

// TestMinimize_Cancelled: an immediate deadline cancels the run, flags
// the result non-minimal, and still returns the partial result.
func TestMinimize_Cancelled(t *testing.T) {
	var ones []uint16
	for m := uint16(0); m < 1<<12; m += 3 {
		ones = append(ones, m)
	}
	opts := minimize.DefaultOptions()
	opts.TimeLimit = time.Nanosecond
	res, err := minimize.Minimize(12, ones, nil, opts)
	require.ErrorIs(t, err, minimize.ErrCancelled)
	require.NotNil(t, res, "cancellation returns the partial result")
	assert.False(t, res.Minimal)
	assert.NotEmpty(t, res.CanonicalSOP, "canonical forms precede the heavy stages")
}

// TestMinimize_GroupsAndSteps checks the visualizer annotations and the
// trace switches.
func TestMinimize_GroupsAndSteps(t *testing.T) {
	res := run(t, 3, []uint16{0, 2, 5, 7}, nil)
	require.Len(t, res.Groups, 2)
	assert.Equal(t, []uint16{0, 2}, res.Groups[0].Cells)
	assert.Equal(t, []uint16{5, 7}, res.Groups[1].Cells)
	assert.Equal(t, uint8(0), res.Groups[0].ColorIndex)
	assert.Equal(t, uint8(1), res.Groups[1].ColorIndex)
	assert.NotEmpty(t, res.Steps)

	opts := minimize.DefaultOptions()
	opts.EmitSteps = false
	opts.ComputePOS = false
	quiet, err := minimize.Minimize(3, []uint16{0, 2, 5, 7}, nil, opts)
	require.NoError(t, err)
	assert.Empty(t, quiet.Steps, "EmitSteps=false suppresses the trace")
	assert.Empty(t, quiet.MinimalPOS, "ComputePOS=false skips the complement pass")
	assert.Equal(t, res.MinimalSOP, quiet.MinimalSOP)
}

// TestMinimize_StrategyTelemetry: Auto resolves by arity and is reported.
func TestMinimize_StrategyTelemetry(t *testing.T) {
	res := run(t, 3, []uint16{0, 2, 5, 7}, nil)
	assert.Equal(t, qm.Small, res.Counts.Strategy)

	var ones []uint16
	for m := uint16(0); m < 1<<9; m += 2 {
		ones = append(ones, m)
	}
	big := run(t, 9, ones, nil)
	assert.Equal(t, qm.Large, big.Counts.Strategy)
}
