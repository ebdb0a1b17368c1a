package espresso_test

import (
	"testing"

	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/espresso"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCube(t *testing.T, d *cube.Descriptor, lits string) cube.Cube {
	t.Helper()
	c := d.NewCube()
	for v, ch := range lits {
		switch ch {
		case '1':
			require.NoError(t, d.SetPart(&c, v, 1))
		case '0':
			require.NoError(t, d.SetPart(&c, v, 0))
		case '-':
			require.NoError(t, d.SetVarFull(&c, v))
		default:
			t.Fatalf("bad literal %q", ch)
		}
	}
	return c
}

func newCover(t *testing.T, d *cube.Descriptor, cubes ...cube.Cube) *cube.Cover {
	t.Helper()
	cov := d.NewCover(len(cubes))
	for _, c := range cubes {
		cov.Add(c)
	}
	return cov
}

func coveredMinterms(t *testing.T, d *cube.Descriptor, cov *cube.Cover) map[string]bool {
	t.Helper()
	out := map[string]bool{}
	for _, m := range []string{"00", "01", "10", "11"} {
		mc := parseCube(t, d, m)
		for i := 0; i < cov.Len(); i++ {
			if d.SetpImplies(mc, cov.At(i)) {
				out[m] = true
				break
			}
		}
	}
	return out
}

// TestCoverCostCountsZerosAndPrimes: two cubes over x+y ("-1" and "1-"),
// neither flagged PRIME. "-1" has one zero (x=0 excluded) and "1-" has one
// zero (y=0 excluded), so In = 2; Primes = 0 since neither carries the flag.
func TestCoverCostCountsZerosAndPrimes(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	f := newCover(t, d, parseCube(t, d, "-1"), parseCube(t, d, "1-"))

	cost := espresso.CoverCost(d, f)
	assert.Equal(t, 2, cost.Cubes)
	assert.Equal(t, 2, cost.In)
	assert.Equal(t, 0, cost.Primes)
	assert.Equal(t, 0, cost.Out)
	assert.Equal(t, 0, cost.Mv)
	assert.Equal(t, cost.In+cost.Out+cost.Mv, cost.Total)
}

// TestCoverCostCountsPrimeFlaggedCubes: cover_cost's own code counts cubes
// that ARE flagged PRIME (its comment, calling this "nonprime cubes",
// contradicts the code it sits above) — this test pins the literal,
// code-matching behavior.
func TestCoverCostCountsPrimeFlaggedCubes(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	p := parseCube(t, d, "-1")
	p.SetFlag(cube.FlagPrime)
	f := newCover(t, d, p, parseCube(t, d, "1-"))

	cost := espresso.CoverCost(d, f)
	assert.Equal(t, 1, cost.Primes)
}

// TestEspressoHeuristicMinimizesRedundantPair: F = {"-1","1-","10"} over
// x+y covers {01,10,11}; "1-" and "10" are partially redundant, so the
// heuristic schedule should settle on 2 cubes without losing coverage.
func TestEspressoHeuristicMinimizesRedundantPair(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	f := newCover(t, d, parseCube(t, d, "-1"), parseCube(t, d, "1-"), parseCube(t, d, "10"))
	don := d.NewCover(0)
	r := newCover(t, d, parseCube(t, d, "00"))

	out, err := espresso.Espresso(d, f, don, r, espresso.DefaultOptions())
	require.NoError(t, err)
	assert.LessOrEqual(t, out.Len(), 2)
	assert.Equal(t, map[string]bool{"01": true, "10": true, "11": true}, coveredMinterms(t, d, out))
}

// TestEspressoSingleExpandStopsAfterFirstPass: with SingleExpand set, the
// schedule must still produce a cover of the same function (expand +
// irredundant alone are already correctness-preserving), just without the
// reduce/gasp refinement the default schedule would also attempt.
func TestEspressoSingleExpandStopsAfterFirstPass(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	f := newCover(t, d, parseCube(t, d, "-1"), parseCube(t, d, "1-"), parseCube(t, d, "10"))
	don := d.NewCover(0)
	r := newCover(t, d, parseCube(t, d, "00"))

	opts := espresso.DefaultOptions()
	opts.SingleExpand = true

	out, err := espresso.Espresso(d, f, don, r, opts)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"01": true, "10": true, "11": true}, coveredMinterms(t, d, out))
}

// TestEspressoUnknownAlgorithmErrors: an Algorithm value outside the
// Heuristic/Exact enum is rejected rather than silently defaulting.
func TestEspressoUnknownAlgorithmErrors(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	f := newCover(t, d, parseCube(t, d, "-1"))
	don := d.NewCover(0)
	r := d.NewCover(0)

	opts := espresso.DefaultOptions()
	opts.Algorithm = espresso.Algorithm(99)

	_, err = espresso.Espresso(d, f, don, r, opts)
	assert.ErrorIs(t, err, espresso.ErrUnknownAlgorithm)
}

// TestMinimizeExactFindsMinimumCover: the same redundant-pair function,
// solved by exact prime enumeration plus an exact covering problem, must
// also converge to 2 cubes without losing coverage.
func TestMinimizeExactFindsMinimumCover(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	f := newCover(t, d, parseCube(t, d, "-1"), parseCube(t, d, "1-"), parseCube(t, d, "10"))
	don := d.NewCover(0)
	r := newCover(t, d, parseCube(t, d, "00"))

	opts := espresso.DefaultOptions()
	opts.Algorithm = espresso.Exact

	out, err := espresso.Espresso(d, f, don, r, opts)
	require.NoError(t, err)
	assert.LessOrEqual(t, out.Len(), 2)
	assert.Equal(t, map[string]bool{"01": true, "10": true, "11": true}, coveredMinterms(t, d, out))
}

// TestMakeSparseNoSparseVariablesIsANoOp: with no variable marked sparse,
// mv_reduce's per-variable loop never runs, so MakeSparse should return the
// same function unchanged.
func TestMakeSparseNoSparseVariablesIsANoOp(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	f := newCover(t, d, parseCube(t, d, "-1"), parseCube(t, d, "1-"))
	don := d.NewCover(0)
	r := newCover(t, d, parseCube(t, d, "00"))

	out, err := espresso.MakeSparse(d, f, don, r)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"01": true, "10": true, "11": true}, coveredMinterms(t, d, out))
}

// TestMakeSparseKeepsNecessarySparseParts: a single-variable, three-valued
// universe with no binary variables. F = {cube covering parts 0 and 1},
// D = {}, R = {cube covering part 2}. The one cube is already the unique
// maximal prime (dropping either part would lose coverage R doesn't already
// exclude), so marking the variable sparse must not shrink it further —
// mv_reduce's own irredundant sub-check has nothing to eliminate here.
func TestMakeSparseKeepsNecessarySparseParts(t *testing.T) {
	d, err := cube.NewDescriptor(0, []cube.VarSpec{{PartSize: 3}}, 0)
	require.NoError(t, err)
	d.Sparse[0] = true

	c := d.NewCube()
	require.NoError(t, d.SetPart(&c, 0, 0))
	require.NoError(t, d.SetPart(&c, 0, 1))
	f := newCover(t, d, c)

	don := d.NewCover(0)
	rc := d.NewCube()
	require.NoError(t, d.SetPart(&rc, 0, 2))
	r := newCover(t, d, rc)

	out, err := espresso.MakeSparse(d, f, don, r)
	require.NoError(t, err)
	require.Equal(t, 1, out.Len())

	for _, part := range []int{0, 1} {
		in, terr := d.BitTest(out.At(0), part)
		require.NoError(t, terr)
		assert.True(t, in, "part %d should still be covered", part)
	}
}
