package primes_test

import (
	"testing"

	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/primes"
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

// TestPrimesConsensusSingleCube exercises the cl.Len()==1 leaf: the only
// prime implicant of a single cube is itself.
func TestPrimesConsensusSingleCube(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	f := newCover(t, d, parseCube(t, d, "1-"))

	out, err := primes.PrimesConsensus(d, f, primes.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 1, out.Len())
	assert.True(t, d.SetpEqual(out.At(0), parseCube(t, d, "1-")))
}

// TestPrimesConsensusTautologyIsFullset covers the VarsActive==1 leaf: a
// function covering the whole universe has exactly one prime implicant,
// the universal cube.
func TestPrimesConsensusTautologyIsFullset(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	f := newCover(t, d, parseCube(t, d, "1-"), parseCube(t, d, "0-"))

	out, err := primes.PrimesConsensus(d, f, primes.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 1, out.Len())
	assert.True(t, d.SetpFull(out.At(0)))
}

// TestPrimesConsensusColumnOfZeros exercises the column-of-zeros special
// case: f = (x0=1,x2=0) + (x0=0,x2=0) never sets x2's literal-1 part in
// either cube, so x2=0 factors out; the inner recursion (now unate with
// only x0 active) collapses to the universal cube, which gets ANDed back
// with the factored ceiling to give the single prime "--0" (f is really
// just x2').
func TestPrimesConsensusColumnOfZeros(t *testing.T) {
	d, err := cube.NewDescriptor(3, nil, 0)
	require.NoError(t, err)

	f := newCover(t, d, parseCube(t, d, "1-0"), parseCube(t, d, "0-0"))

	out, err := primes.PrimesConsensus(d, f, primes.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 1, out.Len())
	assert.True(t, d.SetpEqual(out.At(0), parseCube(t, d, "--0")))
}

// TestPrimesConsensusBinateSplitCoversEveryInputCube drives a genuinely
// binate 3-variable cover through a real split/merge/consensus pass and
// checks the covering invariant directly (every input cube's points are
// covered by some returned prime), since hand-tracing the heuristic split
// choice and flush-threshold bookkeeping cube by cube is impractical.
func TestPrimesConsensusBinateSplitCoversEveryInputCube(t *testing.T) {
	d, err := cube.NewDescriptor(3, nil, 0)
	require.NoError(t, err)

	f := newCover(t, d,
		parseCube(t, d, "10-"),
		parseCube(t, d, "01-"),
		parseCube(t, d, "--1"),
	)

	out, err := primes.PrimesConsensus(d, f, primes.DefaultOptions())
	require.NoError(t, err)
	require.Greater(t, out.Len(), 0)

	for i := 0; i < f.Len(); i++ {
		covered := false
		for j := 0; j < out.Len(); j++ {
			if d.SetpImplies(f.At(i), out.At(j)) {
				covered = true
				break
			}
		}
		assert.Truef(t, covered, "input cube %d not covered by any generated prime", i)
	}
}

// TestPrimesConsensusRespectsFlushThreshold checks a tiny FlushThreshold
// doesn't change the result, only how often the merge step folds its
// consensus buffer.
func TestPrimesConsensusRespectsFlushThreshold(t *testing.T) {
	d, err := cube.NewDescriptor(3, nil, 0)
	require.NoError(t, err)

	f := newCover(t, d,
		parseCube(t, d, "10-"),
		parseCube(t, d, "01-"),
		parseCube(t, d, "--1"),
	)

	full, err := primes.PrimesConsensus(d, f, primes.DefaultOptions())
	require.NoError(t, err)

	tiny, err := primes.PrimesConsensus(d, f, primes.Options{FlushThreshold: 1})
	require.NoError(t, err)

	require.Equal(t, full.Len(), tiny.Len())
}
