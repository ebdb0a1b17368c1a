package reduce_test

import (
	"testing"

	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/reduce"
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

// TestReduceSingleCubeUnchanged exercises the case with nothing else to
// cofactor against: reduce_cube's restricted cube list is always empty, so
// Sccc's empty-list leaf returns the universal cube and the AND with p
// leaves p unchanged.
func TestReduceSingleCubeUnchanged(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	f := newCover(t, d, parseCube(t, d, "1-"))

	out, err := reduce.Reduce(d, f, nil, reduce.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 1, out.Len())
	assert.True(t, d.SetpEqual(out.At(0), parseCube(t, d, "1-")))
	assert.True(t, out.At(0).HasFlag(cube.FlagPrime))
}

// TestReduceDisjointMintermsUnchanged covers a cover of pairwise-disjoint
// fully-specified minterms: reduce_cube's cofactor against any other
// minterm always empties the restricted cube list (two distinct points
// never share a part on every variable), so every cube reduces to itself
// regardless of which of the other three it is checked against. This holds
// independent of the bit-level SCCC arithmetic, so it is a safe structural
// invariant to assert without hand-tracing the algorithm's internals.
func TestReduceDisjointMintermsUnchanged(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	f := newCover(t, d,
		parseCube(t, d, "00"),
		parseCube(t, d, "01"),
		parseCube(t, d, "10"),
		parseCube(t, d, "11"),
	)

	out, err := reduce.Reduce(d, f, nil, reduce.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, f.Len(), out.Len())

	for i := 0; i < out.Len(); i++ {
		found := false
		for j := 0; j < f.Len(); j++ {
			if d.SetpEqual(out.At(i), f.At(j)) {
				found = true
				break
			}
		}
		assert.Truef(t, found, "reduced cube %d matches no input minterm", i)
		assert.True(t, out.At(i).HasFlag(cube.FlagPrime))
	}
}

// TestReduceAlternateOrderingSameSize exercises the MiniSort-descending
// ordering path, checking it still produces a cover of the same size over
// the same (pairwise-disjoint, hence shrink-proof) input.
func TestReduceAlternateOrderingSameSize(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	f := newCover(t, d,
		parseCube(t, d, "00"),
		parseCube(t, d, "01"),
		parseCube(t, d, "10"),
		parseCube(t, d, "11"),
	)

	out, err := reduce.Reduce(d, f, nil, reduce.Options{AlternateOrdering: true})
	require.NoError(t, err)
	require.Equal(t, f.Len(), out.Len())
}

// TestReduceEmptyDontCareDefaultsToEmptyCover checks Reduce accepts a nil
// don't-care set (the common case of no don't-cares supplied) without a
// nil-pointer fault.
func TestReduceEmptyDontCareDefaultsToEmptyCover(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	f := newCover(t, d, parseCube(t, d, "1-"), parseCube(t, d, "01"))

	out, err := reduce.Reduce(d, f, nil, reduce.DefaultOptions())
	require.NoError(t, err)
	require.GreaterOrEqual(t, out.Len(), 1)
}
