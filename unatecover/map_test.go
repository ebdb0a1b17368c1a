package unatecover_test

import (
	"testing"

	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/unatecover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseUnateCube(t *testing.T, d *cube.Descriptor, lits string) cube.Cube {
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

// TestMapCoverToUnateThenComplementMatchesDeMorgan exercises the realistic
// pipeline compl_special_cases uses (map to unate form, complement, map
// back): a unate cover of "var0 must be 1, var1 don't care" complements to
// "var0 must be 0, var1 don't care".
func TestMapCoverToUnateThenComplementMatchesDeMorgan(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	cl := d.NewCubeList(d.NewCube(), []cube.Cube{
		parseUnateCube(t, d, "1-"),
		parseUnateCube(t, d, "1-"),
	})

	f, cols := unatecover.MapCoverToUnate(d, cl)
	require.Len(t, cols, 1) // var0's literal-0 part is the unate column

	complF := unatecover.UnateCompl(f)
	back := unatecover.MapUnateToCover(d, complF, cols)

	require.Equal(t, 1, back.Len())
	assert.True(t, d.SetpEqual(back.At(0), parseUnateCube(t, d, "0-")))
}

func TestMapCoverToUnateIgnoresCofactorFixedParts(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	// Fixing var0's literal-0 part via the cofactor removes it from
	// consideration entirely, leaving no unate column for var0.
	cof := d.NewCube()
	require.NoError(t, d.SetPart(&cof, 0, 0))

	cl := d.NewCubeList(cof, []cube.Cube{
		parseUnateCube(t, d, "1-"),
		parseUnateCube(t, d, "1-"),
	})

	_, cols := unatecover.MapCoverToUnate(d, cl)
	assert.Empty(t, cols)
}

func TestMapCoverToUnateDetectsDisagreeingVariable(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	cl := d.NewCubeList(d.NewCube(), []cube.Cube{
		parseUnateCube(t, d, "1-"),
		parseUnateCube(t, d, "0-"),
	})

	f, cols := unatecover.MapCoverToUnate(d, cl)
	require.Len(t, cols, 2)
	require.Equal(t, 2, f.NCols)
	require.Equal(t, 2, f.Len())
}
