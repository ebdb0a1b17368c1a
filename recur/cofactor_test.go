package recur_test

import (
	"testing"

	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/recur"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCofactorFiltersAndUpdatesCofactorCube(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	a := parseCube(t, d, "1-")
	b := parseCube(t, d, "01")
	cl := d.NewCubeList(d.NewCube(), []cube.Cube{a, b})

	c := parseCube(t, d, "10")
	out := recur.Cofactor(d, cl, c)

	// Only a (Cdist0(a, c) == true, both share var0=1) survives; b is
	// disjoint from c on var0.
	require.Equal(t, 1, out.Len())
	assert.True(t, d.SetpEqual(out.Cubes[0], a))

	// The new cofactor cube has picked up fullset \ c.
	diff := d.NewCube()
	require.NoError(t, d.SetDiff(&diff, d.Fullset, c))
	assert.True(t, d.SetpEqual(out.Cofactor, diff))
}

func TestScofactorMatchesCofactorWhenSplitOnSingleVar(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	a := parseCube(t, d, "1-")
	b := parseCube(t, d, "0-")
	cl := d.NewCubeList(d.NewCube(), []cube.Cube{a, b})

	// c is fullset everywhere except var0 (non-full only in variable 0).
	c := d.NewCube()
	require.NoError(t, c.CopyFrom(d.Fullset))
	require.NoError(t, d.ClearPart(&c, 0, 0))

	viaCofactor := recur.Cofactor(d, cl, c)
	viaScofactor := recur.Scofactor(d, cl, c, 0)

	require.Equal(t, viaCofactor.Len(), viaScofactor.Len())
	assert.True(t, d.SetpEqual(viaCofactor.Cofactor, viaScofactor.Cofactor))
}
