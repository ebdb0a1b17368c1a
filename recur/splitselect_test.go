package recur_test

import (
	"testing"

	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/recur"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinateSplitSelectSplitsChosenVariable(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	cubes := []cube.Cube{
		parseCube(t, d, "1-"),
		parseCube(t, d, "0-"),
	}
	cl := d.NewCubeList(d.NewCube(), cubes)

	best, left, right, ok := recur.BinateSplitSelect(d, cl)
	require.True(t, ok)
	assert.Equal(t, 0, best)

	// left and right must each be full everywhere except (at most) the
	// split variable, and together must cover the split variable's parts.
	union := d.NewCube()
	require.NoError(t, d.SetOr(&union, left, right))
	assert.True(t, d.SetpFull(union))
}

func TestBinateSplitSelectDeclinesUnate(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	cubes := []cube.Cube{
		parseCube(t, d, "1-"),
		parseCube(t, d, "1-"),
	}
	cl := d.NewCubeList(d.NewCube(), cubes)

	_, _, _, ok := recur.BinateSplitSelect(d, cl)
	assert.False(t, ok)
}
