package recur_test

import (
	"testing"

	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/recur"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubelistPartitionSplitsDisjointComponents(t *testing.T) {
	d, err := cube.NewDescriptor(4, nil, 0)
	require.NoError(t, err)

	// Cubes 0,1 only ever touch var0/var1; cubes 2,3 only ever touch
	// var2/var3: two independent components.
	cubes := []cube.Cube{
		parseCube(t, d, "10--"),
		parseCube(t, d, "01--"),
		parseCube(t, d, "--10"),
		parseCube(t, d, "--01"),
	}
	cl := d.NewCubeList(d.NewCube(), cubes)

	a, b, smaller := recur.CubelistPartition(d, cl)
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, 2, smaller)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 2, b.Len())
}

func TestCubelistPartitionNoSplitWhenFullyConnected(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	// Every cube is active on var0, so the seed absorbs everything.
	cubes := []cube.Cube{
		parseCube(t, d, "1-"),
		parseCube(t, d, "0-"),
	}
	cl := d.NewCubeList(d.NewCube(), cubes)

	a, b, smaller := recur.CubelistPartition(d, cl)
	assert.Nil(t, a)
	assert.Nil(t, b)
	assert.Equal(t, 0, smaller)
}
