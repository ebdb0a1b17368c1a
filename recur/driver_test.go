package recur_test

import (
	"testing"

	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/recur"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDriverRecurSplitsAndMerges exercises the full special_case /
// binate_split_select / scofactor / merge loop with a toy algorithm: count
// leaves are "number of cubes remaining", and merge sums the two halves.
// For a 2-cube binate cube list, each half scofactors down to exactly one
// surviving cube, so the total must come back out to 2.
func TestDriverRecurSplitsAndMerges(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	cubes := []cube.Cube{
		parseCube(t, d, "1-"),
		parseCube(t, d, "0-"),
	}
	cl := d.NewCubeList(d.NewCube(), cubes)

	special := func(cl *cube.CubeList) (recur.Result, bool) {
		if cl.Len() <= 1 {
			return cl.Len(), true
		}
		return nil, false
	}
	combine := func(parent *cube.CubeList, left, right recur.Result, cl, cr cube.Cube, v int) recur.Result {
		return left.(int) + right.(int)
	}

	driver := &recur.Driver{Desc: d, Special: special, Combine: combine}
	result, err := driver.Recur(cl)
	require.NoError(t, err)
	assert.Equal(t, 2, result)
}

func TestDriverRecurReturnsErrorWhenSpecialCaseIncomplete(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	// Fully unate cube list (both cubes agree on var0): BinateSplitSelect
	// declines, and a SpecialCase that never resolves a leaf must surface
	// ErrNoUnateLeaf rather than recursing forever.
	cubes := []cube.Cube{
		parseCube(t, d, "1-"),
		parseCube(t, d, "1-"),
	}
	cl := d.NewCubeList(d.NewCube(), cubes)

	driver := &recur.Driver{
		Desc:    d,
		Special: func(*cube.CubeList) (recur.Result, bool) { return nil, false },
		Combine: func(parent *cube.CubeList, left, right recur.Result, cl, cr cube.Cube, v int) recur.Result {
			return nil
		},
	}
	_, err = driver.Recur(cl)
	assert.ErrorIs(t, err, recur.ErrNoUnateLeaf)
}
