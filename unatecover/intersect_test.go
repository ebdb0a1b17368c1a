package unatecover_test

import (
	"testing"

	"github.com/katalvlaran/espresso/unatecover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnateIntersectPairwiseAndContainment(t *testing.T) {
	a := unatecover.NewFamily(3)
	a.Add(rowWithCols(3, 0, 1))
	b := unatecover.NewFamily(3)
	b.Add(rowWithCols(3, 0, 1, 2))
	b.Add(rowWithCols(3, 0))

	out := unatecover.UnateIntersect(a, b, false)
	// {0,1}&{0,1,2} = {0,1}; {0,1}&{0} = {0}; {0} is contained in {0,1},
	// so only {0,1} should survive containment minimization.
	require.Equal(t, 1, out.Len())
	assert.True(t, out.Rows[0].Test(0))
	assert.True(t, out.Rows[0].Test(1))
}

func TestUnateIntersectLargestOnly(t *testing.T) {
	a := unatecover.NewFamily(3)
	a.Add(rowWithCols(3, 0, 1))
	a.Add(rowWithCols(3, 2))
	b := unatecover.NewFamily(3)
	b.Add(rowWithCols(3, 0, 1, 2))

	out := unatecover.UnateIntersect(a, b, true)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, 2, out.Rows[0].Ord())
}
