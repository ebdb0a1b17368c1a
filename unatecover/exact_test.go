package unatecover_test

import (
	"testing"

	"github.com/katalvlaran/espresso/unatecover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExactMinimumCoverSingleConstraint(t *testing.T) {
	t1 := unatecover.NewFamily(2)
	t1.Add(rowWithCols(2, 0, 1)) // must include column 0 or column 1

	out := unatecover.ExactMinimumCover(t1)
	require.Equal(t, 2, out.Len())
	for _, r := range out.Rows {
		assert.Equal(t, 1, r.Ord())
	}
}

func TestExactMinimumCoverEmptyIsTrivial(t *testing.T) {
	t1 := unatecover.NewFamily(2)
	out := unatecover.ExactMinimumCover(t1)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, 0, out.Rows[0].Ord())
}

func TestExactMinimumCoverTwoConstraintsSharedColumn(t *testing.T) {
	t1 := unatecover.NewFamily(3)
	t1.Add(rowWithCols(3, 0, 1)) // row A needs col 0 or 1
	t1.Add(rowWithCols(3, 0, 2)) // row B needs col 0 or 2

	out := unatecover.ExactMinimumCover(t1)
	// Column 0 alone hits both constraints, so {0} must be among the
	// minimal covers, and it must be of minimum size.
	minOrd := -1
	for _, r := range out.Rows {
		if minOrd == -1 || r.Ord() < minOrd {
			minOrd = r.Ord()
		}
	}
	assert.Equal(t, 1, minOrd)
	found := false
	for _, r := range out.Rows {
		if r.Ord() == 1 && r.Test(0) {
			found = true
		}
	}
	assert.True(t, found)
}
