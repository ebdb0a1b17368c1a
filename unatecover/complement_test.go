package unatecover_test

import (
	"testing"

	"github.com/katalvlaran/espresso/unatecover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowWithCols(ncols int, cols ...int) unatecover.Row {
	r := unatecover.NewRow(ncols)
	for _, c := range cols {
		r.Set(c)
	}
	return r
}

func TestUnateComplEmptyFamilyIsUniverse(t *testing.T) {
	f := unatecover.NewFamily(3)
	out := unatecover.UnateCompl(f)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, 0, out.Rows[0].Ord())
}

func TestUnateComplSingleRowDeMorgan(t *testing.T) {
	f := unatecover.NewFamily(3)
	f.Add(rowWithCols(3, 0, 2))

	out := unatecover.UnateCompl(f)
	require.Equal(t, 2, out.Len())
	for _, r := range out.Rows {
		assert.Equal(t, 1, r.Ord())
	}
}

func TestUnateComplTwoEssentialRows(t *testing.T) {
	f := unatecover.NewFamily(2)
	f.Add(rowWithCols(2, 0))
	f.Add(rowWithCols(2, 1))

	out := unatecover.UnateCompl(f)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, 2, out.Rows[0].Ord())
	assert.True(t, out.Rows[0].Test(0))
	assert.True(t, out.Rows[0].Test(1))
}
