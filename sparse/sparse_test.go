package sparse_test

import (
	"testing"

	"github.com/katalvlaran/espresso/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndFind(t *testing.T) {
	m := sparse.NewMatrix(3, 3)
	m.Insert(0, 1)
	m.Insert(1, 1)
	m.Insert(2, 0)

	require.NotNil(t, m.Find(0, 1))
	require.NotNil(t, m.Find(1, 1))
	assert.Nil(t, m.Find(0, 0))
	assert.Equal(t, 3, m.NumElements())
}

func TestDeleteRowRemovesFromColumns(t *testing.T) {
	m := sparse.NewMatrix(2, 2)
	m.Insert(0, 0)
	m.Insert(0, 1)
	m.Insert(1, 0)

	m.DeleteRow(0)

	assert.Equal(t, 1, m.NRows)
	assert.Nil(t, m.Find(0, 0))
	assert.NotNil(t, m.Find(1, 0))
	col0 := m.ActiveCols()[0]
	assert.Equal(t, 1, col0.Length)
}

func TestLongestRowAndCol(t *testing.T) {
	m := sparse.NewMatrix(2, 2)
	m.Insert(0, 0)
	m.Insert(0, 1)
	m.Insert(1, 0)

	longest := m.LongestRow()
	require.NotNil(t, longest)
	assert.Equal(t, 0, longest.Num)
	assert.Equal(t, 2, longest.Length)

	longestCol := m.LongestCol()
	require.NotNil(t, longestCol)
	assert.Equal(t, 0, longestCol.Num)
	assert.Equal(t, 2, longestCol.Length)
}

func TestDupIsIndependent(t *testing.T) {
	m := sparse.NewMatrix(2, 2)
	m.Insert(0, 0)
	m.DeleteCol(1)

	dup := m.Dup()
	dup.Insert(1, 0)

	assert.Equal(t, 1, m.NumElements())
	assert.Equal(t, 2, dup.NumElements())
	assert.Equal(t, 1, m.NCols)
	assert.Equal(t, 1, dup.NCols)
}
