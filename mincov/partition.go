// File: partition.go
// Role: sm_block_partition, from part.c: split the matrix into two
// independent blocks (disjoint sets of rows and columns) if one exists,
// via a breadth-first walk of the row/column bipartite graph.
package mincov

import "github.com/katalvlaran/espresso/sparse"

// BlockPartition splits m into L and R such that no row of L shares a
// column with any row of R. ok is false when m is already one connected
// block (the common case once reduction has run).
//
// Complexity: O(elements) — every element is visited at most once.
func BlockPartition(m *sparse.Matrix) (l, r *sparse.Matrix, ok bool) {
	rows := m.ActiveRows()
	if len(rows) == 0 {
		return nil, nil, false
	}

	rowVisited := make(map[int]bool, len(rows))
	colVisited := make(map[int]bool)

	queue := []int{rows[0].Num}
	rowVisited[rows[0].Num] = true
	visitedCount := 1

	for len(queue) > 0 {
		rnum := queue[0]
		queue = queue[1:]

		for _, e := range m.RowElements(m.Row(rnum)) {
			if colVisited[e.ColNum] {
				continue
			}
			colVisited[e.ColNum] = true
			for _, ce := range m.ColElements(m.Col(e.ColNum)) {
				if !rowVisited[ce.RowNum] {
					rowVisited[ce.RowNum] = true
					visitedCount++
					queue = append(queue, ce.RowNum)
				}
			}
		}
	}

	if visitedCount == len(rows) {
		return nil, nil, false
	}

	l = sparse.NewMatrix(0, 0)
	r = sparse.NewMatrix(0, 0)
	for _, row := range rows {
		target := r
		if rowVisited[row.Num] {
			target = l
		}
		for _, e := range m.RowElements(row) {
			target.Insert(e.RowNum, e.ColNum)
		}
	}

	return l, r, true
}
