// File: independent.go
// Role: a greedy maximal independent set of rows, used for the lower-
// bound estimate mincov.c gets from sm_maximal_independent_set (its body
// is not part of the retrieved original source subset; any maximal
// independent set yields a valid lower bound on the covering problem's
// optimum, since each independent row must be satisfied by a distinct
// column — this greedy construction is the standard technique for it).
package mincov

import "github.com/katalvlaran/espresso/sparse"

// maximalIndependentSet builds a set of pairwise column-disjoint rows in
// active-row order, greedily: once a row is added, every row sharing any
// of its columns is excluded from further consideration. The returned
// solution's cost (the sum, over the chosen rows, of each row's cheapest
// column) lower-bounds the cost of covering those rows — and therefore
// the whole matrix — since any valid cover must pick at least one
// (possibly different) column per independent row.
func maximalIndependentSet(m *sparse.Matrix, w Weight) *solution {
	sel := newSolution()
	blocked := make(map[int]bool)

	for _, row := range m.ActiveRows() {
		if rowBlocked(m, row, blocked) {
			continue
		}

		best, bestCost := -1, -1
		for _, e := range m.RowElements(row) {
			c := weightOf(w, e.ColNum)
			if bestCost < 0 || c < bestCost {
				best, bestCost = e.ColNum, c
			}
		}
		if best < 0 {
			continue
		}
		sel.add(w, best)
		for _, e := range m.RowElements(row) {
			blocked[e.ColNum] = true
		}
	}

	return sel
}

func rowBlocked(m *sparse.Matrix, row *sparse.Row, blocked map[int]bool) bool {
	for _, e := range m.RowElements(row) {
		if blocked[e.ColNum] {
			return true
		}
	}

	return false
}
