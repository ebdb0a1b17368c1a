// File: dominance.go
// Role: column and row dominance reduction rules. mincov.c calls these
// sm_col_dominance/sm_row_dominance but their bodies are not part of the
// retrieved original source subset; the rules implemented here are the
// standard ones for the unate covering problem (see mincov.c's
// select_essential, which documents their contract: repeat column
// dominance, essential-row selection, and row dominance until a pass
// changes nothing).
package mincov

import "github.com/katalvlaran/espresso/sparse"

// ColDominance deletes every column dominated by another: column b is
// dominated by column a when a's rows are a superset of b's and a costs
// no more than b — selecting a instead of b is always at least as good.
// Ties (identical row sets and cost) are broken by column number so a
// pair never deletes each other. Returns the number of columns deleted.
func ColDominance(m *sparse.Matrix, w Weight) int {
	cols := m.ActiveCols()
	dead := make(map[int]bool)

	for i, a := range cols {
		if dead[a.Num] {
			continue
		}
		for j, b := range cols {
			if i == j || dead[b.Num] {
				continue
			}
			if !colDominates(m, w, a, b) {
				continue
			}
			if colDominates(m, w, b, a) && a.Num > b.Num {
				continue // identical pair: keep the lower-numbered column
			}
			dead[b.Num] = true
		}
	}

	deleted := 0
	for col := range dead {
		m.DeleteCol(col)
		deleted++
	}

	return deleted
}

func colDominates(m *sparse.Matrix, w Weight, a, b *sparse.Col) bool {
	return weightOf(w, a.Num) <= weightOf(w, b.Num) && rowSetSuperset(m, a, b)
}

// rowSetSuperset reports whether every row of b is also a row of a.
func rowSetSuperset(m *sparse.Matrix, a, b *sparse.Col) bool {
	if a.Length < b.Length {
		return false
	}
	rowsA := make(map[int]bool, a.Length)
	for _, e := range m.ColElements(a) {
		rowsA[e.RowNum] = true
	}
	for _, e := range m.ColElements(b) {
		if !rowsA[e.RowNum] {
			return false
		}
	}

	return true
}

// RowDominance deletes every row whose columns are a superset of another
// row's: satisfying the subset row's constraint automatically satisfies
// the superset row too, so the superset row adds nothing. Ties are broken
// by row number. Returns the number of rows deleted.
func RowDominance(m *sparse.Matrix) int {
	rows := m.ActiveRows()
	dead := make(map[int]bool)

	for i, a := range rows {
		if dead[a.Num] {
			continue
		}
		for j, b := range rows {
			if i == j || dead[b.Num] {
				continue
			}
			if !colSetSubset(m, a, b) {
				continue
			}
			if colSetSubset(m, b, a) && a.Num > b.Num {
				continue
			}
			dead[b.Num] = true
		}
	}

	deleted := 0
	for row := range dead {
		m.DeleteRow(row)
		deleted++
	}

	return deleted
}

// colSetSubset reports whether a's columns are a subset of b's.
func colSetSubset(m *sparse.Matrix, a, b *sparse.Row) bool {
	if a.Length > b.Length {
		return false
	}
	colsB := make(map[int]bool, b.Length)
	for _, e := range m.RowElements(b) {
		colsB[e.ColNum] = true
	}
	for _, e := range m.RowElements(a) {
		if !colsB[e.ColNum] {
			return false
		}
	}

	return true
}
