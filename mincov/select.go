// File: select.go
// Role: select_column and select_essential, from mincov.c.
package mincov

import "github.com/katalvlaran/espresso/sparse"

// selectColumn picks the branching column: among the columns of indep's
// solution (indep.cols; every active column, if indep is nil), the one
// maximizing the ratio of rows it helps cover to its own cost.
func selectColumn(m *sparse.Matrix, w Weight, indep *solution) int {
	var candidates []int
	if indep != nil {
		seen := make(map[int]bool, len(indep.cols))
		for _, col := range indep.cols {
			if !seen[col] {
				seen[col] = true
				candidates = append(candidates, col)
			}
		}
	} else {
		for _, c := range m.ActiveCols() {
			candidates = append(candidates, c.Num)
		}
	}

	best, bestRatio := -1, -1.0
	for _, colNum := range candidates {
		col := m.Col(colNum)
		if col.Length == 0 {
			continue
		}
		value := 0.0
		for _, e := range m.ColElements(col) {
			value += 1.0 / float64(m.Row(e.RowNum).Length)
		}
		ratio := value / float64(weightOf(w, colNum))
		if ratio > bestRatio {
			best, bestRatio = colNum, ratio
		}
	}

	return best
}

// selectEssential repeatedly applies column dominance, essential-row
// selection (any row with a single remaining column must pick it), and
// row dominance until a full pass changes nothing.
func selectEssential(m *sparse.Matrix, sel *solution, w Weight, bound int) {
	for {
		delCols := ColDominance(m, w)

		seen := make(map[int]bool)
		var essential []int
		for _, row := range m.ActiveRows() {
			if row.Length == 1 {
				col := m.RowElements(row)[0].ColNum
				if !seen[col] {
					seen[col] = true
					essential = append(essential, col)
				}
			}
		}
		for _, col := range essential {
			if m.Col(col).Length == 0 {
				continue // already consumed by an earlier essential column
			}
			accept(sel, m, w, col)
			if sel.cost >= bound {
				return
			}
		}

		delRows := RowDominance(m)

		if delCols == 0 && delRows == 0 && len(essential) == 0 {
			return
		}
	}
}
