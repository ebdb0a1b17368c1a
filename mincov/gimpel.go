// File: gimpel.go
// Role: gimpel_reduce, from gimpel.c: a special-case reduction for a row
// of length 2 where one of its two columns also has length 2. Rather than
// branching on that column and its partner, the pattern always has a
// direct resolution, so it is folded into a single reduced subproblem
// instead of two.
package mincov

import "github.com/katalvlaran/espresso/sparse"

// gimpelPattern looks for a row of length 2 (the primary row) whose two
// columns are c1, c2, where c1's own column length is also 2 — c1 belongs
// to exactly the primary row and one other row (the secondary row). c2
// may belong to the primary row plus any number of other rows.
func gimpelPattern(m *sparse.Matrix) (primaryRow, secondaryRow, c1, c2 int, ok bool) {
	for _, row := range m.ActiveRows() {
		if row.Length != 2 {
			continue
		}
		elems := m.RowElements(row)
		a, b := elems[0].ColNum, elems[1].ColNum
		colA, colB := m.Col(a), m.Col(b)

		switch {
		case colA.Length == 2:
			c1, c2 = a, b
		case colB.Length == 2:
			c1, c2 = b, a
		default:
			continue
		}

		col1Elems := m.ColElements(m.Col(c1))
		secondaryRow = col1Elems[0].RowNum
		if secondaryRow == row.Num {
			secondaryRow = col1Elems[1].RowNum
		}

		return row.Num, secondaryRow, c1, c2, true
	}

	return 0, 0, 0, 0, false
}

// gimpelApply performs the reduction once a pattern is located: every row
// that c2 touches, other than the primary row, is extended with the
// secondary row's other columns (saveSec) — standing in for the fact that
// if c2 ends up selected instead of c1, the secondary row still needs one
// of those columns. The primary/secondary rows and c1/c2 columns are then
// removed entirely. Returns saveSec, the secondary row's columns other
// than c1, needed afterward to decide between c1 and c2.
func gimpelApply(m *sparse.Matrix, primaryRow, secondaryRow, c1, c2 int) []int {
	saveSec := make([]int, 0, m.Row(secondaryRow).Length-1)
	for _, e := range m.RowElements(m.Row(secondaryRow)) {
		if e.ColNum != c1 {
			saveSec = append(saveSec, e.ColNum)
		}
	}

	for _, e := range m.ColElements(m.Col(c2)) {
		if e.RowNum == primaryRow {
			continue
		}
		for _, col := range saveSec {
			if m.Find(e.RowNum, col) == nil {
				m.Insert(e.RowNum, col)
			}
		}
	}

	m.DeleteCol(c1)
	m.DeleteCol(c2)
	m.DeleteRow(primaryRow)
	m.DeleteRow(secondaryRow)

	return saveSec
}

// GimpelReduce looks for gimpel.c's primary/secondary-row pattern in m. If
// absent, ok is false and the caller should continue with its usual
// reduction. If present, it reduces m in place, recurses through solve on
// the smaller problem (lb and bound both drop by 1, since exactly one of
// the pattern's two columns is always added back afterward), and resolves
// c1 versus c2 from whether the recursed solution already touches one of
// the secondary row's other columns: if so, the secondary row is already
// satisfied and c2 is the free choice covering the primary row; otherwise
// c1 is needed to cover the secondary row directly, and it covers the
// primary row too.
func GimpelReduce(m *sparse.Matrix, w Weight, lb, bound int, solve func(m *sparse.Matrix, lb, bound int) *solution) (best *solution, ok bool) {
	primaryRow, secondaryRow, c1, c2, found := gimpelPattern(m)
	if !found {
		return nil, false
	}

	saveSec := gimpelApply(m, primaryRow, secondaryRow, c1, c2)

	best = solve(m, lb-1, bound-1)
	if best == nil {
		return nil, true
	}

	if colsIntersect(best.cols, saveSec) {
		best.add(w, c2)
	} else {
		best.add(w, c1)
	}

	return best, true
}

func colsIntersect(cols, other []int) bool {
	set := make(map[int]bool, len(other))
	for _, c := range other {
		set[c] = true
	}
	for _, c := range cols {
		if set[c] {
			return true
		}
	}

	return false
}
