// File: solution.go
// Role: solution_t and its operations, from solution.c.
package mincov

import "github.com/katalvlaran/espresso/sparse"

// solution is a partial or complete covering: the columns chosen so far
// and their total cost.
type solution struct {
	cost int
	cols []int
}

func newSolution() *solution { return &solution{} }

func (s *solution) dup() *solution {
	cols := make([]int, len(s.cols))
	copy(cols, s.cols)

	return &solution{cost: s.cost, cols: cols}
}

func (s *solution) add(w Weight, col int) {
	s.cols = append(s.cols, col)
	s.cost += weightOf(w, col)
}

// accept selects col into sol and deletes every row it covers (any row
// intersecting col no longer constrains the search).
func accept(sol *solution, m *sparse.Matrix, w Weight, col int) {
	sol.add(w, col)

	c := m.Col(col)
	rows := make([]int, 0, c.Length)
	for _, e := range m.ColElements(c) {
		rows = append(rows, e.RowNum)
	}
	for _, r := range rows {
		m.DeleteRow(r)
	}
}

// reject removes col from consideration without selecting it.
func reject(m *sparse.Matrix, col int) {
	m.DeleteCol(col)
}

// chooseBest returns whichever of a, b has lower cost (nil treated as
// "no solution", losing to anything non-nil).
func chooseBest(a, b *solution) *solution {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.cost <= b.cost:
		return a
	default:
		return b
	}
}
