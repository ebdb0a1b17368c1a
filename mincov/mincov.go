// File: mincov.go
// Role: sm_minimum_cover/sm_mincov — the top-level branch-and-bound
// search over a sparse.Matrix.
package mincov

import "github.com/katalvlaran/espresso/sparse"

// engine carries the search's fixed configuration across recursive calls
// (the same explicit-dependency shape tsp.bbEngine uses, rather than
// threading weight/opts through closures).
type engine struct {
	weight    Weight
	heuristic bool
	stats     *Stats
}

// MinimumCover returns a minimum-cost set of column numbers intersecting
// every active row of m (the unate covering problem of spec.md §4.11/
// §4.12). w may be nil for a uniform unit cost per column. m is left
// unmodified; the search runs over an internal copy.
//
// Complexity: exponential worst case (NP-hard exact cover); in practice
// bounded heavily by the reduction rules and block-partition recursion.
func MinimumCover(m *sparse.Matrix, w Weight, opts Options) []int {
	if len(m.ActiveRows()) == 0 {
		return nil
	}

	e := &engine{weight: w, heuristic: opts.Heuristic, stats: opts.Stats}
	best := e.solve(m.Dup(), newSolution(), 0, upperBound(m, w))
	if best == nil {
		return nil
	}

	return best.cols
}

// upperBound returns a trivial feasible bound: one more than the sum of
// every column's cost (selecting every column always covers everything).
func upperBound(m *sparse.Matrix, w Weight) int {
	bound := 1
	for _, c := range m.ActiveCols() {
		bound += weightOf(w, c.Num)
	}

	return bound
}

// solve mirrors sm_mincov: reduce via selectEssential, resolve Gimpel's
// pattern directly when present, bound via a greedy independent set,
// recurse independently on a block partition if one exists, else branch
// on the best column both accepted and rejected.
func (e *engine) solve(m *sparse.Matrix, sel *solution, lb, bound int) *solution {
	selectEssential(m, sel, e.weight, bound)
	if sel.cost >= bound {
		return nil
	}

	if best, ok := GimpelReduce(m, e.weight, lb, bound, func(m2 *sparse.Matrix, lb2, bound2 int) *solution {
		return e.solve(m2, sel, lb2, bound2)
	}); ok {
		if e.stats != nil {
			e.stats.GimpelCount++
		}
		return best
	}

	indep := maximalIndependentSet(m, e.weight)
	lbNew := sel.cost + indep.cost
	if lbNew < lb {
		lbNew = lb
	}
	pick := selectColumn(m, e.weight, indep)

	if lbNew >= bound {
		return nil
	}

	if len(m.ActiveRows()) == 0 {
		return sel.dup()
	}

	if l, r, ok := BlockPartition(m); ok {
		if l.NCols > r.NCols {
			l, r = r, l
		}
		best1 := e.solve(l, newSolution(), 0, bound-sel.cost)
		if best1 == nil {
			return nil
		}
		for _, col := range best1.cols {
			sel.add(e.weight, col)
		}

		return e.solve(r, sel, lbNew, bound)
	}

	if pick < 0 {
		return nil
	}

	a1 := m.Dup()
	sel1 := sel.dup()
	accept(sel1, a1, e.weight, pick)
	best1 := e.solve(a1, sel1, lbNew, bound)

	if best1 != nil && bound > best1.cost {
		bound = best1.cost
	}
	if e.heuristic {
		return best1
	}
	if best1 != nil && best1.cost == lbNew {
		return best1
	}

	a2 := m.Dup()
	sel2 := sel.dup()
	reject(a2, pick)
	best2 := e.solve(a2, sel2, lbNew, bound)

	return chooseBest(best1, best2)
}
