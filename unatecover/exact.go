// File: exact.go
// Role: exact_minimum_cover (spec.md §4.7) — enumerate every minimal
// exact cover of a row family T (each row of T lists the columns that may
// satisfy that row's covering requirement) by folding unate_intersect
// across the rows; a representative minimum cover is the smallest result
// row.
package unatecover

// ExactMinimumCover returns every minimal covering set for t: a family
// whose rows are column-index sets, each satisfying (hitting) every row
// of t. Callers that only need one minimum cover should take the
// minimum-Ord row of the result.
//
// Complexity: exponential worst case, the same as the original's
// level-balanced merge — this folds left-to-right instead of balancing by
// level (a performance-only simplification: semantics are unaffected,
// recorded in DESIGN.md), relying on UnateIntersect's containment
// minimization after every fold to keep the working set small.
func ExactMinimumCover(t *Family) *Family {
	if t.Len() == 0 {
		out := NewFamily(t.NCols)
		out.Add(newRow(t.NCols))
		return out
	}

	acc := NewFamily(t.NCols)
	acc.Add(fullRow(t.NCols))

	for _, p := range t.Rows {
		unstacked := NewFamily(t.NCols)
		for i := 0; i < t.NCols; i++ {
			if p.Test(i) {
				r := fullRow(t.NCols)
				r.Clear(i)
				unstacked.Add(r)
			}
		}
		acc = UnateIntersect(acc, unstacked, false)
	}

	out := NewFamily(t.NCols)
	for _, r := range acc.Rows {
		out.Add(diffFromFull(r, t.NCols))
	}
	return out
}

// diffFromFull returns the row of columns NOT set in r (fullset \ r).
func diffFromFull(r Row, ncols int) Row {
	full := fullRow(ncols)
	out := Row{words: make([]uint64, len(full.words))}
	for i := range out.words {
		out.words[i] = full.words[i] &^ r.words[i]
	}
	return out
}
