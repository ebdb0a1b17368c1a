// File: intersect.go
// Role: unate_intersect (spec.md §4.7) — pairwise row intersection across
// two families, containment-minimized, optionally restricted to the
// largest-size results only. Exact-cover enumeration (exact.go) calls it
// with that restriction off.
package unatecover

// UnateIntersect forms every pairwise intersection of a row of a with a
// row of b, drops rows contained in another result row, and — if
// largestOnly — keeps only the rows of maximum size. a and b must share
// NCols.
//
// Complexity: O(a.Len()·b.Len()) intersections plus O(n²) containment
// minimization over the n = a.Len()·b.Len() candidates.
func UnateIntersect(a, b *Family, largestOnly bool) *Family {
	var rows []Row
	for _, pa := range a.Rows {
		for _, pb := range b.Rows {
			rows = append(rows, pa.and(pb))
		}
	}
	rows = revContain(rows)

	if largestOnly && len(rows) > 0 {
		maxOrd := -1
		for _, r := range rows {
			if o := r.Ord(); o > maxOrd {
				maxOrd = o
			}
		}
		filtered := rows[:0:0]
		for _, r := range rows {
			if r.Ord() == maxOrd {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	out := NewFamily(a.NCols)
	out.Rows = rows
	return out
}
