// File: complement.go
// Role: unate_compl / unate_complement (spec.md §4.7) — the Boolean
// complement of a positive unate set family, by recursive essential-column
// extraction and splitting on the column with the widest spread.
package unatecover

// UnateCompl computes the Boolean complement of the positive unate set
// family f, then minimizes the result by single-row containment.
//
// Complexity: exponential worst case (as the original), bounded in
// practice by the containment minimization applied at every recursive
// step's rejoin.
func UnateCompl(f *Family) *Family {
	rows := unateComplement(f.NCols, f.Rows)
	out := NewFamily(f.NCols)
	out.Rows = revContain(rows)
	return out
}

// unateComplement is the recursive worker (unate_complement of spec.md
// §4.7 / original_source unate.c): empty family complements to the
// universe (a single all-clear row); a single row complements by De
// Morgan (one row per set column); otherwise split on essential columns
// (rows of minimal size) or, failing that, the column with the highest
// membership count among the minimal-size rows.
func unateComplement(ncols int, rows []Row) []Row {
	switch len(rows) {
	case 0:
		return []Row{newRow(ncols)}
	case 1:
		p := rows[0]
		var out []Row
		for i := 0; i < ncols; i++ {
			if p.Test(i) {
				r := newRow(ncols)
				r.Set(i)
				out = append(out, r)
			}
		}
		return out
	}

	minOrd := ncols + 1
	restrict := newRow(ncols)
	for _, p := range rows {
		ord := p.Ord()
		switch {
		case ord < minOrd:
			restrict = p.Clone()
			minOrd = ord
		case ord == minOrd:
			restrict = restrict.or(p)
		}
	}

	switch {
	case minOrd == 0:
		return nil
	case minOrd == 1:
		sub := absCoveredMany(rows, restrict)
		out := unateComplement(ncols, sub)
		for i := range out {
			out[i] = out[i].or(restrict)
		}
		return out
	default:
		maxCol := absSelectRestricted(rows, restrict, ncols)

		out := unateComplement(ncols, absCovered(rows, maxCol))
		for i := range out {
			out[i].Set(maxCol)
		}

		reduced := make([]Row, len(rows))
		for i, p := range rows {
			q := p.Clone()
			q.Clear(maxCol)
			reduced[i] = q
		}
		return append(out, unateComplement(ncols, reduced)...)
	}
}

// absCoveredMany returns the rows disjoint from restrict (the rows not
// already satisfied by one of the essential columns).
func absCoveredMany(rows []Row, restrict Row) []Row {
	var out []Row
	for _, p := range rows {
		if p.and(restrict).isEmpty() {
			out = append(out, p)
		}
	}
	return out
}

// absCovered returns the rows that do NOT contain column col.
func absCovered(rows []Row, col int) []Row {
	var out []Row
	for _, p := range rows {
		if !p.Test(col) {
			out = append(out, p)
		}
	}
	return out
}

// absSelectRestricted returns the column, among those set in restrict,
// contained in the most rows.
func absSelectRestricted(rows []Row, restrict Row, ncols int) int {
	bestCol, bestCount := -1, -1
	for i := 0; i < ncols; i++ {
		if !restrict.Test(i) {
			continue
		}
		count := 0
		for _, p := range rows {
			if p.Test(i) {
				count++
			}
		}
		if count > bestCount {
			bestCount, bestCol = count, i
		}
	}
	return bestCol
}
