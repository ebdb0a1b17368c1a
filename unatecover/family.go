// File: family.go
// Role: Family — a unate set family (spec.md §4.7's pset_family), plus the
// single-cube-containment minimization shared by every algorithm here.
package unatecover

// Family is a unate set family: NCols boolean columns, and a list of Rows
// over them.
type Family struct {
	NCols int
	Rows  []Row
}

// NewFamily returns an empty family over ncols columns.
func NewFamily(ncols int) *Family {
	return &Family{NCols: ncols}
}

// Add appends a row (retained, not cloned).
func (f *Family) Add(r Row) {
	f.Rows = append(f.Rows, r)
}

// Len returns the number of rows.
func (f *Family) Len() int { return len(f.Rows) }

// Clone returns a deep copy.
func (f *Family) Clone() *Family {
	out := NewFamily(f.NCols)
	out.Rows = make([]Row, len(f.Rows))
	for i, r := range f.Rows {
		out.Rows[i] = r.Clone()
	}
	return out
}

// revContain drops every row contained in (implied by) some other row,
// keeping the maximal rows only: spec.md §4.7's single-cube-containment
// minimization (sf_rev_contain), applied after every operation here that
// can produce redundant rows.
func revContain(rows []Row) []Row {
	n := len(rows)
	drop := make([]bool, n)
	for i := 0; i < n; i++ {
		if drop[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if i == j || drop[j] {
				continue
			}
			if rows[i].implies(rows[j]) && (!rows[j].implies(rows[i]) || j < i) {
				drop[i] = true
				break
			}
		}
	}
	out := make([]Row, 0, n)
	for i, r := range rows {
		if !drop[i] {
			out = append(out, r)
		}
	}
	return out
}
