// File: cover_ops.go
// Role: cover-level operations of spec.md §4.1: SfSort, SfContain,
// SfRevContain, RmEqual, RmContain, Rm2Contain, SfUnion, SfMerge, SfJoin,
// SfAppend, SfInactive, SfActive, D1Merge, UnravelRange.
package cube

import "sort"

// SfSort returns a new Cover over the same cubes as A, sorted by less.
// Each cube's SIZE tag is (re)written from SetOrd first so comparators that
// key off SIZE (Descend, Ascend) see an up-to-date value. A is left
// unmodified; the returned Cover owns a fresh slice of the same Cube
// values (cubes still share backing word arrays with A — this is a view
// reorder, not a deep clone).
//
// Complexity: O(n log n) comparisons, O(n) extra space.
func (d *Descriptor) SfSort(A *Cover, less Less) *Cover {
	out := make([]Cube, A.Len())
	for i := 0; i < A.Len(); i++ {
		c := A.At(i)
		c.SetSize(int32(d.SetOrd(c)))
		out[i] = c
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return &Cover{Desc: d, cubes: out}
}

// containmentFilter removes exact duplicates (keeping one occurrence) and
// then, depending on dropSupersets, either drops every cube that contains
// (is a superset of) some other distinct cube — leaving the minimal
// antichain, for SfRevContain — or drops every cube that is contained in
// (is a subset of) some other distinct cube — leaving the maximal
// antichain, for SfContain. Input is sorted ascending by SIZE first so
// the scan only ever needs to compare a cube against larger-or-equal
// cubes; output is re-sorted descending for SfContain, ascending for
// SfRevContain (contain.c's sf_contain/sf_rev_contain documented orders).
func (d *Descriptor) containmentFilter(A *Cover, dropSupersets bool) *Cover {
	sorted := d.SfSort(A, d.Ascend())
	n := sorted.Len()
	keep := make([]bool, n)
	for i := 0; i < n; i++ {
		keep[i] = true
	}
	for i := 0; i < n; i++ {
		if !keep[i] {
			continue
		}
		ci := sorted.At(i)
		for j := i + 1; j < n; j++ {
			if !keep[j] {
				continue
			}
			cj := sorted.At(j)
			if d.SetpEqual(ci, cj) {
				keep[j] = false
				continue
			}
			// ci is smaller-or-equal to cj in SIZE (ascending order):
			// ci ⊆ cj is the only containment direction left to check.
			if d.SetpImplies(ci, cj) {
				if dropSupersets {
					keep[j] = false // cj contains the smaller ci: drop cj
				} else {
					keep[i] = false // ci is contained in cj: drop ci
				}
			}
		}
	}
	out := make([]Cube, 0, n)
	for i := 0; i < n; i++ {
		if keep[i] {
			out = append(out, sorted.At(i))
		}
	}
	if !dropSupersets {
		for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
			out[l], out[r] = out[r], out[l]
		}
	}
	return &Cover{Desc: d, cubes: out}
}

// SfContain returns the maximal antichain of A (duplicates and any cube
// contained in a larger cube of A removed), ordered large-to-small by
// SIZE (contain.c's sf_contain).
//
// Complexity: O(n^2) cube comparisons, O(n) extra space.
func (d *Descriptor) SfContain(A *Cover) *Cover {
	return d.containmentFilter(A, false)
}

// SfRevContain returns the minimal antichain of A (duplicates and any
// cube containing a smaller cube of A removed), ordered small-to-large by
// SIZE (contain.c's sf_rev_contain) — the dual deletion rule of SfContain,
// not merely the same result reordered.
func (d *Descriptor) SfRevContain(A *Cover) *Cover {
	return d.containmentFilter(A, true)
}

// RmEqual removes exact duplicate cubes from A (by SetpEqual), keeping the
// first occurrence of each distinct cube and preserving relative order.
//
// Complexity: O(n^2).
func (d *Descriptor) RmEqual(A *Cover) *Cover {
	n := A.Len()
	out := make([]Cube, 0, n)
	for i := 0; i < n; i++ {
		ci := A.At(i)
		dup := false
		for _, kept := range out {
			if d.SetpEqual(ci, kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, ci)
		}
	}
	return &Cover{Desc: d, cubes: out}
}

// RmContain removes every cube of A that is contained in some other
// (distinct) cube of A, preserving the relative order of survivors.
//
// Complexity: O(n^2).
func (d *Descriptor) RmContain(A *Cover) *Cover {
	n := A.Len()
	drop := make([]bool, n)
	for i := 0; i < n; i++ {
		ci := A.At(i)
		for j := 0; j < n; j++ {
			if i == j || drop[i] {
				continue
			}
			cj := A.At(j)
			if d.SetpEqual(ci, cj) {
				if j < i {
					drop[i] = true
				}
				continue
			}
			if d.SetpImplies(ci, cj) {
				drop[i] = true
			}
		}
	}
	out := make([]Cube, 0, n)
	for i := 0; i < n; i++ {
		if !drop[i] {
			out = append(out, A.At(i))
		}
	}
	return &Cover{Desc: d, cubes: out}
}

// Rm2Contain is semantically identical to RmContain (the original's
// two-level variant is a partition-by-word-0 speedup for large covers, not
// a different result); kept as a distinct entry point to mirror the
// original's two call sites.
func (d *Descriptor) Rm2Contain(A *Cover) *Cover {
	return d.RmContain(A)
}

// SfJoin returns a new Cover holding every cube of A followed by every
// cube of B, with no deduplication or containment reduction.
//
// Complexity: O(|A|+|B|).
func (d *Descriptor) SfJoin(A, B *Cover) *Cover {
	out := d.NewCover(A.Len() + B.Len())
	out.AddAll(A)
	out.AddAll(B)
	return out
}

// SfUnion is SfJoin's set-theoretic twin: at this abstraction level (no
// shared arena to merge) it performs the same concatenation; kept distinct
// to mirror the original's two entry points.
func (d *Descriptor) SfUnion(A, B *Cover) *Cover {
	return d.SfJoin(A, B)
}

// SfMerge returns the maximal antichain of A ∪ B: SfContain(SfJoin(A, B)).
func (d *Descriptor) SfMerge(A, B *Cover) *Cover {
	return d.SfContain(d.SfJoin(A, B))
}

// SfAppend appends every cube of B onto A in place and returns A.
func (c *Cover) SfAppend(other *Cover) *Cover {
	c.AddAll(other)
	return c
}

// SfInactive compacts A in place, keeping only cubes carrying FlagActive,
// and returns A.
func (d *Descriptor) SfInactive(A *Cover) *Cover {
	out := A.cubes[:0]
	for _, c := range A.cubes {
		if c.HasFlag(FlagActive) {
			out = append(out, c)
		}
	}
	A.cubes = out
	return A
}

// SfActive returns a new Cover holding the cubes of A carrying FlagActive,
// leaving A untouched.
func (d *Descriptor) SfActive(A *Cover) *Cover {
	out := d.NewCover(A.Len())
	for i := 0; i < A.Len(); i++ {
		if A.At(i).HasFlag(FlagActive) {
			out.Add(A.At(i))
		}
	}
	return out
}

// D1Merge performs a distance-1 merge of A across variable v: cubes that
// agree everywhere outside v are combined by OR-ing their v-parts together.
// Non-mergeable cubes pass through unchanged.
//
// Complexity: O(n log n) to group + O(n) to merge.
func (d *Descriptor) D1Merge(A *Cover, v int) (*Cover, error) {
	if v < 0 || v >= d.NVars {
		return nil, ErrVarOutOfRange
	}
	mask := d.VarMask[v]
	sorted := d.SfSort(A, d.D1Order(mask))
	out := d.NewCover(sorted.Len())
	n := sorted.Len()
	i := 0
	for i < n {
		acc := sorted.At(i).Clone()
		j := i + 1
		for j < n && d.agreesOutside(acc, sorted.At(j), mask) {
			merged := acc.Clone()
			_ = d.SetOr(&merged, acc, sorted.At(j))
			acc = merged
			j++
		}
		out.Add(acc)
		i = j
	}
	return out, nil
}

// agreesOutside reports whether a and b are identical outside the bits
// selected by mask.
func (d *Descriptor) agreesOutside(a, b, mask Cube) bool {
	for w := 0; w < d.WordCount; w++ {
		if (a.words[w] &^ mask.words[w]) != (b.words[w] &^ mask.words[w]) {
			return false
		}
	}
	return true
}

// UnravelRange explodes every cube of A into its cartesian expansion over
// the multi-valued variables in [lo, hi]: each variable with two or more
// parts set becomes a separate single-part literal, cross-producted across
// variables; a variable with zero or one part set is left exactly as it
// was (cvrm.c's cb_unravel folds both cases into its "size < 2" copy-
// through branch, rather than treating an all-zero variable as voiding the
// whole cube). Returns ErrUnravelOverflow if the total exploded cube count
// would exceed 1,000,000 (spec.md §4.1).
//
// Complexity: O(total output cubes · WordCount).
func (d *Descriptor) UnravelRange(A *Cover, lo, hi int) (*Cover, error) {
	if lo < 0 || hi >= d.NVars {
		return nil, ErrVarOutOfRange
	}
	if lo > hi {
		// Empty range: no variable is being exploded, so every cube
		// passes through unchanged (cvrm.c's unravel_range is well
		// defined for start > end, e.g. a purely binary universe where
		// num_binary_vars == num_vars).
		return A.Clone(), nil
	}
	const maxCubes = 1_000_000

	total := 0
	perCube := make([][][]int, A.Len()) // perCube[i][k] = set part indices of var lo+k, nil if not exploded
	for i := 0; i < A.Len(); i++ {
		c := A.At(i)
		parts := make([][]int, hi-lo+1)
		prod := 1
		for k := lo; k <= hi; k++ {
			var ps []int
			for p := 0; p < d.PartSize[k]; p++ {
				set, _ := d.GetPart(c, k, p)
				if set {
					ps = append(ps, p)
				}
			}
			if len(ps) >= 2 {
				parts[k-lo] = ps
				prod *= len(ps)
			}
		}
		perCube[i] = parts
		total += prod
		if total > maxCubes {
			return nil, ErrUnravelOverflow
		}
	}

	out := d.NewCover(total)
	for i := 0; i < A.Len(); i++ {
		c := A.At(i)
		d.explodeCube(out, c, lo, hi, perCube[i])
	}
	return out, nil
}

// explodeCube appends the cartesian expansion of c over variables [lo, hi]
// to out. parts[k] lists the surviving parts of variable lo+k when that
// variable is being exploded (two or more parts set); parts[k] == nil
// means variable lo+k is left untouched in every output cube.
func (d *Descriptor) explodeCube(out *Cover, c Cube, lo, hi int, parts [][]int) {
	nVars := hi - lo + 1
	idx := make([]int, nVars)
	for {
		cc := c.Clone()
		for k := 0; k < nVars; k++ {
			if parts[k] == nil {
				continue
			}
			v := lo + k
			_ = d.ClearVar(&cc, v)
			_ = d.SetPart(&cc, v, parts[k][idx[k]])
		}
		out.Add(cc)

		pos := nVars - 1
		for pos >= 0 {
			if parts[pos] == nil {
				pos--
				continue
			}
			idx[pos]++
			if idx[pos] < len(parts[pos]) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			return
		}
	}
}
