// File: sort_reduce.go
// Role: the two reduction/expansion cube orderings of cvrm.c — mini_sort
// (inner product of a cube against the cover's column sums) and
// sort_reduce (distance from the cover's largest cube). Both are cover-
// manipulation utilities shared across algorithms (reduce.c's `reduce` and
// expand.c's `find_all_primes` both call into them), so they live here
// next to UnravelRange rather than inside a single algorithm package.
package cube

import "sort"

// columnSums returns, for every part index of the universe, how many
// cubes of A set that part — cvrm.c's sf_count.
func (d *Descriptor) columnSums(A *Cover) []int {
	sums := make([]int, d.Size)
	for i := 0; i < A.Len(); i++ {
		c := A.At(i)
		idx := 0
		for v := 0; v < d.NVars; v++ {
			for p := 0; p < d.PartSize[v]; p++ {
				if set, _ := d.GetPart(c, v, p); set {
					sums[idx]++
				}
				idx++
			}
		}
	}
	return sums
}

// MiniSort orders A's cubes by the MINI heuristic weight (the inner
// product of each cube's parts with the cover's column sums), written into
// each cube's SIZE tag, then sorted by less. Pass Descend() for the
// "MINI-descending" ordering spec.md §4.5/§4.4 calls for.
//
// Complexity: O(|A|·Size) to tally columns and weights, O(n log n) to sort.
func (d *Descriptor) MiniSort(A *Cover, less Less) *Cover {
	sums := d.columnSums(A)

	out := make([]Cube, A.Len())
	for i := 0; i < A.Len(); i++ {
		c := A.At(i)
		weight := 0
		idx := 0
		for v := 0; v < d.NVars; v++ {
			for p := 0; p < d.PartSize[v]; p++ {
				if set, _ := d.GetPart(c, v, p); set {
					weight += sums[idx]
				}
				idx++
			}
		}
		c.SetSize(int32(weight))
		out[i] = c
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })

	return &Cover{Desc: d, cubes: out}
}

// SortReduce orders A's cubes by distance from the cover's largest cube
// (by SetOrd), ascending, ties broken by descending cube size — reduce.c's
// sort_reduce, the default cube ordering Reduce alternates with MiniSort.
//
// Complexity: O(|A|) to find the largest cube and compute distances (one
// Cdist call per cube), O(n log n) to sort.
func (d *Descriptor) SortReduce(A *Cover) *Cover {
	if A.Len() == 0 {
		return A
	}

	largest := A.At(0)
	bestOrd := d.SetOrd(largest)
	for i := 1; i < A.Len(); i++ {
		c := A.At(i)
		if ord := d.SetOrd(c); ord > bestOrd {
			largest, bestOrd = c, ord
		}
	}

	out := make([]Cube, A.Len())
	for i := 0; i < A.Len(); i++ {
		c := A.At(i)
		ord := d.SetOrd(c)
		if ord > 127 {
			ord = 127
		}
		weight := (d.NVars-d.Cdist(largest, c))<<7 + ord
		c.SetSize(int32(weight))
		out[i] = c
	}
	sort.SliceStable(out, func(i, j int) bool { return d.Descend()(out[i], out[j]) })

	return &Cover{Desc: d, cubes: out}
}
