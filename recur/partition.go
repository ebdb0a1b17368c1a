// File: partition.go
// Role: cubelist_partition (spec.md §4.2) — disjoint-component detection
// used to short-circuit recursion when a cube list decomposes into
// independent subproblems.
package recur

import "github.com/katalvlaran/espresso/cube"

// CubelistPartition seeds a component with cl's first cube and iteratively
// pulls in every cube sharing an active variable (Ccommon) with the
// growing seed. If the seed ends up covering every cube, smaller is 0 and
// a, b are nil: cl does not decompose. Otherwise a and b partition cl's
// cubes (by reference) and smaller is the size of the smaller half.
//
// Complexity: O(cl.Len()²·WordCount) worst case (fixed point over pairwise
// Ccommon checks); cl is expected small enough in practice (spec.md §4.2)
// for this to be a net win over not checking at all.
func CubelistPartition(d *cube.Descriptor, cl *cube.CubeList) (a, b *cube.CubeList, smaller int) {
	n := cl.Len()
	if n == 0 {
		return nil, nil, 0
	}

	included := make([]bool, n)
	included[0] = true
	seed := cl.Cubes[0]

	for changed := true; changed; {
		changed = false
		for i := 1; i < n; i++ {
			if included[i] {
				continue
			}
			if d.Ccommon(seed, cl.Cubes[i], cl.Cofactor) {
				included[i] = true
				merged := d.NewCube()
				_ = d.SetOr(&merged, seed, cl.Cubes[i])
				seed = merged
				changed = true
			}
		}
	}

	count := 0
	for _, in := range included {
		if in {
			count++
		}
	}
	if count == n {
		return nil, nil, 0
	}

	aCubes := make([]cube.Cube, 0, count)
	bCubes := make([]cube.Cube, 0, n-count)
	for i, in := range included {
		if in {
			aCubes = append(aCubes, cl.Cubes[i])
		} else {
			bCubes = append(bCubes, cl.Cubes[i])
		}
	}
	a = d.NewCubeList(cl.Cofactor, aCubes)
	b = d.NewCubeList(cl.Cofactor, bCubes)
	smaller = count
	if n-count < smaller {
		smaller = n - count
	}
	return a, b, smaller
}
