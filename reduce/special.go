// File: special.go
// Role: sccc_special_cases (spec.md §4.5), transcribed from reduce.c.
package reduce

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/recur"
)

// result is the Result type Sccc's recursion carries: a single cube plus
// any error surfaced from a direct recursive call (the column-of-zeros and
// component-decomposition cases both recurse into the algorithm directly,
// outside Driver's split/merge machinery).
type result struct {
	cube cube.Cube
	err  error
}

// scccSpecial builds sccc_special_cases. recurse is Sccc's own driver,
// supplied by the caller so the column-of-zeros and component cases can
// recurse into the full algorithm directly (the original's literal
// `sccc(...)` self-calls from inside the special-case function).
func scccSpecial(d *cube.Descriptor, recurse func(*cube.CubeList) result) recur.SpecialCase {
	return func(cl *cube.CubeList) (recur.Result, bool) {
		cof := cl.Cofactor

		if cl.Len() == 0 {
			return result{cube: d.Fullset.Clone()}, true
		}

		for _, p := range cl.Cubes {
			if recur.FullRow(d, p, cof) {
				return result{cube: d.NewCube()}, true
			}
		}

		count := recur.MassiveCount(d, cl)

		if count.VarsUnate == count.VarsActive || cl.Len() == 1 {
			res := d.Fullset.Clone()
			for _, p := range cl.Cubes {
				u := d.NewCube()
				_ = d.SetOr(&u, p, cof)
				ScccCube(d, &res, u)
			}
			return result{cube: res}, true
		}

		ceil := recur.Ceiling(d, cof, cl.Cubes)
		if !d.SetpFull(ceil) {
			candidate := d.Fullset.Clone()
			ScccCube(d, &candidate, ceil)
			if d.SetpFull(candidate) {
				return result{cube: candidate}, true
			}
			sub := d.NewCubeList(recur.FactoredCofactor(d, cof, ceil), cl.Cubes)
			rec := recurse(sub)
			if rec.err != nil {
				return result{err: rec.err}, true
			}
			left := d.NewCube()
			_ = d.SetAnd(&left, rec.cube, ceil)
			merged := d.NewCube()
			_ = d.SetOr(&merged, left, candidate)
			return result{cube: merged}, true
		}

		if count.VarsActive == 1 {
			return result{cube: d.NewCube()}, true
		}

		if count.Best >= 0 && count.Stats[count.Best].VarZeros < cl.Len()/2 {
			a, b, smaller := recur.CubelistPartition(d, cl)
			if smaller == 0 {
				return nil, false
			}
			ra := recurse(a)
			if ra.err != nil {
				return result{err: ra.err}, true
			}
			rb := recurse(b)
			if rb.err != nil {
				return result{err: rb.err}, true
			}
			merged := d.NewCube()
			_ = d.SetAnd(&merged, ra.cube, rb.cube)
			return result{cube: merged}, true
		}

		return nil, false
	}
}
