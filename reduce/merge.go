// File: merge.go
// Role: sccc_merge (spec.md §4.5) — Sccc's Driver.Combine.
package reduce

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/recur"
)

// scccMerge builds Sccc's Merge: AND each half's result with the splitting
// cube that produced it, then OR the two back together.
func scccMerge(d *cube.Descriptor) recur.Merge {
	return func(parent *cube.CubeList, left, right recur.Result, cl, cr cube.Cube, splitVar int) recur.Result {
		lo, ro := left.(result), right.(result)
		if lo.err != nil {
			return result{err: lo.err}
		}
		if ro.err != nil {
			return result{err: ro.err}
		}

		l := d.NewCube()
		_ = d.SetAnd(&l, lo.cube, cl)
		r := d.NewCube()
		_ = d.SetAnd(&r, ro.cube, cr)
		out := d.NewCube()
		_ = d.SetOr(&out, l, r)

		return result{cube: out}
	}
}
