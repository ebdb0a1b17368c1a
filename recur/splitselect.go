// File: splitselect.go
// Role: binate_split_select (spec.md §4.2) — pick the splitting variable
// and build its two half-cubes.
package recur

import "github.com/katalvlaran/espresso/cube"

// BinateSplitSelect runs MassiveCount on cl and, if a binate variable
// exists, builds the left/right split cubes for it: both equal fullset
// with the chosen variable's bits cleared, then each gets half of that
// variable's still-splittable parts (the ones not already fixed by cl's
// cofactor) OR'd back in. ok is false when cl is unate (no variable has
// PartsActive >= 2); callers must route unate cube lists to the unate-cover
// special case instead of calling BinateSplitSelect.
//
// Complexity: O(NVars·maxPartSize·cl.Len()) (dominated by MassiveCount).
func BinateSplitSelect(d *cube.Descriptor, cl *cube.CubeList) (best int, left, right cube.Cube, ok bool) {
	count := MassiveCount(d, cl)
	if count.Best < 0 {
		return -1, cube.Cube{}, cube.Cube{}, false
	}
	best = count.Best

	noVar := d.NewCube()
	_ = d.SetDiff(&noVar, d.Fullset, d.VarMask[best])

	total := 0
	for p := 0; p < d.PartSize[best]; p++ {
		if fixed, _ := d.GetPart(cl.Cofactor, best, p); !fixed {
			total++
		}
	}

	leftExtra := d.NewCube()
	rightExtra := d.NewCube()
	seen := 0
	for p := 0; p < d.PartSize[best]; p++ {
		if fixed, _ := d.GetPart(cl.Cofactor, best, p); fixed {
			continue
		}
		if seen < (total+1)/2 {
			_ = d.SetPart(&leftExtra, best, p)
		} else {
			_ = d.SetPart(&rightExtra, best, p)
		}
		seen++
	}

	left, right = d.NewCube(), d.NewCube()
	_ = d.SetOr(&left, noVar, leftExtra)
	_ = d.SetOr(&right, noVar, rightExtra)
	return best, left, right, true
}
