// File: cube.go
// Role: compl_cube (spec.md §4.3) — De Morgan complement of a single cube.
package complement

import "github.com/katalvlaran/espresso/cube"

// ComplCube returns the Boolean complement of the single cube p: one cube
// per variable in which p restricts (is not the full set), each equal to
// the universe except that variable is replaced by p's bitwise complement
// there.
//
// Complexity: O(NVars·maxPartSize).
func ComplCube(d *cube.Descriptor, p cube.Cube) *cube.Cover {
	diff := d.NewCube()
	_ = d.SetDiff(&diff, d.Fullset, p)

	out := d.NewCover(d.NVars)
	for v := 0; v < d.NVars; v++ {
		empty := true
		for part := 0; part < d.PartSize[v]; part++ {
			if set, _ := d.GetPart(diff, v, part); set {
				empty = false
				break
			}
		}
		if empty {
			continue
		}
		c := d.Fullset.Clone()
		for part := 0; part < d.PartSize[v]; part++ {
			if set, _ := d.GetPart(diff, v, part); set {
				_ = d.SetPart(&c, v, part)
			} else {
				_ = d.ClearPart(&c, v, part)
			}
		}
		out.Add(c)
	}
	return out
}
