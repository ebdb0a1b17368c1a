// File: map.go
// Role: map_cover_to_unate / map_unate_to_cover (spec.md §4.7) — the
// bridge between a cube list known to be unate (every active variable has
// exactly one part with any zero count) and this package's column form.
package unatecover

import "github.com/katalvlaran/espresso/cube"

// bitPosToVar returns, for each absolute bit position, the variable that
// owns it.
func bitPosToVar(d *cube.Descriptor) []int {
	m := make([]int, d.Size)
	for v := 0; v < d.NVars; v++ {
		for i := d.FirstPart[v]; i <= d.LastPart[v]; i++ {
			m[i] = v
		}
	}
	return m
}

// bitAt reports whether absolute bit position i is set in c.
func bitAt(d *cube.Descriptor, c cube.Cube, posToVar []int, i int) bool {
	v := posToVar[i]
	set, _ := d.GetPart(c, v, i-d.FirstPart[v])
	return set
}

// MapCoverToUnate builds the unate column family for cl, assuming cl's
// cubes are already known to be unate (the caller has checked
// recur.MassiveCount's VarsUnate == VarsActive). Each bit position with a
// nonzero zero-count across cl.Cubes (ignoring positions already fixed by
// cl.Cofactor) becomes one column; unateCols records, in column order, the
// absolute bit position each column came from, for MapUnateToCover to
// invert.
//
// Complexity: O(d.Size · cl.Len()).
func MapCoverToUnate(d *cube.Descriptor, cl *cube.CubeList) (*Family, []int) {
	posToVar := bitPosToVar(d)

	var unateCols []int
	for i := 0; i < d.Size; i++ {
		if bitAt(d, cl.Cofactor, posToVar, i) {
			continue
		}
		zeros := 0
		for _, p := range cl.Cubes {
			if !bitAt(d, p, posToVar, i) {
				zeros++
			}
		}
		if zeros > 0 {
			unateCols = append(unateCols, i)
		}
	}

	f := NewFamily(len(unateCols))
	for _, p := range cl.Cubes {
		r := newRow(f.NCols)
		for j, pos := range unateCols {
			if !bitAt(d, p, posToVar, pos) {
				r.Set(j)
			}
		}
		f.Add(r)
	}
	return f, unateCols
}

// MapUnateToCover inverts MapCoverToUnate: each row of f becomes a cube
// that starts as Fullset and, for every set column, restricts its owning
// variable down to the single part recorded at unateCols[column] (clearing
// every other part of that variable).
//
// Complexity: O(f.Len() · len(unateCols) · maxPartSize).
func MapUnateToCover(d *cube.Descriptor, f *Family, unateCols []int) *cube.Cover {
	out := d.NewCover(f.Len())
	for _, row := range f.Rows {
		c := d.NewCube()
		_ = c.CopyFrom(d.Fullset)
		for j, pos := range unateCols {
			if !row.Test(j) {
				continue
			}
			v, _ := d.VarOfBit(pos)
			keep := pos - d.FirstPart[v]
			for p := 0; p < d.PartSize[v]; p++ {
				if p != keep {
					_ = d.ClearPart(&c, v, p)
				}
			}
		}
		out.Add(c)
	}
	return out
}
