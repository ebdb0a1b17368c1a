// File: cofactor.go
// Role: cofactor and scofactor (spec.md §4.2) — the two ways a recursive
// step restricts a cube list against a splitting cube.
package recur

import "github.com/katalvlaran/espresso/cube"

// Cofactor builds the cube list obtained by restricting cl against c: the
// new cofactor cube is cl.Cofactor ∨ (fullset \ c), and the retained cubes
// are those p in cl.Cubes with Cdist0(p, c) true (shared by reference, not
// cloned — CubeLists never own their cube storage).
//
// Complexity: O(cl.Len()·WordCount).
func Cofactor(d *cube.Descriptor, cl *cube.CubeList, c cube.Cube) *cube.CubeList {
	diff := d.NewCube()
	_ = d.SetDiff(&diff, d.Fullset, c)
	newCofactor := d.NewCube()
	_ = d.SetOr(&newCofactor, cl.Cofactor, diff)

	out := make([]cube.Cube, 0, cl.Len())
	for _, p := range cl.Cubes {
		if d.Cdist0(p, c) {
			out = append(out, p)
		}
	}
	return d.NewCubeList(newCofactor, out)
}

// Scofactor is Cofactor specialized for the case where c is non-full only
// in variable v (every binate-split cube has this shape): both the
// cofactor update and the cube filter restrict their work to v's word
// range instead of scanning every variable.
//
// Complexity: O(cl.Len()·wordsPerVar(v)).
func Scofactor(d *cube.Descriptor, cl *cube.CubeList, c cube.Cube, v int) *cube.CubeList {
	newCofactor := cl.Cofactor.Clone()
	fw, lw := d.FirstWord[v], d.LastWord[v]
	for w := fw; w <= lw; w++ {
		mask := d.VarMask[v].Word(w)
		newCofactor.SetWord(w, newCofactor.Word(w)|(mask&^c.Word(w)))
	}

	out := make([]cube.Cube, 0, cl.Len())
	for _, p := range cl.Cubes {
		if varIntersects(d, p, c, v) {
			out = append(out, p)
		}
	}
	return d.NewCubeList(newCofactor, out)
}

// varIntersects reports whether a and b share a part of variable v. Local
// to recur: cube.Descriptor keeps the equivalent check private, so the
// word-range arithmetic is re-derived here from the exported Word/VarMask
// accessors cube.Cube exposes for exactly this purpose.
func varIntersects(d *cube.Descriptor, a, b cube.Cube, v int) bool {
	fw, lw := d.FirstWord[v], d.LastWord[v]
	for w := fw; w <= lw; w++ {
		mask := d.VarMask[v].Word(w)
		if a.Word(w)&b.Word(w)&mask != 0 {
			return true
		}
	}
	return false
}
