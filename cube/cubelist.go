// File: cubelist.go
// Role: CubeList — the transient representation consumed by the unate
// recursive paradigm (package recur). spec.md §3 describes the original's
// C-ism of bracketing an array of cube pointers with a cofactor cube at
// index 0 and a sentinel at the end; DESIGN NOTES §9 asks for a value
// struct with an owning vector of cube handles plus a separately owned
// cofactor cube, which is what this is.
package cube

// CubeList is a cube list: the cubes of some cover, retained by reference
// (sharing backing word arrays, never copied), together with the cofactor
// cube recording which variables the list has been restricted against. A
// cube p in Cubes represents the product p ∧ Cofactor.
//
// CubeLists are stack-scoped: built, consumed by one recursive call, and
// discarded; they own no resources beyond a slice and a Cube, so there is
// nothing to explicitly free in Go.
type CubeList struct {
	Desc     *Descriptor
	Cofactor Cube
	Cubes    []Cube
}

// NewCubeList builds a CubeList over d with the given cofactor and cubes
// slice (retained, not copied).
func (d *Descriptor) NewCubeList(cofactor Cube, cubes []Cube) *CubeList {
	return &CubeList{Desc: d, Cofactor: cofactor, Cubes: cubes}
}

// Cube1List builds the top-level CubeList for a cover with no cofactoring
// applied yet: Cofactor is the all-zero cube (spec.md §4.2's cofactor(T,c)
// accumulates fullset\c into it on each recursive step, starting from
// nothing restricted).
func (d *Descriptor) Cube1List(A *Cover) *CubeList {
	cubes := make([]Cube, A.Len())
	copy(cubes, A.Cubes())
	return d.NewCubeList(d.NewCube(), cubes)
}

// Len returns the number of cubes in the list (not counting the cofactor).
func (cl *CubeList) Len() int { return len(cl.Cubes) }

// ToCover copies the list's cubes (cloned, independent storage) into a
// fresh Cover over the same Descriptor. The cofactor cube is not part of
// the result — callers that need it back in the unrestricted space must
// re-apply it themselves (this is what recur.Cofactor's callers do when
// reassembling a recursive result).
func (cl *CubeList) ToCover() *Cover {
	out := cl.Desc.NewCover(cl.Len())
	for _, c := range cl.Cubes {
		out.Add(c.Clone())
	}
	return out
}
