// File: cover.go
// Role: Cover — a set family (disjunction of cubes) sharing one Descriptor.
// The C original backs a Cover by a contiguous arena with a free-list pool
// (spec.md §3); in Go we let each Cube own its word array and let the
// allocator do the work (DESIGN NOTES §9 explicitly sanctions this
// simplification). Capacity growth still follows the original's 1.5×+1
// geometric ratio (spec.md §9, Open Question #2) so callers tuning for
// large covers see the same amortized behavior.
package cube

// Cover is an ordered collection of cubes sharing one Descriptor. The zero
// Cover is empty and ready to use once Desc is set; prefer NewCover.
type Cover struct {
	Desc  *Descriptor
	cubes []Cube
}

// NewCover returns an empty Cover over d with room for capacityHint cubes
// (0 is fine; it just avoids the first couple of growth steps).
func (d *Descriptor) NewCover(capacityHint int) *Cover {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Cover{Desc: d, cubes: make([]Cube, 0, capacityHint)}
}

// Len returns the number of cubes currently in the cover.
func (c *Cover) Len() int { return len(c.cubes) }

// At returns the i-th cube (0-indexed, caller-validated range — this is a
// hot accessor and intentionally panics like a slice index would on misuse).
func (c *Cover) At(i int) Cube { return c.cubes[i] }

// Set overwrites the i-th cube.
func (c *Cover) Set(i int, v Cube) { c.cubes[i] = v }

// Add appends a cube to the cover, growing capacity by 1.5×+1 when full.
func (c *Cover) Add(v Cube) {
	if len(c.cubes) == cap(c.cubes) {
		newCap := cap(c.cubes) + cap(c.cubes)/2 + 1
		grown := make([]Cube, len(c.cubes), newCap)
		copy(grown, c.cubes)
		c.cubes = grown
	}
	c.cubes = append(c.cubes, v)
}

// AddAll appends every cube of other to c (other is left untouched).
func (c *Cover) AddAll(other *Cover) {
	for i := 0; i < other.Len(); i++ {
		c.Add(other.At(i))
	}
}

// RemoveAt deletes the cube at index i, preserving order of the rest.
func (c *Cover) RemoveAt(i int) {
	c.cubes = append(c.cubes[:i], c.cubes[i+1:]...)
}

// Clone returns a deep copy: a new Cover whose cubes are independent
// clones of c's.
func (c *Cover) Clone() *Cover {
	out := c.Desc.NewCover(c.Len())
	for i := 0; i < c.Len(); i++ {
		out.Add(c.At(i).Clone())
	}
	return out
}

// Cubes returns a read-only view of the backing slice. Callers must not
// retain it across a mutating Cover call (Add may reallocate).
func (c *Cover) Cubes() []Cube { return c.cubes }

// setSlice replaces the backing slice wholesale (used by sort/filter helpers
// in cover_ops.go that build a fresh slice and want to swap it in).
func (c *Cover) setSlice(cubes []Cube) { c.cubes = cubes }
