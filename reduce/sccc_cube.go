// File: sccc_cube.go
// Role: sccc_cube (spec.md §4.5) — AND the smallest cube containing the
// complement of a single cube into a running result.
package reduce

import "github.com/katalvlaran/espresso/cube"

// ScccCube ANDs into result the smallest cube containing the complement of
// p: by De Morgan, a cube with two or more active variables has a
// complement spanning the whole universe (result is left unchanged); with
// exactly one active variable, the complement is p's bitwise complement in
// that variable, ANDed into result.
func ScccCube(d *cube.Descriptor, result *cube.Cube, p cube.Cube) {
	v := d.Cactive(p)
	if v < 0 {
		return
	}

	temp := d.NewCube()
	_ = d.SetXor(&temp, p, d.VarMask[v])
	out := d.NewCube()
	_ = d.SetAnd(&out, *result, temp)
	*result = out
}
