// File: special_helpers.go
// Role: small cube-list predicates shared by every special-case ladder
// built on Driver (complement, primes, simplify, simp_comp all inline the
// same three checks). Grounded on setc.c's full_row and the identical
// column-of-zeros computation compl_special_cases and
// primes_consensus_special_cases both inline.
package recur

import "github.com/katalvlaran/espresso/cube"

// FullRow reports whether p, unioned with a cube list's cofactor, is the
// full set — the "row of all 1s" leaf every special-case ladder checks
// before anything else.
func FullRow(d *cube.Descriptor, p, cof cube.Cube) bool {
	u := d.NewCube()
	_ = d.SetOr(&u, p, cof)

	return d.SetpFull(u)
}

// Ceiling returns cof unioned with every cube of cubes — the "column of
// all 0s" check tests whether this differs from the full set.
func Ceiling(d *cube.Descriptor, cof cube.Cube, cubes []cube.Cube) cube.Cube {
	ceil := cof.Clone()
	for _, p := range cubes {
		merged := d.NewCube()
		_ = d.SetOr(&merged, ceil, p)
		ceil = merged
	}

	return ceil
}

// FactoredCofactor returns cof extended to also fix every part outside
// ceil — the cofactor update a special-case ladder applies before
// recursing on the column-of-zeros case.
func FactoredCofactor(d *cube.Descriptor, cof, ceil cube.Cube) cube.Cube {
	diff := d.NewCube()
	_ = d.SetDiff(&diff, d.Fullset, ceil)
	out := d.NewCube()
	_ = d.SetOr(&out, cof, diff)

	return out
}
