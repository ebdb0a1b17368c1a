// File: sccc.go
// Role: sccc (spec.md §4.5) — the top-level SCCC driver over recur.Driver.
package reduce

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/recur"
)

// newScccDriver builds the recur.Driver shared by Sccc and by reduceCube's
// restricted recursive calls (the latter start from a CubeList that
// already carries a non-empty cofactor, so they drive the recursion
// directly rather than going through Sccc's Cover-based entry point).
func newScccDriver(d *cube.Descriptor) *recur.Driver {
	var dr *recur.Driver
	dr = &recur.Driver{
		Desc: d,
		Special: scccSpecial(d, func(cl *cube.CubeList) result {
			r, err := dr.Recur(cl)
			if err != nil {
				return result{err: err}
			}
			return r.(result)
		}),
		Combine: scccMerge(d),
	}

	return dr
}

// Sccc returns the smallest cube containing the complement of f: the
// tightest cube c such that bar(f) is a subset of c, equivalently the
// cube obtained by ORing together every maxterm-complement bound f's
// cubes impose.
//
// Complexity: exponential worst case, as for any unate-recursive-paradigm
// algorithm.
func Sccc(d *cube.Descriptor, f *cube.Cover) (cube.Cube, error) {
	return scccList(d, d.Cube1List(f))
}

// scccList runs Sccc's recursion over an already-built CubeList, used by
// reduceCube to avoid rebuilding a fresh (cofactor-less) list from a Cover
// when the caller has already restricted one.
func scccList(d *cube.Descriptor, cl *cube.CubeList) (cube.Cube, error) {
	dr := newScccDriver(d)
	res, err := dr.Recur(cl)
	if err != nil {
		return cube.Cube{}, err
	}
	out := res.(result)

	return out.cube, out.err
}
