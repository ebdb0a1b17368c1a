// File: reduce.go
// Role: reduce / reduce_cube (spec.md §4.5) — replace every cube of F with
// its maximal reduction against F∪D.
package reduce

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/recur"
)

// Reduce returns a cover over the same function as f (relative to the
// don't-care set dc), replacing each cube with its maximal reduction: the
// smallest cube still containing every minterm of f∪dc that only that
// cube of f covers. A cube that reduces to empty is dropped — it carried
// no essential points and is redundant once the rest of the cover stays.
//
// Complexity: O(|f|) calls to Sccc, each exponential worst case in the
// width of its restricted cube list.
func Reduce(d *cube.Descriptor, f, dc *cube.Cover, opts Options) (*cube.Cover, error) {
	if dc == nil {
		dc = d.NewCover(0)
	}

	var ordered *cube.Cover
	if opts.AlternateOrdering {
		ordered = d.MiniSort(f, d.Descend())
	} else {
		ordered = d.SortReduce(f)
	}

	fd := d.SfJoin(ordered, dc)

	out := d.NewCover(ordered.Len())
	for i := 0; i < ordered.Len(); i++ {
		p := ordered.At(i)
		reduced, err := reduceCube(d, fd, i, p)
		if err != nil {
			return nil, err
		}
		if d.SetpEmpty(reduced) {
			continue
		}
		if d.SetpEqual(reduced, p) {
			reduced.SetFlag(cube.FlagPrime)
		}
		out.Add(reduced)
	}

	return out, nil
}

// ReduceCube exposes reduceCube to other packages (package gasp's
// reduce_gasp and expand1_gasp both call reduce_cube directly against a
// caller-assembled FD rather than going through the whole-cover Reduce
// driver). fd must already include p at position skipIndex.
func ReduceCube(d *cube.Descriptor, fd *cube.Cover, skipIndex int, p cube.Cube) (cube.Cube, error) {
	return reduceCube(d, fd, skipIndex, p)
}

// reduceCube computes reduce_cube(FD, p): cofactor FD against p with p's
// own entry (index skipIndex within fd) excluded, take the smallest cube
// containing the complement of what remains, and AND that back with p.
func reduceCube(d *cube.Descriptor, fd *cube.Cover, skipIndex int, p cube.Cube) (cube.Cube, error) {
	others := make([]cube.Cube, 0, fd.Len()-1)
	for i := 0; i < fd.Len(); i++ {
		if i == skipIndex {
			continue
		}
		others = append(others, fd.At(i))
	}
	base := d.NewCubeList(d.NewCube(), others)
	restricted := recur.Cofactor(d, base, p)

	under, err := scccList(d, restricted)
	if err != nil {
		return cube.Cube{}, err
	}

	out := d.NewCube()
	_ = d.SetAnd(&out, under, p)

	return out, nil
}
