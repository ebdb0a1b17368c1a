// File: split.go
// Role: irred_split_cover and cube_is_covered of irred.c — partitioning F
// into relatively essential, totally redundant, and partially redundant
// cubes.
package irredundant

import (
	"github.com/katalvlaran/espresso/complement"
	"github.com/katalvlaran/espresso/cube"
)

// CubeIsCovered reports whether p is covered by the union of fd's cubes:
// cube_is_covered(T, c) := tautology(cofactor(T, c)). Rather than port a
// second copy of the tautology special-case ladder (irred.c duplicates
// compl.c's verbatim; this repository keeps one), the identity
// cofactor(T,c)-is-a-tautology ⟺ T ∪ ComplCube(c) is a tautology over the
// full universe lets CubeIsCovered reuse complement.Tautology directly.
func CubeIsCovered(d *cube.Descriptor, fd *cube.Cover, p cube.Cube) (bool, error) {
	bar := complement.ComplCube(d, p)
	test := d.NewCover(fd.Len() + bar.Len())
	test.AddAll(fd)
	test.AddAll(bar)

	return complement.Tautology(d, test, complement.DefaultOptions())
}

// Split partitions f (relative to the don't-care set don) into e
// (relatively essential: not covered by the rest of f ∪ don), rt (totally
// redundant: covered by e ∪ don alone), and rp (partially redundant:
// covered by f ∪ don but only with help from other redundant cubes).
// Every cube carries its position in f as its Size tag on the way out, so
// later stages (BuildTable, Irredundant) can translate back to f's index
// space.
func Split(d *cube.Descriptor, f, don *cube.Cover) (e, rt, rp *cube.Cover, err error) {
	numbered := make([]cube.Cube, f.Len())
	for i := 0; i < f.Len(); i++ {
		c := f.At(i)
		c.SetSize(int32(i))
		numbered[i] = c
	}

	e = d.NewCover(f.Len())
	r := d.NewCover(f.Len())

	for i, p := range numbered {
		rest := d.NewCover(f.Len() - 1 + don.Len())
		for j, q := range numbered {
			if j != i {
				rest.Add(q)
			}
		}
		rest.AddAll(don)

		covered, cerr := CubeIsCovered(d, rest, p)
		if cerr != nil {
			return nil, nil, nil, cerr
		}
		if covered {
			r.Add(p)
		} else {
			e.Add(p)
		}
	}

	rt = d.NewCover(r.Len())
	rp = d.NewCover(r.Len())

	ed := d.NewCover(e.Len() + don.Len())
	ed.AddAll(e)
	ed.AddAll(don)

	for i := 0; i < r.Len(); i++ {
		p := r.At(i)
		covered, cerr := CubeIsCovered(d, ed, p)
		if cerr != nil {
			return nil, nil, nil, cerr
		}
		if covered {
			rt.Add(p)
		} else {
			rp.Add(p)
		}
	}

	return e, rt, rp, nil
}
