// File: reduce_gasp.go
// Role: reduce_gasp of gasp.c — the maximal reduction of every cube of f
// in its original order, without replacement (each cube is reduced
// against the whole of f∪don, not against the already-reduced cubes
// ahead of it).
package gasp

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/reduce"
)

// reduceGasp returns a cover with the same cube count and order as f,
// each cube replaced by its maximal reduction against f∪don. A cube that
// did not reduce keeps FlagPrime; one that did loses it.
func reduceGasp(d *cube.Descriptor, f, don *cube.Cover) (*cube.Cover, error) {
	fd := d.SfJoin(f, don)

	g := d.NewCover(f.Len())
	for i := 0; i < f.Len(); i++ {
		p := f.At(i)

		under, err := reduce.ReduceCube(d, fd, i, p)
		if err != nil {
			return nil, err
		}
		if d.SetpEmpty(under) {
			return nil, ErrEmptyReduction
		}

		if d.SetpEqual(under, p) {
			under.SetFlag(cube.FlagPrime)
		} else {
			under.ClearFlag(cube.FlagPrime)
		}
		g.Add(under)
	}

	return g, nil
}
