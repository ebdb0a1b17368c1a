// File: expand_gasp.go
// Role: expand_gasp and expand1_gasp of gasp.c — expanding reduced cubes
// against the off-set, but only keeping the result as a new candidate
// when it reaches far enough to cover some other reduced cube too.
package gasp

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/expand"
	"github.com/katalvlaran/espresso/reduce"
)

// expandGasp tries every nonprime, not-yet-covered cube of f (the
// maximally reduced cover) for a candidate expansion that reaches some
// other reduced cube, deduplicates the candidates found, and drives each
// all the way to a prime implicant (expand.Expand, nonsparse=false).
func expandGasp(d *cube.Descriptor, f, don, r, forig *cube.Cover) (*cube.Cover, error) {
	g := d.NewCover(10)

	for c1index := 0; c1index < f.Len(); c1index++ {
		candidates, err := expand1Gasp(d, f, don, r, forig, c1index)
		if err != nil {
			return nil, err
		}
		g.AddAll(candidates)
	}

	g = d.RmEqual(g)

	return expand.Expand(d, g, r, expand.Options{Nonsparse: false})
}

// expand1Gasp expands the reduced cube of f at c1index against r, folding
// in every part that can never conflict with r (EssenParts, EssenRaising,
// no further greedy widening). For every other active, reduced cube of f
// that this expansion reaches or could feasibly be widened to reach, it
// rebuilds the original cover with c1index's cube replaced by its reduced
// form, re-reduces the other cube against that hypothetical cover, and —
// if the resulting essential part can also be feasibly folded into the
// expansion — emits the union as a new candidate cube.
func expand1Gasp(d *cube.Descriptor, f, don, r, forig *cube.Cover, c1index int) (*cube.Cover, error) {
	g := d.NewCover(4)

	expand.SetupBB(d, r)

	for i := 0; i < f.Len(); i++ {
		c := f.At(i)
		if i == c1index || c.HasFlag(cube.FlagPrime) {
			c.ClearFlag(cube.FlagActive)
		} else {
			c.SetFlag(cube.FlagActive)
		}
		f.Set(i, c)
	}

	raise := f.At(c1index).Clone()
	free := d.NewCube()
	_ = d.SetDiff(&free, d.Fullset, raise)

	if err := expand.EssenParts(d, r, f, &raise, &free); err != nil {
		return nil, err
	}
	expand.EssenRaising(d, r, &raise, &free)

	for c2index := 0; c2index < f.Len(); c2index++ {
		c2 := f.At(c2index)
		if !c2.HasFlag(cube.FlagActive) {
			continue
		}

		reachable := d.SetpImplies(c2, raise)
		if !reachable {
			var scratch cube.Cube
			ok, err := expand.FeasiblyCovered(d, r, c2, raise, &scratch)
			if err != nil {
				return nil, err
			}
			reachable = ok
		}
		if !reachable {
			continue
		}

		f1 := forig.Clone()
		f1.Set(c1index, f.At(c1index))

		fd1 := d.SfJoin(f1, don)
		c2essential, err := reduce.ReduceCube(d, fd1, c2index, f1.At(c2index))
		if err != nil {
			return nil, err
		}

		var scratch cube.Cube
		ok, err := expand.FeasiblyCovered(d, r, c2essential, raise, &scratch)
		if err != nil {
			return nil, err
		}
		if ok {
			merged := d.NewCube()
			_ = d.SetOr(&merged, raise, c2essential)
			merged.ClearFlag(cube.FlagPrime)
			g.Add(merged)
		}
	}

	return g, nil
}
