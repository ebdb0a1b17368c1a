// File: driver.go
// Role: expand1 and Expand of expand.c — the per-cube expansion driver
// and the top-level pass over the whole on-set.
package expand

import "github.com/katalvlaran/espresso/cube"

// expand1 expands a single cube c of f (at index skipIndex, so it never
// tries to cover itself) against the off-set r, optionally also trying to
// cover other active cubes of f. initLower is OR'd out of the free set
// before expansion starts (Options.Nonsparse's forced sparse-variable
// lowering). Returns the expanded cube, how many other on-set cubes it
// covered, and the overexpanded cube (raise∨free right after the first
// essenParts call, used by the caller to flag inessential primes).
func expand1(d *cube.Descriptor, bb, f *cube.Cover, skipIndex int, c, initLower cube.Cube) (raise cube.Cube, numCovered int, overexpanded cube.Cube, err error) {
	setupBB(d, bb)
	if f != nil {
		setupCC(d, f, skipIndex)
	}

	super := c.Clone()
	raise = c.Clone()
	free := d.NewCube()
	_ = d.SetDiff(&free, d.Fullset, raise)

	if !d.SetpEmpty(initLower) {
		newFree := d.NewCube()
		_ = d.SetDiff(&newFree, free, initLower)
		free = newFree
		elimLowering(d, bb, f, raise, free)
	}

	if err = essenParts(d, bb, f, &raise, &free); err != nil {
		return cube.Cube{}, 0, cube.Cube{}, err
	}

	overexpanded = d.NewCube()
	_ = d.SetOr(&overexpanded, raise, free)

	if f != nil && activeCount(f) > 0 {
		if err = selectFeasible(d, bb, f, &raise, &free, &super, &numCovered); err != nil {
			return cube.Cube{}, 0, cube.Cube{}, err
		}
	}

	for f != nil && activeCount(f) > 0 {
		best := mostFrequent(d, f, free)
		if best < 0 {
			break
		}
		_ = d.BitInsert(&raise, best)
		_ = d.BitRemove(&free, best)
		if err = essenParts(d, bb, f, &raise, &free); err != nil {
			return cube.Cube{}, 0, cube.Cube{}, err
		}
	}

	for activeCount(bb) > 0 {
		if err = coverFallback(d, bb, &raise, &free); err != nil {
			return cube.Cube{}, 0, cube.Cube{}, err
		}
	}

	merged := d.NewCube()
	_ = d.SetOr(&merged, raise, free)
	raise = merged

	return raise, numCovered, overexpanded, nil
}

// Expand grows every nonprime, not-yet-covered cube of f into a prime
// implicant against the off-set r, in place: cubes covered along the way
// are dropped from the returned cover (spec.md §4.4).
func Expand(d *cube.Descriptor, f, r *cube.Cover, opts Options) (*cube.Cover, error) {
	ordered := d.MiniSort(f, d.Ascend())

	initLower := d.NewCube()
	if opts.Nonsparse {
		for v := 0; v < d.NVars; v++ {
			if d.Sparse[v] {
				merged := d.NewCube()
				_ = d.SetOr(&merged, initLower, d.VarMask[v])
				initLower = merged
			}
		}
	}

	for i := 0; i < ordered.Len(); i++ {
		c := ordered.At(i)
		c.ClearFlag(cube.FlagCovered)
		c.ClearFlag(cube.FlagNonessen)
		ordered.Set(i, c)
	}

	for i := 0; i < ordered.Len(); i++ {
		c := ordered.At(i)
		if c.HasFlag(cube.FlagPrime) || c.HasFlag(cube.FlagCovered) {
			continue
		}

		raised, numCovered, overexpanded, err := expand1(d, r, ordered, i, c, initLower)
		if err != nil {
			return nil, err
		}

		raised.SetFlag(cube.FlagPrime)
		raised.ClearFlag(cube.FlagCovered)
		if numCovered == 0 && !d.SetpEqual(raised, overexpanded) {
			raised.SetFlag(cube.FlagNonessen)
		}
		ordered.Set(i, raised)
	}

	for i := 0; i < ordered.Len(); i++ {
		c := ordered.At(i)
		if c.HasFlag(cube.FlagCovered) {
			c.ClearFlag(cube.FlagActive)
		} else {
			c.SetFlag(cube.FlagActive)
		}
		ordered.Set(i, c)
	}

	return d.SfInactive(ordered), nil
}
