// File: select.go
// Role: most_frequent, feasibly_covered, select_feasible of expand.c —
// the one-level-lookahead greedy choice of which other on-set cubes to
// fold into the current expansion.
package expand

import "github.com/katalvlaran/espresso/cube"

// mostFrequent returns the free part appearing in the most active cubes
// of cc (nil cc tallies nothing), or -1 if free has no bits set. Ties
// favor the lowest-indexed part, matching the original's linear scan.
func mostFrequent(d *cube.Descriptor, cc *cube.Cover, free cube.Cube) int {
	count := make([]int, d.Size)
	if cc != nil {
		for i := 0; i < cc.Len(); i++ {
			p := cc.At(i)
			if !p.HasFlag(cube.FlagActive) {
				continue
			}
			for b := 0; b < d.Size; b++ {
				if set, _ := d.BitTest(p, b); set {
					count[b]++
				}
			}
		}
	}

	bestPart, bestCount := -1, -1
	for b := 0; b < d.Size; b++ {
		set, _ := d.BitTest(free, b)
		if set && count[b] > bestCount {
			bestPart = b
			bestCount = count[b]
		}
	}

	return bestPart
}

// feasiblyCovered reports whether c can be covered while keeping raise∨c
// orthogonal to every active cube of bb, and if so accumulates into
// newLower the parts that covering c would force low.
func feasiblyCovered(d *cube.Descriptor, bb *cube.Cover, c, raise cube.Cube, newLower *cube.Cube) (bool, error) {
	r := d.NewCube()
	_ = d.SetOr(&r, raise, c)
	*newLower = d.NewCube()

	for i := 0; i < bb.Len(); i++ {
		p := bb.At(i)
		if !p.HasFlag(cube.FlagActive) {
			continue
		}

		dist := d.Cdist01(p, r)
		if dist > 1 {
			continue
		}
		if dist == 0 {
			return false, nil
		}
		if err := d.ForceLower(newLower, p, r); err != nil {
			return false, err
		}
	}

	return true, nil
}

// selectFeasible repeatedly widens raise to cover as many active cubes of
// cc as it can, one-level-lookahead: among cubes still feasibly coverable,
// it picks the one whose forced lowering leaves the most of the others
// still feasible (ties broken toward the smallest newly-raised part
// count), folds it in, and loops until nothing feasible remains.
func selectFeasible(d *cube.Descriptor, bb, cc *cube.Cover, raise, free, super *cube.Cube, numCovered *int) error {
	type candidate struct {
		index    int // index into cc
		newLower cube.Cube
	}

	var feas []candidate
	for i := 0; i < cc.Len(); i++ {
		if cc.At(i).HasFlag(cube.FlagActive) {
			feas = append(feas, candidate{index: i})
		}
	}

	for {
		essenRaising(d, bb, raise, free)

		var next []candidate
		for _, f := range feas {
			p := cc.At(f.index)
			if !p.HasFlag(cube.FlagActive) {
				continue
			}

			if d.SetpImplies(p, *raise) {
				*numCovered++
				merged := d.NewCube()
				_ = d.SetOr(&merged, *super, p)
				*super = merged

				p.ClearFlag(cube.FlagActive)
				p.SetFlag(cube.FlagCovered)
				cc.Set(f.index, p)
				continue
			}

			var newLower cube.Cube
			ok, err := feasiblyCovered(d, bb, p, *raise, &newLower)
			if err != nil {
				return err
			}
			if ok {
				next = append(next, candidate{index: f.index, newLower: newLower})
			}
		}
		feas = next

		if len(feas) == 0 {
			return nil
		}

		bestCount, bestSize := 0, -1
		bestIdx := -1
		for i, f := range feas {
			p := cc.At(f.index)
			size := d.SetDist(p, *free)

			count := 0
			for _, g := range feas {
				if d.SetpDisjoint(f.newLower, cc.At(g.index)) {
					count++
				}
			}

			if count > bestCount {
				bestCount, bestSize, bestIdx = count, size, i
			} else if count == bestCount && bestIdx >= 0 && size < bestSize {
				bestSize, bestIdx = size, i
			} else if bestIdx < 0 {
				bestCount, bestSize, bestIdx = count, size, i
			}
		}

		best := cc.At(feas[bestIdx].index)
		merged := d.NewCube()
		_ = d.SetOr(&merged, *raise, best)
		*raise = merged
		diffed := d.NewCube()
		_ = d.SetDiff(&diffed, *free, *raise)
		*free = diffed

		if err := essenParts(d, bb, cc, raise, free); err != nil {
			return err
		}
	}
}
