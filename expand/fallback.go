// File: fallback.go
// Role: the local `mincov` function of expand.c, renamed coverFallback to
// avoid colliding with this module's mincov package. Transforms "expand c
// into the largest prime implicant that stays orthogonal to bb" into a
// minimum set-covering problem over the unravelled off-set, falling back
// to a single heuristic step if the unravelling would blow up.
package expand

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/mincov"
	"github.com/katalvlaran/espresso/sparse"
)

// blowupLimit bounds both a single row's part-count product and the
// running total before coverFallback gives up on unravelling and falls
// back to a single most-frequent-part step (expand.c's literal 500).
const blowupLimit = 500

// coverFallback resolves one round of the remaining off-set avoidance
// problem: build, for every active cube of bb, the set of parts that must
// stay out of raise to preserve at least one point of non-intersection,
// then pick a minimum-cardinality set of positions satisfying every such
// constraint (one position per row suffices) and raise everything else.
func coverFallback(d *cube.Descriptor, bb *cube.Cover, raise, free *cube.Cube) error {
	rows := make([]cube.Cube, 0, bb.Len())
	for i := 0; i < bb.Len(); i++ {
		p := bb.At(i)
		if !p.HasFlag(cube.FlagActive) {
			continue
		}
		row := d.NewCube()
		if err := d.ForceLower(&row, p, *raise); err != nil {
			return err
		}
		rows = append(rows, row)
	}

	if tooLarge(d, rows) {
		return heuristicFallback(d, bb, raise, free)
	}

	b := d.NewCover(len(rows))
	for _, r := range rows {
		b.Add(r)
	}

	unravelled, err := d.UnravelRange(b, d.NBinary, d.NVars-1)
	if err != nil {
		return heuristicFallback(d, bb, raise, free)
	}

	m := sparse.NewMatrix(unravelled.Len(), d.Size)
	for i := 0; i < unravelled.Len(); i++ {
		row := unravelled.At(i)
		for bit := 0; bit < d.Size; bit++ {
			if set, _ := d.BitTest(row, bit); set {
				m.Insert(i, bit)
			}
		}
	}

	selected := mincov.MinimumCover(m, nil, mincov.Options{Heuristic: true})
	xlower := d.NewCube()
	for _, col := range selected {
		_ = d.BitInsert(&xlower, col)
	}

	toRaise := d.NewCube()
	_ = d.SetDiff(&toRaise, *free, xlower)
	newRaise := d.NewCube()
	_ = d.SetOr(&newRaise, *raise, toRaise)
	*raise = newRaise
	*free = d.NewCube()

	for i := 0; i < bb.Len(); i++ {
		c := bb.At(i)
		c.ClearFlag(cube.FlagActive)
		bb.Set(i, c)
	}

	return nil
}

// tooLarge reports whether unravelling rows would produce more than
// blowupLimit cubes, either from a single row's multi-valued part product
// or from the running total across all rows.
func tooLarge(d *cube.Descriptor, rows []cube.Cube) bool {
	total := 0
	for _, r := range rows {
		expansion := 1
		for v := d.NBinary; v < d.NVars; v++ {
			if dist := d.SetDist(r, d.VarMask[v]); dist > 1 {
				expansion *= dist
				if expansion > blowupLimit {
					return true
				}
			}
		}
		total += expansion
		if total > blowupLimit {
			return true
		}
	}

	return false
}

// heuristicFallback raises the single most frequent free part (no
// covering-matrix lookahead) and re-tightens via essenParts — the
// original's `heuristic_mincov` label, reached either because the
// unravelled problem was judged too large up front or because the
// unravelling itself overflowed.
func heuristicFallback(d *cube.Descriptor, bb *cube.Cover, raise, free *cube.Cube) error {
	best := mostFrequent(d, nil, *free)
	if best < 0 {
		return nil
	}

	_ = d.BitInsert(raise, best)
	_ = d.BitRemove(free, best)

	return essenParts(d, bb, nil, raise, free)
}
