// File: irredundant.go
// Role: irredundant and mark_irredundant of irred.c — the top-level
// driver combining Split, BuildTable, and a heuristic minimum cover into
// one ACTIVE/inactive marking of F.
package irredundant

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/mincov"
)

// Irredundant returns a minimal subset of f that still covers f (relative
// to don): every cube not selected is dropped from the returned cover.
// Options.AssumeIrredundant skips the computation entirely and returns f
// unchanged, active, for callers that already know it holds no redundant
// cube (irred.c's force_irredundant).
func Irredundant(d *cube.Descriptor, f, don *cube.Cover, opts Options) (*cube.Cover, error) {
	if opts.AssumeIrredundant {
		for i := 0; i < f.Len(); i++ {
			c := f.At(i)
			c.SetFlag(cube.FlagActive)
			f.Set(i, c)
		}

		return f, nil
	}

	if err := markIrredundant(d, f, don); err != nil {
		return nil, err
	}

	return d.SfInactive(f), nil
}

// markIrredundant finds the redundant cubes of f and clears their ACTIVE
// flag (and ACTIVE/RELESSEN on every cube first, since the essential
// split below is the sole source of truth for both): split f into
// relatively essential e and partially redundant rp, derive the covering
// table over rp, solve it heuristically, then mark e and the selected
// columns ACTIVE (e also gets RELESSEN, for a later Essential pre-pass).
func markIrredundant(d *cube.Descriptor, f, don *cube.Cover) error {
	e, _, rp, err := Split(d, f, don)
	if err != nil {
		return err
	}

	table, err := BuildTable(d, don, e, rp, f.Len())
	if err != nil {
		return err
	}
	selected := mincov.MinimumCover(table, nil, mincov.Options{Heuristic: true})

	for i := 0; i < f.Len(); i++ {
		c := f.At(i)
		c.ClearFlag(cube.FlagActive)
		c.ClearFlag(cube.FlagRelessen)
		f.Set(i, c)
	}
	for i := 0; i < e.Len(); i++ {
		idx := int(e.At(i).Size())
		c := f.At(idx)
		c.SetFlag(cube.FlagActive)
		c.SetFlag(cube.FlagRelessen)
		f.Set(idx, c)
	}
	for _, col := range selected {
		c := f.At(col)
		c.SetFlag(cube.FlagActive)
		f.Set(col, c)
	}

	return nil
}
