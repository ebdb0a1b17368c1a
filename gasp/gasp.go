// File: gasp.go
// Role: last_gasp, super_gasp, and irred_gasp of gasp.c — the two
// top-level perturbation strategies offered to the minimization loop
// when ordinary reduce/expand/irredundant has stalled.
package gasp

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/expand"
	"github.com/katalvlaran/espresso/irredundant"
)

// irredGasp folds g's candidate primes into f and lets Irredundant pick a
// minimal subset; if g is empty, f is returned unchanged (nothing to
// gain from re-running Irredundant over the same cover).
func irredGasp(d *cube.Descriptor, f, don, g *cube.Cover) (*cube.Cover, error) {
	if g.Len() == 0 {
		return f, nil
	}

	merged := f.Clone()
	merged.AddAll(g)

	return irredundant.Irredundant(d, merged, don, irredundant.DefaultOptions())
}

// LastGasp computes the maximal reduction of every cube of f without
// replacement, expands the reduced cubes (keeping only those expansions
// that reach some other reduced cube as new candidates), and lets
// Irredundant settle the resulting cover down to a minimal subset. This
// can reduce the cube count below what the ordinary reduce/expand/
// irredundant loop alone reaches, at the cost of exploring a cover no
// single cube of f by itself would have suggested.
func LastGasp(d *cube.Descriptor, f, don, r *cube.Cover) (*cube.Cover, error) {
	g, err := reduceGasp(d, f, don)
	if err != nil {
		return nil, err
	}

	g1, err := expandGasp(d, g, don, r, f)
	if err != nil {
		return nil, err
	}

	return irredGasp(d, f, don, g1)
}

// SuperGasp is LastGasp's more exhaustive sibling: instead of trying to
// cover just the other reduced cubes one at a time, it enumerates every
// prime implicant covering each reduced cube (expand.AllPrimes) and hands
// the entire set to Irredundant, which alone decides which of them
// belong in the final minimal subset.
func SuperGasp(d *cube.Descriptor, f, don, r *cube.Cover) (*cube.Cover, error) {
	g, err := reduceGasp(d, f, don)
	if err != nil {
		return nil, err
	}

	g1, err := expand.AllPrimes(d, g, r)
	if err != nil {
		return nil, err
	}

	merged := d.RmEqual(d.SfJoin(f, g1))

	return irredundant.Irredundant(d, merged, don, irredundant.DefaultOptions())
}
