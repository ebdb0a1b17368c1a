// File: primes.go
// Role: find_all_primes and all_primes of expand.c — enumerating every
// prime implicant that covers a reduced blocking matrix (or, for
// all_primes, every prime covering each cube of an on-set), rather than
// settling for the single expansion expand1 produces.
package expand

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/unatecover"
)

// FindAllPrimes returns every prime implicant reachable from raise/free
// while staying orthogonal to the active cubes of bb. If bb has nothing
// active, raise is already a prime and is returned alone; otherwise the
// problem is recast as an exact covering problem (package unatecover)
// over the unravelled off-set.
func FindAllPrimes(d *cube.Descriptor, bb *cube.Cover, raise, free cube.Cube) (*cube.Cover, error) {
	if activeCount(bb) == 0 {
		out := d.NewCover(1)
		p := raise.Clone()
		p.SetFlag(cube.FlagPrime)
		out.Add(p)

		return out, nil
	}

	b := d.NewCover(bb.Len())
	for i := 0; i < bb.Len(); i++ {
		p := bb.At(i)
		if !p.HasFlag(cube.FlagActive) {
			continue
		}
		row := d.NewCube()
		if err := d.ForceLower(&row, p, raise); err != nil {
			return nil, err
		}
		b.Add(row)
	}

	unravelled, err := d.UnravelRange(b, d.NBinary, d.NVars-1)
	if err != nil {
		return nil, err
	}
	unravelled = d.SfRevContain(unravelled)

	fam := unatecover.NewFamily(d.Size)
	for i := 0; i < unravelled.Len(); i++ {
		row := unravelled.At(i)
		r := unatecover.NewRow(d.Size)
		for bit := 0; bit < d.Size; bit++ {
			if set, _ := d.BitTest(row, bit); set {
				r.Set(bit)
			}
		}
		fam.Add(r)
	}

	covers := unatecover.ExactMinimumCover(fam)

	out := d.NewCover(covers.Len())
	for _, r := range covers.Rows {
		p := d.NewCube()
		for bit := 0; bit < d.Size; bit++ {
			if r.Test(bit) {
				_ = d.BitInsert(&p, bit)
			}
		}

		diffed := d.NewCube()
		_ = d.SetDiff(&diffed, free, p)
		result := d.NewCube()
		_ = d.SetOr(&result, diffed, raise)
		result.SetFlag(cube.FlagPrime)
		out.Add(result)
	}

	return out, nil
}

// AllPrimes returns, for every cube of f, the set of all primes covering
// it against the off-set r: cubes already flagged prime pass through
// unchanged, everything else is expanded via essenParts and handed to
// FindAllPrimes.
func AllPrimes(d *cube.Descriptor, f, r *cube.Cover) (*cube.Cover, error) {
	out := d.NewCover(f.Len())

	for i := 0; i < f.Len(); i++ {
		p := f.At(i)
		if p.HasFlag(cube.FlagPrime) {
			out.Add(p)
			continue
		}

		raise := p.Clone()
		free := d.NewCube()
		_ = d.SetDiff(&free, d.Fullset, raise)

		setupBB(d, r)
		if err := essenParts(d, r, nil, &raise, &free); err != nil {
			return nil, err
		}

		primes, err := FindAllPrimes(d, r, raise, free)
		if err != nil {
			return nil, err
		}
		out.AddAll(primes)
	}

	return out, nil
}
