// File: exact.go
// Role: minimize_exact/do_minimize of exact.c — generate every prime
// implicant, then solve the resulting covering problem exactly (or
// heuristically, per Options.ExactCover) instead of settling for an
// irredundant-but-not-necessarily-minimum cover.
package espresso

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/irredundant"
	"github.com/katalvlaran/espresso/mincov"
	"github.com/katalvlaran/espresso/primes"
)

// MinimizeExact enumerates every prime implicant of f∪don (primes.
// PrimesConsensus), splits that prime cover into its relatively essential
// and partially redundant parts (irredundant.Split), derives the covering
// table over the partially redundant primes (irredundant.BuildTable), and
// solves it with mincov.MinimumCover — exactly when opts.ExactCover is
// true, heuristically otherwise. The essential primes plus the selected
// columns form the result; MakeSparse runs afterward unless
// opts.SkipMakeSparse or r is empty.
func MinimizeExact(d *cube.Descriptor, f, don, r *cube.Cover, opts Options) (*cube.Cover, error) {
	fd := d.SfJoin(f, don)
	primeCover, err := primes.PrimesConsensus(d, fd, primes.DefaultOptions())
	if err != nil {
		return nil, err
	}

	e, _, rp, err := irredundant.Split(d, primeCover, don)
	if err != nil {
		return nil, err
	}

	table, err := irredundant.BuildTable(d, don, e, rp, primeCover.Len())
	if err != nil {
		return nil, err
	}

	selected := mincov.MinimumCover(table, nil, mincov.Options{Heuristic: !opts.ExactCover})

	newF := e.Clone()
	for _, col := range selected {
		newF.Add(primeCover.At(col))
	}

	if !opts.SkipMakeSparse && r != nil && r.Len() > 0 {
		newF, err = MakeSparse(d, newF, don, r)
		if err != nil {
			return nil, err
		}
	}

	return newF, nil
}
