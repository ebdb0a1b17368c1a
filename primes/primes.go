// File: primes.go
// Role: primes_consensus (spec.md §4.10) — the top-level driver.
package primes

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/recur"
)

// PrimesConsensus enumerates every prime implicant of f by pairwise
// consensus.
//
// Complexity: exponential worst case, as for any unate-recursive-paradigm
// algorithm; practically bounded by BinateSplitSelect's split heuristics
// and opts.FlushThreshold's memory cap during merge.
func PrimesConsensus(d *cube.Descriptor, f *cube.Cover, opts Options) (*cube.Cover, error) {
	var dr *recur.Driver
	dr = &recur.Driver{
		Desc: d,
		Special: primesSpecial(d, func(cl *cube.CubeList) result {
			r, err := dr.Recur(cl)
			if err != nil {
				return result{err: err}
			}
			return r.(result)
		}),
		Combine: primesMerge(d, opts),
	}

	res, err := dr.Recur(d.Cube1List(f))
	if err != nil {
		return nil, err
	}
	out := res.(result)

	return out.cover, out.err
}
