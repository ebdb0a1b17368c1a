// File: merge.go
// Role: primes_consensus_merge / and_with_cofactor (spec.md §4.10) — the
// merge step that pairs up cubes across the two recursion branches at
// distance 1 and emits their consensus.
package primes

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/recur"
)

// primesMerge builds PrimesConsensus's Merge: AND each branch with its
// cofactor cube (discarding cubes that became the full set, which
// contribute no prime), then for every cross-branch pair at distance 1
// emit their consensus cube into a buffer flushed at opts.FlushThreshold,
// finally unioning everything with sf_contain(sf_join(Tl, Tr)).
func primesMerge(d *cube.Descriptor, opts Options) recur.Merge {
	threshold := opts.FlushThreshold
	if threshold <= 0 {
		threshold = DefaultFlushThreshold
	}

	return func(parent *cube.CubeList, left, right recur.Result, cl, cr cube.Cube, splitVar int) recur.Result {
		lo, ro := left.(result), right.(result)
		if lo.err != nil {
			return result{err: lo.err}
		}
		if ro.err != nil {
			return result{err: ro.err}
		}

		tl := andWithCofactor(d, lo.cover, cl)
		tr := andWithCofactor(d, ro.cover, cr)

		saved := d.SfContain(d.SfJoin(tl, tr))
		buf := d.NewCover(threshold)
		for i := 0; i < tl.Len(); i++ {
			pl := tl.At(i)
			for j := 0; j < tr.Len(); j++ {
				pr := tr.At(j)
				if d.Cdist01(pl, pr) != 1 {
					continue
				}
				c := d.NewCube()
				_ = d.Consensus(&c, pl, pr)
				buf.Add(c)
				if buf.Len() >= threshold {
					saved = d.SfMerge(saved, d.SfContain(buf))
					buf = d.NewCover(threshold)
				}
			}
		}
		saved = d.SfMerge(saved, d.SfContain(buf))

		return result{cover: saved}
	}
}

// andWithCofactor ANDs every cube of A with cof in place, then returns
// only the cubes that did not become the full set (the full ones are
// degenerate after cofactoring and drop out, matching and_with_cofactor's
// SET/RESET(ACTIVE) plus sf_inactive — in this module's flag convention,
// FlagActive marks the live (non-full) cubes kept by SfActive).
func andWithCofactor(d *cube.Descriptor, A *cube.Cover, cof cube.Cube) *cube.Cover {
	for i := 0; i < A.Len(); i++ {
		c := A.At(i)
		_ = d.SetAnd(&c, c, cof)
		if d.SetpFull(c) {
			c.ClearFlag(cube.FlagActive)
		} else {
			c.SetFlag(cube.FlagActive)
		}
		A.Set(i, c)
	}

	return d.SfActive(A)
}
