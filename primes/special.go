// File: special.go
// Role: primes_consensus_special_cases (spec.md §4.10) — transcribed from
// primes.c, sharing its leaf shape with complement's ladder (package
// recur's FullRow/Ceiling/FactoredCofactor) but returning the cover
// itself rather than a complement.
package primes

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/recur"
)

// result is the Result type PrimesConsensus's recursion carries: a cover
// plus any error surfaced from the column-of-zeros case's direct
// recursive call back into the algorithm.
type result struct {
	cover *cube.Cover
	err   error
}

// primesSpecial builds primes_consensus_special_cases. recurse is
// PrimesConsensus's own driver, supplied by the caller so the column-of-
// zeros case can recurse into the full algorithm directly, mirroring the
// original's literal `primes_consensus(T)` self-call.
func primesSpecial(d *cube.Descriptor, recurse func(*cube.CubeList) result) recur.SpecialCase {
	return func(cl *cube.CubeList) (recur.Result, bool) {
		cof := cl.Cofactor

		if cl.Len() == 0 {
			return result{cover: d.NewCover(0)}, true
		}

		if cl.Len() == 1 {
			p := d.NewCube()
			_ = d.SetOr(&p, cof, cl.Cubes[0])
			out := d.NewCover(1)
			out.Add(p)
			return result{cover: out}, true
		}

		for _, p := range cl.Cubes {
			if recur.FullRow(d, p, cof) {
				out := d.NewCover(1)
				out.Add(d.Fullset.Clone())
				return result{cover: out}, true
			}
		}

		ceil := recur.Ceiling(d, cof, cl.Cubes)
		if !d.SetpFull(ceil) {
			sub := d.NewCubeList(recur.FactoredCofactor(d, cof, ceil), cl.Cubes)
			rec := recurse(sub)
			if rec.err != nil {
				return result{err: rec.err}, true
			}
			for i := 0; i < rec.cover.Len(); i++ {
				c := rec.cover.At(i)
				_ = d.SetAnd(&c, c, ceil)
				rec.cover.Set(i, c)
			}
			return result{cover: rec.cover}, true
		}

		count := recur.MassiveCount(d, cl)
		if count.VarsActive == 1 {
			out := d.NewCover(1)
			out.Add(d.Fullset.Clone())
			return result{cover: out}, true
		}
		if count.VarsActive > 0 && count.VarsUnate == count.VarsActive {
			return result{cover: d.SfContain(cl.ToCover())}, true
		}

		return nil, false
	}
}
