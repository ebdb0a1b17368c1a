// File: complement.go
// Role: complement / tautology / simplify / simp_comp (spec.md §4.3) — the
// four top-level drivers over recur.Driver.
package complement

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/recur"
)

// Complement returns the Boolean complement of the function f represents
// over the cube universe d.
//
// Complexity: exponential worst case, as for any unate-recursive-paradigm
// algorithm; practically bounded by the split/merge heuristics of
// recur.BinateSplitSelect.
func Complement(d *cube.Descriptor, f *cube.Cover, opts Options) (*cube.Cover, error) {
	var dr *recur.Driver
	dr = &recur.Driver{
		Desc: d,
		Special: complSpecial(d, func(cl *cube.CubeList) outcome {
			r, err := dr.Recur(cl)
			if err != nil {
				return outcome{err: err}
			}
			return r.(outcome)
		}),
		Combine: complMerge(d, opts),
	}
	res, err := dr.Recur(d.Cube1List(f))
	if err != nil {
		return nil, err
	}
	out := res.(outcome)
	return out.cover, out.err
}

// Tautology reports whether f covers the entire universe: f is a
// tautology iff its complement is empty. spec.md §4.3 describes a
// dedicated special-case ladder for tautology (including a "shrink by
// unate variables and restart" fast path) as a performance optimization
// over computing the full complement; this implementation computes the
// exact same answer via Complement directly, sharing one algorithm
// instead of two parallel leaf-case ladders that would otherwise need to
// be kept in lockstep.
func Tautology(d *cube.Descriptor, f *cube.Cover, opts Options) (bool, error) {
	bar, err := Complement(d, f, opts)
	if err != nil {
		return false, err
	}
	return bar.Len() == 0, nil
}

// Simplify returns a cover for the same function as f, usually with fewer
// cubes, discarding the result and keeping f's cubes verbatim at any merge
// step where simplification didn't help (compl_merge's growth-discard
// heuristic).
func Simplify(d *cube.Descriptor, f *cube.Cover) (*cube.Cover, error) {
	var dr *recur.Driver
	dr = &recur.Driver{
		Desc: d,
		Special: simplifySpecial(d, func(cl *cube.CubeList) outcome {
			r, err := dr.Recur(cl)
			if err != nil {
				return outcome{err: err}
			}
			return r.(outcome)
		}),
		Combine: simplifyMerge(d),
	}
	res, err := dr.Recur(d.Cube1List(f))
	if err != nil {
		return nil, err
	}
	out := res.(outcome)
	return out.cover, out.err
}

// SimpComp computes Simplify(f) and Complement(f) together in one
// recursion, since both share every special case and split decision.
func SimpComp(d *cube.Descriptor, f *cube.Cover) (newCover, bar *cube.Cover, err error) {
	var dr *recur.Driver
	dr = &recur.Driver{
		Desc: d,
		Special: simpCompSpecial(d, func(cl *cube.CubeList) pair {
			r, err := dr.Recur(cl)
			if err != nil {
				return pair{err: err}
			}
			return r.(pair)
		}),
		Combine: simpCompMerge(d),
	}
	res, err := dr.Recur(d.Cube1List(f))
	if err != nil {
		return nil, nil, err
	}
	out := res.(pair)
	return out.newCover, out.bar, out.err
}

// complMerge builds Complement's Merge: the full lift-policy cost
// heuristic of spec.md §4.3 (|Tl|·|Tr| > (|Tl|+|Tr|)·|T| selects ONSET
// lift), or opts.LiftPolicy verbatim if the caller overrode LiftAuto.
func complMerge(d *cube.Descriptor, opts Options) recur.Merge {
	return func(parent *cube.CubeList, left, right recur.Result, cl, cr cube.Cube, splitVar int) recur.Result {
		lo, ro := left.(outcome), right.(outcome)
		if lo.err != nil {
			return outcome{err: lo.err}
		}
		if ro.err != nil {
			return outcome{err: ro.err}
		}

		policy := opts.LiftPolicy
		if policy == LiftAuto {
			tl, tr, tp := lo.cover.Len(), ro.cover.Len(), parent.Len()
			if tl*tr > (tl+tr)*tp {
				policy = LiftOnset
			} else {
				policy = LiftSimple
			}
		}
		var onset *cube.Cover
		if policy == LiftOnset || policy == LiftOnsetComplex {
			onset = parent.ToCover()
		}

		merged, err := mergeHalves(d, policy, onset, lo.cover, ro.cover, cl, cr, splitVar)
		if err != nil {
			return outcome{err: err}
		}
		return outcome{cover: merged}
	}
}

// simplifyMerge builds Simplify's Merge: always LiftSimple, with the
// growth-discard heuristic (keep the pre-split cubes verbatim if the
// merged simplification didn't shrink the cover).
func simplifyMerge(d *cube.Descriptor) recur.Merge {
	return func(parent *cube.CubeList, left, right recur.Result, cl, cr cube.Cube, splitVar int) recur.Result {
		lo, ro := left.(outcome), right.(outcome)
		if lo.err != nil {
			return outcome{err: lo.err}
		}
		if ro.err != nil {
			return outcome{err: ro.err}
		}
		merged, err := mergeHalves(d, LiftSimple, nil, lo.cover, ro.cover, cl, cr, splitVar)
		if err != nil {
			return outcome{err: err}
		}
		if merged.Len() > parent.Len() {
			merged = parent.ToCover()
		}
		return outcome{cover: merged}
	}
}

// simpCompMerge builds SimpComp's Merge: merges both the new-cover and
// complement halves with LiftSimple, applying the growth-discard
// heuristic only to the new cover (matching compl.c's simp_comp, which
// never discards Tbar — only Tnew has a cheaper fallback available).
func simpCompMerge(d *cube.Descriptor) recur.Merge {
	return func(parent *cube.CubeList, left, right recur.Result, cl, cr cube.Cube, splitVar int) recur.Result {
		lp, rp := left.(pair), right.(pair)
		if lp.err != nil {
			return pair{err: lp.err}
		}
		if rp.err != nil {
			return pair{err: rp.err}
		}

		newCover, err := mergeHalves(d, LiftSimple, nil, lp.newCover, rp.newCover, cl, cr, splitVar)
		if err != nil {
			return pair{err: err}
		}
		if newCover.Len() > parent.Len() {
			newCover = parent.ToCover()
		}

		bar, err := mergeHalves(d, LiftSimple, nil, lp.bar, rp.bar, cl, cr, splitVar)
		if err != nil {
			return pair{err: err}
		}

		return pair{newCover: newCover, bar: bar}
	}
}
