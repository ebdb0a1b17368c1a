// File: espresso.go
// Role: espresso() of espresso.c — the top-level heuristic minimization
// schedule: setup (optional onset recomputation and output unraveling),
// initial expand/irredundant, essential-removal, the reduce/expand/
// irredundant stabilization loop with last-gasp/super-gasp perturbation,
// essential re-appending, and a final make-sparse cleanup, guarded by a
// size check against the original cover that retries once without
// unraveling if the schedule ever grew the cover instead of shrinking it.
package espresso

import (
	"github.com/katalvlaran/espresso/complement"
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/expand"
	"github.com/katalvlaran/espresso/gasp"
	"github.com/katalvlaran/espresso/irredundant"
	"github.com/katalvlaran/espresso/reduce"
)

// unravelOutputCostCeiling is cover_cost's hard cap on the output literal
// count below which unraveling is judged worthwhile (espresso.c: "cost.out
// < 5000").
const unravelOutputCostCeiling = 5000

// Espresso minimizes f (relative to the don't-care set don, against the
// off-set r) according to opts. Algorithm selects between the heuristic
// schedule (this function's own body) and MinimizeExact.
func Espresso(d *cube.Descriptor, f, don, r *cube.Cover, opts Options) (*cube.Cover, error) {
	switch opts.Algorithm {
	case Exact:
		return MinimizeExact(d, f, don, r, opts)
	case Heuristic:
		// fall through to the schedule below
	default:
		return nil, ErrUnknownAlgorithm
	}

	fsave := f.Clone()
	unwrap := opts.UnwrapOnset

	// espresso.c's goto-begin retry is bounded here at two attempts: the
	// first with opts.UnwrapOnset as given, the second (only reached if
	// the first grew the cover) with unwrap forced off. Forcing it off
	// removes the one step the guard exists to catch, so a second
	// failure would indicate the rest of the schedule itself grew the
	// cover — something the original's own retry cannot fix either.
	for attempt := 0; attempt < 2; attempt++ {
		out, err := runSchedule(d, fsave.Clone(), don, r, opts, unwrap)
		if err != nil {
			return nil, err
		}

		if fsave.Len() < out.Len() && unwrap {
			unwrap = false
			continue
		}

		return out, nil
	}

	return runSchedule(d, fsave.Clone(), don, r, opts, false)
}

// runSchedule runs one full attempt of the schedule body (everything
// between espresso.c's `begin:` label and its Fsave size check). don is
// the caller's original don't-care set (espresso.c's D1): it is read but
// never mutated here. A private scratch copy (espresso.c's `D =
// sf_save(D1)`) absorbs essential-removal's cubes instead, since
// make_sparse at the end is explicitly called against D1, not that
// mutated scratch copy.
func runSchedule(d *cube.Descriptor, f, don, r *cube.Cover, opts Options, unwrap bool) (*cube.Cover, error) {
	donScratch := don.Clone()
	var err error

	if opts.RecomputeOnset {
		f, err = complement.Simplify(d, f)
		if err != nil {
			return nil, err
		}
	}

	cost := CoverCost(d, f)
	if unwrap && d.PartSize[d.NVars-1] > 1 &&
		cost.Out != cost.Cubes*d.PartSize[d.NVars-1] &&
		cost.Out < unravelOutputCostCeiling {
		unraveled, uerr := d.UnravelRange(f, d.NVars-1, d.NVars-1)
		if uerr != nil {
			return nil, uerr
		}
		f = d.SfContain(unraveled)
	}

	for i := 0; i < f.Len(); i++ {
		c := f.At(i)
		c.ClearFlag(cube.FlagPrime)
		f.Set(i, c)
	}
	f, err = expand.Expand(d, f, r, expand.Options{Nonsparse: false})
	if err != nil {
		return nil, err
	}
	f, err = irredundant.Irredundant(d, f, donScratch, irredundant.DefaultOptions())
	if err != nil {
		return nil, err
	}

	if !opts.SingleExpand {
		var e *cube.Cover
		if opts.RemoveEssential {
			e, err = irredundant.Essential(d, f, donScratch)
			if err != nil {
				return nil, err
			}
		} else {
			e = d.NewCover(0)
		}

		var best Cost
		alternate := false
		for {
			for {
				best = CoverCost(d, f)
				f, err = reduce.Reduce(d, f, donScratch, reduce.Options{AlternateOrdering: alternate})
				if err != nil {
					return nil, err
				}
				alternate = !alternate

				f, err = expand.Expand(d, f, r, expand.Options{Nonsparse: false})
				if err != nil {
					return nil, err
				}
				f, err = irredundant.Irredundant(d, f, donScratch, irredundant.DefaultOptions())
				if err != nil {
					return nil, err
				}

				cost = CoverCost(d, f)
				if cost.Cubes >= best.Cubes {
					break
				}
			}

			best = cost
			if opts.UseSuperGasp {
				f, err = gasp.SuperGasp(d, f, donScratch, r)
				if err != nil {
					return nil, err
				}
				cost = CoverCost(d, f)
				if cost.Cubes >= best.Cubes {
					break
				}
			} else {
				f, err = gasp.LastGasp(d, f, donScratch, r)
				if err != nil {
					return nil, err
				}
				cost = CoverCost(d, f)
			}

			if !(cost.Cubes < best.Cubes || (cost.Cubes == best.Cubes && cost.Total < best.Total)) {
				break
			}
		}

		f.SfAppend(e)
	}

	if !opts.SkipMakeSparse {
		f, err = MakeSparse(d, f, don, r)
		if err != nil {
			return nil, err
		}
	}

	return f, nil
}
