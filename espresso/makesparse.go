// File: makesparse.go
// Role: make_sparse and mv_reduce of sparse.c — a final cleanup pass that
// reduces literals in variables marked sparse, then re-expands the dense
// variables to recover anything mv_reduce gave up without need.
package espresso

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/expand"
	"github.com/katalvlaran/espresso/irredundant"
)

// MakeSparse alternates mvReduce (an irredundant-based per-sparse-variable
// part elimination) with a dense-only expand, stopping as soon as a round
// fails to improve Cost.Total (sparse.c's make_sparse do-while, always
// iterated to convergence — force_irredundant in the original is a fixed
// global, not a caller option, so the loop body always runs to a fixed
// point here too).
func MakeSparse(d *cube.Descriptor, f, don, r *cube.Cover) (*cube.Cover, error) {
	best := CoverCost(d, f)

	for {
		var err error
		f, err = mvReduce(d, f, don)
		if err != nil {
			return nil, err
		}
		cost := CoverCost(d, f)
		if cost.Total == best.Total {
			break
		}
		best = cost

		f, err = expand.Expand(d, f, r, expand.Options{Nonsparse: true})
		if err != nil {
			return nil, err
		}
		cost = CoverCost(d, f)
		if cost.Total == best.Total {
			break
		}
		best = cost
	}

	return f, nil
}

// mvReduce performs an "optimal" reduction of every variable marked
// sparse: for each part of each sparse variable, cofactor F (and D) against
// that part, run MarkIrredundant on the cofactored cover, and for every
// cube whose cofactored image came back inactive (redundant), drop that
// part from the original cube — unless the part belongs to the last
// variable (the output) or removing it would leave the variable empty
// there, matching sparse.c's "don't reduce a variable which is full"
// guard via VarMask. Cubes that end up disjoint from their variable's mask
// entirely are then dropped from the cover (sf_inactive at the end of
// mv_reduce).
func mvReduce(d *cube.Descriptor, f, don *cube.Cover) (*cube.Cover, error) {
	for v := 0; v < d.NVars; v++ {
		if !d.Sparse[v] {
			continue
		}

		for part := d.FirstPart[v]; part <= d.LastPart[v]; part++ {
			f1 := d.NewCover(f.Len())
			f1Index := make([]int, 0, f.Len())
			for i := 0; i < f.Len(); i++ {
				p := f.At(i)
				if in, _ := d.BitTest(p, part); in {
					p1 := d.NewCube()
					_ = d.SetDiff(&p1, p, d.VarMask[v])
					_ = d.BitInsert(&p1, part)
					f1.Add(p1)
					f1Index = append(f1Index, i)
				}
			}

			don1 := d.NewCover(don.Len())
			for i := 0; i < don.Len(); i++ {
				p := don.At(i)
				if in, _ := d.BitTest(p, part); in {
					p1 := d.NewCube()
					_ = d.SetDiff(&p1, p, d.VarMask[v])
					_ = d.BitInsert(&p1, part)
					don1.Add(p1)
				}
			}

			if err := irredundant.MarkIrredundant(d, f1, don1); err != nil {
				return nil, err
			}

			for k := 0; k < f1.Len(); k++ {
				p1 := f1.At(k)
				if p1.HasFlag(cube.FlagActive) {
					continue
				}

				i := f1Index[k]
				p := f.At(i)
				if v != d.NVars-1 && !d.SetpImplies(d.VarMask[v], p) {
					_ = d.BitRemove(&p, part)
				}
				p.ClearFlag(cube.FlagPrime)
				f.Set(i, p)
			}
		}
	}

	for i := 0; i < f.Len(); i++ {
		p := f.At(i)
		p.SetFlag(cube.FlagActive)
		f.Set(i, p)
	}
	for v := 0; v < d.NVars; v++ {
		if !d.Sparse[v] {
			continue
		}
		for i := 0; i < f.Len(); i++ {
			p := f.At(i)
			if p.HasFlag(cube.FlagActive) && d.SetpDisjoint(p, d.VarMask[v]) {
				p.ClearFlag(cube.FlagActive)
				f.Set(i, p)
			}
		}
	}

	return d.SfActive(f), nil
}
