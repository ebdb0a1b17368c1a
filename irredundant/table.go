// File: table.go
// Role: irred_derive_table / fcube_is_covered / ftautology /
// ftaut_special_cases of irred.c — the tautology-flavored recursive walk
// that, instead of returning a bool, records at each unate leaf a new row
// of the irredundant covering table.
package irredundant

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/mincov"
	"github.com/katalvlaran/espresso/recur"
	"github.com/katalvlaran/espresso/sparse"
)

// rowDominanceInterval mirrors irred_derive_table's periodic row-dominance
// cleanup: after every 1000 new rows, redundant rows of the table-so-far
// are dropped to keep memory bounded on large problems.
const rowDominanceInterval = 1000

// BuildTable builds the irredundant covering table for the partially
// redundant cubes rp: one or more rows per cube of rp, each row listing
// (in the column space of the original cover F, via each cube's Size tag)
// the candidates that together cover one subspace of that rp cube not
// covered by any other cube outside rp. ncols is F's cube count.
func BuildTable(d *cube.Descriptor, don, e, rp *cube.Cover, ncols int) (*sparse.Matrix, error) {
	for i := 0; i < don.Len(); i++ {
		c := don.At(i)
		c.ClearFlag(cube.FlagRedund)
		don.Set(i, c)
	}
	for i := 0; i < e.Len(); i++ {
		c := e.At(i)
		c.ClearFlag(cube.FlagRedund)
		e.Set(i, c)
	}
	for i := 0; i < rp.Len(); i++ {
		c := rp.At(i)
		c.SetFlag(cube.FlagRedund)
		rp.Set(i, c)
	}

	list := d.NewCover(don.Len() + e.Len() + rp.Len())
	list.AddAll(don)
	list.AddAll(e)
	list.AddAll(rp)

	table := sparse.NewMatrix(0, ncols)
	nextRow := 0
	sinceDominance := 0

	for i := 0; i < rp.Len(); i++ {
		p := rp.At(i)

		cl := recur.Cofactor(d, d.Cube1List(list), p)

		var dr *recur.Driver
		dr = &recur.Driver{
			Desc:    d,
			Special: ftautSpecial(d, table, &nextRow, p.Size()),
			Combine: func(_ *cube.CubeList, _, _ recur.Result, _, _ cube.Cube, _ int) recur.Result {
				return struct{}{}
			},
		}
		if _, err := dr.Recur(cl); err != nil {
			return nil, err
		}

		p.ClearFlag(cube.FlagRedund)
		rp.Set(i, p)

		if table.NRows-sinceDominance > rowDominanceInterval {
			mincov.RowDominance(table)
			sinceDominance = table.NRows
		}
	}

	return table, nil
}

// ftautSpecial builds the per-rp-cube ftaut_special_cases ladder as a
// recur.SpecialCase. table and nextRow are shared across every leaf found
// while walking the recursion tree for one rp cube; selfCol is that cube's
// Size tag, the column unconditionally recorded in every row it forces
// open — the rp cube trivially covers its own leaf by being selected.
func ftautSpecial(d *cube.Descriptor, table *sparse.Matrix, nextRow *int, selfCol int32) recur.SpecialCase {
	return func(cl *cube.CubeList) (recur.Result, bool) {
		cof := cl.Cofactor

		for _, p := range cl.Cubes {
			if p.HasFlag(cube.FlagRedund) {
				continue
			}
			if recur.FullRow(d, p, cof) {
				return struct{}{}, true
			}
		}

		cubes := cl.Cubes
		for {
			count := recur.MassiveCount(d, d.NewCubeList(cof, cubes))

			if count.VarsUnate == count.VarsActive {
				row := *nextRow
				*nextRow++
				table.Insert(row, int(selfCol))
				for _, p := range cubes {
					if p.HasFlag(cube.FlagRedund) && recur.FullRow(d, p, cof) && table.Find(row, int(p.Size())) == nil {
						table.Insert(row, int(p.Size()))
					}
				}

				return struct{}{}, true
			}

			if count.VarsUnate != 0 {
				ceil := d.NewCube()
				for v := 0; v < d.NVars; v++ {
					if count.Stats[v].IsUnate {
						merged := d.NewCube()
						_ = d.SetOr(&merged, ceil, d.VarMask[v])
						ceil = merged
					}
				}

				filtered := make([]cube.Cube, 0, len(cubes))
				for _, p := range cubes {
					t := d.NewCube()
					_ = d.SetOr(&t, p, cof)
					if d.SetpImplies(ceil, t) {
						filtered = append(filtered, p)
					}
				}
				cubes = filtered

				continue
			}

			return nil, false
		}
	}
}
