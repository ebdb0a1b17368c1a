// File: cost.go
// Role: cost_t and cover_cost of cvrmisc.c — a literal-count summary of a
// cover, used by the minimization loop to detect whether a pass improved
// anything.
package espresso

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/recur"
)

// Cost summarizes a cover's literal count. Total is the figure the
// minimization loop actually compares across iterations; the rest are
// informational, matching cvrmisc.c's cost_t.
type Cost struct {
	// Cubes is the cube count of the cover this Cost was computed from.
	Cubes int

	// In is the transistor (zero) count summed across binary variables.
	In int

	// Out is the transistor (one) count of the output variable, if any.
	Out int

	// Mv is the transistor count summed across the remaining
	// multiple-valued variables (sparse variables count ones, dense
	// variables count zeros, matching cover_cost's per-variable branch).
	Mv int

	// Total is In + Out + Mv: the figure compared between iterations.
	Total int

	// Primes is the number of cubes of the cover currently flagged
	// PRIME. cover_cost's comment calls this "the number of nonprime
	// cubes", but the code it sits above counts PRIME-flagged cubes;
	// this field ports the code, not the comment.
	Primes int
}

// CoverCost computes f's Cost (cvrmisc.c's cover_cost).
func CoverCost(d *cube.Descriptor, f *cube.Cover) Cost {
	count := recur.MassiveCount(d, d.Cube1List(f))

	cost := Cost{Cubes: f.Len()}

	for v := 0; v < d.NBinary; v++ {
		cost.In += count.Stats[v].VarZeros
	}

	// cover_cost always treats the last variable as the potential output
	// slot, whether or not one is actually present: the mv loop stops one
	// short of NVars-1 regardless, and only cover_cost's own Out term
	// below picks that last variable up, gated on Output != -1.
	for v := d.NBinary; v < d.NVars-1; v++ {
		if d.Sparse[v] {
			cost.Mv += f.Len()*d.PartSize[v] - count.Stats[v].VarZeros
		} else {
			cost.Mv += count.Stats[v].VarZeros
		}
	}

	if d.Output != -1 {
		cost.Out = f.Len()*d.PartSize[d.Output] - count.Stats[d.Output].VarZeros
	}

	for i := 0; i < f.Len(); i++ {
		if f.At(i).HasFlag(cube.FlagPrime) {
			cost.Primes++
		}
	}

	cost.Total = cost.In + cost.Out + cost.Mv

	return cost
}
