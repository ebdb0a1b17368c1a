// File: driver.go
// Role: the unate recursive paradigm itself (spec.md §4.2 pseudocode):
// special_case → binate_split_select → scofactor(left) → scofactor(right)
// → merge. Each algorithm built on recur supplies its own SpecialCase and
// Merge; Driver carries nothing but those two dependencies and the shared
// Descriptor, the same explicit-dependency engine shape tsp.bbEngine uses.
package recur

import "github.com/katalvlaran/espresso/cube"

// Result is the opaque per-call return value of a recur-based algorithm:
// a cover for complement, a bool for tautology, a count for SCCC, and so
// on. Each algorithm package defines and type-asserts its own concrete
// type; Driver never inspects it.
type Result any

// SpecialCase is the shared leaf-case template of spec.md §4.2: given the
// current cube list, it either returns a decided Result (ok == true) or
// declines (ok == false), in which case Driver.Recur proceeds to split.
type SpecialCase func(cl *cube.CubeList) (Result, bool)

// Merge combines the results of the left and right recursive calls back
// into one Result. parent is the pre-split cube list at this recursion
// level (several merges, e.g. complement's cost-heuristic lift-policy
// choice, need |parent| alongside the two half-cubes used to cofactor into
// left/right).
type Merge func(parent *cube.CubeList, left, right Result, cl, cr cube.Cube, splitVar int) Result

// Driver runs the unate recursive paradigm over a Descriptor, using a
// caller-supplied SpecialCase and Merge.
type Driver struct {
	Desc    *cube.Descriptor
	Special SpecialCase
	Combine Merge
}

// Recur evaluates cl: it tries Special first, and if that declines, splits
// on BinateSplitSelect's chosen variable, recurses into both halves via
// Scofactor, and combines with Combine. Returns ErrNoUnateLeaf if cl is
// unate (BinateSplitSelect has nothing to split on) and Special did not
// resolve it — every algorithm built on recur must handle special case (6)
// of spec.md §4.2 ("unate cover → solve by unate algorithm directly")
// itself, since only it knows how to invoke the unate cover solver.
func (dr *Driver) Recur(cl *cube.CubeList) (Result, error) {
	if r, ok := dr.Special(cl); ok {
		return r, nil
	}

	best, cl2, cr2, ok := BinateSplitSelect(dr.Desc, cl)
	if !ok {
		return nil, ErrNoUnateLeaf
	}

	left, err := dr.Recur(Scofactor(dr.Desc, cl, cl2, best))
	if err != nil {
		return nil, err
	}
	right, err := dr.Recur(Scofactor(dr.Desc, cl, cr2, best))
	if err != nil {
		return nil, err
	}
	return dr.Combine(cl, left, right, cl2, cr2, best), nil
}
