package recur

// VarStat is the per-variable tally massive_count produces (spec.md §4.2):
// how many cubes are zero in each of the variable's still-splittable parts.
type VarStat struct {
	// VarZeros is the total zero count across the variable's active parts.
	VarZeros int
	// PartsActive is the number of parts with at least one zero: 0 means
	// the variable is absent from this subproblem, 1 means unate, 2+
	// means binate (a split candidate).
	PartsActive int
	// IsUnate is PartsActive == 1.
	IsUnate bool
	// PartZeros holds the raw zero count of each still-splittable part,
	// in part order; used only to break balance ties in Best selection.
	PartZeros []int
}

// CountResult is the result of MassiveCount: per-variable stats plus the
// chosen splitting variable.
type CountResult struct {
	Stats []VarStat

	// VarsActive is the number of variables with PartsActive >= 1.
	VarsActive int
	// VarsUnate is the number of variables with IsUnate true.
	VarsUnate int
	// Best is the variable chosen for splitting: the binate variable
	// (PartsActive >= 2) maximizing PartsActive, tie-broken by VarZeros,
	// then by the most balanced distribution of zeros across its parts.
	// -1 if no variable is binate (the cube list is unate).
	Best int
}
