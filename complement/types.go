package complement

// LiftPolicy selects how compl_merge (spec.md §4.3) tries to re-expand
// cubes in the splitting variable after the two recursive halves are
// merged back together.
type LiftPolicy int

const (
	// LiftAuto lets Complement pick ONSET vs simple lift per recursion
	// level by the cost heuristic spec.md §4.3 gives:
	// |Tl|·|Tr| > (|Tl|+|Tr|)·|T| selects ONSET lift, else simple. Only
	// Complement uses this; Simplify and SimpComp always use LiftSimple,
	// matching compl.c's simplify/simp_comp call sites (both pass the
	// fixed USE_COMPL_LIFT constant, never the heuristic).
	LiftAuto LiftPolicy = iota
	// LiftSimple checks single-cube containment of the lifted cube
	// against the other recursion branch (USE_COMPL_LIFT).
	LiftSimple
	// LiftOnset checks the lifted cube for intersection against the
	// original ON-set instead of the other branch (USE_COMPL_LIFT_ONSET).
	LiftOnset
	// LiftOnsetComplex raises every splitting-variable part not forced
	// low by some ON-set cube at distance ≤1, the most expensive and most
	// thorough variant (USE_COMPL_LIFT_ONSET_COMPLEX).
	LiftOnsetComplex
	// LiftNone skips lifting entirely.
	LiftNone
)

// Options configures the complement family of operations.
type Options struct {
	// LiftPolicy overrides Complement's automatic per-level policy
	// selection. Leave at LiftAuto for the cost-heuristic default.
	LiftPolicy LiftPolicy
}

// DefaultOptions returns the automatic lift-policy configuration.
func DefaultOptions() Options {
	return Options{LiftPolicy: LiftAuto}
}
