package espresso

import "time"

// Algorithm selects the top-level minimization strategy.
type Algorithm int

const (
	// Heuristic runs the full reduce/expand/irredundant schedule with
	// last-gasp or super-gasp perturbation (espresso.c's main loop).
	Heuristic Algorithm = iota

	// Exact runs MinimizeExact: every prime implicant is enumerated and
	// a minimum (not merely irredundant) cover is selected from them.
	Exact
)

// Options configures Espresso and MinimizeExact.
// Zero value is not meaningful; use DefaultOptions() and override fields.
type Options struct {
	// Algorithm selects Heuristic or Exact minimization. Default: Heuristic.
	Algorithm Algorithm

	// RecomputeOnset simplifies F via complement.Simplify before the
	// schedule starts (espresso.c's recompute_onset). Default: false.
	RecomputeOnset bool

	// UnwrapOnset, when the output variable has more than one part and
	// unraveling looks beneficial by the three heuristics of the
	// original (part size > 1, uneven per-cube output literal count,
	// cost.out below 5000), explodes the output variable into one cube
	// per asserted output part before the schedule starts
	// (espresso.c's unwrap_onset / cvrm.c's unravel). Default: true.
	UnwrapOnset bool

	// SingleExpand stops after the initial expand/irredundant pass,
	// skipping essential-removal and the reduce/gasp stabilization loop
	// entirely (espresso.c's single_expand). Default: false.
	SingleExpand bool

	// RemoveEssential extracts absolutely essential primes into a
	// separate cover before the stabilization loop and re-appends them
	// unconditionally afterward (espresso.c's remove_essential).
	// Default: true.
	RemoveEssential bool

	// UseSuperGasp selects SuperGasp over LastGasp as the perturbation
	// step once the inner reduce/expand/irredundant loop stalls
	// (espresso.c's use_super_gasp). Default: false.
	UseSuperGasp bool

	// SkipMakeSparse disables the final MakeSparse cleanup pass.
	// Default: false.
	SkipMakeSparse bool

	// ExactCover, when Algorithm is Exact, requires MinimizeExact's
	// internal covering problem to be solved to provable optimality
	// instead of heuristically (exact.c's do_minimize `exact_cover`
	// flag, inverted into mincov.Options.Heuristic). Default: true.
	ExactCover bool

	// TimeLimit is not read by any step: the Exact algorithm's covering
	// search always runs to completion whatever its value, and heuristic
	// minimization has no wall-clock check either (espresso.c's own
	// schedule has none).
	TimeLimit time.Duration

	// Seed is not read by any step: every ordering and tie-break in this
	// module follows a fixed rule and no random source is used, so runs
	// are reproducible whatever its value. DefaultOptions leaves it 0.
	Seed int64
}

// DefaultOptions returns the standard Espresso-II schedule:
//   - Heuristic algorithm
//   - no onset recomputation, output unraveling tried once
//   - essential-removal and the full stabilization loop enabled
//   - last-gasp (not super-gasp) perturbation
//   - make-sparse cleanup runs
//   - exact covering when Algorithm is switched to Exact
func DefaultOptions() Options {
	return Options{
		Algorithm:       Heuristic,
		RecomputeOnset:  false,
		UnwrapOnset:     true,
		SingleExpand:    false,
		RemoveEssential: true,
		UseSuperGasp:    false,
		SkipMakeSparse:  false,
		ExactCover:      true,
		TimeLimit:       0,
		Seed:            0,
	}
}
