package mincov

// Weight returns the cost of selecting column col. A nil Weight (the
// common case, spec.md §4.11's default) means every column costs 1.
type Weight func(col int) int

func weightOf(w Weight, col int) int {
	if w == nil {
		return 1
	}

	return w(col)
}

// Options configures MinimumCover.
type Options struct {
	// Heuristic, when true, returns as soon as one branch (accepting the
	// chosen column) has been explored, without trying the complementary
	// branch — fast, but the result is no longer guaranteed optimal
	// (mincov.c's sm_minimum_cover `heuristic` flag).
	Heuristic bool

	// Stats, if non-nil, is filled in with search counters as MinimumCover
	// runs (mincov.c's stats_t). Left nil, the default, costs nothing.
	Stats *Stats
}

// DefaultOptions returns exact (non-heuristic) covering with no stats
// collection.
func DefaultOptions() Options {
	return Options{Heuristic: false}
}

// Stats reports counters from a single MinimumCover run.
type Stats struct {
	// GimpelCount is how many times GimpelReduce matched gimpel.c's
	// primary/secondary-row pattern and reduced the matrix.
	GimpelCount int
}
