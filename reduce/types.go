package reduce

// Options configures Reduce.
type Options struct {
	// AlternateOrdering selects which of the two cube orderings Reduce
	// applies before reducing: false for SortReduce (distance from the
	// largest cube), true for MiniSort-descending. spec.md §4.5 alternates
	// between them across successive calls within one minimization; this
	// is modeled as an explicit flag the caller (package espresso) flips
	// between calls rather than hidden toggle state internal to Reduce.
	AlternateOrdering bool
}

// DefaultOptions returns Reduce's default ordering (SortReduce).
func DefaultOptions() Options {
	return Options{AlternateOrdering: false}
}
