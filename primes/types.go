package primes

// DefaultFlushThreshold is the consensus-buffer size at which
// PrimesConsensus's merge step folds accumulated consensus cubes into the
// running result via sf_contain/sf_union, bounding peak memory during the
// pairwise consensus sweep (spec.md §4.10 step 2).
const DefaultFlushThreshold = 500

// Options configures PrimesConsensus.
type Options struct {
	// FlushThreshold overrides DefaultFlushThreshold. Values <= 0 fall
	// back to the default.
	FlushThreshold int
}

// DefaultOptions returns the default consensus-buffer flush threshold.
func DefaultOptions() Options {
	return Options{FlushThreshold: DefaultFlushThreshold}
}
