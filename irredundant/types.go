package irredundant

// Options configures Irredundant.
type Options struct {
	// AssumeIrredundant skips the essential/redundant split entirely and
	// marks every cube ACTIVE: a fast path for callers that already know
	// F is irredundant (irred.c's force_irredundant, spec.md §2).
	AssumeIrredundant bool
}

// DefaultOptions runs the full essential/redundant split.
func DefaultOptions() Options {
	return Options{AssumeIrredundant: false}
}
