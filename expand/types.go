package expand

// Options configures Expand.
type Options struct {
	// Nonsparse, when true, restricts expansion to non-sparse variables:
	// every sparse variable is forced into the initial lowering set
	// before expansion starts (expand.c's `expand(F, R, nonsparse)`).
	Nonsparse bool
}

// DefaultOptions expands every variable (sparse and non-sparse alike).
func DefaultOptions() Options {
	return Options{Nonsparse: false}
}
