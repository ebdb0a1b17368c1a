package pla

import "errors"

// Sentinel errors for the pla package, matching spec.md §7.1's "fatal,
// surfaced as a failure result rather than aborting" handling of malformed
// input, and §7 item 3's "reported, not fatal" handling of F/D/R overlap.
var (
	// ErrFieldCount indicates a literal string did not supply exactly one
	// field per variable of the descriptor.
	ErrFieldCount = errors.New("pla: field count does not match descriptor variable count")

	// ErrBadLiteral indicates a field could not be parsed as a literal for
	// its variable (not one of the recognized shorthands, not a bit string
	// of the variable's exact width, not a registered symbolic label).
	ErrBadLiteral = errors.New("pla: unrecognized literal")

	// ErrLabelTableFull indicates a symbolic variable's label table has no
	// free slot left to intern a new token (more distinct tokens were seen
	// than the variable's declared arity allows).
	ErrLabelTableFull = errors.New("pla: symbolic variable has no free slot for new label")

	// ErrNotSymbolic indicates Labels.intern was called against a variable
	// that was never registered as symbolic.
	ErrNotSymbolic = errors.New("pla: variable is not registered as symbolic")

	// ErrOverlapFD, ErrOverlapFR, ErrOverlapDR report a non-empty
	// pairwise intersection between two of F, D, R (spec.md §7 item 3).
	ErrOverlapFD = errors.New("pla: ON-set and don't-care set overlap")
	ErrOverlapFR = errors.New("pla: ON-set and OFF-set overlap")
	ErrOverlapDR = errors.New("pla: don't-care set and OFF-set overlap")

	// ErrNotUniverse reports that F ∪ D ∪ R falls short of the full
	// universe (spec.md §7 item 3).
	ErrNotUniverse = errors.New("pla: ON-set, don't-care set, and OFF-set do not cover the universe")
)
