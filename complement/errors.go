package complement

import "errors"

// ErrNotOrthogonal is returned when the complex onset-lift policy finds a
// cube of the ON-set at distance 0 from a candidate lift — the ON-set and
// the cover being complemented were not orthogonal to begin with (spec.md
// §7.1's fatal precondition), surfaced as a sentinel error rather than a
// panic per the teacher's "no panic on user-triggered conditions" policy.
var ErrNotOrthogonal = errors.New("complement: ON-set and OFF-set are not orthogonal")
