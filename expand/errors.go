package expand

import "errors"

// ErrNotOrthogonal indicates a cube of the on-set intersects a cube of the
// off-set at distance 0 before any expansion has been attempted — the
// two covers were not orthogonal to begin with (expand.c's essen_parts
// fatal "ON-set and OFF-set are not orthogonal").
var ErrNotOrthogonal = errors.New("expand: on-set and off-set are not orthogonal")
