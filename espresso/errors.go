package espresso

import "errors"

// ErrUnknownAlgorithm is returned when Options.Algorithm selects a value
// outside the Heuristic/Exact enum.
var ErrUnknownAlgorithm = errors.New("espresso: unknown algorithm")
