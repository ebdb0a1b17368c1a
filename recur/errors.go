package recur

import "errors"

// ErrNoUnateLeaf is returned by Driver.Recur when BinateSplitSelect finds no
// binate variable to split on (the cube list is unate) but the caller's
// SpecialCase hook did not resolve it — special-case (6) of spec.md §4.2
// ("unate cover → solve by unate algorithm directly") is the caller's
// responsibility, not recur's.
var ErrNoUnateLeaf = errors.New("recur: special-case hook did not resolve a unate cube list")
