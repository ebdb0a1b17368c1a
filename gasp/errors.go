package gasp

import "errors"

// ErrEmptyReduction indicates a cube of the cover reduced to the empty
// set, which reduce_gasp's original treats as an unrecoverable input
// error (gasp.c's reduce_gasp: "empty reduction in reduce_gasp, shouldn't
// happen") — every cube of an irredundant cover carries at least one
// point no other cube covers, so this can only mean f was not actually
// irredundant when last-gasp or super-gasp was invoked.
var ErrEmptyReduction = errors.New("gasp: empty reduction, cover was not irredundant")
