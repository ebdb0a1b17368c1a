// File: consistency.go
// Role: the optional PLA consistency check of spec.md §7 item 3 (cvrin.c's
// PLA_verify path): F, D, and R must be pairwise disjoint and must jointly
// cover the entire universe. Callers opt into this explicitly; nothing in
// the rest of the module runs it automatically.
package pla

import (
	"github.com/katalvlaran/espresso/complement"
	"github.com/katalvlaran/espresso/cube"
)

// CheckConsistency verifies that f, don, and r are pairwise disjoint and
// that their union is the universe, returning the first violation found
// (checked in the order F∩D, F∩R, D∩R, then universe coverage). A nil
// return means the three covers partition the universe exactly.
func CheckConsistency(d *cube.Descriptor, f, don, r *cube.Cover) error {
	if !disjoint(d, f, don) {
		return ErrOverlapFD
	}
	if !disjoint(d, f, r) {
		return ErrOverlapFR
	}
	if !disjoint(d, don, r) {
		return ErrOverlapDR
	}

	union := d.SfJoin(d.SfJoin(f, don), r)
	isUniverse, err := complement.Tautology(d, union, complement.DefaultOptions())
	if err != nil {
		return err
	}
	if !isUniverse {
		return ErrNotUniverse
	}
	return nil
}

// disjoint reports whether every cube of a is disjoint from every cube of
// b. Quadratic in cube count; this is a diagnostic check, not a hot path.
func disjoint(d *cube.Descriptor, a, b *cube.Cover) bool {
	for i := 0; i < a.Len(); i++ {
		for j := 0; j < b.Len(); j++ {
			if d.Cdist0(a.At(i), b.At(j)) {
				return false
			}
		}
	}
	return true
}
