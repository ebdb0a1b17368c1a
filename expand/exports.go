// File: exports.go
// Role: espresso.h declares essen_parts, essen_raising, feasibly_covered,
// and setup_BB_CC as extern — shared between expand.c and gasp.c in the
// original. This file re-exports the package's unexported equivalents
// under capitalized names for package gasp, rather than duplicating their
// bodies there.
package expand

import "github.com/katalvlaran/espresso/cube"

// EssenParts is essenParts, exported for package gasp's expand1_gasp.
func EssenParts(d *cube.Descriptor, bb, cc *cube.Cover, raise, free *cube.Cube) error {
	return essenParts(d, bb, cc, raise, free)
}

// EssenRaising is essenRaising, exported for package gasp's expand1_gasp.
func EssenRaising(d *cube.Descriptor, bb *cube.Cover, raise, free *cube.Cube) {
	essenRaising(d, bb, raise, free)
}

// FeasiblyCovered is feasiblyCovered, exported for package gasp's
// expand1_gasp.
func FeasiblyCovered(d *cube.Descriptor, bb *cube.Cover, c, raise cube.Cube, newLower *cube.Cube) (bool, error) {
	return feasiblyCovered(d, bb, c, raise, newLower)
}

// SetupBB is setupBB, exported for package gasp's expand1_gasp.
func SetupBB(d *cube.Descriptor, bb *cube.Cover) {
	setupBB(d, bb)
}

// ActiveCount is activeCount, exported for package gasp.
func ActiveCount(cov *cube.Cover) int {
	return activeCount(cov)
}
