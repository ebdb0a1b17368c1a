// File: exports.go
// Role: mark_irredundant is called directly by sparse.c's mv_reduce in the
// original, against a per-cofactor sub-cover rather than through the
// irredundant() entry point (which additionally strips inactive cubes via
// sf_inactive). This file re-exports it for package espresso's MakeSparse.
package irredundant

import "github.com/katalvlaran/espresso/cube"

// MarkIrredundant is markIrredundant, exported for package espresso's
// MakeSparse: it marks f's redundant cubes inactive in place, leaving the
// inactive cubes present in the cover (unlike Irredundant, which calls
// SfInactive to drop them), matching mv_reduce's own use of the flag to
// decide which cube positions may drop their current part.
func MarkIrredundant(d *cube.Descriptor, f, don *cube.Cover) error {
	return markIrredundant(d, f, don)
}
