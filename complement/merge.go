// File: merge.go
// Role: compl_merge (spec.md §4.3) — merge the two recursion branches back
// around the splitting variable, with the three lift policies.
package complement

import (
	"github.com/katalvlaran/espresso/cube"
)

// mergeHalves is compl_merge: AND each cube of left with cl and each cube
// of right with cr, attempt lifting in the splitting variable per policy,
// then distance-1 merge the concatenation. Reused by Complement (merging
// complements), Simplify, and SimpComp (merging simplifications) — the
// original's compl_merge is itself shared by all three call sites, varying
// only the lift policy.
//
// Adapted ordering: lifting runs on the two un-merged halves (each still
// distinguishing which branch a cube came from) before the distance-1
// merge, rather than after as in the original. cube.D1Merge conflates both
// halves into a single new cover and no longer distinguishes branches,
// which lifting needs (it compares a cube of one branch against cubes of
// the other); running lift first preserves that distinction while reusing
// the existing general-purpose D1Merge primitive. Lifting only touches the
// splitting variable's bits and doesn't depend on which other cubes have
// already been distance-1 merged, so this reordering does not change the
// result.
//
// onset is the original (pre-split) ON-set, as a plain Cover; only the
// LiftOnset and LiftOnsetComplex policies use it and callers may pass nil
// for LiftSimple/LiftNone.
func mergeHalves(d *cube.Descriptor, policy LiftPolicy, onset *cube.Cover, left, right *cube.Cover, cl, cr cube.Cube, splitVar int) (*cube.Cover, error) {
	for i := 0; i < left.Len(); i++ {
		c := left.At(i)
		_ = d.SetAnd(&c, c, cl)
		c.SetFlag(cube.FlagActive)
		left.Set(i, c)
	}
	for i := 0; i < right.Len(); i++ {
		c := right.At(i)
		_ = d.SetAnd(&c, c, cr)
		c.SetFlag(cube.FlagActive)
		right.Set(i, c)
	}

	switch policy {
	case LiftSimple:
		liftSimple(d, left, right, cr, splitVar)
		liftSimple(d, right, left, cl, splitVar)
	case LiftOnset:
		liftOnsetPair(d, left, onset, cr, splitVar)
		liftOnsetPair(d, right, onset, cl, splitVar)
	case LiftOnsetComplex:
		if err := liftOnsetComplexPair(d, left, onset, splitVar); err != nil {
			return nil, err
		}
		if err := liftOnsetComplexPair(d, right, onset, splitVar); err != nil {
			return nil, err
		}
	case LiftNone, LiftAuto:
	}

	joined := d.SfJoin(left, right)
	return d.D1Merge(joined, splitVar)
}

// mergeMasked returns a cube whose bits under mask come from x and whose
// bits outside mask come from y (espresso's set_merge idiom).
func mergeMasked(d *cube.Descriptor, x, y, mask cube.Cube) cube.Cube {
	xs := d.NewCube()
	_ = d.SetAnd(&xs, x, mask)
	ys := d.NewCube()
	_ = d.SetDiff(&ys, y, mask)
	r := d.NewCube()
	_ = d.SetOr(&r, xs, ys)
	return r
}

// liftSimple is compl_lift: expand active cubes of a in the splitting
// variable to bcube's extent there, when some active cube of b contains
// the lifted cube (single-cube containment check).
func liftSimple(d *cube.Descriptor, a, b *cube.Cover, bcube cube.Cube, v int) {
	mask := d.VarMask[v]
	liftor := d.NewCube()
	_ = d.SetAnd(&liftor, bcube, mask)

	for i := 0; i < a.Len(); i++ {
		ac := a.At(i)
		if !ac.HasFlag(cube.FlagActive) {
			continue
		}
		lift := mergeMasked(d, bcube, ac, mask)
		for j := 0; j < b.Len(); j++ {
			bc := b.At(j)
			if !bc.HasFlag(cube.FlagActive) {
				continue
			}
			if d.SetpImplies(lift, bc) {
				raised := d.NewCube()
				_ = d.SetOr(&raised, ac, liftor)
				raised.SetFlag(cube.FlagActive)
				a.Set(i, raised)
				break
			}
		}
	}
}

// liftOnsetPair is compl_lift_onset applied to both branches: expand each
// active cube of a to bcube's extent in v, keeping the raise only if it
// doesn't intersect any cube of the original ON-set.
func liftOnsetPair(d *cube.Descriptor, a *cube.Cover, onset *cube.Cover, bcube cube.Cube, v int) {
	mask := d.VarMask[v]
	for i := 0; i < a.Len(); i++ {
		ac := a.At(i)
		if !ac.HasFlag(cube.FlagActive) {
			continue
		}
		liftPart := d.NewCube()
		_ = d.SetAnd(&liftPart, bcube, mask)
		lift := d.NewCube()
		_ = d.SetOr(&lift, ac, liftPart)

		hit := false
		for j := 0; j < onset.Len(); j++ {
			if d.Cdist0(onset.At(j), lift) {
				hit = true
				break
			}
		}
		if !hit {
			lift.SetFlag(cube.FlagActive)
			a.Set(i, lift)
		}
	}
}

// liftOnsetComplexPair is compl_lift_onset_complex applied to one branch:
// raise every part of v not forced low by some ON-set cube within
// distance 1. Returns ErrNotOrthogonal if some ON-set cube is at distance
// 0 (the ON-set and the cover being complemented overlap, a malformed
// input spec.md §7.1 calls out as fatal).
func liftOnsetComplexPair(d *cube.Descriptor, a *cube.Cover, onset *cube.Cover, v int) error {
	for i := 0; i < a.Len(); i++ {
		ac := a.At(i)
		if !ac.HasFlag(cube.FlagActive) {
			continue
		}
		xlower := d.NewCube()
		for j := 0; j < onset.Len(); j++ {
			p := onset.At(j)
			switch d.Cdist01(p, ac) {
			case 0:
				return ErrNotOrthogonal
			case 1:
				_ = d.ForceLower(&xlower, p, ac)
			}
		}
		raise := d.NewCube()
		_ = d.SetDiff(&raise, d.VarMask[v], xlower)
		raised := d.NewCube()
		_ = d.SetOr(&raised, ac, raise)
		raised.SetFlag(cube.FlagActive)
		a.Set(i, raised)
	}
	return nil
}
