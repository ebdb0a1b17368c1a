// File: setup.go
// Role: setup_BB_CC, essen_parts, essen_raising, elim_lowering of
// expand.c — the blocking/covering matrix bookkeeping and the three ways
// a cube's raise/free split gets tightened before any choice is made.
package expand

import "github.com/katalvlaran/espresso/cube"

// setupBB marks every cube of bb (the off-set blocking matrix) active.
func setupBB(d *cube.Descriptor, bb *cube.Cover) {
	for i := 0; i < bb.Len(); i++ {
		c := bb.At(i)
		c.SetFlag(cube.FlagActive)
		bb.Set(i, c)
	}
}

// setupCC marks every cube of cc (the on-set covering matrix) active,
// except skipIndex (the cube currently being expanded — the original
// marks it PRIME just before this call so setup_BB_CC's own TESTP(p,PRIME)
// check excludes it; this port takes the index directly instead) and any
// cube already FlagPrime or FlagCovered.
func setupCC(d *cube.Descriptor, cc *cube.Cover, skipIndex int) {
	for i := 0; i < cc.Len(); i++ {
		c := cc.At(i)
		if i == skipIndex || c.HasFlag(cube.FlagPrime) || c.HasFlag(cube.FlagCovered) {
			c.ClearFlag(cube.FlagActive)
		} else {
			c.SetFlag(cube.FlagActive)
		}
		cc.Set(i, c)
	}
}

// activeCount returns the number of cubes of cov currently carrying
// FlagActive.
func activeCount(cov *cube.Cover) int {
	n := 0
	for i := 0; i < cov.Len(); i++ {
		if cov.At(i).HasFlag(cube.FlagActive) {
			n++
		}
	}

	return n
}

// essenParts determines which parts must be forced into the lowering set
// to keep raise orthogonal to every active cube of bb: any off-set cube at
// distance 1 forces its disjoint variable's bits of raise out of free;
// distance 0 means raise already intersects the off-set, an error this
// early. Deactivates every bb cube it resolves (distance <= 1).
func essenParts(d *cube.Descriptor, bb, cc *cube.Cover, raise, free *cube.Cube) error {
	xlower := d.NewCube()

	for i := 0; i < bb.Len(); i++ {
		p := bb.At(i)
		if !p.HasFlag(cube.FlagActive) {
			continue
		}

		dist := d.Cdist01(p, *raise)
		if dist > 1 {
			continue
		}
		if dist == 0 {
			return ErrNotOrthogonal
		}

		if err := d.ForceLower(&xlower, p, *raise); err != nil {
			return err
		}
		p.ClearFlag(cube.FlagActive)
		bb.Set(i, p)
	}

	if !d.SetpEmpty(xlower) {
		newFree := d.NewCube()
		if err := d.SetDiff(&newFree, *free, xlower); err != nil {
			return err
		}
		*free = newFree
		elimLowering(d, bb, cc, *raise, *free)
	}

	return nil
}

// essenRaising finds parts not blocked by any active cube of bb and adds
// them to raise unconditionally: such a part can never conflict with the
// off-set, so there is no reason to leave it free.
func essenRaising(d *cube.Descriptor, bb *cube.Cover, raise, free *cube.Cube) {
	xraise := d.NewCube()
	for i := 0; i < bb.Len(); i++ {
		p := bb.At(i)
		if !p.HasFlag(cube.FlagActive) {
			continue
		}
		merged := xraise.Clone()
		_ = d.SetOr(&merged, xraise, p)
		xraise = merged
	}

	diffed := d.NewCube()
	_ = d.SetDiff(&diffed, *free, xraise)
	xraise = diffed

	newRaise := d.NewCube()
	_ = d.SetOr(&newRaise, *raise, xraise)
	*raise = newRaise

	newFree := d.NewCube()
	_ = d.SetDiff(&newFree, *free, xraise)
	*free = newFree
}

// elimLowering drops from bb any cube no longer reachable by raise∨free
// (it can never block a future expansion again), and, if cc is non-nil,
// drops from cc any cube no longer implied by raise∨free (it can never be
// covered by a future expansion of this cube).
func elimLowering(d *cube.Descriptor, bb, cc *cube.Cover, raise, free cube.Cube) {
	r := d.NewCube()
	_ = d.SetOr(&r, raise, free)

	for i := 0; i < bb.Len(); i++ {
		p := bb.At(i)
		if !p.HasFlag(cube.FlagActive) {
			continue
		}
		if !d.Cdist0(p, r) {
			p.ClearFlag(cube.FlagActive)
			bb.Set(i, p)
		}
	}

	if cc == nil {
		return
	}
	for i := 0; i < cc.Len(); i++ {
		p := cc.At(i)
		if !p.HasFlag(cube.FlagActive) {
			continue
		}
		if !d.SetpImplies(p, r) {
			p.ClearFlag(cube.FlagActive)
			cc.Set(i, p)
		}
	}
}
