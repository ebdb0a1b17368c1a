// File: essen.go
// Role: essential, essen_cube, cb_consensus, cb_consensus_dist0 of essen.c
// — the absolutely-essential-prime pre-pass spec.md §4.6 describes
// running ahead of the reduce/expand/irredundant loop.
package irredundant

import "github.com/katalvlaran/espresso/cube"

// Essential returns the absolutely essential primes of f∪don: the
// relatively essential primes (FlagRelessen, set by a prior Irredundant
// call, skipped entirely if FlagNonessen is set) that also cover some
// minterm no other prime of f∪don covers. Matching cubes are removed from
// f and folded into don in place (essen.c's essential: "remove these
// cubes from the ON-set F, and add them to the OFF-set D").
func Essential(d *cube.Descriptor, f, don *cube.Cover) (*cube.Cover, error) {
	for i := 0; i < f.Len(); i++ {
		c := f.At(i)
		c.SetFlag(cube.FlagActive)
		f.Set(i, c)
	}

	e := d.NewCover(10)

	for i := 0; i < f.Len(); i++ {
		c := f.At(i)
		if c.HasFlag(cube.FlagNonessen) || !c.HasFlag(cube.FlagRelessen) {
			continue
		}

		essen, err := essenCube(d, f, don, i)
		if err != nil {
			return nil, err
		}
		if essen {
			e.Add(c)
			c.ClearFlag(cube.FlagActive)
			f.Set(i, c)
		}
	}

	d.SfInactive(f)
	don.SfAppend(e)

	return e, nil
}

// essenCube reports whether f's cube at idx is an essential prime of
// f∪don: c is essential iff consensus((f∪don)#c, c) ∪ don does not cover
// c.
func essenCube(d *cube.Descriptor, f, don *cube.Cover, idx int) (bool, error) {
	c := f.At(idx)

	fd := d.NewCover(f.Len() - 1 + don.Len())
	for j := 0; j < f.Len(); j++ {
		if j != idx {
			fd.Add(f.At(j))
		}
	}
	fd.AddAll(don)

	h, err := cbConsensus(d, fd, c)
	if err != nil {
		return false, err
	}

	h1 := d.NewCover(h.Len() + don.Len())
	h1.AddAll(h)
	h1.AddAll(don)

	covered, err := CubeIsCovered(d, h1, c)
	if err != nil {
		return false, err
	}

	return !covered, nil
}

// cbConsensus computes consensus(fd # c, c): for every cube of fd at
// distance 1 from c, their plain consensus; for every cube at distance 0
// (already intersecting c), the multi-valued sharp-consensus of
// cbConsensusDist0. Cubes at distance ≥2 contribute nothing.
func cbConsensus(d *cube.Descriptor, fd *cube.Cover, c cube.Cube) (*cube.Cover, error) {
	r := d.NewCover(fd.Len() * 2)

	for i := 0; i < fd.Len(); i++ {
		p := fd.At(i)
		switch d.Cdist01(p, c) {
		case 0:
			if err := cbConsensusDist0(d, r, p, c); err != nil {
				return nil, err
			}
		case 1:
			temp := d.NewCube()
			if err := d.Consensus(&temp, p, c); err != nil {
				return nil, err
			}
			r.Add(temp)
		}
	}

	return r, nil
}

// cbConsensusDist0 forms consensus(p#c, c) for p and c already
// intersecting: one new cube per multi-valued variable where p carries a
// part outside c (c lifted to full in that variable, everything else held
// to p∧c), or, if no such variable exists and the universe has binary
// variables at all, a single cube for p∧c itself.
func cbConsensusDist0(d *cube.Descriptor, r *cube.Cover, p, c cube.Cube) error {
	if d.SetpImplies(p, c) {
		return nil
	}

	pDiffC := d.NewCube()
	if err := d.SetDiff(&pDiffC, p, c); err != nil {
		return err
	}
	pAndC := d.NewCube()
	if err := d.SetAnd(&pAndC, p, c); err != nil {
		return err
	}

	gotOne := false
	for v := d.NBinary; v < d.NVars; v++ {
		mask := d.VarMask[v]
		if d.SetpDisjoint(pDiffC, mask) {
			continue
		}

		cMasked := d.NewCube()
		_ = d.SetAnd(&cMasked, c, mask)
		rest := d.NewCube()
		_ = d.SetDiff(&rest, pAndC, mask)
		temp := d.NewCube()
		_ = d.SetOr(&temp, cMasked, rest)
		r.Add(temp)
		gotOne = true
	}

	if !gotOne && d.NBinary > 0 {
		r.Add(pAndC)
	}

	return nil
}
