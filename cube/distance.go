// File: distance.go
// Role: the cube-distance family (spec.md §4.1): Cdist0/Cdist01/Cdist,
// Consensus, ForceLower, Cactive, Ccommon. These are the primitives the
// unate-recursive paradigm (package recur) and prime generation are built
// from.
package cube

// binaryWordNullVars returns, for binary word index w (0-based within the
// binary block), a word whose bit 2v is set iff binary variable v (the one
// whose 2-bit slot lives at [2v, 2v+1] inside word w) is null in a∧b —
// i.e. a and b are disjoint in that binary variable. This is the packed
// trick of spec.md §6: x = a[w] & b[w]; null vars = ~(x | x>>1) & DISJOINT.
func binaryWordNullVars(aw, bw uint32) uint32 {
	x := aw & bw
	return ^(x | (x >> 1)) & disjointMask
}

// Cdist0 reports whether a and b intersect (their product is non-empty):
// true iff, for every variable, a and b share at least one part.
//
// Complexity: O(binaryWordCount + (NVars-NBinary)·wordsPerVar), i.e.
// O(WordCount) amortized.
func (d *Descriptor) Cdist0(a, b Cube) bool {
	for w := 0; w < d.binaryWordCount; w++ {
		null := binaryWordNullVars(a.words[w], b.words[w])
		if rem := (2 * d.NBinary) % 32; w == d.binaryWordCount-1 && rem != 0 {
			null &= (1 << uint(rem)) - 1 // ignore the unused slots past the last binary variable
		}
		if null != 0 {
			return false
		}
	}
	for v := d.NBinary; v < d.NVars; v++ {
		if !varsIntersect(d, a, b, v) {
			return false
		}
	}
	return true
}

// varsIntersect reports whether a and b share a part of variable v.
func varsIntersect(d *Descriptor, a, b Cube, v int) bool {
	fw, lw := d.FirstWord[v], d.LastWord[v]
	for w := fw; w <= lw; w++ {
		if a.words[w]&b.words[w]&d.VarMask[v].words[w] != 0 {
			return true
		}
	}
	return false
}

// varIsDisjoint reports whether a and b do NOT share a part of variable v.
func varIsDisjoint(d *Descriptor, a, b Cube, v int) bool {
	return !varsIntersect(d, a, b, v)
}

// Cdist01 returns the number of variables on which a and b are disjoint,
// saturated at 2. Callers that only need "distance ≤ 1?" should test
// Cdist01(a,b) <= 1 rather than computing the full distance.
//
// Complexity: O(WordCount).
func (d *Descriptor) Cdist01(a, b Cube) int {
	count := 0
	for v := 0; v < d.NBinary; v++ {
		if varIsDisjoint(d, a, b, v) {
			count++
			if count >= 2 {
				return 2
			}
		}
	}
	for v := d.NBinary; v < d.NVars; v++ {
		if varIsDisjoint(d, a, b, v) {
			count++
			if count >= 2 {
				return 2
			}
		}
	}
	return count
}

// Cdist returns the exact number of variables on which a and b are
// disjoint (not saturated).
//
// Complexity: O(WordCount).
func (d *Descriptor) Cdist(a, b Cube) int {
	count := 0
	for v := 0; v < d.NVars; v++ {
		if varIsDisjoint(d, a, b, v) {
			count++
		}
	}
	return count
}

// Consensus computes the consensus cube of a and b into r, assuming
// Cdist01(a,b) == 1 (exactly one variable is disjoint). For each variable:
// if a∧b is non-empty in that variable's range, the intersection is
// copied; otherwise (the one disjoint variable) the union is copied.
//
// Complexity: O(WordCount).
func (d *Descriptor) Consensus(r *Cube, a, b Cube) error {
	if len(r.words) != d.WordCount {
		return ErrSizeMismatch
	}
	for v := 0; v < d.NVars; v++ {
		fw, lw := d.FirstWord[v], d.LastWord[v]
		if varsIntersect(d, a, b, v) {
			for w := fw; w <= lw; w++ {
				mask := d.VarMask[v].words[w]
				r.words[w] = (r.words[w] &^ mask) | (a.words[w] & b.words[w] & mask)
			}
		} else {
			for w := fw; w <= lw; w++ {
				mask := d.VarMask[v].words[w]
				r.words[w] = (r.words[w] &^ mask) | ((a.words[w] | b.words[w]) & mask)
			}
		}
	}
	return nil
}

// ForceLower ORs into xlower the parts of a that must be lowered so that a
// no longer intersects b. ForceLower is invoked when Cdist01(a,b) == 1:
// exactly one variable is disjoint between a and b, and it is that
// variable's bits of a (the ones standing between a and an intersection
// with b) that get OR'd into xlower; variables where a and b already
// intersect are left untouched.
//
// Complexity: O(WordCount).
func (d *Descriptor) ForceLower(xlower *Cube, a, b Cube) error {
	if len(xlower.words) != d.WordCount {
		return ErrSizeMismatch
	}
	for v := 0; v < d.NVars; v++ {
		if !varIsDisjoint(d, a, b, v) {
			continue
		}
		fw, lw := d.FirstWord[v], d.LastWord[v]
		for w := fw; w <= lw; w++ {
			mask := d.VarMask[v].words[w]
			xlower.words[w] |= a.words[w] & mask
		}
	}
	return nil
}

// Cactive returns the index of the single variable in which a is not the
// full set (a does not cover every part of that variable), or -1 if there
// are zero or two-or-more such variables.
//
// Complexity: O(WordCount).
func (d *Descriptor) Cactive(a Cube) int {
	active := -1
	count := 0
	for v := 0; v < d.NVars; v++ {
		fw, lw := d.FirstWord[v], d.LastWord[v]
		full := true
		for w := fw; w <= lw; w++ {
			if a.words[w]&d.VarMask[v].words[w] != d.VarMask[v].words[w] {
				full = false
				break
			}
		}
		if !full {
			count++
			if count > 1 {
				return -1
			}
			active = v
		}
	}
	return active
}

// Ccommon reports whether a∨cof and b∨cof are both "active" (not the full
// set) on some common variable.
//
// Complexity: O(WordCount).
func (d *Descriptor) Ccommon(a, b, cof Cube) bool {
	var au, bu Cube
	au = d.NewCube()
	bu = d.NewCube()
	_ = d.SetOr(&au, a, cof)
	_ = d.SetOr(&bu, b, cof)
	for v := 0; v < d.NVars; v++ {
		fw, lw := d.FirstWord[v], d.LastWord[v]
		aFull, bFull := true, true
		for w := fw; w <= lw; w++ {
			mask := d.VarMask[v].words[w]
			if au.words[w]&mask != mask {
				aFull = false
			}
			if bu.words[w]&mask != mask {
				bFull = false
			}
		}
		if !aFull && !bFull {
			return true
		}
	}
	return false
}
