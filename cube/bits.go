// File: bits.go
// Role: word-parallel set operations over the data words of a cube
// (spec.md §4.1). These never look at tag bits: flags/size are per-cube
// metadata, not part of the set being combined.
package cube

import "math/bits"

// SetAnd computes r = a ∧ b (bitwise) word-parallel. r, a, b must all be
// sized for the same Descriptor; r may alias a or b.
func (d *Descriptor) SetAnd(r *Cube, a, b Cube) error {
	if len(r.words) != d.WordCount || len(a.words) != d.WordCount || len(b.words) != d.WordCount {
		return ErrSizeMismatch
	}
	for i := 0; i < d.WordCount; i++ {
		r.words[i] = a.words[i] & b.words[i]
	}
	return nil
}

// SetOr computes r = a ∨ b word-parallel.
func (d *Descriptor) SetOr(r *Cube, a, b Cube) error {
	if len(r.words) != d.WordCount || len(a.words) != d.WordCount || len(b.words) != d.WordCount {
		return ErrSizeMismatch
	}
	for i := 0; i < d.WordCount; i++ {
		r.words[i] = a.words[i] | b.words[i]
	}
	return nil
}

// SetDiff computes r = a \ b (a ∧ ¬b) word-parallel.
func (d *Descriptor) SetDiff(r *Cube, a, b Cube) error {
	if len(r.words) != d.WordCount || len(a.words) != d.WordCount || len(b.words) != d.WordCount {
		return ErrSizeMismatch
	}
	for i := 0; i < d.WordCount; i++ {
		r.words[i] = a.words[i] &^ b.words[i]
	}
	return nil
}

// SetXor computes r = a ⊕ b word-parallel.
func (d *Descriptor) SetXor(r *Cube, a, b Cube) error {
	if len(r.words) != d.WordCount || len(a.words) != d.WordCount || len(b.words) != d.WordCount {
		return ErrSizeMismatch
	}
	for i := 0; i < d.WordCount; i++ {
		r.words[i] = a.words[i] ^ b.words[i]
	}
	return nil
}

// SetpEqual reports whether a and b are bit-for-bit equal over the data
// words (tag bits never participate).
func (d *Descriptor) SetpEqual(a, b Cube) bool {
	for i := 0; i < d.WordCount; i++ {
		if a.words[i] != b.words[i] {
			return false
		}
	}
	return true
}

// SetpImplies reports whether a ⊆ b, i.e. every bit set in a is set in b.
func (d *Descriptor) SetpImplies(a, b Cube) bool {
	for i := 0; i < d.WordCount; i++ {
		if a.words[i]&^b.words[i] != 0 {
			return false
		}
	}
	return true
}

// SetpDisjoint reports whether a ∧ b is the all-zero word array.
func (d *Descriptor) SetpDisjoint(a, b Cube) bool {
	for i := 0; i < d.WordCount; i++ {
		if a.words[i]&b.words[i] != 0 {
			return false
		}
	}
	return true
}

// SetpEmpty reports whether every data word of a is zero.
func (d *Descriptor) SetpEmpty(a Cube) bool {
	for i := 0; i < d.WordCount; i++ {
		if a.words[i] != 0 {
			return false
		}
	}
	return true
}

// SetpFull reports whether a equals the descriptor's Fullset.
func (d *Descriptor) SetpFull(a Cube) bool {
	return d.SetpEqual(a, d.Fullset)
}

// SetOrd returns the popcount of a's data words: the "set size" of a cube,
// used as a sort key (spec.md §4.1).
func (d *Descriptor) SetOrd(a Cube) int {
	n := 0
	for i := 0; i < d.WordCount; i++ {
		n += bits.OnesCount32(a.words[i])
	}
	return n
}

// SetDist returns the popcount of a ∧ b: the number of parts a and b share.
func (d *Descriptor) SetDist(a, b Cube) int {
	n := 0
	for i := 0; i < d.WordCount; i++ {
		n += bits.OnesCount32(a.words[i] & b.words[i])
	}
	return n
}

// BitTest reports whether raw part position i (0 <= i < d.Size, spanning
// every variable in layout order) is set in c. Returns false and
// ErrVarOutOfRange if i is out of range.
func (d *Descriptor) BitTest(c Cube, i int) (bool, error) {
	if i < 0 || i >= d.Size {
		return false, ErrVarOutOfRange
	}
	return c.bit(i), nil
}

// BitInsert sets raw part position i in c.
func (d *Descriptor) BitInsert(c *Cube, i int) error {
	if i < 0 || i >= d.Size {
		return ErrVarOutOfRange
	}
	c.setBit(i)
	return nil
}

// BitRemove clears raw part position i in c.
func (d *Descriptor) BitRemove(c *Cube, i int) error {
	if i < 0 || i >= d.Size {
		return ErrVarOutOfRange
	}
	c.clearBit(i)
	return nil
}
