// File: comparators.go
// Role: cube-pointer orderings used by the sorter (spec.md §4.1). Each
// comparator is a strongly-typed closure bound to a Descriptor, replacing
// the original's qsort function-pointer dispatch (DESIGN NOTES §9).
package cube

// Less is a strict-weak-order comparator over two cubes of the same cover.
type Less func(a, b Cube) bool

// Descend orders cubes by SIZE tag descending (largest first), ties
// broken by lexicographic word order. SfSort writes each cube's SIZE from
// SetOrd before sorting, so callers normally sort immediately after that.
func (d *Descriptor) Descend() Less {
	return func(a, b Cube) bool {
		if a.size != b.size {
			return a.size > b.size
		}
		return d.lexLess(a, b)
	}
}

// Ascend orders cubes by SIZE tag ascending, ties broken lexicographically.
func (d *Descriptor) Ascend() Less {
	return func(a, b Cube) bool {
		if a.size != b.size {
			return a.size < b.size
		}
		return d.lexLess(a, b)
	}
}

// LexOrder orders cubes purely by their word arrays, most-significant word
// first.
func (d *Descriptor) LexOrder() Less {
	return func(a, b Cube) bool { return d.lexLess(a, b) }
}

// D1Order orders cubes as if mergeMask had been OR'd into each cube first
// (the original's d1order carried this as implicit state in cube.temp[0];
// here it is an explicit parameter per DESIGN NOTES §9). Used by the
// distance-1 merge sorter (D1Merge) to group cubes that agree outside one
// variable.
func (d *Descriptor) D1Order(mergeMask Cube) Less {
	return func(a, b Cube) bool {
		for i := 0; i < d.WordCount; i++ {
			aw := a.words[i] | mergeMask.words[i]
			bw := b.words[i] | mergeMask.words[i]
			if aw != bw {
				return aw < bw
			}
		}
		return false
	}
}

// Desc1 orders cubes by SIZE descending exactly like Descend but is kept as
// a distinct name (mirroring the original's separate desc1 comparator used
// by the distance-1 merge pass, which does not fall back to full
// lexicographic compare on ties — ties are left in input order).
func (d *Descriptor) Desc1() Less {
	return func(a, b Cube) bool { return a.size > b.size }
}

// lexLess compares the word arrays of a and b, most-significant word first.
func (d *Descriptor) lexLess(a, b Cube) bool {
	for i := d.WordCount - 1; i >= 0; i-- {
		if a.words[i] != b.words[i] {
			return a.words[i] < b.words[i]
		}
	}
	return false
}
