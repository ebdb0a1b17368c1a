// File: types.go
// Role: the Cube value type — a packed bit array plus a separately-stored
// tag struct (PRIME/ACTIVE/COVERED/REDUND/NONESSEN/RELESSEN flags, and the
// caller-defined SIZE field of spec.md §3). DESIGN NOTES §9 of spec.md
// explicitly calls for the tag bits to live outside the bit layout in a
// systems-language port; this is that split.
package cube

// Flag is one bit of per-cube transient algorithmic state that persists
// across passes of the minimizer (spec.md §3).
type Flag uint16

const (
	// FlagPrime marks a cube known to be a prime implicant.
	FlagPrime Flag = 1 << iota
	// FlagNonessen marks a prime known not to be essential.
	FlagNonessen
	// FlagActive marks a cube as live in the current pass (e.g. a row of
	// the expand blocking/cover matrices, spec.md §4.4).
	FlagActive
	// FlagRedund marks a cube provisionally redundant (spec.md §4.6).
	FlagRedund
	// FlagCovered marks a cube covered by the ongoing expansion and due to
	// be dropped at the end of the pass.
	FlagCovered
	// FlagRelessen marks a relatively-essential cube (spec.md §4.6).
	FlagRelessen
)

// Cube is a product term: a packed bit array of Descriptor.Size bits plus a
// tag struct. The zero Cube is not valid against any Descriptor; always
// construct cubes via Descriptor.NewCube or an operation that returns one.
type Cube struct {
	words []uint32
	flags Flag
	size  int32 // caller-defined SIZE field (spec.md §3): ordinality, set size, ...
}

// NewCube returns a fresh all-zero (empty-set) cube sized for d.
//
// Complexity: O(WordCount).
func (d *Descriptor) NewCube() Cube {
	return Cube{words: make([]uint32, d.WordCount)}
}

// Clone returns an independent copy of c (new backing array).
//
// Complexity: O(WordCount).
func (c Cube) Clone() Cube {
	w := make([]uint32, len(c.words))
	copy(w, c.words)
	return Cube{words: w, flags: c.flags, size: c.size}
}

// CopyFrom overwrites c's data words and SIZE tag from src, preserving c's
// own flags. Requires c and src to share a word-array length.
func (c *Cube) CopyFrom(src Cube) error {
	if len(c.words) != len(src.words) {
		return ErrSizeMismatch
	}
	copy(c.words, src.words)
	c.size = src.size
	return nil
}

// bit tests/sets/clears a single bit position i (caller-validated range).
func (c Cube) bit(i int) bool {
	return c.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

func (c *Cube) setBit(i int) {
	c.words[i/wordBits] |= 1 << uint(i%wordBits)
}

func (c *Cube) clearBit(i int) {
	c.words[i/wordBits] &^= 1 << uint(i%wordBits)
}

// Flags returns c's current flag bits.
func (c Cube) Flags() Flag { return c.flags }

// HasFlag reports whether every bit of f is set on c.
func (c Cube) HasFlag(f Flag) bool { return c.flags&f == f }

// SetFlag sets every bit of f on c.
func (c *Cube) SetFlag(f Flag) { c.flags |= f }

// ClearFlag clears every bit of f on c.
func (c *Cube) ClearFlag(f Flag) { c.flags &^= f }

// Size returns c's caller-defined SIZE tag (spec.md §3: cube ordinality,
// set size, or caller-defined — distinct from SetOrd's popcount).
func (c Cube) Size() int32 { return c.size }

// SetSize sets c's caller-defined SIZE tag.
func (c *Cube) SetSize(n int32) { c.size = n }

// WordCount returns the number of data words backing c.
func (c Cube) WordCount() int { return len(c.words) }

// Word returns data word i of c (caller-validated range). Exposed for
// packages outside cube (recur, mincov, ...) that need word-parallel access
// without re-deriving index arithmetic.
func (c Cube) Word(i int) uint32 { return c.words[i] }

// SetWord overwrites data word i of c.
func (c *Cube) SetWord(i int, w uint32) { c.words[i] = w }

// GetPart reports whether variable v's part p (0-indexed within the
// variable) is set in c. Returns false and ErrVarOutOfRange if v or p is
// out of range.
func (d *Descriptor) GetPart(c Cube, v, p int) (bool, error) {
	if v < 0 || v >= d.NVars || p < 0 || p >= d.PartSize[v] {
		return false, ErrVarOutOfRange
	}
	return c.bit(d.FirstPart[v] + p), nil
}

// SetPart sets variable v's part p in c.
func (d *Descriptor) SetPart(c *Cube, v, p int) error {
	if v < 0 || v >= d.NVars || p < 0 || p >= d.PartSize[v] {
		return ErrVarOutOfRange
	}
	c.setBit(d.FirstPart[v] + p)
	return nil
}

// ClearPart clears variable v's part p in c.
func (d *Descriptor) ClearPart(c *Cube, v, p int) error {
	if v < 0 || v >= d.NVars || p < 0 || p >= d.PartSize[v] {
		return ErrVarOutOfRange
	}
	c.clearBit(d.FirstPart[v] + p)
	return nil
}

// SetVarFull sets every part of variable v in c ("don't care in v").
func (d *Descriptor) SetVarFull(c *Cube, v int) error {
	if v < 0 || v >= d.NVars {
		return ErrVarOutOfRange
	}
	for i := d.FirstPart[v]; i <= d.LastPart[v]; i++ {
		c.setBit(i)
	}
	return nil
}

// ClearVar clears every part of variable v in c (makes c inconsistent:
// the empty set on v).
func (d *Descriptor) ClearVar(c *Cube, v int) error {
	if v < 0 || v >= d.NVars {
		return ErrVarOutOfRange
	}
	for i := d.FirstPart[v]; i <= d.LastPart[v]; i++ {
		c.clearBit(i)
	}
	return nil
}
