// File: descriptor.go
// Role: the cube universe descriptor (spec.md §3) — the shared, read-only
// layout that every Cube and Cover in a minimization is built against.
package cube

const (
	// wordBits is the width of one packed word.
	wordBits = 32

	// disjointMask selects the "literal 0" bit of every binary variable in
	// a word, assuming the 2-bits-per-binary-variable packing of spec.md
	// §6 starting at bit 0: bit 2v = "v=0", bit 2v+1 = "v=1".
	disjointMask uint32 = 0x55555555

	// TempPoolSize is the number of callee-transient scratch cubes a
	// Descriptor carries (spec.md §3, "K ≈ 10").
	TempPoolSize = 10
)

// Descriptor is the cube universe descriptor of spec.md §3: the per-run,
// read-only layout shared by every Cube and Cover. Build one with NewDescriptor
// at the start of a minimization and discard it (along with every Cube/Cover
// built against it) at the end; Descriptors are not safe to mix.
type Descriptor struct {
	// NVars is the total number of variables, including the output
	// variable if present. NBinary of them are two-valued.
	NVars   int
	NBinary int

	// PartSize[v] is the number of symbolic parts of variable v (2 for
	// binary variables). FirstPart/LastPart give v's bit range inside a
	// cube (inclusive); FirstWord/LastWord give the corresponding word
	// range.
	PartSize  []int
	FirstPart []int
	LastPart  []int
	FirstWord []int
	LastWord  []int

	// Size is the number of bits per cube (Σ PartSize[v]).
	Size int

	// WordCount is the number of uint32 words needed to hold Size bits.
	WordCount int

	// Output is the index of the output variable, or -1 if there is none.
	Output int

	// Sparse[v] marks v as a sparse variable for cost accounting and
	// MAKE_SPARSE (spec.md §4.9).
	Sparse []bool

	// Precomputed masks, themselves ordinary Cubes built against this
	// Descriptor.
	Fullset    Cube
	Emptyset   Cube
	VarMask    []Cube
	BinaryMask Cube
	MvMask     Cube

	// binaryWordCount is the number of words spanned by the binary block
	// (bits [0, 2*NBinary)); the "any binary literal null" trick of
	// spec.md §6 only applies within these words.
	binaryWordCount int

	// temp is the scratch-cube pool (spec.md §3): callee-transient,
	// clobbered by any primitive, never held across a call by a caller.
	temp [TempPoolSize]Cube
}

// VarSpec describes one multi-valued variable at descriptor-construction
// time. PartSize must be at least 1: NewDescriptor rejects zero and
// negative values, and there is no symbolic marker here. This descriptor
// only records arity, never labels — symbolic variables and their label
// interning are handled by package pla (Labels.MarkSymbolic).
type VarSpec struct {
	// PartSize is the arity of this variable. Binary variables are
	// implicit (NBinary of them, arity 2) and must not appear here.
	PartSize int
}

// NewDescriptor builds a cube universe descriptor for nBinary two-valued
// variables followed by the multi-valued variables in mv (in order), and
// an optional output block of outputParts functions (outputParts == 0 means
// no output variable).
//
// Returns ErrBadPartSize if nBinary < 0, any mv[i].PartSize < 1, or
// outputParts < 0.
//
// Complexity: O(NVars).
func NewDescriptor(nBinary int, mv []VarSpec, outputParts int) (*Descriptor, error) {
	if nBinary < 0 || outputParts < 0 {
		return nil, ErrBadPartSize
	}
	for _, spec := range mv {
		if spec.PartSize < 1 {
			return nil, ErrBadPartSize
		}
	}

	nVars := nBinary + len(mv)
	hasOutput := outputParts > 0
	if hasOutput {
		nVars++
	}

	d := &Descriptor{
		NVars:     nVars,
		NBinary:   nBinary,
		PartSize:  make([]int, nVars),
		FirstPart: make([]int, nVars),
		LastPart:  make([]int, nVars),
		FirstWord: make([]int, nVars),
		LastWord:  make([]int, nVars),
		Sparse:    make([]bool, nVars),
		Output:    -1,
	}

	bit := 0
	for v := 0; v < nBinary; v++ {
		d.PartSize[v] = 2
		d.FirstPart[v] = bit
		d.LastPart[v] = bit + 1
		bit += 2
	}
	for i, spec := range mv {
		v := nBinary + i
		d.PartSize[v] = spec.PartSize
		d.FirstPart[v] = bit
		d.LastPart[v] = bit + spec.PartSize - 1
		bit += spec.PartSize
	}
	if hasOutput {
		v := nVars - 1
		d.Output = v
		d.PartSize[v] = outputParts
		d.FirstPart[v] = bit
		d.LastPart[v] = bit + outputParts - 1
		bit += outputParts
	}
	d.Size = bit
	d.WordCount = (d.Size + wordBits - 1) / wordBits
	d.binaryWordCount = (2*nBinary + wordBits - 1) / wordBits

	for v := 0; v < nVars; v++ {
		d.FirstWord[v] = d.FirstPart[v] / wordBits
		d.LastWord[v] = d.LastPart[v] / wordBits
	}

	d.Fullset = d.newMaskCube(0, d.Size-1)
	d.Emptyset = d.NewCube()
	d.VarMask = make([]Cube, nVars)
	for v := 0; v < nVars; v++ {
		d.VarMask[v] = d.newMaskCube(d.FirstPart[v], d.LastPart[v])
	}
	if nBinary > 0 {
		d.BinaryMask = d.newMaskCube(0, d.FirstPart[nBinary-1]+1)
	} else {
		d.BinaryMask = d.NewCube()
	}
	mvLast := nVars - 1
	if hasOutput {
		mvLast--
	}
	if mvLast >= nBinary {
		d.MvMask = d.newMaskCube(d.FirstPart[nBinary], d.LastPart[mvLast])
	} else {
		d.MvMask = d.NewCube()
	}

	for i := range d.temp {
		d.temp[i] = d.NewCube()
	}

	return d, nil
}

// newMaskCube returns a fresh cube with bits [lo, hi] set (inclusive); used
// only during descriptor construction.
func (d *Descriptor) newMaskCube(lo, hi int) Cube {
	c := d.NewCube()
	for i := lo; i <= hi; i++ {
		c.setBit(i)
	}
	return c
}

// Temp returns the i-th scratch cube from the Descriptor's pool. Its
// contents are undefined across any other primitive call: copy out before
// calling anything else if the value must survive.
func (d *Descriptor) Temp(i int) (*Cube, error) {
	if i < 0 || i >= TempPoolSize {
		return nil, ErrTempIndexOutOfRange
	}
	return &d.temp[i], nil
}

// VarOfBit returns the variable index owning bit position i, or
// ErrVarOutOfRange if i is outside [0, Size).
//
// Complexity: O(NVars) (linear scan; not on any hot path — hot paths index
// FirstWord/LastWord directly per variable).
func (d *Descriptor) VarOfBit(i int) (int, error) {
	if i < 0 || i >= d.Size {
		return 0, ErrVarOutOfRange
	}
	for v := 0; v < d.NVars; v++ {
		if i >= d.FirstPart[v] && i <= d.LastPart[v] {
			return v, nil
		}
	}
	return 0, ErrVarOutOfRange
}
