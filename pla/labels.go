// File: labels.go
// Role: the symbolic-variable label table of cvrin.c's PLA reader
// (`PLA->label[]`), which interns each distinct token seen for a symbolic
// variable to the next free part index, reusing the slot on a repeat token.
package pla

import "github.com/katalvlaran/espresso/cube"

// Labels interns symbolic-variable tokens to part indices for one
// Descriptor. A variable must be registered with MarkSymbolic before
// ParseCube will accept non-numeric, non-shorthand tokens for it; every
// other variable is parsed as plain 0/1/-/~ literals regardless of whether
// a Labels table is supplied at all.
type Labels struct {
	d        *cube.Descriptor
	symbolic []bool
	names    []string // names[bit] is the token assigned to that part, "" if unassigned
}

// NewLabels builds an empty label table against d. No variable is symbolic
// until MarkSymbolic is called for it.
func NewLabels(d *cube.Descriptor) *Labels {
	return &Labels{
		d:        d,
		symbolic: make([]bool, d.NVars),
		names:    make([]string, d.Size),
	}
}

// MarkSymbolic registers variable v as symbolically typed: ParseCube will
// intern its tokens through this table instead of parsing them as bit
// strings. Returns ErrVarOutOfRange if v is outside [0, NVars).
func (l *Labels) MarkSymbolic(v int) error {
	if v < 0 || v >= len(l.symbolic) {
		return cube.ErrVarOutOfRange
	}
	l.symbolic[v] = true
	return nil
}

// intern maps token to a part index of variable v, assigning the next free
// slot on first sight and reusing it on every later call with the same
// token (cvrin.c's "find the symbolic label in the label table" loop).
func (l *Labels) intern(v int, token string) (int, error) {
	if v < 0 || v >= len(l.symbolic) || !l.symbolic[v] {
		return 0, ErrNotSymbolic
	}
	first, last := l.d.FirstPart[v], l.d.LastPart[v]
	free := -1
	for i := first; i <= last; i++ {
		if l.names[i] == token {
			return i, nil
		}
		if free == -1 && l.names[i] == "" {
			free = i
		}
	}
	if free == -1 {
		return 0, ErrLabelTableFull
	}
	l.names[free] = token
	return free, nil
}
