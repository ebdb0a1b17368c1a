// File: cube.go
// Role: the per-variable literal parsing of cvrin.c's read_cube, adapted
// from a fixed-width character stream read directly off a PLA file to a
// caller-supplied, whitespace-separated string (one field per variable).
package pla

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/espresso/cube"
)

// ParseCube parses s into a single cube against d: s must hold exactly
// d.NVars whitespace-separated fields, one per variable in declaration
// order (binary variables first, then multi-valued, then the output block
// if d.Output != -1).
//
// Each field is one of:
//   - "-" or "ANY": the variable is don't-care (every part set).
//   - "~": the variable is left empty (no part set; cvrin.c's "leave it
//     empty" reading of a bare tilde).
//   - for a binary variable: "0" or "1".
//   - for a non-symbolic multi-valued variable: a bit string of exactly
//     PartSize[v] characters of '0'/'1' (part 0 leftmost), or a decimal
//     integer selecting exactly one part.
//   - for a variable registered symbolic in labels: any other token, which
//     is interned to a part index (a repeat token reuses the same part,
//     cvrin.c's label table). labels may be nil if no variable is symbolic.
//
// Returns ErrFieldCount if the field count doesn't match d.NVars, and
// ErrBadLiteral for any field that doesn't parse against its variable.
func ParseCube(d *cube.Descriptor, s string, labels *Labels) (cube.Cube, error) {
	fields := strings.Fields(s)
	c := d.NewCube()
	if len(fields) != d.NVars {
		return c, ErrFieldCount
	}

	for v, field := range fields {
		if err := parseField(d, &c, v, field, labels); err != nil {
			return d.NewCube(), err
		}
	}
	return c, nil
}

// parseField parses one field into variable v of c.
func parseField(d *cube.Descriptor, c *cube.Cube, v int, field string, labels *Labels) error {
	switch field {
	case "-", "ANY":
		return d.SetVarFull(c, v)
	case "~":
		return nil
	}

	if labels != nil && v < len(labels.symbolic) && labels.symbolic[v] {
		i, err := labels.intern(v, field)
		if err != nil {
			return err
		}
		return d.BitInsert(c, i)
	}

	width := d.PartSize[v]
	if len(field) == width && isBitString(field) {
		for p, ch := range field {
			if ch == '1' {
				if err := d.SetPart(c, v, p); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if part, err := strconv.Atoi(field); err == nil {
		return d.SetPart(c, v, part)
	}

	return ErrBadLiteral
}

// isBitString reports whether s consists only of '0'/'1' characters.
func isBitString(s string) bool {
	for _, ch := range s {
		if ch != '0' && ch != '1' {
			return false
		}
	}
	return true
}
