// Package cube implements the packed-bit cube/cover algebra that everything
// else in this module is built on: a multi-valued literal is a run of bits
// inside a fixed-width word array, a cube is a product term over those
// literals, and a cover is an ordered collection of cubes sharing one
// Descriptor.
//
// Why a packed-bit representation?
//
//	A cube with n multi-valued variables is a point in a product of finite
//	sets; the natural encoding is one bit per (variable, part) pair, which
//	turns set intersection/union/containment into word-parallel AND/OR/XOR
//	and turns "is this variable don't-care" into a single masked compare.
//	Every hot path in the minimizer (cofactoring, tautology, prime
//	generation) bottoms out in these primitives, so they are written to
//	avoid allocation and to stay branch-light over the word array.
//
// Layout (see Descriptor):
//
//	Binary variable v (v < NBinary) occupies bits [2v, 2v+1]: bit 2v is the
//	"v=0" literal, bit 2v+1 is the "v=1" literal, both set means "don't
//	care". Multi-valued variable v occupies PartSize[v] consecutive bits
//	starting at FirstPart[v]. An optional output variable, if present,
//	occupies the bits immediately following the last multi-valued
//	variable, one bit per output function.
//
// Ownership:
//
//	A Descriptor is built once per minimization and is read-only for its
//	entire lifetime; Cube and Cover values from two different Descriptors
//	must never be mixed (no runtime check is cheap enough to catch this —
//	callers are responsible). Scratch cubes obtained from Descriptor.Temp
//	are callee-clobbered: any primitive may overwrite them, so callers must
//	copy out anything they need to survive a further primitive call.
package cube
