// Package unatecover implements the unate-cover algorithms of spec.md §4.7:
// complementing, intersecting, and exactly covering a positive unate
// Boolean set family. A "unate set family" here is an abstract matrix of
// boolean columns — unrelated to any particular cube.Descriptor layout —
// so the package carries its own small packed-bit Row/Family type (grounded
// on cube/bits.go's word-parallel style, generalized from a per-variable
// layout to a flat column index).
//
// MapCoverToUnate and MapUnateToCover are the bridge back to cube.Cover:
// they translate a cube list known to be unate (every active variable has
// exactly one part with any zero count) into this package's column form
// and back, the way complement's and tautology's unate leaf cases do.
package unatecover
