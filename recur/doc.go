// Package recur implements the unate recursive paradigm (spec.md §4.2):
// the shared divide-and-conquer shape that complement, tautology, SCCC, and
// prime-consensus all specialize. It knows nothing about what any of those
// algorithms compute — callers supply a SpecialCase hook (the leaf-case
// template of spec.md §4.2) and a Merge function, and Driver.Recur drives
// the cofactor/split/recurse/merge loop on their behalf.
//
// The driver is a small engine struct carrying explicit dependencies
// (Descriptor, SpecialCase, Merge) rather than closures capturing mutable
// state, the same shape tsp.bbEngine uses for its search state.
package recur
