// Package espresso implements the top-level Espresso-II minimization
// schedule of spec.md §4.9: the reduce/expand/irredundant stabilization
// loop, its last-gasp/super-gasp escape hatches, the make-sparse cleanup
// pass, and an exact-cover alternative for callers who want a provably
// minimum result instead of the heuristic one.
package espresso
