// Package expand implements the Espresso-II expansion step of spec.md
// §4.4: each nonprime cube of the on-set is grown into a prime implicant
// against the off-set, covering as many other on-set cubes as possible
// along the way. When no cube can be covered directly, the remaining
// expansion is recast as a minimum set-covering problem (package mincov)
// over the unravelled off-set (package cube's UnravelRange), or, if that
// unravelling would itself be too large, resolved by a single-step
// heuristic instead.
package expand
