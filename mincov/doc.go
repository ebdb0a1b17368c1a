// Package mincov implements Espresso-II's minimum-cost unate covering
// problem (spec.md §4.11/§4.12): given a sparse.Matrix of rows to cover
// and an optional per-column weight, find a minimum-cost set of columns
// intersecting every row. Grounded on mincov.c's branch-and-bound: row/
// column dominance and essential-row selection reduce the matrix,
// Gimpel's pattern (GimpelReduce) resolves certain two-column rows
// directly, a greedy independent set gives a lower bound, and the search
// branches on the best remaining column (or recurses independently on a
// block partition when the matrix splits into disconnected pieces).
package mincov
