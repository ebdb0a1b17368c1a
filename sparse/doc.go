// Package sparse implements the doubly-linked sparse 0/1 matrix of
// spec.md §3/§4.11, grounded on matrix.c and sparse_int.h: rows and
// columns are kept as active doubly-linked lists so mincov's reduction
// rules (essential-row detection, row/column dominance) can delete a row
// or column in place, in time proportional to its length, without
// rebuilding the matrix. Deletion is permanent: there is no restore.
package sparse
