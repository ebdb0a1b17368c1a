// Package primes enumerates the prime implicants of a cover by pairwise
// consensus (spec.md §4.10): the same unate-recursive-paradigm driver as
// package complement, with a special-case ladder that returns covers
// instead of complements and a merge step that pairs up cubes across the
// two recursion branches at distance 1.
package primes
