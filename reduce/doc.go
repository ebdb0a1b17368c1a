// Package reduce implements Espresso-II's REDUCE step (spec.md §4.5):
// replacing every cube of a cover with its maximal reduction, the smallest
// cube that still covers the cube's essential points. The workhorse is
// Sccc (Smallest Cube Containing the Complement), a unate-recursive-
// paradigm algorithm sharing package recur's driver with complement and
// primes.
package reduce
