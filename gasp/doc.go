// Package gasp implements the Espresso-II last-gasp and super-gasp
// perturbation steps of spec.md §4.8: reduce every cube of a cover
// without replacement, then try to turn the reduced cubes into new
// primes that cover some other reduced cube, and let irredundant pick a
// minimal subset of the result. These steps exist to escape local optima
// the ordinary reduce/expand/irredundant loop cannot climb out of.
package gasp
