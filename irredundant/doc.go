// Package irredundant implements the Espresso-II irredundant-cover step of
// spec.md §4.6: mark each cube of a cover ACTIVE iff some minimum subset of
// the cover still covers it, relative to a don't-care set. Cubes split
// into relatively essential (kept unconditionally), totally redundant
// (droppable unconditionally), and partially redundant (resolved by
// reducing the remaining choice to a minimum-cover problem, package
// mincov).
package irredundant
