// Package pla implements the small ambient surface spec.md §6 assigns to
// "the front end": parsing a single product term's literal string into a
// cube against an already-built Descriptor, interning symbolic variable
// labels the way cvrin.c's PLA reader does, and the optional F/D/R
// consistency check of spec.md §7 item 3. Reading or writing an actual .pla
// file is explicitly out of scope (spec.md's own Non-goals); this package
// only ever sees strings the caller already has in memory.
package pla
