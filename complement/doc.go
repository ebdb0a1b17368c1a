// File: doc.go
// Role: package complement implements the unate recursive complement and
// tautology algorithms of spec.md §4.3 (TC), built on recur.Driver the way
// tsp/bb.go's bbEngine is built on an explicit search-state struct, with
// the staged numbered-steps doc style of flow/dinic.go.
//
// Four operations share one recursion shape (special-case leaf, binate
// split, scofactor, merge):
//
//  1. Complement(d, f) returns the Boolean complement of f.
//  2. Tautology(d, f) reports whether f covers the entire universe.
//  3. Simplify(d, f) returns a (not necessarily minimum) smaller cover for
//     the same function as f, discarding the attempt if it didn't help.
//  4. SimpComp(d, f) computes both (3) and (1) in one pass, since they
//     share every special case and the same split.
package complement
