// Package registry implements a string-keyed lookup table from spot or
// vehicle identifiers to dense integer ids, via a polynomial rolling hash
// with separate chaining — the same scheme as original_source/htable.c's
// HTinit/HTinsert/HTget, translated to a Go slice of bucket slices.
//
// A from-scratch Go version would reach for a bare map[string]int; Registry
// keeps the polynomial-hash-with-bucket-count shape instead because the
// park model sizes the bucket count once from the number of spot cells (spec.md §4.3's "fixed bucket count chosen at compile time"), and
// because Lookup's int-or-NotFound contract (no ", ok" pair) matches
// HTget's "-1 means absent" convention that the rest of the core relies on.
package registry
