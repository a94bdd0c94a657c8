// Package memstore provides the in-memory reference implementation of the
// ratchetstore interfaces.
//
// Records are indexed by fixed-size composite keys whose recipient and
// group fields are derived from the variable-length identifiers with a
// Jenkins one-at-a-time hash, matching the reference behavior this package
// reimplements. Stores copy record bytes on both store and load, so a
// caller mutating its slice never affects store state and vice versa.
//
// A store context is driven by a single logical owner; these stores do no
// internal locking. Deployments sharing a context across goroutines must
// add their own mutual exclusion.
package memstore
