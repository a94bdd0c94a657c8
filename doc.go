// Package ratchetstore defines the persistence and crypto-primitive
// contracts consumed by a double-ratchet protocol engine: keyed record
// stores for session, pre-key, signed pre-key, identity and sender-key
// state, plus a provider interface for the symmetric primitives the engine
// needs (random bytes, HMAC-SHA256, SHA-512, AES-CBC/CTR).
//
// The engine only sees the interfaces in this package. Implementations live
// in subpackages: memstore (in-memory reference), sqlstore (SQLite-backed),
// nativecrypto (Go crypto stack provider). Records are opaque byte blobs;
// this layer never interprets them.
package ratchetstore
