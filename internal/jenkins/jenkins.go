// Package jenkins implements Jenkins' one-at-a-time hash
// (http://www.burtleburtle.net/bob/hash/doobs.html), widened to 64 bits.
//
// It maps variable-length recipient and group identifiers onto the
// fixed-size integer fields of composite store keys. It is not a security
// primitive: collisions between distinct identifiers are possible and
// accepted by the in-memory reference stores.
package jenkins

// Sum64 returns the one-at-a-time hash of data.
func Sum64(data []byte) uint64 {
	var h uint64
	for _, b := range data {
		h += uint64(b)
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

// SumString is Sum64 over the raw bytes of s.
func SumString(s string) uint64 {
	return Sum64([]byte(s))
}
