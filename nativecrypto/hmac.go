package nativecrypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"hash"

	ratchetstore "github.com/gwillem/ratchet-store"
)

// hmacContext is a streaming HMAC-SHA256 context. Cleanup zeroes the
// retained key copy and disables the context; it may be called more than
// once.
type hmacContext struct {
	mac hash.Hash
	key []byte
}

var errCleanedUp = errors.New("context already cleaned up")

// NewHMACSHA256 acquires a streaming MAC context keyed with key. The key
// is copied; the caller's slice is not retained.
func (Provider) NewHMACSHA256(key []byte) (ratchetstore.MAC, error) {
	k := make([]byte, len(key))
	copy(k, key)
	return &hmacContext{mac: hmac.New(sha256.New, k), key: k}, nil
}

func (c *hmacContext) Update(data []byte) error {
	if c.mac == nil {
		return ratchetstore.E(ratchetstore.CodeInternal, "nativecrypto: hmac update", errCleanedUp)
	}
	// hash.Hash.Write never returns an error.
	c.mac.Write(data)
	return nil
}

// Final returns the 32-byte authentication code over everything written so
// far. The context stays usable for further updates until Cleanup.
func (c *hmacContext) Final() ([]byte, error) {
	if c.mac == nil {
		return nil, ratchetstore.E(ratchetstore.CodeInternal, "nativecrypto: hmac final", errCleanedUp)
	}
	return c.mac.Sum(nil), nil
}

func (c *hmacContext) Cleanup() {
	for i := range c.key {
		c.key[i] = 0
	}
	c.key = nil
	c.mac = nil
}
