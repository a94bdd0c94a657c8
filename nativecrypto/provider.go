// Package nativecrypto implements the ratchetstore.CryptoProvider contract
// on the Go crypto stack: crypto/rand for randomness, crypto/hmac +
// crypto/sha256 for streaming MACs, crypto/sha512 for digests, and
// crypto/aes with CBC or CTR modes for symmetric encryption.
package nativecrypto

import (
	"crypto/rand"
	"crypto/sha512"
	"io"

	ratchetstore "github.com/gwillem/ratchet-store"
)

// Provider is a stateless ratchetstore.CryptoProvider. The zero value is
// ready to use.
type Provider struct{}

var _ ratchetstore.CryptoProvider = Provider{}

// Random returns n cryptographically secure random bytes, or an internal
// error if the system source fails. It never returns short output.
func (Provider) Random(n int) ([]byte, error) {
	if n < 0 {
		return nil, ratchetstore.Errorf(ratchetstore.CodeInvalidArgument,
			"nativecrypto: random", "negative length %d", n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, ratchetstore.E(ratchetstore.CodeInternal, "nativecrypto: random", err)
	}
	return b, nil
}

// SHA512 returns the 64-byte SHA-512 digest of data.
func (Provider) SHA512(data []byte) ([]byte, error) {
	sum := sha512.Sum512(data)
	return sum[:], nil
}
