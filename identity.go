package ratchetstore

import (
	"golang.org/x/crypto/curve25519"
)

// maxRegistrationID bounds locally generated registration ids; the value 0
// is reserved, so generated ids fall in [1, 16380].
const maxRegistrationID = 16380

// IdentityKeyPair is a serialized local identity key pair produced at store
// setup. The store layer treats both halves as opaque bytes.
type IdentityKeyPair struct {
	Public  []byte
	Private []byte
}

// GenerateIdentityKeyPair creates a fresh X25519 identity key pair using
// the provider's random source. Used once at store-context setup.
func GenerateIdentityKeyPair(p CryptoProvider) (IdentityKeyPair, error) {
	priv, err := p.Random(curve25519.ScalarSize)
	if err != nil {
		return IdentityKeyPair{}, err
	}
	// RFC 7748 clamping.
	priv[0] &= 248
	priv[31] &= 127
	priv[31] |= 64

	pub, err := curve25519.X25519(priv, curve25519.Basepoint)
	if err != nil {
		return IdentityKeyPair{}, E(CodeInternal, "ratchetstore: generate identity", err)
	}
	return IdentityKeyPair{Public: pub, Private: priv}, nil
}

// GenerateRegistrationID picks a random registration id in [1, 16380] using
// the provider's random source.
func GenerateRegistrationID(p CryptoProvider) (uint32, error) {
	b, err := p.Random(4)
	if err != nil {
		return 0, err
	}
	n := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	return n%maxRegistrationID + 1, nil
}
