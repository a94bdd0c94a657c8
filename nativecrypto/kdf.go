package nativecrypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/hkdf"

	ratchetstore "github.com/gwillem/ratchet-store"
)

// DeriveSecrets derives n bytes of key material from input using
// HKDF-SHA256 with the given salt and info. The ratchet engine layers its
// chain and message key derivations on this.
func DeriveSecrets(input, salt, info []byte, n int) ([]byte, error) {
	r := hkdf.New(sha256.New, input, salt, info)
	out := make([]byte, n)
	if _, err := r.Read(out); err != nil {
		return nil, ratchetstore.E(ratchetstore.CodeInternal, "nativecrypto: derive secrets", err)
	}
	return out, nil
}
