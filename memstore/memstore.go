package memstore

import (
	ratchetstore "github.com/gwillem/ratchet-store"
)

// clone returns an independent copy of b. A present-but-empty record stays
// distinguishable from an absent one: the copy is never nil.
func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// NewStoreContext assembles a full in-memory store context. The provider
// is used once, to generate the local identity key pair and registration
// id.
func NewStoreContext(p ratchetstore.CryptoProvider) (*ratchetstore.StoreContext, error) {
	identities, err := NewIdentityKeyStore(p)
	if err != nil {
		return nil, err
	}
	return ratchetstore.NewStoreContext(
		NewSessionStore(),
		NewPreKeyStore(),
		NewSignedPreKeyStore(),
		identities,
		NewSenderKeyStore(),
	)
}
