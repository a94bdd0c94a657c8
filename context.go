package ratchetstore

import (
	"fmt"
	"io"
)

// StoreContext aggregates the five stores behind one handle for the
// protocol engine. It does not hardcode implementations; any mix of
// backends satisfying the interfaces can be plugged in.
type StoreContext struct {
	Sessions      SessionStore
	PreKeys       PreKeyStore
	SignedPreKeys SignedPreKeyStore
	Identities    IdentityKeyStore
	SenderKeys    SenderKeyStore
}

// NewStoreContext assembles a store context from independently provided
// store instances. All five are required.
func NewStoreContext(
	sessions SessionStore,
	preKeys PreKeyStore,
	signedPreKeys SignedPreKeyStore,
	identities IdentityKeyStore,
	senderKeys SenderKeyStore,
) (*StoreContext, error) {
	switch {
	case sessions == nil:
		return nil, fmt.Errorf("ratchetstore: nil session store")
	case preKeys == nil:
		return nil, fmt.Errorf("ratchetstore: nil pre-key store")
	case signedPreKeys == nil:
		return nil, fmt.Errorf("ratchetstore: nil signed pre-key store")
	case identities == nil:
		return nil, fmt.Errorf("ratchetstore: nil identity key store")
	case senderKeys == nil:
		return nil, fmt.Errorf("ratchetstore: nil sender key store")
	}
	return &StoreContext{
		Sessions:      sessions,
		PreKeys:       preKeys,
		SignedPreKeys: signedPreKeys,
		Identities:    identities,
		SenderKeys:    senderKeys,
	}, nil
}

// Close tears down every underlying store that holds releasable resources.
// Stores may be shared objects (sqlstore implements all five on one
// handle); each distinct closer is closed once.
func (c *StoreContext) Close() error {
	var firstErr error
	seen := map[io.Closer]bool{}
	for _, s := range []any{c.Sessions, c.PreKeys, c.SignedPreKeys, c.Identities, c.SenderKeys} {
		closer, ok := s.(io.Closer)
		if !ok || seen[closer] {
			continue
		}
		seen[closer] = true
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
