package memstore

import (
	"bytes"

	ratchetstore "github.com/gwillem/ratchet-store"
	"github.com/gwillem/ratchet-store/internal/jenkins"
)

// IdentityKeyStore is an in-memory ratchetstore.IdentityKeyStore. The
// local identity key pair and registration id are fixed at construction;
// only the table of remote identity keys mutates afterwards.
type IdentityKeyStore struct {
	public         []byte
	private        []byte
	registrationID uint32
	identities     map[uint64][]byte
}

var _ ratchetstore.IdentityKeyStore = (*IdentityKeyStore)(nil)

// NewIdentityKeyStore generates a fresh local identity with the given
// provider and returns a store built around it.
func NewIdentityKeyStore(p ratchetstore.CryptoProvider) (*IdentityKeyStore, error) {
	pair, err := ratchetstore.GenerateIdentityKeyPair(p)
	if err != nil {
		return nil, err
	}
	regID, err := ratchetstore.GenerateRegistrationID(p)
	if err != nil {
		return nil, err
	}
	return NewIdentityKeyStoreWithKeys(pair, regID), nil
}

// NewIdentityKeyStoreWithKeys builds a store around an existing identity,
// for deployments that provision keys elsewhere.
func NewIdentityKeyStoreWithKeys(pair ratchetstore.IdentityKeyPair, registrationID uint32) *IdentityKeyStore {
	return &IdentityKeyStore{
		public:         clone(pair.Public),
		private:        clone(pair.Private),
		registrationID: registrationID,
		identities:     map[uint64][]byte{},
	}
}

// IdentityKeyPair returns copies of the local identity key pair.
func (s *IdentityKeyStore) IdentityKeyPair() (public, private []byte, err error) {
	return clone(s.public), clone(s.private), nil
}

func (s *IdentityKeyStore) LocalRegistrationID() (uint32, error) {
	return s.registrationID, nil
}

// SaveIdentity records key as the last-seen identity key for name.
func (s *IdentityKeyStore) SaveIdentity(name string, key []byte) error {
	s.identities[jenkins.SumString(name)] = clone(key)
	return nil
}

// IsTrustedIdentity applies trust-on-first-use: an unknown recipient is
// trusted; a known one must present a byte-exact match of the recorded
// key. Any length or content mismatch is untrusted.
func (s *IdentityKeyStore) IsTrustedIdentity(name string, key []byte) (bool, error) {
	recorded, ok := s.identities[jenkins.SumString(name)]
	if !ok {
		return true, nil
	}
	return bytes.Equal(recorded, key), nil
}
