package memstore

import (
	ratchetstore "github.com/gwillem/ratchet-store"
)

// PreKeyStore is an in-memory ratchetstore.PreKeyStore.
type PreKeyStore struct {
	keys map[uint32][]byte
}

var _ ratchetstore.PreKeyStore = (*PreKeyStore)(nil)

func NewPreKeyStore() *PreKeyStore {
	return &PreKeyStore{keys: map[uint32][]byte{}}
}

// LoadPreKey returns a copy of the record for id. An unknown id fails with
// CodeInvalidKeyID.
func (s *PreKeyStore) LoadPreKey(id uint32) ([]byte, error) {
	rec, ok := s.keys[id]
	if !ok {
		return nil, ratchetstore.Errorf(ratchetstore.CodeInvalidKeyID,
			"memstore: load pre-key", "pre-key %d not found", id)
	}
	return clone(rec), nil
}

func (s *PreKeyStore) StorePreKey(id uint32, record []byte) error {
	s.keys[id] = clone(record)
	return nil
}

func (s *PreKeyStore) ContainsPreKey(id uint32) (bool, error) {
	_, ok := s.keys[id]
	return ok, nil
}

// RemovePreKey is idempotent.
func (s *PreKeyStore) RemovePreKey(id uint32) error {
	delete(s.keys, id)
	return nil
}

// SignedPreKeyStore is an in-memory ratchetstore.SignedPreKeyStore. Same
// shape as PreKeyStore over an independent table.
type SignedPreKeyStore struct {
	keys map[uint32][]byte
}

var _ ratchetstore.SignedPreKeyStore = (*SignedPreKeyStore)(nil)

func NewSignedPreKeyStore() *SignedPreKeyStore {
	return &SignedPreKeyStore{keys: map[uint32][]byte{}}
}

func (s *SignedPreKeyStore) LoadSignedPreKey(id uint32) ([]byte, error) {
	rec, ok := s.keys[id]
	if !ok {
		return nil, ratchetstore.Errorf(ratchetstore.CodeInvalidKeyID,
			"memstore: load signed pre-key", "signed pre-key %d not found", id)
	}
	return clone(rec), nil
}

func (s *SignedPreKeyStore) StoreSignedPreKey(id uint32, record []byte) error {
	s.keys[id] = clone(record)
	return nil
}

func (s *SignedPreKeyStore) ContainsSignedPreKey(id uint32) (bool, error) {
	_, ok := s.keys[id]
	return ok, nil
}

func (s *SignedPreKeyStore) RemoveSignedPreKey(id uint32) error {
	delete(s.keys, id)
	return nil
}
