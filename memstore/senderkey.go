package memstore

import (
	ratchetstore "github.com/gwillem/ratchet-store"
	"github.com/gwillem/ratchet-store/internal/jenkins"
)

// senderKey is the composite map key for group sender key state: hashed
// group id, hashed sender name, sender device id.
type senderKey struct {
	group     uint64
	recipient uint64
	device    uint32
}

func senderKeyFor(name ratchetstore.SenderKeyName) senderKey {
	return senderKey{
		group:     jenkins.SumString(name.GroupID),
		recipient: jenkins.SumString(name.Sender.Name),
		device:    name.Sender.DeviceID,
	}
}

// SenderKeyStore is an in-memory ratchetstore.SenderKeyStore.
type SenderKeyStore struct {
	records map[senderKey][]byte
}

var _ ratchetstore.SenderKeyStore = (*SenderKeyStore)(nil)

func NewSenderKeyStore() *SenderKeyStore {
	return &SenderKeyStore{records: map[senderKey][]byte{}}
}

// StoreSenderKey inserts or overwrites the record for name.
func (s *SenderKeyStore) StoreSenderKey(name ratchetstore.SenderKeyName, record []byte) error {
	s.records[senderKeyFor(name)] = clone(record)
	return nil
}

// LoadSenderKey returns a copy of the record for name, or (nil, nil) if
// none is stored.
func (s *SenderKeyStore) LoadSenderKey(name ratchetstore.SenderKeyName) ([]byte, error) {
	rec, ok := s.records[senderKeyFor(name)]
	if !ok {
		return nil, nil
	}
	return clone(rec), nil
}
