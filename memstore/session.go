package memstore

import (
	ratchetstore "github.com/gwillem/ratchet-store"
	"github.com/gwillem/ratchet-store/internal/jenkins"
)

// sessionKey is the composite map key for one device's session: the hashed
// recipient identifier plus the device id. Structural equality on the
// struct replaces the raw-memory key compare of the reference
// implementation.
type sessionKey struct {
	recipient uint64
	device    uint32
}

func sessionKeyFor(addr ratchetstore.Address) sessionKey {
	return sessionKey{
		recipient: jenkins.SumString(addr.Name),
		device:    addr.DeviceID,
	}
}

// SessionStore is an in-memory ratchetstore.SessionStore.
type SessionStore struct {
	sessions map[sessionKey][]byte
}

var _ ratchetstore.SessionStore = (*SessionStore)(nil)

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: map[sessionKey][]byte{}}
}

// LoadSession returns a copy of the record for address, or (nil, nil) if
// none is stored.
func (s *SessionStore) LoadSession(address ratchetstore.Address) ([]byte, error) {
	rec, ok := s.sessions[sessionKeyFor(address)]
	if !ok {
		return nil, nil
	}
	return clone(rec), nil
}

// StoreSession inserts or overwrites the record for address.
func (s *SessionStore) StoreSession(address ratchetstore.Address, record []byte) error {
	s.sessions[sessionKeyFor(address)] = clone(record)
	return nil
}

func (s *SessionStore) ContainsSession(address ratchetstore.Address) (bool, error) {
	_, ok := s.sessions[sessionKeyFor(address)]
	return ok, nil
}

// DeleteSession reports whether a record existed and was removed.
func (s *SessionStore) DeleteSession(address ratchetstore.Address) (bool, error) {
	k := sessionKeyFor(address)
	_, ok := s.sessions[k]
	if ok {
		delete(s.sessions, k)
	}
	return ok, nil
}

// DeleteAllSessions removes every session whose recipient matches name,
// across all device ids, and returns the number removed.
func (s *SessionStore) DeleteAllSessions(name string) (int, error) {
	recipient := jenkins.SumString(name)
	n := 0
	for k := range s.sessions {
		if k.recipient == recipient {
			delete(s.sessions, k)
			n++
		}
	}
	return n, nil
}

// SubDeviceSessions returns the device ids with a stored session for name.
func (s *SessionStore) SubDeviceSessions(name string) ([]uint32, error) {
	recipient := jenkins.SumString(name)
	var devices []uint32
	for k := range s.sessions {
		if k.recipient == recipient {
			devices = append(devices, k.device)
		}
	}
	return devices, nil
}
