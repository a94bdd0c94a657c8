package sqlstore

import (
	"bytes"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
)

// IdentityKeyPair returns the local identity key pair persisted in the
// account table.
func (s *Store) IdentityKeyPair() (public, private []byte, err error) {
	public, err = s.accountValue(accountIdentityPublic)
	if err != nil {
		return nil, nil, err
	}
	private, err = s.accountValue(accountIdentityPrivate)
	if err != nil {
		return nil, nil, err
	}
	if public == nil || private == nil {
		return nil, nil, fmt.Errorf("sqlstore: identity key pair not set")
	}
	return public, private, nil
}

// LocalRegistrationID returns the registration id persisted in the account
// table.
func (s *Store) LocalRegistrationID() (uint32, error) {
	value, err := s.accountValue(accountRegistrationID)
	if err != nil {
		return 0, err
	}
	if len(value) != 4 {
		return 0, fmt.Errorf("sqlstore: registration id not set")
	}
	return binary.BigEndian.Uint32(value), nil
}

// SaveIdentity records key as the last-seen public identity key for the
// named recipient.
func (s *Store) SaveIdentity(name string, key []byte) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO identity (name, public_key) VALUES (?, ?)",
		name, key,
	)
	if err != nil {
		return fmt.Errorf("sqlstore: save identity: %w", err)
	}
	return nil
}

// IsTrustedIdentity checks a candidate identity key with trust-on-first-use
// semantics: unknown recipients are trusted; known ones must match the
// recorded key byte for byte.
func (s *Store) IsTrustedIdentity(name string, key []byte) (bool, error) {
	var recorded []byte
	err := s.db.QueryRow(
		"SELECT public_key FROM identity WHERE name = ?", name,
	).Scan(&recorded)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// First time seeing this identity — trust on first use.
			return true, nil
		}
		return false, fmt.Errorf("sqlstore: is trusted identity: %w", err)
	}
	return bytes.Equal(recorded, key), nil
}
