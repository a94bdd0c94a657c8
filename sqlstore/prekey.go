package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"

	ratchetstore "github.com/gwillem/ratchet-store"
)

// LoadPreKey loads a one-time pre-key record by id. An unknown id fails
// with CodeInvalidKeyID.
func (s *Store) LoadPreKey(id uint32) ([]byte, error) {
	var record []byte
	err := s.db.QueryRow("SELECT record FROM pre_key WHERE id = ?", id).Scan(&record)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ratchetstore.Errorf(ratchetstore.CodeInvalidKeyID,
				"sqlstore: load pre-key", "pre-key %d not found", id)
		}
		return nil, fmt.Errorf("sqlstore: load pre-key: %w", err)
	}
	if record == nil {
		// Empty BLOBs scan as nil; keep present records non-nil.
		record = []byte{}
	}
	return record, nil
}

// StorePreKey stores a one-time pre-key record.
func (s *Store) StorePreKey(id uint32, record []byte) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO pre_key (id, record) VALUES (?, ?)",
		id, record,
	)
	if err != nil {
		return fmt.Errorf("sqlstore: store pre-key: %w", err)
	}
	return nil
}

// ContainsPreKey reports whether a pre-key record exists for id.
func (s *Store) ContainsPreKey(id uint32) (bool, error) {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM pre_key WHERE id = ?", id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("sqlstore: contains pre-key: %w", err)
	}
	return true, nil
}

// RemovePreKey deletes a pre-key record. Idempotent.
func (s *Store) RemovePreKey(id uint32) error {
	if _, err := s.db.Exec("DELETE FROM pre_key WHERE id = ?", id); err != nil {
		return fmt.Errorf("sqlstore: remove pre-key: %w", err)
	}
	return nil
}

// LoadSignedPreKey loads a signed pre-key record by id. An unknown id
// fails with CodeInvalidKeyID.
func (s *Store) LoadSignedPreKey(id uint32) ([]byte, error) {
	var record []byte
	err := s.db.QueryRow("SELECT record FROM signed_pre_key WHERE id = ?", id).Scan(&record)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ratchetstore.Errorf(ratchetstore.CodeInvalidKeyID,
				"sqlstore: load signed pre-key", "signed pre-key %d not found", id)
		}
		return nil, fmt.Errorf("sqlstore: load signed pre-key: %w", err)
	}
	if record == nil {
		// Empty BLOBs scan as nil; keep present records non-nil.
		record = []byte{}
	}
	return record, nil
}

// StoreSignedPreKey stores a signed pre-key record.
func (s *Store) StoreSignedPreKey(id uint32, record []byte) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO signed_pre_key (id, record) VALUES (?, ?)",
		id, record,
	)
	if err != nil {
		return fmt.Errorf("sqlstore: store signed pre-key: %w", err)
	}
	return nil
}

// ContainsSignedPreKey reports whether a signed pre-key record exists for
// id.
func (s *Store) ContainsSignedPreKey(id uint32) (bool, error) {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM signed_pre_key WHERE id = ?", id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("sqlstore: contains signed pre-key: %w", err)
	}
	return true, nil
}

// RemoveSignedPreKey deletes a signed pre-key record. Idempotent.
func (s *Store) RemoveSignedPreKey(id uint32) error {
	if _, err := s.db.Exec("DELETE FROM signed_pre_key WHERE id = ?", id); err != nil {
		return fmt.Errorf("sqlstore: remove signed pre-key: %w", err)
	}
	return nil
}
