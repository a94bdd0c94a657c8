package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"

	ratchetstore "github.com/gwillem/ratchet-store"
)

// LoadSession loads the session record for the given address.
// Returns (nil, nil) if no session exists.
func (s *Store) LoadSession(address ratchetstore.Address) ([]byte, error) {
	var record []byte
	err := s.db.QueryRow(
		"SELECT record FROM session WHERE name = ? AND device_id = ?",
		address.Name, address.DeviceID,
	).Scan(&record)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlstore: load session: %w", err)
	}
	if record == nil {
		// An empty BLOB scans as nil; the row's existence is the
		// presence signal, so keep the record distinguishable from
		// absence.
		record = []byte{}
	}
	return record, nil
}

// StoreSession stores the session record for the given address.
func (s *Store) StoreSession(address ratchetstore.Address, record []byte) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO session (name, device_id, record) VALUES (?, ?, ?)",
		address.Name, address.DeviceID, record,
	)
	if err != nil {
		return fmt.Errorf("sqlstore: store session: %w", err)
	}
	return nil
}

// ContainsSession reports whether a session record exists for address.
func (s *Store) ContainsSession(address ratchetstore.Address) (bool, error) {
	var one int
	err := s.db.QueryRow(
		"SELECT 1 FROM session WHERE name = ? AND device_id = ?",
		address.Name, address.DeviceID,
	).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("sqlstore: contains session: %w", err)
	}
	return true, nil
}

// DeleteSession deletes the session record for address, reporting whether
// one existed.
func (s *Store) DeleteSession(address ratchetstore.Address) (bool, error) {
	res, err := s.db.Exec(
		"DELETE FROM session WHERE name = ? AND device_id = ?",
		address.Name, address.DeviceID,
	)
	if err != nil {
		return false, fmt.Errorf("sqlstore: delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("sqlstore: delete session: %w", err)
	}
	return n > 0, nil
}

// DeleteAllSessions deletes every session for the named recipient across
// all devices and returns the number removed.
func (s *Store) DeleteAllSessions(name string) (int, error) {
	res, err := s.db.Exec("DELETE FROM session WHERE name = ?", name)
	if err != nil {
		return 0, fmt.Errorf("sqlstore: delete all sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sqlstore: delete all sessions: %w", err)
	}
	s.log.Debug().Str("name", name).Int64("removed", n).Msg("sessions wiped")
	return int(n), nil
}

// SubDeviceSessions returns the device ids with a stored session for the
// named recipient.
func (s *Store) SubDeviceSessions(name string) ([]uint32, error) {
	rows, err := s.db.Query("SELECT device_id FROM session WHERE name = ?", name)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: sub-device sessions: %w", err)
	}
	defer rows.Close()

	var devices []uint32
	for rows.Next() {
		var id uint32
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("sqlstore: sub-device sessions: %w", err)
		}
		devices = append(devices, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlstore: sub-device sessions: %w", err)
	}
	return devices, nil
}
