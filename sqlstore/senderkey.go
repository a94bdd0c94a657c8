package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"

	ratchetstore "github.com/gwillem/ratchet-store"
)

// StoreSenderKey stores the sender key record for the given name.
func (s *Store) StoreSenderKey(name ratchetstore.SenderKeyName, record []byte) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO sender_key (group_id, name, device_id, record) VALUES (?, ?, ?, ?)",
		name.GroupID, name.Sender.Name, name.Sender.DeviceID, record,
	)
	if err != nil {
		return fmt.Errorf("sqlstore: store sender key: %w", err)
	}
	return nil
}

// LoadSenderKey loads the sender key record for the given name.
// Returns (nil, nil) if none is stored.
func (s *Store) LoadSenderKey(name ratchetstore.SenderKeyName) ([]byte, error) {
	var record []byte
	err := s.db.QueryRow(
		"SELECT record FROM sender_key WHERE group_id = ? AND name = ? AND device_id = ?",
		name.GroupID, name.Sender.Name, name.Sender.DeviceID,
	).Scan(&record)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlstore: load sender key: %w", err)
	}
	if record == nil {
		// Empty BLOBs scan as nil; keep present records non-nil.
		record = []byte{}
	}
	return record, nil
}
