// Package sqlstore implements the ratchetstore interfaces on a SQLite
// database. One Store handle backs all five stores and persists the local
// identity, so session and key state survives restarts.
//
// Unlike the in-memory reference stores, rows are keyed by the raw
// recipient and group identifiers rather than a derived hash, so distinct
// identifiers can never collide.
package sqlstore

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	ratchetstore "github.com/gwillem/ratchet-store"
)

// Store wraps a SQLite database and implements all ratchetstore store
// interfaces plus local identity management.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Compile-time interface checks.
var (
	_ ratchetstore.SessionStore      = (*Store)(nil)
	_ ratchetstore.PreKeyStore       = (*Store)(nil)
	_ ratchetstore.SignedPreKeyStore = (*Store)(nil)
	_ ratchetstore.IdentityKeyStore  = (*Store)(nil)
	_ ratchetstore.SenderKeyStore    = (*Store)(nil)
)

const schema = `
CREATE TABLE IF NOT EXISTS account (
	key TEXT PRIMARY KEY,
	value BLOB
);
CREATE TABLE IF NOT EXISTS session (
	name TEXT NOT NULL,
	device_id INTEGER NOT NULL,
	record BLOB NOT NULL,
	PRIMARY KEY (name, device_id)
);
CREATE TABLE IF NOT EXISTS identity (
	name TEXT PRIMARY KEY,
	public_key BLOB NOT NULL
);
CREATE TABLE IF NOT EXISTS pre_key (
	id INTEGER PRIMARY KEY,
	record BLOB NOT NULL
);
CREATE TABLE IF NOT EXISTS signed_pre_key (
	id INTEGER PRIMARY KEY,
	record BLOB NOT NULL
);
CREATE TABLE IF NOT EXISTS sender_key (
	group_id TEXT NOT NULL,
	name TEXT NOT NULL,
	device_id INTEGER NOT NULL,
	record BLOB NOT NULL,
	PRIMARY KEY (group_id, name, device_id)
);
`

// Account table keys for the local identity.
const (
	accountIdentityPublic  = "identity_public"
	accountIdentityPrivate = "identity_private"
	accountRegistrationID  = "registration_id"
)

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a zerolog logger. Logging is disabled by default.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// DefaultDataDir returns the default data directory for ratchet-store
// databases. Uses $XDG_DATA_HOME/ratchet-store, falling back to
// ~/.local/share/ratchet-store.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "ratchet-store")
}

// Open opens or creates a SQLite store at the given path. If dbPath is
// empty, it defaults to $XDG_DATA_HOME/ratchet-store/default.db.
func Open(dbPath string, opts ...Option) (*Store, error) {
	if dbPath == "" {
		dbPath = filepath.Join(DefaultDataDir(), "default.db")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("sqlstore: create dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlstore: set WAL mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlstore: create schema: %w", err)
	}

	s := &Store{db: db, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	s.log.Debug().Str("path", dbPath).Msg("sqlstore opened")
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// accountValue reads one account table entry. Absent keys return
// (nil, nil).
func (s *Store) accountValue(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM account WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlstore: read account %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) setAccountValue(key string, value []byte) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO account (key, value) VALUES (?, ?)",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("sqlstore: write account %s: %w", key, err)
	}
	return nil
}

// SetIdentity persists the local identity key pair and registration id.
// Meant to run once, right after the store is first created.
func (s *Store) SetIdentity(pair ratchetstore.IdentityKeyPair, registrationID uint32) error {
	if err := s.setAccountValue(accountIdentityPublic, pair.Public); err != nil {
		return err
	}
	if err := s.setAccountValue(accountIdentityPrivate, pair.Private); err != nil {
		return err
	}
	regID := make([]byte, 4)
	binary.BigEndian.PutUint32(regID, registrationID)
	if err := s.setAccountValue(accountRegistrationID, regID); err != nil {
		return err
	}
	s.log.Info().Uint32("registration_id", registrationID).Msg("local identity stored")
	return nil
}

// EnsureIdentity generates and persists a local identity with the given
// provider if the store does not hold one yet. Returns true if a new
// identity was created.
func (s *Store) EnsureIdentity(p ratchetstore.CryptoProvider) (bool, error) {
	pub, err := s.accountValue(accountIdentityPublic)
	if err != nil {
		return false, err
	}
	if pub != nil {
		return false, nil
	}
	pair, err := ratchetstore.GenerateIdentityKeyPair(p)
	if err != nil {
		return false, err
	}
	regID, err := ratchetstore.GenerateRegistrationID(p)
	if err != nil {
		return false, err
	}
	if err := s.SetIdentity(pair, regID); err != nil {
		return false, err
	}
	return true, nil
}

// StoreContext returns a store context backed entirely by this store.
func (s *Store) StoreContext() (*ratchetstore.StoreContext, error) {
	return ratchetstore.NewStoreContext(s, s, s, s, s)
}
