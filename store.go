package ratchetstore

// SessionStore persists serialized session records keyed by protocol
// address. Loads return independent copies; absence is (nil, nil), never an
// error.
type SessionStore interface {
	LoadSession(address Address) ([]byte, error)
	StoreSession(address Address, record []byte) error
	ContainsSession(address Address) (bool, error)
	// DeleteSession reports whether a record existed and was removed.
	DeleteSession(address Address) (bool, error)
	// DeleteAllSessions removes every session for the named recipient
	// across all devices and returns the number removed.
	DeleteAllSessions(name string) (int, error)
	// SubDeviceSessions returns the device ids with a stored session for
	// the named recipient, in no particular order.
	SubDeviceSessions(name string) ([]uint32, error)
}

// PreKeyStore persists one-time pre-key records keyed by id. Loading an
// unknown id fails with CodeInvalidKeyID; a missing pre-key during session
// initiation is a protocol error, not a normal branch.
type PreKeyStore interface {
	LoadPreKey(id uint32) ([]byte, error)
	StorePreKey(id uint32, record []byte) error
	ContainsPreKey(id uint32) (bool, error)
	// RemovePreKey is idempotent: removing an unknown id is not an error.
	RemovePreKey(id uint32) error
}

// SignedPreKeyStore persists signed pre-key records. Same shape and
// conventions as PreKeyStore, over an independent table.
type SignedPreKeyStore interface {
	LoadSignedPreKey(id uint32) ([]byte, error)
	StoreSignedPreKey(id uint32, record []byte) error
	ContainsSignedPreKey(id uint32) (bool, error)
	RemoveSignedPreKey(id uint32) error
}

// IdentityKeyStore holds the fixed local identity and the last-seen public
// identity key of every remote recipient.
type IdentityKeyStore interface {
	// IdentityKeyPair returns copies of the local identity key pair
	// established at store creation.
	IdentityKeyPair() (public, private []byte, err error)
	LocalRegistrationID() (uint32, error)
	// SaveIdentity records key as the last-seen public identity key for
	// the named recipient, replacing any previous one.
	SaveIdentity(name string, key []byte) error
	// IsTrustedIdentity applies trust-on-first-use: an unknown recipient
	// is trusted unconditionally; a known one is trusted only if key is
	// byte-exact equal to the recorded key.
	IsTrustedIdentity(name string, key []byte) (bool, error)
}

// SenderKeyStore persists per-group sender key records. Absence on load is
// (nil, nil), as with sessions.
type SenderKeyStore interface {
	StoreSenderKey(name SenderKeyName, record []byte) error
	LoadSenderKey(name SenderKeyName) ([]byte, error)
}
