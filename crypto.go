package ratchetstore

// CipherMode selects the AES mode of operation for Encrypt and Decrypt.
// The key length selects AES-128/192/256 independently of the mode.
type CipherMode int

const (
	// AESCBCPKCS5 is CBC mode with PKCS#5/PKCS#7 padding.
	AESCBCPKCS5 CipherMode = iota
	// AESCTRNoPadding is CTR mode; ciphertext length equals plaintext
	// length.
	AESCTRNoPadding
)

func (m CipherMode) String() string {
	switch m {
	case AESCBCPKCS5:
		return "AES-CBC/PKCS5"
	case AESCTRNoPadding:
		return "AES-CTR/NoPadding"
	default:
		return "unknown"
	}
}

// MAC is a streaming HMAC-SHA256 context, so the engine can authenticate
// data assembled in parts. Cleanup releases retained key material and is
// safe to call more than once; callers should defer it as soon as the
// context is acquired.
type MAC interface {
	Update(data []byte) error
	// Final returns the 32-byte authentication code.
	Final() ([]byte, error)
	Cleanup()
}

// CryptoProvider is the fixed primitive contract the protocol engine calls
// into without selecting an implementation itself. All operations are
// synchronous. Parameter errors carry CodeInvalidArgument; underlying
// primitive failures carry CodeInternal.
type CryptoProvider interface {
	// Random returns n cryptographically secure random bytes. It never
	// returns short output: any failure is an error.
	Random(n int) ([]byte, error)
	// NewHMACSHA256 acquires a streaming MAC context keyed with key.
	NewHMACSHA256(key []byte) (MAC, error)
	// SHA512 returns the 64-byte digest of data.
	SHA512(data []byte) ([]byte, error)
	// Encrypt encrypts plaintext with the given mode, key and 16-byte IV.
	Encrypt(mode CipherMode, key, iv, plaintext []byte) ([]byte, error)
	// Decrypt inverts Encrypt, validating and stripping padding in CBC
	// mode.
	Decrypt(mode CipherMode, key, iv, ciphertext []byte) ([]byte, error)
}
