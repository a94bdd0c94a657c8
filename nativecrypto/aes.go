package nativecrypto

import (
	"crypto/aes"
	"crypto/cipher"

	ratchetstore "github.com/gwillem/ratchet-store"
)

// checkCipherParams rejects bad parameters before any cipher state is
// touched: the IV must be exactly one block, the key length must select
// AES-128/192/256, and the mode must be one of the two supported modes.
func checkCipherParams(op string, mode ratchetstore.CipherMode, key, iv []byte) error {
	switch mode {
	case ratchetstore.AESCBCPKCS5, ratchetstore.AESCTRNoPadding:
	default:
		return ratchetstore.Errorf(ratchetstore.CodeInvalidArgument, op,
			"unsupported cipher mode %d", mode)
	}
	switch len(key) {
	case 16, 24, 32:
	default:
		return ratchetstore.Errorf(ratchetstore.CodeInvalidArgument, op,
			"invalid AES key size %d", len(key))
	}
	if len(iv) != aes.BlockSize {
		return ratchetstore.Errorf(ratchetstore.CodeInvalidArgument, op,
			"invalid AES IV size %d", len(iv))
	}
	return nil
}

// Encrypt encrypts plaintext with AES under the given mode. CBC applies
// PKCS#7 padding; CTR output length equals plaintext length.
func (Provider) Encrypt(mode ratchetstore.CipherMode, key, iv, plaintext []byte) ([]byte, error) {
	const op = "nativecrypto: encrypt"
	if err := checkCipherParams(op, mode, key, iv); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ratchetstore.E(ratchetstore.CodeInternal, op, err)
	}

	switch mode {
	case ratchetstore.AESCBCPKCS5:
		padded := pkcs7Pad(plaintext, aes.BlockSize)
		out := make([]byte, len(padded))
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
		return out, nil
	default: // AESCTRNoPadding
		// Capacity leaves room for a full block, but CTR output length
		// always equals the input length.
		out := make([]byte, len(plaintext), len(plaintext)+aes.BlockSize)
		cipher.NewCTR(block, iv).XORKeyStream(out, plaintext)
		return out, nil
	}
}

// Decrypt inverts Encrypt. CBC validates and strips the padding; a
// ciphertext that is not a whole number of blocks is rejected before the
// cipher runs.
func (Provider) Decrypt(mode ratchetstore.CipherMode, key, iv, ciphertext []byte) ([]byte, error) {
	const op = "nativecrypto: decrypt"
	if err := checkCipherParams(op, mode, key, iv); err != nil {
		return nil, err
	}
	if mode == ratchetstore.AESCBCPKCS5 && len(ciphertext)%aes.BlockSize != 0 {
		return nil, ratchetstore.Errorf(ratchetstore.CodeInvalidArgument, op,
			"ciphertext length %d not a multiple of block size", len(ciphertext))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ratchetstore.E(ratchetstore.CodeInternal, op, err)
	}

	switch mode {
	case ratchetstore.AESCBCPKCS5:
		out := make([]byte, len(ciphertext))
		cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)
		plain, err := pkcs7Unpad(out, aes.BlockSize)
		if err != nil {
			return nil, ratchetstore.E(ratchetstore.CodeInternal, op, err)
		}
		return plain, nil
	default: // AESCTRNoPadding
		out := make([]byte, len(ciphertext), len(ciphertext)+aes.BlockSize)
		cipher.NewCTR(block, iv).XORKeyStream(out, ciphertext)
		return out, nil
	}
}
