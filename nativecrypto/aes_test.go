package nativecrypto

import (
	"bytes"
	"crypto/aes"
	"encoding/hex"
	"testing"

	ratchetstore "github.com/gwillem/ratchet-store"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestCBCRoundTrip(t *testing.T) {
	p := Provider{}
	key := bytes.Repeat([]byte{0x42}, 32) // AES-256
	iv := bytes.Repeat([]byte{0x24}, 16)

	// Includes 0, non-block-multiple and block-multiple lengths.
	for _, n := range []int{0, 1, 15, 16, 17, 31, 32, 100} {
		plaintext := bytes.Repeat([]byte{0xab}, n)
		ct, err := p.Encrypt(ratchetstore.AESCBCPKCS5, key, iv, plaintext)
		if err != nil {
			t.Fatalf("len %d: %v", n, err)
		}
		if len(ct)%aes.BlockSize != 0 || len(ct) <= n {
			t.Fatalf("len %d: ciphertext length %d not padded to blocks", n, len(ct))
		}
		pt, err := p.Decrypt(ratchetstore.AESCBCPKCS5, key, iv, ct)
		if err != nil {
			t.Fatalf("len %d: %v", n, err)
		}
		if !bytes.Equal(pt, plaintext) {
			t.Fatalf("len %d: round trip mismatch", n)
		}
	}
}

func TestCTRRoundTrip(t *testing.T) {
	p := Provider{}
	key := bytes.Repeat([]byte{0x42}, 16) // AES-128
	iv := bytes.Repeat([]byte{0x24}, 16)

	for _, n := range []int{0, 1, 15, 16, 17, 100} {
		plaintext := bytes.Repeat([]byte{0xcd}, n)
		ct, err := p.Encrypt(ratchetstore.AESCTRNoPadding, key, iv, plaintext)
		if err != nil {
			t.Fatalf("len %d: %v", n, err)
		}
		if len(ct) != n {
			t.Fatalf("len %d: CTR ciphertext length %d, want %d", n, len(ct), n)
		}
		pt, err := p.Decrypt(ratchetstore.AESCTRNoPadding, key, iv, ct)
		if err != nil {
			t.Fatalf("len %d: %v", n, err)
		}
		if !bytes.Equal(pt, plaintext) {
			t.Fatalf("len %d: round trip mismatch", n)
		}
	}
}

// NIST SP 800-38A F.5.1, first block.
func TestCTRKnownAnswer(t *testing.T) {
	p := Provider{}
	key := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	iv := mustHex(t, "f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff")
	plaintext := mustHex(t, "6bc1bee22e409f96e93d7e117393172a")
	want := mustHex(t, "874d6191b620e3261bef6864990db6ce")

	got, err := p.Encrypt(ratchetstore.AESCTRNoPadding, key, iv, plaintext)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestCipherRejectsBadParams(t *testing.T) {
	p := Provider{}
	goodKey := bytes.Repeat([]byte{1}, 16)
	goodIV := bytes.Repeat([]byte{2}, 16)
	data := []byte("payload")

	cases := []struct {
		name string
		mode ratchetstore.CipherMode
		key  []byte
		iv   []byte
	}{
		{"short iv", ratchetstore.AESCBCPKCS5, goodKey, goodIV[:15]},
		{"long iv", ratchetstore.AESCTRNoPadding, goodKey, bytes.Repeat([]byte{2}, 17)},
		{"bad key size", ratchetstore.AESCBCPKCS5, bytes.Repeat([]byte{1}, 20), goodIV},
		{"unknown mode", ratchetstore.CipherMode(99), goodKey, goodIV},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := p.Encrypt(tc.mode, tc.key, tc.iv, data)
			if code := ratchetstore.CodeOf(err); code != ratchetstore.CodeInvalidArgument {
				t.Fatalf("encrypt: got code %q, want %q", code, ratchetstore.CodeInvalidArgument)
			}
			if out != nil {
				t.Fatal("encrypt produced output on invalid parameters")
			}
			out, err = p.Decrypt(tc.mode, tc.key, tc.iv, data)
			if code := ratchetstore.CodeOf(err); code != ratchetstore.CodeInvalidArgument {
				t.Fatalf("decrypt: got code %q, want %q", code, ratchetstore.CodeInvalidArgument)
			}
			if out != nil {
				t.Fatal("decrypt produced output on invalid parameters")
			}
		})
	}
}

func TestCBCDecryptRejectsPartialBlock(t *testing.T) {
	p := Provider{}
	key := bytes.Repeat([]byte{1}, 16)
	iv := bytes.Repeat([]byte{2}, 16)

	_, err := p.Decrypt(ratchetstore.AESCBCPKCS5, key, iv, []byte("17 bytes of data!"))
	if code := ratchetstore.CodeOf(err); code != ratchetstore.CodeInvalidArgument {
		t.Fatalf("got code %q, want %q", code, ratchetstore.CodeInvalidArgument)
	}
}

func TestCBCDecryptBadPadding(t *testing.T) {
	p := Provider{}
	key := bytes.Repeat([]byte{1}, 16)
	iv := bytes.Repeat([]byte{2}, 16)

	// A random block will not decrypt to valid padding for this key.
	garbage := bytes.Repeat([]byte{0x5a}, 16)
	_, err := p.Decrypt(ratchetstore.AESCBCPKCS5, key, iv, garbage)
	if err == nil {
		t.Skip("garbage block happened to decrypt to valid padding")
	}
	if code := ratchetstore.CodeOf(err); code != ratchetstore.CodeInternal {
		t.Fatalf("got code %q, want %q", code, ratchetstore.CodeInternal)
	}
}
