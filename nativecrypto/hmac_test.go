package nativecrypto

import (
	"bytes"
	"testing"
)

// RFC 4231 test case 1.
func TestHMACSHA256KnownAnswer(t *testing.T) {
	p := Provider{}
	key := bytes.Repeat([]byte{0x0b}, 20)
	want := mustHex(t, "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7")

	mac, err := p.NewHMACSHA256(key)
	if err != nil {
		t.Fatal(err)
	}
	defer mac.Cleanup()

	if err := mac.Update([]byte("Hi There")); err != nil {
		t.Fatal(err)
	}
	got, err := mac.Final()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

// Incremental updates must produce the same MAC as a single write.
func TestHMACSHA256Streaming(t *testing.T) {
	p := Provider{}
	key := []byte("mac key")

	whole, err := p.NewHMACSHA256(key)
	if err != nil {
		t.Fatal(err)
	}
	defer whole.Cleanup()
	if err := whole.Update([]byte("assembled in parts")); err != nil {
		t.Fatal(err)
	}
	want, err := whole.Final()
	if err != nil {
		t.Fatal(err)
	}
	if len(want) != 32 {
		t.Fatalf("digest length %d, want 32", len(want))
	}

	parts, err := p.NewHMACSHA256(key)
	if err != nil {
		t.Fatal(err)
	}
	defer parts.Cleanup()
	for _, chunk := range []string{"assembled", " in", " parts"} {
		if err := parts.Update([]byte(chunk)); err != nil {
			t.Fatal(err)
		}
	}
	got, err := parts.Final()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("streaming MAC %x != one-shot MAC %x", got, want)
	}
}

func TestHMACCleanup(t *testing.T) {
	p := Provider{}
	mac, err := p.NewHMACSHA256([]byte("key"))
	if err != nil {
		t.Fatal(err)
	}
	mac.Cleanup()
	// Cleanup is idempotent.
	mac.Cleanup()

	if err := mac.Update([]byte("data")); err == nil {
		t.Fatal("update after cleanup should fail")
	}
	if _, err := mac.Final(); err == nil {
		t.Fatal("final after cleanup should fail")
	}
}

func TestSHA512KnownAnswer(t *testing.T) {
	p := Provider{}
	want := mustHex(t,
		"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a"+
			"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f")

	got, err := p.SHA512([]byte("abc"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 64 {
		t.Fatalf("digest length %d, want 64", len(got))
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestRandom(t *testing.T) {
	p := Provider{}

	a, err := p.Random(32)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 32 {
		t.Fatalf("got %d bytes, want 32", len(a))
	}
	b, err := p.Random(32)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("two random draws were identical")
	}

	zero, err := p.Random(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(zero) != 0 {
		t.Fatalf("got %d bytes, want 0", len(zero))
	}

	if _, err := p.Random(-1); err == nil {
		t.Fatal("negative length should fail")
	}
}
