package memstore

import (
	"bytes"
	"testing"

	ratchetstore "github.com/gwillem/ratchet-store"
)

func skName(group, sender string, device uint32) ratchetstore.SenderKeyName {
	return ratchetstore.SenderKeyName{
		GroupID: group,
		Sender:  ratchetstore.Address{Name: sender, DeviceID: device},
	}
}

func TestSenderKeyRoundTrip(t *testing.T) {
	s := NewSenderKeyStore()
	name := skName("group one", "alice", 1)
	record := []byte("sender key state")

	if err := s.StoreSenderKey(name, record); err != nil {
		t.Fatal(err)
	}
	got, err := s.LoadSenderKey(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, record) {
		t.Fatalf("got %q, want %q", got, record)
	}
}

func TestSenderKeyLoadAbsent(t *testing.T) {
	s := NewSenderKeyStore()
	got, err := s.LoadSenderKey(skName("group one", "alice", 1))
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("expected nil record, got %q", got)
	}
}

func TestSenderKeyOverwrite(t *testing.T) {
	s := NewSenderKeyStore()
	name := skName("group one", "alice", 1)

	if err := s.StoreSenderKey(name, []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := s.StoreSenderKey(name, []byte("second")); err != nil {
		t.Fatal(err)
	}
	got, _ := s.LoadSenderKey(name)
	if string(got) != "second" {
		t.Fatalf("got %q, want %q", got, "second")
	}
}

// All three key fields participate in the composite key.
func TestSenderKeyCompositeKey(t *testing.T) {
	s := NewSenderKeyStore()
	base := skName("group one", "alice", 1)
	if err := s.StoreSenderKey(base, []byte("rec")); err != nil {
		t.Fatal(err)
	}

	for _, other := range []ratchetstore.SenderKeyName{
		skName("group two", "alice", 1),
		skName("group one", "bob", 1),
		skName("group one", "alice", 2),
	} {
		got, err := s.LoadSenderKey(other)
		if err != nil {
			t.Fatal(err)
		}
		if got != nil {
			t.Fatalf("%v unexpectedly resolved to a record", other)
		}
	}
}
