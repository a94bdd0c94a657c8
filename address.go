package ratchetstore

import "fmt"

// Address identifies one device belonging to one logical recipient.
// Name on its own is not unique; only the (Name, DeviceID) pair is.
type Address struct {
	Name     string
	DeviceID uint32
}

func (a Address) String() string {
	return fmt.Sprintf("%s:%d", a.Name, a.DeviceID)
}

// SenderKeyName identifies per-group sender key state: the group plus the
// sending device. Independent of the 1:1 session keyspace.
type SenderKeyName struct {
	GroupID string
	Sender  Address
}

func (n SenderKeyName) String() string {
	return fmt.Sprintf("%s/%s", n.GroupID, n.Sender)
}
