package main

import (
	"fmt"

	"github.com/gwillem/ratchet-store/nativecrypto"
)

type initCommand struct{}

func (cmd *initCommand) Execute(args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	created, err := s.EnsureIdentity(nativecrypto.Provider{})
	if err != nil {
		return err
	}
	if !created {
		fmt.Println("Store already has a local identity; nothing to do.")
		return nil
	}

	regID, err := s.LocalRegistrationID()
	if err != nil {
		return err
	}
	fmt.Printf("Store initialized, registration id %d\n", regID)
	return nil
}
