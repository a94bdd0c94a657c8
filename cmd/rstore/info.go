package main

import (
	"fmt"
)

type infoCommand struct{}

func (cmd *infoCommand) Execute(args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	public, _, err := s.IdentityKeyPair()
	if err != nil {
		return err
	}
	regID, err := s.LocalRegistrationID()
	if err != nil {
		return err
	}

	fmt.Printf("Identity key: %x\n", public)
	fmt.Printf("Registration id: %d\n", regID)
	return nil
}
