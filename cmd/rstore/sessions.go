package main

import (
	"fmt"
)

type sessionsCommand struct {
	Args struct {
		Name string `positional-arg-name:"name"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd *sessionsCommand) Execute(args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	devices, err := s.SubDeviceSessions(cmd.Args.Name)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		fmt.Printf("No sessions for %s\n", cmd.Args.Name)
		return nil
	}
	fmt.Printf("Sessions for %s (%d):\n", cmd.Args.Name, len(devices))
	for _, id := range devices {
		fmt.Printf("  device %d\n", id)
	}
	return nil
}
