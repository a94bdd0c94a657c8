package main

import (
	"fmt"
)

type wipeCommand struct {
	Args struct {
		Name string `positional-arg-name:"name"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd *wipeCommand) Execute(args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	n, err := s.DeleteAllSessions(cmd.Args.Name)
	if err != nil {
		return err
	}
	fmt.Printf("Removed %d session(s) for %s\n", n, cmd.Args.Name)
	return nil
}
