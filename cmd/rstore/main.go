// Command rstore provisions and inspects ratchet-store SQLite databases.
//
// Usage:
//
//	rstore init                Create a store and generate a local identity
//	rstore info                Show the local identity and registration id
//	rstore sessions <name>     List device ids with a session for a recipient
//	rstore wipe <name>         Delete all sessions for a recipient
package main

import (
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/gwillem/ratchet-store/sqlstore"
)

type globalOpts struct {
	DB      string `long:"db" description:"Path to database file"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable verbose logging"`

	Init     initCommand     `command:"init" description:"Create a store and generate a local identity"`
	Info     infoCommand     `command:"info" description:"Show the local identity and registration id"`
	Sessions sessionsCommand `command:"sessions" description:"List device ids with a session for a recipient"`
	Wipe     wipeCommand     `command:"wipe" description:"Delete all sessions for a recipient"`
}

var opts globalOpts

// openStore opens the configured database with logging wired up.
func openStore() (*sqlstore.Store, error) {
	level := zerolog.WarnLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	return sqlstore.Open(opts.DB, sqlstore.WithLogger(log))
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
