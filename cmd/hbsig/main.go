// Command hbsig is a thin CLI front-end over the hbsig signature scheme:
// keygen, sign and verify, as specified by spec §6. It is a collaborator
// at the edge of the core, not part of the core itself — file I/O,
// flag parsing and console logging live here, nowhere else.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultPrivateKeyPath = ".private_key.json"

var log zerolog.Logger

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hbsig",
		Short:         "Stateless hash-based digital signatures",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newKeygenCmd())
	root.AddCommand(newSignCmd())
	root.AddCommand(newVerifyCmd())
	return root
}

func main() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("hbsig failed")
		os.Exit(1)
	}
}
