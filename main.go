package main

import (
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/pivotal-cf/pw-alert/commands"
)

func main() {
	parser := flags.NewParser(&commands.PwAlert, flags.Default)

	_, err := parser.Parse()
	if err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}

		os.Exit(1)
	}
}
