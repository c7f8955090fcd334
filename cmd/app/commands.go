package main

import (
	"slices"

	"github.com/urfave/cli/v3"
)

// getCommands lists every subcommand in the order shown by --help.
func getCommands(version string) []*cli.Command {
	return slices.Concat(getSystemCommands(version), getAuthCommands())
}
