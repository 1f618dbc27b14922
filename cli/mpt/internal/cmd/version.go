package cmd

import (
	"github.com/abadhikari/merkle-prefix-tree/cli"
)

// versionCmd represents the version command
var versionCmd = cli.NewVersionCommand("mpt")

func init() {
	RootCmd.AddCommand(versionCmd)
}
