// Package cmd implements the CLI commands for the mpt tool.
package cmd

import (
	"github.com/abadhikari/merkle-prefix-tree/cli"
)

// RootCmd represents the base "mpt" command when called without any subcommands.
var RootCmd = cli.NewRootCommand("mpt",
	"Merkle prefix tree tool",
	`
mpt builds a fixed-height Merkle prefix tree from an entries file,
reports its root digest, and produces and checks inclusion proofs
against it.
`)
