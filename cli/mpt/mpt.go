// Executable Merkle prefix tree tool. See README for
// usage instructions.
package main

import (
	"github.com/abadhikari/merkle-prefix-tree/cli"
	"github.com/abadhikari/merkle-prefix-tree/cli/mpt/internal/cmd"
)

func main() {
	cli.Execute(cmd.RootCmd)
}
