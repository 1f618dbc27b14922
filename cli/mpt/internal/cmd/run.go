package cmd

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/abadhikari/merkle-prefix-tree/application/treetool"
	"github.com/abadhikari/merkle-prefix-tree/cli"
)

// runCmd represents the run command
var runCmd = cli.NewRunCommand("Merkle prefix tree",
	`Run the mpt tool.

This builds the tree described by the config file and the entries
file it points to, and prints the resulting root digest. With
--prove or --key it additionally produces an inclusion proof and
checks it against the root; with --sign it issues a signed tree
root over the current root digest.

This will look for config files with default names
in the current directory if not specified differently.
	`, run)

func init() {
	RootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("config", "c", "config.toml", "Path to the tool configuration file")
	runCmd.Flags().StringP("prove", "p", "", "Produce and check an inclusion proof for this prefix")
	runCmd.Flags().StringP("key", "k", "", "Like --prove, but for the prefix derived from this key")
	runCmd.Flags().BoolP("print", "t", false, "Print the tree rendering")
	runCmd.Flags().BoolP("sign", "s", false, "Issue a signed tree root (requires sign_key in the config)")
}

func run(cmd *cobra.Command, args []string) {
	confPath := cmd.Flag("config").Value.String()

	conf := &treetool.Config{}
	if err := conf.Load(confPath, "toml"); err != nil {
		log.Fatal(err)
	}
	tool, err := treetool.New(conf)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := tool.LoadEntries(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("root:", hex.EncodeToString(tool.Tree().GetRootHash()))

	if print, _ := cmd.Flags().GetBool("print"); print {
		fmt.Print(tool.Tree().String())
	}

	prefix := cmd.Flag("prove").Value.String()
	if key := cmd.Flag("key").Value.String(); key != "" {
		prefix = tool.KeyPrefix(key)
		fmt.Println("prefix:", prefix)
	}
	if prefix != "" {
		prove(tool, prefix)
	}

	if signRoot, _ := cmd.Flags().GetBool("sign"); signRoot {
		str, err := tool.SignedRoot(0, []byte{})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("signature:", hex.EncodeToString(str.Signature))
	}
}

func prove(tool *treetool.TreeTool, prefix string) {
	proof, included, err := tool.Prove(prefix)
	if err != nil {
		log.Fatal(err)
	}
	if !included {
		fmt.Println("not present:", prefix)
		return
	}
	for i, p := range proof {
		fmt.Printf("proof[%d]: %s\n", i, hex.EncodeToString(p))
	}
	fmt.Println("proof verified against current root")
}
