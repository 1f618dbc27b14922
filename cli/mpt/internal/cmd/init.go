package cmd

import (
	"log"
	"path"

	"github.com/spf13/cobra"

	"github.com/abadhikari/merkle-prefix-tree/application"
	"github.com/abadhikari/merkle-prefix-tree/application/treetool"
	"github.com/abadhikari/merkle-prefix-tree/cli"
	"github.com/abadhikari/merkle-prefix-tree/crypto/sign"
	"github.com/abadhikari/merkle-prefix-tree/utils"
)

// initCmd represents the init command
var initCmd = cli.NewInitCommand("the mpt tool", initRunFunc)

func init() {
	RootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("dir", "d", ".", "Location of directory for storing generated files")
	initCmd.Flags().Uint32P("height", "H", 8, "Height of the tree in the generated config")
	initCmd.Flags().BoolP("append-only", "a", false, "Forbid overwriting occupied leaves")
}

func initRunFunc(cmd *cobra.Command, args []string) {
	dir := cmd.Flag("dir").Value.String()
	height, err := cmd.Flags().GetUint32("height")
	if err != nil {
		log.Fatal(err)
	}
	appendOnly, err := cmd.Flags().GetBool("append-only")
	if err != nil {
		log.Fatal(err)
	}
	mkConfig(dir, height, appendOnly)
	mkSigningKey(dir)
	mkEntries(dir)
}

func mkConfig(dir string, height uint32, appendOnly bool) {
	file := path.Join(dir, "config.toml")
	logger := &application.LoggerConfig{
		EnableStacktrace: true,
		Environment:      "development",
		Path:             "mpt.log",
	}
	conf := treetool.NewConfig(file, "toml", height, appendOnly,
		"", "entries.json", "sign.priv", logger)
	if err := conf.Save(); err != nil {
		log.Println(err)
	}
}

func mkSigningKey(dir string) {
	sk, err := sign.GenerateKey(nil)
	if err != nil {
		log.Print(err)
		return
	}
	pk, _ := sk.Public()
	if err := utils.WriteFile(path.Join(dir, "sign.priv"), sk, 0600); err != nil {
		log.Println(err)
		return
	}
	if err := utils.WriteFile(path.Join(dir, "sign.pub"), pk, 0600); err != nil {
		log.Println(err)
		return
	}
}

func mkEntries(dir string) {
	sample := []byte(`[
	{"prefix": "00000001", "value": "3"},
	{"key": "alice", "value": "alice's key"}
]
`)
	if err := utils.WriteFile(path.Join(dir, "entries.json"), sample, 0644); err != nil {
		log.Println(err)
	}
}
