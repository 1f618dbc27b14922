package treetool

import (
	"github.com/abadhikari/merkle-prefix-tree/application"
	"github.com/abadhikari/merkle-prefix-tree/crypto"
	"github.com/abadhikari/merkle-prefix-tree/utils"
)

// Config contains the configuration of an mpt tool instance: the tree
// height, its append-only policy, the hasher selecting the digest
// algorithm, and optional paths to an entries file appended at startup
// and to an ed25519 signing key for root attestation.
type Config struct {
	*application.CommonConfig

	Height      uint32 `toml:"height"`
	AppendOnly  bool   `toml:"append_only"`
	Hasher      string `toml:"hasher"`
	EntriesPath string `toml:"entries,omitempty"`
	SignKeyPath string `toml:"sign_key,omitempty"`
}

var _ application.AppConfig = (*Config)(nil)

// NewConfig initializes a new tool configuration at the given file
// path, with the given config encoding, tree parameters, hasher
// identity, entries and signing-key paths, and logger configuration.
func NewConfig(file, encoding string, height uint32, appendOnly bool,
	hasherID, entriesPath, signKeyPath string,
	logConfig *application.LoggerConfig) *Config {
	if hasherID == "" {
		hasherID = crypto.HashID
	}
	conf := Config{
		CommonConfig: application.NewCommonConfig(file, encoding, logConfig),
		Height:       height,
		AppendOnly:   appendOnly,
		Hasher:       hasherID,
		EntriesPath:  entriesPath,
		SignKeyPath:  signKeyPath,
	}
	return &conf
}

// Load initializes the tool's configuration from the given file using
// the given encoding, and resolves the entries, signing-key and log
// paths relative to the config file.
func (conf *Config) Load(file, encoding string) error {
	conf.CommonConfig = application.NewCommonConfig(file, encoding, nil)
	if err := conf.GetLoader().Decode(conf); err != nil {
		return err
	}
	if conf.EntriesPath != "" {
		conf.EntriesPath = utils.ResolvePath(conf.EntriesPath, file)
	}
	if conf.SignKeyPath != "" {
		conf.SignKeyPath = utils.ResolvePath(conf.SignKeyPath, file)
	}
	if conf.Logger != nil && conf.Logger.Path != "" {
		conf.Logger.Path = utils.ResolvePath(conf.Logger.Path, file)
	}
	return nil
}

// Save writes the tool's configuration.
func (conf *Config) Save() error {
	return conf.GetLoader().Encode(conf)
}

// GetPath returns the tool's configuration file path.
func (conf *Config) GetPath() string {
	return conf.Path
}
