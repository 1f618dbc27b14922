// Package treetool implements the application logic of the mpt
// executable: it builds a Merkle prefix tree from a configuration and
// an entries file, and answers root, proof and signing requests
// against it.
package treetool

import (
	"fmt"
	"os"

	"github.com/abadhikari/merkle-prefix-tree/application"
	"github.com/abadhikari/merkle-prefix-tree/crypto/hasher"
	"github.com/abadhikari/merkle-prefix-tree/crypto/sign"
	"github.com/abadhikari/merkle-prefix-tree/merkletree"
	"github.com/abadhikari/merkle-prefix-tree/utils"

	_ "github.com/abadhikari/merkle-prefix-tree/crypto/hasher/sha3256"
	_ "github.com/abadhikari/merkle-prefix-tree/crypto/hasher/shake128"
)

// A TreeTool owns a Merkle prefix tree built from a Config, together
// with the hasher and optional signing key the config selects.
type TreeTool struct {
	conf    *Config
	logger  *application.Logger
	hasher  hasher.TreeHasher
	tree    *merkletree.MerkleTree
	signKey sign.PrivateKey
}

// New constructs a TreeTool from the given loaded configuration.
func New(conf *Config) (*TreeTool, error) {
	h, err := hasher.Hasher(conf.Hasher)
	if err != nil {
		return nil, err
	}
	tree, err := merkletree.NewMerkleTree(conf.Height, &merkletree.Config{
		HashFunc:   h.Digest,
		AppendOnly: conf.AppendOnly,
	})
	if err != nil {
		return nil, err
	}

	tt := &TreeTool{
		conf:   conf,
		logger: application.NewLogger(conf.Logger),
		hasher: h,
		tree:   tree,
	}
	if conf.SignKeyPath != "" {
		sk, err := os.ReadFile(conf.SignKeyPath)
		if err != nil {
			return nil, fmt.Errorf("Cannot read signing key: %v", err)
		}
		if len(sk) != sign.PrivateKeySize {
			return nil, fmt.Errorf("Signing key must be %d bytes (got %d)",
				sign.PrivateKeySize, len(sk))
		}
		tt.signKey = sign.PrivateKey(sk)
	}
	return tt, nil
}

// Tree returns the underlying Merkle prefix tree.
func (tt *TreeTool) Tree() *merkletree.MerkleTree {
	return tt.tree
}

// KeyPrefix derives the tree prefix of a key: the digest of the key
// truncated to the tree height, rendered as a bit string.
func (tt *TreeTool) KeyPrefix(key string) string {
	return utils.ToBitString(tt.hasher.Digest([]byte(key)), int(tt.tree.Height()))
}

// LoadEntries appends every record of the configured entries file into
// the tree and returns the number of appended entries. A missing
// entries path is not an error; the tree just stays empty.
func (tt *TreeTool) LoadEntries() (int, error) {
	if tt.conf.EntriesPath == "" {
		return 0, nil
	}
	entries, err := application.ReadEntriesFile(tt.conf.EntriesPath)
	if err != nil {
		return 0, err
	}
	for _, e := range entries {
		prefix := e.Prefix
		if prefix == "" {
			prefix = tt.KeyPrefix(e.Key)
		}
		if err := tt.tree.Append(prefix, e.Value); err != nil {
			return 0, err
		}
		tt.logger.Debug("Appended entry", "prefix", prefix)
	}
	tt.logger.Info("Built tree from entries file",
		"entries", len(entries),
		"height", tt.tree.Height(),
		"root", fmt.Sprintf("%x", tt.tree.GetRootHash()))
	return len(entries), nil
}

// Prove produces an inclusion proof for prefix and validates it
// against the current root. included is false when nothing is present
// at the prefix, in which case the proof is empty.
func (tt *TreeTool) Prove(prefix string) (proof merkletree.InclusionProof, included bool, err error) {
	proof, err = tt.tree.ProduceInclusionProof(prefix)
	if err != nil {
		return nil, false, err
	}
	if len(proof) == 0 {
		return proof, false, nil
	}
	leaf, err := tt.tree.Get(prefix)
	if err != nil {
		return nil, false, err
	}
	if leaf == nil {
		// A full-length proof always ends in a materialized leaf.
		panic(merkletree.ErrInvalidTree)
	}
	ok, err := tt.tree.ValidateInclusionProof(prefix, proof, leaf.Hash(), tt.tree.GetRootHash())
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, fmt.Errorf("produced proof for %s does not validate", prefix)
	}
	return proof, true, nil
}

// SignedRoot issues a signed tree root over the current root hash for
// the given epoch and previous STR hash. It requires a signing key in
// the configuration.
func (tt *TreeTool) SignedRoot(epoch uint64, prevHash []byte) (*merkletree.SignedTreeRoot, error) {
	if tt.signKey == nil {
		return nil, fmt.Errorf("no signing key configured")
	}
	return merkletree.NewSTR(tt.signKey, tt.tree, epoch, prevHash), nil
}
