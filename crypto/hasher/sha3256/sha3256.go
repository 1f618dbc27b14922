// Package sha3256 registers a SHA3-256 tree hasher.
package sha3256

import (
	"golang.org/x/crypto/sha3"

	"github.com/abadhikari/merkle-prefix-tree/crypto/hasher"
)

func init() {
	hasher.RegisterHasher(HashID, New)
}

// HashID is the identity of the SHA3-256 hashing strategy.
const HashID = "SHA3-256"

type sha3Hasher struct{}

// New returns an instance of the SHA3-256 hasher.
func New() hasher.TreeHasher {
	return &sha3Hasher{}
}

func (sha3Hasher) ID() string {
	return HashID
}

func (sha3Hasher) Size() int {
	return 32
}

func (sha3Hasher) Digest(ms ...[]byte) []byte {
	h := sha3.New256()
	for _, m := range ms {
		h.Write(m)
	}
	return h.Sum(nil)
}
