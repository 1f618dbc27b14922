// Package shake128 registers the default SHAKE128 tree hasher.
package shake128

import (
	"github.com/abadhikari/merkle-prefix-tree/crypto"
	"github.com/abadhikari/merkle-prefix-tree/crypto/hasher"
)

func init() {
	hasher.RegisterHasher(crypto.HashID, New)
}

type shakeHasher struct{}

// New returns an instance of the SHAKE128 hasher.
func New() hasher.TreeHasher {
	return &shakeHasher{}
}

func (shakeHasher) ID() string {
	return crypto.HashID
}

func (shakeHasher) Size() int {
	return crypto.HashSizeByte
}

func (shakeHasher) Digest(ms ...[]byte) []byte {
	return crypto.Digest(ms...)
}
