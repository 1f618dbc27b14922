// Package sign implements a digital signature scheme
// for attesting to Merkle prefix tree roots.
package sign

import (
	"crypto/ed25519"
	"crypto/rand"
	"io"
)

const (
	// PrivateKeySize is the size of the private-key in bytes.
	PrivateKeySize = 64
	// PublicKeySize is the size of the public-key in bytes.
	PublicKeySize = 32
	// SignatureSize is the size of the created signature in bytes.
	SignatureSize = 64
)

// PrivateKey wraps the underlying private-key (ed25519.PrivateKey).
type PrivateKey ed25519.PrivateKey

// PublicKey wraps the underlying public-key type.
type PublicKey ed25519.PublicKey

// GenerateKey generates and returns a fresh random private-key, from
// which the corresponding public-key can be derived (via Public()).
// It will use the passed io.Reader rnd as source of randomness, or
// crypto/rand.Reader if rnd is nil.
func GenerateKey(rnd io.Reader) (PrivateKey, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	_, sk, err := ed25519.GenerateKey(rnd)
	return PrivateKey(sk), err
}

// Sign returns a signature on the passed message.
func (key PrivateKey) Sign(message []byte) []byte {
	return ed25519.Sign(ed25519.PrivateKey(key), message)
}

// Public derives the public-key corresponding to the private-key.
// It returns false if the derivation fails.
func (key PrivateKey) Public() (PublicKey, bool) {
	pk, ok := ed25519.PrivateKey(key).Public().(ed25519.PublicKey)
	return PublicKey(pk), ok
}

// Verify verifies a signature sig on message using the public-key.
// It returns true if and only if the signature is valid.
func (pk PublicKey) Verify(message, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pk), message, sig)
}
