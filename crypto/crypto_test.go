package crypto

import (
	"bytes"
	"testing"
)

func TestDigest(t *testing.T) {
	msg := []byte("test message")
	d := Digest(msg)
	if len(d) != HashSizeByte {
		t.Fatal("Computation of hash failed.")
	}
	if bytes.Equal(d, Digest([]byte("another message"))) {
		t.Fatal("Hash of different messages should not be equal")
	}
	if !bytes.Equal(d, Digest(msg)) {
		t.Fatal("Digest is not deterministic")
	}
}

func TestDigestConcatenation(t *testing.T) {
	// Digest over several slices must equal the digest of their
	// concatenation, since the tree hashes left || right this way.
	left := []byte("left child hash")
	right := []byte("right child hash")
	joined := append(append([]byte{}, left...), right...)
	if !bytes.Equal(Digest(left, right), Digest(joined)) {
		t.Fatal("Variadic digest differs from digest of concatenation")
	}
}

func TestMakeRand(t *testing.T) {
	r1, err := MakeRand()
	if err != nil {
		t.Fatal(err)
	}
	r2, err := MakeRand()
	if err != nil {
		t.Fatal(err)
	}
	if len(r1) != HashSizeByte {
		t.Fatal("Bad random output length")
	}
	if bytes.Equal(r1, r2) {
		t.Fatal("Observed collision in random outputs")
	}
}
