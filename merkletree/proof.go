package merkletree

import (
	"bytes"
)

// An InclusionProof is the ordered sequence of sibling digests along a
// leaf's root-to-leaf path. Element i is the digest of the subtree
// passed over when the bit prefix[i] was consumed, so a proof for a
// present leaf always has exactly Height elements. Folding the proof
// from the last element up to the first recomputes the root digest.
type InclusionProof [][]byte

// ProduceInclusionProof walks the prefix path and collects the digest
// of the sibling passed over at each level, substituting the
// precomputed empty hash when the sibling was never materialized. If
// the descent reaches an absent child before the leaf level, the value
// is provably not present via this path and an empty proof is
// returned.
func (m *MerkleTree) ProduceInclusionProof(prefix string) (InclusionProof, error) {
	if err := m.validatePrefix(prefix); err != nil {
		return nil, err
	}
	proof := make(InclusionProof, 0, m.height)
	curr := m.root
	for depth := 0; depth < int(m.height); depth++ {
		var next, sibling merkleNode
		if prefix[depth] == '1' {
			next, sibling = curr.rightChild, curr.leftChild
		} else {
			next, sibling = curr.leftChild, curr.rightChild
		}
		if next == nil {
			return InclusionProof{}, nil
		}

		siblingHash := m.emptyHashes[depth+1]
		if sibling != nil {
			siblingHash = sibling.digest()
		}
		proof = append(proof, append([]byte{}, siblingHash...))

		if depth < int(m.height)-1 {
			curr = next.(*interiorNode)
		}
	}
	return proof, nil
}

// ValidateInclusionProof checks proof against the tree's own hash
// function: it reports whether includedHash at the given prefix,
// combined with the proof, reproduces rootHash. The tree itself is not
// consulted beyond its hash function, so a proof can be validated
// against a root digest older or newer than the tree's current one.
func (m *MerkleTree) ValidateInclusionProof(prefix string, proof InclusionProof, includedHash, rootHash []byte) (bool, error) {
	if err := m.validatePrefix(prefix); err != nil {
		return false, err
	}
	return VerifyInclusionProof(m.hashFunc, prefix, proof, includedHash, rootHash), nil
}

// VerifyInclusionProof recomputes a candidate root digest by folding
// the proof from the leaf upward: at level i the running digest is
// placed on the left and proof[i] on the right when prefix[i] is '0',
// and the other way around when it is '1', mirroring the descent. It
// reports whether the final digest equals rootHash. Only the hash
// function is needed, so a third party holding a proof and a trusted
// root can verify inclusion without the tree.
func VerifyInclusionProof(hashFunc HashFunc, prefix string, proof InclusionProof, includedHash, rootHash []byte) bool {
	if len(proof) > len(prefix) {
		return false
	}
	calculated := includedHash
	for i := len(proof) - 1; i >= 0; i-- {
		if prefix[i] == '0' {
			calculated = hashFunc(calculated, proof[i])
		} else {
			calculated = hashFunc(proof[i], calculated)
		}
	}
	return bytes.Equal(calculated, rootHash)
}
