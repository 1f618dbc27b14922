package merkletree

import (
	"bytes"

	"github.com/abadhikari/merkle-prefix-tree/crypto"
	"github.com/abadhikari/merkle-prefix-tree/crypto/sign"
	"github.com/abadhikari/merkle-prefix-tree/utils"
)

// SignedTreeRoot represents a signed tree root (STR): a root digest
// attested by a signing key at a given epoch, chained to the previous
// STR by the digest of its signature. The epoch number is a counter
// from 0, and increases by 1 with every issued STR. Exchanging STRs is
// how two parties agree on the root that inclusion proofs anchor to.
type SignedTreeRoot struct {
	TreeHash        []byte
	Epoch           uint64
	PreviousEpoch   uint64
	PreviousSTRHash []byte
	Signature       []byte
}

// NewSTR constructs a SignedTreeRoot over the tree's current root hash
// for the given epoch and previous STR hash, and signs it with key.
func NewSTR(key sign.PrivateKey, m *MerkleTree, epoch uint64, prevHash []byte) *SignedTreeRoot {
	prevEpoch := epoch - 1
	if epoch == 0 {
		prevEpoch = 0
	}
	str := &SignedTreeRoot{
		TreeHash:        m.GetRootHash(),
		Epoch:           epoch,
		PreviousEpoch:   prevEpoch,
		PreviousSTRHash: prevHash,
	}
	str.Signature = key.Sign(str.Serialize())
	return str
}

// Serialize serializes the signed tree root into
// a specified format for signing.
func (str *SignedTreeRoot) Serialize() []byte {
	var strBytes []byte
	strBytes = append(strBytes, utils.ULongToBytes(str.Epoch)...) // t - epoch number
	if str.Epoch > 0 {
		strBytes = append(strBytes, utils.ULongToBytes(str.PreviousEpoch)...) // t_prev - previous epoch number
	}
	strBytes = append(strBytes, str.TreeHash...)        // root
	strBytes = append(strBytes, str.PreviousSTRHash...) // previous STR hash
	return strBytes
}

// Verify reports whether the STR carries a valid signature under pk.
func (str *SignedTreeRoot) Verify(pk sign.PublicKey) bool {
	return pk.Verify(str.Serialize(), str.Signature)
}

// VerifyHashChain computes the hash of savedSTR's signature,
// and compares it to the hash of the previous STR included
// in the issued STR. The hash chain is valid if
// these two hash values are equal and consecutive.
func (str *SignedTreeRoot) VerifyHashChain(savedSTR *SignedTreeRoot) bool {
	hash := crypto.Digest(savedSTR.Signature)
	return str.PreviousEpoch == savedSTR.Epoch &&
		str.Epoch == savedSTR.Epoch+1 &&
		bytes.Equal(hash, str.PreviousSTRHash)
}
