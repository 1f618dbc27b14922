package merkletree

import "sync"

// LockedTree wraps a MerkleTree with a single-writer, parallel-reader
// lock, for callers that mutate the tree from several goroutines. The
// base MerkleTree stays unsynchronized: appends race with reads on the
// shared ancestor digests unless serialized externally or through this
// wrapper.
type LockedTree struct {
	mu   sync.RWMutex
	tree *MerkleTree
}

// NewLockedTree returns a LockedTree guarding m. The caller must not
// keep using m directly afterwards.
func NewLockedTree(m *MerkleTree) *LockedTree {
	return &LockedTree{tree: m}
}

// Append calls MerkleTree.Append under the write lock.
func (l *LockedTree) Append(prefix string, value interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Append(prefix, value)
}

// Get calls MerkleTree.Get under the read lock.
func (l *LockedTree) Get(prefix string) (*DataNode, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Get(prefix)
}

// GetRootHash calls MerkleTree.GetRootHash under the read lock.
func (l *LockedTree) GetRootHash() []byte {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.GetRootHash()
}

// ProduceInclusionProof calls MerkleTree.ProduceInclusionProof under
// the read lock.
func (l *LockedTree) ProduceInclusionProof(prefix string) (InclusionProof, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.ProduceInclusionProof(prefix)
}

// ValidateInclusionProof calls MerkleTree.ValidateInclusionProof under
// the read lock. Validation is pure, but it reads the tree's hash
// function, so it follows the same discipline as the other readers.
func (l *LockedTree) ValidateInclusionProof(prefix string, proof InclusionProof, includedHash, rootHash []byte) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.ValidateInclusionProof(prefix, proof, includedHash, rootHash)
}
