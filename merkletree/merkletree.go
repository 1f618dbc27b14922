package merkletree

import (
	"encoding/json"
	"fmt"

	"github.com/abadhikari/merkle-prefix-tree/crypto"
)

const (
	// EmptyBranchIdentifier is the domain separation constant hashed
	// to obtain the digest of an empty subtree at the leaf level.
	// Leaf digests are computed over the serialized value, so the two
	// preimage spaces only meet if a caller appends the literal
	// one-character string "E".
	EmptyBranchIdentifier = 'E'
)

// A HashFunc computes the digest of the concatenation of the passed
// byte slices. It must be deterministic, collision resistant and of
// fixed output length. The passed slices won't be mutated.
type HashFunc func(ms ...[]byte) []byte

// A SerializeFunc produces the canonical byte encoding of a leaf
// value. It must be deterministic: equal values must always serialize
// to equal bytes, since leaf digests are compared for equality.
type SerializeFunc func(value interface{}) ([]byte, error)

// DefaultSerialize encodes values as JSON. String and byte-slice
// values pass through unmodified.
func DefaultSerialize(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return json.Marshal(v)
	}
}

// Config carries the pluggable collaborators and the mode flag of a
// MerkleTree. The zero value selects the SHAKE128 digest, the JSON
// serializer and overwrite mode.
type Config struct {
	// HashFunc is the digest function; crypto.Digest if nil.
	HashFunc HashFunc
	// SerializeFunc is the canonical value encoder; DefaultSerialize
	// if nil.
	SerializeFunc SerializeFunc
	// AppendOnly forbids overwriting an already occupied leaf.
	AppendOnly bool
}

// MerkleTree represents the Merkle prefix tree data structure, which
// includes the root node, the tree height, and the table of
// empty-subtree hashes indexed by depth.
type MerkleTree struct {
	height        uint32
	hashFunc      HashFunc
	serializeFunc SerializeFunc
	appendOnly    bool
	root          *interiorNode
	emptyHashes   [][]byte
}

// NewMerkleTree returns an empty Merkle prefix tree of the given
// height. Every prefix passed to the tree's operations must be a
// string of exactly height '0'/'1' characters. conf may be nil, in
// which case defaults are used (see Config). The root hash of a fresh
// tree depends only on the height and the hash function, so two
// independently constructed empty trees agree on it.
func NewMerkleTree(height uint32, conf *Config) (*MerkleTree, error) {
	if height < 1 {
		return nil, ErrInvalidHeight
	}
	if conf == nil {
		conf = &Config{}
	}
	m := &MerkleTree{
		height:        height,
		hashFunc:      conf.HashFunc,
		serializeFunc: conf.SerializeFunc,
		appendOnly:    conf.AppendOnly,
		root:          newInteriorNode(nil, 0),
	}
	if m.hashFunc == nil {
		m.hashFunc = crypto.Digest
	}
	if m.serializeFunc == nil {
		m.serializeFunc = DefaultSerialize
	}
	m.precomputeEmptyHashes()
	return m, nil
}

// precomputeEmptyHashes fills the empty-subtree hash table bottom-up:
// the entry at the leaf depth is the digest of the domain separation
// constant, and every entry above it is the digest of its child entry
// twice. The table never changes after construction.
func (m *MerkleTree) precomputeEmptyHashes() {
	m.emptyHashes = make([][]byte, m.height+1)
	curr := m.hashFunc([]byte{EmptyBranchIdentifier})
	m.emptyHashes[m.height] = curr
	for depth := int(m.height) - 1; depth >= 0; depth-- {
		curr = m.hashFunc(curr, curr)
		m.emptyHashes[depth] = curr
	}
	m.root.hash = m.emptyHashes[0]
}

func (m *MerkleTree) validatePrefix(prefix string) error {
	if len(prefix) != int(m.height) {
		return fmt.Errorf("%w: length is %d, must be the tree height %d",
			ErrInvalidPrefix, len(prefix), m.height)
	}
	for i := 0; i < len(prefix); i++ {
		if prefix[i] != '0' && prefix[i] != '1' {
			return fmt.Errorf("%w: symbol %q at position %d",
				ErrInvalidPrefix, prefix[i], i)
		}
	}
	return nil
}

// GetRootHash returns the digest of the tree root.
func (m *MerkleTree) GetRootHash() []byte {
	return append([]byte{}, m.root.hash...)
}

// Height returns the fixed height of the tree.
func (m *MerkleTree) Height() uint32 {
	return m.height
}

// AppendOnly reports whether overwriting occupied leaves is forbidden.
func (m *MerkleTree) AppendOnly() bool {
	return m.appendOnly
}

// HashFunc returns the tree's digest function.
func (m *MerkleTree) HashFunc() HashFunc {
	return m.hashFunc
}

// SerializeFunc returns the tree's canonical value encoder.
func (m *MerkleTree) SerializeFunc() SerializeFunc {
	return m.serializeFunc
}

// EmptyHash returns the precomputed digest of an empty subtree rooted
// at the given depth, 0 through Height.
func (m *MerkleTree) EmptyHash(depth uint32) []byte {
	return append([]byte{}, m.emptyHashes[depth]...)
}

// Get returns the data node at the end of the prefix path, or nil if
// no value has been appended there. Absence is a normal outcome of a
// sparse tree, not an error; the only error is an invalid prefix.
func (m *MerkleTree) Get(prefix string) (*DataNode, error) {
	if err := m.validatePrefix(prefix); err != nil {
		return nil, err
	}
	curr := m.root
	for depth := 0; depth < int(m.height); depth++ {
		var child merkleNode
		if prefix[depth] == '1' {
			child = curr.rightChild
		} else {
			child = curr.leftChild
		}
		if child == nil {
			return nil, nil
		}
		if depth == int(m.height)-1 {
			return child.(*DataNode), nil
		}
		curr = child.(*interiorNode)
	}
	panic(ErrInvalidTree)
}

// Append inserts value as a leaf at the end of the prefix path,
// materializing interior nodes along the way as needed, and rehashes
// the path bottom-up so that every ancestor digest reflects the new
// leaf. If the leaf is already occupied, Append returns ErrAppendOnly
// in append-only mode and otherwise replaces the leaf's value in
// place. Validation happens before any mutation: on error the tree is
// unchanged.
func (m *MerkleTree) Append(prefix string, value interface{}) error {
	if err := m.validatePrefix(prefix); err != nil {
		return err
	}
	serialized, err := m.serializeFunc(value)
	if err != nil {
		return err
	}
	toAdd := &DataNode{
		value:      value,
		serialized: serialized,
		hash:       m.hashFunc(serialized),
	}

	leaf := toAdd
	curr := m.root
	for depth := 0; depth < int(m.height); depth++ {
		last := depth == int(m.height)-1
		var child merkleNode
		if prefix[depth] == '1' {
			child = curr.rightChild
		} else {
			child = curr.leftChild
		}

		switch {
		case child == nil && last:
			toAdd.parent = curr
			toAdd.level = uint32(depth) + 1
			curr.setChild(prefix[depth], toAdd)
		case child == nil:
			next := newInteriorNode(curr, uint32(depth)+1)
			curr.setChild(prefix[depth], next)
			curr = next
		case last:
			// The full path already exists, so nothing has been
			// materialized above and an append-only violation
			// leaves the tree untouched.
			if m.appendOnly {
				return fmt.Errorf("%w: prefix %s", ErrAppendOnly, prefix)
			}
			existing := child.(*DataNode)
			existing.value = toAdd.value
			existing.serialized = toAdd.serialized
			existing.hash = toAdd.hash
			leaf = existing
		default:
			curr = child.(*interiorNode)
		}
	}

	m.rehash(leaf)
	return nil
}

func (in *interiorNode) setChild(bit byte, child merkleNode) {
	if bit == '1' {
		in.rightChild = child
	} else {
		in.leftChild = child
	}
}

// rehash recomputes the digest of every ancestor of leaf, bottom-up to
// the root: each ancestor's digest becomes H(left || right), where an
// absent child contributes the empty hash of its depth. The walk runs
// exactly Height steps. leaf must be the data node that was just
// appended or overwritten; starting anywhere else is a defect and
// panics with ErrInvalidState.
func (m *MerkleTree) rehash(leaf merkleNode) {
	if _, ok := leaf.(*DataNode); !ok {
		panic(ErrInvalidState)
	}
	curr := leaf.up()
	for depth := int(m.height) - 1; depth >= 0; depth-- {
		if curr == nil {
			panic(ErrInvalidTree)
		}
		leftHash := m.emptyHashes[depth+1]
		if curr.leftChild != nil {
			leftHash = curr.leftChild.digest()
		}
		rightHash := m.emptyHashes[depth+1]
		if curr.rightChild != nil {
			rightHash = curr.rightChild.digest()
		}
		curr.hash = m.hashFunc(leftHash, rightHash)
		curr = curr.up()
	}
}
