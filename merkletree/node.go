package merkletree

type node struct {
	parent *interiorNode
	level  uint32
}

func (n *node) up() *interiorNode {
	return n.parent
}

// A merkleNode is a materialized node of the prefix tree: either an
// interior node or a data leaf. Empty subtrees are never materialized;
// a nil child link stands in for them and their digests come from the
// tree's empty-hash table.
type merkleNode interface {
	digest() []byte
	up() *interiorNode
}

type interiorNode struct {
	node
	leftChild  merkleNode
	rightChild merkleNode
	hash       []byte
}

// A DataNode is a leaf holding an appended value. Data nodes always
// sit at a depth equal to the tree height.
type DataNode struct {
	node
	value      interface{}
	serialized []byte
	hash       []byte
}

var _ merkleNode = (*interiorNode)(nil)
var _ merkleNode = (*DataNode)(nil)

func newInteriorNode(parent *interiorNode, level uint32) *interiorNode {
	return &interiorNode{
		node: node{
			parent: parent,
			level:  level,
		},
	}
}

func (n *interiorNode) digest() []byte {
	return n.hash
}

func (n *DataNode) digest() []byte {
	return n.hash
}

// Value returns the original value appended at this leaf.
func (n *DataNode) Value() interface{} {
	return n.value
}

// Serialized returns the canonical byte encoding of the leaf value,
// i.e. the preimage of Hash.
func (n *DataNode) Serialized() []byte {
	return append([]byte{}, n.serialized...)
}

// Hash returns the digest of the serialized leaf value.
func (n *DataNode) Hash() []byte {
	return append([]byte{}, n.hash...)
}

// Level returns the depth of the leaf, which equals the tree height.
func (n *DataNode) Level() uint32 {
	return n.level
}
