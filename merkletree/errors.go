package merkletree

import "errors"

var (
	// ErrInvalidTree indicates a panic due to
	// a malformed operation on the tree.
	ErrInvalidTree = errors.New("[merkletree] Invalid tree")

	// ErrInvalidHeight indicates a tree construction with a height
	// below 1. No tree is produced.
	ErrInvalidHeight = errors.New("[merkletree] Tree height must be at least 1")

	// ErrInvalidPrefix indicates a prefix whose length differs from
	// the tree height or which contains symbols other than '0' and
	// '1'. It is returned before any traversal or mutation happens.
	ErrInvalidPrefix = errors.New("[merkletree] Invalid prefix")

	// ErrAppendOnly indicates an append to an already occupied leaf
	// while the tree is in append-only mode. The tree is unchanged.
	ErrAppendOnly = errors.New("[merkletree] Leaf already occupied in append-only mode")

	// ErrInvalidState indicates a panic due to rehashing from a node
	// that is not a data leaf. This is a defect in the calling code,
	// not a recoverable runtime condition.
	ErrInvalidState = errors.New("[merkletree] Rehash must start from a data node")
)
