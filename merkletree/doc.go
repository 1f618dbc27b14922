/*
Package merkletree implements a Merkle prefix tree: a fixed-height,
sparse, binary authenticated tree mapping bit-string prefixes to leaf
values, anchored by a single root digest.

The tree is addressed by prefixes: strings of '0' and '1' characters
whose length equals the tree height. A '0' descends into the left
subtree and a '1' into the right. Leaves always sit at the bottom of
the tree, and interior nodes are materialized lazily, one root-to-leaf
path at a time, as values are appended. Absent subtrees are never
allocated; their digests come from a table of per-depth empty-subtree
hashes computed once at construction. Appending a value therefore
costs O(height) node creations and hash computations regardless of how
many leaves the tree already holds.

Inclusion proofs are the ordered sibling digests along a leaf's path.
A verifier holding only a prefix, a proof, a claimed leaf digest and a
trusted root digest can recompute the root without access to the tree;
see VerifyInclusionProof. Roots can be attested across epochs with
SignedTreeRoot.

The base MerkleTree is not safe for concurrent use. LockedTree wraps
it with a single-writer, parallel-reader lock.
*/
package merkletree
