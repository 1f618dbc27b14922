package merkletree

import (
	"fmt"
	"strings"
)

// String renders the tree with box-drawing connectors, one line per
// node, using an explicit stack instead of recursion. Materialized
// nodes print their digest; an absent subtree prints the empty hash of
// its depth and is not descended into.
func (m *MerkleTree) String() string {
	type frame struct {
		n      merkleNode
		level  uint32
		branch byte // 0 for the root, 'l' or 'r' below it
		indent string
	}

	var sb strings.Builder
	stack := []frame{{n: m.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		divider, indent := "", f.indent
		switch f.branch {
		case 'l':
			divider = f.indent + "├── "
			indent += "|   "
		case 'r':
			divider = f.indent + "└── "
			indent += "    "
		}

		if f.n == nil {
			fmt.Fprintf(&sb, "%s%x\n", divider, m.emptyHashes[f.level])
			continue
		}
		fmt.Fprintf(&sb, "%s%x\n", divider, f.n.digest())

		if in, ok := f.n.(*interiorNode); ok {
			// Push right first so the left subtree prints first.
			stack = append(stack,
				frame{n: in.rightChild, level: f.level + 1, branch: 'r', indent: indent},
				frame{n: in.leftChild, level: f.level + 1, branch: 'l', indent: indent},
			)
		}
	}
	return sb.String()
}
