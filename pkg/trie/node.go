package trie

import (
	"github.com/trielab/statetrie/pkg/util"
)

// NodeType represents a node type.
type NodeType byte

// Node types definitions.
const (
	BranchT    NodeType = 0x00
	ExtensionT NodeType = 0x01
	LeafT      NodeType = 0x02
	EmptyT     NodeType = 0x03
)

// Node represents the common interface of all trie nodes. Every node is
// exclusively owned by its parent, there are no shared subtrees and no
// back-references. A persistent deployment would replace direct child
// ownership with digests resolved through a content-addressed node store,
// this package deliberately keeps the whole tree in memory.
type Node interface {
	// Type returns the node kind.
	Type() NodeType
	// Hash returns the structural digest of the subtree rooted at this
	// node. It is recomputed bottom-up on every call and never cached.
	Hash() util.Uint256
}
