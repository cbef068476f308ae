package trie

import (
	"github.com/trielab/statetrie/pkg/crypto/hash"
	"github.com/trielab/statetrie/pkg/util"
)

// LeafNode represents a trie leaf node. Its key is the key suffix left
// unconsumed by ancestor extension runs and branch index selections.
type LeafNode struct {
	key   []byte
	value string
}

var _ Node = (*LeafNode)(nil)

// NewLeafNode returns a leaf node with the specified suffix and value.
func NewLeafNode(key []byte, value string) *LeafNode {
	return &LeafNode{
		key:   key,
		value: value,
	}
}

// Type implements the Node interface.
func (n *LeafNode) Type() NodeType { return LeafT }

// Hash implements the Node interface.
func (n *LeafNode) Hash() util.Uint256 {
	return hash.Keccak256Concat(toCompact(n.key, true), []byte(n.value))
}
