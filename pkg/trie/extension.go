package trie

import (
	"github.com/trielab/statetrie/pkg/crypto/hash"
	"github.com/trielab/statetrie/pkg/util"
)

// ExtensionNode represents a trie extension node carrying a nibble run
// shared by every key passing through it. Its key is never empty and its
// next node is never another extension, the insertion algorithm collapses
// both shapes away.
type ExtensionNode struct {
	key  []byte
	next Node
}

var _ Node = (*ExtensionNode)(nil)

// NewExtensionNode returns an extension node with the specified shared run
// and the next node. The run must contain one nibble per byte and must not
// be empty.
func NewExtensionNode(key []byte, next Node) *ExtensionNode {
	if len(key) == 0 {
		panic("extension node must have a non-empty key")
	}
	return &ExtensionNode{
		key:  key,
		next: next,
	}
}

// Type implements the Node interface.
func (e *ExtensionNode) Type() NodeType { return ExtensionT }

// Hash implements the Node interface.
func (e *ExtensionNode) Hash() util.Uint256 {
	h := e.next.Hash()
	return hash.Keccak256Concat(toCompact(e.key, false), h.BytesBE())
}
