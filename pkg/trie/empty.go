package trie

import (
	"github.com/trielab/statetrie/pkg/util"
)

// EmptyNode represents an empty node. It is used instead of nil in branch
// child slots and as the root of a freshly constructed trie.
type EmptyNode struct{}

// Type implements the Node interface.
func (e EmptyNode) Type() NodeType {
	return EmptyT
}

// Hash implements the Node interface.
func (e EmptyNode) Hash() util.Uint256 {
	panic("can't get hash of an EmptyNode")
}
