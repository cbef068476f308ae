package trie

import (
	"github.com/trielab/statetrie/pkg/crypto/hash"
	"github.com/trielab/statetrie/pkg/util"
)

// childrenCount is the number of child slots in a branch node, one per
// nibble value.
const childrenCount = 16

// emptyChildDigest is the placeholder an empty child slot contributes to
// the branch digest, keeping slot positions hash-significant.
var emptyChildDigest util.Uint256

// BranchNode represents a trie branch node: 16 child slots indexed by
// nibble value plus an optional value for a key whose nibble path
// terminates exactly at this node.
type BranchNode struct {
	Children [childrenCount]Node

	value    string
	hasValue bool
}

var _ Node = (*BranchNode)(nil)

// NewBranchNode returns a new branch node with all child slots empty.
func NewBranchNode() *BranchNode {
	b := new(BranchNode)
	for i := range b.Children {
		b.Children[i] = EmptyNode{}
	}
	return b
}

// Type implements the Node interface.
func (b *BranchNode) Type() NodeType { return BranchT }

// Value returns the value stored in the branch itself together with its
// presence flag.
func (b *BranchNode) Value() (string, bool) {
	return b.value, b.hasValue
}

func (b *BranchNode) setValue(v string) {
	b.value = v
	b.hasValue = true
}

// Hash implements the Node interface.
func (b *BranchNode) Hash() util.Uint256 {
	buf := make([]byte, 0, childrenCount*util.Uint256Size+len(b.value))
	for i := range b.Children {
		if isEmpty(b.Children[i]) {
			buf = append(buf, emptyChildDigest.BytesBE()...)
			continue
		}
		h := b.Children[i].Hash()
		buf = append(buf, h.BytesBE()...)
	}
	if b.hasValue {
		buf = append(buf, b.value...)
	}
	return hash.Keccak256(buf)
}
