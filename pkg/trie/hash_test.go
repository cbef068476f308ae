package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trielab/statetrie/pkg/crypto/hash"
)

func TestRootHash_Empty(t *testing.T) {
	tr := newTestTrie()
	require.Equal(t, hash.Keccak256(nil), tr.RootHash())
}

func TestRootHash_NotCached(t *testing.T) {
	tr := newTestTrie()
	tr.Put("a71355", "45.0ETH")
	h := tr.RootHash()
	require.Equal(t, h, tr.RootHash())

	// Mutating the tree between calls must be reflected immediately.
	tr.Put("a77d337", "1.00WEI")
	require.NotEqual(t, h, tr.RootHash())
}

// TestRootHash_SlotSignificance checks that the same child on different
// branch slots produces different digests.
func TestRootHash_SlotSignificance(t *testing.T) {
	l := NewLeafNode([]byte{0x5, 0x5}, "value")

	b1 := NewBranchNode()
	b1.Children[0x1] = l
	b1.Children[0x2] = NewLeafNode([]byte{0x6}, "other")

	b2 := NewBranchNode()
	b2.Children[0x2] = l
	b2.Children[0x1] = NewLeafNode([]byte{0x6}, "other")

	require.NotEqual(t, b1.Hash(), b2.Hash())
}

func TestRootHash_KindSignificance(t *testing.T) {
	// A leaf and an extension over the same nibble run must hash
	// differently even when their payloads collide byte-wise.
	l := NewLeafNode([]byte{0xa, 0x7}, "")
	e := NewExtensionNode([]byte{0xa, 0x7}, NewLeafNode([]byte{}, ""))
	require.NotEqual(t, l.Hash(), e.Hash())
}

func TestHash_EmptyNodePanics(t *testing.T) {
	require.Panics(t, func() { EmptyNode{}.Hash() })
}
