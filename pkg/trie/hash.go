package trie

import (
	"github.com/trielab/statetrie/pkg/crypto/hash"
	"github.com/trielab/statetrie/pkg/util"
)

// RootHash returns the structural digest of the whole trie. It is
// recomputed from the leaves up on every call. The digest of an empty
// trie is the digest of empty content.
func (t *Trie) RootHash() util.Uint256 {
	if isEmpty(t.root) {
		return hash.Keccak256(nil)
	}
	return t.root.Hash()
}
