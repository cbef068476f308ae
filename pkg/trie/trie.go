package trie

import (
	"bytes"
	"errors"

	"go.uber.org/zap"
)

// Trie is an in-memory Merkle Patricia Trie mapping text keys to text
// values. All nodes are directly owned by their parents, so the whole tree
// lives in memory and a single caller at a time is assumed, no internal
// locking is provided.
type Trie struct {
	Config

	root Node
}

// Config is a set of settings for the trie.
type Config struct {
	// Log traces structural rewrites at debug level. It can be nil.
	Log *zap.Logger
}

// ErrNotFound is returned when the requested trie item is missing.
var ErrNotFound = errors.New("item not found")

// NewTrie returns a new empty trie.
func NewTrie(cfg Config) *Trie {
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}
	return &Trie{
		Config: cfg,
		root:   EmptyNode{},
	}
}

// Put puts the key-value pair into t, creating or overwriting the mapping
// for key. The key conversion is total, so Put cannot fail.
func (t *Trie) Put(key, value string) {
	path := toNibbles(key)
	t.root = t.putIntoNode(t.root, path, value)
}

// putIntoNode puts value at the provided path inside curr and returns the
// node occupying this position in the rewritten tree. The caller re-links
// the result into its own parent.
func (t *Trie) putIntoNode(curr Node, path []byte, value string) Node {
	switch n := curr.(type) {
	case *LeafNode:
		return t.putIntoLeaf(n, path, value)
	case *BranchNode:
		return t.putIntoBranch(n, path, value)
	case *ExtensionNode:
		return t.putIntoExtension(n, path, value)
	case EmptyNode:
		return NewLeafNode(copySlice(path), value)
	default:
		panic("invalid trie node type")
	}
}

// putIntoLeaf puts value to the trie if the current node is a Leaf. On a
// full suffix match the leaf value is replaced in place, otherwise the
// leaf is split into a branch re-homing both continuations. A key that is
// a strict prefix of the other terminates on the branch itself.
func (t *Trie) putIntoLeaf(curr *LeafNode, path []byte, value string) Node {
	pref := lcp(curr.key, path)
	if len(pref) == len(curr.key) && len(pref) == len(path) {
		curr.value = value
		return curr
	}

	t.Log.Debug("splitting leaf",
		zap.String("suffix", nibblesToHex(curr.key)),
		zap.String("path", nibblesToHex(path)))

	keyTail := curr.key[len(pref):]
	pathTail := path[len(pref):]

	b := NewBranchNode()
	if len(keyTail) == 0 {
		b.setValue(curr.value)
	} else {
		i, rest := splitPath(keyTail)
		b.Children[i] = NewLeafNode(copySlice(rest), curr.value)
	}
	if len(pathTail) == 0 {
		b.setValue(value)
	} else {
		i, rest := splitPath(pathTail)
		b.Children[i] = NewLeafNode(copySlice(rest), value)
	}

	if len(pref) > 0 {
		return NewExtensionNode(copySlice(pref), b)
	}
	return b
}

// putIntoBranch puts value to the trie if the current node is a Branch. An
// exhausted path stores the value on the branch itself.
func (t *Trie) putIntoBranch(curr *BranchNode, path []byte, value string) Node {
	if len(path) == 0 {
		curr.setValue(value)
		return curr
	}
	i, path := splitPath(path)
	curr.Children[i] = t.putIntoNode(curr.Children[i], path, value)
	return curr
}

// putIntoExtension puts value to the trie if the current node is an
// Extension. A path carrying the whole shared run descends into the next
// node, any other path splits the extension around the common prefix.
func (t *Trie) putIntoExtension(curr *ExtensionNode, path []byte, value string) Node {
	if bytes.HasPrefix(path, curr.key) {
		curr.next = t.putIntoNode(curr.next, path[len(curr.key):], value)
		return curr
	}

	pref := lcp(curr.key, path)
	keyTail := curr.key[len(pref):]
	pathTail := path[len(pref):]

	t.Log.Debug("splitting extension",
		zap.String("run", nibblesToHex(curr.key)),
		zap.String("path", nibblesToHex(path)))

	// keyTail is not empty here, a path carrying the whole run was
	// handled above.
	b := NewBranchNode()
	i, rest := splitPath(keyTail)
	b.Children[i] = newSubTrie(copySlice(rest), curr.next)

	if len(pathTail) == 0 {
		b.setValue(value)
	} else {
		i, rest := splitPath(pathTail)
		b.Children[i] = NewLeafNode(copySlice(rest), value)
	}

	if len(pref) > 0 {
		return NewExtensionNode(copySlice(pref), b)
	}
	return b
}

// newSubTrie creates a new node containing the given node at the provided
// path. A zero-length path collapses into the node itself.
func newSubTrie(path []byte, val Node) Node {
	if len(path) == 0 {
		return val
	}
	return NewExtensionNode(path, val)
}

// Get returns the value for the provided key in t. A missing key yields
// ErrNotFound, it is an expected outcome and not a fault. Get never
// mutates the trie.
func (t *Trie) Get(key string) (string, error) {
	path := toNibbles(key)
	return t.getFromNode(t.root, path)
}

func (t *Trie) getFromNode(curr Node, path []byte) (string, error) {
	switch n := curr.(type) {
	case *LeafNode:
		if bytes.Equal(n.key, path) {
			return n.value, nil
		}
	case *BranchNode:
		if len(path) == 0 {
			if n.hasValue {
				return n.value, nil
			}
			return "", ErrNotFound
		}
		i, rest := splitPath(path)
		return t.getFromNode(n.Children[i], rest)
	case *ExtensionNode:
		if bytes.HasPrefix(path, n.key) {
			return t.getFromNode(n.next, path[len(n.key):])
		}
	case EmptyNode:
	default:
		panic("invalid trie node type")
	}
	return "", ErrNotFound
}
