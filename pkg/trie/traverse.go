package trie

// NodeDescription describes a single trie node as produced by Traverse. It
// is intended for debugging and visualization, not for programmatic
// consumption.
type NodeDescription struct {
	// Kind is "branch", "extension" or "leaf".
	Kind string `json:"kind"`
	// Tag is the prefix tag of the node's nibble run, e.g.
	// "leaf-odd". Empty for branch nodes, they carry no run.
	Tag string `json:"tag,omitempty"`
	// Path is the shared run (extension) or unconsumed suffix (leaf), one
	// hex digit per nibble.
	Path string `json:"path,omitempty"`
	// Value is the stored value of a leaf or of the branch itself.
	Value string `json:"value,omitempty"`
	// HasValue reports whether Value is present, distinguishing a missing
	// branch value from an empty one.
	HasValue bool `json:"hasValue"`
	// Slots lists occupied child slot indices of a branch.
	Slots []int `json:"slots,omitempty"`
}

var tagNames = map[byte]string{
	tagExtensionEven: "extension-even",
	tagExtensionOdd:  "extension-odd",
	tagLeafEven:      "leaf-even",
	tagLeafOdd:       "leaf-odd",
}

// Traverse walks the trie pre-order calling process for every node until
// true is returned from the process function.
func (t *Trie) Traverse(process func(NodeDescription) bool) {
	_ = t.traverse(t.root, process)
}

func (t *Trie) traverse(curr Node, process func(NodeDescription) bool) bool {
	switch n := curr.(type) {
	case EmptyNode:
		return false
	case *LeafNode:
		return process(NodeDescription{
			Kind:     "leaf",
			Tag:      tagNames[prefixTag(len(n.key), true)],
			Path:     nibblesToHex(n.key),
			Value:    n.value,
			HasValue: true,
		})
	case *ExtensionNode:
		if process(NodeDescription{
			Kind: "extension",
			Tag:  tagNames[prefixTag(len(n.key), false)],
			Path: nibblesToHex(n.key),
		}) {
			return true
		}
		return t.traverse(n.next, process)
	case *BranchNode:
		desc := NodeDescription{
			Kind:     "branch",
			Value:    n.value,
			HasValue: n.hasValue,
		}
		for i := range n.Children {
			if !isEmpty(n.Children[i]) {
				desc.Slots = append(desc.Slots, i)
			}
		}
		if process(desc) {
			return true
		}
		for i := range n.Children {
			if t.traverse(n.Children[i], process) {
				return true
			}
		}
		return false
	default:
		panic("invalid trie node type")
	}
}
