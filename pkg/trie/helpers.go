package trie

// lcp returns the longest common prefix of a and b.
func lcp(a, b []byte) []byte {
	if len(a) < len(b) {
		a, b = b, a
	}
	var i int
	for i = 0; i < len(b); i++ {
		if a[i] != b[i] {
			break
		}
	}
	return b[:i]
}

// splitPath splits the path into the branch slot index selected by its
// first nibble and the rest of the path.
func splitPath(path []byte) (byte, []byte) {
	return path[0], path[1:]
}

// isEmpty checks whether the given node is an EmptyNode.
func isEmpty(n Node) bool {
	_, ok := n.(EmptyNode)
	return ok
}

// copySlice returns a copy of the provided slice.
func copySlice(b []byte) []byte {
	d := make([]byte, len(b))
	copy(d, b)
	return d
}
