package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLcp(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     []byte
		expected []byte
	}{
		{"BothEmpty", []byte{}, []byte{}, []byte{}},
		{"DivergeAtStart", []byte{0x1, 0x2}, []byte{0x2, 0x1}, []byte{}},
		{"PartialMatch", []byte{0xa, 0x7, 0x1}, []byte{0xa, 0x7, 0x7}, []byte{0xa, 0x7}},
		{"FirstIsPrefix", []byte{0xa, 0x7}, []byte{0xa, 0x7, 0x7}, []byte{0xa, 0x7}},
		{"SecondIsPrefix", []byte{0xa, 0x7, 0x7}, []byte{0xa, 0x7}, []byte{0xa, 0x7}},
		{"Equal", []byte{0xa, 0x7}, []byte{0xa, 0x7}, []byte{0xa, 0x7}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, lcp(tc.a, tc.b))
		})
	}
}

func TestSplitPath(t *testing.T) {
	i, rest := splitPath([]byte{0xa, 0x7, 0x1})
	require.EqualValues(t, 0xa, i)
	require.Equal(t, []byte{0x7, 0x1}, rest)

	i, rest = splitPath([]byte{0x5})
	require.EqualValues(t, 0x5, i)
	require.Empty(t, rest)
}

func TestIsEmpty(t *testing.T) {
	require.True(t, isEmpty(EmptyNode{}))
	require.False(t, isEmpty(NewLeafNode(nil, "")))
	require.False(t, isEmpty(NewBranchNode()))
}
