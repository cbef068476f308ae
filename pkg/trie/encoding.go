package trie

import (
	"regexp"
)

// Prefix tags distinguishing node kind and nibble run parity in the hashed
// form of a node. Nibble runs are packed byte-wise for hashing, so runs of
// odd and even length must be tagged differently to stay unambiguous.
const (
	tagExtensionEven byte = 0x00
	tagExtensionOdd  byte = 0x01
	tagLeafEven      byte = 0x02
	tagLeafOdd       byte = 0x03
)

var hexKey = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// toNibbles converts a key to a nibble path. A key consisting only of
// hexadecimal digits maps one character to one nibble, case-insensitively.
// Any other key is split byte-wise, high nibble first. The conversion is
// total and never fails.
func toNibbles(key string) []byte {
	if hexKey.MatchString(key) {
		path := make([]byte, len(key))
		for i := 0; i < len(key); i++ {
			path[i] = hexDigit(key[i])
		}
		return path
	}
	path := make([]byte, 2*len(key))
	for i := 0; i < len(key); i++ {
		path[2*i] = key[i] >> 4
		path[2*i+1] = key[i] & 0x0F
	}
	return path
}

func hexDigit(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// prefixTag returns the tag for a nibble run of the given length held by a
// leaf or an extension node.
func prefixTag(pathLen int, isLeaf bool) byte {
	tag := tagExtensionEven
	if isLeaf {
		tag = tagLeafEven
	}
	if pathLen%2 == 1 {
		tag++
	}
	return tag
}

// toCompact packs a nibble run into bytes prefixed with its tag. The tag
// occupies the high half of the first byte. An odd run puts its first
// nibble into the low half, an even run keeps a zero padding nibble there,
// so the encoded length always matches the tag parity.
func toCompact(path []byte, isLeaf bool) []byte {
	res := make([]byte, len(path)/2+1)
	res[0] = prefixTag(len(path), isLeaf) << 4
	if len(path)%2 == 1 {
		res[0] |= path[0]
		path = path[1:]
	}
	for i := 0; i < len(path); i += 2 {
		res[i/2+1] = path[i]<<4 | path[i+1]
	}
	return res
}

const hexDigits = "0123456789abcdef"

// nibblesToHex returns a human-readable form of a nibble run, one hex
// digit per nibble.
func nibblesToHex(path []byte) string {
	res := make([]byte, len(path))
	for i, n := range path {
		res[i] = hexDigits[n]
	}
	return string(res)
}
