package hash

import (
	"golang.org/x/crypto/sha3"

	"github.com/trielab/statetrie/pkg/util"
)

// Keccak256 hashes the incoming byte slice using the Keccak-256 algorithm.
func Keccak256(data []byte) util.Uint256 {
	var hash util.Uint256
	hasher := sha3.NewLegacyKeccak256()
	_, _ = hasher.Write(data)
	hasher.Sum(hash[:0])
	return hash
}

// Keccak256Concat hashes the concatenation of the given byte slices without
// materializing it.
func Keccak256Concat(chunks ...[]byte) util.Uint256 {
	var hash util.Uint256
	hasher := sha3.NewLegacyKeccak256()
	for _, c := range chunks {
		_, _ = hasher.Write(c)
	}
	hasher.Sum(hash[:0])
	return hash
}
