package trie

import (
	"testing"

	"github.com/trielab/statetrie/internal/random"
)

func prepareBenchTrie(size int) *Trie {
	tr := NewTrie(Config{})
	for i := 0; i < size; i++ {
		tr.Put(random.String(10), random.String(8))
	}
	return tr
}

func BenchmarkPut(b *testing.B) {
	tr := prepareBenchTrie(1000)
	keys := make([]string, b.N)
	for i := range keys {
		keys[i] = random.String(10)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Put(keys[i], "value")
	}
}

func BenchmarkGet(b *testing.B) {
	tr := prepareBenchTrie(1000)
	tr.Put("a71355", "45.0ETH")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Get("a71355")
	}
}

func BenchmarkRootHash(b *testing.B) {
	tr := prepareBenchTrie(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.RootHash()
	}
}
