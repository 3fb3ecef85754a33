package trie

import (
	"fmt"
	"math/rand"
	"testing"
)

var benchAlphabet = []rune("abcdefghijklmnopqrstuvwxyz")

func randBenchWord(rng *rand.Rand, n int) string {
	rs := make([]rune, n)
	for i := range rs {
		rs[i] = benchAlphabet[rng.Intn(len(benchAlphabet))]
	}
	return string(rs)
}

func buildBenchTrie(n int) *Trie {
	rng := rand.New(rand.NewSource(7))
	tr := New()
	for i := 0; i < n; i++ {
		tr.Insert(randBenchWord(rng, 4+rng.Intn(8)))
	}
	return tr
}

func BenchmarkSearch(b *testing.B) {
	for _, size := range []int{1_000, 10_000, 100_000} {
		tr := buildBenchTrie(size)
		for _, d := range []int{1, 2} {
			if err := tr.Install(d); err != nil {
				b.Fatal(err)
			}
			b.Run(fmt.Sprintf("dict=%d/d=%d", size, d), func(b *testing.B) {
				rng := rand.New(rand.NewSource(99))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					tr.Search(d, randBenchWord(rng, 6))
				}
			})
		}
	}
}

func BenchmarkInsert(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	tr := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Insert(randBenchWord(rng, 8))
	}
}
