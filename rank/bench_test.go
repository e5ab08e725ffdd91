package rank

import (
	"fmt"
	"testing"

	lithammer "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"
)

func benchCorpus(n int) []string {
	corpus := make([]string, n)
	for i := range n {
		corpus[i] = fmt.Sprintf("candidate-item %d with some descriptive words %d", i, i%7)
	}
	return corpus
}

func BenchmarkClassify(b *testing.B) {
	for b.Loop() {
		Classify("hello world wide web", "hww")
	}
}

func BenchmarkClassify_NoMatch(b *testing.B) {
	for b.Loop() {
		Classify("hello world wide web", "zqx")
	}
}

func BenchmarkClassify_Corpus(b *testing.B) {
	corpus := benchCorpus(1000)

	b.ResetTimer()
	for b.Loop() {
		for _, c := range corpus {
			Classify(c, "cand itm")
		}
	}
}

// Throughput comparisons against the scalar-score fuzzy matchers. They
// answer a different question (how close is the match) than Classify
// (which discrete tier applies), so only the per-corpus cost is comparable.

func BenchmarkCompare_SahilmFuzzy(b *testing.B) {
	corpus := benchCorpus(1000)

	b.ResetTimer()
	for b.Loop() {
		fuzzy.Find("cand itm", corpus)
	}
}

func BenchmarkCompare_LithammerRankFindFold(b *testing.B) {
	corpus := benchCorpus(1000)

	b.ResetTimer()
	for b.Loop() {
		lithammer.RankFindFold("cand itm", corpus)
	}
}
