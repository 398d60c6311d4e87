package analysis

import (
	"math"
	"regexp"
	"strings"
)

var tokenRe = regexp.MustCompile(`\b\w\w+\b`)

// Similarity computes the cosine similarity of the TF-IDF vectors of two
// documents over the two-document corpus {a, b}. The document-frequency part
// only ever sees these two documents: a term shared by both is weighted lower
// than a term unique to one side. Degenerate inputs (either text empty, or no
// tokens in common) yield 0. The vectors are rebuilt on every call.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	tfA := termFrequencies(a)
	tfB := termFrequencies(b)
	if len(tfA) == 0 || len(tfB) == 0 {
		return 0
	}

	// Smoothed inverse document frequency over the 2-document corpus:
	// idf(t) = ln((1+n)/(1+df(t))) + 1 with n = 2.
	idf := func(term string) float64 {
		df := 0
		if tfA[term] > 0 {
			df++
		}
		if tfB[term] > 0 {
			df++
		}
		return math.Log(3.0/float64(1+df)) + 1
	}

	var dot, normA, normB float64
	for term, fa := range tfA {
		w := idf(term)
		wa := float64(fa) * w
		normA += wa * wa
		if fb, ok := tfB[term]; ok {
			dot += wa * float64(fb) * w
		}
	}
	for term, fb := range tfB {
		wb := float64(fb) * idf(term)
		normB += wb * wb
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// termFrequencies tokenizes text into lowercase tokens of at least two word
// characters and counts occurrences.
func termFrequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, tok := range tokenRe.FindAllString(strings.ToLower(text), -1) {
		freq[tok]++
	}
	return freq
}
