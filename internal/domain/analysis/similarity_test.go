package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityIdenticalDocuments(t *testing.T) {
	text := "backend engineer with python and postgresql experience"
	assert.InDelta(t, 1.0, Similarity(text, text), 1e-9)
}

func TestSimilarityEmptyInput(t *testing.T) {
	assert.Zero(t, Similarity("", "some job description"))
	assert.Zero(t, Similarity("some resume", ""))
	assert.Zero(t, Similarity("", ""))
}

func TestSimilarityDisjointVocabulary(t *testing.T) {
	// No shared tokens: scored 0, not an error.
	assert.Zero(t, Similarity("alpha bravo charlie", "delta echo foxtrot"))
}

func TestSimilarityPartialOverlap(t *testing.T) {
	sim := Similarity(
		"python developer building web services",
		"python engineer maintaining web platforms",
	)
	assert.Greater(t, sim, 0.0)
	assert.Less(t, sim, 1.0)
}

func TestSimilaritySharedTermsWeighLessThanUniqueOnes(t *testing.T) {
	// "python" appears in both documents so its idf is lower than the idf of
	// the document-unique terms; the corpus-local df is intentional.
	sim := Similarity("python python unique1", "python python unique2")
	assert.Greater(t, sim, 0.0)
	assert.Less(t, sim, 1.0)
}

func TestSimilarityShortTokensIgnored(t *testing.T) {
	// Single-character tokens are not part of the vocabulary.
	assert.Zero(t, Similarity("a b c", "a b c d"))
}

func TestSimilarityStateless(t *testing.T) {
	a := "data scientist with tensorflow background"
	b := "hiring a data scientist who knows tensorflow"
	first := Similarity(a, b)
	second := Similarity(a, b)
	assert.Equal(t, first, second)
}
