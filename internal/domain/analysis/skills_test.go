package analysis

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkillsWordBoundary(t *testing.T) {
	vocab := NewVocabulary([]string{"java", "javascript"})

	got := ExtractSkills("i use javascript daily", vocab)

	assert.NotContains(t, got, "java")
	assert.Contains(t, got, "javascript")
}

func TestExtractSkillsPhrase(t *testing.T) {
	vocab := NewVocabulary([]string{"machine learning", "nlp"})

	got := ExtractSkills("worked on machine learning pipelines", vocab)
	assert.Equal(t, []string{"machine learning"}, got)

	// "machine learnings" must not match the phrase.
	got = ExtractSkills("machine learnings", vocab)
	assert.Empty(t, got)
}

func TestExtractSkillsSortedSubsetNoDuplicates(t *testing.T) {
	vocab := DefaultVocabulary()
	text := "Python python PYTHON docker aws sql git docker"

	got := ExtractSkills(text, vocab)

	require.True(t, sort.StringsAreSorted(got))
	seen := map[string]bool{}
	for _, s := range got {
		assert.False(t, seen[s], "duplicate skill %q", s)
		seen[s] = true
		assert.True(t, vocab.Contains(s), "%q not in vocabulary", s)
	}
	assert.Equal(t, []string{"aws", "docker", "git", "python", "sql"}, got)
}

func TestExtractSkillsEmptyInputs(t *testing.T) {
	assert.Empty(t, ExtractSkills("", DefaultVocabulary()))
	assert.Empty(t, ExtractSkills("plenty of text", NewVocabulary(nil)))
}

func TestExtractSkillsRegexSpecialTerms(t *testing.T) {
	vocab := NewVocabulary([]string{"c++", "ci/cd"})

	got := ExtractSkills("shipped c++ services with ci/cd pipelines", vocab)
	assert.Contains(t, got, "ci/cd")
}

func TestVocabularyDeduplicatesAndLowercases(t *testing.T) {
	v := NewVocabulary([]string{"Python", "python", " SQL ", ""})
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, []string{"python", "sql"}, v.Terms())
	assert.True(t, v.Contains("PYTHON"))
}

func TestIntersectAndSubtract(t *testing.T) {
	a := []string{"aws", "docker", "python"}
	b := []string{"docker", "python", "sql"}

	assert.Equal(t, []string{"docker", "python"}, Intersect(a, b))
	assert.Equal(t, []string{"aws"}, Subtract(a, b))
	assert.Equal(t, []string{"sql"}, Subtract(b, a))
}
