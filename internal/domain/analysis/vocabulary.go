package analysis

import (
	"sort"
	"strings"
)

// Vocabulary is an immutable set of lowercase skill terms. It is constructed
// once and injected wherever skills are extracted, so tests can substitute
// their own term sets.
type Vocabulary struct {
	terms []string
	set   map[string]struct{}
}

// NewVocabulary builds a vocabulary from the given terms. Terms are
// lowercased, trimmed and de-duplicated; empty entries are dropped.
func NewVocabulary(terms []string) Vocabulary {
	set := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := set[t]; ok {
			continue
		}
		set[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return Vocabulary{terms: out, set: set}
}

// Terms returns the vocabulary entries sorted ascending.
func (v Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

func (v Vocabulary) Contains(term string) bool {
	_, ok := v.set[strings.ToLower(strings.TrimSpace(term))]
	return ok
}

func (v Vocabulary) Len() int {
	return len(v.terms)
}

// DefaultVocabulary returns the built-in technical skill set used when no
// vocabulary has been seeded.
func DefaultVocabulary() Vocabulary {
	return NewVocabulary([]string{
		"python", "java", "c++", "c#", "javascript", "typescript",
		"html", "css", "react", "angular", "vue",
		"sql", "mysql", "postgresql", "mongodb", "redis",
		"aws", "azure", "gcp", "docker", "kubernetes", "git",
		"flask", "django", "fastapi", "spring", "spring boot",
		"machine learning", "deep learning", "nlp",
		"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch",
		"tableau", "power bi", "excel",
		"communication", "teamwork", "leadership", "agile", "scrum",
		"linux", "bash", "shell scripting",
		"rest api", "graphql", "microservices", "ci/cd",
		"jenkins", "gitlab", "github", "jira",
	})
}
