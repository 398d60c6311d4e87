package analysis

import (
	"regexp"
	"sort"
	"strings"
)

// ExtractSkills returns the sorted subset of vocabulary terms present in text
// as whole words or whole phrases. Matching is case-insensitive; "java" never
// matches inside "javascript" because each term is anchored on word
// boundaries.
func ExtractSkills(text string, vocab Vocabulary) []string {
	if text == "" || vocab.Len() == 0 {
		return []string{}
	}
	text = strings.ToLower(text)

	found := make([]string, 0, 8)
	for _, term := range vocab.terms {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(term) + `\b`)
		if err != nil {
			continue
		}
		if re.MatchString(text) {
			found = append(found, term)
		}
	}
	sort.Strings(found)
	return found
}

// Intersect returns the sorted intersection of two skill lists.
func Intersect(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, s := range b {
		set[s] = struct{}{}
	}
	out := make([]string, 0, len(a))
	for _, s := range a {
		if _, ok := set[s]; ok {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// Subtract returns the sorted elements of a not present in b.
func Subtract(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, s := range b {
		set[s] = struct{}{}
	}
	out := make([]string, 0, len(a))
	for _, s := range a {
		if _, ok := set[s]; !ok {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
