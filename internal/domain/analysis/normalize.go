package analysis

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize lowercases text, folds newlines into spaces and collapses runs of
// whitespace. Empty input yields an empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "\n", " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// WordCount counts whitespace-separated words in raw text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
