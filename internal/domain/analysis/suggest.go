package analysis

import (
	"fmt"
	"strings"
)

// Suggestions produces one improvement tip per missing skill, in the order
// given (alphabetical upstream), followed by a generic tip on quantifying
// achievements. With nothing missing it returns a single positive message.
func Suggestions(missing []string) []string {
	if len(missing) == 0 {
		return []string{"Great job! Your profile matches the required technical skills well."}
	}

	out := make([]string, 0, len(missing)+1)
	for _, skill := range missing {
		out = append(out, fmt.Sprintf(
			"Consider adding a project or certification involving %s to your portfolio.",
			titleCase(skill),
		))
	}
	out = append(out, "Ensure your resume highlights quantifiable achievements (e.g., 'Improved efficiency by 20%').")
	return out
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
