package analysis

import (
	"fmt"
	"strings"
)

var actionVerbs = []string{
	"led", "developed", "built", "managed",
	"created", "designed", "implemented", "optimized",
}

// Critique produces an ordered list of critique bullets: overall verdict
// banded by score, length assessment banded by word count, a skills-gap
// remark, and an action-verb density check.
func Critique(missing []string, score float64, resumeText string) []string {
	out := make([]string, 0, 4)

	switch {
	case score >= 80:
		out = append(out, "Overall: Excellent profile! Your resume is highly relevant to the job description.")
	case score >= 50:
		out = append(out, "Overall: Good potential, but there are some critical keywords missing.")
	default:
		out = append(out, "Overall: Your resume needs significant alignment with the job description.")
	}

	words := WordCount(resumeText)
	switch {
	case words < 200:
		out = append(out, "Length: Your resume seems a bit short. Elaborate on your experiences to add depth.")
	case words > 1000:
		out = append(out, "Length: Your resume is quite long. Try to keep it concise and focused on relevant experiences.")
	default:
		out = append(out, "Length: Your resume length is optimal.")
	}

	switch {
	case len(missing) > 5:
		out = append(out, fmt.Sprintf(
			"Skills Gap: You are missing %d key skills. Prioritize adding high-impact keywords like %s and %s.",
			len(missing), titleCase(missing[0]), titleCase(missing[1]),
		))
	case len(missing) > 0:
		out = append(out, fmt.Sprintf(
			"Refinement: You are close! Adding %s would strengthen your profile.",
			titleCase(missing[0]),
		))
	default:
		out = append(out, "Skills: Your technical skillset is a perfect match!")
	}

	lower := strings.ToLower(resumeText)
	foundVerbs := 0
	for _, v := range actionVerbs {
		if strings.Contains(lower, v) {
			foundVerbs++
		}
	}
	if foundVerbs < 3 {
		out = append(out, "Impact: Use more strong action verbs (e.g., Led, Developed, Optimized) to describe your achievements.")
	} else {
		out = append(out, "Impact: Good use of action verbs to describe your contributions.")
	}

	return out
}
