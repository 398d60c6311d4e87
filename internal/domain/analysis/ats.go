package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

// ATSResult is the outcome of the ATS-friendliness heuristics: a 0-100 score
// and the list of findings that cost points.
type ATSResult struct {
	Score    int
	Findings []string
}

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`\b(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`)
	oddRe   = regexp.MustCompile(`[^\w\s,.()-]`)
)

var atsSections = []struct {
	name     string
	keywords []string
}{
	{"experience", []string{"experience", "work history", "employment"}},
	{"education", []string{"education", "academic"}},
	{"skills", []string{"skills", "technologies", "expertise"}},
	{"summary", []string{"summary", "objective", "profile"}},
	{"contact", []string{"contact", "personal info"}},
}

// ATSCheck scores how parse-friendly a resume is: section headers, contact
// info, text volume and special-character density.
func ATSCheck(text string) ATSResult {
	if text == "" {
		return ATSResult{Score: 0, Findings: []string{"No text provided."}}
	}

	lower := strings.ToLower(text)
	findings := []string{}
	score := 0

	for _, sec := range atsSections {
		present := false
		for _, k := range sec.keywords {
			if strings.Contains(lower, k) {
				present = true
				break
			}
		}
		if present {
			score += 6
		} else {
			findings = append(findings, fmt.Sprintf("Missing '%s' section header.", titleCase(sec.name)))
		}
	}

	if emailRe.MatchString(text) {
		score += 10
	} else {
		findings = append(findings, "Email address not detected.")
	}
	if phoneRe.MatchString(text) {
		score += 10
	} else {
		findings = append(findings, "Phone number not detected.")
	}

	words := WordCount(text)
	switch {
	case words >= 200 && words <= 1000:
		score += 20
	case words < 200:
		score += 10
		findings = append(findings, "Resume text is quite short; consider adding more detail.")
	default:
		score += 15
		findings = append(findings, "Resume is very long; ensure it remains concise.")
	}

	special := len(oddRe.FindAllString(text, -1))
	denom := words
	if denom < 1 {
		denom = 1
	}
	if float64(special)/float64(denom) < 0.05 {
		score += 30
	} else {
		score += 15
		findings = append(findings, "Detected high density of special characters; check for complex formatting.")
	}

	return ATSResult{Score: score, Findings: findings}
}
