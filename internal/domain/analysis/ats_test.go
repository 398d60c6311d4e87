package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestATSCheckEmpty(t *testing.T) {
	got := ATSCheck("")
	assert.Zero(t, got.Score)
	assert.NotEmpty(t, got.Findings)
}

func TestATSCheckWellFormedResume(t *testing.T) {
	body := strings.Repeat("shipped reliable services ", 100)
	text := "Summary\nExperience\nEducation\nSkills\nContact\n" +
		"jane.doe@example.com (555) 123-4567\n" + body

	got := ATSCheck(text)
	assert.GreaterOrEqual(t, got.Score, 80)
}

func TestATSCheckMissingContactInfo(t *testing.T) {
	got := ATSCheck("experience education skills summary contact plus some body text")

	var emailFinding, phoneFinding bool
	for _, f := range got.Findings {
		if strings.Contains(f, "Email") {
			emailFinding = true
		}
		if strings.Contains(f, "Phone") {
			phoneFinding = true
		}
	}
	assert.True(t, emailFinding)
	assert.True(t, phoneFinding)
}

func TestATSCheckScoreRange(t *testing.T) {
	for _, text := range []string{"x", "short resume", strings.Repeat("words and words ", 400)} {
		got := ATSCheck(text)
		assert.GreaterOrEqual(t, got.Score, 0)
		assert.LessOrEqual(t, got.Score, 100)
	}
}
