package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumatch/internal/domain/analysis"
)

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPDF(&buf, Data{
		Candidate: "jane_doe",
		JobTitle:  "Backend Engineer",
		Company:   "Acme",
		Result: analysis.Result{
			Score:         72.5,
			MatchedSkills: []string{"python", "sql"},
			MissingSkills: []string{"docker"},
			Suggestions:   []string{"Consider adding a project or certification involving Docker to your portfolio."},
			Critique:      []string{"Overall: good alignment."},
			ATSScore:      64,
			ATSFindings:   []string{"Missing a recognizable phone number."},
		},
		GeneratedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 500)
}

func TestRenderPDFEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPDF(&buf, Data{Candidate: "anon", GeneratedAt: time.Now()})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
