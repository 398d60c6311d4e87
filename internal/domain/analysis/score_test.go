package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	scenarioResume = "Skills: Python, Java, Machine Learning, SQL, Git. Experience with AWS and Docker."
	scenarioJD     = "We need a Software Engineer with Python, Machine Learning, and SQL skills. AWS is a plus. Must know Docker."
)

func TestHybridScoreEmptyTextReturnsZero(t *testing.T) {
	e := NewEngine(PresetTechnical)

	assert.Zero(t, e.HybridScore("", "a job description", []string{"python"}, []string{"python"}))
	assert.Zero(t, e.HybridScore("a resume", "", []string{"python"}, []string{"python"}))
}

func TestHybridScoreBounds(t *testing.T) {
	e := NewEngine(PresetTechnical)
	cases := []struct {
		resume, jd             string
		resumeSkills, jdSkills []string
	}{
		{"python developer", "python engineer wanted", []string{"python"}, []string{"python"}},
		{"unrelated text here", "completely different words", nil, []string{"a", "b", "c"}},
		{scenarioResume, scenarioJD, []string{"python"}, nil},
	}
	for _, c := range cases {
		score := e.HybridScore(c.resume, c.jd, c.resumeSkills, c.jdSkills)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestHybridScoreEmptyJDSkills(t *testing.T) {
	e := NewEngine(PresetTechnical)

	// No required skills and a non-empty resume skill set: ratio is 1.0, so
	// the score is at least the full skill weight.
	score := e.HybridScore("python resume text", "generic job text", []string{"python"}, nil)
	assert.GreaterOrEqual(t, score, 60.0)

	// Neither side has skills: the skill term contributes nothing.
	score = e.HybridScore("plain resume text", "plain job text", nil, nil)
	assert.Less(t, score, 40.0)
}

func TestAnalyzeMatchScenario(t *testing.T) {
	vocab := DefaultVocabulary()
	resumeSkills := ExtractSkills(Normalize(scenarioResume), vocab)
	jdSkills := ExtractSkills(Normalize(scenarioJD), vocab)

	for _, want := range []string{"python", "java", "machine learning", "sql", "git", "aws", "docker"} {
		assert.Contains(t, resumeSkills, want)
	}
	for _, want := range []string{"python", "machine learning", "sql", "aws", "docker"} {
		assert.Contains(t, jdSkills, want)
	}

	e := NewEngine(PresetTechnical)
	res := e.Analyze(scenarioResume, scenarioJD, resumeSkills, jdSkills)

	assert.Empty(t, res.MissingSkills)
	for _, want := range []string{"python", "machine learning", "sql", "aws", "docker"} {
		assert.Contains(t, res.MatchedSkills, want)
	}
	assert.Greater(t, res.Score, 50.0)
}

func TestAnalyzeNoSkillOverlapCappedBySimilarityWeight(t *testing.T) {
	e := NewEngine(PresetTechnical)
	res := e.Analyze(
		"sculptor and oil painter with gallery exhibitions",
		"must know python sql docker aws kubernetes",
		nil,
		[]string{"aws", "docker", "kubernetes", "python", "sql"},
	)

	assert.Less(t, res.Score, 40.0)
	assert.Len(t, res.MissingSkills, 5)
	assert.Empty(t, res.MatchedSkills)
}

func TestAnalyzePartitionInvariant(t *testing.T) {
	e := NewEngine(PresetTechnical)
	resumeSkills := []string{"docker", "python"}
	jdSkills := []string{"aws", "docker", "python", "sql"}

	res := e.Analyze("resume body text", "job body text", resumeSkills, jdSkills)

	// matched and missing partition the JD skill set.
	union := append(append([]string{}, res.MatchedSkills...), res.MissingSkills...)
	assert.ElementsMatch(t, jdSkills, union)
	for _, m := range res.MatchedSkills {
		assert.NotContains(t, res.MissingSkills, m)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	vocab := DefaultVocabulary()
	resumeSkills := ExtractSkills(Normalize(scenarioResume), vocab)
	jdSkills := ExtractSkills(Normalize(scenarioJD), vocab)
	e := NewEngine(PresetTechnical)

	first := e.Analyze(scenarioResume, scenarioJD, resumeSkills, jdSkills)
	second := e.Analyze(scenarioResume, scenarioJD, resumeSkills, jdSkills)
	require.Equal(t, first, second)
}

func TestWeightsForPreset(t *testing.T) {
	assert.Equal(t, PresetTechnical, WeightsForPreset("technical"))
	assert.Equal(t, PresetBalanced, WeightsForPreset("balanced"))
	assert.Equal(t, PresetTechnical, WeightsForPreset(""))
	assert.Equal(t, PresetTechnical, WeightsForPreset("nonsense"))
}

func TestNewEngineRejectsUnbalancedWeights(t *testing.T) {
	e := NewEngine(Weights{Similarity: 0.9, Skill: 0.9})
	// Falls back to the canonical preset.
	score := e.HybridScore("python text", "python text", []string{"python"}, []string{"python"})
	assert.LessOrEqual(t, score, 100.0)
}
