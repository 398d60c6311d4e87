package analysis

import "math"

// Weights controls the blend of content similarity and skill overlap in the
// hybrid score. Similarity + Skill must sum to 1.
type Weights struct {
	Similarity float64
	Skill      float64
}

var (
	// PresetTechnical weights exact skill presence higher than lexical
	// overlap. This is the canonical weighting for technical roles.
	PresetTechnical = Weights{Similarity: 0.4, Skill: 0.6}

	// PresetBalanced gives both signals equal weight.
	PresetBalanced = Weights{Similarity: 0.5, Skill: 0.5}
)

// WeightsForPreset resolves a preset name. Unknown names fall back to the
// technical preset.
func WeightsForPreset(name string) Weights {
	switch name {
	case "balanced":
		return PresetBalanced
	case "technical", "":
		return PresetTechnical
	default:
		return PresetTechnical
	}
}

// Result is the outcome of one resume-to-job analysis. It is created once per
// request and never mutated afterwards.
type Result struct {
	Score              float64
	MatchedSkills      []string
	MissingSkills      []string
	Suggestions        []string
	Critique           []string
	ATSScore           int
	ATSFindings        []string
	InterviewQuestions []string
	Resources          []Resource
}

// Engine scores resumes against job descriptions using a fixed weighting.
type Engine struct {
	weights Weights
}

func NewEngine(w Weights) *Engine {
	if w.Similarity+w.Skill != 1 {
		w = PresetTechnical
	}
	return &Engine{weights: w}
}

// HybridScore blends TF-IDF content similarity with the skill-overlap ratio
// into a 0-100 percentage. Either text empty returns exactly 0.
func (e *Engine) HybridScore(resumeText, jdText string, resumeSkills, jdSkills []string) float64 {
	if resumeText == "" || jdText == "" {
		return 0
	}

	contentSim := Similarity(resumeText, jdText)

	var skillRatio float64
	if len(jdSkills) == 0 {
		if len(resumeSkills) > 0 {
			skillRatio = 1.0
		}
	} else {
		matched := len(Intersect(resumeSkills, jdSkills))
		skillRatio = float64(matched) / float64(len(jdSkills))
	}

	final := contentSim*e.weights.Similarity + skillRatio*e.weights.Skill
	score := math.Round(final*100*100) / 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Analyze runs the full pipeline: hybrid score, matched/missing partition,
// suggestions, critique, ATS findings and the interview-prep extras.
// matched and missing always partition jdSkills.
func (e *Engine) Analyze(resumeText, jdText string, resumeSkills, jdSkills []string) Result {
	score := e.HybridScore(resumeText, jdText, resumeSkills, jdSkills)

	matched := Intersect(resumeSkills, jdSkills)
	missing := Subtract(jdSkills, resumeSkills)

	ats := ATSCheck(resumeText)

	return Result{
		Score:              score,
		MatchedSkills:      matched,
		MissingSkills:      missing,
		Suggestions:        Suggestions(missing),
		Critique:           Critique(missing, score, resumeText),
		ATSScore:           ats.Score,
		ATSFindings:        ats.Findings,
		InterviewQuestions: InterviewQuestions(missing),
		Resources:          LearningResources(missing),
	}
}
