package dto

import (
	"time"

	"github.com/google/uuid"

	"resumatch/internal/domain/analysis"
	"resumatch/internal/domain/match"
)

type ResourceResponse struct {
	Skill string `json:"skill"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}

type QuickAnalysisResponse struct {
	Score              float64            `json:"score"`
	MatchedSkills      []string           `json:"matched_skills"`
	MissingSkills      []string           `json:"missing_skills"`
	Suggestions        []string           `json:"suggestions"`
	Critique           []string           `json:"critique"`
	ATSScore           int                `json:"ats_score"`
	ATSFindings        []string           `json:"ats_findings"`
	InterviewQuestions []string           `json:"interview_questions"`
	Resources          []ResourceResponse `json:"resources"`
}

type AnalysisResponse struct {
	ID                 uuid.UUID  `json:"id"`
	ResumeID           uuid.UUID  `json:"resume_id"`
	JobID              *uuid.UUID `json:"job_id,omitempty"`
	Score              float64    `json:"score"`
	MatchedSkills      []string   `json:"matched_skills"`
	MissingSkills      []string   `json:"missing_skills"`
	Suggestions        []string   `json:"suggestions"`
	Critique           []string   `json:"critique"`
	ATSScore           int        `json:"ats_score"`
	ATSFindings        []string   `json:"ats_findings"`
	InterviewQuestions []string   `json:"interview_questions"`
	CreatedAt          time.Time  `json:"created_at"`
}

func NewQuickAnalysisResponse(r analysis.Result) QuickAnalysisResponse {
	resources := make([]ResourceResponse, 0, len(r.Resources))
	for _, res := range r.Resources {
		resources = append(resources, ResourceResponse{Skill: res.Skill, Name: res.Name, URL: res.URL})
	}
	return QuickAnalysisResponse{
		Score:              r.Score,
		MatchedSkills:      r.MatchedSkills,
		MissingSkills:      r.MissingSkills,
		Suggestions:        r.Suggestions,
		Critique:           r.Critique,
		ATSScore:           r.ATSScore,
		ATSFindings:        r.ATSFindings,
		InterviewQuestions: r.InterviewQuestions,
		Resources:          resources,
	}
}

func NewAnalysisResponse(a match.Analysis) AnalysisResponse {
	return AnalysisResponse{
		ID:                 a.ID,
		ResumeID:           a.ResumeID,
		JobID:              a.JobID,
		Score:              a.Score,
		MatchedSkills:      a.MatchedSkills,
		MissingSkills:      a.MissingSkills,
		Suggestions:        a.Suggestions,
		Critique:           a.Critique,
		ATSScore:           a.ATSScore,
		ATSFindings:        a.ATSFindings,
		InterviewQuestions: a.InterviewQuestions,
		CreatedAt:          a.CreatedAt,
	}
}

func NewAnalysisResponses(items []match.Analysis) []AnalysisResponse {
	out := make([]AnalysisResponse, 0, len(items))
	for _, a := range items {
		out = append(out, NewAnalysisResponse(a))
	}
	return out
}
