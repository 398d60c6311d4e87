package usecase

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"resumatch/internal/domain/analysis"
	"resumatch/internal/domain/match"
	"resumatch/internal/domain/user"
	"resumatch/internal/report"
	"resumatch/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrAnalysisNotFound       = errors.New("analysis not found")
	ErrJobDescriptionTooShort = errors.New("job description too short")
	ErrJobDescriptionTooLong  = errors.New("job description too long")
)

const (
	minJobDescriptionLen = 50
	maxJobDescriptionLen = 5000
)

// CompletionNotifier is invoked after an analysis is stored. The websocket
// hub satisfies it; tests pass nil.
type CompletionNotifier func(userID, analysisID, resumeID uuid.UUID, score float64)

type AnalyzeInput struct {
	UserID         uuid.UUID
	ResumeID       uuid.UUID
	JobID          *uuid.UUID
	JobDescription string
}

type AnalysisUsecase interface {
	Analyze(ctx context.Context, in AnalyzeInput) (match.Analysis, error)
	QuickAnalyze(ctx context.Context, resumeText, jobDescription string) (analysis.Result, error)
	GetAnalysis(ctx context.Context, userID, analysisID uuid.UUID) (match.Analysis, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]match.Analysis, error)
	Report(ctx context.Context, userID, analysisID uuid.UUID) ([]byte, error)
}

type Analysis struct {
	analyses repository.AnalysisRepository
	resumes  repository.ResumeRepository
	jobs     repository.JobRepository
	users    user.Repository
	engine   *analysis.Engine
	vocab    analysis.Vocabulary
	notify   CompletionNotifier
	logger   *log.Logger
}

func NewAnalysisUsecase(
	analyses repository.AnalysisRepository,
	resumes repository.ResumeRepository,
	jobs repository.JobRepository,
	users user.Repository,
	engine *analysis.Engine,
	vocab analysis.Vocabulary,
	notify CompletionNotifier,
	logger *log.Logger,
) *Analysis {
	return &Analysis{
		analyses: analyses,
		resumes:  resumes,
		jobs:     jobs,
		users:    users,
		engine:   engine,
		vocab:    vocab,
		notify:   notify,
		logger:   logger,
	}
}

func (u *Analysis) Analyze(ctx context.Context, in AnalyzeInput) (match.Analysis, error) {
	jd, err := validateJobDescription(in.JobDescription)
	if err != nil {
		return match.Analysis{}, err
	}

	rec, err := u.resumes.GetResumeByID(ctx, in.ResumeID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return match.Analysis{}, ErrResumeNotFound
		}
		return match.Analysis{}, ErrInternal
	}
	if rec.UserID != in.UserID {
		return match.Analysis{}, ErrForbidden
	}

	resumeNorm := analysis.Normalize(rec.ExtractedText)
	jdNorm := analysis.Normalize(jd)
	jdSkills := analysis.ExtractSkills(jdNorm, u.vocab)

	result := u.engine.Analyze(resumeNorm, jdNorm, rec.Skills, jdSkills)

	a := match.Analysis{
		ID:                 uuid.New(),
		UserID:             in.UserID,
		ResumeID:           rec.ID,
		JobID:              in.JobID,
		JobDescription:     jd,
		Score:              result.Score,
		MatchedSkills:      result.MatchedSkills,
		MissingSkills:      result.MissingSkills,
		Suggestions:        result.Suggestions,
		Critique:           result.Critique,
		ATSScore:           result.ATSScore,
		ATSFindings:        result.ATSFindings,
		InterviewQuestions: result.InterviewQuestions,
		CreatedAt:          time.Now().UTC(),
	}

	if err := u.analyses.CreateAnalysis(ctx, a); err != nil {
		return match.Analysis{}, ErrInternal
	}

	if u.logger != nil {
		u.logger.Printf("[Analysis] completed | id=%s user=%s score=%.2f", a.ID, a.UserID, a.Score)
	}
	if u.notify != nil {
		u.notify(a.UserID, a.ID, a.ResumeID, a.Score)
	}

	return a, nil
}

// QuickAnalyze scores pasted text against a job description without
// persisting anything.
func (u *Analysis) QuickAnalyze(ctx context.Context, resumeText, jobDescription string) (analysis.Result, error) {
	jd, err := validateJobDescription(jobDescription)
	if err != nil {
		return analysis.Result{}, err
	}
	if strings.TrimSpace(resumeText) == "" {
		return analysis.Result{}, ErrInvalidInput
	}

	resumeNorm := analysis.Normalize(resumeText)
	jdNorm := analysis.Normalize(jd)
	resumeSkills := analysis.ExtractSkills(resumeNorm, u.vocab)
	jdSkills := analysis.ExtractSkills(jdNorm, u.vocab)

	return u.engine.Analyze(resumeNorm, jdNorm, resumeSkills, jdSkills), nil
}

func (u *Analysis) GetAnalysis(ctx context.Context, userID, analysisID uuid.UUID) (match.Analysis, error) {
	a, err := u.analyses.GetAnalysisByID(ctx, analysisID)
	if err != nil {
		if errors.Is(err, repository.ErrAnalysisNotFound) {
			return match.Analysis{}, ErrAnalysisNotFound
		}
		return match.Analysis{}, ErrInternal
	}
	if a.UserID != userID {
		return match.Analysis{}, ErrForbidden
	}
	return a, nil
}

func (u *Analysis) History(ctx context.Context, userID uuid.UUID, limit int) ([]match.Analysis, error) {
	items, err := u.analyses.ListAnalysesByUser(ctx, userID, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// Report renders the stored analysis as a downloadable PDF.
func (u *Analysis) Report(ctx context.Context, userID, analysisID uuid.UUID) ([]byte, error) {
	a, err := u.GetAnalysis(ctx, userID, analysisID)
	if err != nil {
		return nil, err
	}

	candidate := "candidate"
	if usr, err := u.users.GetByID(ctx, userID); err == nil {
		candidate = usr.Username
	}

	data := report.Data{
		Candidate: candidate,
		Result: analysis.Result{
			Score:              a.Score,
			MatchedSkills:      a.MatchedSkills,
			MissingSkills:      a.MissingSkills,
			Suggestions:        a.Suggestions,
			Critique:           a.Critique,
			ATSScore:           a.ATSScore,
			ATSFindings:        a.ATSFindings,
			InterviewQuestions: a.InterviewQuestions,
		},
		GeneratedAt: time.Now().UTC(),
	}
	if a.JobID != nil && u.jobs != nil {
		if p, err := u.jobs.GetJobByID(ctx, *a.JobID); err == nil {
			data.JobTitle = p.Title
			data.Company = p.Company
		}
	}

	var buf bytes.Buffer
	if err := report.RenderPDF(&buf, data); err != nil {
		return nil, ErrInternal
	}
	return buf.Bytes(), nil
}

func validateJobDescription(jd string) (string, error) {
	jd = strings.TrimSpace(jd)
	if len(jd) < minJobDescriptionLen {
		return "", ErrJobDescriptionTooShort
	}
	if len(jd) > maxJobDescriptionLen {
		return "", ErrJobDescriptionTooLong
	}
	return jd, nil
}
