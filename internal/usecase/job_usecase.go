package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"resumatch/internal/domain/analysis"
	"resumatch/internal/domain/job"
	"resumatch/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound    = errors.New("job not found")
	ErrAlreadyApplied = errors.New("already applied")
)

const jobsListTTL = 5 * time.Minute

// JobsCache is the slice of the Redis client the job usecase needs. A nil
// implementation disables caching.
type JobsCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateJobs(ctx context.Context) error
}

type PostJobInput struct {
	RecruiterID uuid.UUID
	Title       string
	Company     string
	Location    string
	Description string
}

type JobUsecase interface {
	PostJob(ctx context.Context, in PostJobInput) (job.Posting, error)
	GetJob(ctx context.Context, id uuid.UUID) (job.Posting, error)
	ListJobs(ctx context.Context, limit, offset int) ([]job.Posting, error)
	MyPostings(ctx context.Context, recruiterID uuid.UUID) ([]job.Posting, error)
	MatchResume(ctx context.Context, userID, jobID, resumeID uuid.UUID) (analysis.Result, error)
	Apply(ctx context.Context, userID, jobID, resumeID uuid.UUID) (job.Application, error)
	Applicants(ctx context.Context, recruiterID, jobID uuid.UUID) ([]repository.Applicant, error)
}

type Job struct {
	jobs         repository.JobRepository
	resumes      repository.ResumeRepository
	applications repository.ApplicationRepository
	cache        JobsCache
	engine       *analysis.Engine
	vocab        analysis.Vocabulary
	logger       *log.Logger
}

func NewJobUsecase(
	jobs repository.JobRepository,
	resumes repository.ResumeRepository,
	applications repository.ApplicationRepository,
	cache JobsCache,
	engine *analysis.Engine,
	vocab analysis.Vocabulary,
	logger *log.Logger,
) *Job {
	return &Job{
		jobs:         jobs,
		resumes:      resumes,
		applications: applications,
		cache:        cache,
		engine:       engine,
		vocab:        vocab,
		logger:       logger,
	}
}

func (u *Job) PostJob(ctx context.Context, in PostJobInput) (job.Posting, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return job.Posting{}, ErrInvalidInput
	}
	desc, err := validateJobDescription(in.Description)
	if err != nil {
		return job.Posting{}, err
	}

	skills := analysis.ExtractSkills(analysis.Normalize(desc), u.vocab)

	now := time.Now().UTC()
	p := job.Posting{
		ID:          uuid.New(),
		RecruiterID: in.RecruiterID,
		Title:       title,
		Company:     strings.TrimSpace(in.Company),
		Location:    strings.TrimSpace(in.Location),
		Description: desc,
		Skills:      skills,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.jobs.CreateJob(ctx, p); err != nil {
		return job.Posting{}, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.InvalidateJobs(ctx); err != nil && u.logger != nil {
			u.logger.Printf("[Jobs] cache invalidation failed | err=%v", err)
		}
	}

	return p, nil
}

func (u *Job) GetJob(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	p, err := u.jobs.GetJobByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, ErrInternal
	}
	return p, nil
}

func (u *Job) ListJobs(ctx context.Context, limit, offset int) ([]job.Posting, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 || offset < 0 {
		return nil, ErrInvalidInput
	}

	cacheKey := fmt.Sprintf("jobs:list:%d:%d", limit, offset)
	if u.cache != nil {
		var cached []job.Posting
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	items, err := u.jobs.ListJobs(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, items, jobsListTTL)
	}
	return items, nil
}

// MyPostings lists the postings the recruiter has created, newest first.
func (u *Job) MyPostings(ctx context.Context, recruiterID uuid.UUID) ([]job.Posting, error) {
	items, err := u.jobs.ListJobsByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// MatchResume scores one of the caller's resumes against a posting without
// persisting anything.
func (u *Job) MatchResume(ctx context.Context, userID, jobID, resumeID uuid.UUID) (analysis.Result, error) {
	p, err := u.GetJob(ctx, jobID)
	if err != nil {
		return analysis.Result{}, err
	}

	rec, err := u.resumes.GetResumeByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return analysis.Result{}, ErrResumeNotFound
		}
		return analysis.Result{}, ErrInternal
	}
	if rec.UserID != userID {
		return analysis.Result{}, ErrForbidden
	}

	resumeNorm := analysis.Normalize(rec.ExtractedText)
	jdNorm := analysis.Normalize(p.Description)

	return u.engine.Analyze(resumeNorm, jdNorm, rec.Skills, p.Skills), nil
}

func (u *Job) Apply(ctx context.Context, userID, jobID, resumeID uuid.UUID) (job.Application, error) {
	result, err := u.MatchResume(ctx, userID, jobID, resumeID)
	if err != nil {
		return job.Application{}, err
	}

	exists, err := u.applications.ExistsByJobAndUser(ctx, jobID, userID)
	if err != nil {
		return job.Application{}, ErrInternal
	}
	if exists {
		return job.Application{}, ErrAlreadyApplied
	}

	a := job.Application{
		ID:        uuid.New(),
		JobID:     jobID,
		UserID:    userID,
		ResumeID:  resumeID,
		Score:     result.Score,
		Status:    job.ApplicationPending,
		AppliedAt: time.Now().UTC(),
	}

	if err := u.applications.CreateApplication(ctx, a); err != nil {
		return job.Application{}, ErrInternal
	}
	return a, nil
}

// Applicants lists a posting's applications ranked by score. Only the
// posting's owner may see them.
func (u *Job) Applicants(ctx context.Context, recruiterID, jobID uuid.UUID) ([]repository.Applicant, error) {
	p, err := u.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if p.RecruiterID != recruiterID {
		return nil, ErrForbidden
	}

	items, err := u.applications.ListApplicantsByJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
