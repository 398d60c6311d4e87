package usecase

import (
	"context"
	"errors"
	"testing"

	"resumatch/internal/domain/analysis"
	"resumatch/internal/repository"

	"github.com/google/uuid"
)

func newTestJobUsecase(jobs *mockJobRepo, resumes *mockResumeRepo, apps *mockApplicationRepo, cache *mockJobsCache) *Job {
	var jc JobsCache
	if cache != nil {
		jc = cache
	}
	return NewJobUsecase(jobs, resumes, apps, jc, analysis.NewEngine(analysis.PresetTechnical), analysis.DefaultVocabulary(), nil)
}

func TestJobUsecase_PostJob_ExtractsSkillsAndInvalidatesCache(t *testing.T) {
	jobs := newMockJobRepo()
	cache := newMockJobsCache()
	uc := newTestJobUsecase(jobs, newMockResumeRepo(), newMockApplicationRepo(), cache)

	p, err := uc.PostJob(context.Background(), PostJobInput{
		RecruiterID: uuid.New(),
		Title:       "Backend Engineer",
		Company:     "Acme",
		Description: testJobDescription,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(p.Skills) != 3 {
		t.Fatalf("expected 3 extracted skills, got %v", p.Skills)
	}
	if len(jobs.created) != 1 {
		t.Fatalf("posting must be persisted")
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected cache invalidation")
	}
}

func TestJobUsecase_PostJob_Validation(t *testing.T) {
	uc := newTestJobUsecase(newMockJobRepo(), newMockResumeRepo(), newMockApplicationRepo(), nil)

	_, err := uc.PostJob(context.Background(), PostJobInput{RecruiterID: uuid.New(), Title: " ", Description: testJobDescription})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty title, got %v", err)
	}

	_, err = uc.PostJob(context.Background(), PostJobInput{RecruiterID: uuid.New(), Title: "Engineer", Description: "short"})
	if !errors.Is(err, ErrJobDescriptionTooShort) {
		t.Fatalf("expected ErrJobDescriptionTooShort, got %v", err)
	}
}

func TestJobUsecase_ListJobs_UsesCache(t *testing.T) {
	jobs := newMockJobRepo()
	cache := newMockJobsCache()
	uc := newTestJobUsecase(jobs, newMockResumeRepo(), newMockApplicationRepo(), cache)

	if _, err := uc.ListJobs(context.Background(), 20, 0); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := cache.store["jobs:list:20:0"]; !ok {
		t.Fatalf("expected listing to be cached")
	}

	jobs.err = errors.New("db down")
	if _, err := uc.ListJobs(context.Background(), 20, 0); err != nil {
		t.Fatalf("cached listing must not hit the repository: %v", err)
	}

	if _, err := uc.ListJobs(context.Background(), 101, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversized limit, got %v", err)
	}
}

func TestJobUsecase_MyPostings_FiltersByRecruiter(t *testing.T) {
	jobs := newMockJobRepo()
	uc := newTestJobUsecase(jobs, newMockResumeRepo(), newMockApplicationRepo(), nil)

	mine := uuid.New()
	other := uuid.New()
	for _, rid := range []uuid.UUID{mine, mine, other} {
		if _, err := uc.PostJob(context.Background(), PostJobInput{
			RecruiterID: rid,
			Title:       "Backend Engineer",
			Description: testJobDescription,
		}); err != nil {
			t.Fatalf("PostJob: %v", err)
		}
	}

	items, err := uc.MyPostings(context.Background(), mine)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(items))
	}
	for _, p := range items {
		if p.RecruiterID != mine {
			t.Fatalf("posting %s belongs to %s", p.ID, p.RecruiterID)
		}
	}
}

func TestJobUsecase_MatchResume(t *testing.T) {
	jobs := newMockJobRepo()
	resumes := newMockResumeRepo()
	uc := newTestJobUsecase(jobs, resumes, newMockApplicationRepo(), nil)

	recruiterID := uuid.New()
	p, err := uc.PostJob(context.Background(), PostJobInput{RecruiterID: recruiterID, Title: "Backend", Description: testJobDescription})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	userID := uuid.New()
	rec := seedResume(resumes, userID, "Python developer using Docker daily.", []string{"docker", "python"})

	res, err := uc.MatchResume(context.Background(), userID, p.ID, rec.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.MatchedSkills) != 2 {
		t.Fatalf("expected 2 matched skills, got %v", res.MatchedSkills)
	}

	if _, err := uc.MatchResume(context.Background(), uuid.New(), p.ID, rec.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for foreign resume, got %v", err)
	}
	if _, err := uc.MatchResume(context.Background(), userID, uuid.New(), rec.ID); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobUsecase_Apply_OncePerJob(t *testing.T) {
	jobs := newMockJobRepo()
	resumes := newMockResumeRepo()
	apps := newMockApplicationRepo()
	uc := newTestJobUsecase(jobs, resumes, apps, nil)

	p, err := uc.PostJob(context.Background(), PostJobInput{RecruiterID: uuid.New(), Title: "Backend", Description: testJobDescription})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	userID := uuid.New()
	rec := seedResume(resumes, userID, "Python and PostgreSQL background.", []string{"postgresql", "python"})

	a, err := uc.Apply(context.Background(), userID, p.ID, rec.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.Status != "pending" {
		t.Fatalf("expected pending status, got %s", a.Status)
	}
	if a.Score <= 0 {
		t.Fatalf("expected positive score")
	}

	if _, err := uc.Apply(context.Background(), userID, p.ID, rec.ID); !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestJobUsecase_Applicants_OwnerOnly(t *testing.T) {
	jobs := newMockJobRepo()
	apps := newMockApplicationRepo()
	uc := newTestJobUsecase(jobs, newMockResumeRepo(), apps, nil)

	recruiterID := uuid.New()
	p, err := uc.PostJob(context.Background(), PostJobInput{RecruiterID: recruiterID, Title: "Backend", Description: testJobDescription})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	apps.byJob[p.ID] = []repository.Applicant{{Username: "jane", Score: 88.5}}

	items, err := uc.Applicants(context.Background(), recruiterID, p.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 || items[0].Username != "jane" {
		t.Fatalf("unexpected applicants: %v", items)
	}

	if _, err := uc.Applicants(context.Background(), uuid.New(), p.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
