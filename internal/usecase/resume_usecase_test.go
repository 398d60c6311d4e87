package usecase

import (
	"context"
	"errors"
	"log"
	"testing"

	"resumatch/internal/domain/analysis"

	"github.com/google/uuid"
)

func newTestResumeUsecase(repo *mockResumeRepo, store *mockFileStore) *Resume {
	return NewResumeUsecase(repo, store, analysis.DefaultVocabulary(), 1<<20, log.New(discard{}, "", 0))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func TestResumeUsecase_UploadResume_ExtractsSkills(t *testing.T) {
	repo := newMockResumeRepo()
	store := newMockFileStore()
	uc := newTestResumeUsecase(repo, store)

	userID := uuid.New()
	rec, err := uc.UploadResume(context.Background(), UploadResumeInput{
		UserID:      userID,
		Filename:    "resume.txt",
		ContentType: "text/plain",
		Data:        []byte("Senior engineer with Python, Docker and PostgreSQL experience."),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.UserID != userID {
		t.Fatalf("unexpected owner")
	}
	if len(rec.Skills) != 3 {
		t.Fatalf("expected 3 skills, got %v", rec.Skills)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted resume")
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected 1 stored file")
	}
}

func TestResumeUsecase_UploadResume_UnsupportedType(t *testing.T) {
	uc := newTestResumeUsecase(newMockResumeRepo(), newMockFileStore())

	_, err := uc.UploadResume(context.Background(), UploadResumeInput{
		UserID:   uuid.New(),
		Filename: "resume.exe",
		Data:     []byte("x"),
	})
	if !errors.Is(err, ErrUnsupportedFile) {
		t.Fatalf("expected ErrUnsupportedFile, got %v", err)
	}
}

func TestResumeUsecase_UploadResume_NoText(t *testing.T) {
	store := newMockFileStore()
	uc := newTestResumeUsecase(newMockResumeRepo(), store)

	_, err := uc.UploadResume(context.Background(), UploadResumeInput{
		UserID:   uuid.New(),
		Filename: "resume.txt",
		Data:     []byte("   \n  "),
	})
	if !errors.Is(err, ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Fatalf("file must not be stored on extraction failure")
	}
}

func TestResumeUsecase_UploadResume_TooLarge(t *testing.T) {
	repo := newMockResumeRepo()
	uc := NewResumeUsecase(repo, newMockFileStore(), analysis.DefaultVocabulary(), 8, nil)

	_, err := uc.UploadResume(context.Background(), UploadResumeInput{
		UserID:   uuid.New(),
		Filename: "resume.txt",
		Data:     []byte("longer than eight bytes"),
	})
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestResumeUsecase_UploadResume_PersistFailureRemovesFile(t *testing.T) {
	repo := newMockResumeRepo()
	repo.err = errors.New("db down")
	store := newMockFileStore()
	uc := newTestResumeUsecase(repo, store)

	_, err := uc.UploadResume(context.Background(), UploadResumeInput{
		UserID:   uuid.New(),
		Filename: "resume.txt",
		Data:     []byte("Python developer with plenty of experience."),
	})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if len(store.removed) != 1 {
		t.Fatalf("stored file must be removed when persistence fails")
	}
}

func TestResumeUsecase_GetResume_Ownership(t *testing.T) {
	repo := newMockResumeRepo()
	store := newMockFileStore()
	uc := newTestResumeUsecase(repo, store)

	owner := uuid.New()
	rec, err := uc.UploadResume(context.Background(), UploadResumeInput{
		UserID:   owner,
		Filename: "resume.txt",
		Data:     []byte("Java developer resume text."),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := uc.GetResume(context.Background(), owner, rec.ID); err != nil {
		t.Fatalf("owner must read own resume: %v", err)
	}
	if _, err := uc.GetResume(context.Background(), uuid.New(), rec.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := uc.GetResume(context.Background(), owner, uuid.New()); !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}
}

func TestResumeUsecase_DeleteResume_RemovesFile(t *testing.T) {
	repo := newMockResumeRepo()
	store := newMockFileStore()
	uc := newTestResumeUsecase(repo, store)

	owner := uuid.New()
	rec, err := uc.UploadResume(context.Background(), UploadResumeInput{
		UserID:   owner,
		Filename: "resume.txt",
		Data:     []byte("SQL analyst resume text."),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := uc.DeleteResume(context.Background(), owner, rec.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(store.removed) != 1 {
		t.Fatalf("expected stored file removal")
	}
	if _, err := uc.GetResume(context.Background(), owner, rec.ID); !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound after delete, got %v", err)
	}
}
