package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"resumatch/internal/domain/analysis"
	"resumatch/internal/domain/resume"
	"resumatch/internal/extract"
	"resumatch/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrResumeNotFound   = errors.New("resume not found")
	ErrUnsupportedFile  = errors.New("unsupported file type")
	ErrFileTooLarge     = errors.New("file too large")
	ErrExtractionFailed = errors.New("could not extract text from file")
)

// FileStore abstracts where uploaded files live.
type FileStore interface {
	Save(filename string, r io.Reader) (string, error)
	Open(path string) (io.ReadCloser, error)
	Remove(path string) error
}

type UploadResumeInput struct {
	UserID      uuid.UUID
	Filename    string
	ContentType string
	Data        []byte
}

type ResumeUsecase interface {
	UploadResume(ctx context.Context, in UploadResumeInput) (resume.Resume, error)
	GetResume(ctx context.Context, userID, resumeID uuid.UUID) (resume.Resume, error)
	ListResumes(ctx context.Context, userID uuid.UUID) ([]resume.Resume, error)
	DeleteResume(ctx context.Context, userID, resumeID uuid.UUID) error
}

type Resume struct {
	repo    repository.ResumeRepository
	store   FileStore
	vocab   analysis.Vocabulary
	maxSize int64
	logger  *log.Logger
}

func NewResumeUsecase(repo repository.ResumeRepository, store FileStore, vocab analysis.Vocabulary, maxSize int64, logger *log.Logger) *Resume {
	if maxSize <= 0 {
		maxSize = 10 << 20
	}
	return &Resume{repo: repo, store: store, vocab: vocab, maxSize: maxSize, logger: logger}
}

func (u *Resume) UploadResume(ctx context.Context, in UploadResumeInput) (resume.Resume, error) {
	filename := strings.TrimSpace(in.Filename)
	if filename == "" || len(in.Data) == 0 {
		return resume.Resume{}, ErrInvalidInput
	}
	if int64(len(in.Data)) > u.maxSize {
		return resume.Resume{}, ErrFileTooLarge
	}

	extractor, err := extract.ForFilename(filename)
	if err != nil {
		return resume.Resume{}, ErrUnsupportedFile
	}

	text, err := extractor.Extract(in.Data)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Resume] extraction failed | file=%s err=%v", filename, err)
		}
		return resume.Resume{}, ErrExtractionFailed
	}

	normalized := analysis.Normalize(text)
	skills := analysis.ExtractSkills(normalized, u.vocab)

	path, err := u.store.Save(filename, bytes.NewReader(in.Data))
	if err != nil {
		return resume.Resume{}, ErrInternal
	}

	rec := resume.Resume{
		ID:            uuid.New(),
		UserID:        in.UserID,
		Filename:      filename,
		StoragePath:   path,
		ContentType:   in.ContentType,
		SizeBytes:     int64(len(in.Data)),
		ExtractedText: text,
		Skills:        skills,
		UploadedAt:    time.Now().UTC(),
	}

	if err := u.repo.CreateResume(ctx, rec); err != nil {
		_ = u.store.Remove(path)
		return resume.Resume{}, ErrInternal
	}

	return rec, nil
}

func (u *Resume) GetResume(ctx context.Context, userID, resumeID uuid.UUID) (resume.Resume, error) {
	rec, err := u.repo.GetResumeByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return resume.Resume{}, ErrResumeNotFound
		}
		return resume.Resume{}, ErrInternal
	}
	if rec.UserID != userID {
		return resume.Resume{}, ErrForbidden
	}
	return rec, nil
}

func (u *Resume) ListResumes(ctx context.Context, userID uuid.UUID) ([]resume.Resume, error) {
	items, err := u.repo.ListResumesByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Resume) DeleteResume(ctx context.Context, userID, resumeID uuid.UUID) error {
	rec, err := u.GetResume(ctx, userID, resumeID)
	if err != nil {
		return err
	}

	if err := u.repo.DeleteResume(ctx, resumeID); err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return ErrResumeNotFound
		}
		return ErrInternal
	}

	if err := u.store.Remove(rec.StoragePath); err != nil && u.logger != nil {
		u.logger.Printf("[Resume] orphaned file after delete | path=%s err=%v", rec.StoragePath, err)
	}
	return nil
}
