package repository

import (
	"context"
	"errors"

	"resumatch/internal/database"
	"resumatch/internal/domain/resume"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	CreateResume(ctx context.Context, r resume.Resume) error
	GetResumeByID(ctx context.Context, id uuid.UUID) (resume.Resume, error)
	ListResumesByUser(ctx context.Context, userID uuid.UUID) ([]resume.Resume, error)
	DeleteResume(ctx context.Context, id uuid.UUID) error
}

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

func (r *PostgresResumeRepository) CreateResume(ctx context.Context, rec resume.Resume) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO resumes (id, user_id, filename, storage_path, content_type, size_bytes, extracted_text, skills, uploaded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, rec.UserID, rec.Filename, rec.StoragePath, rec.ContentType, rec.SizeBytes, rec.ExtractedText, rec.Skills, rec.UploadedAt,
	)
	return err
}

func (r *PostgresResumeRepository) GetResumeByID(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, filename, storage_path, content_type, size_bytes, extracted_text, skills, uploaded_at
		 FROM resumes WHERE id = $1`,
		id,
	)

	var rec resume.Resume
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Filename, &rec.StoragePath, &rec.ContentType, &rec.SizeBytes, &rec.ExtractedText, &rec.Skills, &rec.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Resume{}, ErrResumeNotFound
		}
		return resume.Resume{}, err
	}
	return rec, nil
}

func (r *PostgresResumeRepository) ListResumesByUser(ctx context.Context, userID uuid.UUID) ([]resume.Resume, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, filename, storage_path, content_type, size_bytes, extracted_text, skills, uploaded_at
		 FROM resumes WHERE user_id = $1 ORDER BY uploaded_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resume.Resume, 0)
	for rows.Next() {
		var rec resume.Resume
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Filename, &rec.StoragePath, &rec.ContentType, &rec.SizeBytes, &rec.ExtractedText, &rec.Skills, &rec.UploadedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresResumeRepository) DeleteResume(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrResumeNotFound
	}
	return nil
}
