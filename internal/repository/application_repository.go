package repository

import (
	"context"
	"time"

	"resumatch/internal/database"
	"resumatch/internal/domain/job"

	"github.com/google/uuid"
)

// Applicant is an application joined with the candidate's identity, used by
// the recruiter listing.
type Applicant struct {
	ApplicationID uuid.UUID
	UserID        uuid.UUID
	Username      string
	Email         string
	ResumeID      uuid.UUID
	Score         float64
	Status        string
	AppliedAt     time.Time
}

type ApplicationRepository interface {
	CreateApplication(ctx context.Context, a job.Application) error
	ExistsByJobAndUser(ctx context.Context, jobID, userID uuid.UUID) (bool, error)
	ListApplicantsByJob(ctx context.Context, jobID uuid.UUID) ([]Applicant, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) CreateApplication(ctx context.Context, a job.Application) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO applications (id, job_id, user_id, resume_id, score, status, applied_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.JobID, a.UserID, a.ResumeID, a.Score, a.Status, a.AppliedAt,
	)
	return err
}

func (r *PostgresApplicationRepository) ExistsByJobAndUser(ctx context.Context, jobID, userID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND user_id = $2)`, jobID, userID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) ListApplicantsByJob(ctx context.Context, jobID uuid.UUID) ([]Applicant, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT a.id, a.user_id, u.username, u.email, a.resume_id, a.score, a.status, a.applied_at
		 FROM applications a
		 JOIN users u ON u.id = a.user_id
		 WHERE a.job_id = $1
		 ORDER BY a.score DESC, a.applied_at ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Applicant, 0)
	for rows.Next() {
		var a Applicant
		if err := rows.Scan(&a.ApplicationID, &a.UserID, &a.Username, &a.Email, &a.ResumeID, &a.Score, &a.Status, &a.AppliedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
