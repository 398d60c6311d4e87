package repository

import (
	"context"
	"errors"

	"resumatch/internal/database"
	"resumatch/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	CreateJob(ctx context.Context, p job.Posting) error
	GetJobByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
	ListJobs(ctx context.Context, limit, offset int) ([]job.Posting, error)
	ListJobsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]job.Posting, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, recruiter_id, title, company, location, description, skills, created_at, updated_at`

func (r *PostgresJobRepository) CreateJob(ctx context.Context, p job.Posting) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO job_postings (`+jobColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.RecruiterID, p.Title, p.Company, p.Location, p.Description, p.Skills, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *PostgresJobRepository) GetJobByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM job_postings WHERE id = $1`, id)

	p, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

func (r *PostgresJobRepository) ListJobs(ctx context.Context, limit, offset int) ([]job.Posting, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.db.Query(
		ctx,
		`SELECT `+jobColumns+` FROM job_postings ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *PostgresJobRepository) ListJobsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]job.Posting, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+jobColumns+` FROM job_postings WHERE recruiter_id = $1 ORDER BY created_at DESC`,
		recruiterID,
	)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func collectJobs(rows database.Rows) ([]job.Posting, error) {
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.Posting, error) {
	var p job.Posting
	err := row.Scan(&p.ID, &p.RecruiterID, &p.Title, &p.Company, &p.Location, &p.Description, &p.Skills, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
