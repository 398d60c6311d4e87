package repository

import (
	"context"
	"errors"

	"resumatch/internal/database"
	"resumatch/internal/domain/match"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

type AnalysisRepository interface {
	CreateAnalysis(ctx context.Context, a match.Analysis) error
	GetAnalysisByID(ctx context.Context, id uuid.UUID) (match.Analysis, error)
	ListAnalysesByUser(ctx context.Context, userID uuid.UUID, limit int) ([]match.Analysis, error)
}

type PostgresAnalysisRepository struct {
	db database.DB
}

func NewPostgresAnalysisRepository(db database.DB) *PostgresAnalysisRepository {
	return &PostgresAnalysisRepository{db: db}
}

const analysisColumns = `id, user_id, resume_id, job_id, job_description, score,
	matched_skills, missing_skills, suggestions, critique,
	ats_score, ats_findings, interview_questions, created_at`

func (r *PostgresAnalysisRepository) CreateAnalysis(ctx context.Context, a match.Analysis) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO analyses (`+analysisColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		a.ID, a.UserID, a.ResumeID, a.JobID, a.JobDescription, a.Score,
		a.MatchedSkills, a.MissingSkills, a.Suggestions, a.Critique,
		a.ATSScore, a.ATSFindings, a.InterviewQuestions, a.CreatedAt,
	)
	return err
}

func (r *PostgresAnalysisRepository) GetAnalysisByID(ctx context.Context, id uuid.UUID) (match.Analysis, error) {
	row := r.db.QueryRow(ctx, `SELECT `+analysisColumns+` FROM analyses WHERE id = $1`, id)

	a, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return match.Analysis{}, ErrAnalysisNotFound
		}
		return match.Analysis{}, err
	}
	return a, nil
}

func (r *PostgresAnalysisRepository) ListAnalysesByUser(ctx context.Context, userID uuid.UUID, limit int) ([]match.Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(
		ctx,
		`SELECT `+analysisColumns+` FROM analyses WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]match.Analysis, 0)
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanAnalysis(row database.Row) (match.Analysis, error) {
	var a match.Analysis
	err := row.Scan(
		&a.ID, &a.UserID, &a.ResumeID, &a.JobID, &a.JobDescription, &a.Score,
		&a.MatchedSkills, &a.MissingSkills, &a.Suggestions, &a.Critique,
		&a.ATSScore, &a.ATSFindings, &a.InterviewQuestions, &a.CreatedAt,
	)
	return a, err
}
