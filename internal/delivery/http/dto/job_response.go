package dto

import (
	"time"

	"github.com/google/uuid"

	"resumatch/internal/domain/job"
	"resumatch/internal/repository"
)

type JobResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	CreatedAt   time.Time `json:"created_at"`
}

type ApplicationResponse struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	ResumeID  uuid.UUID `json:"resume_id"`
	Score     float64   `json:"score"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
}

type ApplicantResponse struct {
	ApplicationID uuid.UUID `json:"application_id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	ResumeID      uuid.UUID `json:"resume_id"`
	Score         float64   `json:"score"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"applied_at"`
}

func NewJobResponse(p job.Posting) JobResponse {
	return JobResponse{
		ID:          p.ID,
		Title:       p.Title,
		Company:     p.Company,
		Location:    p.Location,
		Description: p.Description,
		Skills:      p.Skills,
		CreatedAt:   p.CreatedAt,
	}
}

func NewJobResponses(items []job.Posting) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewJobResponse(p))
	}
	return out
}

func NewApplicationResponse(a job.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        a.ID,
		JobID:     a.JobID,
		ResumeID:  a.ResumeID,
		Score:     a.Score,
		Status:    a.Status,
		AppliedAt: a.AppliedAt,
	}
}

func NewApplicantResponses(items []repository.Applicant) []ApplicantResponse {
	out := make([]ApplicantResponse, 0, len(items))
	for _, a := range items {
		out = append(out, ApplicantResponse{
			ApplicationID: a.ApplicationID,
			Username:      a.Username,
			Email:         a.Email,
			ResumeID:      a.ResumeID,
			Score:         a.Score,
			Status:        a.Status,
			AppliedAt:     a.AppliedAt,
		})
	}
	return out
}
