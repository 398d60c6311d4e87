package dto

import (
	"time"

	"github.com/google/uuid"

	"resumatch/internal/domain/resume"
)

type ResumeResponse struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	Skills      []string  `json:"skills"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func NewResumeResponse(r resume.Resume) ResumeResponse {
	return ResumeResponse{
		ID:          r.ID,
		Filename:    r.Filename,
		ContentType: r.ContentType,
		SizeBytes:   r.SizeBytes,
		Skills:      r.Skills,
		UploadedAt:  r.UploadedAt,
	}
}

func NewResumeResponses(items []resume.Resume) []ResumeResponse {
	out := make([]ResumeResponse, 0, len(items))
	for _, r := range items {
		out = append(out, NewResumeResponse(r))
	}
	return out
}
