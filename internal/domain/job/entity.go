package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	ApplicationPending  = "pending"
	ApplicationReviewed = "reviewed"
)

type Posting struct {
	ID          uuid.UUID
	RecruiterID uuid.UUID
	Title       string
	Company     string
	Location    string
	Description string
	Skills      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Application struct {
	ID        uuid.UUID
	JobID     uuid.UUID
	UserID    uuid.UUID
	ResumeID  uuid.UUID
	Score     float64
	Status    string
	AppliedAt time.Time
}
