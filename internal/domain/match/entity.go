package match

import (
	"time"

	"github.com/google/uuid"
)

type Analysis struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	ResumeID           uuid.UUID
	JobID              *uuid.UUID
	JobDescription     string
	Score              float64
	MatchedSkills      []string
	MissingSkills      []string
	Suggestions        []string
	Critique           []string
	ATSScore           int
	ATSFindings        []string
	InterviewQuestions []string
	CreatedAt          time.Time
}
