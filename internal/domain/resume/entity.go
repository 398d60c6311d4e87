package resume

import (
	"time"

	"github.com/google/uuid"
)

type Resume struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Filename      string
	StoragePath   string
	ContentType   string
	SizeBytes     int64
	ExtractedText string
	Skills        []string
	UploadedAt    time.Time
}
