package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type AnalysisCompletedEvent struct {
	Type       string  `json:"type"`
	AnalysisID string  `json:"analysis_id"`
	ResumeID   string  `json:"resume_id"`
	Score      float64 `json:"score"`
	Timestamp  string  `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyAnalysisCompleted pushes a completion event to the owning user's
// open connections. A nil default hub makes this a no-op.
func NotifyAnalysisCompleted(userID, analysisID, resumeID uuid.UUID, score float64) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := AnalysisCompletedEvent{
		Type:       "analysis_completed",
		AnalysisID: analysisID.String(),
		ResumeID:   resumeID.String(),
		Score:      score,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.SendToUser(userID, b)
}
