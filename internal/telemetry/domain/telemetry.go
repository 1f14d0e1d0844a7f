package domain

import (
	"time"

	"github.com/google/uuid"

	activitydomain "projectboard/internal/activity/domain"
)

// ActivityEvent is the exported form of a committed activity record. It is the JSON payload
// written to Kafka and the source of the OTel log record.
type ActivityEvent struct {
	EventID     string    `json:"eventId"`
	ActivityID  int64     `json:"activityId"`
	TaskID      int64     `json:"taskId"`
	ProjectID   int64     `json:"projectId"`
	ActorID     int64     `json:"actorId"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewActivityEvent builds an event for rec, which belongs to a task of projectID.
func NewActivityEvent(rec *activitydomain.Record, projectID int64) *ActivityEvent {
	if rec == nil {
		return nil
	}
	return &ActivityEvent{
		EventID:     uuid.NewString(),
		ActivityID:  rec.ID,
		TaskID:      rec.TaskID,
		ProjectID:   projectID,
		ActorID:     rec.ActorID,
		Category:    string(rec.Category),
		Description: rec.Description,
		CreatedAt:   rec.CreatedAt,
	}
}
