package repository

import (
	"context"

	"projectboard/internal/activity/domain"
)

// Repository reads the activity log. Writes go through activity.Recorder.
type Repository interface {
	// ListByTask returns the task's activities newest first. limit <= 0 means no limit.
	ListByTask(ctx context.Context, taskID int64, limit int) ([]*domain.Record, error)
	CountByTask(ctx context.Context, taskID int64) (int64, error)
	// ListRecent returns activities performed by userID or on tasks assigned to userID, newest first.
	ListRecent(ctx context.Context, userID int64, limit int) ([]*domain.RecentRecord, error)
}
