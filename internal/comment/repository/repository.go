package repository

import (
	"context"

	"projectboard/internal/comment/domain"
)

// Repository defines persistence for task comments.
type Repository interface {
	// Create inserts c and returns it with ID and CreatedAt set.
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	// ListByTask returns comments newest first. limit <= 0 means no limit.
	ListByTask(ctx context.Context, taskID int64, limit int) ([]*domain.Comment, error)
	CountByTask(ctx context.Context, taskID int64) (int64, error)
}
