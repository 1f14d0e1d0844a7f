package repository

import (
	"context"

	"projectboard/internal/membership/domain"
)

// Repository defines persistence for project memberships.
type Repository interface {
	ProjectExists(ctx context.Context, projectID int64) (bool, error)
	GetMembership(ctx context.Context, userID, projectID int64) (*domain.Membership, error)
	ListMembers(ctx context.Context, projectID int64) ([]*domain.Member, error)
	CreateMembership(ctx context.Context, m *domain.Membership) error
}
