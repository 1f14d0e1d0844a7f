package repository

import (
	"context"

	memberrepo "projectboard/internal/membership/repository"
	"projectboard/internal/project/domain"
)

// Repository defines persistence for projects. Membership operations come from the embedded
// membership repository.
type Repository interface {
	memberrepo.Repository

	// CreateWithOwner inserts p and makes ownerID its admin in one transaction.
	CreateWithOwner(ctx context.Context, p *domain.Project, ownerID int64) (*domain.Project, error)
	// GetByID returns the project for id, or nil if not found.
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	// Update writes p and returns the stored row, or nil if the project no longer exists.
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
	// UpdateStatus reports false when no project has id.
	UpdateStatus(ctx context.Context, id int64, status domain.Status) (bool, error)
	// Delete removes the project; tasks, assignments, comments and activities go with it.
	Delete(ctx context.Context, id int64) (bool, error)
	ListForUser(ctx context.Context, userID int64) ([]*domain.Summary, error)

	UserExists(ctx context.Context, userID int64) (bool, error)
	// SearchUsersOutside returns users whose name or email contains term and who are not members of projectID.
	SearchUsersOutside(ctx context.Context, projectID int64, term string, limit int) ([]*domain.UserMatch, error)
}
