package repository

import (
	"context"

	"projectboard/internal/user/domain"
)

// Repository defines persistence for users.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts u and returns it with ID and CreatedAt set.
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	// UpdateProfile writes name and email, and the password hash too when passwordHash is non-empty,
	// in one transaction.
	UpdateProfile(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error)
	Stats(ctx context.Context, userID int64) (domain.Stats, error)
}
