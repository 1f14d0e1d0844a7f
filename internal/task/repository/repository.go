package repository

import (
	"context"

	"projectboard/internal/activity"
	"projectboard/internal/platform/rbac"
	"projectboard/internal/task/domain"
)

// Tx is the set of task operations available inside one database transaction.
// Membership reads go through the same transaction so authorization sees the locked state.
type Tx interface {
	rbac.ProjectMembershipGetter

	// GetForUpdate loads the task and locks its row until the transaction ends. Returns nil if not found.
	GetForUpdate(ctx context.Context, taskID int64) (*domain.Task, error)
	// Create inserts t and returns it with ID and CreatedAt set.
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	// Update writes every mutable column of t.
	Update(ctx context.Context, t *domain.Task) error
	UpdateStatus(ctx context.Context, taskID int64, status domain.Status) error

	// UserName returns the display name of userID; ok is false when the user does not exist.
	UserName(ctx context.Context, userID int64) (name string, ok bool, err error)
	AssigneeIDs(ctx context.Context, taskID int64) ([]int64, error)
	IsAssigned(ctx context.Context, userID, taskID int64) (bool, error)
	AddAssignee(ctx context.Context, userID, taskID int64) error
	RemoveAssignee(ctx context.Context, userID, taskID int64) error

	// Activities returns the executor the activity recorder writes through.
	Activities() activity.Executor
}

// Repository defines persistence for tasks and their assignment sets.
type Repository interface {
	rbac.ProjectMembershipGetter

	// WithTx runs fn in a transaction, committing when fn returns nil and rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Activities returns the executor bound to the connection pool, for writes outside a transaction.
	Activities() activity.Executor

	// GetByID returns the task for id, or nil if not found.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	// GetView returns the task with project and responsible names, or nil if not found.
	GetView(ctx context.Context, id int64) (*domain.View, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.View, error)
	// ListForUser returns tasks where userID is responsible or assigned.
	ListForUser(ctx context.Context, userID int64) ([]*domain.View, error)
	// ListPriority returns the user's pending assigned tasks ordered by priority then due date.
	ListPriority(ctx context.Context, userID int64, limit int) ([]*domain.View, error)
	DashboardStats(ctx context.Context, userID int64) (domain.DashboardStats, error)
	ListAssignees(ctx context.Context, taskID int64) ([]*domain.Assignee, error)
}
