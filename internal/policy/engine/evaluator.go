package engine

import (
	"context"

	memberdomain "projectboard/internal/membership/domain"
)

// Evaluator answers which project roles may perform an action.
type Evaluator interface {
	// AllowedRoles returns the roles allowed to perform action. An unknown action yields no roles.
	AllowedRoles(ctx context.Context, action string) ([]memberdomain.Role, error)
	// HealthCheck verifies the evaluator can answer a query.
	HealthCheck(ctx context.Context) error
}
