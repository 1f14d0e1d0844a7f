package rbac

import (
	"context"
	"fmt"

	"projectboard/internal/membership/domain"
	"projectboard/internal/platform/apperr"
	"projectboard/internal/server/middleware"
)

// RolePolicy maps an action name to the roles allowed to perform it.
type RolePolicy interface {
	AllowedRoles(ctx context.Context, action string) ([]domain.Role, error)
}

// Authorizer combines a RolePolicy with CheckAccess.
type Authorizer struct {
	policy RolePolicy
}

// NewAuthorizer returns an Authorizer backed by policy.
func NewAuthorizer(policy RolePolicy) *Authorizer {
	return &Authorizer{policy: policy}
}

// Authorize checks that userID may perform action on projectID. It returns the caller's role on success,
// a classified apperr error for not-found or forbidden, or an unclassified error for policy or storage failures.
func (a *Authorizer) Authorize(ctx context.Context, getter ProjectMembershipGetter, userID, projectID int64, action string) (domain.Role, error) {
	roles, err := a.policy.AllowedRoles(ctx, action)
	if err != nil {
		return "", fmt.Errorf("rbac: policy for %s: %w", action, err)
	}
	d, err := CheckAccess(ctx, getter, userID, projectID, NewRoleSet(roles...))
	if err != nil {
		return "", err
	}
	if err := d.Err(); err != nil {
		return d.Role, err
	}
	return d.Role, nil
}

// RequireUser returns the authenticated user id from ctx, or an unauthenticated error.
func RequireUser(ctx context.Context) (int64, error) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok || userID <= 0 {
		return 0, apperr.Unauthenticated("Debes iniciar sesión")
	}
	return userID, nil
}
