package rbac

import (
	"context"
	"fmt"

	"projectboard/internal/membership/domain"
	"projectboard/internal/platform/apperr"
)

// ProjectMembershipGetter resolves project existence and a user's membership in it.
// Implementations may be bound to the connection pool or to an open transaction.
type ProjectMembershipGetter interface {
	ProjectExists(ctx context.Context, projectID int64) (bool, error)
	GetMembership(ctx context.Context, userID, projectID int64) (*domain.Membership, error)
}

// RoleSet is a closed set of project roles allowed to perform an action.
type RoleSet map[domain.Role]struct{}

// NewRoleSet builds a RoleSet from roles.
func NewRoleSet(roles ...domain.Role) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

// Contains reports whether r is in the set.
func (s RoleSet) Contains(r domain.Role) bool {
	_, ok := s[r]
	return ok
}

// Decision is the outcome of an access check. Role is the caller's stored role, empty when the caller
// is not a member. Reason is set whenever Authorized is false.
type Decision struct {
	Authorized bool
	Role       domain.Role
	Reason     error
}

// Err returns nil when authorized, otherwise the classified reason.
func (d Decision) Err() error {
	if d.Authorized {
		return nil
	}
	return d.Reason
}

// CheckAccess resolves whether userID may act on projectID given the allowed roles.
// The returned error is reserved for storage failures; not-found and forbidden outcomes travel in the Decision.
func CheckAccess(ctx context.Context, getter ProjectMembershipGetter, userID, projectID int64, allowed RoleSet) (Decision, error) {
	exists, err := getter.ProjectExists(ctx, projectID)
	if err != nil {
		return Decision{}, fmt.Errorf("rbac: project lookup: %w", err)
	}
	if !exists {
		return Decision{Reason: apperr.NotFound("Proyecto no encontrado")}, nil
	}
	m, err := getter.GetMembership(ctx, userID, projectID)
	if err != nil {
		return Decision{}, fmt.Errorf("rbac: membership lookup: %w", err)
	}
	if m == nil {
		return Decision{Reason: apperr.Forbidden("No tienes acceso a este proyecto")}, nil
	}
	if !allowed.Contains(m.Role) {
		return Decision{
			Role:   m.Role,
			Reason: apperr.Forbidden(fmt.Sprintf("No tienes permisos para esta acción (rol: %s)", m.Role)),
		}, nil
	}
	return Decision{Authorized: true, Role: m.Role}, nil
}
