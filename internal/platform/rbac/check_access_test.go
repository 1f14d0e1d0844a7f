package rbac

import (
	"context"
	"errors"
	"strings"
	"testing"

	"projectboard/internal/membership/domain"
	"projectboard/internal/platform/apperr"
	"projectboard/internal/server/middleware"
)

// mockMembershipGetter implements ProjectMembershipGetter for tests.
type mockMembershipGetter struct {
	projects    map[int64]bool
	memberships map[[2]int64]*domain.Membership
	existsErr   error
	memberErr   error
	calls       int
}

func (m *mockMembershipGetter) ProjectExists(ctx context.Context, projectID int64) (bool, error) {
	m.calls++
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.projects[projectID], nil
}

func (m *mockMembershipGetter) GetMembership(ctx context.Context, userID, projectID int64) (*domain.Membership, error) {
	m.calls++
	if m.memberErr != nil {
		return nil, m.memberErr
	}
	return m.memberships[[2]int64{userID, projectID}], nil
}

func newGetter(role domain.Role) *mockMembershipGetter {
	g := &mockMembershipGetter{
		projects:    map[int64]bool{1: true},
		memberships: map[[2]int64]*domain.Membership{},
	}
	if role != "" {
		g.memberships[[2]int64{7, 1}] = &domain.Membership{UserID: 7, ProjectID: 1, Role: role}
	}
	return g
}

func TestCheckAccess(t *testing.T) {
	writers := NewRoleSet(domain.RoleAdmin, domain.RoleEditor, domain.RoleMember)
	tests := []struct {
		name       string
		getter     *mockMembershipGetter
		projectID  int64
		authorized bool
		role       domain.Role
		kind       error
	}{
		{"admin allowed", newGetter(domain.RoleAdmin), 1, true, domain.RoleAdmin, nil},
		{"member allowed", newGetter(domain.RoleMember), 1, true, domain.RoleMember, nil},
		{"observer denied", newGetter(domain.RoleObserver), 1, false, domain.RoleObserver, apperr.ErrForbidden},
		{"not a member", newGetter(""), 1, false, "", apperr.ErrForbidden},
		{"unknown project", newGetter(domain.RoleAdmin), 99, false, "", apperr.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := CheckAccess(context.Background(), tt.getter, 7, tt.projectID, writers)
			if err != nil {
				t.Fatalf("CheckAccess: %v", err)
			}
			if d.Authorized != tt.authorized {
				t.Errorf("Authorized = %v, want %v", d.Authorized, tt.authorized)
			}
			if d.Role != tt.role {
				t.Errorf("Role = %q, want %q", d.Role, tt.role)
			}
			if tt.kind == nil {
				if d.Err() != nil {
					t.Errorf("Err() = %v, want nil", d.Err())
				}
				return
			}
			if !errors.Is(d.Err(), tt.kind) {
				t.Errorf("Err() = %v, want %v", d.Err(), tt.kind)
			}
		})
	}
}

func TestCheckAccess_DeniedMessageCarriesRole(t *testing.T) {
	d, err := CheckAccess(context.Background(), newGetter(domain.RoleObserver), 7, 1, NewRoleSet(domain.RoleAdmin))
	if err != nil {
		t.Fatalf("CheckAccess: %v", err)
	}
	if msg := apperr.Message(d.Err(), ""); !strings.Contains(msg, "observer") {
		t.Errorf("message = %q, want it to mention the role", msg)
	}
}

func TestCheckAccess_NotFoundSkipsMembershipLookup(t *testing.T) {
	g := newGetter(domain.RoleAdmin)
	if _, err := CheckAccess(context.Background(), g, 7, 99, NewRoleSet(domain.RoleAdmin)); err != nil {
		t.Fatalf("CheckAccess: %v", err)
	}
	if g.calls != 1 {
		t.Errorf("getter calls = %d, want 1", g.calls)
	}
}

func TestCheckAccess_StorageErrors(t *testing.T) {
	dbErr := errors.New("connection reset")
	for _, g := range []*mockMembershipGetter{
		{existsErr: dbErr},
		{projects: map[int64]bool{1: true}, memberErr: dbErr},
	} {
		_, err := CheckAccess(context.Background(), g, 7, 1, NewRoleSet(domain.RoleAdmin))
		if !errors.Is(err, dbErr) {
			t.Errorf("err = %v, want wrapping %v", err, dbErr)
		}
		if apperr.IsClassified(err) {
			t.Errorf("storage error should not be classified: %v", err)
		}
	}
}

func TestRoleSet_Contains(t *testing.T) {
	s := NewRoleSet(domain.RoleAdmin)
	if !s.Contains(domain.RoleAdmin) {
		t.Error("set should contain admin")
	}
	if s.Contains(domain.RoleEditor) {
		t.Error("set should not contain editor")
	}
	if NewRoleSet().Contains(domain.RoleAdmin) {
		t.Error("empty set should contain nothing")
	}
}

type stubPolicy struct {
	roles map[string][]domain.Role
	err   error
}

func (p stubPolicy) AllowedRoles(ctx context.Context, action string) ([]domain.Role, error) {
	return p.roles[action], p.err
}

func TestAuthorizer_Authorize(t *testing.T) {
	policy := stubPolicy{roles: map[string][]domain.Role{
		"project.delete": {domain.RoleAdmin},
		"task.update":    {domain.RoleAdmin, domain.RoleEditor, domain.RoleMember},
	}}
	a := NewAuthorizer(policy)
	ctx := context.Background()

	role, err := a.Authorize(ctx, newGetter(domain.RoleEditor), 7, 1, "task.update")
	if err != nil {
		t.Fatalf("Authorize task.update: %v", err)
	}
	if role != domain.RoleEditor {
		t.Errorf("role = %q, want editor", role)
	}

	_, err = a.Authorize(ctx, newGetter(domain.RoleEditor), 7, 1, "project.delete")
	if !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("project.delete err = %v, want forbidden", err)
	}

	_, err = a.Authorize(ctx, newGetter(domain.RoleAdmin), 7, 1, "unknown.action")
	if !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("unknown action err = %v, want forbidden", err)
	}
}

func TestAuthorizer_PolicyError(t *testing.T) {
	policyErr := errors.New("policy unavailable")
	a := NewAuthorizer(stubPolicy{err: policyErr})
	_, err := a.Authorize(context.Background(), newGetter(domain.RoleAdmin), 7, 1, "task.view")
	if !errors.Is(err, policyErr) {
		t.Errorf("err = %v, want %v", err, policyErr)
	}
}

func TestRequireUser(t *testing.T) {
	if _, err := RequireUser(context.Background()); !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Errorf("missing identity err = %v, want unauthenticated", err)
	}
	ctx := middleware.WithIdentity(context.Background(), 7, "tok")
	id, err := RequireUser(ctx)
	if err != nil {
		t.Fatalf("RequireUser: %v", err)
	}
	if id != 7 {
		t.Errorf("id = %d, want 7", id)
	}
}
