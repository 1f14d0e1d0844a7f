package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	memberdomain "projectboard/internal/membership/domain"
	"projectboard/internal/platform/apperr"
	"projectboard/internal/platform/rbac"
	"projectboard/internal/project/domain"
	taskdomain "projectboard/internal/task/domain"
)

// mockRepo is an in-memory project Repository.
type mockRepo struct {
	projects    map[int64]*domain.Project
	members     map[[2]int64]memberdomain.Role
	users       map[int64]string
	nextID      int64
	err         error
	searchCalls int
}

func newMockRepo() *mockRepo {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := &mockRepo{
		projects: map[int64]*domain.Project{1: {ID: 1, Name: "Web", StartDate: &start, Status: domain.StatusPending}},
		members: map[[2]int64]memberdomain.Role{
			{1, 1}: memberdomain.RoleAdmin,
			{2, 1}: memberdomain.RoleEditor,
			{3, 1}: memberdomain.RoleMember,
		},
		users:  map[int64]string{1: "Ana", 2: "Beto", 3: "Carla", 4: "Diego", 5: "Dina"},
		nextID: 2,
	}
	return r
}

func (m *mockRepo) ProjectExists(ctx context.Context, projectID int64) (bool, error) {
	_, ok := m.projects[projectID]
	return ok, nil
}

func (m *mockRepo) GetMembership(ctx context.Context, userID, projectID int64) (*memberdomain.Membership, error) {
	role, ok := m.members[[2]int64{userID, projectID}]
	if !ok {
		return nil, nil
	}
	return &memberdomain.Membership{UserID: userID, ProjectID: projectID, Role: role}, nil
}

func (m *mockRepo) ListMembers(ctx context.Context, projectID int64) ([]*memberdomain.Member, error) {
	var out []*memberdomain.Member
	for k, role := range m.members {
		if k[1] == projectID {
			out = append(out, &memberdomain.Member{UserID: k[0], Name: m.users[k[0]], Role: role})
		}
	}
	return out, nil
}

func (m *mockRepo) CreateMembership(ctx context.Context, mem *memberdomain.Membership) error {
	if m.err != nil {
		return m.err
	}
	m.members[[2]int64{mem.UserID, mem.ProjectID}] = mem.Role
	return nil
}

func (m *mockRepo) CreateWithOwner(ctx context.Context, p *domain.Project, ownerID int64) (*domain.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	c := *p
	c.ID = m.nextID
	c.CreatedBy = &ownerID
	m.nextID++
	m.projects[c.ID] = &c
	m.members[[2]int64{ownerID, c.ID}] = memberdomain.RoleAdmin
	return &c, nil
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	return m.projects[id], nil
}

func (m *mockRepo) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	if _, ok := m.projects[p.ID]; !ok {
		return nil, nil
	}
	c := *p
	m.projects[p.ID] = &c
	return &c, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id int64, status domain.Status) (bool, error) {
	p, ok := m.projects[id]
	if !ok {
		return false, nil
	}
	p.Status = status
	return true, nil
}

func (m *mockRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := m.projects[id]; !ok {
		return false, nil
	}
	delete(m.projects, id)
	for k := range m.members {
		if k[1] == id {
			delete(m.members, k)
		}
	}
	return true, nil
}

func (m *mockRepo) ListForUser(ctx context.Context, userID int64) ([]*domain.Summary, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.Summary
	for id, p := range m.projects {
		if role, ok := m.members[[2]int64{userID, id}]; ok {
			out = append(out, &domain.Summary{Project: *p, Role: role})
		}
	}
	return out, nil
}

func (m *mockRepo) UserExists(ctx context.Context, userID int64) (bool, error) {
	_, ok := m.users[userID]
	return ok, nil
}

func (m *mockRepo) SearchUsersOutside(ctx context.Context, projectID int64, term string, limit int) ([]*domain.UserMatch, error) {
	m.searchCalls++
	var out []*domain.UserMatch
	for id, name := range m.users {
		if _, member := m.members[[2]int64{id, projectID}]; member {
			continue
		}
		if strings.Contains(strings.ToLower(name), strings.ToLower(term)) && len(out) < limit {
			out = append(out, &domain.UserMatch{ID: id, Name: name})
		}
	}
	return out, nil
}

type mockTasks struct{}

func (mockTasks) ListByProject(ctx context.Context, projectID int64) ([]*taskdomain.View, error) {
	return []*taskdomain.View{{Task: taskdomain.Task{ID: 1, ProjectID: projectID, Title: "T"}}}, nil
}

// projectPolicy mirrors the production role matrix for project actions.
type projectPolicy struct{}

func (projectPolicy) AllowedRoles(ctx context.Context, action string) ([]memberdomain.Role, error) {
	switch action {
	case "project.view":
		return []memberdomain.Role{memberdomain.RoleAdmin, memberdomain.RoleEditor, memberdomain.RoleMember, memberdomain.RoleObserver}, nil
	case "project.update":
		return []memberdomain.Role{memberdomain.RoleAdmin, memberdomain.RoleEditor}, nil
	case "project.delete", "project.status", "member.add":
		return []memberdomain.Role{memberdomain.RoleAdmin}, nil
	}
	return nil, nil
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	return NewService(repo, mockTasks{}, rbac.NewAuthorizer(projectPolicy{}), nil), repo
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestCreate(t *testing.T) {
	svc, repo := newTestService()

	p, err := svc.Create(context.Background(), 4, Input{Name: " Móvil ", StartDate: day(2024, 3, 1), Status: domain.StatusCompleted})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Name != "Móvil" || p.Status != domain.StatusPending {
		t.Errorf("project = %+v", p)
	}
	if repo.members[[2]int64{4, p.ID}] != memberdomain.RoleAdmin {
		t.Error("creator is not admin")
	}
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		msg  string
	}{
		{"missing name", Input{StartDate: day(2024, 1, 1)}, "El nombre y la fecha de inicio son obligatorios"},
		{"missing start", Input{Name: "x"}, "El nombre y la fecha de inicio son obligatorios"},
		{"end before start", Input{Name: "x", StartDate: day(2024, 5, 1), EndDate: day(2024, 4, 1)}, "La fecha de fin no puede ser anterior a la fecha de inicio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			_, err := svc.Create(context.Background(), 1, tt.in)
			if !errors.Is(err, apperr.ErrValidation) {
				t.Fatalf("err = %v, want validation", err)
			}
			if got := apperr.Message(err, ""); got != tt.msg {
				t.Errorf("message = %q, want %q", got, tt.msg)
			}
			if len(repo.projects) != 1 {
				t.Error("invalid project stored")
			}
		})
	}
}

func TestCreate_StorageFailure(t *testing.T) {
	svc, repo := newTestService()
	repo.err = errors.New("disk full")
	_, err := svc.Create(context.Background(), 1, Input{Name: "x", StartDate: day(2024, 1, 1)})
	if !errors.Is(err, apperr.ErrPersistence) || apperr.Message(err, "") != "Error al crear el proyecto" {
		t.Errorf("err = %v", err)
	}
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name   string
		actor  int64
		in     Input
		kind   error
		status domain.Status
	}{
		{"editor keeps status", 2, Input{Name: "Web 2", StartDate: day(2024, 1, 1)}, nil, domain.StatusPending},
		{"admin sets status", 1, Input{Name: "Web 2", StartDate: day(2024, 1, 1), Status: domain.StatusInProgress}, nil, domain.StatusInProgress},
		{"member forbidden", 3, Input{Name: "Web 2", StartDate: day(2024, 1, 1)}, apperr.ErrForbidden, domain.StatusPending},
		{"bad status", 1, Input{Name: "Web 2", StartDate: day(2024, 1, 1), Status: "completada"}, apperr.ErrValidation, domain.StatusPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			_, err := svc.Update(context.Background(), tt.actor, 1, tt.in)
			if tt.kind == nil && err != nil {
				t.Fatalf("Update: %v", err)
			}
			if tt.kind != nil && !errors.Is(err, tt.kind) {
				t.Fatalf("err = %v, want %v", err, tt.kind)
			}
			if got := repo.projects[1].Status; got != tt.status {
				t.Errorf("status = %q, want %q", got, tt.status)
			}
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, repo := newTestService()

	if err := svc.UpdateStatus(context.Background(), 1, 1, domain.StatusCompleted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if repo.projects[1].Status != domain.StatusCompleted {
		t.Errorf("status = %q", repo.projects[1].Status)
	}

	tests := []struct {
		name      string
		actor     int64
		projectID int64
		status    domain.Status
		kind      error
	}{
		{"empty", 1, 1, "", apperr.ErrValidation},
		{"task status is not a project status", 1, 1, "cancelada", apperr.ErrValidation},
		{"editor", 2, 1, domain.StatusPending, apperr.ErrForbidden},
		{"unknown project", 1, 99, domain.StatusPending, apperr.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UpdateStatus(context.Background(), tt.actor, tt.projectID, tt.status)
			if !errors.Is(err, tt.kind) {
				t.Errorf("err = %v, want %v", err, tt.kind)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService()

	if err := svc.Delete(context.Background(), 2, 1); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("editor delete err = %v", err)
	}
	if err := svc.Delete(context.Background(), 1, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := repo.projects[1]; ok {
		t.Error("project still present")
	}
	if err := svc.Delete(context.Background(), 1, 1); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("second delete err = %v", err)
	}
}

func TestDetail(t *testing.T) {
	svc, _ := newTestService()

	d, err := svc.Detail(context.Background(), 3, 1)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if d.Role != memberdomain.RoleMember || len(d.Tasks) != 1 || len(d.Members) != 3 {
		t.Errorf("detail = role %q, %d tasks, %d members", d.Role, len(d.Tasks), len(d.Members))
	}
	if _, err := svc.Detail(context.Background(), 4, 1); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("outsider err = %v", err)
	}
}

func TestList(t *testing.T) {
	svc, _ := newTestService()
	list, err := svc.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].Role != memberdomain.RoleEditor {
		t.Errorf("list = %+v", list)
	}
}

func TestAddMember(t *testing.T) {
	svc, repo := newTestService()

	if err := svc.AddMember(context.Background(), 1, 1, 4, memberdomain.RoleObserver); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if repo.members[[2]int64{4, 1}] != memberdomain.RoleObserver {
		t.Error("membership not stored")
	}

	tests := []struct {
		name   string
		actor  int64
		userID int64
		role   memberdomain.Role
		kind   error
		msg    string
	}{
		{"duplicate", 1, 4, memberdomain.RoleMember, apperr.ErrValidation, "El usuario ya está asignado a este proyecto"},
		{"missing user", 1, 42, memberdomain.RoleMember, apperr.ErrNotFound, "Usuario no encontrado"},
		{"bad role", 1, 5, "usuario", apperr.ErrValidation, "Rol inválido"},
		{"editor cannot add", 2, 5, memberdomain.RoleMember, apperr.ErrForbidden, "No tienes permisos para esta acción (rol: editor)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.AddMember(context.Background(), tt.actor, 1, tt.userID, tt.role)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("err = %v, want %v", err, tt.kind)
			}
			if got := apperr.Message(err, ""); got != tt.msg {
				t.Errorf("message = %q, want %q", got, tt.msg)
			}
		})
	}
	if _, ok := repo.members[[2]int64{5, 1}]; ok {
		t.Error("rejected member stored")
	}
}

func TestSearchUsers(t *testing.T) {
	svc, repo := newTestService()

	got, err := svc.SearchUsers(context.Background(), 1, 1, " d ")
	if err != nil {
		t.Fatalf("short term: %v", err)
	}
	if got == nil || len(got) != 0 || repo.searchCalls != 0 {
		t.Errorf("short term returned %v after %d queries", got, repo.searchCalls)
	}

	got, err = svc.SearchUsers(context.Background(), 1, 1, "di")
	if err != nil {
		t.Fatalf("SearchUsers: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("matches = %d, want Diego and Dina", len(got))
	}
	for _, u := range got {
		if u.ID <= 3 {
			t.Errorf("member %d returned", u.ID)
		}
	}

	if _, err := svc.SearchUsers(context.Background(), 3, 1, "di"); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("member search err = %v", err)
	}
}
