package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"projectboard/internal/activity"
	activitydomain "projectboard/internal/activity/domain"
	"projectboard/internal/db/sqlc/gen"
	memberdomain "projectboard/internal/membership/domain"
	"projectboard/internal/task/domain"
	"projectboard/internal/task/repository"
	teldomain "projectboard/internal/telemetry/domain"
)

var errInjected = errors.New("injected storage failure")

// fakeStore is an in-memory database. WithTx works on a clone and swaps it in on commit.
type fakeStore struct {
	projects   map[int64]bool
	members    map[[2]int64]memberdomain.Role
	users      map[int64]string
	tasks      map[int64]domain.Task
	assignees  map[int64]map[int64]bool
	activities []gen.ActividadesTarea
	nextTaskID int64
	nextActID  int64
	updates    int
	statusSets int
	failOn     map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		projects:   map[int64]bool{},
		members:    map[[2]int64]memberdomain.Role{},
		users:      map[int64]string{},
		tasks:      map[int64]domain.Task{},
		assignees:  map[int64]map[int64]bool{},
		nextTaskID: 1,
		nextActID:  1,
		failOn:     map[string]error{},
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := *s
	c.projects = make(map[int64]bool, len(s.projects))
	for k, v := range s.projects {
		c.projects[k] = v
	}
	c.members = make(map[[2]int64]memberdomain.Role, len(s.members))
	for k, v := range s.members {
		c.members[k] = v
	}
	c.users = make(map[int64]string, len(s.users))
	for k, v := range s.users {
		c.users[k] = v
	}
	c.tasks = make(map[int64]domain.Task, len(s.tasks))
	for k, v := range s.tasks {
		c.tasks[k] = v
	}
	c.assignees = make(map[int64]map[int64]bool, len(s.assignees))
	for k, set := range s.assignees {
		cs := make(map[int64]bool, len(set))
		for u := range set {
			cs[u] = true
		}
		c.assignees[k] = cs
	}
	c.activities = append([]gen.ActividadesTarea(nil), s.activities...)
	return &c
}

func (s *fakeStore) fail(op string) error {
	return s.failOn[op]
}

func (s *fakeStore) addUser(id int64, name string) { s.users[id] = name }

func (s *fakeStore) addMember(userID, projectID int64, role memberdomain.Role) {
	s.projects[projectID] = true
	s.members[[2]int64{userID, projectID}] = role
}

func (s *fakeStore) ProjectExists(ctx context.Context, projectID int64) (bool, error) {
	if err := s.fail("ProjectExists"); err != nil {
		return false, err
	}
	return s.projects[projectID], nil
}

func (s *fakeStore) GetMembership(ctx context.Context, userID, projectID int64) (*memberdomain.Membership, error) {
	if err := s.fail("GetMembership"); err != nil {
		return nil, err
	}
	role, ok := s.members[[2]int64{userID, projectID}]
	if !ok {
		return nil, nil
	}
	return &memberdomain.Membership{UserID: userID, ProjectID: projectID, Role: role}, nil
}

func (s *fakeStore) CreateActividad(ctx context.Context, arg gen.CreateActividadParams) (gen.ActividadesTarea, error) {
	if err := s.fail("CreateActividad"); err != nil {
		return gen.ActividadesTarea{}, err
	}
	if _, ok := s.tasks[arg.TareaID]; !ok {
		return gen.ActividadesTarea{}, errors.New("violates foreign key constraint")
	}
	a := gen.ActividadesTarea{
		ID: s.nextActID, TareaID: arg.TareaID, UsuarioID: arg.UsuarioID,
		TipoActividad: arg.TipoActividad, Descripcion: arg.Descripcion,
		FechaActividad: time.Date(2023, 3, 15, 10, 0, int(s.nextActID), 0, time.UTC),
	}
	s.nextActID++
	s.activities = append(s.activities, a)
	return a, nil
}

func (s *fakeStore) taskActivities(taskID int64) []gen.ActividadesTarea {
	var out []gen.ActividadesTarea
	for _, a := range s.activities {
		if a.TareaID == taskID {
			out = append(out, a)
		}
	}
	return out
}

func (s *fakeStore) assigneeIDs(taskID int64) []int64 {
	var out []int64
	for u := range s.assignees[taskID] {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// fakeTx implements repository.Tx on a working copy.
type fakeTx struct {
	*fakeStore
}

func (t *fakeTx) Activities() activity.Executor { return t.fakeStore }

func (t *fakeTx) GetForUpdate(ctx context.Context, taskID int64) (*domain.Task, error) {
	if err := t.fail("GetForUpdate"); err != nil {
		return nil, err
	}
	task, ok := t.tasks[taskID]
	if !ok {
		return nil, nil
	}
	return &task, nil
}

func (t *fakeTx) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := t.fail("Create"); err != nil {
		return nil, err
	}
	c := *task
	c.ID = t.nextTaskID
	c.CreatedAt = time.Date(2023, 3, 15, 9, 0, 0, 0, time.UTC)
	t.nextTaskID++
	t.tasks[c.ID] = c
	return &c, nil
}

func (t *fakeTx) Update(ctx context.Context, task *domain.Task) error {
	if err := t.fail("Update"); err != nil {
		return err
	}
	t.updates++
	t.tasks[task.ID] = *task
	return nil
}

func (t *fakeTx) UpdateStatus(ctx context.Context, taskID int64, status domain.Status) error {
	if err := t.fail("UpdateStatus"); err != nil {
		return err
	}
	t.statusSets++
	task := t.tasks[taskID]
	task.Status = status
	t.tasks[taskID] = task
	return nil
}

func (t *fakeTx) UserName(ctx context.Context, userID int64) (string, bool, error) {
	name, ok := t.users[userID]
	return name, ok, nil
}

func (t *fakeTx) AssigneeIDs(ctx context.Context, taskID int64) ([]int64, error) {
	return t.assigneeIDs(taskID), nil
}

func (t *fakeTx) IsAssigned(ctx context.Context, userID, taskID int64) (bool, error) {
	return t.assignees[taskID][userID], nil
}

func (t *fakeTx) AddAssignee(ctx context.Context, userID, taskID int64) error {
	if err := t.fail("AddAssignee"); err != nil {
		return err
	}
	if t.assignees[taskID] == nil {
		t.assignees[taskID] = map[int64]bool{}
	}
	t.assignees[taskID][userID] = true
	return nil
}

func (t *fakeTx) RemoveAssignee(ctx context.Context, userID, taskID int64) error {
	delete(t.assignees[taskID], userID)
	return nil
}

// fakeRepo implements repository.Repository.
type fakeRepo struct {
	*fakeStore
	txCount   int
	commits   int
	rollbacks int
}

var _ repository.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{fakeStore: newFakeStore()}
}

func (r *fakeRepo) WithTx(ctx context.Context, fn func(tx repository.Tx) error) error {
	r.txCount++
	work := r.fakeStore.clone()
	if err := fn(&fakeTx{fakeStore: work}); err != nil {
		r.rollbacks++
		return err
	}
	r.fakeStore = work
	r.commits++
	return nil
}

func (r *fakeRepo) Activities() activity.Executor { return r.fakeStore }

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if err := r.fail("GetByID"); err != nil {
		return nil, err
	}
	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *fakeRepo) GetView(ctx context.Context, id int64) (*domain.View, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	v := &domain.View{Task: t, ProjectName: "Proyecto"}
	if t.ResponsibleID != nil {
		v.ResponsibleName = r.users[*t.ResponsibleID]
	}
	return v, nil
}

func (r *fakeRepo) ListByProject(ctx context.Context, projectID int64) ([]*domain.View, error) {
	var out []*domain.View
	for _, t := range r.tasks {
		if t.ProjectID == projectID {
			out = append(out, &domain.View{Task: t})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRepo) ListForUser(ctx context.Context, userID int64) ([]*domain.View, error) {
	var out []*domain.View
	for _, t := range r.tasks {
		if (t.ResponsibleID != nil && *t.ResponsibleID == userID) || r.assignees[t.ID][userID] {
			out = append(out, &domain.View{Task: t})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRepo) ListPriority(ctx context.Context, userID int64, limit int) ([]*domain.View, error) {
	list, _ := r.ListForUser(ctx, userID)
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *fakeRepo) DashboardStats(ctx context.Context, userID int64) (domain.DashboardStats, error) {
	if err := r.fail("DashboardStats"); err != nil {
		return domain.DashboardStats{}, err
	}
	var st domain.DashboardStats
	for _, t := range r.tasks {
		if r.assignees[t.ID][userID] && t.Status == domain.StatusPending {
			st.Pending++
		}
	}
	return st, nil
}

func (r *fakeRepo) ListAssignees(ctx context.Context, taskID int64) ([]*domain.Assignee, error) {
	var out []*domain.Assignee
	for _, id := range r.assigneeIDs(taskID) {
		out = append(out, &domain.Assignee{ID: id, Name: r.users[id]})
	}
	return out, nil
}

// matrixPolicy implements rbac.RolePolicy from a fixed map.
type matrixPolicy map[string][]memberdomain.Role

func (m matrixPolicy) AllowedRoles(ctx context.Context, action string) ([]memberdomain.Role, error) {
	return m[action], nil
}

var contributors = []memberdomain.Role{memberdomain.RoleAdmin, memberdomain.RoleEditor, memberdomain.RoleMember}
var everyone = append(append([]memberdomain.Role(nil), contributors...), memberdomain.RoleObserver)

var testPolicy = matrixPolicy{
	"task.view":       everyone,
	"task.create":     contributors,
	"task.update":     contributors,
	"task.status":     contributors,
	"task.assign":     contributors,
	"activity.view":   everyone,
	"activity.create": contributors,
}

// captureEmitter implements telemetry.EventEmitter.
type captureEmitter struct {
	mu     sync.Mutex
	events []*teldomain.ActivityEvent
}

func (c *captureEmitter) Emit(ctx context.Context, e *teldomain.ActivityEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
	return nil
}

func (c *captureEmitter) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

// activity rows as (category, description) pairs for assertions.
type activityRow struct {
	category    activitydomain.Category
	description string
}

func rowsOf(list []gen.ActividadesTarea) []activityRow {
	out := make([]activityRow, len(list))
	for i, a := range list {
		out[i] = activityRow{activitydomain.Category(a.TipoActividad), a.Descripcion}
	}
	return out
}
