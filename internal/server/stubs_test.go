package server

import (
	"context"
	"time"

	activitydomain "projectboard/internal/activity/domain"
	identityservice "projectboard/internal/identity/service"
	memberdomain "projectboard/internal/membership/domain"
	projectdomain "projectboard/internal/project/domain"
	projectservice "projectboard/internal/project/service"
	taskdomain "projectboard/internal/task/domain"
	taskservice "projectboard/internal/task/service"
	userdomain "projectboard/internal/user/domain"
)

type stubAccounts struct {
	registered  *identityservice.RegisterInput
	registerErr error
	loginErr    error
	profileIn   *identityservice.ProfileInput
	profileErr  error
}

func (s *stubAccounts) Register(_ context.Context, in identityservice.RegisterInput) (*userdomain.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	s.registered = &in
	return &userdomain.User{ID: 9, Name: in.Name, Email: in.Email}, nil
}

func (s *stubAccounts) Login(_ context.Context, email, _ string) (*identityservice.LoginResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &identityservice.LoginResult{
		Token:     "signed-token",
		ExpiresAt: time.Now().Add(time.Hour),
		User:      &userdomain.User{ID: 9, Name: "Ana", Email: email},
	}, nil
}

func (s *stubAccounts) Profile(_ context.Context, userID int64) (*identityservice.Profile, error) {
	return &identityservice.Profile{
		User:  &userdomain.User{ID: userID, Name: "Ana"},
		Stats: userdomain.Stats{TotalTasks: 3, CompletedTasks: 1, TotalProjects: 2},
	}, nil
}

func (s *stubAccounts) UpdateProfile(_ context.Context, userID int64, in identityservice.ProfileInput) (*userdomain.User, error) {
	if s.profileErr != nil {
		return nil, s.profileErr
	}
	s.profileIn = &in
	return &userdomain.User{ID: userID, Name: in.Name, Email: in.Email}, nil
}

type stubProjects struct {
	created    *projectservice.Input
	updated    *projectservice.Input
	updatedID  int64
	deletedID  int64
	status     projectdomain.Status
	member     *memberdomain.Membership
	searchTerm string
	searchPID  int64
	err        error
}

func (s *stubProjects) Create(_ context.Context, actorID int64, in projectservice.Input) (*projectdomain.Project, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = &in
	return &projectdomain.Project{ID: 1, Name: in.Name, CreatedBy: &actorID}, nil
}

func (s *stubProjects) Update(_ context.Context, _, projectID int64, in projectservice.Input) (*projectdomain.Project, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.updated, s.updatedID = &in, projectID
	return &projectdomain.Project{ID: projectID, Name: in.Name}, nil
}

func (s *stubProjects) UpdateStatus(_ context.Context, _, _ int64, status projectdomain.Status) error {
	s.status = status
	return s.err
}

func (s *stubProjects) Delete(_ context.Context, _, projectID int64) error {
	s.deletedID = projectID
	return s.err
}

func (s *stubProjects) List(_ context.Context, _ int64) ([]*projectdomain.Summary, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*projectdomain.Summary{{Project: projectdomain.Project{ID: 1, Name: "Tablero"}, Role: memberdomain.RoleAdmin, TotalTasks: 2}}, nil
}

func (s *stubProjects) Detail(_ context.Context, _, projectID int64) (*projectservice.Detail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &projectservice.Detail{Project: &projectdomain.Project{ID: projectID}, Role: memberdomain.RoleEditor}, nil
}

func (s *stubProjects) Members(_ context.Context, _, _ int64) ([]*memberdomain.Member, error) {
	return []*memberdomain.Member{{UserID: 1, Name: "Ana", Role: memberdomain.RoleAdmin}}, s.err
}

func (s *stubProjects) AddMember(_ context.Context, _, projectID, userID int64, role memberdomain.Role) error {
	s.member = &memberdomain.Membership{ProjectID: projectID, UserID: userID, Role: role}
	return s.err
}

func (s *stubProjects) SearchUsers(_ context.Context, _, projectID int64, term string) ([]*projectdomain.UserMatch, error) {
	s.searchTerm, s.searchPID = term, projectID
	if len([]rune(term)) < 2 {
		return []*projectdomain.UserMatch{}, nil
	}
	return []*projectdomain.UserMatch{{ID: 5, Name: "Eva"}}, s.err
}

type stubTasks struct {
	created      *taskservice.CreateInput
	updated      *taskservice.UpdateInput
	status       taskdomain.Status
	assigned     [2]int64
	activityCat  activitydomain.Category
	activityDesc string
	createErr    error
	updateErr    error
	statusRes    *taskservice.StatusResult
	err          error
}

func (s *stubTasks) Create(_ context.Context, _ int64, in taskservice.CreateInput) (*taskservice.CreateResult, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = &in
	return &taskservice.CreateResult{TaskID: 10, ProjectID: in.ProjectID}, nil
}

func (s *stubTasks) Update(_ context.Context, _ int64, in taskservice.UpdateInput) (string, error) {
	if s.updateErr != nil {
		return "", s.updateErr
	}
	s.updated = &in
	return taskservice.MsgUpdated, nil
}

func (s *stubTasks) UpdateStatus(_ context.Context, _, _ int64, status taskdomain.Status) (*taskservice.StatusResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.status = status
	return s.statusRes, nil
}

func (s *stubTasks) AssignUser(_ context.Context, _, taskID, userID int64) error {
	s.assigned = [2]int64{taskID, userID}
	return s.err
}

func (s *stubTasks) AppendActivity(_ context.Context, actorID, taskID int64, category activitydomain.Category, description string) (*activitydomain.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.activityCat, s.activityDesc = category, description
	return &activitydomain.Record{ID: 1, TaskID: taskID, ActorID: actorID, Category: category, Description: description}, nil
}

type stubQueries struct {
	detailLimits [2]int
	err          error
}

func (s *stubQueries) Detail(_ context.Context, _, taskID int64, commentLimit, activityLimit int) (*taskservice.Detail, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.detailLimits = [2]int{commentLimit, activityLimit}
	return &taskservice.Detail{Task: &taskdomain.View{Task: taskdomain.Task{ID: taskID}}, TotalComments: 4, TotalActivities: 7}, nil
}

func (s *stubQueries) Activities(_ context.Context, _, taskID int64) ([]*activitydomain.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*activitydomain.Record{{ID: 2, TaskID: taskID, Category: activitydomain.CategoryCreation}}, nil
}

func (s *stubQueries) ListForUser(_ context.Context, _ int64) ([]*taskdomain.View, error) {
	return []*taskdomain.View{}, s.err
}

func (s *stubQueries) Dashboard(_ context.Context, _ int64) (*taskservice.Dashboard, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &taskservice.Dashboard{Stats: taskdomain.DashboardStats{Pending: 3, DueThisWeek: 1}}, nil
}

type stubComments struct {
	taskID int64
	text   string
	err    error
}

func (s *stubComments) AddComment(_ context.Context, _, taskID int64, text string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.taskID, s.text = taskID, text
	return 77, nil
}
