package service

import (
	"context"
	"log/slog"

	activitydomain "projectboard/internal/activity/domain"
	activityrepo "projectboard/internal/activity/repository"
	commentdomain "projectboard/internal/comment/domain"
	commentrepo "projectboard/internal/comment/repository"
	memberdomain "projectboard/internal/membership/domain"
	"projectboard/internal/platform/apperr"
	"projectboard/internal/platform/rbac"
	policydomain "projectboard/internal/policy/domain"
	"projectboard/internal/task/domain"
	"projectboard/internal/task/repository"
)

const (
	dashboardPriorityLimit = 5
	dashboardRecentLimit   = 10
	msgQueryFail           = "Error al obtener la tarea"
)

// Detail is the task page model.
type Detail struct {
	Task            *domain.View             `json:"tarea"`
	Role            memberdomain.Role        `json:"rol"`
	Assignees       []*domain.Assignee       `json:"asignados"`
	Comments        []*commentdomain.Comment `json:"comentarios"`
	Activities      []*activitydomain.Record `json:"actividades"`
	TotalComments   int64                    `json:"total_comentarios"`
	TotalActivities int64                    `json:"total_actividades"`
}

// Dashboard is the per-user landing page model.
type Dashboard struct {
	Stats            domain.DashboardStats          `json:"estadisticas"`
	PriorityTasks    []*domain.View                 `json:"tareas_prioritarias"`
	RecentActivities []*activitydomain.RecentRecord `json:"actividades_recientes"`
}

// QueryService serves the task read models.
type QueryService struct {
	tasks      repository.Repository
	comments   commentrepo.Repository
	activities activityrepo.Repository
	authz      *rbac.Authorizer
	logger     *slog.Logger
}

// NewQueryService returns a QueryService.
func NewQueryService(tasks repository.Repository, comments commentrepo.Repository, activities activityrepo.Repository, authz *rbac.Authorizer, logger *slog.Logger) *QueryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryService{tasks: tasks, comments: comments, activities: activities, authz: authz, logger: logger}
}

func (q *QueryService) fail(ctx context.Context, op string, err error) error {
	if apperr.IsClassified(err) {
		return err
	}
	q.logger.ErrorContext(ctx, "task: "+op+" failed", "error", err)
	return apperr.Persistence(msgQueryFail, err)
}

// Detail returns a task with its assignees, newest comments and activities (each capped when the limit is > 0)
// and their totals.
func (q *QueryService) Detail(ctx context.Context, actorID, taskID int64, commentLimit, activityLimit int) (*Detail, error) {
	if taskID <= 0 {
		return nil, apperr.Validation("ID de tarea inválido")
	}
	t, err := q.tasks.GetView(ctx, taskID)
	if err != nil {
		return nil, q.fail(ctx, "detail", err)
	}
	if t == nil {
		return nil, apperr.NotFound("Tarea no encontrada")
	}
	role, err := q.authz.Authorize(ctx, q.tasks, actorID, t.ProjectID, policydomain.ActionTaskView.String())
	if err != nil {
		return nil, q.fail(ctx, "detail", err)
	}
	d := &Detail{Task: t, Role: role}
	if d.Assignees, err = q.tasks.ListAssignees(ctx, taskID); err != nil {
		return nil, q.fail(ctx, "detail", err)
	}
	if d.Comments, err = q.comments.ListByTask(ctx, taskID, commentLimit); err != nil {
		return nil, q.fail(ctx, "detail", err)
	}
	if d.TotalComments, err = q.comments.CountByTask(ctx, taskID); err != nil {
		return nil, q.fail(ctx, "detail", err)
	}
	if d.Activities, err = q.activities.ListByTask(ctx, taskID, activityLimit); err != nil {
		return nil, q.fail(ctx, "detail", err)
	}
	if d.TotalActivities, err = q.activities.CountByTask(ctx, taskID); err != nil {
		return nil, q.fail(ctx, "detail", err)
	}
	return d, nil
}

// Activities returns the full activity feed of a task, newest first.
func (q *QueryService) Activities(ctx context.Context, actorID, taskID int64) ([]*activitydomain.Record, error) {
	if taskID <= 0 {
		return nil, apperr.Validation("ID de tarea inválido")
	}
	t, err := q.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, q.fail(ctx, "activities", err)
	}
	if t == nil {
		return nil, apperr.NotFound("Tarea no encontrada")
	}
	if _, err := q.authz.Authorize(ctx, q.tasks, actorID, t.ProjectID, policydomain.ActionActivityView.String()); err != nil {
		return nil, q.fail(ctx, "activities", err)
	}
	list, err := q.activities.ListByTask(ctx, taskID, 0)
	if err != nil {
		return nil, q.fail(ctx, "activities", err)
	}
	return list, nil
}

// ListByProject returns the tasks of a project the actor can view.
func (q *QueryService) ListByProject(ctx context.Context, actorID, projectID int64) ([]*domain.View, error) {
	if _, err := q.authz.Authorize(ctx, q.tasks, actorID, projectID, policydomain.ActionTaskView.String()); err != nil {
		return nil, q.fail(ctx, "list by project", err)
	}
	list, err := q.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, q.fail(ctx, "list by project", err)
	}
	return list, nil
}

// ListForUser returns every task where the actor is responsible or assigned.
func (q *QueryService) ListForUser(ctx context.Context, actorID int64) ([]*domain.View, error) {
	list, err := q.tasks.ListForUser(ctx, actorID)
	if err != nil {
		return nil, q.fail(ctx, "list for user", err)
	}
	return list, nil
}

// Dashboard returns the actor's counters, priority tasks and recent activities.
func (q *QueryService) Dashboard(ctx context.Context, actorID int64) (*Dashboard, error) {
	stats, err := q.tasks.DashboardStats(ctx, actorID)
	if err != nil {
		return nil, q.fail(ctx, "dashboard", err)
	}
	priority, err := q.tasks.ListPriority(ctx, actorID, dashboardPriorityLimit)
	if err != nil {
		return nil, q.fail(ctx, "dashboard", err)
	}
	recent, err := q.activities.ListRecent(ctx, actorID, dashboardRecentLimit)
	if err != nil {
		return nil, q.fail(ctx, "dashboard", err)
	}
	return &Dashboard{Stats: stats, PriorityTasks: priority, RecentActivities: recent}, nil
}
