package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"projectboard/internal/comment/domain"
	"projectboard/internal/comment/repository"
	"projectboard/internal/platform/apperr"
	"projectboard/internal/platform/rbac"
	policydomain "projectboard/internal/policy/domain"
	taskdomain "projectboard/internal/task/domain"
)

// MsgAdded is returned to the client after a comment is stored.
const MsgAdded = "Comentario agregado"

var errTaskLookup = errors.New("comment: task lookup failed")

// TaskLookup resolves a task and the memberships of its project.
type TaskLookup interface {
	rbac.ProjectMembershipGetter
	GetByID(ctx context.Context, id int64) (*taskdomain.Task, error)
}

// Service appends comments to tasks. Comments produce no activity record.
type Service struct {
	repo   repository.Repository
	tasks  TaskLookup
	authz  *rbac.Authorizer
	logger *slog.Logger
}

// NewService returns a comment service.
func NewService(repo repository.Repository, tasks TaskLookup, authz *rbac.Authorizer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, tasks: tasks, authz: authz, logger: logger}
}

// AddComment stores text, trimmed, as a comment by actorID on taskID and returns the new id.
func (s *Service) AddComment(ctx context.Context, actorID, taskID int64, text string) (int64, error) {
	text = strings.TrimSpace(text)
	if taskID <= 0 || text == "" {
		return 0, apperr.Validation("Comentario y ID de tarea son requeridos")
	}
	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return 0, s.persistence(ctx, errors.Join(errTaskLookup, err))
	}
	if t == nil {
		return 0, apperr.NotFound("Tarea no encontrada")
	}
	if _, err := s.authz.Authorize(ctx, s.tasks, actorID, t.ProjectID, policydomain.ActionCommentCreate.String()); err != nil {
		if apperr.IsClassified(err) {
			return 0, err
		}
		return 0, s.persistence(ctx, err)
	}
	c, err := s.repo.Create(ctx, &domain.Comment{TaskID: taskID, UserID: actorID, Text: text})
	if err != nil {
		return 0, s.persistence(ctx, err)
	}
	return c.ID, nil
}

func (s *Service) persistence(ctx context.Context, err error) error {
	s.logger.ErrorContext(ctx, "comment: add failed", "error", err)
	return apperr.Persistence("Error al agregar el comentario", err)
}
