// Package service implements project management: CRUD, status, membership and member search.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	memberdomain "projectboard/internal/membership/domain"
	"projectboard/internal/platform/apperr"
	"projectboard/internal/platform/rbac"
	policydomain "projectboard/internal/policy/domain"
	"projectboard/internal/project/domain"
	"projectboard/internal/project/repository"
	taskdomain "projectboard/internal/task/domain"
)

const (
	searchMinLength = 2
	searchLimit     = 10

	msgNotFound = "Proyecto no encontrado"

	MsgStatusUpdated = "Estado actualizado correctamente"
	MsgMemberAdded   = "Usuario añadido con éxito"
)

// TaskLister lists the tasks shown on a project page.
type TaskLister interface {
	ListByProject(ctx context.Context, projectID int64) ([]*taskdomain.View, error)
}

// Service manages projects and their members.
type Service struct {
	repo   repository.Repository
	tasks  TaskLister
	authz  *rbac.Authorizer
	logger *slog.Logger
}

// NewService returns a project service. logger may be nil.
func NewService(repo repository.Repository, tasks TaskLister, authz *rbac.Authorizer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, tasks: tasks, authz: authz, logger: logger}
}

// Input carries the editable fields of a project.
type Input struct {
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      domain.Status
}

// Detail is the project page model.
type Detail struct {
	Project *domain.Project        `json:"proyecto"`
	Role    memberdomain.Role      `json:"rol"`
	Tasks   []*taskdomain.View     `json:"tareas"`
	Members []*memberdomain.Member `json:"miembros"`
}

func (s *Service) persistence(ctx context.Context, op string, err error, msg string) error {
	if apperr.IsClassified(err) {
		return err
	}
	s.logger.ErrorContext(ctx, "project: "+op+" failed", "error", err)
	return apperr.Persistence(msg, err)
}

func (s *Service) validate(p *domain.Project) error {
	if p.Name == "" || p.StartDate == nil {
		return apperr.Validation("El nombre y la fecha de inicio son obligatorios")
	}
	if p.Status != "" && !p.Status.Valid() {
		return apperr.Validation("Estado no válido")
	}
	if err := p.Validate(); err != nil {
		return apperr.Validation("La fecha de fin no puede ser anterior a la fecha de inicio")
	}
	return nil
}

// Create stores a new pending project with actorID as its admin.
func (s *Service) Create(ctx context.Context, actorID int64, in Input) (*domain.Project, error) {
	p := &domain.Project{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      domain.StatusPending,
	}
	if err := s.validate(p); err != nil {
		return nil, err
	}
	created, err := s.repo.CreateWithOwner(ctx, p, actorID)
	if err != nil {
		return nil, s.persistence(ctx, "create", err, "Error al crear el proyecto")
	}
	s.logger.InfoContext(ctx, "project created", "project_id", created.ID, "user_id", actorID)
	return created, nil
}

// Update replaces the editable fields of a project. An empty status keeps the current one.
func (s *Service) Update(ctx context.Context, actorID, projectID int64, in Input) (*domain.Project, error) {
	const failMsg = "Error al actualizar el proyecto"
	p := &domain.Project{
		ID:          projectID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      in.Status,
	}
	if err := s.validate(p); err != nil {
		return nil, err
	}
	if _, err := s.authz.Authorize(ctx, s.repo, actorID, projectID, policydomain.ActionProjectUpdate.String()); err != nil {
		return nil, s.persistence(ctx, "update", err, failMsg)
	}
	if in.Status == "" {
		cur, err := s.repo.GetByID(ctx, projectID)
		if err != nil {
			return nil, s.persistence(ctx, "update", err, failMsg)
		}
		if cur == nil {
			return nil, apperr.NotFound(msgNotFound)
		}
		p.Status = cur.Status
	}
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, s.persistence(ctx, "update", err, failMsg)
	}
	if updated == nil {
		return nil, apperr.NotFound(msgNotFound)
	}
	return updated, nil
}

// UpdateStatus sets only the project status.
func (s *Service) UpdateStatus(ctx context.Context, actorID, projectID int64, status domain.Status) error {
	const failMsg = "Error al actualizar el estado"
	if status == "" {
		return apperr.Validation("El estado es obligatorio")
	}
	if !status.Valid() {
		return apperr.Validation("Estado no válido")
	}
	if _, err := s.authz.Authorize(ctx, s.repo, actorID, projectID, policydomain.ActionProjectStatus.String()); err != nil {
		return s.persistence(ctx, "status update", err, failMsg)
	}
	ok, err := s.repo.UpdateStatus(ctx, projectID, status)
	if err != nil {
		return s.persistence(ctx, "status update", err, failMsg)
	}
	if !ok {
		return apperr.NotFound(msgNotFound)
	}
	return nil
}

// Delete removes a project with everything under it.
func (s *Service) Delete(ctx context.Context, actorID, projectID int64) error {
	const failMsg = "Error al eliminar el proyecto"
	if _, err := s.authz.Authorize(ctx, s.repo, actorID, projectID, policydomain.ActionProjectDelete.String()); err != nil {
		return s.persistence(ctx, "delete", err, failMsg)
	}
	ok, err := s.repo.Delete(ctx, projectID)
	if err != nil {
		return s.persistence(ctx, "delete", err, failMsg)
	}
	if !ok {
		return apperr.NotFound(msgNotFound)
	}
	s.logger.InfoContext(ctx, "project deleted", "project_id", projectID, "user_id", actorID)
	return nil
}

// List returns the projects actorID belongs to.
func (s *Service) List(ctx context.Context, actorID int64) ([]*domain.Summary, error) {
	list, err := s.repo.ListForUser(ctx, actorID)
	if err != nil {
		return nil, s.persistence(ctx, "list", err, "Error al obtener los proyectos")
	}
	return list, nil
}

// Detail returns a project with its tasks, its members and the caller's role.
func (s *Service) Detail(ctx context.Context, actorID, projectID int64) (*Detail, error) {
	const failMsg = "Error al obtener el proyecto"
	role, err := s.authz.Authorize(ctx, s.repo, actorID, projectID, policydomain.ActionProjectView.String())
	if err != nil {
		return nil, s.persistence(ctx, "detail", err, failMsg)
	}
	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, s.persistence(ctx, "detail", err, failMsg)
	}
	if p == nil {
		return nil, apperr.NotFound(msgNotFound)
	}
	d := &Detail{Project: p, Role: role}
	if d.Tasks, err = s.tasks.ListByProject(ctx, projectID); err != nil {
		return nil, s.persistence(ctx, "detail", err, failMsg)
	}
	if d.Members, err = s.repo.ListMembers(ctx, projectID); err != nil {
		return nil, s.persistence(ctx, "detail", err, failMsg)
	}
	return d, nil
}

// Members lists the members of a project.
func (s *Service) Members(ctx context.Context, actorID, projectID int64) ([]*memberdomain.Member, error) {
	if _, err := s.authz.Authorize(ctx, s.repo, actorID, projectID, policydomain.ActionProjectView.String()); err != nil {
		return nil, s.persistence(ctx, "members", err, "Error al obtener los miembros")
	}
	list, err := s.repo.ListMembers(ctx, projectID)
	if err != nil {
		return nil, s.persistence(ctx, "members", err, "Error al obtener los miembros")
	}
	return list, nil
}

// AddMember gives userID the role on projectID. Existing members are rejected.
func (s *Service) AddMember(ctx context.Context, actorID, projectID, userID int64, role memberdomain.Role) error {
	const failMsg = "Error al añadir usuario al proyecto"
	if projectID <= 0 || userID <= 0 {
		return apperr.Validation("El proyecto y el usuario son obligatorios")
	}
	if !role.Valid() {
		return apperr.Validation("Rol inválido")
	}
	if _, err := s.authz.Authorize(ctx, s.repo, actorID, projectID, policydomain.ActionMemberAdd.String()); err != nil {
		return s.persistence(ctx, "add member", err, failMsg)
	}
	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return s.persistence(ctx, "add member", err, failMsg)
	}
	if !exists {
		return apperr.NotFound("Usuario no encontrado")
	}
	m, err := s.repo.GetMembership(ctx, userID, projectID)
	if err != nil {
		return s.persistence(ctx, "add member", err, failMsg)
	}
	if m != nil {
		return apperr.Validation("El usuario ya está asignado a este proyecto")
	}
	if err := s.repo.CreateMembership(ctx, &memberdomain.Membership{UserID: userID, ProjectID: projectID, Role: role}); err != nil {
		return s.persistence(ctx, "add member", err, failMsg)
	}
	return nil
}

// SearchUsers returns up to ten users outside projectID whose name or email contains term.
// Terms shorter than two characters return an empty list without querying.
func (s *Service) SearchUsers(ctx context.Context, actorID, projectID int64, term string) ([]*domain.UserMatch, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < searchMinLength {
		return []*domain.UserMatch{}, nil
	}
	if _, err := s.authz.Authorize(ctx, s.repo, actorID, projectID, policydomain.ActionMemberAdd.String()); err != nil {
		return nil, s.persistence(ctx, "search users", err, "Error al buscar usuarios")
	}
	list, err := s.repo.SearchUsersOutside(ctx, projectID, term, searchLimit)
	if err != nil {
		return nil, s.persistence(ctx, "search users", err, "Error al buscar usuarios")
	}
	return list, nil
}
