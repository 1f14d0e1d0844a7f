package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	activitydomain "projectboard/internal/activity/domain"
	"projectboard/internal/platform/apperr"
	policydomain "projectboard/internal/policy/domain"
	"projectboard/internal/task/domain"
	"projectboard/internal/task/repository"
)

const (
	noResponsible  = "No asignado"
	unknownUser    = "Usuario"
	msgCreateFail  = "Error al crear la tarea"
	msgUpdateFail  = "Error al actualizar la tarea"
	msgStatusFail  = "Error al actualizar el estado de la tarea"
	msgAssignFail  = "Error al asignar usuario"
	msgActivityErr = "Error al registrar la actividad"

	MsgUpdated         = "Tarea actualizada correctamente"
	MsgStatusUpdated   = "Estado actualizado correctamente"
	MsgStatusUnchanged = "No hubo cambios en el estado"
	MsgAssigned        = "Usuario asignado correctamente a la tarea"
)

// CreateInput is a new task. AssigneeIDs is already normalized to a list by the caller.
type CreateInput struct {
	ProjectID     int64
	Title         string
	Description   string
	ResponsibleID *int64
	Priority      domain.Priority
	DueDate       *time.Time
	AssigneeIDs   []int64
}

// CreateResult identifies the created task.
type CreateResult struct {
	TaskID    int64 `json:"tareaId"`
	ProjectID int64 `json:"proyectoId"`
}

// UpdateInput replaces every mutable field of a task. When AssigneesProvided is false the assignment
// set is left untouched; when true AssigneeIDs (possibly empty) becomes the new set.
type UpdateInput struct {
	TaskID            int64
	Title             string
	Description       string
	ResponsibleID     *int64
	Priority          domain.Priority
	DueDate           *time.Time
	Status            domain.Status
	AssigneeIDs       []int64
	AssigneesProvided bool
}

// StatusResult reports whether a status-only update changed anything.
type StatusResult struct {
	Changed bool
	Message string
}

// Create validates and inserts a task, records its creation activities and reconciles the initial
// assignees. Non-member assignees are skipped.
func (s *Service) Create(ctx context.Context, actorID int64, in CreateInput) (*CreateResult, error) {
	ctx, span := s.tracer.Start(ctx, "task.Create")
	defer span.End()
	span.SetAttributes(attribute.Int64("project.id", in.ProjectID))

	title := strings.TrimSpace(in.Title)
	if title == "" || in.ProjectID <= 0 {
		return nil, apperr.Validation("El título y el proyecto son obligatorios")
	}
	if !in.Priority.Valid() {
		return nil, apperr.Validation("Prioridad no válida")
	}
	if _, err := s.authz.Authorize(ctx, s.repo, actorID, in.ProjectID, policydomain.ActionTaskCreate.String()); err != nil {
		return nil, s.fail(ctx, span, "create", err, msgCreateFail)
	}

	var j *journal
	var created *domain.Task
	err := s.repo.WithTx(ctx, func(tx repository.Tx) error {
		responsibleName := noResponsible
		if in.ResponsibleID != nil {
			name, ok, err := tx.UserName(ctx, *in.ResponsibleID)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.Validation("Responsable no encontrado")
			}
			responsibleName = name
		}

		t, err := tx.Create(ctx, &domain.Task{
			ProjectID:     in.ProjectID,
			Title:         title,
			Description:   strings.TrimSpace(in.Description),
			ResponsibleID: in.ResponsibleID,
			Priority:      in.Priority,
			DueDate:       in.DueDate,
			Status:        domain.StatusPending,
		})
		if err != nil {
			return err
		}
		created = t
		j = &journal{recorder: s.recorder, exec: tx.Activities(), taskID: t.ID, actorID: actorID}

		if err := j.record(ctx, activitydomain.CategoryCreation, "creó esta tarea"); err != nil {
			return err
		}
		if in.ResponsibleID != nil {
			if err := j.record(ctx, activitydomain.CategoryAssignment, fmt.Sprintf("asignó a %s como responsable", responsibleName)); err != nil {
				return err
			}
		}
		if in.Priority != "" {
			if err := j.record(ctx, activitydomain.CategoryPriority, fmt.Sprintf("estableció la prioridad como %s", in.Priority)); err != nil {
				return err
			}
		}
		if in.DueDate != nil {
			if err := j.record(ctx, activitydomain.CategoryDueDate, fmt.Sprintf("estableció la fecha de vencimiento para %s", domain.FormatDate(in.DueDate))); err != nil {
				return err
			}
		}

		for _, userID := range distinctIDs(in.AssigneeIDs) {
			added, err := s.addAssignee(ctx, tx, t, userID)
			if err != nil {
				return err
			}
			if !added || (in.ResponsibleID != nil && *in.ResponsibleID == userID) {
				continue
			}
			if err := s.recordAssigned(ctx, tx, j, userID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, span, "create", err, msgCreateFail)
	}
	span.SetAttributes(attribute.Int64("task.id", created.ID))
	s.export(ctx, created.ProjectID, j.records)
	return &CreateResult{TaskID: created.ID, ProjectID: created.ProjectID}, nil
}

// Update replaces the task's fields under a row lock, records one activity per changed field in a
// fixed order, and reconciles the assignment set when provided.
func (s *Service) Update(ctx context.Context, actorID int64, in UpdateInput) (string, error) {
	ctx, span := s.tracer.Start(ctx, "task.Update")
	defer span.End()
	span.SetAttributes(attribute.Int64("task.id", in.TaskID))

	title := strings.TrimSpace(in.Title)
	switch {
	case in.TaskID <= 0:
		return "", apperr.Validation("ID de tarea inválido")
	case title == "":
		return "", apperr.Validation("El título es obligatorio")
	case !in.Status.Valid():
		return "", apperr.Validation("Estado no válido")
	case !in.Priority.Valid():
		return "", apperr.Validation("Prioridad no válida")
	}

	var j *journal
	var projectID int64
	err := s.repo.WithTx(ctx, func(tx repository.Tx) error {
		cur, err := tx.GetForUpdate(ctx, in.TaskID)
		if err != nil {
			return err
		}
		if cur == nil {
			return apperr.NotFound("Tarea no encontrada")
		}
		projectID = cur.ProjectID
		if _, err := s.authz.Authorize(ctx, tx, actorID, cur.ProjectID, policydomain.ActionTaskUpdate.String()); err != nil {
			return err
		}

		next := *cur
		next.Title = title
		next.Description = strings.TrimSpace(in.Description)
		next.ResponsibleID = in.ResponsibleID
		next.Priority = in.Priority
		next.DueDate = in.DueDate
		next.Status = in.Status

		changes, err := s.diff(ctx, tx, cur, &next)
		if err != nil {
			return err
		}
		if err := tx.Update(ctx, &next); err != nil {
			return err
		}

		j = &journal{recorder: s.recorder, exec: tx.Activities(), taskID: cur.ID, actorID: actorID}
		for _, c := range changes {
			if err := j.record(ctx, c.category, c.description); err != nil {
				return err
			}
		}
		if in.AssigneesProvided {
			return s.reconcile(ctx, tx, j, cur, distinctIDs(in.AssigneeIDs))
		}
		return nil
	})
	if err != nil {
		return "", s.fail(ctx, span, "update", err, msgUpdateFail)
	}
	s.export(ctx, projectID, j.records)
	return MsgUpdated, nil
}

type change struct {
	category    activitydomain.Category
	description string
}

// diff compares cur with next in display order: title, description, responsible, priority, due date, status.
func (s *Service) diff(ctx context.Context, tx repository.Tx, cur, next *domain.Task) ([]change, error) {
	var out []change
	if cur.Title != next.Title {
		out = append(out, change{activitydomain.CategoryOther, fmt.Sprintf("cambió el título de \"%s\" a \"%s\"", cur.Title, next.Title)})
	}
	if cur.Description != next.Description {
		out = append(out, change{activitydomain.CategoryOther, "actualizó la descripción de la tarea"})
	}
	if !sameID(cur.ResponsibleID, next.ResponsibleID) {
		from, err := s.responsibleName(ctx, tx, cur.ResponsibleID, false)
		if err != nil {
			return nil, err
		}
		to, err := s.responsibleName(ctx, tx, next.ResponsibleID, true)
		if err != nil {
			return nil, err
		}
		out = append(out, change{activitydomain.CategoryAssignment, fmt.Sprintf("cambió el responsable de %s a %s", from, to)})
	}
	if cur.Priority != next.Priority {
		out = append(out, change{activitydomain.CategoryPriority, fmt.Sprintf("cambió la prioridad de \"%s\" a \"%s\"",
			domain.DisplayPriority(cur.Priority), domain.DisplayPriority(next.Priority))})
	}
	if !domain.SameDate(cur.DueDate, next.DueDate) {
		out = append(out, change{activitydomain.CategoryDueDate, fmt.Sprintf("cambió la fecha de vencimiento de %s a %s",
			domain.FormatDate(cur.DueDate), domain.FormatDate(next.DueDate))})
	}
	if cur.Status != next.Status {
		out = append(out, change{activitydomain.CategoryStatusChange, statusChange(cur.Status, next.Status)})
	}
	return out, nil
}

// responsibleName resolves a responsible user's display name. A missing incoming user is a
// validation error; a missing previous one falls back to noResponsible.
func (s *Service) responsibleName(ctx context.Context, tx repository.Tx, id *int64, incoming bool) (string, error) {
	if id == nil {
		return noResponsible, nil
	}
	name, ok, err := tx.UserName(ctx, *id)
	if err != nil {
		return "", err
	}
	if !ok {
		if incoming {
			return "", apperr.Validation("Responsable no encontrado")
		}
		return noResponsible, nil
	}
	return name, nil
}

// reconcile makes incoming the task's assignment set. Removals are recorded against the actor;
// additions of non-members are skipped.
func (s *Service) reconcile(ctx context.Context, tx repository.Tx, j *journal, t *domain.Task, incoming []int64) error {
	current, err := tx.AssigneeIDs(ctx, t.ID)
	if err != nil {
		return err
	}
	currentSet := make(map[int64]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}
	incomingSet := make(map[int64]struct{}, len(incoming))
	for _, id := range incoming {
		incomingSet[id] = struct{}{}
	}

	for _, userID := range current {
		if _, keep := incomingSet[userID]; keep {
			continue
		}
		if err := tx.RemoveAssignee(ctx, userID, t.ID); err != nil {
			return err
		}
		name, err := s.userName(ctx, tx, userID)
		if err != nil {
			return err
		}
		if err := j.record(ctx, activitydomain.CategoryAssignment, fmt.Sprintf("quitó a %s de esta tarea", name)); err != nil {
			return err
		}
	}
	for _, userID := range incoming {
		if _, has := currentSet[userID]; has {
			continue
		}
		added, err := s.addAssignee(ctx, tx, t, userID)
		if err != nil {
			return err
		}
		if !added {
			continue
		}
		if err := s.recordAssigned(ctx, tx, j, userID); err != nil {
			return err
		}
	}
	return nil
}

// addAssignee inserts the assignment when userID is a member of the task's project.
// It reports false, without error, for non-members.
func (s *Service) addAssignee(ctx context.Context, tx repository.Tx, t *domain.Task, userID int64) (bool, error) {
	m, err := tx.GetMembership(ctx, userID, t.ProjectID)
	if err != nil {
		return false, err
	}
	if m == nil {
		s.logger.DebugContext(ctx, "task: skipping non-member assignee", "task_id", t.ID, "user_id", userID)
		return false, nil
	}
	if err := tx.AddAssignee(ctx, userID, t.ID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) recordAssigned(ctx context.Context, tx repository.Tx, j *journal, userID int64) error {
	name, err := s.userName(ctx, tx, userID)
	if err != nil {
		return err
	}
	return j.record(ctx, activitydomain.CategoryAssignment, fmt.Sprintf("asignó a %s a esta tarea", name))
}

func (s *Service) userName(ctx context.Context, tx repository.Tx, userID int64) (string, error) {
	name, ok, err := tx.UserName(ctx, userID)
	if err != nil {
		return "", err
	}
	if !ok {
		return unknownUser, nil
	}
	return name, nil
}

// UpdateStatus changes only the task status. Status and its activity commit together; an unchanged
// status writes nothing.
func (s *Service) UpdateStatus(ctx context.Context, actorID, taskID int64, status domain.Status) (*StatusResult, error) {
	ctx, span := s.tracer.Start(ctx, "task.UpdateStatus")
	defer span.End()
	span.SetAttributes(attribute.Int64("task.id", taskID), attribute.String("task.status", string(status)))

	if status == "" {
		return nil, apperr.Validation("El estado es requerido")
	}
	if !status.Valid() {
		return nil, apperr.Validation("Estado no válido")
	}
	if taskID <= 0 {
		return nil, apperr.Validation("ID de tarea inválido")
	}

	var j *journal
	var projectID int64
	result := &StatusResult{Message: MsgStatusUnchanged}
	err := s.repo.WithTx(ctx, func(tx repository.Tx) error {
		cur, err := tx.GetForUpdate(ctx, taskID)
		if err != nil {
			return err
		}
		if cur == nil {
			return apperr.NotFound("Tarea no encontrada")
		}
		projectID = cur.ProjectID
		if _, err := s.authz.Authorize(ctx, tx, actorID, cur.ProjectID, policydomain.ActionTaskStatus.String()); err != nil {
			return err
		}
		if cur.Status == status {
			return nil
		}
		if err := tx.UpdateStatus(ctx, taskID, status); err != nil {
			return err
		}
		j = &journal{recorder: s.recorder, exec: tx.Activities(), taskID: taskID, actorID: actorID}
		if err := j.record(ctx, activitydomain.CategoryStatusChange, statusChange(cur.Status, status)); err != nil {
			return err
		}
		result = &StatusResult{Changed: true, Message: MsgStatusUpdated}
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, span, "status update", err, msgStatusFail)
	}
	if j != nil {
		s.export(ctx, projectID, j.records)
	}
	return result, nil
}

// AssignUser adds one user to a task's assignment set. Unlike the bulk paths, a non-member or an
// existing assignment is rejected.
func (s *Service) AssignUser(ctx context.Context, actorID, taskID, userID int64) error {
	ctx, span := s.tracer.Start(ctx, "task.AssignUser")
	defer span.End()
	span.SetAttributes(attribute.Int64("task.id", taskID), attribute.Int64("assignee.id", userID))

	if taskID <= 0 || userID <= 0 {
		return apperr.Validation("El ID de tarea y usuario son requeridos")
	}

	var j *journal
	var projectID int64
	err := s.repo.WithTx(ctx, func(tx repository.Tx) error {
		t, err := tx.GetForUpdate(ctx, taskID)
		if err != nil {
			return err
		}
		if t == nil {
			return apperr.NotFound("Tarea no encontrada")
		}
		projectID = t.ProjectID
		if _, err := s.authz.Authorize(ctx, tx, actorID, t.ProjectID, policydomain.ActionTaskAssign.String()); err != nil {
			return err
		}
		m, err := tx.GetMembership(ctx, userID, t.ProjectID)
		if err != nil {
			return err
		}
		if m == nil {
			return apperr.Validation("El usuario no pertenece a este proyecto y no puede ser asignado a esta tarea")
		}
		assigned, err := tx.IsAssigned(ctx, userID, taskID)
		if err != nil {
			return err
		}
		if assigned {
			return apperr.Validation("El usuario ya está asignado a esta tarea")
		}
		if err := tx.AddAssignee(ctx, userID, taskID); err != nil {
			return err
		}
		j = &journal{recorder: s.recorder, exec: tx.Activities(), taskID: taskID, actorID: actorID}
		return s.recordAssigned(ctx, tx, j, userID)
	})
	if err != nil {
		return s.fail(ctx, span, "assign", err, msgAssignFail)
	}
	s.export(ctx, projectID, j.records)
	return nil
}

// AppendActivity records a free-text activity on a task outside any transaction.
// An empty category defaults to "otro".
func (s *Service) AppendActivity(ctx context.Context, actorID, taskID int64, category activitydomain.Category, description string) (*activitydomain.Record, error) {
	ctx, span := s.tracer.Start(ctx, "task.AppendActivity")
	defer span.End()

	description = strings.TrimSpace(description)
	if taskID <= 0 || description == "" {
		return nil, apperr.Validation("El ID de tarea y la descripción son obligatorios")
	}
	if category == "" {
		category = activitydomain.CategoryOther
	}
	if !category.Valid() {
		return nil, apperr.Validation("Tipo de actividad no válido")
	}

	t, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, s.fail(ctx, span, "append activity", err, msgActivityErr)
	}
	if t == nil {
		return nil, apperr.NotFound("Tarea no encontrada")
	}
	if _, err := s.authz.Authorize(ctx, s.repo, actorID, t.ProjectID, policydomain.ActionActivityCreate.String()); err != nil {
		return nil, s.fail(ctx, span, "append activity", err, msgActivityErr)
	}
	rec, err := s.recorder.Record(ctx, s.repo.Activities(), taskID, actorID, category, description)
	if err != nil {
		return nil, s.fail(ctx, span, "append activity", err, msgActivityErr)
	}
	s.export(ctx, t.ProjectID, []*activitydomain.Record{rec})
	return rec, nil
}

func statusChange(from, to domain.Status) string {
	return fmt.Sprintf("cambió el estado de \"%s\" a \"%s\"", domain.HumanizeStatus(string(from)), domain.HumanizeStatus(string(to)))
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
