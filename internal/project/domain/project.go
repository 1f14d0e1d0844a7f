package domain

import (
	"errors"
	"time"

	memberdomain "projectboard/internal/membership/domain"
)

// Project groups tasks and the users allowed to work on them.
type Project struct {
	ID          int64      `json:"id"`
	Name        string     `json:"nombre"`
	Description string     `json:"descripcion"`
	StartDate   *time.Time `json:"fecha_inicio"`
	EndDate     *time.Time `json:"fecha_fin"`
	Status      Status     `json:"estado"`
	CreatedBy   *int64     `json:"creado_por,omitempty"`
	CreatedAt   time.Time  `json:"fecha_creacion"`
}

type Status string

const (
	StatusPending    Status = "pendiente"
	StatusInProgress Status = "en_progreso"
	StatusCompleted  Status = "completado"
)

// Valid reports whether s is one of the project states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Validate validates the project for persistence. Returns an error describing the first validation failure.
func (p *Project) Validate() error {
	if p.Name == "" || p.StartDate == nil {
		return errors.New("name and start date are required")
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	if !p.Status.Valid() {
		return errors.New("invalid status")
	}
	if p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return errors.New("end date before start date")
	}
	return nil
}

// Summary is a project as listed for one user: with that user's role and the task count.
type Summary struct {
	Project
	Role       memberdomain.Role `json:"rol"`
	TotalTasks int64             `json:"total_tareas"`
}

// UserMatch is a user returned by the member search.
type UserMatch struct {
	ID    int64  `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
}
