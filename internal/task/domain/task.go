package domain

import "time"

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pendiente"
	StatusInProgress Status = "en_progreso"
	StatusCompleted  Status = "completada"
	StatusCancelled  Status = "cancelada"
)

// Valid reports whether s is one of the four task states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Priority of a task. The empty value means no priority was set.
type Priority string

const (
	PriorityHigh   Priority = "Alta"
	PriorityMedium Priority = "Media"
	PriorityLow    Priority = "Baja"
)

// Valid reports whether p is a known priority. The empty priority is valid.
func (p Priority) Valid() bool {
	switch p {
	case "", PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Task is a unit of work inside a project.
// ResponsibleID and DueDate are nil when unset; DueDate holds a calendar date at UTC midnight.
type Task struct {
	ID            int64      `json:"id"`
	ProjectID     int64      `json:"proyecto_id"`
	Title         string     `json:"titulo"`
	Description   string     `json:"descripcion"`
	ResponsibleID *int64     `json:"responsable_id"`
	Priority      Priority   `json:"prioridad,omitempty"`
	DueDate       *time.Time `json:"fecha_vencimiento"`
	Status        Status     `json:"estado"`
	CreatedAt     time.Time  `json:"fecha_creacion"`
}

// View is a task joined with display names for listings and the detail page.
type View struct {
	Task
	ProjectName     string `json:"proyecto_nombre,omitempty"`
	ResponsibleName string `json:"responsable_nombre,omitempty"`
}

// Assignee is a user in a task's assignment set.
type Assignee struct {
	ID    int64  `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
}

// DashboardStats are the counters shown on a user's dashboard.
type DashboardStats struct {
	Pending     int64 `json:"tareas_pendientes"`
	DueThisWeek int64 `json:"proximos_vencimientos"`
}
