package domain

import "time"

// Category classifies an activity record. The set is closed.
type Category string

const (
	CategoryCreation     Category = "creacion"
	CategoryStatusChange Category = "cambio_estado"
	CategoryAssignment   Category = "asignacion"
	CategoryPriority     Category = "prioridad"
	CategoryDueDate      Category = "fecha"
	CategoryOther        Category = "otro"
	CategoryComment      Category = "comentario"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryCreation, CategoryStatusChange, CategoryAssignment, CategoryPriority,
		CategoryDueDate, CategoryOther, CategoryComment:
		return true
	}
	return false
}

// Record is one immutable entry of a task's activity log.
type Record struct {
	ID          int64     `json:"id"`
	TaskID      int64     `json:"tarea_id"`
	ActorID     int64     `json:"usuario_id"`
	ActorName   string    `json:"usuario_nombre,omitempty"`
	Category    Category  `json:"tipo_actividad"`
	Description string    `json:"descripcion"`
	CreatedAt   time.Time `json:"fecha_actividad"`
}

// RecentRecord is a Record joined with its task and project, as shown on the dashboard.
type RecentRecord struct {
	Record
	TaskTitle   string `json:"tarea_titulo"`
	ProjectID   int64  `json:"proyecto_id"`
	ProjectName string `json:"proyecto_nombre"`
}
