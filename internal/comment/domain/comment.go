package domain

import "time"

// Comment is an append-only note on a task.
type Comment struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"tarea_id"`
	UserID    int64     `json:"usuario_id"`
	UserName  string    `json:"usuario_nombre,omitempty"`
	Text      string    `json:"comentario"`
	CreatedAt time.Time `json:"fecha_creacion"`
}
