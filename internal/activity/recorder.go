// Package activity appends entries to the per-task activity log.
package activity

import (
	"context"

	"projectboard/internal/activity/domain"
	"projectboard/internal/db/sqlc/gen"
)

// Executor inserts one activity row. *gen.Queries satisfies it whether bound to the pool or to a transaction.
type Executor interface {
	CreateActividad(ctx context.Context, arg gen.CreateActividadParams) (gen.ActividadesTarea, error)
}

// Recorder appends activity records through the executor it is handed. It never opens, commits or
// rolls back a transaction; the caller owns that.
type Recorder struct{}

// NewRecorder returns a Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record inserts one activity row and returns it as stored. Errors from exec are returned unchanged.
func (r *Recorder) Record(ctx context.Context, exec Executor, taskID, actorID int64, category domain.Category, description string) (*domain.Record, error) {
	a, err := exec.CreateActividad(ctx, gen.CreateActividadParams{
		TareaID: taskID, UsuarioID: actorID, TipoActividad: string(category), Descripcion: description,
	})
	if err != nil {
		return nil, err
	}
	return &domain.Record{
		ID: a.ID, TaskID: a.TareaID, ActorID: a.UsuarioID, Category: domain.Category(a.TipoActividad),
		Description: a.Descripcion, CreatedAt: a.FechaActividad,
	}, nil
}
