package repository

import (
	"context"
	"database/sql"

	"projectboard/internal/activity/domain"
	"projectboard/internal/db/sqlc/gen"
)

type PostgresRepository struct {
	queries *gen.Queries
}

// NewPostgresRepository returns an activity repository that uses the given db for reads.
func NewPostgresRepository(db gen.DBTX) *PostgresRepository {
	return &PostgresRepository{queries: gen.New(db)}
}

// ListByTask returns the activities of taskID newest first, at most limit when limit > 0.
func (r *PostgresRepository) ListByTask(ctx context.Context, taskID int64, limit int) ([]*domain.Record, error) {
	rowLimit := sql.NullInt32{}
	if limit > 0 {
		rowLimit = sql.NullInt32{Int32: int32(limit), Valid: true}
	}
	list, err := r.queries.ListActividadesByTarea(ctx, gen.ListActividadesByTareaParams{TareaID: taskID, RowLimit: rowLimit})
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Record, len(list))
	for i, a := range list {
		out[i] = &domain.Record{
			ID: a.ID, TaskID: a.TareaID, ActorID: a.UsuarioID, ActorName: a.UsuarioNombre,
			Category: domain.Category(a.TipoActividad), Description: a.Descripcion, CreatedAt: a.FechaActividad,
		}
	}
	return out, nil
}

// CountByTask returns the total number of activities recorded for taskID.
func (r *PostgresRepository) CountByTask(ctx context.Context, taskID int64) (int64, error) {
	return r.queries.CountActividadesByTarea(ctx, taskID)
}

// ListRecent returns the latest activities relevant to userID.
func (r *PostgresRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]*domain.RecentRecord, error) {
	list, err := r.queries.ListActividadesRecientes(ctx, gen.ListActividadesRecientesParams{UsuarioID: userID, Limit: int32(limit)})
	if err != nil {
		return nil, err
	}
	out := make([]*domain.RecentRecord, len(list))
	for i, a := range list {
		out[i] = &domain.RecentRecord{
			Record: domain.Record{
				ID: a.ID, TaskID: a.TareaID, ActorID: a.UsuarioID, ActorName: a.UsuarioNombre,
				Category: domain.Category(a.TipoActividad), Description: a.Descripcion, CreatedAt: a.FechaActividad,
			},
			TaskTitle: a.TareaTitulo, ProjectID: a.ProyectoID, ProjectName: a.ProyectoNombre,
		}
	}
	return out, nil
}
