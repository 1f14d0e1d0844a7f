package repository

import (
	"context"
	"database/sql"

	"projectboard/internal/comment/domain"
	"projectboard/internal/db/sqlc/gen"
)

type PostgresRepository struct {
	queries *gen.Queries
}

// NewPostgresRepository returns a comment repository that uses the given db for persistence.
func NewPostgresRepository(db gen.DBTX) *PostgresRepository {
	return &PostgresRepository{queries: gen.New(db)}
}

// Create persists the comment.
func (r *PostgresRepository) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	row, err := r.queries.CreateComentario(ctx, gen.CreateComentarioParams{
		TareaID: c.TaskID, UsuarioID: c.UserID, Comentario: c.Text,
	})
	if err != nil {
		return nil, err
	}
	return &domain.Comment{
		ID: row.ID, TaskID: row.TareaID, UserID: row.UsuarioID, Text: row.Comentario, CreatedAt: row.FechaCreacion,
	}, nil
}

// ListByTask returns the comments of taskID with author names, newest first.
func (r *PostgresRepository) ListByTask(ctx context.Context, taskID int64, limit int) ([]*domain.Comment, error) {
	rowLimit := sql.NullInt32{}
	if limit > 0 {
		rowLimit = sql.NullInt32{Int32: int32(limit), Valid: true}
	}
	list, err := r.queries.ListComentariosByTarea(ctx, gen.ListComentariosByTareaParams{TareaID: taskID, RowLimit: rowLimit})
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Comment, len(list))
	for i, c := range list {
		out[i] = &domain.Comment{
			ID: c.ID, TaskID: c.TareaID, UserID: c.UsuarioID, UserName: c.UsuarioNombre,
			Text: c.Comentario, CreatedAt: c.FechaCreacion,
		}
	}
	return out, nil
}

// CountByTask returns the number of comments on taskID.
func (r *PostgresRepository) CountByTask(ctx context.Context, taskID int64) (int64, error) {
	return r.queries.CountComentariosByTarea(ctx, taskID)
}
