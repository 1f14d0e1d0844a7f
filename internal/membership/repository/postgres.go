package repository

import (
	"context"
	"database/sql"
	"errors"

	"projectboard/internal/db/sqlc/gen"
	"projectboard/internal/membership/domain"
)

type PostgresRepository struct {
	queries *gen.Queries
}

// NewPostgresRepository returns a membership repository over db, which may be the pool or an open transaction.
func NewPostgresRepository(db gen.DBTX) *PostgresRepository {
	return &PostgresRepository{queries: gen.New(db)}
}

// ProjectExists reports whether a project row exists for projectID.
func (r *PostgresRepository) ProjectExists(ctx context.Context, projectID int64) (bool, error) {
	return r.queries.ProyectoExists(ctx, projectID)
}

// GetMembership returns the membership for the given user and project, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetMembership(ctx context.Context, userID, projectID int64) (*domain.Membership, error) {
	m, err := r.queries.GetMembresia(ctx, gen.GetMembresiaParams{UsuarioID: userID, ProyectoID: projectID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &domain.Membership{
		UserID: m.UsuarioID, ProjectID: m.ProyectoID, Role: domain.Role(m.Rol), CreatedAt: m.FechaAsignacion,
	}, nil
}

// ListMembers returns the members of a project ordered by name.
func (r *PostgresRepository) ListMembers(ctx context.Context, projectID int64) ([]*domain.Member, error) {
	list, err := r.queries.ListMiembrosByProyecto(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Member, len(list))
	for i, m := range list {
		out[i] = &domain.Member{
			UserID: m.UsuarioID, Name: m.Nombre, Email: m.Email, Role: domain.Role(m.Rol), JoinedAt: m.FechaAsignacion,
		}
	}
	return out, nil
}

// CreateMembership persists the membership.
func (r *PostgresRepository) CreateMembership(ctx context.Context, m *domain.Membership) error {
	return r.queries.CreateMembresia(ctx, gen.CreateMembresiaParams{
		UsuarioID: m.UserID, ProyectoID: m.ProjectID, Rol: string(m.Role),
	})
}
