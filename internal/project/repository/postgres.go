package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"projectboard/internal/db"
	"projectboard/internal/db/sqlc/gen"
	memberdomain "projectboard/internal/membership/domain"
	memberrepo "projectboard/internal/membership/repository"
	"projectboard/internal/project/domain"
)

type PostgresRepository struct {
	*memberrepo.PostgresRepository
	db      *sql.DB
	queries *gen.Queries
}

// NewPostgresRepository returns a project repository that uses the given pool for persistence.
func NewPostgresRepository(pool *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		PostgresRepository: memberrepo.NewPostgresRepository(pool),
		db:                 pool,
		queries:            gen.New(pool),
	}
}

// CreateWithOwner inserts the project and the creator's admin membership atomically.
func (r *PostgresRepository) CreateWithOwner(ctx context.Context, p *domain.Project, ownerID int64) (*domain.Project, error) {
	var created *domain.Project
	err := db.InTx(ctx, r.db, func(tx *sql.Tx) error {
		q := r.queries.WithTx(tx)
		row, err := q.CreateProyecto(ctx, gen.CreateProyectoParams{
			Nombre:      p.Name,
			Descripcion: nullString(p.Description),
			FechaInicio: nullTime(p.StartDate),
			FechaFin:    nullTime(p.EndDate),
			Estado:      string(p.Status),
			CreadoPor:   sql.NullInt64{Int64: ownerID, Valid: true},
		})
		if err != nil {
			return err
		}
		if err := q.CreateMembresia(ctx, gen.CreateMembresiaParams{
			UsuarioID: ownerID, ProyectoID: row.ID, Rol: string(memberdomain.RoleAdmin),
		}); err != nil {
			return err
		}
		created = genProyectoToDomain(&row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetByID returns the project for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := r.queries.GetProyecto(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genProyectoToDomain(&p), nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	row, err := r.queries.UpdateProyecto(ctx, gen.UpdateProyectoParams{
		ID:          p.ID,
		Nombre:      p.Name,
		Descripcion: nullString(p.Description),
		FechaInicio: nullTime(p.StartDate),
		FechaFin:    nullTime(p.EndDate),
		Estado:      string(p.Status),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genProyectoToDomain(&row), nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) (bool, error) {
	n, err := r.queries.UpdateProyectoEstado(ctx, gen.UpdateProyectoEstadoParams{ID: id, Estado: string(status)})
	return n > 0, err
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.queries.DeleteProyecto(ctx, id)
	return n > 0, err
}

// ListForUser returns the projects userID belongs to, newest first.
func (r *PostgresRepository) ListForUser(ctx context.Context, userID int64) ([]*domain.Summary, error) {
	rows, err := r.queries.ListProyectosByUsuario(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Summary, len(rows))
	for i, row := range rows {
		out[i] = &domain.Summary{
			Project: *genProyectoToDomain(&gen.Proyecto{
				ID: row.ID, Nombre: row.Nombre, Descripcion: row.Descripcion, FechaInicio: row.FechaInicio,
				FechaFin: row.FechaFin, Estado: row.Estado, CreadoPor: row.CreadoPor, FechaCreacion: row.FechaCreacion,
			}),
			Role:       memberdomain.Role(row.Rol),
			TotalTasks: row.TotalTareas,
		}
	}
	return out, nil
}

func (r *PostgresRepository) UserExists(ctx context.Context, userID int64) (bool, error) {
	_, err := r.queries.GetUsuarioNombre(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PostgresRepository) SearchUsersOutside(ctx context.Context, projectID int64, term string, limit int) ([]*domain.UserMatch, error) {
	rows, err := r.queries.SearchUsuariosFueraDeProyecto(ctx, gen.SearchUsuariosFueraDeProyectoParams{
		Pattern:    "%" + escapeLike(term) + "%",
		ProyectoID: projectID,
		RowLimit:   int32(limit),
	})
	if err != nil {
		return nil, err
	}
	out := make([]*domain.UserMatch, len(rows))
	for i, row := range rows {
		out[i] = &domain.UserMatch{ID: row.ID, Name: row.Nombre, Email: row.Email}
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes term match literally inside an ILIKE pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func genProyectoToDomain(p *gen.Proyecto) *domain.Project {
	if p == nil {
		return nil
	}
	out := &domain.Project{
		ID: p.ID, Name: p.Nombre, Description: p.Descripcion.String,
		Status: domain.Status(p.Estado), CreatedAt: p.FechaCreacion,
	}
	if p.FechaInicio.Valid {
		t := p.FechaInicio.Time
		out.StartDate = &t
	}
	if p.FechaFin.Valid {
		t := p.FechaFin.Time
		out.EndDate = &t
	}
	if p.CreadoPor.Valid {
		id := p.CreadoPor.Int64
		out.CreatedBy = &id
	}
	return out
}
