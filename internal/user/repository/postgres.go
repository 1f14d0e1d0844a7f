package repository

import (
	"context"
	"database/sql"
	"errors"

	"projectboard/internal/db"
	"projectboard/internal/db/sqlc/gen"
	"projectboard/internal/user/domain"
)

type PostgresRepository struct {
	db      *sql.DB
	queries *gen.Queries
}

// NewPostgresRepository returns a user repository that uses the given pool for persistence.
func NewPostgresRepository(pool *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: pool, queries: gen.New(pool)}
}

// GetByID returns the user for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := r.queries.GetUsuario(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genUsuarioToDomain(&u), nil
}

// GetByEmail returns the user with the given email, or nil if not found.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := r.queries.GetUsuarioByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genUsuarioToDomain(&u), nil
}

func (r *PostgresRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	row, err := r.queries.CreateUsuario(ctx, gen.CreateUsuarioParams{
		Nombre: u.Name, Email: u.Email, Password: u.PasswordHash,
	})
	if err != nil {
		return nil, err
	}
	return genUsuarioToDomain(&row), nil
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error) {
	var updated *domain.User
	err := db.InTx(ctx, r.db, func(tx *sql.Tx) error {
		q := r.queries.WithTx(tx)
		row, err := q.UpdateUsuarioPerfil(ctx, gen.UpdateUsuarioPerfilParams{ID: u.ID, Nombre: u.Name, Email: u.Email})
		if err != nil {
			return err
		}
		if passwordHash != "" {
			if err := q.UpdateUsuarioPassword(ctx, gen.UpdateUsuarioPasswordParams{ID: u.ID, Password: passwordHash}); err != nil {
				return err
			}
			row.Password = passwordHash
		}
		updated = genUsuarioToDomain(&row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *PostgresRepository) Stats(ctx context.Context, userID int64) (domain.Stats, error) {
	s, err := r.queries.GetUsuarioEstadisticas(ctx, userID)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.Stats{TotalTasks: s.TotalTareas, CompletedTasks: s.TareasCompletadas, TotalProjects: s.TotalProyectos}, nil
}

func genUsuarioToDomain(u *gen.Usuario) *domain.User {
	if u == nil {
		return nil
	}
	return &domain.User{
		ID: u.ID, Name: u.Nombre, Email: u.Email, PasswordHash: u.Password, CreatedAt: u.FechaRegistro,
	}
}
