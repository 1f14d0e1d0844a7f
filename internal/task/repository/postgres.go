package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"projectboard/internal/activity"
	"projectboard/internal/db"
	"projectboard/internal/db/sqlc/gen"
	memberrepo "projectboard/internal/membership/repository"
	"projectboard/internal/task/domain"
)

type PostgresRepository struct {
	*memberrepo.PostgresRepository
	pool    *sql.DB
	queries *gen.Queries
}

// NewPostgresRepository returns a task repository backed by the pool.
func NewPostgresRepository(pool *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		PostgresRepository: memberrepo.NewPostgresRepository(pool),
		pool:               pool,
		queries:            gen.New(pool),
	}
}

// WithTx runs fn inside a transaction on the pool.
func (r *PostgresRepository) WithTx(ctx context.Context, fn func(tx Tx) error) error {
	return db.InTx(ctx, r.pool, func(sqlTx *sql.Tx) error {
		return fn(&postgresTx{
			PostgresRepository: memberrepo.NewPostgresRepository(sqlTx),
			queries:            r.queries.WithTx(sqlTx),
		})
	})
}

// Activities returns the pool-bound executor.
func (r *PostgresRepository) Activities() activity.Executor {
	return r.queries
}

// GetByID returns the task for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	t, err := r.queries.GetTarea(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genTareaToDomain(&t), nil
}

// GetView returns the task with its project and responsible names, or nil if not found.
func (r *PostgresRepository) GetView(ctx context.Context, id int64) (*domain.View, error) {
	row, err := r.queries.GetTareaDetalle(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &domain.View{
		Task: *genTareaToDomain(&gen.Tarea{
			ID: row.ID, ProyectoID: row.ProyectoID, Titulo: row.Titulo, Descripcion: row.Descripcion,
			ResponsableID: row.ResponsableID, Prioridad: row.Prioridad, FechaVencimiento: row.FechaVencimiento,
			Estado: row.Estado, FechaCreacion: row.FechaCreacion,
		}),
		ProjectName:     row.ProyectoNombre,
		ResponsibleName: row.ResponsableNombre.String,
	}, nil
}

// ListByProject returns the tasks of projectID.
func (r *PostgresRepository) ListByProject(ctx context.Context, projectID int64) ([]*domain.View, error) {
	list, err := r.queries.ListTareasByProyecto(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.View, len(list))
	for i, row := range list {
		out[i] = &domain.View{
			Task: *genTareaToDomain(&gen.Tarea{
				ID: row.ID, ProyectoID: row.ProyectoID, Titulo: row.Titulo, Descripcion: row.Descripcion,
				ResponsableID: row.ResponsableID, Prioridad: row.Prioridad, FechaVencimiento: row.FechaVencimiento,
				Estado: row.Estado, FechaCreacion: row.FechaCreacion,
			}),
			ResponsibleName: row.ResponsableNombre.String,
		}
	}
	return out, nil
}

// ListForUser returns tasks where userID is responsible or assigned.
func (r *PostgresRepository) ListForUser(ctx context.Context, userID int64) ([]*domain.View, error) {
	list, err := r.queries.ListTareasByUsuario(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.View, len(list))
	for i, row := range list {
		out[i] = &domain.View{
			Task: *genTareaToDomain(&gen.Tarea{
				ID: row.ID, ProyectoID: row.ProyectoID, Titulo: row.Titulo, Descripcion: row.Descripcion,
				ResponsableID: row.ResponsableID, Prioridad: row.Prioridad, FechaVencimiento: row.FechaVencimiento,
				Estado: row.Estado, FechaCreacion: row.FechaCreacion,
			}),
			ProjectName:     row.ProyectoNombre,
			ResponsibleName: row.ResponsableNombre.String,
		}
	}
	return out, nil
}

// ListPriority returns up to limit pending tasks assigned to userID, highest priority and nearest due date first.
func (r *PostgresRepository) ListPriority(ctx context.Context, userID int64, limit int) ([]*domain.View, error) {
	list, err := r.queries.ListTareasPrioritarias(ctx, gen.ListTareasPrioritariasParams{UsuarioID: userID, Limit: int32(limit)})
	if err != nil {
		return nil, err
	}
	out := make([]*domain.View, len(list))
	for i, row := range list {
		out[i] = &domain.View{
			Task: *genTareaToDomain(&gen.Tarea{
				ID: row.ID, ProyectoID: row.ProyectoID, Titulo: row.Titulo, Descripcion: row.Descripcion,
				ResponsableID: row.ResponsableID, Prioridad: row.Prioridad, FechaVencimiento: row.FechaVencimiento,
				Estado: row.Estado, FechaCreacion: row.FechaCreacion,
			}),
			ProjectName: row.ProyectoNombre,
		}
	}
	return out, nil
}

// DashboardStats returns the pending and due-this-week counters of userID.
func (r *PostgresRepository) DashboardStats(ctx context.Context, userID int64) (domain.DashboardStats, error) {
	row, err := r.queries.GetDashboardEstadisticas(ctx, userID)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	return domain.DashboardStats{Pending: row.TareasPendientes, DueThisWeek: row.ProximosVencimientos}, nil
}

// ListAssignees returns the users assigned to taskID.
func (r *PostgresRepository) ListAssignees(ctx context.Context, taskID int64) ([]*domain.Assignee, error) {
	list, err := r.queries.ListAsignadosByTarea(ctx, taskID)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Assignee, len(list))
	for i, a := range list {
		out[i] = &domain.Assignee{ID: a.ID, Name: a.Nombre, Email: a.Email}
	}
	return out, nil
}

type postgresTx struct {
	*memberrepo.PostgresRepository
	queries *gen.Queries
}

func (t *postgresTx) Activities() activity.Executor {
	return t.queries
}

// GetForUpdate loads the task with SELECT ... FOR UPDATE, or nil if not found.
func (t *postgresTx) GetForUpdate(ctx context.Context, taskID int64) (*domain.Task, error) {
	row, err := t.queries.GetTareaForUpdate(ctx, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genTareaToDomain(&row), nil
}

func (t *postgresTx) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	row, err := t.queries.CreateTarea(ctx, gen.CreateTareaParams{
		ProyectoID:       task.ProjectID,
		Titulo:           task.Title,
		Descripcion:      nullString(task.Description),
		ResponsableID:    nullInt64(task.ResponsibleID),
		Prioridad:        nullString(string(task.Priority)),
		FechaVencimiento: nullTime(task.DueDate),
		Estado:           string(task.Status),
	})
	if err != nil {
		return nil, err
	}
	return genTareaToDomain(&row), nil
}

func (t *postgresTx) Update(ctx context.Context, task *domain.Task) error {
	return t.queries.UpdateTarea(ctx, gen.UpdateTareaParams{
		ID:               task.ID,
		Titulo:           task.Title,
		Descripcion:      nullString(task.Description),
		ResponsableID:    nullInt64(task.ResponsibleID),
		Prioridad:        nullString(string(task.Priority)),
		FechaVencimiento: nullTime(task.DueDate),
		Estado:           string(task.Status),
	})
}

func (t *postgresTx) UpdateStatus(ctx context.Context, taskID int64, status domain.Status) error {
	return t.queries.UpdateTareaEstado(ctx, gen.UpdateTareaEstadoParams{ID: taskID, Estado: string(status)})
}

func (t *postgresTx) UserName(ctx context.Context, userID int64) (string, bool, error) {
	name, err := t.queries.GetUsuarioNombre(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return name, true, nil
}

func (t *postgresTx) AssigneeIDs(ctx context.Context, taskID int64) ([]int64, error) {
	return t.queries.ListAsignadosIDsByTarea(ctx, taskID)
}

func (t *postgresTx) IsAssigned(ctx context.Context, userID, taskID int64) (bool, error) {
	return t.queries.UsuarioTareaExists(ctx, gen.UsuarioTareaExistsParams{UsuarioID: userID, TareaID: taskID})
}

func (t *postgresTx) AddAssignee(ctx context.Context, userID, taskID int64) error {
	return t.queries.CreateUsuarioTarea(ctx, gen.CreateUsuarioTareaParams{UsuarioID: userID, TareaID: taskID})
}

func (t *postgresTx) RemoveAssignee(ctx context.Context, userID, taskID int64) error {
	return t.queries.DeleteUsuarioTarea(ctx, gen.DeleteUsuarioTareaParams{UsuarioID: userID, TareaID: taskID})
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt64(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func nullTime(p *time.Time) sql.NullTime {
	if p == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *p, Valid: true}
}

func genTareaToDomain(t *gen.Tarea) *domain.Task {
	out := &domain.Task{
		ID:          t.ID,
		ProjectID:   t.ProyectoID,
		Title:       t.Titulo,
		Description: t.Descripcion.String,
		Priority:    domain.Priority(t.Prioridad.String),
		Status:      domain.Status(t.Estado),
		CreatedAt:   t.FechaCreacion,
	}
	if t.ResponsableID.Valid {
		id := t.ResponsableID.Int64
		out.ResponsibleID = &id
	}
	if t.FechaVencimiento.Valid {
		d := t.FechaVencimiento.Time.UTC()
		d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		out.DueDate = &d
	}
	return out
}
