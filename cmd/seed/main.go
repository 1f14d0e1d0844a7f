// seed inserts development sample data: three users, one project with its members and a few tasks.
// Idempotent: skips everything if the dev user (dev@example.com) already exists.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"projectboard/internal/activity"
	"projectboard/internal/config"
	"projectboard/internal/db"
	identityservice "projectboard/internal/identity/service"
	"projectboard/internal/logging"
	memberdomain "projectboard/internal/membership/domain"
	"projectboard/internal/platform/rbac"
	"projectboard/internal/policy/engine"
	projectrepo "projectboard/internal/project/repository"
	projectservice "projectboard/internal/project/service"
	"projectboard/internal/security"
	taskdomain "projectboard/internal/task/domain"
	taskrepo "projectboard/internal/task/repository"
	taskservice "projectboard/internal/task/service"
	userdomain "projectboard/internal/user/domain"
	userrepo "projectboard/internal/user/repository"
)

const (
	devUserEmail = "dev@example.com"
	devPassword  = "password123"
)

type seedUser struct {
	name  string
	email string
	role  memberdomain.Role
}

var members = []seedUser{
	{"Marta Editora", "editor@example.com", memberdomain.RoleEditor},
	{"Luis Miembro", "member@example.com", memberdomain.RoleMember},
	{"Olga Observadora", "observer@example.com", memberdomain.RoleObserver},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger := logging.Install(logging.New(os.Stdout, cfg.SlogLevel()))
	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is not set; create a .env or export DATABASE_URL")
		os.Exit(1)
	}
	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	pool, err := db.Open(cfg.DatabaseURL, 2)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer pool.Close()

	users := userrepo.NewPostgresRepository(pool)
	existing, err := users.GetByEmail(ctx, devUserEmail)
	if err != nil {
		return fmt.Errorf("seed check: %w", err)
	}
	if existing != nil {
		logger.Info("seed already applied; skipping", "email", devUserEmail)
		return nil
	}

	evaluator, err := engine.NewOPAEvaluator(ctx, engine.DefaultRegoPolicy)
	if err != nil {
		return err
	}
	authz := rbac.NewAuthorizer(evaluator)
	signer, err := security.GenerateDevKey()
	if err != nil {
		return err
	}
	tokens, err := security.NewTokenProvider(signer, signer.Public(), cfg.JWTIssuer, cfg.JWTAudience, time.Minute)
	if err != nil {
		return err
	}
	accounts := identityservice.NewAuthService(users, security.NewHasher(cfg.BcryptCost), tokens, logger)
	tasks := taskrepo.NewPostgresRepository(pool)
	projects := projectservice.NewService(projectrepo.NewPostgresRepository(pool), tasks, authz, logger)
	taskSvc := taskservice.NewService(tasks, authz, activity.NewRecorder(), nil, logger)

	owner, err := register(ctx, accounts, "Dev User", devUserEmail)
	if err != nil {
		return err
	}
	start := time.Now().UTC().Truncate(24 * time.Hour)
	project, err := projects.Create(ctx, owner.ID, projectservice.Input{
		Name:        "Sitio web corporativo",
		Description: "Rediseño del sitio y migración de contenidos",
		StartDate:   &start,
	})
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	ids := make(map[memberdomain.Role]int64)
	for _, m := range members {
		u, err := register(ctx, accounts, m.name, m.email)
		if err != nil {
			return err
		}
		if err := projects.AddMember(ctx, owner.ID, project.ID, u.ID, m.role); err != nil {
			return fmt.Errorf("add member %s: %w", m.email, err)
		}
		ids[m.role] = u.ID
	}

	var first int64
	due := start.AddDate(0, 0, 5)
	editorID, memberID := ids[memberdomain.RoleEditor], ids[memberdomain.RoleMember]
	for _, in := range []taskservice.CreateInput{
		{Title: "Definir mapa del sitio", Priority: taskdomain.PriorityHigh, ResponsibleID: &editorID, DueDate: &due, AssigneeIDs: []int64{memberID}},
		{Title: "Migrar blog", Description: "Exportar entradas del CMS anterior", Priority: taskdomain.PriorityMedium},
		{Title: "Revisar accesibilidad", Priority: taskdomain.PriorityLow, AssigneeIDs: []int64{editorID, memberID}},
	} {
		in.ProjectID = project.ID
		res, err := taskSvc.Create(ctx, owner.ID, in)
		if err != nil {
			return fmt.Errorf("create task %q: %w", in.Title, err)
		}
		logger.Info("seeded task", "task_id", res.TaskID, "title", in.Title)
		if first == 0 {
			first = res.TaskID
		}
	}
	if _, err := taskSvc.UpdateStatus(ctx, memberID, first, taskdomain.StatusInProgress); err != nil {
		return fmt.Errorf("start task: %w", err)
	}

	logger.Info("seed complete", "project_id", project.ID, "login", devUserEmail, "password", devPassword)
	return nil
}

func register(ctx context.Context, accounts *identityservice.AuthService, name, email string) (*userdomain.User, error) {
	u, err := accounts.Register(ctx, identityservice.RegisterInput{
		Name:            name,
		Email:           email,
		Password:        devPassword,
		ConfirmPassword: devPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", email, err)
	}
	return u, nil
}
