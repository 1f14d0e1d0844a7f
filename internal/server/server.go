// Package server is the HTTP boundary: a gin router that authenticates requests, binds JSON or form
// bodies, calls the services and maps their errors to status codes.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	activitydomain "projectboard/internal/activity/domain"
	"projectboard/internal/health"
	identityservice "projectboard/internal/identity/service"
	memberdomain "projectboard/internal/membership/domain"
	projectdomain "projectboard/internal/project/domain"
	projectservice "projectboard/internal/project/service"
	"projectboard/internal/server/middleware"
	taskdomain "projectboard/internal/task/domain"
	taskservice "projectboard/internal/task/service"
	userdomain "projectboard/internal/user/domain"
)

// Accounts is the identity service used by the auth and profile routes.
type Accounts interface {
	Register(ctx context.Context, in identityservice.RegisterInput) (*userdomain.User, error)
	Login(ctx context.Context, email, password string) (*identityservice.LoginResult, error)
	Profile(ctx context.Context, userID int64) (*identityservice.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, in identityservice.ProfileInput) (*userdomain.User, error)
}

// Projects is the project service.
type Projects interface {
	Create(ctx context.Context, actorID int64, in projectservice.Input) (*projectdomain.Project, error)
	Update(ctx context.Context, actorID, projectID int64, in projectservice.Input) (*projectdomain.Project, error)
	UpdateStatus(ctx context.Context, actorID, projectID int64, status projectdomain.Status) error
	Delete(ctx context.Context, actorID, projectID int64) error
	List(ctx context.Context, actorID int64) ([]*projectdomain.Summary, error)
	Detail(ctx context.Context, actorID, projectID int64) (*projectservice.Detail, error)
	Members(ctx context.Context, actorID, projectID int64) ([]*memberdomain.Member, error)
	AddMember(ctx context.Context, actorID, projectID, userID int64, role memberdomain.Role) error
	SearchUsers(ctx context.Context, actorID, projectID int64, term string) ([]*projectdomain.UserMatch, error)
}

// TaskCommands is the task write path.
type TaskCommands interface {
	Create(ctx context.Context, actorID int64, in taskservice.CreateInput) (*taskservice.CreateResult, error)
	Update(ctx context.Context, actorID int64, in taskservice.UpdateInput) (string, error)
	UpdateStatus(ctx context.Context, actorID, taskID int64, status taskdomain.Status) (*taskservice.StatusResult, error)
	AssignUser(ctx context.Context, actorID, taskID, userID int64) error
	AppendActivity(ctx context.Context, actorID, taskID int64, category activitydomain.Category, description string) (*activitydomain.Record, error)
}

// TaskQueries is the task read path.
type TaskQueries interface {
	Detail(ctx context.Context, actorID, taskID int64, commentLimit, activityLimit int) (*taskservice.Detail, error)
	Activities(ctx context.Context, actorID, taskID int64) ([]*activitydomain.Record, error)
	ListForUser(ctx context.Context, actorID int64) ([]*taskdomain.View, error)
	Dashboard(ctx context.Context, actorID int64) (*taskservice.Dashboard, error)
}

// Comments appends task comments.
type Comments interface {
	AddComment(ctx context.Context, actorID, taskID int64, text string) (int64, error)
}

// Deps holds the services behind the routes. Health may be nil.
type Deps struct {
	Accounts     Accounts
	Projects     Projects
	Tasks        TaskCommands
	TaskQueries  TaskQueries
	Comments     Comments
	Tokens       middleware.TokenValidator
	Health       *health.Checker
	Logger       *slog.Logger
	CookieSecure bool
}

// Server provides the HTTP handlers.
type Server struct {
	engine *gin.Engine
	deps   Deps
	logger *slog.Logger
}

// New constructs the HTTP server with routes and middleware configured.
func New(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Tracing(),
		middleware.RequestLogger(logger),
		middleware.Authenticate(deps.Tokens),
	)

	s := &Server{engine: router, deps: deps, logger: logger}
	s.registerRoutes()
	return s
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	r := s.engine
	r.GET("/healthz", s.handleHealth)
	r.POST("/registro", s.handleRegister)
	r.POST("/login", s.handleLogin)
	r.GET("/logout", s.handleLogout)

	authed := r.Group("", s.requireLogin)
	{
		authed.GET("/perfil", s.handleProfile)
		authed.POST("/perfil", s.handleUpdateProfile)
		authed.GET("/dashboard", s.handleDashboard)

		projects := authed.Group("/proyectos")
		{
			projects.GET("", s.handleListProjects)
			projects.POST("", s.handleCreateProject)
			projects.GET("/:id", s.handleProjectDetail)
			projects.PUT("/:id/estado", s.handleProjectStatus)
			projects.POST("/editar/:id", s.handleUpdateProject)
			projects.POST("/eliminar/:id", s.handleDeleteProject)
		}

		tasks := authed.Group("/tareas")
		{
			tasks.GET("", s.handleListMyTasks)
			tasks.POST("", s.handleCreateTask)
			tasks.POST("/comentarios", s.handleAddComment)
			tasks.POST("/asignar", s.handleAssignUser)
			tasks.GET("/:id", s.handleTaskDetail)
			tasks.PUT("/:id", s.handleUpdateTask)
			tasks.PUT("/:id/estado", s.handleTaskStatus)
		}

		authed.GET("/actividades/:tareaId", s.handleListActivities)
		authed.POST("/actividades", s.handleCreateActivity)

		api := authed.Group("/api")
		{
			api.GET("/usuarios/buscar", s.handleSearchUsers)
			api.POST("/proyectos/agregar-a-proyecto", s.handleAddMember)
			api.GET("/proyectos/:id/miembros", s.handleListMembers)
		}
	}
}

// handleHealth reports liveness and, when configured, database and policy readiness.
func (s *Server) handleHealth(c *gin.Context) {
	if s.deps.Health == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	report := s.deps.Health.Check(c.Request.Context())
	if !report.Ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "failed": report.Failed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
