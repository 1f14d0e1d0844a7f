package main

import (
	"context"
	"crypto"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"

	"projectboard/internal/activity"
	activityrepo "projectboard/internal/activity/repository"
	commentrepo "projectboard/internal/comment/repository"
	commentservice "projectboard/internal/comment/service"
	"projectboard/internal/config"
	"projectboard/internal/db"
	"projectboard/internal/health"
	healthhandler "projectboard/internal/health/handler"
	identityservice "projectboard/internal/identity/service"
	"projectboard/internal/logging"
	"projectboard/internal/platform/rbac"
	"projectboard/internal/policy/engine"
	projectrepo "projectboard/internal/project/repository"
	projectservice "projectboard/internal/project/service"
	"projectboard/internal/security"
	"projectboard/internal/server"
	taskrepo "projectboard/internal/task/repository"
	taskservice "projectboard/internal/task/service"
	"projectboard/internal/telemetry"
	telemetryotel "projectboard/internal/telemetry/otel"
	"projectboard/internal/telemetry/producer"
	userrepo "projectboard/internal/user/repository"
)

const serviceName = "projectboard"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger := logging.Install(logging.New(os.Stdout, cfg.SlogLevel()))
	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := telemetryotel.NewProviders(ctx, cfg.OTLPEndpoint, serviceName, cfg.OTLPInsecure)
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	providers.SetGlobal()

	pool, err := db.Open(cfg.DatabaseURL, cfg.DBMaxOpenConns)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	source, err := engine.LoadPolicy(cfg.PolicyFile)
	if err != nil {
		return err
	}
	evaluator, err := engine.NewOPAEvaluator(ctx, source)
	if err != nil {
		return fmt.Errorf("policy: %w", err)
	}
	authz := rbac.NewAuthorizer(evaluator)

	tokens, err := newTokenProvider(cfg, logger)
	if err != nil {
		return fmt.Errorf("tokens: %w", err)
	}

	kafkaProducer, err := producer.NewKafkaProducer(cfg.KafkaBrokersList(), cfg.ActivityKafkaTopic)
	if err != nil {
		return fmt.Errorf("kafka: %w", err)
	}
	emitters := []telemetry.EventEmitter{telemetryotel.NewEventEmitter(providers.LoggerProvider)}
	if kafkaProducer != nil {
		emitters = append(emitters, kafkaProducer)
		logger.Info("activity export to kafka enabled", "topic", cfg.ActivityKafkaTopic)
	}
	emitter := telemetry.Multi(emitters...)

	users := userrepo.NewPostgresRepository(pool)
	projects := projectrepo.NewPostgresRepository(pool)
	tasks := taskrepo.NewPostgresRepository(pool)
	comments := commentrepo.NewPostgresRepository(pool)
	activities := activityrepo.NewPostgresRepository(pool)

	checker := health.NewChecker(pool, evaluator)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := server.New(server.Deps{
		Accounts:     identityservice.NewAuthService(users, security.NewHasher(cfg.BcryptCost), tokens, logger),
		Projects:     projectservice.NewService(projects, tasks, authz, logger),
		Tasks:        taskservice.NewService(tasks, authz, activity.NewRecorder(), emitter, logger),
		TaskQueries:  taskservice.NewQueryService(tasks, comments, activities, authz, logger),
		Comments:     commentservice.NewService(comments, tasks, authz, logger),
		Tokens:       tokens,
		Health:       checker,
		Logger:       logger,
		CookieSecure: cfg.CookieSecure || cfg.IsProduction(),
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 2)
	go func() {
		logger.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http: %w", err)
		}
	}()

	var grpcServer *grpc.Server
	if cfg.GRPCAddr != "" {
		lis, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			return fmt.Errorf("grpc listen: %w", err)
		}
		grpcServer = server.NewGRPCServer(healthhandler.NewServer(checker))
		go func() {
			logger.Info("grpc health server listening", "addr", cfg.GRPCAddr)
			if err := grpcServer.Serve(lis); err != nil {
				errCh <- fmt.Errorf("grpc: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}

	// Let post-commit activity exports finish before their sinks close.
	time.Sleep(telemetry.ShutdownDrainDuration)
	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("kafka close", "error", err)
		}
	}
	if err := providers.Shutdown(shutdownCtx); err != nil {
		logger.Error("otel shutdown", "error", err)
	}
	logger.Info("server stopped")
	return runErr
}

// newTokenProvider uses the configured key pair, or an ephemeral ECDSA key outside production.
func newTokenProvider(cfg *config.Config, logger *slog.Logger) (*security.TokenProvider, error) {
	var (
		signer crypto.Signer
		pub    crypto.PublicKey
		err    error
	)
	if cfg.JWTPrivateKey == "" {
		if cfg.IsProduction() {
			return nil, errors.New("JWT_PRIVATE_KEY is required in production")
		}
		logger.Warn("no JWT key configured; using an ephemeral key, sessions end on restart")
		if signer, err = security.GenerateDevKey(); err != nil {
			return nil, err
		}
		pub = signer.Public()
	} else {
		if signer, err = security.ParsePrivateKey(cfg.JWTPrivateKey); err != nil {
			return nil, err
		}
		if pub, err = security.ParsePublicKey(cfg.JWTPublicKey); err != nil {
			return nil, err
		}
	}
	return security.NewTokenProvider(signer, pub, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL())
}
