// Package service implements task mutations (create, update, status change, assignment) with their
// activity audit trail, and the task read models.
package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"projectboard/internal/activity"
	activitydomain "projectboard/internal/activity/domain"
	"projectboard/internal/platform/apperr"
	"projectboard/internal/platform/rbac"
	"projectboard/internal/task/repository"
	"projectboard/internal/telemetry"
	teldomain "projectboard/internal/telemetry/domain"
)

const tracerName = "projectboard/task"

// Service owns the task write path. Every mutation runs in one transaction; activities recorded in it
// are exported only after commit.
type Service struct {
	repo     repository.Repository
	authz    *rbac.Authorizer
	recorder *activity.Recorder
	emitter  telemetry.EventEmitter
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewService returns a task service. emitter may be nil to disable activity export; logger may be nil.
func NewService(repo repository.Repository, authz *rbac.Authorizer, recorder *activity.Recorder, emitter telemetry.EventEmitter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:     repo,
		authz:    authz,
		recorder: recorder,
		emitter:  emitter,
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
	}
}

// journal collects the activities recorded inside one transaction.
type journal struct {
	recorder *activity.Recorder
	exec     activity.Executor
	taskID   int64
	actorID  int64
	records  []*activitydomain.Record
}

func (j *journal) record(ctx context.Context, category activitydomain.Category, description string) error {
	rec, err := j.recorder.Record(ctx, j.exec, j.taskID, j.actorID, category, description)
	if err != nil {
		return err
	}
	j.records = append(j.records, rec)
	return nil
}

// export emits committed activities. Must only be called after commit.
func (s *Service) export(ctx context.Context, projectID int64, records []*activitydomain.Record) {
	for _, rec := range records {
		telemetry.EmitAsync(s.emitter, ctx, teldomain.NewActivityEvent(rec, projectID))
	}
}

// fail passes classified errors through and turns anything else into a persistence error carrying msg.
func (s *Service) fail(ctx context.Context, span trace.Span, op string, err error, msg string) error {
	if apperr.IsClassified(err) {
		span.SetStatus(codes.Error, apperr.Message(err, ""))
		return err
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	s.logger.ErrorContext(ctx, "task: "+op+" failed", "error", err)
	return apperr.Persistence(msg, err)
}

// distinctIDs drops non-positive and repeated ids, keeping first-seen order.
func distinctIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
