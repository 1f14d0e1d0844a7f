package otel

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"projectboard/internal/telemetry"
	"projectboard/internal/telemetry/domain"
)

const instrumentationName = "projectboard.activity"

// recordEmitter is the part of otellog.Logger used by the emitter.
type recordEmitter interface {
	Emit(ctx context.Context, rec otellog.Record)
}

// NewEventEmitter returns an EventEmitter that writes events as OTel log records via provider
// and counts them on the global MeterProvider. If provider is nil, returns a no-op emitter.
func NewEventEmitter(provider *sdklog.LoggerProvider) telemetry.EventEmitter {
	if provider == nil {
		return noopEmitter{}
	}
	return NewEventEmitterWithLogger(provider.Logger(instrumentationName))
}

// NewEventEmitterWithLogger returns an EventEmitter that writes to logger.
func NewEventEmitterWithLogger(logger recordEmitter) telemetry.EventEmitter {
	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"projectboard.activities.exported",
		metric.WithDescription("Activity records exported after commit"),
	)
	if err != nil {
		slog.Warn("telemetry: activity counter unavailable", "error", err)
	}
	return &otelEmitter{logger: logger, counter: counter}
}

type noopEmitter struct{}

func (noopEmitter) Emit(context.Context, *domain.ActivityEvent) error { return nil }

type otelEmitter struct {
	logger  recordEmitter
	counter metric.Int64Counter
}

// Emit converts the event to an OTel log record with the description as body.
func (e *otelEmitter) Emit(ctx context.Context, event *domain.ActivityEvent) error {
	if event == nil {
		return nil
	}
	rec := otellog.Record{}
	ts := event.CreatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	rec.SetTimestamp(ts)
	rec.SetSeverity(otellog.SeverityInfo)
	if event.Description != "" {
		rec.SetBody(otellog.StringValue(event.Description))
	}
	rec.AddAttributes(
		otellog.Int64("task_id", event.TaskID),
		otellog.Int64("project_id", event.ProjectID),
		otellog.Int64("actor_id", event.ActorID),
	)
	if event.ActivityID > 0 {
		rec.AddAttributes(otellog.Int64("activity_id", event.ActivityID))
	}
	if event.Category != "" {
		rec.AddAttributes(otellog.String("category", event.Category))
	}
	if event.EventID != "" {
		rec.AddAttributes(otellog.String("event_id", event.EventID))
	}
	e.logger.Emit(ctx, rec)
	if e.counter != nil {
		e.counter.Add(ctx, 1, metric.WithAttributes(attribute.String("category", event.Category)))
	}
	return nil
}
