package telemetry

import (
	"context"
	"log/slog"
	"time"

	"projectboard/internal/telemetry/domain"
)

// emitTimeout is the max time allowed for a single async emit.
const emitTimeout = 5 * time.Second

// ShutdownDrainDuration is how long the server waits after the HTTP listener stops before shutting down
// OTel providers and the Kafka writer, so in-flight async emits can finish. Must be >= emitTimeout.
const ShutdownDrainDuration = emitTimeout

// EmitAsync runs Emit in a goroutine so the caller is not blocked.
//
// emitter and event may be nil; EmitAsync then returns without starting a goroutine.
// The goroutine uses context.Background() with emitTimeout so request cancellation does not abort the emit.
func EmitAsync(emitter EventEmitter, ctx context.Context, event *domain.ActivityEvent) {
	if emitter == nil || event == nil {
		return
	}
	go func() {
		emitCtx, cancel := context.WithTimeout(context.Background(), emitTimeout)
		defer cancel()
		if err := emitter.Emit(emitCtx, event); err != nil {
			slog.Warn("telemetry: async emit failed", "task_id", event.TaskID, "error", err)
		}
	}()
}
