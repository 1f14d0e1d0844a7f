package telemetry

import (
	"context"
	"errors"

	"projectboard/internal/telemetry/domain"
)

// EventEmitter exports activity events (OTel logs, Kafka). Best-effort; callers log and ignore errors.
type EventEmitter interface {
	Emit(ctx context.Context, event *domain.ActivityEvent) error
}

type multiEmitter []EventEmitter

// Multi returns an EventEmitter that fans each event out to every non-nil emitter.
// Returns nil when no emitter is left, so EmitAsync short-circuits.
func Multi(emitters ...EventEmitter) EventEmitter {
	var out multiEmitter
	for _, e := range emitters {
		if e != nil {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (m multiEmitter) Emit(ctx context.Context, event *domain.ActivityEvent) error {
	var errs []error
	for _, e := range m {
		if err := e.Emit(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
