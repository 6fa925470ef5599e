package workers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/e"
)

type EventSource interface {
	Dequeue(ctx context.Context, timeout time.Duration) (domain.ReportEvent, error)
}

type EventHandler interface {
	Dispatch(ctx context.Context, ev domain.ReportEvent)
}

// Dispatcher drains the report-event queue and hands each event to the
// fan-out. It runs outside the request path so notification I/O never blocks
// a create or comment.
type Dispatcher struct {
	source  EventSource
	handler EventHandler
	logger  *slog.Logger
}

func NewDispatcher(source EventSource, handler EventHandler, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{source: source, handler: handler, logger: logger}
}

func (d *Dispatcher) Run(ctx context.Context) {
	d.logger.Info("notification dispatcher started")

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("notification dispatcher stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		ev, err := d.source.Dequeue(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) || errors.Is(err, context.Canceled) {
				continue
			}
			d.logger.Error("dequeue failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		d.handler.Dispatch(ctx, ev)
	}
}
