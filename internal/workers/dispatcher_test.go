package workers_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/workers"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/e"
)

type stubSource struct {
	events chan domain.ReportEvent
	errs   chan error
}

func (s *stubSource) Dequeue(ctx context.Context, timeout time.Duration) (domain.ReportEvent, error) {
	select {
	case ev := <-s.events:
		return ev, nil
	case err := <-s.errs:
		return domain.ReportEvent{}, err
	case <-ctx.Done():
		return domain.ReportEvent{}, ctx.Err()
	}
}

type stubHandler struct {
	seen chan domain.ReportEvent
}

func (h *stubHandler) Dispatch(ctx context.Context, ev domain.ReportEvent) {
	h.seen <- ev
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	t.Parallel()

	src := &stubSource{events: make(chan domain.ReportEvent, 2), errs: make(chan error)}
	h := &stubHandler{seen: make(chan domain.ReportEvent, 2)}
	d := workers.NewDispatcher(src, h, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Run(ctx)

	want := domain.ReportEvent{Type: domain.NotificationNewReport, ReportID: uuid.New()}
	src.events <- want

	select {
	case got := <-h.seen:
		if got.ReportID != want.ReportID {
			t.Fatalf("unexpected event %+v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("event never reached handler")
	}
}

func TestDispatcher_SurvivesEmptyAndErrors(t *testing.T) {
	t.Parallel()

	src := &stubSource{events: make(chan domain.ReportEvent, 1), errs: make(chan error, 2)}
	h := &stubHandler{seen: make(chan domain.ReportEvent, 1)}
	d := workers.NewDispatcher(src, h, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Run(ctx)

	// Empty polls and transient errors must not kill the loop.
	src.errs <- e.ErrQueueEmpty
	src.errs <- errors.New("redis gone")

	want := domain.ReportEvent{Type: domain.NotificationNewComment, ReportID: uuid.New()}
	src.events <- want

	select {
	case got := <-h.seen:
		if got.ReportID != want.ReportID {
			t.Fatalf("unexpected event %+v", got)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("dispatcher did not recover")
	}
}

func TestDispatcher_StopsOnCancel(t *testing.T) {
	t.Parallel()

	src := &stubSource{events: make(chan domain.ReportEvent), errs: make(chan error)}
	h := &stubHandler{seen: make(chan domain.ReportEvent)}
	d := workers.NewDispatcher(src, h, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("dispatcher did not stop on cancel")
	}
}
