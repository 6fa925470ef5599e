package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
)

// Fanout expands one report event into per-recipient notifications and pushes
// them through whatever channels each recipient has. Delivery is best effort:
// a failed channel or recipient is logged and skipped, never propagated back
// to the operation that produced the event.
type Fanout struct {
	subs             SubscriberRepository
	push             PushSender
	email            EmailSender
	logger           *slog.Logger
	recipientTimeout time.Duration
}

func NewFanout(
	subs SubscriberRepository,
	push PushSender,
	email EmailSender,
	logger *slog.Logger,
	recipientTimeout time.Duration,
) *Fanout {
	if recipientTimeout <= 0 {
		recipientTimeout = 5 * time.Second
	}
	return &Fanout{
		subs:             subs,
		push:             push,
		email:            email,
		logger:           logger,
		recipientTimeout: recipientTimeout,
	}
}

func (f *Fanout) Dispatch(ctx context.Context, ev domain.ReportEvent) {
	recipients, err := f.recipients(ctx, ev)
	if err != nil {
		f.logger.Error("resolve recipients failed",
			slog.String("type", string(ev.Type)),
			slog.String("report_id", ev.ReportID.String()),
			slog.Any("error", err),
		)
		return
	}
	if len(recipients) == 0 {
		f.logger.Debug("no recipients for event",
			slog.String("type", string(ev.Type)),
			slog.String("report_id", ev.ReportID.String()),
		)
		return
	}

	delivered := 0
	for _, sub := range recipients {
		if ctx.Err() != nil {
			return
		}
		if f.deliver(ctx, sub, buildNotification(ev, sub)) {
			delivered++
		}
	}

	f.logger.Info("fanout done",
		slog.String("type", string(ev.Type)),
		slog.String("report_id", ev.ReportID.String()),
		slog.Int("recipients", len(recipients)),
		slog.Int("delivered", delivered),
	)
}

// recipients resolves the interested-user set. New reports fan out to every
// subscriber whose own radius covers the report's point (recipient-centric);
// new comments go to the report owner only.
func (f *Fanout) recipients(ctx context.Context, ev domain.ReportEvent) ([]domain.Subscriber, error) {
	switch ev.Type {
	case domain.NotificationNewReport:
		return f.subs.FindInterested(ctx, ev.Lat, ev.Lng, ev.OwnerID)
	case domain.NotificationNewComment:
		if ev.ActorID == ev.OwnerID {
			return nil, nil
		}
		owner, err := f.subs.Get(ctx, ev.OwnerID)
		if err != nil {
			return nil, err
		}
		return []domain.Subscriber{*owner}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", ev.Type)
	}
}

// deliver tries push first, then email, within one per-recipient deadline.
// Reaching any channel counts as delivered.
func (f *Fanout) deliver(ctx context.Context, sub domain.Subscriber, n domain.Notification) bool {
	ctx, cancel := context.WithTimeout(ctx, f.recipientTimeout)
	defer cancel()

	ok := false
	if sub.PushEnabled && f.push != nil {
		if err := f.push.Push(ctx, n); err != nil {
			f.logger.Warn("push delivery failed",
				slog.String("recipient", sub.UserID.String()),
				slog.Any("error", err),
			)
		} else {
			ok = true
		}
	}

	if f.email != nil && sub.Email != "" {
		params := map[string]string{
			"title":     n.Title,
			"message":   n.Message,
			"report_id": n.ReportID.String(),
		}
		if err := f.email.Send(ctx, sub.Email, templateFor(n.Type), params); err != nil {
			f.logger.Warn("email delivery failed",
				slog.String("recipient", sub.UserID.String()),
				slog.Any("error", err),
			)
		} else {
			ok = true
		}
	}

	if !ok {
		f.logger.Warn("recipient undelivered", slog.String("recipient", sub.UserID.String()))
	}
	return ok
}

func buildNotification(ev domain.ReportEvent, sub domain.Subscriber) domain.Notification {
	n := domain.Notification{
		RecipientID: sub.UserID,
		Type:        ev.Type,
		ReportID:    ev.ReportID,
		CreatedAt:   ev.OccurredAt,
	}
	switch ev.Type {
	case domain.NotificationNewComment:
		n.Title = "New comment on your report"
		n.Message = fmt.Sprintf("Someone commented on %q", ev.Title)
	default:
		n.Title = "New report near you"
		n.Message = fmt.Sprintf("%q was reported near your location", ev.Title)
	}
	return n
}

func templateFor(t domain.NotificationType) string {
	if t == domain.NotificationNewComment {
		return "report-comment"
	}
	return "report-nearby"
}
