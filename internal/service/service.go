package service

import (
	"context"
	"time"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// ReportRepository is the persistence contract the lifecycle depends on.
// ChangeStatus is conditional on the previously observed status and appends
// the audit row atomically; ToggleVote flips vote set and counter in one
// indivisible operation.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	ExistsByContent(ctx context.Context, title, description string) (bool, error)
	UpdateContent(ctx context.Context, report *domain.Report) error
	ChangeStatus(ctx context.Context, id uuid.UUID, prev, next domain.ReportStatus, actorID uuid.UUID) (*domain.StatusHistory, error)
	ToggleVote(ctx context.Context, id, userID uuid.UUID) (*domain.Report, error)
	FindNearby(ctx context.Context, lat, lng, radiusM float64, categories []string, limit, offset int) ([]domain.NearbyReport, int64, error)
}

type HistoryRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.StatusHistory, error)
	List(ctx context.Context, filter domain.HistoryFilter, page, limit int) ([]domain.StatusHistory, int64, error)
	CountByReport(ctx context.Context, reportID uuid.UUID) (int64, error)
}

type SubscriberRepository interface {
	FindInterested(ctx context.Context, lat, lng float64, excludeUserID uuid.UUID) ([]domain.Subscriber, error)
	Get(ctx context.Context, userID uuid.UUID) (*domain.Subscriber, error)
	Upsert(ctx context.Context, sub *domain.Subscriber) error
}

// CategoryDirectory resolves category names used by create/update requests.
type CategoryDirectory interface {
	Resolve(ctx context.Context, names []string) ([]domain.Category, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByReport(ctx context.Context, reportID uuid.UUID, limit int) ([]domain.Comment, error)
}

// ReportCache fronts point reads; a nil Get result means miss.
type ReportCache interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	Set(ctx context.Context, report *domain.Report) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// EventPublisher hands report events to the async fan-out pipeline.
type EventPublisher interface {
	Enqueue(ctx context.Context, event domain.ReportEvent) error
}

// PushSender delivers a notification to a connected or queued push channel.
type PushSender interface {
	Push(ctx context.Context, n domain.Notification) error
}

// EmailSender is the durable fallback channel.
type EmailSender interface {
	Send(ctx context.Context, address, template string, params map[string]string) error
}

type Inbox interface {
	Pending(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
}

type Service struct {
	Reports       *ReportService
	Proximity     *ProximityEngine
	History       *HistoryService
	Comments      *CommentService
	Subscriptions *SubscriptionService
}

func NewService(
	reports *ReportService,
	proximity *ProximityEngine,
	history *HistoryService,
	comments *CommentService,
	subscriptions *SubscriptionService,
) *Service {
	return &Service{
		Reports:       reports,
		Proximity:     proximity,
		History:       history,
		Comments:      comments,
		Subscriptions: subscriptions,
	}
}

func now() time.Time { return time.Now().UTC() }
