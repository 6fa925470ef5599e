package service

import (
	"context"
	"fmt"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/e"

	"github.com/google/uuid"
)

// SubscriptionService stores the recipient-side notification preferences
// (home point + radius + channels) and exposes the queued push inbox.
type SubscriptionService struct {
	subs  SubscriberRepository
	inbox Inbox
}

func NewSubscriptionService(subs SubscriberRepository, inbox Inbox) *SubscriptionService {
	return &SubscriptionService{subs: subs, inbox: inbox}
}

func (s *SubscriptionService) Upsert(ctx context.Context, sub domain.Subscriber) error {
	if sub.UserID == uuid.Nil {
		return fmt.Errorf("user id required: %w", e.ErrValidation)
	}
	if sub.Lat < -90 || sub.Lat > 90 || sub.Lng < -180 || sub.Lng > 180 {
		return fmt.Errorf("%w: %w", e.ErrInvalidCoordinates, e.ErrValidation)
	}
	if sub.RadiusKM <= 0 {
		return fmt.Errorf("radius must be positive: %w", e.ErrValidation)
	}
	return s.subs.Upsert(ctx, &sub)
}

func (s *SubscriptionService) PendingNotifications(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	return s.inbox.Pending(ctx, userID)
}
