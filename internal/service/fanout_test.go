package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/service"
	mock_service "github.com/MarkatV2/ProyectoAvanzada-sub001/internal/service/mocks"
)

func newFanout(ctrl *gomock.Controller) (*service.Fanout, *mock_service.MockSubscriberRepository, *mock_service.MockPushSender, *mock_service.MockEmailSender) {
	subs := mock_service.NewMockSubscriberRepository(ctrl)
	push := mock_service.NewMockPushSender(ctrl)
	email := mock_service.NewMockEmailSender(ctrl)
	f := service.NewFanout(subs, push, email, discardLogger(), time.Second)
	return f, subs, push, email
}

func newReportEvent(owner uuid.UUID) domain.ReportEvent {
	return domain.ReportEvent{
		Type:       domain.NotificationNewReport,
		ReportID:   uuid.New(),
		Title:      "fallen tree",
		Lat:        4.6,
		Lng:        -74.0,
		ActorID:    owner,
		OwnerID:    owner,
		OccurredAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}
}

func TestFanout_NewReport_AllChannels(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, subs, push, email := newFanout(ctrl)
	owner := uuid.New()
	ev := newReportEvent(owner)

	nearby := []domain.Subscriber{
		{UserID: uuid.New(), Email: "a@example.com", PushEnabled: true},
		{UserID: uuid.New(), Email: "b@example.com", PushEnabled: false},
	}

	subs.EXPECT().
		FindInterested(gomock.Any(), ev.Lat, ev.Lng, owner).
		Return(nearby, nil).
		Times(1)

	var pushed []domain.Notification
	push.EXPECT().
		Push(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n domain.Notification) error {
			pushed = append(pushed, n)
			return nil
		}).
		Times(1)
	email.EXPECT().Send(gomock.Any(), "a@example.com", "report-nearby", gomock.Any()).Return(nil).Times(1)
	email.EXPECT().Send(gomock.Any(), "b@example.com", "report-nearby", gomock.Any()).Return(nil).Times(1)

	f.Dispatch(context.Background(), ev)

	if len(pushed) != 1 {
		t.Fatalf("expected 1 push, got %d", len(pushed))
	}
	if pushed[0].RecipientID != nearby[0].UserID || pushed[0].ReportID != ev.ReportID {
		t.Fatalf("unexpected notification %+v", pushed[0])
	}
	if pushed[0].Type != domain.NotificationNewReport {
		t.Fatalf("unexpected notification type %q", pushed[0].Type)
	}
}

// One recipient failing on every channel must not stop delivery to the rest.
func TestFanout_PartialFailureContinues(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, subs, push, email := newFanout(ctrl)
	owner := uuid.New()
	ev := newReportEvent(owner)

	broken := domain.Subscriber{UserID: uuid.New(), Email: "down@example.com", PushEnabled: true}
	healthy := domain.Subscriber{UserID: uuid.New(), Email: "up@example.com", PushEnabled: true}

	subs.EXPECT().
		FindInterested(gomock.Any(), ev.Lat, ev.Lng, owner).
		Return([]domain.Subscriber{broken, healthy}, nil).
		Times(1)

	gomock.InOrder(
		push.EXPECT().Push(gomock.Any(), gomock.Any()).Return(errors.New("socket closed")).Times(1),
		push.EXPECT().Push(gomock.Any(), gomock.Any()).Return(nil).Times(1),
	)
	gomock.InOrder(
		email.EXPECT().Send(gomock.Any(), "down@example.com", gomock.Any(), gomock.Any()).Return(errors.New("gateway 502")).Times(1),
		email.EXPECT().Send(gomock.Any(), "up@example.com", gomock.Any(), gomock.Any()).Return(nil).Times(1),
	)

	f.Dispatch(context.Background(), ev)
}

func TestFanout_NewComment_GoesToOwnerOnly(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, subs, push, email := newFanout(ctrl)
	owner := uuid.New()
	commenter := uuid.New()

	ev := domain.ReportEvent{
		Type:       domain.NotificationNewComment,
		ReportID:   uuid.New(),
		Title:      "fallen tree",
		ActorID:    commenter,
		OwnerID:    owner,
		OccurredAt: time.Now().UTC(),
	}

	subs.EXPECT().
		Get(gomock.Any(), owner).
		Return(&domain.Subscriber{UserID: owner, Email: "owner@example.com", PushEnabled: true}, nil).
		Times(1)
	push.EXPECT().
		Push(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n domain.Notification) error {
			if n.RecipientID != owner || n.Type != domain.NotificationNewComment {
				t.Fatalf("unexpected notification %+v", n)
			}
			return nil
		}).
		Times(1)
	email.EXPECT().Send(gomock.Any(), "owner@example.com", "report-comment", gomock.Any()).Return(nil).Times(1)

	f.Dispatch(context.Background(), ev)
}

// Commenting on your own report is silent.
func TestFanout_OwnComment_NoDelivery(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, _, _, _ := newFanout(ctrl)
	owner := uuid.New()

	f.Dispatch(context.Background(), domain.ReportEvent{
		Type:     domain.NotificationNewComment,
		ReportID: uuid.New(),
		ActorID:  owner,
		OwnerID:  owner,
	})
}

func TestFanout_ResolveRecipientsError_NoDelivery(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, subs, _, _ := newFanout(ctrl)
	owner := uuid.New()
	ev := newReportEvent(owner)

	subs.EXPECT().
		FindInterested(gomock.Any(), ev.Lat, ev.Lng, owner).
		Return(nil, errors.New("db down")).
		Times(1)

	f.Dispatch(context.Background(), ev)
}

func TestFanout_NoEmailAddress_PushOnly(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, subs, push, _ := newFanout(ctrl)
	owner := uuid.New()
	ev := newReportEvent(owner)

	subs.EXPECT().
		FindInterested(gomock.Any(), ev.Lat, ev.Lng, owner).
		Return([]domain.Subscriber{{UserID: uuid.New(), PushEnabled: true}}, nil).
		Times(1)
	push.EXPECT().Push(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	// email sender must not be called without an address.

	f.Dispatch(context.Background(), ev)
}
