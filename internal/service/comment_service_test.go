package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/service"
	mock_service "github.com/MarkatV2/ProyectoAvanzada-sub001/internal/service/mocks"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/e"
)

type commentMocks struct {
	comments *mock_service.MockCommentRepository
	reports  *mock_service.MockReportRepository
	events   *mock_service.MockEventPublisher
}

func newCommentService(ctrl *gomock.Controller) (*service.CommentService, commentMocks) {
	m := commentMocks{
		comments: mock_service.NewMockCommentRepository(ctrl),
		reports:  mock_service.NewMockReportRepository(ctrl),
		events:   mock_service.NewMockEventPublisher(ctrl),
	}
	return service.NewCommentService(m.comments, m.reports, m.events, discardLogger()), m
}

func TestCommentService_Create_NotifiesOwner(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCommentService(ctrl)
	reportID := uuid.New()
	owner := uuid.New()
	author := uuid.New()

	m.reports.EXPECT().Get(gomock.Any(), reportID).
		Return(&domain.Report{ID: reportID, Title: "pothole", Status: domain.ReportVerified, OwnerID: owner}, nil).
		Times(1)
	m.comments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	var published *domain.ReportEvent
	m.events.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev domain.ReportEvent) error {
			published = &ev
			return nil
		}).
		Times(1)

	got, err := svc.Create(context.Background(), reportID, author, domain.CreateCommentRequest{Body: "still there"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ReportID != reportID || got.AuthorID != author {
		t.Fatalf("unexpected comment %+v", got)
	}
	if published == nil || published.Type != domain.NotificationNewComment {
		t.Fatalf("expected NEW_COMMENT event, got %+v", published)
	}
	if published.OwnerID != owner || published.ActorID != author {
		t.Fatalf("unexpected event %+v", published)
	}
}

func TestCommentService_Create_OwnComment_NoEvent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCommentService(ctrl)
	reportID := uuid.New()
	owner := uuid.New()

	m.reports.EXPECT().Get(gomock.Any(), reportID).
		Return(&domain.Report{ID: reportID, Status: domain.ReportVerified, OwnerID: owner}, nil).
		Times(1)
	m.comments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	// events.Enqueue must not be called for the owner's own comment.

	if _, err := svc.Create(context.Background(), reportID, owner, domain.CreateCommentRequest{Body: "fixed today"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestCommentService_Create_DeletedReport(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCommentService(ctrl)
	reportID := uuid.New()

	m.reports.EXPECT().Get(gomock.Any(), reportID).
		Return(&domain.Report{ID: reportID, Status: domain.ReportDeleted, OwnerID: uuid.New()}, nil).
		Times(1)

	_, err := svc.Create(context.Background(), reportID, uuid.New(), domain.CreateCommentRequest{Body: "hello"})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestCommentService_Create_EmptyBody(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newCommentService(ctrl)

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), domain.CreateCommentRequest{})
	if !errors.Is(err, e.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// An enqueue failure is logged, never returned: the comment is already saved.
func TestCommentService_Create_EnqueueFailureSwallowed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCommentService(ctrl)
	reportID := uuid.New()

	m.reports.EXPECT().Get(gomock.Any(), reportID).
		Return(&domain.Report{ID: reportID, Status: domain.ReportVerified, OwnerID: uuid.New()}, nil).
		Times(1)
	m.comments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.events.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("queue down")).Times(1)

	if _, err := svc.Create(context.Background(), reportID, uuid.New(), domain.CreateCommentRequest{Body: "ping"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
