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

func TestHistoryService_ListByReport(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockHistoryRepository(ctrl)
	svc := service.NewHistoryService(repo)

	reportID := uuid.New()
	rows := []domain.StatusHistory{
		{ID: uuid.New(), ReportID: reportID, PreviousStatus: domain.ReportPending, NewStatus: domain.ReportVerified},
		{ID: uuid.New(), ReportID: reportID, PreviousStatus: domain.ReportVerified, NewStatus: domain.ReportResolved},
	}

	repo.EXPECT().
		List(gomock.Any(), domain.HistoryFilter{ReportID: reportID}, 1, 20).
		Return(rows, int64(2), nil).
		Times(1)

	page, err := svc.ListByReport(context.Background(), reportID, 1, 20)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.Total != 2 || len(page.Items) != 2 {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestHistoryService_PagingNormalized(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockHistoryRepository(ctrl)
	svc := service.NewHistoryService(repo)

	userID := uuid.New()

	// page 0 and size 0 become page 1 / size 20; oversized is reset too.
	repo.EXPECT().
		List(gomock.Any(), domain.HistoryFilter{UserID: userID}, 1, 20).
		Return([]domain.StatusHistory{}, int64(0), nil).
		Times(2)

	if _, err := svc.ListByUser(context.Background(), userID, 0, 0); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := svc.ListByUser(context.Background(), userID, -3, 9999); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestHistoryService_ListByNewStatusAndRange(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockHistoryRepository(ctrl)
	svc := service.NewHistoryService(repo)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	repo.EXPECT().
		List(gomock.Any(), domain.HistoryFilter{NewStatus: domain.ReportRejected, From: from, To: to}, 2, 10).
		Return([]domain.StatusHistory{}, int64(0), nil).
		Times(1)

	if _, err := svc.ListByNewStatusAndRange(context.Background(), domain.ReportRejected, from, to, 2, 10); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestHistoryService_CountByReport(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockHistoryRepository(ctrl)
	svc := service.NewHistoryService(repo)

	reportID := uuid.New()
	repo.EXPECT().CountByReport(gomock.Any(), reportID).Return(int64(4), nil).Times(1)

	n, err := svc.CountByReport(context.Background(), reportID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4, got %d", n)
	}
}

func TestHistoryService_ListRepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockHistoryRepository(ctrl)
	svc := service.NewHistoryService(repo)

	repo.EXPECT().
		List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, int64(0), errors.New("db down")).
		Times(1)

	if _, err := svc.ListByReport(context.Background(), uuid.New(), 1, 20); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
