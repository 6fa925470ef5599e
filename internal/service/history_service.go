package service

import (
	"context"
	"time"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"

	"github.com/google/uuid"
)

// HistoryService exposes the audit-trail queries. It never writes: history
// rows are appended only by the report repository inside status-change
// transactions.
type HistoryService struct {
	repo HistoryRepository
}

func NewHistoryService(repo HistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

func (s *HistoryService) Get(ctx context.Context, id uuid.UUID) (*domain.StatusHistory, error) {
	return s.repo.Get(ctx, id)
}

func (s *HistoryService) ListByReport(ctx context.Context, reportID uuid.UUID, page, size int) (*domain.HistoryPage, error) {
	return s.list(ctx, domain.HistoryFilter{ReportID: reportID}, page, size)
}

func (s *HistoryService) ListByUser(ctx context.Context, userID uuid.UUID, page, size int) (*domain.HistoryPage, error) {
	return s.list(ctx, domain.HistoryFilter{UserID: userID}, page, size)
}

func (s *HistoryService) ListByPreviousStatus(ctx context.Context, prev domain.ReportStatus, page, size int) (*domain.HistoryPage, error) {
	return s.list(ctx, domain.HistoryFilter{PreviousStatus: prev}, page, size)
}

func (s *HistoryService) ListByNewStatusAndRange(ctx context.Context, status domain.ReportStatus, from, to time.Time, page, size int) (*domain.HistoryPage, error) {
	return s.list(ctx, domain.HistoryFilter{NewStatus: status, From: from, To: to}, page, size)
}

func (s *HistoryService) ListByRange(ctx context.Context, from, to time.Time, page, size int) (*domain.HistoryPage, error) {
	return s.list(ctx, domain.HistoryFilter{From: from, To: to}, page, size)
}

func (s *HistoryService) CountByReport(ctx context.Context, reportID uuid.UUID) (int64, error) {
	return s.repo.CountByReport(ctx, reportID)
}

func (s *HistoryService) list(ctx context.Context, filter domain.HistoryFilter, page, size int) (*domain.HistoryPage, error) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}

	items, total, err := s.repo.List(ctx, filter, page, size)
	if err != nil {
		return nil, err
	}

	return &domain.HistoryPage{
		Items: items,
		Page:  page,
		Size:  size,
		Total: total,
	}, nil
}
