package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/e"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/validator"

	"github.com/google/uuid"
)

// CommentService persists comments and notifies the report owner. A comment
// by the owner on their own report produces no notification.
type CommentService struct {
	comments CommentRepository
	reports  ReportRepository
	events   EventPublisher
	logger   *slog.Logger
}

func NewCommentService(
	comments CommentRepository,
	reports ReportRepository,
	events EventPublisher,
	logger *slog.Logger,
) *CommentService {
	return &CommentService{
		comments: comments,
		reports:  reports,
		events:   events,
		logger:   logger,
	}
}

func (s *CommentService) Create(ctx context.Context, reportID, authorID uuid.UUID, req domain.CreateCommentRequest) (*domain.Comment, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, e.ErrValidation)
	}

	report, err := s.reports.Get(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.Status == domain.ReportDeleted {
		return nil, fmt.Errorf("report %s: %w", reportID, e.ErrNotFound)
	}

	comment := &domain.Comment{
		ID:        uuid.New(),
		ReportID:  reportID,
		AuthorID:  authorID,
		Body:      req.Body,
		CreatedAt: now(),
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	if authorID != report.OwnerID && s.events != nil {
		ev := domain.ReportEvent{
			Type:       domain.NotificationNewComment,
			ReportID:   report.ID,
			Title:      report.Title,
			Lat:        report.Lat,
			Lng:        report.Lng,
			ActorID:    authorID,
			OwnerID:    report.OwnerID,
			OccurredAt: comment.CreatedAt,
		}
		if err := s.events.Enqueue(ctx, ev); err != nil {
			s.logger.Error("enqueue comment event failed",
				slog.String("report_id", report.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return comment, nil
}

func (s *CommentService) ListByReport(ctx context.Context, reportID uuid.UUID, limit int) ([]domain.Comment, error) {
	return s.comments.ListByReport(ctx, reportID, limit)
}
