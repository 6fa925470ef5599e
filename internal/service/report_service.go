package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/e"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/validator"

	"github.com/google/uuid"
)

// ReportService drives the report lifecycle: create, read, update, soft
// delete, status changes and vote toggles. Every accepted status change
// produces exactly one history row, written by the repository in the same
// transaction as the status mutation.
type ReportService struct {
	repo       ReportRepository
	categories CategoryDirectory
	cache      ReportCache
	events     EventPublisher
	logger     *slog.Logger
}

func NewReportService(
	repo ReportRepository,
	categories CategoryDirectory,
	cache ReportCache,
	events EventPublisher,
	logger *slog.Logger,
) *ReportService {
	return &ReportService{
		repo:       repo,
		categories: categories,
		cache:      cache,
		events:     events,
		logger:     logger,
	}
}

func (s *ReportService) Create(ctx context.Context, req domain.CreateReportRequest, ownerID uuid.UUID) (*domain.Report, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, e.ErrValidation)
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("title and description must not be blank: %w", e.ErrValidation)
	}

	cats, err := s.resolveCategories(ctx, req.Categories)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByContent(ctx, req.Title, req.Description)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("a report with the same title and description already exists: %w", e.ErrDuplicate)
	}

	report := &domain.Report{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Categories:   cats,
		Lat:          req.Lat,
		Lng:          req.Lng,
		Status:       domain.ReportPending,
		LikedUserIDs: []uuid.UUID{},
		OwnerID:      ownerID,
		CreatedAt:    now(),
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.ReportEvent{
		Type:       domain.NotificationNewReport,
		ReportID:   report.ID,
		Title:      report.Title,
		Lat:        report.Lat,
		Lng:        report.Lng,
		ActorID:    ownerID,
		OwnerID:    ownerID,
		OccurredAt: report.CreatedAt,
	})

	return report, nil
}

// Get hides soft-deleted reports from normal reads.
func (s *ReportService) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	if cached, err := s.cache.Get(ctx, id); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		s.logger.Warn("report cache read failed", slog.Any("error", err))
	}

	report, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if report.Status == domain.ReportDeleted {
		return nil, fmt.Errorf("report %s: %w", id, e.ErrNotFound)
	}

	if err := s.cache.Set(ctx, report); err != nil {
		s.logger.Warn("report cache write failed", slog.Any("error", err))
	}

	return report, nil
}

// Update patches content fields only; status, votes and ownership are
// untouched.
func (s *ReportService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateReportRequest) (*domain.Report, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, e.ErrValidation)
	}

	report, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if report.Status == domain.ReportDeleted {
		return nil, fmt.Errorf("report %s: %w", id, e.ErrNotFound)
	}

	if req.Title != nil {
		report.Title = *req.Title
	}
	if req.Description != nil {
		report.Description = *req.Description
	}
	if len(req.Categories) > 0 {
		cats, err := s.resolveCategories(ctx, req.Categories)
		if err != nil {
			return nil, err
		}
		report.Categories = cats
	}

	if err := s.repo.UpdateContent(ctx, report); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)

	return report, nil
}

// SoftDelete marks the report DELETED, keeping the record and its history
// resolvable. Allowed for the owner or an administrator; the transition is
// audited like any other status change.
func (s *ReportService) SoftDelete(ctx context.Context, id, actorID uuid.UUID, isAdmin bool) error {
	report, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if report.Status == domain.ReportDeleted {
		return fmt.Errorf("report %s: %w", id, e.ErrNotFound)
	}
	if err := ValidateSoftDelete(report, actorID, isAdmin); err != nil {
		return err
	}

	_, err = s.changeStatusWithRetry(ctx, report, domain.ReportDeleted, actorID)
	if err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// ChangeStatus applies an admin/owner transition after validation. The write
// is conditional on the status read here; a concurrent change triggers one
// re-read and re-validation before giving up with a conflict.
func (s *ReportService) ChangeStatus(ctx context.Context, id uuid.UUID, newStatus domain.ReportStatus, rejectionMessage string, actorID uuid.UUID, isAdmin bool) (*domain.StatusHistory, error) {
	report, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if report.Status == domain.ReportDeleted {
		return nil, fmt.Errorf("report %s: %w", id, e.ErrNotFound)
	}

	if err := ValidateTransition(report, newStatus, rejectionMessage, actorID, isAdmin); err != nil {
		return nil, err
	}

	hist, err := s.repo.ChangeStatus(ctx, id, report.Status, newStatus, actorID)
	if errors.Is(err, e.ErrConflict) {
		report, err = s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if report.Status == domain.ReportDeleted {
			return nil, fmt.Errorf("report %s: %w", id, e.ErrNotFound)
		}
		if err := ValidateTransition(report, newStatus, rejectionMessage, actorID, isAdmin); err != nil {
			return nil, err
		}
		hist, err = s.repo.ChangeStatus(ctx, id, report.Status, newStatus, actorID)
	}
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return hist, nil
}

// ToggleVote flips the caller's "important" vote. The repository performs the
// flip as one atomic conditional update, so concurrent toggles by different
// users never lose each other.
func (s *ReportService) ToggleVote(ctx context.Context, id, actorID uuid.UUID) (*domain.Report, error) {
	report, err := s.repo.ToggleVote(ctx, id, actorID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return report, nil
}

// changeStatusWithRetry is the soft-delete path: the target is fixed, only
// the observed previous status may move underneath us.
func (s *ReportService) changeStatusWithRetry(ctx context.Context, report *domain.Report, next domain.ReportStatus, actorID uuid.UUID) (*domain.StatusHistory, error) {
	hist, err := s.repo.ChangeStatus(ctx, report.ID, report.Status, next, actorID)
	if errors.Is(err, e.ErrConflict) {
		fresh, gerr := s.repo.Get(ctx, report.ID)
		if gerr != nil {
			return nil, gerr
		}
		if fresh.Status == domain.ReportDeleted {
			return nil, fmt.Errorf("report %s: %w", report.ID, e.ErrNotFound)
		}
		return s.repo.ChangeStatus(ctx, report.ID, fresh.Status, next, actorID)
	}
	return hist, err
}

func (s *ReportService) resolveCategories(ctx context.Context, names []string) ([]domain.Category, error) {
	cats, err := s.categories.Resolve(ctx, names)
	if err != nil {
		return nil, err
	}
	if len(cats) != len(names) {
		known := make(map[string]bool, len(cats))
		for _, c := range cats {
			known[c.Name] = true
		}
		for _, n := range names {
			if !known[n] {
				return nil, fmt.Errorf("unknown category %q: %w", n, e.ErrValidation)
			}
		}
	}
	return cats, nil
}

// publish is fire-and-forget: a queue failure is logged, never surfaced to
// the operation that triggered it.
func (s *ReportService) publish(ctx context.Context, ev domain.ReportEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Enqueue(ctx, ev); err != nil {
		s.logger.Error("enqueue report event failed",
			slog.String("type", string(ev.Type)),
			slog.String("report_id", ev.ReportID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *ReportService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn("report cache invalidate failed", slog.String("id", id.String()), slog.Any("error", err))
	}
}
