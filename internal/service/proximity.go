package service

import (
	"fmt"
	"log/slog"

	"context"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/config"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/e"
)

// ProximityEngine answers "what verified reports are near this point".
// Only VERIFIED reports ever surface; ordering is nearest-first and the
// totals are computed over the same filtered predicate as the page.
type ProximityEngine struct {
	repo   ReportRepository
	cfg    config.SearchConfig
	logger *slog.Logger
}

func NewProximityEngine(repo ReportRepository, cfg config.SearchConfig, logger *slog.Logger) *ProximityEngine {
	return &ProximityEngine{repo: repo, cfg: cfg, logger: logger}
}

func (s *ProximityEngine) FindNear(ctx context.Context, q domain.NearbyQuery) (*domain.NearbyPage, error) {
	if q.Lat < -90 || q.Lat > 90 || q.Lng < -180 || q.Lng > 180 {
		return nil, fmt.Errorf("%w: %w", e.ErrInvalidCoordinates, e.ErrValidation)
	}

	radiusKM := q.RadiusKM
	if radiusKM <= 0 {
		radiusKM = s.cfg.DefaultRadiusKM
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.Size
	if size <= 0 {
		size = s.cfg.DefaultPageSize
	}
	if size > s.cfg.MaxPageSize {
		size = s.cfg.MaxPageSize
	}
	offset := (page - 1) * size

	items, total, err := s.repo.FindNearby(ctx, q.Lat, q.Lng, radiusKM*1000, q.Category, size, offset)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / size
	if int(total)%size != 0 {
		totalPages++
	}

	s.logger.Debug("proximity search",
		slog.Float64("lat", q.Lat),
		slog.Float64("lng", q.Lng),
		slog.Float64("radius_km", radiusKM),
		slog.Int("hits", len(items)),
		slog.Int64("total", total),
	)

	return &domain.NearbyPage{
		Items:         items,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}
