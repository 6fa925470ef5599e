package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/config"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/service"
	mock_service "github.com/MarkatV2/ProyectoAvanzada-sub001/internal/service/mocks"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/e"
)

func searchCfg() config.SearchConfig {
	return config.SearchConfig{
		DefaultRadiusKM: 10,
		DefaultPageSize: 30,
		MaxPageSize:     100,
	}
}

func TestProximityEngine_Defaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	engine := service.NewProximityEngine(repo, searchCfg(), discardLogger())

	// Absent radius/page/size fall back to 10 km, page 1, size 30.
	repo.EXPECT().
		FindNearby(gomock.Any(), 4.628, -74.064, float64(10_000), nil, 30, 0).
		Return([]domain.NearbyReport{}, int64(0), nil).
		Times(1)

	page, err := engine.FindNear(context.Background(), domain.NearbyQuery{Lat: 4.628, Lng: -74.064})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.Page != 1 || page.Size != 30 {
		t.Fatalf("unexpected paging: %+v", page)
	}
	if page.TotalElements != 0 || page.TotalPages != 0 {
		t.Fatalf("unexpected totals: %+v", page)
	}
}

func TestProximityEngine_ExplicitRadiusAndPaging(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	engine := service.NewProximityEngine(repo, searchCfg(), discardLogger())

	items := []domain.NearbyReport{
		{Report: domain.Report{ID: uuid.New(), Status: domain.ReportVerified}, DistanceM: 120},
		{Report: domain.Report{ID: uuid.New(), Status: domain.ReportVerified}, DistanceM: 480},
	}

	// Page 3 of size 2 means offset 4; 2.5 km becomes 2500 m.
	repo.EXPECT().
		FindNearby(gomock.Any(), 4.6, -74.0, float64(2500), []string{"safety"}, 2, 4).
		Return(items, int64(7), nil).
		Times(1)

	page, err := engine.FindNear(context.Background(), domain.NearbyQuery{
		Lat:      4.6,
		Lng:      -74.0,
		RadiusKM: 2.5,
		Category: []string{"safety"},
		Page:     3,
		Size:     2,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.TotalElements != 7 {
		t.Fatalf("expected total=7, got %d", page.TotalElements)
	}
	if page.TotalPages != 4 {
		t.Fatalf("expected 4 pages for 7 items of size 2, got %d", page.TotalPages)
	}
	if len(page.Items) != 2 || page.Items[0].DistanceM > page.Items[1].DistanceM {
		t.Fatalf("expected nearest-first page, got %+v", page.Items)
	}
}

func TestProximityEngine_SizeClamped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	engine := service.NewProximityEngine(repo, searchCfg(), discardLogger())

	repo.EXPECT().
		FindNearby(gomock.Any(), 0.0, 0.0, float64(10_000), nil, 100, 0).
		Return([]domain.NearbyReport{}, int64(0), nil).
		Times(1)

	page, err := engine.FindNear(context.Background(), domain.NearbyQuery{Size: 5000})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.Size != 100 {
		t.Fatalf("expected size clamp to 100, got %d", page.Size)
	}
}

func TestProximityEngine_RejectsBadCenter(t *testing.T) {
	t.Parallel()

	type tc struct {
		name string
		lat  float64
		lng  float64
	}

	cases := []tc{
		{"lat_too_high", 90.01, 0},
		{"lat_too_low", -90.01, 0},
		{"lng_too_high", 0, 180.01},
		{"lng_too_low", 0, -180.01},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_service.NewMockReportRepository(ctrl)
			engine := service.NewProximityEngine(repo, searchCfg(), discardLogger())

			// repo must not be queried for a bad center.
			_, err := engine.FindNear(context.Background(), domain.NearbyQuery{Lat: c.lat, Lng: c.lng})
			if !errors.Is(err, e.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !errors.Is(err, e.ErrInvalidCoordinates) {
				t.Fatalf("expected coordinate error, got %v", err)
			}
		})
	}
}

func TestProximityEngine_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	engine := service.NewProximityEngine(repo, searchCfg(), discardLogger())

	repo.EXPECT().
		FindNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, int64(0), errors.New("db down")).
		Times(1)

	if _, err := engine.FindNear(context.Background(), domain.NearbyQuery{}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
