package history_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/api/handlers/http/history"
	mock_history "github.com/MarkatV2/ProyectoAvanzada-sub001/internal/api/handlers/http/history/mocks"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestRouter(ctrl *gomock.Controller) (http.Handler, *mock_history.MockHistoryQueries) {
	svc := mock_history.NewMockHistoryQueries(ctrl)
	h := history.NewHandler(newTestLogger(), svc)

	r := chi.NewRouter()
	r.Get("/history", h.List)
	r.Get("/history/{id}", h.Get)
	r.Get("/history/by-user/{userID}", h.ListByUser)
	r.Get("/reports/{id}/history", h.ListByReport)
	r.Get("/reports/{id}/history/count", h.CountByReport)
	return r, svc
}

func emptyPage(page, size int) *domain.HistoryPage {
	return &domain.HistoryPage{Items: []domain.StatusHistory{}, Page: page, Size: size}
}

func TestHistoryGet_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svc := newTestRouter(ctrl)
	id := uuid.New()

	svc.EXPECT().
		Get(gomock.Any(), id).
		Return(&domain.StatusHistory{ID: id, NewStatus: domain.ReportVerified}, nil).
		Times(1)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/history/"+id.String(), nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var got domain.StatusHistory
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != id {
		t.Fatalf("unexpected entry %+v", got)
	}
}

func TestHistoryGet_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svc := newTestRouter(ctrl)
	id := uuid.New()

	svc.EXPECT().
		Get(gomock.Any(), id).
		Return(nil, fmt.Errorf("history: %w", e.ErrNotFound)).
		Times(1)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/history/"+id.String(), nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d", http.StatusNotFound, rr.Code)
	}
}

func TestHistoryList_DispatchesOnQuery(t *testing.T) {
	t.Parallel()

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	type tc struct {
		name   string
		url    string
		expect func(svc *mock_history.MockHistoryQueries)
	}

	cases := []tc{
		{
			name: "previous_status",
			url:  "/history?previous_status=PENDING",
			expect: func(svc *mock_history.MockHistoryQueries) {
				svc.EXPECT().
					ListByPreviousStatus(gomock.Any(), domain.ReportPending, 1, 20).
					Return(emptyPage(1, 20), nil).
					Times(1)
			},
		},
		{
			name: "new_status_with_range",
			url:  "/history?new_status=REJECTED&from=2026-01-01T00:00:00Z&to=2026-02-01T00:00:00Z",
			expect: func(svc *mock_history.MockHistoryQueries) {
				svc.EXPECT().
					ListByNewStatusAndRange(gomock.Any(), domain.ReportRejected, from, to, 1, 20).
					Return(emptyPage(1, 20), nil).
					Times(1)
			},
		},
		{
			name: "bare_range",
			url:  "/history?from=2026-01-01T00:00:00Z&to=2026-02-01T00:00:00Z&page=2&size=5",
			expect: func(svc *mock_history.MockHistoryQueries) {
				svc.EXPECT().
					ListByRange(gomock.Any(), from, to, 2, 5).
					Return(emptyPage(2, 5), nil).
					Times(1)
			},
		},
		{
			name: "no_filters",
			url:  "/history",
			expect: func(svc *mock_history.MockHistoryQueries) {
				svc.EXPECT().
					ListByRange(gomock.Any(), time.Time{}, time.Time{}, 1, 20).
					Return(emptyPage(1, 20), nil).
					Times(1)
			},
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, svc := newTestRouter(ctrl)
			c.expect(svc)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, c.url, nil))

			if rr.Code != http.StatusOK {
				t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestHistoryList_UnknownStatus_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(ctrl)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/history?new_status=BOGUS", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestCountByReport_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svc := newTestRouter(ctrl)
	id := uuid.New()

	svc.EXPECT().CountByReport(gomock.Any(), id).Return(int64(5), nil).Times(1)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reports/"+id.String()+"/history/count", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var got map[string]int64
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got["count"] != 5 {
		t.Fatalf("unexpected body %v", got)
	}
}

func TestListByUser_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(ctrl)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/history/by-user/nope", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}
