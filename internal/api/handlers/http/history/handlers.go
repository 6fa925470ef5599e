package history

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type HistoryQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.StatusHistory, error)
	ListByReport(ctx context.Context, reportID uuid.UUID, page, size int) (*domain.HistoryPage, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, size int) (*domain.HistoryPage, error)
	ListByPreviousStatus(ctx context.Context, prev domain.ReportStatus, page, size int) (*domain.HistoryPage, error)
	ListByNewStatusAndRange(ctx context.Context, status domain.ReportStatus, from, to time.Time, page, size int) (*domain.HistoryPage, error)
	ListByRange(ctx context.Context, from, to time.Time, page, size int) (*domain.HistoryPage, error)
	CountByReport(ctx context.Context, reportID uuid.UUID) (int64, error)
}

type Handler struct {
	logger  *slog.Logger
	History HistoryQueries
}

func NewHandler(logger *slog.Logger, history HistoryQueries) *Handler {
	return &Handler{logger: logger, History: history}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	entry, err := h.History.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) ListByReport(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	page, size := paging(r)
	result, err := h.History.ListByReport(r.Context(), id, page, size)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) CountByReport(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	count, err := h.History.CountByReport(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "userID")
	if !ok {
		return
	}

	page, size := paging(r)
	result, err := h.History.ListByUser(r.Context(), id, page, size)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// List dispatches on query params: previous_status, new_status (optionally
// with from/to), or a bare from/to date range.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, size := paging(r)

	from := parseTime(q.Get("from"))
	to := parseTime(q.Get("to"))

	var (
		result *domain.HistoryPage
		err    error
	)

	switch {
	case q.Get("previous_status") != "":
		status := domain.ReportStatus(q.Get("previous_status"))
		if !status.Valid() {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown previous_status"})
			return
		}
		result, err = h.History.ListByPreviousStatus(r.Context(), status, page, size)
	case q.Get("new_status") != "":
		status := domain.ReportStatus(q.Get("new_status"))
		if !status.Valid() {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown new_status"})
			return
		}
		result, err = h.History.ListByNewStatusAndRange(r.Context(), status, from, to, page, size)
	case !from.IsZero() || !to.IsZero():
		result, err = h.History.ListByRange(r.Context(), from, to, page, size)
	default:
		result, err = h.History.ListByRange(r.Context(), time.Time{}, time.Time{}, page, size)
	}
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) pathUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("param", param), slog.String("value", raw))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
