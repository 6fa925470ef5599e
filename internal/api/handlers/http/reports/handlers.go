package reports

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ReportLifecycle interface {
	Create(ctx context.Context, req domain.CreateReportRequest, ownerID uuid.UUID) (*domain.Report, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateReportRequest) (*domain.Report, error)
	SoftDelete(ctx context.Context, id, actorID uuid.UUID, isAdmin bool) error
	ChangeStatus(ctx context.Context, id uuid.UUID, newStatus domain.ReportStatus, rejectionMessage string, actorID uuid.UUID, isAdmin bool) (*domain.StatusHistory, error)
	ToggleVote(ctx context.Context, id, actorID uuid.UUID) (*domain.Report, error)
}

type ProximitySearcher interface {
	FindNear(ctx context.Context, q domain.NearbyQuery) (*domain.NearbyPage, error)
}

type Commenter interface {
	Create(ctx context.Context, reportID, authorID uuid.UUID, req domain.CreateCommentRequest) (*domain.Comment, error)
	ListByReport(ctx context.Context, reportID uuid.UUID, limit int) ([]domain.Comment, error)
}

type Subscriptions interface {
	Upsert(ctx context.Context, sub domain.Subscriber) error
	PendingNotifications(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
}

type Handler struct {
	logger        *slog.Logger
	Lifecycle     ReportLifecycle
	Proximity     ProximitySearcher
	Comments      Commenter
	Subscriptions Subscriptions
}

func NewHandler(logger *slog.Logger, lifecycle ReportLifecycle, proximity ProximitySearcher, comments Commenter, subscriptions Subscriptions) *Handler {
	return &Handler{
		logger:        logger,
		Lifecycle:     lifecycle,
		Proximity:     proximity,
		Comments:      comments,
		Subscriptions: subscriptions,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	report, err := h.Lifecycle.Create(r.Context(), req, middleware.ActorID(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report created", slog.String("id", report.ID.String()))
	h.writeJSON(w, http.StatusCreated, report)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	report, err := h.Lifecycle.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) FindNear(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := domain.NearbyQuery{
		Lat:      parseFloat(q.Get("lat"), 91), // out of range unless provided
		Lng:      parseFloat(q.Get("lng"), 181),
		RadiusKM: parseFloat(q.Get("radius_km"), 0),
		Page:     parseInt(q.Get("page"), 1),
		Size:     parseInt(q.Get("size"), 0),
	}
	if cats := q.Get("categories"); cats != "" {
		query.Category = strings.Split(cats, ",")
	}

	page, err := h.Proximity.FindNear(r.Context(), query)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, page)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	report, err := h.Lifecycle.Update(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	if err := h.Lifecycle.SoftDelete(ctx, id, middleware.ActorID(ctx), middleware.IsAdmin(ctx)); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	var req domain.ChangeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	ctx := r.Context()
	hist, err := h.Lifecycle.ChangeStatus(ctx, id, req.NewStatus, req.RejectionMessage, middleware.ActorID(ctx), middleware.IsAdmin(ctx))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("status changed",
		slog.String("report_id", id.String()),
		slog.String("from", string(hist.PreviousStatus)),
		slog.String("to", string(hist.NewStatus)),
	)
	h.writeJSON(w, http.StatusOK, hist)
}

func (h *Handler) ToggleVote(w http.ResponseWriter, r *http.Request) {
	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	report, err := h.Lifecycle.ToggleVote(r.Context(), id, middleware.ActorID(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"id":              report.ID,
		"important_votes": report.ImportantVotes,
	})
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	var req domain.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	comment, err := h.Comments.Create(r.Context(), id, middleware.ActorID(r.Context()), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, comment)
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	comments, err := h.Comments.ListByReport(r.Context(), id, parseInt(r.URL.Query().Get("limit"), 50))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"comments": comments})
}

func (h *Handler) UpsertSubscription(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email       string  `json:"email"`
		Lat         float64 `json:"lat"`
		Lng         float64 `json:"lng"`
		RadiusKM    float64 `json:"radius_km"`
		PushEnabled bool    `json:"push_enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	sub := domain.Subscriber{
		UserID:      middleware.ActorID(r.Context()),
		Email:       body.Email,
		Lat:         body.Lat,
		Lng:         body.Lng,
		RadiusKM:    body.RadiusKM,
		PushEnabled: body.PushEnabled,
	}
	if err := h.Subscriptions.Upsert(r.Context(), sub); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) PendingNotifications(w http.ResponseWriter, r *http.Request) {
	items, err := h.Subscriptions.PendingNotifications(r.Context(), middleware.ActorID(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"notifications": items})
}

func (h *Handler) reportID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
