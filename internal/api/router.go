package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/api/handlers/http/history"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/api/handlers/http/reports"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/api/handlers/http/system"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/config"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/middleware"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	reportsHandler := reports.NewHandler(logger, svc.Reports, svc.Proximity, svc.Comments, svc.Subscriptions)
	historyHandler := history.NewHandler(logger, svc.History)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(reportsHandler, historyHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(reportsHandler *reports.Handler, historyHandler *history.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/reports", func(rr chi.Router) {
			// proximity search is open; everything else needs an identity
			rr.Get("/near", reportsHandler.FindNear)

			rr.Group(func(ar chi.Router) {
				ar.Use(middleware.Identity)
				ar.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

				ar.Post("/", reportsHandler.Create)

				ar.Route("/{id}", func(ir chi.Router) {
					ir.Get("/", reportsHandler.Get)
					ir.Put("/", reportsHandler.Update)
					ir.Delete("/", reportsHandler.Delete)
					ir.Patch("/status", reportsHandler.ChangeStatus)
					ir.Post("/vote", reportsHandler.ToggleVote)
					ir.Post("/comments", reportsHandler.CreateComment)
					ir.Get("/comments", reportsHandler.ListComments)
					ir.Get("/history", historyHandler.ListByReport)
					ir.Get("/history/count", historyHandler.CountByReport)
				})
			})
		})

		api.Route("/history", func(hr chi.Router) {
			hr.Use(middleware.Identity)
			hr.Get("/", historyHandler.List)
			hr.Get("/{id}", historyHandler.Get)
			hr.Get("/by-user/{userID}", historyHandler.ListByUser)
		})

		api.Group(func(sr chi.Router) {
			sr.Use(middleware.Identity)
			sr.Put("/subscription", reportsHandler.UpsertSubscription)
			sr.Get("/notifications", reportsHandler.PendingNotifications)
		})

		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
