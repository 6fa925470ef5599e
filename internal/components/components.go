package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/api"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/config"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/redis"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/service"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/storage/postgres"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/workers"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Dispatcher *workers.Dispatcher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("initializing postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("initializing redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	eventQueue := redis.NewEventQueue(redisClient.Client, cfg.Notify.QueueKey)
	reportCache := redis.NewReportCache(redisClient, 30*time.Second)
	pushQueue := redis.NewPushQueue(redisClient)

	var events service.EventPublisher
	if !cfg.Notify.Disabled {
		events = eventQueue
	}

	reportSvc := service.NewReportService(storage.Reports(), storage.Categories(), reportCache, events, logger)
	proximitySvc := service.NewProximityEngine(storage.Reports(), cfg.Search, logger)
	historySvc := service.NewHistoryService(storage.StatusHistory())
	commentSvc := service.NewCommentService(storage.Comments(), storage.Reports(), events, logger)
	subscriptionSvc := service.NewSubscriptionService(storage.Subscribers(), pushQueue)

	svc := service.NewService(reportSvc, proximitySvc, historySvc, commentSvc, subscriptionSvc)

	var email service.EmailSender
	if cfg.Notify.EmailGatewayURL != "" {
		email = service.NewHTTPEmailSender(cfg.Notify.EmailGatewayURL)
	}
	fanout := service.NewFanout(storage.Subscribers(), pushQueue, email, logger, cfg.Notify.RecipientTimeout)
	dispatcher := workers.NewDispatcher(eventQueue, fanout, logger)

	httpServer := api.NewServer(cfg, logger, svc)
	logger.Info("initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Dispatcher: dispatcher,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped", slog.Duration("latency", time.Since(start)))
}
