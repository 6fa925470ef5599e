package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/config"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	Pool        *pgxpool.Pool
	Report      *ReportRepo
	History     *HistoryRepo
	Subscriber  *SubscriberRepo
	Category    *CategoryRepo
	CommentRepo *CommentRepo
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("connected to postgres", slog.String("db", cfg.Postgres.Database))

	if err := Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Migrate", err)
	}

	return &Postgres{
		Pool:        pool,
		Report:      NewReportRepo(pool, logger),
		History:     NewHistoryRepo(pool, logger),
		Subscriber:  NewSubscriberRepo(pool, logger),
		Category:    NewCategoryRepo(pool, logger),
		CommentRepo: NewCommentRepo(pool, logger),
	}, nil
}

func (p *Postgres) Reports() *ReportRepo        { return p.Report }
func (p *Postgres) StatusHistory() *HistoryRepo { return p.History }
func (p *Postgres) Subscribers() *SubscriberRepo {
	return p.Subscriber
}
func (p *Postgres) Categories() *CategoryRepo { return p.Category }
func (p *Postgres) Comments() *CommentRepo    { return p.CommentRepo }
