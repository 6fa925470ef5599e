package postgres

import (
	"context"
	"log/slog"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriberRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSubscriberRepo(pool *pgxpool.Pool, logger *slog.Logger) *SubscriberRepo {
	return &SubscriberRepo{pool: pool, logger: logger}
}

// FindInterested is the reverse-proximity lookup: subscribers whose own
// radius covers the given point, excluding the report owner. The GIST index
// on subscriber geo serves the ST_DWithin; the per-row radius is applied in
// the same predicate.
func (p *SubscriberRepo) FindInterested(ctx context.Context, lat, lng float64, excludeUserID uuid.UUID) ([]domain.Subscriber, error) {
	const op = "postgres.Subscriber.FindInterested"

	const query = `
		SELECT user_id, email,
			ST_Y(geo::geometry) AS lat,
			ST_X(geo::geometry) AS lng,
			radius_km, push_enabled
		FROM subscribers
		WHERE user_id <> $3
		  AND ST_DWithin(
			geo::geography,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			radius_km * 1000
		  )
	`

	rows, err := p.pool.Query(ctx, query, lng, lat, excludeUserID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	subs := make([]domain.Subscriber, 0, 8)
	for rows.Next() {
		var s domain.Subscriber
		if err := rows.Scan(&s.UserID, &s.Email, &s.Lat, &s.Lng, &s.RadiusKM, &s.PushEnabled); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return subs, nil
}

func (p *SubscriberRepo) Get(ctx context.Context, userID uuid.UUID) (*domain.Subscriber, error) {
	const op = "postgres.Subscriber.Get"

	const query = `
		SELECT user_id, email,
			ST_Y(geo::geometry) AS lat,
			ST_X(geo::geometry) AS lng,
			radius_km, push_enabled
		FROM subscribers
		WHERE user_id = $1
	`

	var s domain.Subscriber
	err := p.pool.QueryRow(ctx, query, userID).Scan(&s.UserID, &s.Email, &s.Lat, &s.Lng, &s.RadiusKM, &s.PushEnabled)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return &s, nil
}

func (p *SubscriberRepo) Upsert(ctx context.Context, sub *domain.Subscriber) error {
	const op = "postgres.Subscriber.Upsert"

	const query = `
		INSERT INTO subscribers (user_id, email, geo, radius_km, push_enabled)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			email = EXCLUDED.email,
			geo = EXCLUDED.geo,
			radius_km = EXCLUDED.radius_km,
			push_enabled = EXCLUDED.push_enabled
	`

	_, err := p.pool.Exec(ctx, query,
		sub.UserID,
		sub.Email,
		sub.Lng,
		sub.Lat,
		sub.RadiusKM,
		sub.PushEnabled,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("user_id", sub.UserID.String()))
		return e.WrapError(ctx, op, err)
	}

	return nil
}
